package booking

import (
	"fmt"
	"time"
)

const referencePrefix = "AKIR-"

// NewReservationRef generates a human-readable reservation reference:
// a fixed prefix plus the current unix-millisecond clock. It is an
// advisory correlation token only: concurrent requests inside the same
// millisecond can collide, so it must never be used as a durable
// identifier or key.
func NewReservationRef() string {
	return fmt.Sprintf("%s%d", referencePrefix, time.Now().UnixMilli())
}
