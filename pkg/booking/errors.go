package booking

import "github.com/akirakitchen/backend/pkg/errx"

var bookingErrors = errx.NewRegistry("BOOKING")

var (
	ErrBadBody       = bookingErrors.Register("BAD_BODY", errx.TypeValidation, 400, "Invalid request body")
	ErrMissingFields = bookingErrors.Register("MISSING_FIELDS", errx.TypeValidation, 400, "Missing required fields")
)
