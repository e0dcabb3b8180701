// Package mailx is the outbound notification layer. Request handlers talk
// to a Client; the Client delegates to whichever Sender the composition
// root selected at startup. Every transport performs exactly one send
// attempt per call; retries are the caller's decision, and no caller in
// this service retries.
package mailx

import (
	"context"
)

// Sender is implemented by every outbound mail transport.
type Sender interface {
	SendEmail(ctx context.Context, msg Message) error
}

// Client is the uniform sendEmail entry point used by the handlers. It is
// oblivious to which transport is active.
type Client struct {
	provider Sender
}

// NewClient creates a dispatcher around the selected transport.
func NewClient(provider Sender) *Client {
	return &Client{provider: provider}
}

// SendEmail validates the message and hands it to the active transport.
func (c *Client) SendEmail(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return mailxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	if msg.Subject == "" {
		return mailxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty subject")
	}
	return c.provider.SendEmail(ctx, msg)
}
