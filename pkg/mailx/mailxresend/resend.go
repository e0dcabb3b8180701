// Package mailxresend implements mailx.Sender on top of the official
// Resend SDK.
package mailxresend

import (
	"context"

	"github.com/resend/resend-go/v3"

	"github.com/akirakitchen/backend/pkg/mailx"
)

// Provider sends mail through the Resend API. One send attempt per call.
type Provider struct {
	client      *resend.Client
	fromAddress string
}

// NewProvider creates a Resend email provider. fromAddress is the default
// sender identity used when the message carries none.
func NewProvider(apiKey, fromAddress string) *Provider {
	return &Provider{
		client:      resend.NewClient(apiKey),
		fromAddress: fromAddress,
	}
}

// SendEmail serializes the message into Resend's envelope (flat recipient
// array, sender as a single string) and posts it once.
func (p *Provider) SendEmail(ctx context.Context, msg mailx.Message) error {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	if _, err := p.client.Emails.SendWithContext(ctx, req); err != nil {
		return resendErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}

	return nil
}
