// Package mailxconsole is the degraded-mode transport used when no real
// provider is configured: it logs the would-be send and reports success
// without any network activity.
package mailxconsole

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/mailx"
)

// Provider logs emails instead of sending them.
type Provider struct {
	log zerolog.Logger
}

// NewProvider creates a console email provider.
func NewProvider(log zerolog.Logger) *Provider {
	return &Provider{log: log}
}

// SendEmail logs the email details and reports success.
func (p *Provider) SendEmail(_ context.Context, msg mailx.Message) error {
	p.log.Info().
		Str("from", msg.From).
		Str("to", strings.Join(msg.To, ", ")).
		Str("subject", msg.Subject).
		Msg("mailx/console: simulated send (no transport configured)")

	if msg.HTMLBody != "" {
		p.log.Debug().Str("html_body", msg.HTMLBody).Msg("mailx/console: body")
	}

	return nil
}
