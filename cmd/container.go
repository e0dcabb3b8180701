// cmd/container.go
//
// Composition root. Selects the outbound mail transport once at startup
// and wires the dispatcher into the booking handlers. This is the only
// place that knows which provider is active.
package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/asyncx"
	"github.com/akirakitchen/backend/pkg/booking"
	"github.com/akirakitchen/backend/pkg/config"
	"github.com/akirakitchen/backend/pkg/mailx"
	"github.com/akirakitchen/backend/pkg/mailx/mailxbrevo"
	"github.com/akirakitchen/backend/pkg/mailx/mailxconsole"
	"github.com/akirakitchen/backend/pkg/mailx/mailxresend"
	"github.com/akirakitchen/backend/pkg/mailx/mailxses"
	"github.com/akirakitchen/backend/pkg/mailx/mailxsmtp"
)

// Container holds the wired application modules.
type Container struct {
	Config   *config.Config
	Log      zerolog.Logger
	Mailer   *mailx.Client
	Provider string
	Booking  *booking.Handlers

	// smtp is set only when the SMTP transport won selection; kept for
	// the startup verification handshake and pool shutdown.
	smtp *mailxsmtp.Provider
}

// NewContainer wires the application.
func NewContainer(cfg *config.Config, log zerolog.Logger) *Container {
	c := &Container{Config: cfg, Log: log}

	sender, provider := c.selectMailProvider()
	c.Mailer = mailx.NewClient(sender)
	c.Provider = provider
	log.Info().Str("provider", provider).Msg("mail transport selected")

	c.Booking = booking.NewHandlers(c.Mailer, cfg.Mail, log)

	return c
}

// selectMailProvider inspects the mail configuration in fixed priority
// order and returns the single active transport for the process lifetime.
// HTTPS transactional APIs are preferred over SMTP: they avoid long-lived
// socket issues in constrained hosting environments. With no credentials
// at all the service degrades to the console transport, which simulates
// sends and logs them.
func (c *Container) selectMailProvider() (mailx.Sender, string) {
	mc := c.Config.Mail

	switch {
	case mc.BrevoAPIKey != "":
		return mailxbrevo.NewProvider(mc.BrevoAPIKey, mc.From()), "brevo"

	case mc.ResendAPIKey != "":
		return mailxresend.NewProvider(mc.ResendAPIKey, mc.From()), "resend"

	case mc.SESRegion != "":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithRegion(mc.SESRegion))
		if err != nil {
			c.Log.Fatal().Err(err).Msg("failed to load AWS config for SES transport")
		}
		return mailxses.NewProvider(ses.NewFromConfig(awsCfg), mc.From()), "ses"

	case mc.SMTPUser != "" && mc.SMTPPass != "":
		p := mailxsmtp.NewProvider(mailxsmtp.Config{
			Host:     mc.SMTPHost,
			Port:     mc.SMTPPort,
			Username: mc.SMTPUser,
			Password: mc.SMTPPass,
			From:     mc.From(),
		})
		c.smtp = p
		return p, "smtp"

	default:
		return mailxconsole.NewProvider(c.Log), "console"
	}
}

// EmailConfigured reports whether a real transport is active.
func (c *Container) EmailConfigured() bool {
	return c.Provider != "console"
}

// StartBackgroundServices fires the SMTP diagnostic handshake without
// blocking startup. Its outcome is logged only; send attempts are tried
// either way.
func (c *Container) StartBackgroundServices(ctx context.Context) {
	if c.smtp == nil {
		return
	}
	asyncx.Do(func() {
		if err := c.smtp.Verify(ctx); err != nil {
			c.Log.Warn().Err(err).Msg("SMTP verification handshake failed")
			return
		}
		c.Log.Info().
			Str("host", c.Config.Mail.SMTPHost).
			Int("port", c.Config.Mail.SMTPPort).
			Msg("SMTP verification handshake succeeded")
	})
}

// Cleanup releases pooled resources on shutdown.
func (c *Container) Cleanup() {
	if c.smtp != nil {
		c.smtp.Close()
	}
}
