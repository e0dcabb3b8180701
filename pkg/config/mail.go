package config

// MailConfig configures the outbound mail transports. Transport selection
// happens once in the composition root and depends only on which
// credentials are present, so the active provider is deterministic given
// these values.
type MailConfig struct {
	// Transactional API providers, in selection priority order.
	BrevoAPIKey  string
	ResendAPIKey string

	// SESRegion enables the AWS SES transport when non-empty. The SES
	// client itself picks up credentials from the standard AWS chain.
	SESRegion string

	// SMTP submission fallback. Security mode is derived from the port:
	// 465 means implicit TLS, anything else means STARTTLS.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Addressing shared by every transport.
	FromAddress     string
	FromName        string
	OperatorAddress string
}

// From returns the sender identity in "Display Name <address>" form,
// or the bare address when no display name is configured.
func (c MailConfig) From() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return c.FromName + " <" + c.FromAddress + ">"
}

func loadMailConfig() MailConfig {
	fromAddress := getEnv("MAIL_FROM_ADDRESS", "noreply@akirakitchen.com")

	return MailConfig{
		BrevoAPIKey:  getEnv("BREVO_API_KEY", ""),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		SESRegion:    getEnv("SES_REGION", ""),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),

		FromAddress:     fromAddress,
		FromName:        getEnv("MAIL_FROM_NAME", "Akira Kitchen"),
		OperatorAddress: getEnv("MAIL_OPERATOR_ADDRESS", fromAddress),
	}
}
