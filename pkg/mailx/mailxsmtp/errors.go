package mailxsmtp

import "github.com/akirakitchen/backend/pkg/errx"

var smtpErrors = errx.NewRegistry("MAILX_SMTP")

var (
	ErrConnect    = smtpErrors.Register("CONNECT", errx.TypeExternal, 502, "SMTP connection failed")
	ErrGreeting   = smtpErrors.Register("GREETING", errx.TypeExternal, 502, "SMTP greeting failed")
	ErrStartTLS   = smtpErrors.Register("STARTTLS", errx.TypeExternal, 502, "SMTP STARTTLS upgrade failed")
	ErrAuth       = smtpErrors.Register("AUTH", errx.TypeExternal, 502, "SMTP authentication failed")
	ErrSendFailed = smtpErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "SMTP send failed")
)
