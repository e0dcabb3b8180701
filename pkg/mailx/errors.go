package mailx

import "github.com/akirakitchen/backend/pkg/errx"

var mailxErrors = errx.NewRegistry("MAILX")

var (
	ErrSendFailed     = mailxErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "Failed to send email")
	ErrInvalidMessage = mailxErrors.Register("INVALID_MESSAGE", errx.TypeValidation, 400, "Invalid email message")
)
