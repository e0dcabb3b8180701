package mailxbrevo

import "github.com/akirakitchen/backend/pkg/errx"

var brevoErrors = errx.NewRegistry("MAILX_BREVO")

var ErrSendFailed = brevoErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "Brevo send failed")
