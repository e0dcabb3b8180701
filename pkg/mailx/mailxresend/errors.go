package mailxresend

import "github.com/akirakitchen/backend/pkg/errx"

var resendErrors = errx.NewRegistry("MAILX_RESEND")

var ErrSendFailed = resendErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "Resend send failed")
