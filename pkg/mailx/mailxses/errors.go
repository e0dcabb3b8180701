package mailxses

import "github.com/akirakitchen/backend/pkg/errx"

var sesErrors = errx.NewRegistry("MAILX_SES")

var ErrSendFailed = sesErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "SES send failed")
