// Package booking holds the two business endpoints of the Akira Kitchen
// API: table reservation requests and contact inquiries. Both validate
// presence of required fields, compose notification emails, and dispatch
// them through mailx. Email delivery is best-effort by design: a failed
// send is logged for the operator but never blocks the customer-visible
// acknowledgment.
package booking

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/asyncx"
	"github.com/akirakitchen/backend/pkg/config"
	"github.com/akirakitchen/backend/pkg/mailx"
)

// Handlers carries the dependencies of the booking endpoints.
type Handlers struct {
	mailer   *mailx.Client
	mailCfg  config.MailConfig
	validate *validator.Validate
	log      zerolog.Logger
}

// NewHandlers creates the booking endpoint handlers.
func NewHandlers(mailer *mailx.Client, mailCfg config.MailConfig, log zerolog.Logger) *Handlers {
	v := validator.New()
	// Report missing fields under their wire names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handlers{
		mailer:   mailer,
		mailCfg:  mailCfg,
		validate: v,
		log:      log,
	}
}

// RegisterRoutes mounts the booking endpoints on the app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/reservations", h.CreateReservation)
	api.Post("/contact", h.SubmitContact)
}

// CreateReservation handles POST /api/reservations. On valid input it
// fans out two independent sends (operator summary and customer
// acknowledgment), waits for both to settle, and responds success with a
// reservation reference regardless of how many sends failed.
func (h *Handlers) CreateReservation(c *fiber.Ctx) error {
	var req ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return bookingErrors.NewWithCause(ErrBadBody, err)
	}

	if missing := h.missingFields(req); len(missing) > 0 {
		return bookingErrors.New(ErrMissingFields).WithDetail("fields", missing)
	}

	ref := NewReservationRef()

	operatorSubject, operatorHTML := operatorReservationEmail(ref, req)
	customerSubject, customerHTML := customerReservationEmail(ref, req)

	results := asyncx.AllSettled(c.UserContext(),
		h.send(h.mailCfg.OperatorAddress, operatorSubject, operatorHTML),
		h.send(req.Email, customerSubject, customerHTML),
	)
	for _, r := range results {
		if r.Err != nil {
			h.log.Error().Err(r.Err).
				Str("reservation_ref", ref).
				Str("to", r.Value).
				Msg("reservation notification failed")
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"reservationId": ref,
	})
}

// SubmitContact handles POST /api/contact. One message to the operator
// inbox; the response mirrors the reservation handler's decoupling policy.
func (h *Handlers) SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return bookingErrors.NewWithCause(ErrBadBody, err)
	}

	if missing := h.missingFields(req); len(missing) > 0 {
		return bookingErrors.New(ErrMissingFields).WithDetail("fields", missing)
	}

	subject := req.Subject
	if subject == "" {
		subject = defaultContactSubject
	}

	mailSubject, html := contactEmail(req, subject)
	if _, err := h.send(h.mailCfg.OperatorAddress, mailSubject, html)(c.UserContext()); err != nil {
		h.log.Error().Err(err).
			Str("from", req.Email).
			Msg("contact notification failed")
	}

	return c.JSON(fiber.Map{"success": true})
}

// send returns one dispatch operation addressed to a single recipient,
// shaped for asyncx.AllSettled. The returned value is the recipient, so
// settled results can name which leg failed.
func (h *Handlers) send(to, subject, html string) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		err := h.mailer.SendEmail(ctx, mailx.Message{
			From:     h.mailCfg.From(),
			To:       []string{to},
			Subject:  subject,
			HTMLBody: html,
		})
		return to, err
	}
}

// missingFields runs presence validation and returns the wire names of
// every absent required field.
func (h *Handlers) missingFields(req any) []string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var missing []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) == 0 {
		missing = append(missing, "unknown")
	}
	return missing
}
