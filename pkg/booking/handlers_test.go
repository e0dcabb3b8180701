package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/booking"
	"github.com/akirakitchen/backend/pkg/config"
	"github.com/akirakitchen/backend/pkg/errx"
	"github.com/akirakitchen/backend/pkg/mailx"
)

const operatorAddress = "host@akira.test"

// recordingSender captures every dispatched message and fails each send
// with err when set.
type recordingSender struct {
	mu   sync.Mutex
	msgs []mailx.Message
	err  error
}

func (s *recordingSender) SendEmail(ctx context.Context, msg mailx.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return s.err
}

func (s *recordingSender) sent() []mailx.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailx.Message(nil), s.msgs...)
}

func (s *recordingSender) sentTo(addr string) *mailx.Message {
	for _, msg := range s.sent() {
		for _, to := range msg.To {
			if to == addr {
				return &msg
			}
		}
	}
	return nil
}

func newTestApp(sender mailx.Sender) *fiber.App {
	mailCfg := config.MailConfig{
		FromAddress:     "noreply@akira.test",
		FromName:        "Akira Kitchen",
		OperatorAddress: operatorAddress,
	}
	app := fiber.New(fiber.Config{
		ErrorHandler: errx.FiberErrorHandler(zerolog.Nop()),
	})
	booking.NewHandlers(mailx.NewClient(sender), mailCfg, zerolog.Nop()).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, raw)
	}
	return resp, parsed
}

func TestCreateReservation_Success(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/reservations", `{
		"name": "Ann Lee",
		"email": "ann@example.com",
		"phone": "+1-555-0101",
		"date": "2026-09-12",
		"time": "19:30",
		"guests": 4,
		"specialRequests": "window seat please"
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	ref, _ := body["reservationId"].(string)
	if !strings.HasPrefix(ref, "AKIR-") {
		t.Fatalf("expected AKIR- reservation reference, got %q", ref)
	}

	if got := len(sender.sent()); got != 2 {
		t.Fatalf("expected 2 notification sends, got %d", got)
	}

	operator := sender.sentTo(operatorAddress)
	if operator == nil {
		t.Fatal("no notification sent to the operator inbox")
	}
	if !strings.Contains(operator.HTMLBody, "window seat please") {
		t.Fatal("operator notification is missing the special requests")
	}
	if !strings.Contains(operator.HTMLBody, ref) {
		t.Fatal("operator notification is missing the reservation reference")
	}

	customer := sender.sentTo("ann@example.com")
	if customer == nil {
		t.Fatal("no acknowledgment sent to the customer")
	}
	if !strings.Contains(customer.HTMLBody, "not a confirmed booking") {
		t.Fatal("customer acknowledgment must not read as a confirmation")
	}
	if customer.From != "Akira Kitchen <noreply@akira.test>" {
		t.Fatalf("unexpected sender identity: %q", customer.From)
	}
}

func TestCreateReservation_MissingFields(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/reservations", `{"name": "Ann Lee"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", resp.StatusCode, body)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
	if body["code"] != "BOOKING_MISSING_FIELDS" {
		t.Fatalf("unexpected error code: %v", body["code"])
	}

	details, _ := body["details"].(map[string]any)
	fields, _ := details["fields"].([]any)
	if len(fields) == 0 {
		t.Fatalf("expected the missing field names in details, got %v", body)
	}

	if got := len(sender.sent()); got != 0 {
		t.Fatalf("no emails should be sent for an invalid request, got %d", got)
	}
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/reservations", `{"name":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", resp.StatusCode, body)
	}
	if body["code"] != "BOOKING_BAD_BODY" {
		t.Fatalf("unexpected error code: %v", body["code"])
	}
}

func TestCreateReservation_SendFailuresDoNotBlockResponse(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/reservations", `{
		"name": "Bob Osei",
		"email": "bob@example.com",
		"phone": "+1-555-0102",
		"date": "2026-09-13",
		"time": "18:00",
		"guests": 2
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 despite send failures, got %d: %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success despite send failures, got %v", body)
	}
	if got := len(sender.sent()); got != 2 {
		t.Fatalf("both sends should still be attempted, got %d", got)
	}
}

func TestCreateReservation_MessageFallsBackForNotes(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	postJSON(t, app, "/api/reservations", `{
		"name": "Ann Lee",
		"email": "ann@example.com",
		"phone": "+1-555-0101",
		"date": "2026-09-12",
		"time": "19:30",
		"guests": 4,
		"message": "celebrating an anniversary"
	}`)

	operator := sender.sentTo(operatorAddress)
	if operator == nil {
		t.Fatal("no notification sent to the operator inbox")
	}
	if !strings.Contains(operator.HTMLBody, "celebrating an anniversary") {
		t.Fatal("message field should appear as the notes when specialRequests is absent")
	}
}

func TestSubmitContact_Success(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/contact", `{
		"name": "Bob Osei",
		"email": "bob@example.com",
		"subject": "Private dining",
		"message": "Do you host private events?"
	}`)

	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("expected success, got %d: %v", resp.StatusCode, body)
	}

	sent := sender.sent()
	if len(sent) != 1 {
		t.Fatalf("expected exactly 1 send to the operator, got %d", len(sent))
	}
	if sent[0].To[0] != operatorAddress {
		t.Fatalf("contact inquiry must go to the operator inbox, got %v", sent[0].To)
	}
	if sent[0].Subject != "Private dining" {
		t.Fatalf("unexpected subject: %q", sent[0].Subject)
	}
	if !strings.Contains(sent[0].HTMLBody, "Do you host private events?") {
		t.Fatal("inquiry message missing from the notification body")
	}
}

func TestSubmitContact_DefaultSubject(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	postJSON(t, app, "/api/contact", `{
		"name": "Bob Osei",
		"email": "bob@example.com",
		"message": "Hello"
	}`)

	sent := sender.sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sent))
	}
	if sent[0].Subject != "General Inquiry" {
		t.Fatalf("expected the default subject, got %q", sent[0].Subject)
	}
}

func TestSubmitContact_MissingFields(t *testing.T) {
	sender := &recordingSender{}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/contact", `{"subject": "Hi"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", resp.StatusCode, body)
	}
	if got := len(sender.sent()); got != 0 {
		t.Fatalf("no emails should be sent for an invalid request, got %d", got)
	}
}

func TestSubmitContact_SendFailureStillSucceeds(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	app := newTestApp(sender)

	resp, body := postJSON(t, app, "/api/contact", `{
		"name": "Bob Osei",
		"email": "bob@example.com",
		"message": "Hello"
	}`)

	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("expected success despite send failure, got %d: %v", resp.StatusCode, body)
	}
}
