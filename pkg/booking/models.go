package booking

// ReservationRequest is a table reservation form submission. Every field
// except the special-request/message pair is mandatory. Nothing is
// persisted; the value lives for one handler invocation.
type ReservationRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time" validate:"required"`
	Guests int    `json:"guests" validate:"required"`

	// SpecialRequests is the canonical notes field; older clients submit
	// the same content as "message".
	SpecialRequests string `json:"specialRequests"`
	Message         string `json:"message"`
}

// Notes returns the special requests, falling back to the generic message
// field, falling back to empty.
func (r ReservationRequest) Notes() string {
	if r.SpecialRequests != "" {
		return r.SpecialRequests
	}
	return r.Message
}

// ContactRequest is a contact form submission. Subject is optional and
// defaults to a fixed placeholder.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// defaultContactSubject is used when the form leaves the subject empty.
const defaultContactSubject = "General Inquiry"
