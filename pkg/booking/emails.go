package booking

import "fmt"

// operatorReservationEmail summarizes a reservation request for the
// restaurant's operator inbox.
func operatorReservationEmail(ref string, req ReservationRequest) (subject, html string) {
	subject = fmt.Sprintf("New Reservation Request — %s (%s, %d guests)", req.Name, req.Date, req.Guests)

	notes := req.Notes()
	if notes == "" {
		notes = "—"
	}

	html = fmt.Sprintf(`<h2>New Reservation Request</h2>
<p>Reference: <strong>%s</strong></p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Email:</strong> %s</li>
  <li><strong>Phone:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Guests:</strong> %d</li>
  <li><strong>Special requests:</strong> %s</li>
</ul>`,
		ref, req.Name, req.Email, req.Phone, req.Date, req.Time, req.Guests, notes)

	return subject, html
}

// customerReservationEmail acknowledges receipt of the request to the
// customer. It is explicitly not a booking confirmation.
func customerReservationEmail(ref string, req ReservationRequest) (subject, html string) {
	subject = "We received your reservation request — Akira Kitchen"

	html = fmt.Sprintf(`<h2>Thank you, %s!</h2>
<p>We received your reservation request and will confirm availability shortly.</p>
<ul>
  <li><strong>Reference:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Guests:</strong> %d</li>
</ul>
<p>This is an acknowledgment of your request, not a confirmed booking.
We will reach out at %s or %s to confirm.</p>`,
		req.Name, ref, req.Date, req.Time, req.Guests, req.Email, req.Phone)

	return subject, html
}

// contactEmail forwards a contact inquiry to the operator inbox with the
// submitted fields verbatim inside a preformatted block.
func contactEmail(req ContactRequest, subject string) (string, string) {
	html := fmt.Sprintf(`<h2>New Contact Inquiry</h2>
<pre>
Name:    %s
Email:   %s
Subject: %s

%s
</pre>`,
		req.Name, req.Email, subject, req.Message)

	return subject, html
}
