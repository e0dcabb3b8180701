package mailx

// Message represents an email to be sent. It is constructed fresh per
// send, owned by the call that creates it, and discarded once the attempt
// settles.
type Message struct {
	// From is the sender identity, either a bare address or
	// "Display Name <address>".
	From string `json:"from"`

	// To is the ordered, non-empty recipient list.
	To []string `json:"to"`

	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body,omitempty"`
	TextBody string `json:"text_body,omitempty"`
}
