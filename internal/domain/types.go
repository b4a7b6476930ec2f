package domain

type SubmitState string

const (
	StateRejected   SubmitState = "rejected"
	StateSuppressed SubmitState = "suppressed"
	StateSent       SubmitState = "sent"
)

// Submission is the wire entity posted by the contact form. Website is the
// honeypot field; legitimate clients send it empty.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Website string `json:"website,omitempty"`
}

// FieldError addresses one failing field by its wire identifier so the
// client can render the message next to the right input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitResult is the terminal outcome of one submission. FieldErrors is
// populated only for StateRejected.
type SubmitResult struct {
	EnquiryID   string
	State       SubmitState
	FieldErrors []FieldError
}

// APIResponse is the JSON body returned for every /api/contact request.
type APIResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}
