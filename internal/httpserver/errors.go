package httpserver

// User-facing error strings. Delivery and parsing detail stays in the logs;
// the caller only ever sees these.
const (
	ErrInvalidForm = "Invalid form data."
	ErrServer      = "Server error."
)
