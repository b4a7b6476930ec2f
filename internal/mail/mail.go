// Package mail defines the provider-agnostic outbound email contract.
package mail

import "context"

// Message is a single transactional email. Fields are provider-agnostic so
// the same message can go through an SMTP relay or an HTTP email API.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender abstracts the delivery channel for dependency injection and tests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
