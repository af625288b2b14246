package notification

import "context"

// SMSOptions describes an outbound text message.
type SMSOptions struct {
	To      string
	Message string
}

// EmailOptions describes an outbound email.
type EmailOptions struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers customer-facing notifications. The concrete implementation
// is chosen once at process start and passed to the worker and services as a
// constructor argument; nothing looks it up through ambient global state.
type Sender interface {
	SendSMS(ctx context.Context, opts SMSOptions) error
	SendEmail(ctx context.Context, opts EmailOptions) error
}
