package notification

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender delivers email over plain SMTP. SMS falls through to a console
// log line because SMTP has no text-message channel.
type SMTPSender struct {
	Host     string
	Port     int
	From     string
	Auth     smtp.Auth
	Fallback Sender
}

func NewSMTPSender(host string, port int, user, password, from string, fallback Sender) *SMTPSender {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPSender{
		Host:     host,
		Port:     port,
		From:     from,
		Auth:     auth,
		Fallback: fallback,
	}
}

func (s *SMTPSender) SendSMS(ctx context.Context, opts SMSOptions) error {
	return s.Fallback.SendSMS(ctx, opts)
}

func (s *SMTPSender) SendEmail(_ context.Context, opts EmailOptions) error {
	body := opts.Text
	contentType := "text/plain; charset=\"UTF-8\""
	if opts.HTML != "" {
		body = opts.HTML
		contentType = "text/html; charset=\"UTF-8\""
	}
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n%s\r\n",
		opts.To, s.From, opts.Subject, contentType, body))

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	if err := smtp.SendMail(addr, s.Auth, s.From, []string{opts.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", opts.To, err)
	}
	return nil
}
