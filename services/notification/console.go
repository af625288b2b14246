package notification

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleSender logs notifications instead of delivering them. Development
// default.
type ConsoleSender struct {
	Logger *zap.Logger
}

func NewConsoleSender(logger *zap.Logger) *ConsoleSender {
	return &ConsoleSender{Logger: logger}
}

func (s *ConsoleSender) SendSMS(_ context.Context, opts SMSOptions) error {
	s.Logger.Info("SMS notification",
		zap.String("to", opts.To),
		zap.String("message", opts.Message))
	return nil
}

func (s *ConsoleSender) SendEmail(_ context.Context, opts EmailOptions) error {
	s.Logger.Info("Email notification",
		zap.String("to", opts.To),
		zap.String("subject", opts.Subject),
		zap.String("text", opts.Text))
	return nil
}
