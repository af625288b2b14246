package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// PushSender delivers notifications as FCM pushes to dashboard devices. The
// To field of an SMS/email is interpreted as the device registration token.
type PushSender struct {
	client *messaging.Client
}

// NewPushSender initializes the Firebase app and Messaging client from a
// service-account credentials file.
func NewPushSender(ctx context.Context, credFile string) (*PushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credFile))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}
	return &PushSender{client: client}, nil
}

func (s *PushSender) SendSMS(ctx context.Context, opts SMSOptions) error {
	return s.push(ctx, opts.To, "Reminder", opts.Message)
}

func (s *PushSender) SendEmail(ctx context.Context, opts EmailOptions) error {
	return s.push(ctx, opts.To, opts.Subject, opts.Text)
}

func (s *PushSender) push(ctx context.Context, token, title, body string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}
