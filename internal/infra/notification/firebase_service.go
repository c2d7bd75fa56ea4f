// Package notification implements the push messaging provider.
package notification

import (
	"context"
	"fmt"

	"tapgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseMessenger struct {
	client *messaging.Client
}

// NewFirebaseMessenger creates a Firebase Cloud Messaging backed Messenger.
func NewFirebaseMessenger(ctx context.Context, credentialsPath string) (service.Messenger, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseMessenger{
		client: client,
	}, nil
}

// Send delivers one push notification to one device token and returns the
// FCM message ID.
func (s *firebaseMessenger) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}
