// Package service defines interfaces for external collaborators of the core.
package service

import (
	"context"
)

// Messenger defines the interface for the external push messaging provider.
type Messenger interface {
	// Send delivers one message to one recipient token and returns the
	// provider's message ID on success.
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}
