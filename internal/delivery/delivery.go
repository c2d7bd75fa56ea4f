// Package delivery defines the contract every server implementation satisfies.
package delivery

import "context"

// Delivery is a long-running server started by the application runner.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
