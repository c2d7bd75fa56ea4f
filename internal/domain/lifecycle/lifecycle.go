// Package lifecycle holds process lifecycle constants shared by all deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
