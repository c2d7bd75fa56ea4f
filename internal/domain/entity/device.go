// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a fixed RFID reader installed at a location.
// Devices are administered elsewhere; the engine only reads them.
type Device struct {
	ID                 uuid.UUID     `json:"id"`                  // The Global Unique Identifier (GUID) for the device.
	Code               string        `json:"code"`                // Short code the hardware sends with every tap.
	Name               string        `json:"name"`                // Human-readable device name.
	LocationLabel      string        `json:"location_label"`      // Label of the location the device guards (e.g. "Main Gate").
	IsActive           bool          `json:"is_active"`           // Inactive devices never resolve.
	DebounceWindow     time.Duration `json:"debounce_window"`     // Minimum gap between two accepted taps for one identity.
	RequiresEscalation bool          `json:"requires_escalation"` // Teacher taps at this device notify the configured supervisor.
}
