package service

import (
	"context"
)

// TapAcceptedEvent is the read-only view of an accepted tap handed to the
// notification dispatcher after the ledger append commits.
type TapAcceptedEvent struct {
	RequestID          string `json:"request_id,omitempty"` // For distributed tracing
	TapEventID         string `json:"tap_event_id"`
	IdentityID         string `json:"identity_id"`
	IdentityClass      string `json:"identity_class"`
	IdentityName       string `json:"identity_name"`
	IdentityCode       string `json:"identity_code"`
	DeviceCode         string `json:"device_code"`
	LocationLabel      string `json:"location_label"`
	Direction          string `json:"direction"`
	RequiresEscalation bool   `json:"requires_escalation"`
	TappedAt           string `json:"tapped_at"` // RFC3339
}

// EventPublisher defines the interface for handing accepted taps to the
// notification dispatcher. Delivery is best-effort: a publish failure must
// never unwind the already-committed tap.
type EventPublisher interface {
	// PublishTapAccepted publishes an accepted tap for async processing
	PublishTapAccepted(ctx context.Context, event *TapAcceptedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
