// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is a destination for tap notifications: a guardian of a student,
// or the configured supervisor contact for teacher escalations.
type Recipient struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the recipient.
	IdentityID    uuid.UUID `json:"identity_id"`    // The identity this recipient is attached to.
	Label         string    `json:"label"`          // Display label (e.g. guardian name).
	PushToken     string    `json:"push_token"`     // Messaging provider token for delivery.
	NotifyEnabled bool      `json:"notify_enabled"` // Disabled recipients are skipped, not failed.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}

// DeliveryLog records one delivery attempt to one recipient for one tap event.
type DeliveryLog struct {
	ID                uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the log entry.
	TapEventID        uuid.UUID `json:"tap_event_id"`        // The tap event this delivery belongs to.
	RecipientLabel    string    `json:"recipient_label"`     // Label of the recipient at send time.
	PushToken         string    `json:"push_token"`          // Token the message was sent to.
	Message           string    `json:"message"`             // Rendered message body.
	Status            string    `json:"status"`              // Delivery status (sent, failed).
	ProviderMessageID string    `json:"provider_message_id"` // Message ID returned by the provider, if any.
	ErrorMessage      string    `json:"error_message"`       // Error message if the delivery failed.
	SentAt            time.Time `json:"sent_at"`             // Timestamp of the delivery attempt.
}

// Delivery statuses recorded on DeliveryLog.
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)
