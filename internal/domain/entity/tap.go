// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Direction tells whether a tap records an arrival or a departure.
type Direction string

const (
	// DirectionIn marks an arrival tap.
	DirectionIn Direction = "in"
	// DirectionOut marks a departure tap.
	DirectionOut Direction = "out"
)

// NotificationOutcome is the reconciled delivery result of a tap's notification.
type NotificationOutcome string

const (
	// OutcomePending is set on append, before the dispatcher has run.
	OutcomePending NotificationOutcome = "pending"
	// OutcomeSent means at least one recipient delivery succeeded.
	OutcomeSent NotificationOutcome = "sent"
	// OutcomeFailed means every recipient delivery failed.
	OutcomeFailed NotificationOutcome = "failed"
	// OutcomeNone means no recipients were configured; a no-op, not a failure.
	OutcomeNone NotificationOutcome = "none"
)

// TapEvent is one accepted badge read. Events are immutable once appended;
// only NotificationOutcome is reconciled afterwards, exactly once.
type TapEvent struct {
	ID                  uuid.UUID           `json:"id"`                   // The Global Unique Identifier (GUID) for the event.
	IdentityID          uuid.UUID           `json:"identity_id"`          // The identity whose badge was read.
	IdentityClass       IdentityClass       `json:"identity_class"`       // Student or teacher.
	DeviceID            uuid.UUID           `json:"device_id"`            // The device that read the badge.
	Direction           Direction           `json:"direction"`            // Arrival or departure.
	TappedAt            time.Time           `json:"tapped_at"`            // Moment of the physical tap.
	NotificationOutcome NotificationOutcome `json:"notification_outcome"` // Reconciled delivery outcome.
	CreatedAt           time.Time           `json:"created_at"`           // Timestamp of when this record was created.
}

// Ref returns the event stream address of the identity this event belongs to.
func (e *TapEvent) Ref() IdentityRef {
	return IdentityRef{Class: e.IdentityClass, ID: e.IdentityID}
}
