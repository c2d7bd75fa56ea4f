// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tapgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the tap ledger.
var (
	// ErrTapNotFound is returned when no tap event matches the query.
	ErrTapNotFound = errors.New("tap event not found")
	// ErrOutcomeAlreadySet is returned when a notification outcome has
	// already been reconciled for the event.
	ErrOutcomeAlreadySet = errors.New("notification outcome already set")
)

// TapLedger is the durable, append-only store of accepted tap events.
//
// Append must be durable before it returns; reads must observe every append
// that completed before them in real time for the same identity. Cross-identity
// ordering carries no guarantee.
type TapLedger interface {
	// Append durably records an accepted tap event.
	Append(ctx context.Context, event *entity.TapEvent) error

	// LastEvent retrieves the identity's most recent event across all days
	// and devices, or ErrTapNotFound.
	LastEvent(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error)

	// LastEventInRange retrieves the identity's most recent event with
	// from <= TappedAt < to, or ErrTapNotFound. Used for the calendar-day
	// direction lookup.
	LastEventInRange(ctx context.Context, ref entity.IdentityRef, from, to time.Time) (*entity.TapEvent, error)

	// SetNotificationOutcome reconciles the delivery outcome of an event,
	// exactly once. A second call returns ErrOutcomeAlreadySet.
	SetNotificationOutcome(ctx context.Context, eventID uuid.UUID, outcome entity.NotificationOutcome) error
}

// DeliveryLogRepository persists per-recipient delivery attempts.
type DeliveryLogRepository interface {
	// BatchCreate persists delivery log entries in one round trip.
	BatchCreate(ctx context.Context, logs []*entity.DeliveryLog) error
}

// RecipientRepository resolves notification recipients for an identity.
type RecipientRepository interface {
	// FindEnabledGuardians retrieves guardians of a student that have
	// notifications enabled. An empty slice is a valid outcome.
	FindEnabledGuardians(ctx context.Context, identityID uuid.UUID) ([]*entity.Recipient, error)
}
