// Package memory provides in-memory repository implementations for tests and
// local development without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"

	"github.com/google/uuid"
)

// TapLedger is an in-memory implementation of repository.TapLedger. Events
// are kept per identity in append order. Safe for concurrent use.
type TapLedger struct {
	mu     sync.RWMutex
	events map[string][]*entity.TapEvent
	byID   map[uuid.UUID]*entity.TapEvent
}

// NewTapLedger creates an empty in-memory tap ledger.
func NewTapLedger() *TapLedger {
	return &TapLedger{
		events: make(map[string][]*entity.TapEvent),
		byID:   make(map[uuid.UUID]*entity.TapEvent),
	}
}

// Append records an accepted tap event.
func (l *TapLedger) Append(_ context.Context, event *entity.TapEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *event
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	key := stored.Ref().Key()
	l.events[key] = append(l.events[key], &stored)
	l.byID[stored.ID] = &stored

	return nil
}

// LastEvent retrieves the identity's event with the latest TappedAt.
func (l *TapLedger) LastEvent(_ context.Context, ref entity.IdentityRef) (*entity.TapEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastMatching(ref, func(*entity.TapEvent) bool { return true })
}

// LastEventInRange retrieves the identity's latest event with
// from <= TappedAt < to.
func (l *TapLedger) LastEventInRange(_ context.Context, ref entity.IdentityRef, from, to time.Time) (*entity.TapEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastMatching(ref, func(event *entity.TapEvent) bool {
		return !event.TappedAt.Before(from) && event.TappedAt.Before(to)
	})
}

// SetNotificationOutcome reconciles the delivery outcome exactly once.
func (l *TapLedger) SetNotificationOutcome(_ context.Context, eventID uuid.UUID, outcome entity.NotificationOutcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event, ok := l.byID[eventID]
	if !ok {
		return repository.ErrTapNotFound
	}
	if event.NotificationOutcome != entity.OutcomePending {
		return repository.ErrOutcomeAlreadySet
	}

	event.NotificationOutcome = outcome

	return nil
}

// Count reports the number of events stored for an identity.
func (l *TapLedger) Count(ref entity.IdentityRef) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events[ref.Key()])
}

func (l *TapLedger) lastMatching(ref entity.IdentityRef, match func(*entity.TapEvent) bool) (*entity.TapEvent, error) {
	var last *entity.TapEvent
	for _, event := range l.events[ref.Key()] {
		if !match(event) {
			continue
		}
		if last == nil || event.TappedAt.After(last.TappedAt) {
			last = event
		}
	}
	if last == nil {
		return nil, repository.ErrTapNotFound
	}

	copied := *last

	return &copied, nil
}
