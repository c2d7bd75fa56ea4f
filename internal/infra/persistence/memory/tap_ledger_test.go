package memory

import (
	"context"
	"testing"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(ref entity.IdentityRef, tappedAt time.Time, direction entity.Direction) *entity.TapEvent {
	return &entity.TapEvent{
		ID:                  uuid.New(),
		IdentityID:          ref.ID,
		IdentityClass:       ref.Class,
		DeviceID:            uuid.New(),
		Direction:           direction,
		TappedAt:            tappedAt,
		NotificationOutcome: entity.OutcomePending,
	}
}

func TestTapLedger_LastEvent(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	ref := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}
	base := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	_, err := ledger.LastEvent(ctx, ref)
	require.ErrorIs(t, err, repository.ErrTapNotFound)

	first := newEvent(ref, base, entity.DirectionIn)
	second := newEvent(ref, base.Add(6*time.Minute), entity.DirectionOut)
	require.NoError(t, ledger.Append(ctx, first))
	require.NoError(t, ledger.Append(ctx, second))

	last, err := ledger.LastEvent(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, entity.DirectionOut, last.Direction)
	assert.Equal(t, 2, ledger.Count(ref))
}

func TestTapLedger_LastEventIsolatedPerIdentity(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	refA := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}
	refB := entity.IdentityRef{Class: entity.ClassTeacher, ID: uuid.New()}

	require.NoError(t, ledger.Append(ctx, newEvent(refA, base, entity.DirectionIn)))

	_, err := ledger.LastEvent(ctx, refB)
	assert.ErrorIs(t, err, repository.ErrTapNotFound)
}

func TestTapLedger_LastEventInRange(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	ref := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}

	yesterday := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	trailing := newEvent(ref, yesterday, entity.DirectionIn)
	require.NoError(t, ledger.Append(ctx, trailing))

	// Yesterday's trailing event is outside today's bounds.
	_, err := ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	require.ErrorIs(t, err, repository.ErrTapNotFound)

	todays := newEvent(ref, today, entity.DirectionIn)
	require.NoError(t, ledger.Append(ctx, todays))

	last, err := ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, todays.ID, last.ID)

	// The global view still sees both.
	last, err = ledger.LastEvent(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, todays.ID, last.ID)
}

func TestTapLedger_RangeBoundsAreHalfOpen(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	ref := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}

	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	atStart := newEvent(ref, dayStart, entity.DirectionIn)
	require.NoError(t, ledger.Append(ctx, atStart))

	last, err := ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, atStart.ID, last.ID)

	atEnd := newEvent(ref, dayEnd, entity.DirectionOut)
	require.NoError(t, ledger.Append(ctx, atEnd))

	// An event exactly at the end bound belongs to the next day.
	last, err = ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, atStart.ID, last.ID)
}

func TestTapLedger_SetNotificationOutcomeExactlyOnce(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	ref := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}

	event := newEvent(ref, time.Now(), entity.DirectionIn)
	require.NoError(t, ledger.Append(ctx, event))

	require.NoError(t, ledger.SetNotificationOutcome(ctx, event.ID, entity.OutcomeSent))

	err := ledger.SetNotificationOutcome(ctx, event.ID, entity.OutcomeFailed)
	assert.ErrorIs(t, err, repository.ErrOutcomeAlreadySet)

	// The first write sticks.
	last, err := ledger.LastEvent(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSent, last.NotificationOutcome)
}

func TestTapLedger_SetNotificationOutcomeUnknownEvent(t *testing.T) {
	ledger := NewTapLedger()

	err := ledger.SetNotificationOutcome(context.Background(), uuid.New(), entity.OutcomeSent)
	assert.ErrorIs(t, err, repository.ErrTapNotFound)
}

func TestTapLedger_AppendCopiesEvent(t *testing.T) {
	ledger := NewTapLedger()
	ctx := context.Background()
	ref := entity.IdentityRef{Class: entity.ClassStudent, ID: uuid.New()}

	event := newEvent(ref, time.Now(), entity.DirectionIn)
	require.NoError(t, ledger.Append(ctx, event))

	// Mutating the caller's copy after append must not corrupt the ledger.
	event.Direction = entity.DirectionOut

	last, err := ledger.LastEvent(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionIn, last.Direction)
}
