package impl

import (
	"testing"
	"time"

	"tapgate/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveTap_FirstTapIsIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

	decision := resolveTap(nil, nil, 5*time.Minute, now)

	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionIn, decision.direction)
	assert.Zero(t, decision.remaining)
}

func TestResolveTap_WithinWindowRejected(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	lastAny := &entity.TapEvent{
		Direction: entity.DirectionIn,
		TappedAt:  now.Add(-2 * time.Minute),
	}

	decision := resolveTap(lastAny, lastAny, 5*time.Minute, now)

	assert.False(t, decision.accepted)
	assert.Equal(t, 3*time.Minute, decision.remaining)
}

func TestResolveTap_ExactlyAtWindowAccepted(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	lastAny := &entity.TapEvent{
		Direction: entity.DirectionIn,
		TappedAt:  now.Add(-5 * time.Minute),
	}

	decision := resolveTap(lastAny, lastAny, 5*time.Minute, now)

	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionOut, decision.direction)
}

func TestResolveTap_DirectionAlternates(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 5 * time.Minute

	lastIn := &entity.TapEvent{Direction: entity.DirectionIn, TappedAt: now.Add(-time.Hour)}
	decision := resolveTap(lastIn, lastIn, window, now)
	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionOut, decision.direction)

	lastOut := &entity.TapEvent{Direction: entity.DirectionOut, TappedAt: now.Add(-time.Hour)}
	decision = resolveTap(lastOut, lastOut, window, now)
	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionIn, decision.direction)
}

func TestResolveTap_NewDayResetsDirection(t *testing.T) {
	// Yesterday ended with an "in" that was never closed out, so lastAny is
	// that trailing "in" while lastToday is empty. Today's first tap must
	// still be "in".
	now := time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)
	lastAny := &entity.TapEvent{
		Direction: entity.DirectionIn,
		TappedAt:  now.Add(-14 * time.Hour),
	}

	decision := resolveTap(lastAny, nil, 5*time.Minute, now)

	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionIn, decision.direction)
}

func TestResolveTap_CrossDeviceDebounce(t *testing.T) {
	// The debounce window is per identity, not per device: a fresh tap on
	// device B is blocked by a too-recent tap on device A.
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	lastOnOtherDevice := &entity.TapEvent{
		Direction: entity.DirectionIn,
		TappedAt:  now.Add(-30 * time.Second),
	}

	decision := resolveTap(lastOnOtherDevice, lastOnOtherDevice, 5*time.Minute, now)

	assert.False(t, decision.accepted)
	assert.Equal(t, 270*time.Second, decision.remaining)
}

func TestResolveTap_BurstScenario(t *testing.T) {
	base := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	window := 5 * time.Minute

	// t=0: first tap of the day, accepted as "in".
	decision := resolveTap(nil, nil, window, base)
	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionIn, decision.direction)

	accepted := &entity.TapEvent{Direction: entity.DirectionIn, TappedAt: base}

	// t=120s: inside the window, rejected with 180s remaining.
	decision = resolveTap(accepted, accepted, window, base.Add(120*time.Second))
	assert.False(t, decision.accepted)
	assert.Equal(t, 180*time.Second, decision.remaining)

	// t=301s: window elapsed, accepted as "out".
	decision = resolveTap(accepted, accepted, window, base.Add(301*time.Second))
	assert.True(t, decision.accepted)
	assert.Equal(t, entity.DirectionOut, decision.direction)

	acceptedOut := &entity.TapEvent{Direction: entity.DirectionOut, TappedAt: base.Add(301 * time.Second)}

	// t=310s: blocked again by the fresh "out".
	decision = resolveTap(acceptedOut, acceptedOut, window, base.Add(310*time.Second))
	assert.False(t, decision.accepted)
	assert.Equal(t, 291*time.Second, decision.remaining)
}

func TestDayBounds_LocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2025-03-10 01:30 Jakarta is still 2025-03-09 in UTC; the day boundary
	// must follow the local calendar.
	now := time.Date(2025, 3, 10, 1, 30, 0, 0, loc)
	start, end := dayBounds(now, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDayBounds_UTCInputConverted(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 18:30 UTC on March 9 is already 01:30 March 10 in Jakarta.
	now := time.Date(2025, 3, 9, 18, 30, 0, 0, time.UTC)
	start, _ := dayBounds(now, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
}
