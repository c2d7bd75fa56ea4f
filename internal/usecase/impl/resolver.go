package impl

import (
	"time"

	"tapgate/internal/domain/entity"
)

// tapDecision is the outcome of the debounce and direction rules for one
// candidate tap.
type tapDecision struct {
	accepted  bool
	direction entity.Direction
	remaining time.Duration
}

// resolveTap applies the debounce and direction rules.
//
// The two inputs deliberately have different scopes: lastAny is the identity's
// most recent event across all days and devices and feeds the debounce check,
// while lastToday is the most recent event on the current calendar day and
// feeds direction alternation. A tap on one device can therefore be blocked
// by a too-recent tap on another, and a previous day's trailing "in" never
// forces today's first tap to be "out".
func resolveTap(lastAny, lastToday *entity.TapEvent, window time.Duration, now time.Time) tapDecision {
	if lastAny != nil {
		elapsed := now.Sub(lastAny.TappedAt)
		if elapsed < window {
			return tapDecision{
				accepted:  false,
				remaining: window - elapsed,
			}
		}
	}

	direction := entity.DirectionIn
	if lastToday != nil && lastToday.Direction == entity.DirectionIn {
		direction = entity.DirectionOut
	}

	return tapDecision{
		accepted:  true,
		direction: direction,
	}
}

// dayBounds returns the [start, end) interval of now's calendar day in loc.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	// AddDate handles DST transitions; a fixed 24h offset would not.
	return start, start.AddDate(0, 0, 1)
}
