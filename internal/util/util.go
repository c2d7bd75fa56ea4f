package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// CeilMinutes returns the duration rounded up to whole minutes.
// Reader displays show the remaining debounce wait in minutes.
func CeilMinutes(duration time.Duration) int {
	if duration <= 0 {
		return 0
	}

	minutes := int(duration / time.Minute)
	if duration%time.Minute != 0 {
		minutes++
	}

	return minutes
}
