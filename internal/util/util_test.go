package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestCeilMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected int
	}{
		{name: "zero", duration: 0, expected: 0},
		{name: "negative", duration: -time.Minute, expected: 0},
		{name: "under a minute rounds up", duration: 10 * time.Second, expected: 1},
		{name: "exact minutes", duration: 3 * time.Minute, expected: 3},
		{name: "partial minute rounds up", duration: 3*time.Minute + time.Second, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CeilMinutes(tt.duration); got != tt.expected {
				t.Fatalf("CeilMinutes(%s) = %d, want %d", tt.duration, got, tt.expected)
			}
		})
	}
}
