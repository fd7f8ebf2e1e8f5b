//go:build !integration

package timeutil

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0ns"},
		{"nanoseconds", 740 * time.Nanosecond, "740ns"},
		{"microseconds", 13 * time.Microsecond, "13µs"},
		{"sub-millisecond stays in microseconds", 999 * time.Microsecond, "999µs"},
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"sub-second stays in milliseconds", 999 * time.Millisecond, "999ms"},
		{"seconds with fraction", 1200 * time.Millisecond, "1.2s"},
		{"whole seconds", 5 * time.Second, "5.0s"},
		{"just under a minute", 59*time.Second + 900*time.Millisecond, "59.9s"},
		{"minutes and seconds", 90 * time.Second, "1m30s"},
		{"whole minutes", 3 * time.Minute, "3m0s"},
		{"hours and minutes", 2*time.Hour + 45*time.Minute, "2h45m"},
		{"whole hours", time.Hour, "1h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.duration)
			if got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}
