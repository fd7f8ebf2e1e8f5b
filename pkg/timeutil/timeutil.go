// Package timeutil provides compact duration formatting for the debug
// logger's elapsed-time suffixes.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders d in the shortest unit that keeps it readable,
// matching the elapsed-time suffixes of the npm debug package: 740ns,
// 13µs, 250ms, 1.2s, 3m20s, 2h45m.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		d = d.Round(time.Second)
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		d = d.Round(time.Minute)
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
