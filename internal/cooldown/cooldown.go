// Package cooldown gates repeated command use against per-player
// last-used timestamps stored as Unix milliseconds.
package cooldown

import "time"

// Remaining reports whether an action is still cooling down and how long
// is left. lastMs is the Unix-millisecond timestamp of the previous use
// (0 = never used).
func Remaining(lastMs int64, d time.Duration, now time.Time) (time.Duration, bool) {
	if lastMs == 0 {
		return 0, false
	}
	elapsed := now.Sub(time.UnixMilli(lastMs))
	if elapsed >= d {
		return 0, false
	}
	return d - elapsed, true
}

// CeilSeconds rounds a remaining duration up to whole seconds for chat
// display ("try again in 7s").
func CeilSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}

// HoursMinutes splits a remaining duration for long cooldowns
// ("come back in 3h 27m").
func HoursMinutes(d time.Duration) (hours, minutes int) {
	hours = int(d / time.Hour)
	minutes = int((d % time.Hour) / time.Minute)
	return hours, minutes
}
