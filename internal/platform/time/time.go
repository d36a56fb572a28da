// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero; used for nullable timestamptz args
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// DaysBefore returns the UTC instant days*24h before now, truncated to the second
func DaysBefore(now time.Time, days int) time.Time {
	return now.UTC().Add(-time.Duration(days) * 24 * time.Hour).Truncate(time.Second)
}

// Stamp formats t as UTC RFC3339
func Stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }
