// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Clock returns the current time. Package variables of this type act as
// injectable seams so date resolution can be pinned in tests
type Clock func() time.Time

// SystemClock is the default Clock backed by time.Now
func SystemClock() time.Time { return time.Now() }
