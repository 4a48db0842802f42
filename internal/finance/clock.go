package finance

import "time"

// Clock supplies the reference instant for window selection.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location so that "this
// month" follows the user's calendar rather than the host's.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in c.Location, or UTC when unset.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }
