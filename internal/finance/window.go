package finance

import "time"

// Window is an inclusive [Start, End] time range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Windows holds the month boundaries around a reference instant. The
// current month runs from CurrentStart through Now; the previous month
// runs from PreviousStart through PreviousEnd, the last instant before
// CurrentStart.
type Windows struct {
	CurrentStart  time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
	Now           time.Time
}

// SelectWindows computes the current and previous calendar-month windows
// for now, in now's location.
func SelectWindows(now time.Time) Windows {
	y, m, _ := now.Date()
	loc := now.Location()

	currentStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	// time.Date normalizes month 0 to December of the prior year.
	previousStart := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)

	return Windows{
		CurrentStart:  currentStart,
		PreviousStart: previousStart,
		PreviousEnd:   currentStart.Add(-time.Nanosecond),
		Now:           now,
	}
}

// Current returns the month-to-date window.
func (w Windows) Current() Window {
	return Window{Start: w.CurrentStart, End: w.Now}
}

// Previous returns the whole previous calendar month.
func (w Windows) Previous() Window {
	return Window{Start: w.PreviousStart, End: w.PreviousEnd}
}

// DaysInMonth returns the number of days in t's calendar month.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthLabel formats the month of t as "January 2006".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
