package finance

import (
	"testing"
	"time"
)

func TestSelectWindows(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		currentStart  time.Time
		previousStart time.Time
		previousEnd   time.Time
	}{
		{
			name:          "mid month",
			now:           time.Date(2024, time.June, 10, 14, 30, 0, 0, ist),
			currentStart:  time.Date(2024, time.June, 1, 0, 0, 0, 0, ist),
			previousStart: time.Date(2024, time.May, 1, 0, 0, 0, 0, ist),
			previousEnd:   time.Date(2024, time.May, 31, 23, 59, 59, 999999999, ist),
		},
		{
			name:          "january rolls back to december",
			now:           time.Date(2024, time.January, 15, 9, 0, 0, 0, ist),
			currentStart:  time.Date(2024, time.January, 1, 0, 0, 0, 0, ist),
			previousStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, ist),
			previousEnd:   time.Date(2023, time.December, 31, 23, 59, 59, 999999999, ist),
		},
		{
			name:          "march after leap february",
			now:           time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			currentStart:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			previousStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			previousEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := SelectWindows(tt.now)
			if !w.CurrentStart.Equal(tt.currentStart) {
				t.Errorf("CurrentStart: expected %v, got %v", tt.currentStart, w.CurrentStart)
			}
			if !w.PreviousStart.Equal(tt.previousStart) {
				t.Errorf("PreviousStart: expected %v, got %v", tt.previousStart, w.PreviousStart)
			}
			if !w.PreviousEnd.Equal(tt.previousEnd) {
				t.Errorf("PreviousEnd: expected %v, got %v", tt.previousEnd, w.PreviousEnd)
			}
			if !w.Current().End.Equal(tt.now) {
				t.Errorf("current window should end at now")
			}
			if w.CurrentStart.Location() != tt.now.Location() {
				t.Errorf("expected boundaries in %v", tt.now.Location())
			}
		})
	}
}

func TestSelectWindows_UsesLocation(t *testing.T) {
	// 20:00 UTC on March 31 is already April 1 in IST.
	instant := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.April, 5, 12, 0, 0, 0, ist)

	w := SelectWindows(now)
	if !w.Current().Contains(instant) {
		t.Error("expected instant to fall in the IST current month")
	}
	if w.Previous().Contains(instant) {
		t.Error("instant should not fall in the previous month")
	}

	utc := SelectWindows(now.UTC())
	if utc.Current().Contains(instant) {
		t.Error("in UTC the instant belongs to March")
	}
}

func TestWindow_ContainsBounds(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 23, 59, 59, 999999999, time.UTC)
	w := Window{Start: start, End: end}

	if !w.Contains(start) || !w.Contains(end) {
		t.Error("bounds should be inclusive")
	}
	if w.Contains(start.Add(-time.Nanosecond)) || w.Contains(end.Add(time.Nanosecond)) {
		t.Error("instants outside the bounds should be excluded")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%v): expected %d, got %d", tt.date, tt.want, got)
		}
	}
}

func TestFixedClock(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, ist)
	if got := FixedClock(now).Now(); !got.Equal(now) {
		t.Errorf("expected %v, got %v", now, got)
	}
	if loc := (SystemClock{Location: ist}).Now().Location(); loc != ist {
		t.Errorf("expected IST, got %v", loc)
	}
}
