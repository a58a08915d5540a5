package calendar

import (
	"iter"
	"time"
)

// DayFormat is the canonical YYYY-MM-DD rendering of a calendar day.
const DayFormat = "2006-01-02"

// DateOf truncates a timestamp to its calendar day at midnight UTC.
// All due-date comparisons in the planner are by calendar day.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Days returns a day-by-day sequence over [start, end] inclusive.
// The sequence is empty when start is after end. It can be ranged over
// more than once.
func Days(start, end time.Time) iter.Seq[time.Time] {
	first := DateOf(start)
	last := DateOf(end)
	return func(yield func(time.Time) bool) {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}
