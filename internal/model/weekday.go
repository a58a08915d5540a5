package model

import "time"

// Weekday names one day of the week in a task model's recurrence set.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists every weekday in Monday-first order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf maps a calendar day to its weekday tag.
func WeekdayOf(t time.Time) Weekday {
	return weekdayByTime[t.Weekday()]
}

func (d Weekday) Valid() bool {
	for _, known := range AllWeekdays {
		if d == known {
			return true
		}
	}
	return false
}

// WeekdaySet is an unordered weekday collection, stored as a JSON array.
type WeekdaySet []Weekday

func (s WeekdaySet) Contains(d Weekday) bool {
	for _, member := range s {
		if member == d {
			return true
		}
	}
	return false
}

// Normalize returns the set de-duplicated in Monday-first order.
func (s WeekdaySet) Normalize() WeekdaySet {
	var out WeekdaySet
	for _, day := range AllWeekdays {
		if s.Contains(day) {
			out = append(out, day)
		}
	}
	return out
}
