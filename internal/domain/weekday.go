package domain

import (
	"strings"
	"time"
)

// WeekdayKey is one of the seven canonical lowercase weekday strings.
type WeekdayKey string

const (
	Sunday    WeekdayKey = "sunday"
	Monday    WeekdayKey = "monday"
	Tuesday   WeekdayKey = "tuesday"
	Wednesday WeekdayKey = "wednesday"
	Thursday  WeekdayKey = "thursday"
	Friday    WeekdayKey = "friday"
	Saturday  WeekdayKey = "saturday"
)

// WeekdayKeys lists the canonical keys indexed by time.Weekday (Sunday = 0).
var WeekdayKeys = [7]WeekdayKey{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

var validWeekdays = map[WeekdayKey]bool{
	Sunday: true, Monday: true, Tuesday: true, Wednesday: true,
	Thursday: true, Friday: true, Saturday: true,
}

// WeekdayOf returns the canonical key for a calendar date.
func WeekdayOf(t time.Time) WeekdayKey {
	return WeekdayKeys[int(t.Weekday())]
}

// Label returns the capitalized display form of the weekday.
func (w WeekdayKey) Label() string {
	return capitalize(string(w))
}

// NormalizeDays lowercases, validates and deduplicates a weekday list.
// Unknown tokens are dropped rather than reported; relative order is kept.
func NormalizeDays(list []string) []WeekdayKey {
	seen := make(map[WeekdayKey]bool, len(list))
	var out []WeekdayKey
	for _, raw := range list {
		day := WeekdayKey(strings.ToLower(strings.TrimSpace(raw)))
		if !validWeekdays[day] || seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}
	return out
}
