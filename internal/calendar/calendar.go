package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DayLayout is the ledger date-key format shared by every component that
// indexes history by calendar day.
const DayLayout = "2006-01-02"

var ErrInvalidDayKey = errors.New("calendar: invalid day key")

// WeekStart is the process-wide first day of the week. Only Sunday and Monday
// are supported.
type WeekStart time.Weekday

const (
	WeekStartSunday WeekStart = WeekStart(time.Sunday)
	WeekStartMonday WeekStart = WeekStart(time.Monday)
)

func (w WeekStart) IsValid() bool {
	return w == WeekStartSunday || w == WeekStartMonday
}

func (w WeekStart) String() string {
	return time.Weekday(w).String()
}

// ParseWeekStart maps a configuration value to a WeekStart. Anything other
// than "sunday" (case handled by the caller) defaults to Monday.
func ParseWeekStart(raw string) WeekStart {
	if raw == "sunday" {
		return WeekStartSunday
	}
	return WeekStartMonday
}

// DayKey renders t as a ledger date key.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a ledger date key in the local time zone.
func ParseDay(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, key)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday compares t against the wall clock at call time, not against any
// focused navigation date.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// IsFuture reports whether t falls on a calendar day after today.
func IsFuture(t time.Time) bool {
	now := time.Now()
	return !SameDay(t, now) && truncateDay(t).After(truncateDay(now))
}

// DaysOfMonth returns every day of the month containing t, first through
// last, at midnight in t's location.
func DaysOfMonth(t time.Time) []time.Time {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	count := first.AddDate(0, 1, -1).Day()
	out := make([]time.Time, 0, count)
	for d := 1; d <= count; d++ {
		out = append(out, time.Date(year, month, d, 0, 0, 0, 0, t.Location()))
	}
	return out
}

// StartOfWeek returns midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, weekStart WeekStart) time.Time {
	day := truncateDay(t)
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// DaysOfWeek returns the 7 days of the week containing t, beginning on the
// configured week start.
func DaysOfWeek(t time.Time, weekStart WeekStart) []time.Time {
	start := StartOfWeek(t, weekStart)
	out := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
