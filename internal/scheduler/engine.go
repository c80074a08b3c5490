package scheduler

import (
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/ledger"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Visibility is the per-day display decision for a habit. QuotaMet is
// distinct from NotScheduled so a renderer can show a dimmed "done this week"
// placeholder instead of nothing.
type Visibility string

const (
	VisibilityNotScheduled Visibility = "not_scheduled"
	VisibilityShown        Visibility = "shown"
	VisibilityQuotaMet     Visibility = "quota_met"
)

// Engine answers, for a habit on a given day, whether it applies, whether it
// should be displayed, whether it gates day completeness, and whether its
// weekly quota is already satisfied. The week boundary is fixed at
// construction; the engine holds no other state.
type Engine struct {
	weekStart calendar.WeekStart
}

func NewEngine(weekStart calendar.WeekStart) *Engine {
	if !weekStart.IsValid() {
		weekStart = calendar.WeekStartMonday
	}
	return &Engine{weekStart: weekStart}
}

func (e *Engine) WeekStart() calendar.WeekStart {
	return e.weekStart
}

// WeeklyCompletions counts the days within day's week on which the ledger
// records the habit as done.
func (e *Engine) WeeklyCompletions(h model.Habit, history ledger.History, day time.Time) int {
	count := 0
	for _, d := range calendar.DaysOfWeek(day, e.weekStart) {
		if history.Done(calendar.DayKey(d), h.ID) {
			count++
		}
	}
	return count
}

// QuotaMet reports whether the habit's weekly target is already satisfied in
// the week containing day.
func (e *Engine) QuotaMet(h model.Habit, history ledger.History, day time.Time) bool {
	return e.WeeklyCompletions(h, history, day) >= h.FrequencyPerWeek
}

// VisibilityOn decides whether the habit is shown on day. Specific-day and
// daily habits are always shown when applicable. A frequency habit stays
// visible on a day it is itself checked (so it can be unchecked) and on any
// day while the weekly quota is still open; once the quota is met it folds
// away for the rest of the week.
func (e *Engine) VisibilityOn(h model.Habit, history ledger.History, day time.Time) Visibility {
	if !h.Valid() || !h.IsApplicable(day) {
		return VisibilityNotScheduled
	}
	if h.SpecificDaysMode() || h.Daily() {
		return VisibilityShown
	}
	if history.Done(calendar.DayKey(day), h.ID) {
		return VisibilityShown
	}
	if e.QuotaMet(h, history, day) {
		return VisibilityQuotaMet
	}
	return VisibilityShown
}

// FirmlyExpected reports whether missing the habit on day should count
// against that day being fully complete. Only applicable specific-day habits
// and daily habits qualify; sub-daily frequency habits never gate a day.
func FirmlyExpected(h model.Habit, day time.Time) bool {
	if h.SpecificDaysMode() {
		return h.IsApplicable(day)
	}
	return h.Daily()
}

// DayComplete reports whether every firmly-expected habit has a true ledger
// entry on day. A day with no firmly-expected habits is never complete.
func (e *Engine) DayComplete(habits []model.Habit, history ledger.History, day time.Time) bool {
	key := calendar.DayKey(day)
	expected := 0
	for _, h := range model.FilterValid(habits) {
		if !FirmlyExpected(h, day) {
			continue
		}
		expected++
		if !history.Done(key, h.ID) {
			return false
		}
	}
	return expected > 0
}
