package stats

import (
	"math"
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/ledger"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/state"
)

// PeriodStats is the derived per-habit view for the focused week or month.
// Always recomputed from the ledger, never stored.
type PeriodStats struct {
	HabitID    string
	Done       int
	Target     int
	Percentage int
	Met        bool
}

// HabitTotal is the all-time completion count for one habit, scaled against
// the number of distinct dates present in the ledger for the mini progress
// indicator.
type HabitTotal struct {
	HabitID    string
	Count      int
	Percentage int
}

// Engine derives analytics from current habit and ledger state. Like the
// visibility engine it is pure apart from the injected week start.
type Engine struct {
	weekStart calendar.WeekStart
}

func NewEngine(weekStart calendar.WeekStart) *Engine {
	if !weekStart.IsValid() {
		weekStart = calendar.WeekStartMonday
	}
	return &Engine{weekStart: weekStart}
}

// PeriodDays enumerates the days of the viewed period: the week or month
// containing current, per mode.
func (e *Engine) PeriodDays(mode state.ViewMode, current time.Time) []time.Time {
	if mode == state.ViewModeMonth {
		return calendar.DaysOfMonth(current)
	}
	return calendar.DaysOfWeek(current, e.weekStart)
}

// HabitPeriod computes done/target/percentage for one habit over the period.
func (e *Engine) HabitPeriod(h model.Habit, history ledger.History, mode state.ViewMode, days []time.Time) PeriodStats {
	target := periodTarget(h, mode, days)
	done := 0
	for _, d := range days {
		if history.Done(calendar.DayKey(d), h.ID) {
			done++
		}
	}
	return PeriodStats{
		HabitID:    h.ID,
		Done:       done,
		Target:     target,
		Percentage: percentage(done, target),
		Met:        done >= target,
	}
}

func periodTarget(h model.Habit, mode state.ViewMode, days []time.Time) int {
	if h.SpecificDaysMode() {
		count := 0
		for _, d := range days {
			if h.IsApplicable(d) {
				count++
			}
		}
		return count
	}
	if mode == state.ViewModeMonth {
		weeks := float64(len(days)) / 7
		return int(math.Round(float64(h.FrequencyPerWeek) * weeks))
	}
	return h.FrequencyPerWeek
}

func percentage(done, target int) int {
	if target == 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(done) / float64(target)))
	if pct > 100 {
		return 100
	}
	return pct
}

// CompletionRate is the rounded mean of every valid habit's period
// percentage; 0 when no valid habits exist.
func (e *Engine) CompletionRate(habits []model.Habit, history ledger.History, mode state.ViewMode, current time.Time) int {
	valid := model.FilterValid(habits)
	if len(valid) == 0 {
		return 0
	}
	days := e.PeriodDays(mode, current)
	sum := 0
	for _, h := range valid {
		sum += e.HabitPeriod(h, history, mode, days).Percentage
	}
	return int(math.Round(float64(sum) / float64(len(valid))))
}

// TodayRate is the share of valid habits checked on now's calendar day,
// feeding the daily progress gauge.
func (e *Engine) TodayRate(habits []model.Habit, history ledger.History, now time.Time) int {
	valid := model.FilterValid(habits)
	if len(valid) == 0 {
		return 0
	}
	key := calendar.DayKey(now)
	done := 0
	for _, h := range valid {
		if history.Done(key, h.ID) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(valid))))
}

// Streak is the presence-based two-state streak: 2 when both today and
// yesterday have any true entry, 1 when exactly one of them has, 0 otherwise.
// It deliberately never looks further back; kept for snapshot compatibility
// with the original tracker rather than extended into a true consecutive-day
// count.
func Streak(history ledger.History, now time.Time) int {
	today := history.AnyDone(calendar.DayKey(now))
	yesterday := history.AnyDone(calendar.DayKey(now.AddDate(0, 0, -1)))
	switch {
	case today && yesterday:
		return 2
	case today || yesterday:
		return 1
	default:
		return 0
	}
}

// Score awards 5 points per completion across all history, clamped to 100.
func Score(history ledger.History) int {
	score := history.TotalCompletions() * 5
	if score > 100 {
		return 100
	}
	return score
}

// HabitTotals returns the all-time counts for every valid habit, in display
// order.
func HabitTotals(habits []model.Habit, history ledger.History) []HabitTotal {
	valid := model.FilterValid(habits)
	out := make([]HabitTotal, 0, len(valid))
	maxDays := history.DistinctDates()
	if maxDays == 0 {
		maxDays = 1
	}
	for _, h := range valid {
		count := history.CompletionsFor(h.ID)
		out = append(out, HabitTotal{
			HabitID:    h.ID,
			Count:      count,
			Percentage: int(math.Round(100 * float64(count) / float64(maxDays))),
		})
	}
	return out
}
