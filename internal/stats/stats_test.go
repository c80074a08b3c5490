package stats

import (
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/ledger"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/state"
)

func freqHabit(id string, perWeek int) model.Habit {
	return model.Habit{ID: id, Name: id, FrequencyPerWeek: perWeek}
}

func TestPeriodDays(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	current := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	month := e.PeriodDays(state.ViewModeMonth, current)
	if len(month) != 28 {
		t.Fatalf("month period = %d days, want 28", len(month))
	}
	week := e.PeriodDays(state.ViewModeWeek, current)
	if len(week) != 7 || week[0].Format(calendar.DayLayout) != "2026-02-09" {
		t.Fatalf("unexpected week period: %v", week)
	}
}

func TestMonthTargetRounding(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	h := freqHabit("habit-1", 3)

	// February 2026 is an exact 4-week month: round(3 * 28/7) = 12.
	feb := e.PeriodDays(state.ViewModeMonth, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if got := e.HabitPeriod(h, ledger.History{}, state.ViewModeMonth, feb).Target; got != 12 {
		t.Fatalf("Feb target = %d, want 12", got)
	}
	// A 31-day month: round(3 * 31/7) = round(13.28) = 13.
	jan := e.PeriodDays(state.ViewModeMonth, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if got := e.HabitPeriod(h, ledger.History{}, state.ViewModeMonth, jan).Target; got != 13 {
		t.Fatalf("Jan target = %d, want 13", got)
	}
}

func TestWeekTargetIsFrequency(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	h := freqHabit("habit-1", 4)
	days := e.PeriodDays(state.ViewModeWeek, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC))
	if got := e.HabitPeriod(h, ledger.History{}, state.ViewModeWeek, days).Target; got != 4 {
		t.Fatalf("week target = %d, want 4", got)
	}
}

func TestSpecificDayTargetCountsApplicableDays(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	h := model.Habit{
		ID: "habit-1", Name: "Gym", FrequencyPerWeek: 2,
		SpecificDays: []time.Weekday{time.Monday, time.Wednesday},
	}
	// February 2026 has 4 Mondays and 4 Wednesdays.
	days := e.PeriodDays(state.ViewModeMonth, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if got := e.HabitPeriod(h, ledger.History{}, state.ViewModeMonth, days).Target; got != 8 {
		t.Fatalf("specific-day month target = %d, want 8", got)
	}
}

func TestHabitPeriodDoneAndPercentage(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	h := freqHabit("habit-1", 3)
	history := ledger.History{
		"2026-02-09": {"habit-1": true},
		"2026-02-10": {"habit-1": true},
		"2026-02-16": {"habit-1": true}, // outside the focused week
	}
	days := e.PeriodDays(state.ViewModeWeek, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC))
	got := e.HabitPeriod(h, history, state.ViewModeWeek, days)
	if got.Done != 2 {
		t.Fatalf("done = %d, want 2", got.Done)
	}
	if got.Percentage != 67 {
		t.Fatalf("percentage = %d, want 67", got.Percentage)
	}
	if got.Met {
		t.Fatal("2 of 3 must not be met")
	}
}

func TestPercentageClampAndZeroTarget(t *testing.T) {
	if got := percentage(9, 3); got != 100 {
		t.Fatalf("overachieving percentage = %d, want clamp to 100", got)
	}
	if got := percentage(0, 0); got != 0 {
		t.Fatalf("zero-target percentage = %d, want 0", got)
	}
}

func TestCompletionRateMeanAndEmpty(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	current := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	if got := e.CompletionRate(nil, ledger.History{}, state.ViewModeWeek, current); got != 0 {
		t.Fatalf("rate with no habits = %d, want 0", got)
	}

	habits := []model.Habit{freqHabit("a", 2), freqHabit("b", 2)}
	history := ledger.History{
		"2026-02-09": {"a": true},
		"2026-02-10": {"a": true},
	}
	// a: 100%, b: 0% -> mean 50.
	if got := e.CompletionRate(habits, history, state.ViewModeWeek, current); got != 50 {
		t.Fatalf("completion rate = %d, want 50", got)
	}
}

func TestTodayRate(t *testing.T) {
	e := NewEngine(calendar.WeekStartMonday)
	now := time.Date(2026, 2, 9, 18, 0, 0, 0, time.UTC)
	habits := []model.Habit{freqHabit("a", 7), freqHabit("b", 7), freqHabit("c", 7)}
	history := ledger.History{"2026-02-09": {"a": true, "b": true}}
	if got := e.TodayRate(habits, history, now); got != 67 {
		t.Fatalf("today rate = %d, want 67", got)
	}
	if got := e.TodayRate(nil, history, now); got != 0 {
		t.Fatalf("today rate with no habits = %d, want 0", got)
	}
}

func TestStreakTwoState(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		history ledger.History
		want    int
	}{
		{"both days", ledger.History{"2026-02-10": {"a": true}, "2026-02-09": {"b": true}}, 2},
		{"today only", ledger.History{"2026-02-10": {"a": true}}, 1},
		{"yesterday only", ledger.History{"2026-02-09": {"a": true}}, 1},
		{"neither", ledger.History{"2026-02-01": {"a": true}}, 0},
		{"false entries only", ledger.History{"2026-02-10": {"a": false}}, 0},
	}
	for _, tc := range cases {
		if got := Streak(tc.history, now); got != tc.want {
			t.Fatalf("%s: streak = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScoreMonotonicAndClamped(t *testing.T) {
	history := ledger.History{}
	prev := Score(history)
	if prev != 0 {
		t.Fatalf("empty score = %d, want 0", prev)
	}
	for day := 1; day <= 25; day++ {
		key := calendar.DayKey(time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC))
		history[key] = map[string]bool{"a": true}
		got := Score(history)
		if got < prev {
			t.Fatalf("score decreased: %d -> %d", prev, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("score out of range: %d", got)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("25 completions must clamp to 100, got %d", prev)
	}
}

func TestHabitTotals(t *testing.T) {
	habits := []model.Habit{freqHabit("a", 7), {ID: "", Name: "ghost", FrequencyPerWeek: 7}}
	history := ledger.History{
		"2026-02-09": {"a": true},
		"2026-02-10": {"a": true, "orphan": true},
		"2026-02-11": {"a": false},
		"2026-02-12": {},
	}
	totals := HabitTotals(habits, history)
	if len(totals) != 1 {
		t.Fatalf("expected invalid habit excluded, got %d totals", len(totals))
	}
	if totals[0].Count != 2 {
		t.Fatalf("count = %d, want 2", totals[0].Count)
	}
	if totals[0].Percentage != 50 {
		t.Fatalf("percentage = %d, want 50 (2 of 4 dates)", totals[0].Percentage)
	}

	if got := HabitTotals(habits[:1], ledger.History{}); got[0].Percentage != 0 {
		t.Fatalf("empty ledger percentage = %d, want 0", got[0].Percentage)
	}
}
