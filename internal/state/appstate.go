package state

import (
	"encoding/json"
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/ledger"
	"github.com/sandeepkv93/habitd/internal/model"
)

type ViewMode string

const (
	ViewModeMonth ViewMode = "month"
	ViewModeWeek  ViewMode = "week"
)

func (v ViewMode) IsValid() bool {
	return v == ViewModeMonth || v == ViewModeWeek
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// AppState is the aggregate the store owns: the ordered habit sequence
// (insertion order is display order), the completion ledger, and the view
// preferences. Its JSON form is the persisted snapshot, byte-for-byte the
// external interface.
type AppState struct {
	Habits      []model.Habit  `json:"habits"`
	History     ledger.History `json:"history"`
	ViewMode    ViewMode       `json:"viewMode"`
	CurrentDate string         `json:"currentDate"`
	Theme       Theme          `json:"theme"`
}

func (s AppState) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeAppState parses a persisted snapshot. An unparseable blob falls back
// to the seeded defaults; a parseable but partial or damaged one is repaired
// field by field. Loading never fails.
func DecodeAppState(raw []byte, now time.Time) AppState {
	var s AppState
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultAppState(now)
	}
	return s.normalized(now)
}

// DefaultAppState seeds the starter habits used when no snapshot exists yet.
func DefaultAppState(now time.Time) AppState {
	created := now.UnixMilli()
	return AppState{
		Habits: []model.Habit{
			{ID: "1", Name: "Drink Water", Color: "#3b82f6", Icon: "Droplets", FrequencyPerWeek: 7, CreatedAt: created},
			{ID: "2", Name: "Exercise", Color: "#ef4444", Icon: "Activity", FrequencyPerWeek: 7, CreatedAt: created},
			{ID: "3", Name: "Read", Color: "#10b981", Icon: "Book", FrequencyPerWeek: 7, CreatedAt: created},
		},
		History:     ledger.History{},
		ViewMode:    ViewModeWeek,
		CurrentDate: calendar.DayKey(now),
		Theme:       ThemeDark,
	}
}

func (s AppState) normalized(now time.Time) AppState {
	out := s
	habits := make([]model.Habit, 0, len(s.Habits))
	for _, h := range model.FilterValid(s.Habits) {
		habits = append(habits, h.Normalized())
	}
	out.Habits = habits
	if out.History == nil {
		out.History = ledger.History{}
	}
	if !out.ViewMode.IsValid() {
		out.ViewMode = ViewModeWeek
	}
	if !out.Theme.IsValid() {
		out.Theme = ThemeDark
	}
	if _, err := calendar.ParseDay(out.CurrentDate); err != nil {
		out.CurrentDate = calendar.DayKey(now)
	}
	return out
}

// Clone deep-copies the state so callers outside the store only ever hold
// read-only views.
func (s AppState) Clone() AppState {
	out := s
	out.Habits = make([]model.Habit, len(s.Habits))
	for i, h := range s.Habits {
		out.Habits[i] = h
		if len(h.SpecificDays) > 0 {
			out.Habits[i].SpecificDays = append([]time.Weekday(nil), h.SpecificDays...)
		}
	}
	out.History = s.History.Clone()
	return out
}
