package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidFrequency = errors.New("model: frequency per week must be between 1 and 7")
	ErrInvalidWeekday   = errors.New("model: invalid weekday")
	ErrModeMismatch     = errors.New("model: frequency must equal specific-day count")
)

const (
	MinFrequencyPerWeek = 1
	MaxFrequencyPerWeek = 7
)

// Habit is a recurring activity tracked per calendar day. Exactly one
// scheduling mode is active: specific weekdays when SpecificDays is
// non-empty, otherwise a weekly frequency target. Color and Icon are opaque
// display tokens carried through for the presentation layer.
type Habit struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Color            string         `json:"color"`
	Icon             string         `json:"icon,omitempty"`
	FrequencyPerWeek int            `json:"frequencyPerWeek"`
	SpecificDays     []time.Weekday `json:"specificDays,omitempty"`
	CreatedAt        int64          `json:"createdAt"` // unix milliseconds
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if h.FrequencyPerWeek < MinFrequencyPerWeek || h.FrequencyPerWeek > MaxFrequencyPerWeek {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, h.FrequencyPerWeek)
	}
	seen := make(map[time.Weekday]bool, len(h.SpecificDays))
	for _, d := range h.SpecificDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(d))
		}
		if seen[d] {
			return fmt.Errorf("model: duplicate weekday %s", d)
		}
		seen[d] = true
	}
	if len(h.SpecificDays) > 0 && h.FrequencyPerWeek != len(h.SpecificDays) {
		return fmt.Errorf("%w: frequency %d, %d specific days", ErrModeMismatch, h.FrequencyPerWeek, len(h.SpecificDays))
	}
	return nil
}

// SpecificDaysMode reports whether the habit is scheduled on fixed weekdays
// rather than by weekly frequency.
func (h Habit) SpecificDaysMode() bool {
	return len(h.SpecificDays) > 0
}

// Daily reports whether the habit is expected every single day.
func (h Habit) Daily() bool {
	return !h.SpecificDaysMode() && h.FrequencyPerWeek == MaxFrequencyPerWeek
}

// IsApplicable is the sole gate for whether the habit is in scope on date.
// Frequency-mode habits are candidates every day; specific-day habits only on
// their configured weekdays.
func (h Habit) IsApplicable(date time.Time) bool {
	if !h.SpecificDaysMode() {
		return true
	}
	for _, d := range h.SpecificDays {
		if d == date.Weekday() {
			return true
		}
	}
	return false
}

// Normalized repairs a habit read from an untrusted snapshot: weekdays are
// deduplicated, sorted and clamped to the valid range, and FrequencyPerWeek
// is forced back into 1..7 or, in specific-day mode, kept equal to the day
// count. ID and Name are not repairable; callers filter on those.
func (h Habit) Normalized() Habit {
	out := h
	if len(h.SpecificDays) > 0 {
		seen := make(map[time.Weekday]bool, len(h.SpecificDays))
		days := make([]time.Weekday, 0, len(h.SpecificDays))
		for _, d := range h.SpecificDays {
			if d < time.Sunday || d > time.Saturday || seen[d] {
				continue
			}
			seen[d] = true
			days = append(days, d)
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		if len(days) == 0 {
			days = nil
		}
		out.SpecificDays = days
	}
	if out.SpecificDaysMode() {
		out.FrequencyPerWeek = len(out.SpecificDays)
		return out
	}
	if out.FrequencyPerWeek < MinFrequencyPerWeek {
		out.FrequencyPerWeek = MinFrequencyPerWeek
	}
	if out.FrequencyPerWeek > MaxFrequencyPerWeek {
		out.FrequencyPerWeek = MaxFrequencyPerWeek
	}
	return out
}

// Valid is the defensive consumption-time filter: habits with an empty id or
// name are excluded from every habit-consuming computation.
func (h Habit) Valid() bool {
	return strings.TrimSpace(h.ID) != "" && strings.TrimSpace(h.Name) != ""
}

func FilterValid(habits []Habit) []Habit {
	out := make([]Habit, 0, len(habits))
	for _, h := range habits {
		if h.Valid() {
			out = append(out, h)
		}
	}
	return out
}

// Draft carries the user-supplied fields of a new habit; the store assigns
// the id and creation timestamp.
type Draft struct {
	Name             string
	Color            string
	Icon             string
	FrequencyPerWeek int
	SpecificDays     []time.Weekday
}

// Patch is a partial habit update; nil fields are left untouched.
type Patch struct {
	Name             *string
	Color            *string
	Icon             *string
	FrequencyPerWeek *int
	SpecificDays     *[]time.Weekday
}

// Apply merges p into the habit and re-normalizes so the scheduling-mode
// invariant holds after any combination of patched fields.
func (h Habit) Apply(p Patch) Habit {
	out := h
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.Icon != nil {
		out.Icon = *p.Icon
	}
	if p.FrequencyPerWeek != nil {
		out.FrequencyPerWeek = *p.FrequencyPerWeek
	}
	if p.SpecificDays != nil {
		out.SpecificDays = append([]time.Weekday(nil), (*p.SpecificDays)...)
		if len(out.SpecificDays) == 0 {
			out.SpecificDays = nil
		}
	}
	return out.Normalized()
}
