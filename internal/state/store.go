package state

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
)

var ErrEmptyName = errors.New("state: habit name is required")

// Store owns the AppState aggregate. Every mutation applies in memory and
// then synchronously persists the full snapshot; a failed save keeps the
// in-memory change and surfaces the error for the caller's status line. The
// store is constructor-injected into consumers so tests get independent
// instances.
type Store struct {
	state     AppState
	snapshots storage.SnapshotStore
	now       func() time.Time
}

// NewStore loads the persisted snapshot, or seeds the default habit set when
// none exists or the blob is unreadable. Loading never fails.
func NewStore(ctx context.Context, snapshots storage.SnapshotStore, now func() time.Time) (*Store, error) {
	if snapshots == nil {
		return nil, errors.New("state: nil snapshot store")
	}
	if now == nil {
		now = time.Now
	}
	s := &Store{snapshots: snapshots, now: now}
	blob, err := snapshots.Load(ctx)
	if err != nil {
		s.state = DefaultAppState(now())
		return s, nil
	}
	s.state = DecodeAppState(blob, now())
	return s, nil
}

// State returns a read-only deep copy of the aggregate.
func (s *Store) State() AppState {
	return s.state.Clone()
}

func (s *Store) AddHabit(ctx context.Context, draft model.Draft) (model.Habit, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return model.Habit{}, ErrEmptyName
	}
	h := model.Habit{
		ID:               newHabitID(),
		Name:             strings.TrimSpace(draft.Name),
		Color:            draft.Color,
		Icon:             draft.Icon,
		FrequencyPerWeek: draft.FrequencyPerWeek,
		SpecificDays:     append([]time.Weekday(nil), draft.SpecificDays...),
		CreatedAt:        s.now().UnixMilli(),
	}.Normalized()
	s.state.Habits = append(s.state.Habits, h)
	return h, s.persist(ctx)
}

// UpdateHabit merges patch into the matching habit. An unknown id is a
// silent no-op.
func (s *Store) UpdateHabit(ctx context.Context, id string, patch model.Patch) error {
	for i, h := range s.state.Habits {
		if h.ID == id {
			s.state.Habits[i] = h.Apply(patch)
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteHabit removes the habit from the sequence. Ledger entries that
// reference it stay behind, orphaned; they simply never match a habit again.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	kept := s.state.Habits[:0]
	removed := false
	for _, h := range s.state.Habits {
		if h.ID == id {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	s.state.Habits = kept
	if !removed {
		return nil
	}
	return s.persist(ctx)
}

func (s *Store) ToggleHabit(ctx context.Context, habitID, dateKey string) error {
	s.state.History.Toggle(dateKey, habitID)
	return s.persist(ctx)
}

func (s *Store) SetViewMode(ctx context.Context, mode ViewMode) error {
	if !mode.IsValid() {
		return nil
	}
	s.state.ViewMode = mode
	return s.persist(ctx)
}

func (s *Store) SetCurrentDate(ctx context.Context, dateKey string) error {
	if _, err := calendar.ParseDay(dateKey); err != nil {
		return nil
	}
	s.state.CurrentDate = dateKey
	return s.persist(ctx)
}

func (s *Store) ToggleTheme(ctx context.Context) error {
	if s.state.Theme == ThemeDark {
		s.state.Theme = ThemeLight
	} else {
		s.state.Theme = ThemeDark
	}
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	blob, err := s.state.Encode()
	if err != nil {
		return fmt.Errorf("state: encode snapshot: %w", err)
	}
	if err := s.snapshots.Save(ctx, blob); err != nil {
		return fmt.Errorf("state: save snapshot: %w", err)
	}
	return nil
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newHabitID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("h%d", time.Now().UnixNano())
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}
