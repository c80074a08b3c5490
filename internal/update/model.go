package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/state"
	"github.com/sandeepkv93/habitd/internal/stats"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	MonthView key.Binding
	WeekView  key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevHabit key.Binding
	NextHabit key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		MonthView: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month view")),
		WeekView:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week view")),
		PrevDay:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next day")),
		PrevHabit: key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev habit")),
		NextHabit: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next habit")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Add:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new habit")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit habit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete habit")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.MonthView, k.WeekView, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevHabit, k.NextHabit, k.Toggle},
		{k.Add, k.Edit, k.Delete, k.Theme},
		{k.MonthView, k.WeekView, k.Help, k.Quit},
	}
}

// Model is the bubbletea presentation model. All habit data lives in the
// injected store; the model only keeps UI-local state (cursors, form, help).
type Model struct {
	store       *state.Store
	sched       *scheduler.Engine
	analytics   *stats.Engine
	now         func() time.Time
	Keys        KeyMap
	Status      StatusBar
	HabitCursor int
	HelpVisible bool
	Quitting    bool
	form        *formState
	helpModel   help.Model
}

func NewModel(store *state.Store, weekStart calendar.WeekStart, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		store:     store,
		sched:     scheduler.NewEngine(weekStart),
		analytics: stats.NewEngine(weekStart),
		now:       now,
		Keys:      DefaultKeyMap(),
		helpModel: help.New(),
	}
}

type formState struct {
	editingID string
	input     textinput.Model
	frequency int
	days      map[time.Weekday]bool
	nameFocus bool
	errText   string
}
