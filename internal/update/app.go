package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/state"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.form != nil {
		return m.updateForm(keyMsg)
	}
	return m.updateMain(keyMsg)
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	s := m.store.State()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible

	case key.Matches(msg, m.Keys.MonthView):
		m.reportErr(m.store.SetViewMode(ctx, state.ViewModeMonth))

	case key.Matches(msg, m.Keys.WeekView):
		m.reportErr(m.store.SetViewMode(ctx, state.ViewModeWeek))

	case key.Matches(msg, m.Keys.PrevDay):
		m.reportErr(m.store.SetCurrentDate(ctx, calendar.DayKey(m.currentDate(s).AddDate(0, 0, -1))))

	case key.Matches(msg, m.Keys.NextDay):
		m.reportErr(m.store.SetCurrentDate(ctx, calendar.DayKey(m.currentDate(s).AddDate(0, 0, 1))))

	case key.Matches(msg, m.Keys.PrevHabit):
		if m.HabitCursor > 0 {
			m.HabitCursor--
		}

	case key.Matches(msg, m.Keys.NextHabit):
		if m.HabitCursor < len(s.Habits)-1 {
			m.HabitCursor++
		}

	case key.Matches(msg, m.Keys.Toggle):
		if h, ok := m.selectedHabit(s); ok {
			if err := m.store.ToggleHabit(ctx, h.ID, s.CurrentDate); err != nil {
				m.reportErr(err)
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("toggled %s on %s", h.Name, s.CurrentDate)}
			}
		}

	case key.Matches(msg, m.Keys.Add):
		m.form = newHabitForm()

	case key.Matches(msg, m.Keys.Edit):
		if h, ok := m.selectedHabit(s); ok {
			m.form = editHabitForm(h)
		}

	case key.Matches(msg, m.Keys.Delete):
		if h, ok := m.selectedHabit(s); ok {
			if err := m.store.DeleteHabit(ctx, h.ID); err != nil {
				m.reportErr(err)
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", h.Name)}
			}
			if n := len(m.store.State().Habits); m.HabitCursor >= n && n > 0 {
				m.HabitCursor = n - 1
			}
		}

	case key.Matches(msg, m.Keys.Theme):
		m.reportErr(m.store.ToggleTheme(ctx))
	}

	return m, nil
}

func (m *Model) reportErr(err error) {
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
	}
}

func (m Model) currentDate(s state.AppState) time.Time {
	day, err := calendar.ParseDay(s.CurrentDate)
	if err != nil {
		return m.now()
	}
	return day
}

func (m Model) selectedHabit(s state.AppState) (model.Habit, bool) {
	if len(s.Habits) == 0 || m.HabitCursor < 0 || m.HabitCursor >= len(s.Habits) {
		return model.Habit{}, false
	}
	return s.Habits[m.HabitCursor], true
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}
	s := m.store.State()
	current := m.currentDate(s)

	data := views.AppData{
		Header:     fmt.Sprintf("habitd | %s [%s] (%s)", current.Format("January 2006"), s.ViewMode, s.Theme),
		Sidebar:    views.RenderStatsPanel(m.statsData(s, current)),
		StatusLine: m.Status.Text,
		Footer:     m.helpModel.View(m.Keys),
	}
	if s.ViewMode == state.ViewModeMonth {
		data.Body = views.RenderMatrixPanel(m.matrixData(s, current))
	} else {
		data.Body = views.RenderWeekPanel(m.weekData(s, current))
	}
	if m.HelpVisible {
		data.Overlay = views.RenderMarkdown(helpMarkdown)
	}
	if m.form != nil {
		data.Overlay = views.RenderFormPanel(m.form.panelData())
	}
	return views.RenderApp(data)
}
