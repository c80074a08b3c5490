package update

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/views"
)

var formColors = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6",
	"#ec4899", "#06b6d4", "#f97316", "#a855f7",
}

func newNameInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "e.g. Morning Yoga"
	in.CharLimit = 60
	in.SetValue(value)
	in.Focus()
	return in
}

func newHabitForm() *formState {
	return &formState{
		input:     newNameInput(""),
		frequency: model.MaxFrequencyPerWeek,
		days:      make(map[time.Weekday]bool),
		nameFocus: true,
	}
}

func editHabitForm(h model.Habit) *formState {
	days := make(map[time.Weekday]bool, len(h.SpecificDays))
	for _, d := range h.SpecificDays {
		days[d] = true
	}
	return &formState{
		editingID: h.ID,
		input:     newNameInput(h.Name),
		frequency: h.FrequencyPerWeek,
		days:      days,
		nameFocus: true,
	}
}

func (f *formState) selectedDays() []time.Weekday {
	out := make([]time.Weekday, 0, len(f.days))
	for d, on := range f.days {
		if on {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f *formState) canSubmit() bool {
	return strings.TrimSpace(f.input.Value()) != ""
}

func (f *formState) panelData() views.FormPanelData {
	title := "new habit"
	if f.editingID != "" {
		title = "edit habit"
	}
	labels := make([]string, 0, 7)
	for _, d := range f.selectedDays() {
		labels = append(labels, d.String()[:3])
	}
	return views.FormPanelData{
		Title:     title,
		NameInput: f.input.View(),
		Frequency: f.frequency,
		Weekdays:  labels,
		CanSubmit: f.canSubmit(),
		ErrorText: f.errText,
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil

	case "tab":
		f.nameFocus = !f.nameFocus
		if f.nameFocus {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
		return m, nil

	case "enter":
		return m.submitForm()
	}

	if f.nameFocus {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "0", "1", "2", "3", "4", "5", "6":
		d := time.Weekday(int(msg.String()[0] - '0'))
		f.days[d] = !f.days[d]
	case "+", "=":
		if f.frequency < model.MaxFrequencyPerWeek {
			f.frequency++
		}
	case "-":
		if f.frequency > model.MinFrequencyPerWeek {
			f.frequency--
		}
	}
	return m, nil
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	if !f.canSubmit() {
		f.errText = "habit name is required"
		return m, nil
	}

	ctx := context.Background()
	name := strings.TrimSpace(f.input.Value())
	days := f.selectedDays()

	if f.editingID != "" {
		patch := model.Patch{Name: &name, FrequencyPerWeek: &f.frequency, SpecificDays: &days}
		if err := m.store.UpdateHabit(ctx, f.editingID, patch); err != nil {
			m.reportErr(err)
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("updated %s", name)}
		}
		m.form = nil
		return m, nil
	}

	draft := model.Draft{
		Name:             name,
		Color:            formColors[len(m.store.State().Habits)%len(formColors)],
		Icon:             "Activity",
		FrequencyPerWeek: f.frequency,
		SpecificDays:     days,
	}
	if _, err := m.store.AddHabit(ctx, draft); err != nil {
		m.reportErr(err)
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("added %s", name)}
	}
	m.form = nil
	return m, nil
}
