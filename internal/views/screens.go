package views

import (
	"fmt"
	"strings"
)

// CellState mirrors the per-day visibility decision plus the check mark the
// renderer needs; the engine's semantics stay in internal/scheduler.
type CellState string

const (
	CellUnchecked    CellState = "unchecked"
	CellChecked      CellState = "checked"
	CellNotScheduled CellState = "not_scheduled"
	CellQuotaMet     CellState = "quota_met"
)

type MatrixRowData struct {
	HabitName string
	Cells     []CellState
	Selected  bool
}

type MatrixPanelData struct {
	MonthLabel string
	DayHeader  []string
	TodayCol   int
	CursorCol  int
	Rows       []MatrixRowData
}

type WeekHabitData struct {
	Name     string
	State    CellState
	Selected bool
}

type WeekDayData struct {
	Label    string
	IsToday  bool
	Complete bool
	Habits   []WeekHabitData
}

type WeekPanelData struct {
	WeekLabel string
	CursorCol int
	Days      []WeekDayData
}

type StatsHabitData struct {
	Name       string
	Done       int
	Target     int
	Percentage int
	Met        bool
	AllTime    int
	AllTimePct int
}

type StatsPanelData struct {
	TodayRate      int
	CompletionRate int
	PeriodLabel    string
	Streak         int
	Score          int
	Habits         []StatsHabitData
}

type FormPanelData struct {
	Title     string
	NameInput string
	Frequency int
	Weekdays  []string
	CanSubmit bool
	ErrorText string
}

func cellGlyph(c CellState) string {
	switch c {
	case CellChecked:
		return checkedStyle.Render("x")
	case CellNotScheduled:
		return dimStyle.Render("·")
	case CellQuotaMet:
		return dimStyle.Render("~")
	default:
		return "o"
	}
}

func RenderMatrixPanel(data MatrixPanelData) string {
	var b strings.Builder
	b.WriteString(data.MonthLabel + "\n")

	b.WriteString(strings.Repeat(" ", 16))
	for i, day := range data.DayHeader {
		cell := day
		if i == data.TodayCol {
			cell = todayStyle.Render(day)
		}
		if i == data.CursorCol {
			cell = cursorStyle.Render(day)
		}
		b.WriteString(cell + " ")
	}
	b.WriteString("\n")

	for _, row := range data.Rows {
		name := truncate(row.HabitName, 14)
		if row.Selected {
			name = cursorStyle.Render(fmt.Sprintf("%-14s", name))
		} else {
			name = fmt.Sprintf("%-14s", name)
		}
		b.WriteString(name + "  ")
		for _, cell := range row.Cells {
			b.WriteString(cellGlyph(cell) + "  ")
		}
		b.WriteString("\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString(dimStyle.Render("no habits yet, press n to add one") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderWeekPanel(data WeekPanelData) string {
	var b strings.Builder
	b.WriteString(data.WeekLabel + "\n")
	for i, day := range data.Days {
		label := day.Label
		if day.IsToday {
			label = todayStyle.Render(label)
		}
		if i == data.CursorCol {
			label = cursorStyle.Render(label)
		}
		marker := " "
		if day.Complete {
			marker = checkedStyle.Render("*")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, marker))
		for _, h := range day.Habits {
			line := fmt.Sprintf("  [%s] %s", plainGlyph(h.State), h.Name)
			switch h.State {
			case CellQuotaMet:
				line = dimStyle.Render(fmt.Sprintf("  [~] %s (done this week)", h.Name))
			case CellNotScheduled:
				continue
			}
			if h.Selected && i == data.CursorCol {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func plainGlyph(c CellState) string {
	if c == CellChecked {
		return "x"
	}
	return " "
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("today's overview\n")
	b.WriteString(fmt.Sprintf("daily progress  %3d%% %s\n", data.TodayRate, progressBar(data.TodayRate, 12)))
	b.WriteString(fmt.Sprintf("%s rate  %3d%%\n", data.PeriodLabel, data.CompletionRate))
	b.WriteString(fmt.Sprintf("streak %d  score %d\n", data.Streak, data.Score))
	b.WriteString("\nquick stats\n")
	for _, h := range data.Habits {
		met := " "
		if h.Met {
			met = checkedStyle.Render("*")
		}
		b.WriteString(fmt.Sprintf("%s %-12s %2d/%-2d %3d%% %s\n",
			met, truncate(h.Name, 12), h.Done, h.Target, h.Percentage, progressBar(h.AllTimePct, 8)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	b.WriteString("name: " + data.NameInput + "\n")
	if len(data.Weekdays) > 0 {
		b.WriteString("days: " + strings.Join(data.Weekdays, " ") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("frequency: %d/week\n", data.Frequency))
	}
	b.WriteString("\n[0-6] toggle weekday  [+/-] frequency  [enter] save  [esc] cancel\n")
	if data.ErrorText != "" {
		b.WriteString(errorStyle.Render(data.ErrorText) + "\n")
	}
	if !data.CanSubmit {
		b.WriteString(dimStyle.Render("a name is required") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
