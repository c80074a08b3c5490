package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/state"
	"github.com/sandeepkv93/habitd/internal/stats"
	"github.com/sandeepkv93/habitd/internal/views"
)

func cellFor(h model.Habit, s state.AppState, sched *scheduler.Engine, day time.Time) views.CellState {
	if s.History.Done(calendar.DayKey(day), h.ID) {
		return views.CellChecked
	}
	switch sched.VisibilityOn(h, s.History, day) {
	case scheduler.VisibilityNotScheduled:
		return views.CellNotScheduled
	case scheduler.VisibilityQuotaMet:
		return views.CellQuotaMet
	default:
		return views.CellUnchecked
	}
}

func (m Model) matrixData(s state.AppState, current time.Time) views.MatrixPanelData {
	days := calendar.DaysOfMonth(current)
	data := views.MatrixPanelData{
		MonthLabel: current.Format("January 2006"),
		TodayCol:   -1,
		CursorCol:  -1,
	}
	for i, d := range days {
		data.DayHeader = append(data.DayHeader, fmt.Sprintf("%2d", d.Day()))
		if calendar.IsToday(d) {
			data.TodayCol = i
		}
		if calendar.SameDay(d, current) {
			data.CursorCol = i
		}
	}
	for i, h := range model.FilterValid(s.Habits) {
		row := views.MatrixRowData{HabitName: h.Name, Selected: i == m.HabitCursor}
		for _, d := range days {
			row.Cells = append(row.Cells, cellFor(h, s, m.sched, d))
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func (m Model) weekData(s state.AppState, current time.Time) views.WeekPanelData {
	days := calendar.DaysOfWeek(current, m.sched.WeekStart())
	habits := model.FilterValid(s.Habits)
	data := views.WeekPanelData{
		WeekLabel: fmt.Sprintf("week of %s", days[0].Format("Jan 2")),
		CursorCol: -1,
	}
	for i, d := range days {
		if calendar.SameDay(d, current) {
			data.CursorCol = i
		}
		day := views.WeekDayData{
			Label:    d.Format("Mon 02"),
			IsToday:  calendar.IsToday(d),
			Complete: m.sched.DayComplete(habits, s.History, d),
		}
		for j, h := range habits {
			day.Habits = append(day.Habits, views.WeekHabitData{
				Name:     h.Name,
				State:    cellFor(h, s, m.sched, d),
				Selected: j == m.HabitCursor,
			})
		}
		data.Days = append(data.Days, day)
	}
	return data
}

func (m Model) statsData(s state.AppState, current time.Time) views.StatsPanelData {
	habits := model.FilterValid(s.Habits)
	days := m.analytics.PeriodDays(s.ViewMode, current)
	totals := stats.HabitTotals(habits, s.History)

	data := views.StatsPanelData{
		TodayRate:      m.analytics.TodayRate(habits, s.History, m.now()),
		CompletionRate: m.analytics.CompletionRate(habits, s.History, s.ViewMode, current),
		PeriodLabel:    string(s.ViewMode),
		Streak:         stats.Streak(s.History, m.now()),
		Score:          stats.Score(s.History),
	}
	for i, h := range habits {
		ps := m.analytics.HabitPeriod(h, s.History, s.ViewMode, days)
		item := views.StatsHabitData{
			Name:       h.Name,
			Done:       ps.Done,
			Target:     ps.Target,
			Percentage: ps.Percentage,
			Met:        ps.Met,
		}
		if i < len(totals) {
			item.AllTime = totals[i].Count
			item.AllTimePct = totals[i].Percentage
		}
		data.Habits = append(data.Habits, item)
	}
	return data
}
