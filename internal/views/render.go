package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	Sidebar    string
	StatusLine string
	Footer     string
	Overlay    string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

func RenderApp(data AppData) string {
	if data.Overlay != "" {
		return panelStyle.Render(data.Overlay)
	}

	body := panelStyle.Width(74).Render(data.Body)
	sidebar := panelStyle.Width(34).Render(data.Sidebar)
	row := lipgloss.JoinHorizontal(lipgloss.Top, body, sidebar)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
