package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toroute/internal/model"
	"toroute/internal/report"
	"toroute/internal/screens"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

const helpText = `toroute

Each screen is a route. The outermost layout wraps the screens
nested under it, so the frame stays put while its content changes.

Home
  type       Edit your name
  Enter      Open the about screen with that name
  Esc        Clear the input

Other screens
  b / Esc    Back to home
  t          Route table
  ?          This help
  q          Quit

Anywhere
  F1         Toggle help
  F2         Toggle route table
  Ctrl+C     Quit`

func (m *AppModel) View() string {
	if m.ShowHelp {
		return m.renderDialog(helpText, lipgloss.Color("63"))
	}
	if m.ShowRoutes {
		res := report.NewAnalyzer().Analyze(m.Router.Registry(), m.Router.CurrentRoute())
		return m.renderDialog(report.GenerateReport(res, false), lipgloss.Color("208"))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("toroute " + model.Version))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.Router.CurrentRoute()))
	b.WriteString("\n")

	body := m.Router.RenderOutlet()
	if body == "" {
		body = dimStyle.Render(fmt.Sprintf("\n  No route matches %q.\n", m.Router.CurrentRoute()))
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(errStyle.Render("Error: " + m.Err.Error()))
		b.WriteString("\n")
	}

	help := "Enter: Continue • Esc: Clear • F1: Help • F2: Routes • Ctrl+C: Quit"
	if m.Router.CurrentRoute() != screens.Home {
		help = "b: Back • t: Routes • ?: Help • q: Quit"
	}
	b.WriteString(dimStyle.Render(help))
	return b.String()
}

func (m *AppModel) renderDialog(content string, border lipgloss.Color) string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	dialogWidth := w * 80 / 100
	if dialogWidth < 40 {
		dialogWidth = 40
	}
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	maxLines := h - 6
	if maxLines < 3 {
		maxLines = 3
	}
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "...")
	}

	footer := dimStyle.Render("\nEsc to close")
	dialog := lipgloss.NewStyle().
		Width(dialogWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n") + footer)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m *AppModel) Init() tea.Cmd {
	if m.Router.CurrentRoute() == screens.Home {
		return textinput.Blink
	}
	return nil
}
