package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"toroute/internal/screens"
	"toroute/pkg/router"
)

// MsgNavigate asks the model to navigate.
type MsgNavigate struct {
	To     string
	Params any
}

// MsgRouteChanged reports a committed navigation, whoever made it.
type MsgRouteChanged router.State

// NavigateCmd returns a command that navigates to the given route.
func NavigateCmd(to string, params any) tea.Cmd {
	return func() tea.Msg {
		return MsgNavigate{To: to, Params: params}
	}
}

// Update handles events.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgNavigate:
		return m, m.navigate(msg.To, msg.Params)

	case MsgRouteChanged:
		// The router may have moved without a key press.
		return m, m.syncFocus()

	case tea.KeyMsg:
		// Keys that work everywhere, including while typing.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.ShowHelp = !m.ShowHelp
			m.ShowRoutes = false
			return m, nil
		case "f2":
			m.ShowRoutes = !m.ShowRoutes
			m.ShowHelp = false
			return m, nil
		}

		if m.ShowHelp || m.ShowRoutes {
			switch msg.String() {
			case "esc", "q", "?":
				m.ShowHelp = false
				m.ShowRoutes = false
			}
			return m, nil
		}

		if m.Router.CurrentRoute() == screens.Home {
			switch msg.Type {
			case tea.KeyEnter:
				var params any
				if name := m.NameInput.Value(); name != "" {
					params = map[string]any{"name": name}
				}
				return m, m.navigate(screens.About, params)
			case tea.KeyEsc:
				m.NameInput.Reset()
				return m, nil
			}
			m.NameInput, cmd = m.NameInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.ShowHelp = true
		case "t":
			m.ShowRoutes = true
		case "esc", "b":
			return m, m.navigate(screens.Home, nil)
		}
	}

	return m, cmd
}

// navigate moves the router and records the outcome for the footer.
func (m *AppModel) navigate(to string, params any) tea.Cmd {
	if err := m.Router.Navigate(to, params); err != nil {
		m.Err = err
		return nil
	}
	m.Err = nil
	if to == screens.Home {
		m.NameInput.Reset()
	}
	return m.syncFocus()
}
