package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"toroute/internal/logging"
	"toroute/internal/screens"
	"toroute/internal/telemetry"
	"toroute/pkg/router"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Router *router.Router
	Err    error // Last rejected navigation, cleared by the next success
	Logger *slog.Logger

	// UI State
	WindowSize tea.WindowSizeMsg
	ShowHelp   bool
	ShowRoutes bool // Route table popup

	// Components
	NameInput textinput.Model
}

// New builds the model and the router it drives. The router starts at
// initial, or at the home screen when initial is empty.
func New(initial string, logger *slog.Logger, opts ...router.Option) *AppModel {
	if logger == nil {
		logger = logging.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Your name..."
	ti.CharLimit = 64
	ti.Width = 30

	m := &AppModel{
		Logger:    logger,
		NameInput: ti,
	}
	opts = append([]router.Option{router.WithHooks(telemetry.LogHooks(logger))}, opts...)
	m.Router = screens.NewRouter(screens.NewRegistry(inputWidget{m}), initial, opts...)
	m.syncFocus()
	return m
}

// inputWidget exposes the text input to the screens.
type inputWidget struct{ m *AppModel }

func (w inputWidget) NameInput() string {
	return w.m.NameInput.View()
}

// syncFocus gives the input focus only while the home screen is showing.
func (m *AppModel) syncFocus() tea.Cmd {
	if m.Router.CurrentRoute() == screens.Home {
		return m.NameInput.Focus()
	}
	m.NameInput.Blur()
	return nil
}
