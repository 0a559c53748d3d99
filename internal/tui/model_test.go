package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroute/internal/screens"
	"toroute/pkg/router"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *AppModel, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		require.Same(t, m, next)
	}
	return cmd
}

func TestNew_StartsOnHomeWithFocus(t *testing.T) {
	m := New("", nil)

	assert.Equal(t, screens.Home, m.Router.CurrentRoute())
	assert.True(t, m.NameInput.Focused())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "What's your name?")
}

func TestEnter_NavigatesWithName(t *testing.T) {
	m := New("", nil)

	send(t, m, keyRunes("Bob"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screens.About, m.Router.CurrentRoute())
	assert.Equal(t, screens.AboutArgs{Name: "Bob"}, m.Router.CurrentArgs().Value)
	assert.False(t, m.NameInput.Focused())
	assert.NoError(t, m.Err)
	assert.Contains(t, m.View(), "Bob")
}

func TestEnter_EmptyInputUsesDefault(t *testing.T) {
	m := New("", nil)

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screens.About, m.Router.CurrentRoute())
	assert.Contains(t, m.View(), screens.DefaultName)
}

func TestEnter_RejectedNameStaysHome(t *testing.T) {
	m := New("", nil)

	send(t, m, keyRunes(strings.Repeat("x", 41)), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screens.Home, m.Router.CurrentRoute())
	assert.ErrorIs(t, m.Err, router.ErrValidation)
	assert.Contains(t, m.View(), "Error:")
}

func TestBack_ReturnsHomeAndClearsInput(t *testing.T) {
	m := New("", nil)
	send(t, m, keyRunes("Bob"), tea.KeyMsg{Type: tea.KeyEnter})

	send(t, m, keyRunes("b"))

	assert.Equal(t, screens.Home, m.Router.CurrentRoute())
	assert.Equal(t, "", m.NameInput.Value())
	assert.True(t, m.NameInput.Focused())
}

func TestTypingOnHomeDoesNotTriggerShortcuts(t *testing.T) {
	m := New("", nil)

	send(t, m, keyRunes("qb?"))

	assert.Equal(t, "qb?", m.NameInput.Value())
	assert.Equal(t, screens.Home, m.Router.CurrentRoute())
	assert.False(t, m.ShowHelp)
}

func TestMsgNavigate(t *testing.T) {
	m := New("", nil)

	msg := NavigateCmd(screens.About, map[string]any{"name": "Ann"})()
	send(t, m, msg)
	assert.Equal(t, screens.About, m.Router.CurrentRoute())

	send(t, m, MsgNavigate{To: "/nowhere"})
	assert.ErrorIs(t, m.Err, router.ErrRouteNotFound)
	assert.Equal(t, screens.About, m.Router.CurrentRoute())
}

func TestQuit(t *testing.T) {
	m := New(screens.About, nil)

	cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = New("", nil)
	cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDialogs(t *testing.T) {
	m := New("", nil)
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	send(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.ShowHelp)
	assert.Contains(t, m.View(), "Back to home")

	send(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.False(t, m.ShowHelp)
	assert.True(t, m.ShowRoutes)
	assert.Contains(t, m.View(), "ROUTE TABLE")

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowRoutes)
	assert.Equal(t, screens.Home, m.Router.CurrentRoute())
}

func TestDialog_SmallWindow(t *testing.T) {
	m := New("", nil)
	send(t, m, tea.KeyMsg{Type: tea.KeyF1})

	assert.Equal(t, "Window too small", m.View())
}

func TestView_NoMatch(t *testing.T) {
	m := New("/elsewhere", nil)

	assert.Contains(t, m.View(), `No route matches "/elsewhere"`)
	assert.Nil(t, m.Init())
}

func TestMsgRouteChanged_SyncsFocus(t *testing.T) {
	var changes []router.State
	m := New("", nil, router.WithOnChange(func(st router.State) {
		changes = append(changes, st)
	}))

	// Navigation from outside the model.
	require.NoError(t, m.Router.Navigate(screens.About, nil))
	assert.True(t, m.NameInput.Focused())

	send(t, m, MsgRouteChanged(m.Router.State()))

	assert.False(t, m.NameInput.Focused())
	require.Len(t, changes, 1)
	assert.Equal(t, screens.About, changes[0].Path)
}
