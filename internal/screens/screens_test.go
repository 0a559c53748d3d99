package screens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroute/pkg/router"
)

type fakeWidgets struct{ input string }

func (f fakeWidgets) NameInput() string { return f.input }

func TestNewRouter_StartsAtHome(t *testing.T) {
	r := NewRouter(NewRegistry(fakeWidgets{input: "INPUT"}), "")

	assert.Equal(t, Home, r.CurrentRoute())
	assert.Equal(t, []string{Layout, Home}, router.Keys(r.MatchingRoutes()))

	out := r.RenderOutlet()
	assert.Contains(t, out, "What's your name?")
	assert.Contains(t, out, "INPUT")
	assert.Contains(t, out, "/h › /h/home")
}

func TestNavigate_AboutGreetsName(t *testing.T) {
	r := NewRouter(NewRegistry(StaticWidgets{}), "")

	require.NoError(t, r.Navigate(About, map[string]any{"name": "Bob"}))

	out := r.RenderOutlet()
	assert.Contains(t, out, "Hello, ")
	assert.Contains(t, out, "Bob")
	assert.NotContains(t, out, "What's your name?")
}

func TestNavigate_AboutDefaultsName(t *testing.T) {
	r := NewRouter(NewRegistry(StaticWidgets{}), "")

	require.NoError(t, r.Navigate(About, nil))

	assert.Equal(t, AboutArgs{Name: DefaultName}, r.CurrentArgs().Value)
	assert.Contains(t, r.RenderOutlet(), DefaultName)
}

func TestNavigate_AboutRejectsLongName(t *testing.T) {
	r := NewRouter(NewRegistry(StaticWidgets{}), "")

	err := r.Navigate(About, map[string]any{"name": strings.Repeat("x", 41)})

	assert.ErrorIs(t, err, router.ErrValidation)
	assert.Equal(t, Home, r.CurrentRoute())
}

func TestInitialAboutWithoutArgs(t *testing.T) {
	r := NewRouter(NewRegistry(StaticWidgets{}), About)

	assert.Contains(t, r.RenderOutlet(), DefaultName)
}
