package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroute/internal/model"
	"toroute/pkg/router"
)

func noop(router.Outlet) string { return "" }

func TestAnalyze_Nesting(t *testing.T) {
	reg := router.NewRegistry(
		router.NewRoute("/h", noop),
		router.NewRoute("/h/home", noop),
		router.NewRoute("/h/about", noop, router.WithArgs(router.Struct[struct{}]())),
	)

	res := NewAnalyzer().Analyze(reg, "/h/about")

	require.Len(t, res.Routes, 3)
	layout, home, about := res.Routes[0], res.Routes[1], res.Routes[2]

	assert.True(t, layout.IsLayout)
	assert.Equal(t, 0, layout.Depth)
	assert.Equal(t, "", layout.Parent)
	assert.True(t, layout.IsActive)

	assert.False(t, home.IsLayout)
	assert.Equal(t, "/h", home.Parent)
	assert.Equal(t, 1, home.Depth)
	assert.False(t, home.IsActive)

	assert.True(t, about.HasArgs)
	assert.True(t, about.IsActive)
	assert.Empty(t, about.Diagnostics)

	assert.Equal(t, model.MatchResult{Path: "/h/about", Chain: []string{"/h", "/h/about"}}, res.Current)
	assert.Empty(t, res.Diagnostics)
}

func TestAnalyze_Diagnostics(t *testing.T) {
	reg := router.NewRegistry(
		router.NewRoute("/", noop),
		router.NewRoute("/a/b", noop),
		router.NewRoute("/c/", noop),
		router.NewRoute("/c", noop),
		router.NewRoute("plain", noop),
	)

	res := NewAnalyzer().Analyze(reg, "/zzz")

	byKey := map[string]model.RouteEntry{}
	for _, e := range res.Routes {
		byKey[e.Key] = e
	}

	assert.Equal(t, "/", byKey["/a/b"].Parent)
	assert.Contains(t, byKey["/a/b"].Diagnostics, `No route registered for "/a"; renders without that layout.`)
	assert.Contains(t, byKey["/c/"].Diagnostics, `Trailing separator: matches as "/c".`)
	assert.Len(t, byKey["plain"].Diagnostics, 1)
	assert.True(t, byKey["/"].IsLayout)

	assert.Equal(t, []string{"/"}, res.Current.Chain)
	assert.Contains(t, res.Diagnostics, `Keys "/c/", "/c" all match as "/c"; they render as nested levels of each other.`)
	assert.Contains(t, res.Diagnostics, `Root route "/" wraps every other path.`)
}

func TestGenerateReport(t *testing.T) {
	reg := router.NewRegistry(
		router.NewRoute("/h", noop),
		router.NewRoute("/h/home", noop),
	)
	res := NewAnalyzer().Analyze(reg, "/h/home")

	out := GenerateReport(res, false)
	assert.Contains(t, out, "ROUTE TABLE")
	assert.Contains(t, out, model.IconLayout+" /h")
	assert.Contains(t, out, "  Path: /h/home")
	assert.Contains(t, out, "  1.   /h/home")
	assert.NotContains(t, out, "matches as:")
	assert.NotContains(t, out, "DIAGNOSTICS")

	verbose := GenerateReport(res, true)
	assert.Contains(t, verbose, "matches as: /h")
	assert.Contains(t, verbose, "parent:     (none)")
}

func TestGenerateReport_Empty(t *testing.T) {
	res := NewAnalyzer().Analyze(router.NewRegistry(), "/x")

	out := GenerateReport(res, false)
	assert.Contains(t, out, "(no routes registered)")
	assert.Contains(t, out, "(nothing renders)")
}
