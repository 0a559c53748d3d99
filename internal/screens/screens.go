// Package screens declares the demo route table: a framed layout with a home
// screen that asks for a name and an about screen that greets it.
package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toroute/pkg/router"
)

// Route keys.
const (
	Layout = "/h"
	Home   = "/h/home"
	About  = "/h/about"
)

// AboutArgs are the navigation parameters of the about screen.
type AboutArgs struct {
	Name string `mapstructure:"name" json:"name" validate:"max=40"`
}

// DefaultName is shown when no name was given.
const DefaultName = "Stranger"

// Widgets supplies the views of interactive components owned by the host
// program.
type Widgets interface {
	NameInput() string
}

// StaticWidgets renders fixed placeholder views, for hosts without input.
type StaticWidgets struct{}

func (StaticWidgets) NameInput() string { return "> _" }

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Margin(1)

	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Margin(1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")). // Blue
			Bold(true)
)

// Routes returns the route table.
func Routes(w Widgets) []*router.Route {
	return []*router.Route{
		router.NewRoute(Layout, renderLayout),
		router.NewRoute(Home, func(o router.Outlet) string {
			return panelStyle.Render("What's your name?\n\n" + w.NameInput())
		}),
		router.NewRoute(About, renderAbout,
			router.WithArgs(router.Struct(router.WithDefaults(AboutArgs{Name: DefaultName})))),
	}
}

// NewRegistry returns the route table as a registry.
func NewRegistry(w Widgets) *router.Registry {
	return router.NewRegistry(Routes(w)...)
}

// NewRouter builds the demo router over reg, starting at initial (Home when
// empty).
func NewRouter(reg *router.Registry, initial string, opts ...router.Option) *router.Router {
	if initial == "" {
		initial = Home
	}
	return router.New(router.Config{
		Registry:     reg,
		InitialRoute: initial,
	}, opts...)
}

func renderLayout(o router.Outlet) string {
	crumbs := router.Keys(o.Chain())
	header := crumbStyle.Render(strings.Join(crumbs, " › "))
	return frameStyle.Render(header + "\n" + o.RenderNext())
}

func renderAbout(o router.Outlet) string {
	name := DefaultName
	// The initial route is not validated, so the args may be absent.
	if args, ok := router.ArgsAs[AboutArgs](o.Args()); ok && args.Name != "" {
		name = args.Name
	}
	return lipgloss.NewStyle().Margin(1).Render("Hello, " + nameStyle.Render(name))
}
