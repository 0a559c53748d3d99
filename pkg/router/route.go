package router

// RenderFunc renders one nesting level. The outlet carries the validated
// arguments and renders the next level on demand.
type RenderFunc func(o Outlet) string

// Route is one addressable unit of content.
type Route struct {
	// Key is the unique slash-delimited path of the route (e.g. "/h/about").
	// Ancestors must be string prefixes of their descendants.
	Key string

	// Args validates navigation parameters. Nil disables validation.
	Args Schema

	// Render produces the view for this level.
	Render RenderFunc
}

// RouteOption configures a Route at declaration time.
type RouteOption func(*Route)

// WithArgs attaches an argument schema to the route.
func WithArgs(schema Schema) RouteOption {
	return func(r *Route) {
		r.Args = schema
	}
}

// NewRoute declares a route.
func NewRoute(key string, render RenderFunc, opts ...RouteOption) *Route {
	r := &Route{
		Key:    key,
		Render: render,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// render invokes the route's render function, tolerating a nil one.
func (r *Route) render(o Outlet) string {
	if r.Render == nil {
		return ""
	}
	return r.Render(o)
}
