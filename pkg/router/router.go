package router

import (
	"sync"

	"go.uber.org/atomic"
)

// Config declares a router.
type Config struct {
	// Routes is the static route table. Duplicate keys: last one wins.
	Routes []*Route

	// InitialRoute is the path the router starts on. It is not looked up.
	InitialRoute string

	// InitialArgs are the starting arguments. They are trusted and not
	// validated.
	InitialArgs any

	// Registry, when set, is used instead of a fresh one. Routes are added
	// to it. Sharing it lets other components see the router's table.
	Registry *Registry
}

// Option configures a Router.
type Option func(*Router)

// WithHooks registers navigation hooks. It may be given more than once.
func WithHooks(h Hooks) Option {
	return func(r *Router) {
		r.hooks = append(r.hooks, h)
	}
}

// WithOnChange registers fn to run with the new state after every committed
// navigation.
func WithOnChange(fn func(State)) Option {
	return WithHooks(Hooks{
		OnNavigate: func(_, to State) { fn(to) },
	})
}

// Router holds the route registry and the navigation state.
type Router struct {
	registry     *Registry
	initialRoute string
	initialArgs  any

	// mu serialises commits; readers load state without locking.
	mu    sync.Mutex
	state *atomic.Pointer[State]

	hooks []Hooks
}

// New builds a router from cfg.
func New(cfg Config, opts ...Option) *Router {
	reg := cfg.Registry
	if reg == nil {
		reg = NewRegistry()
	}
	for _, route := range cfg.Routes {
		reg.Register(route)
	}

	r := &Router{
		registry:     reg,
		initialRoute: cfg.InitialRoute,
		initialArgs:  cfg.InitialArgs,
		state: atomic.NewPointer(&State{
			Path: cfg.InitialRoute,
			Args: Args{Route: cfg.InitialRoute, Value: cfg.InitialArgs},
		}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the route registry.
func (r *Router) Registry() *Registry {
	return r.registry
}

// InitialRoute returns the configured starting path.
func (r *Router) InitialRoute() string {
	return r.initialRoute
}

// InitialArgs returns the configured starting arguments.
func (r *Router) InitialArgs() any {
	return r.initialArgs
}

// State returns a consistent snapshot of the navigation state.
func (r *Router) State() State {
	return *r.state.Load()
}

// CurrentRoute returns the current path.
func (r *Router) CurrentRoute() string {
	return r.State().Path
}

// CurrentArgs returns the current arguments.
func (r *Router) CurrentArgs() Args {
	return r.State().Args
}

// MatchingRoutes returns the matched chain for the current path. It is
// recomputed on every call.
func (r *Router) MatchingRoutes() []*Route {
	return Match(r.registry, r.CurrentRoute())
}

// Navigate switches to the route registered under to.
//
// The target must be an exact registry key. params are validated against the
// route's schema; nil means no parameters. On any error the state is left as
// it was.
//
// Schemas run before the commit lock is taken, so a schema may itself
// navigate. Concurrent navigations commit one at a time and the last commit
// wins.
func (r *Router) Navigate(to string, params any) error {
	route, ok := r.registry.Lookup(to)
	if !ok {
		err := &RouteNotFoundError{Key: to}
		r.fireNavigateError(to, err)
		return err
	}

	args, err := Validate(route, params)
	if err != nil {
		r.fireNavigateError(to, err)
		return err
	}

	next := State{Path: to, Args: args}
	r.mu.Lock()
	from := r.State()
	r.state.Store(&next)
	r.mu.Unlock()

	r.fireNavigate(from, next)
	return nil
}

// Outlet returns the cursor for the outermost level of the current chain.
func (r *Router) Outlet() Outlet {
	st := r.State()
	return Outlet{
		chain:  Match(r.registry, st.Path),
		args:   st.Args,
		path:   st.Path,
		router: r,
	}
}

// RenderOutlet renders the current chain starting at its outermost route.
// It returns "" when nothing matches.
func (r *Router) RenderOutlet() string {
	return r.Outlet().Render()
}
