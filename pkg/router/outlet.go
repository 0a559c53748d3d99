package router

// Outlet is a cursor into a matched chain. Each level renders its own route
// and asks the outlet for the next one.
type Outlet struct {
	chain  []*Route
	index  int
	args   Args
	path   string
	router *Router
}

// NewOutlet returns a cursor at the first level of chain. The outlet is not
// attached to a router, so Navigate fails with ErrNoRouter.
func NewOutlet(chain []*Route, args Args) Outlet {
	return Outlet{
		chain: chain,
		args:  args,
		path:  args.Route,
	}
}

// Chain returns the matched chain.
func (o Outlet) Chain() []*Route {
	return o.chain
}

// Index returns the nesting level of this outlet.
func (o Outlet) Index() int {
	return o.index
}

// Depth returns the length of the chain.
func (o Outlet) Depth() int {
	return len(o.chain)
}

// Route returns the route at this level, or nil when the chain is empty.
func (o Outlet) Route() *Route {
	if o.index < 0 || o.index >= len(o.chain) {
		return nil
	}
	return o.chain[o.index]
}

// Args returns the arguments shared by every level.
func (o Outlet) Args() Args {
	return o.args
}

// CurrentRoute returns the path the chain was matched for.
func (o Outlet) CurrentRoute() string {
	return o.path
}

// Navigate forwards to the router the outlet was taken from.
func (o Outlet) Navigate(to string, params any) error {
	if o.router == nil {
		return ErrNoRouter
	}
	return o.router.Navigate(to, params)
}

// Next returns the outlet for the next nesting level.
// It reports false when this is the last level.
func (o Outlet) Next() (Outlet, bool) {
	if o.index+1 >= len(o.chain) {
		return Outlet{}, false
	}
	next := o
	next.index = o.index + 1
	return next, true
}

// Render renders the route at this level.
func (o Outlet) Render() string {
	route := o.Route()
	if route == nil {
		return ""
	}
	return route.render(o)
}

// RenderNext renders the next nesting level, or "" when the chain is
// exhausted.
func (o Outlet) RenderNext() string {
	next, ok := o.Next()
	if !ok {
		return ""
	}
	return next.Render()
}
