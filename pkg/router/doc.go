// Package router resolves hierarchical routes for terminal UIs.
//
// A Router owns a Registry of routes keyed by slash-delimited paths and a
// single navigation state (current path + validated arguments). Every read
// recomputes the matched chain: the routes whose keys are path-prefixes of
// the current path, ordered from the outermost layout to the leaf.
//
// # Declaring Routes
//
//	type AboutArgs struct {
//	    Name string `mapstructure:"name"`
//	}
//
//	r := router.New(router.Config{
//	    Routes: []*router.Route{
//	        router.NewRoute("/h", func(o router.Outlet) string {
//	            return frame.Render(o.RenderNext())
//	        }),
//	        router.NewRoute("/h/home", homeView),
//	        router.NewRoute("/h/about", aboutView,
//	            router.WithArgs(router.Struct[AboutArgs]())),
//	    },
//	    InitialRoute: "/h/home",
//	})
//
// # Rendering
//
// RenderOutlet renders the outermost matched route. Layout routes call
// Outlet.RenderNext to render the next nesting level; all levels share the
// arguments of the last navigation.
//
// # Navigation
//
// Navigate looks the target up by exact key, validates the parameters against
// the route's schema and swaps the state in one step. On failure the state is
// left untouched and a *RouteNotFoundError or *ValidationError is returned.
package router
