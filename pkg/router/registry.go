package router

import "sync"

// Registry maps route keys to definitions.
// Keys are unique; registering a key twice replaces the earlier definition
// but keeps its original position in Keys. A Registry is safe for concurrent
// use, so routes may be registered while a router is serving.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]*Route
	order  []string
}

// NewRegistry builds a registry from routes, in order.
func NewRegistry(routes ...*Route) *Registry {
	reg := &Registry{
		routes: make(map[string]*Route, len(routes)),
	}
	for _, r := range routes {
		reg.Register(r)
	}
	return reg
}

// Register adds a route. Later registrations of the same key win.
// Nil routes are ignored.
func (reg *Registry) Register(r *Route) *Registry {
	if r == nil {
		return reg
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.routes[r.Key]; !exists {
		reg.order = append(reg.order, r.Key)
	}
	reg.routes[r.Key] = r
	return reg
}

// Lookup returns the route registered under key.
func (reg *Registry) Lookup(key string) (*Route, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.routes[key]
	return r, ok
}

// Len returns the number of distinct keys.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.routes)
}

// Keys returns the keys in first-registration order.
func (reg *Registry) Keys() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, len(reg.order))
	copy(keys, reg.order)
	return keys
}

// Routes returns the definitions in first-registration order.
func (reg *Registry) Routes() []*Route {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Route, 0, len(reg.order))
	for _, key := range reg.order {
		out = append(out, reg.routes[key])
	}
	return out
}
