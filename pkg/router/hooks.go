package router

// Hooks observe navigation. They run after the outcome is decided and cannot
// change it.
type Hooks struct {
	// OnNavigate runs after a navigation committed.
	OnNavigate func(from, to State)

	// OnNavigateError runs after a navigation was rejected. The state is
	// unchanged.
	OnNavigateError func(to string, err error)
}

func (r *Router) fireNavigate(from, to State) {
	for _, h := range r.hooks {
		if h.OnNavigate != nil {
			h.OnNavigate(from, to)
		}
	}
}

func (r *Router) fireNavigateError(to string, err error) {
	for _, h := range r.hooks {
		if h.OnNavigateError != nil {
			h.OnNavigateError(to, err)
		}
	}
}
