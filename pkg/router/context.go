package router

import "context"

type routerKey struct{}

// WithRouter returns a context carrying r. It scopes r for code that only
// receives a context, such as HTTP handlers.
func WithRouter(ctx context.Context, r *Router) context.Context {
	return context.WithValue(ctx, routerKey{}, r)
}

// FromContext returns the router scoped by WithRouter.
func FromContext(ctx context.Context) (*Router, error) {
	r, ok := ctx.Value(routerKey{}).(*Router)
	if !ok || r == nil {
		return nil, ErrNoRouter
	}
	return r, nil
}

// MustFromContext is FromContext for callers that treat a missing router as a
// programming error.
func MustFromContext(ctx context.Context) *Router {
	r, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return r
}
