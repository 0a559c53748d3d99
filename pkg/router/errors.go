package router

import (
	"errors"
	"fmt"
)

// ErrRouteNotFound is matched by errors returned when a navigation target is
// not a registered key.
var ErrRouteNotFound = errors.New("route not found")

// ErrValidation is matched by errors returned when navigation parameters do
// not satisfy the target route's schema.
var ErrValidation = errors.New("invalid route arguments")

// ErrNoRouter is returned when router state is read outside a router scope.
var ErrNoRouter = errors.New("router: no router in scope")

// RouteNotFoundError reports an unknown navigation target.
type RouteNotFoundError struct {
	Key string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("route %q not found", e.Key)
}

// Is makes errors.Is(err, ErrRouteNotFound) hold.
func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}

// ValidationError wraps the schema diagnostic for a rejected navigation.
type ValidationError struct {
	Route string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("route %q: invalid arguments: %v", e.Route, e.Err)
}

// Unwrap returns the schema diagnostic.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
