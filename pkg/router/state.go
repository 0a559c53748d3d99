package router

import "fmt"

// Args is the argument value of one navigation, tagged with the key of the
// route it was validated for. Every level of the matched chain sees the same
// Args.
type Args struct {
	// Route is the key of the navigation target.
	Route string

	// Value is the validated (or passed-through) argument value.
	Value any
}

// IsZero reports whether no value is held.
func (a Args) IsZero() bool {
	return a.Value == nil
}

// ArgsAs returns the argument value as T.
func ArgsAs[T any](a Args) (T, bool) {
	v, ok := a.Value.(T)
	return v, ok
}

// MustArgs returns the argument value as T and panics on a type mismatch.
// Use it in render functions of routes whose schema guarantees T.
func MustArgs[T any](a Args) T {
	v, ok := a.Value.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("router: arguments for %q are %T, not %T", a.Route, a.Value, zero))
	}
	return v
}

// State is the navigation state: the current path and its arguments.
// It is replaced as a whole, never field by field.
type State struct {
	Path string
	Args Args
}
