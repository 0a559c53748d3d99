package router

// Validate turns raw navigation parameters into the arguments for route.
//
// Without a schema raw is passed through unchanged, nil included. With a
// schema, a nil raw is parsed as an empty map so that schemas whose fields
// are all optional still succeed.
func Validate(route *Route, raw any) (Args, error) {
	if route.Args == nil {
		return Args{Route: route.Key, Value: raw}, nil
	}

	input := raw
	if input == nil {
		input = map[string]any{}
	}

	value, err := route.Args.Parse(input)
	if err != nil {
		return Args{}, &ValidationError{Route: route.Key, Err: err}
	}
	return Args{Route: route.Key, Value: value}, nil
}
