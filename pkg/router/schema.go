package router

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Schema validates and coerces raw navigation parameters.
// Parse returns the value handed to the route or an error describing why
// raw was rejected.
type Schema interface {
	Parse(raw any) (any, error)
}

// SchemaFunc adapts a function to Schema.
type SchemaFunc func(raw any) (any, error)

// Parse implements Schema.
func (f SchemaFunc) Parse(raw any) (any, error) {
	return f(raw)
}

// structValidator is shared by all struct schemas; validator caches struct
// metadata per type.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// StructOption configures a struct schema.
type StructOption[T any] func(*structSchema[T])

// WithDefaults sets the value fields start from before raw parameters are
// decoded onto it.
func WithDefaults[T any](defaults T) StructOption[T] {
	return func(s *structSchema[T]) {
		s.defaults = defaults
	}
}

type structSchema[T any] struct {
	defaults T
}

// Struct returns a schema that decodes parameters into the struct type T.
//
// Maps are decoded with mapstructure (weakly typed, "mapstructure" tags,
// unknown keys ignored) and the result is checked against its "validate"
// tags. A T or *T passes straight to validation.
func Struct[T any](opts ...StructOption[T]) Schema {
	s := &structSchema[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse implements Schema.
func (s *structSchema[T]) Parse(raw any) (any, error) {
	out := s.defaults

	switch v := raw.(type) {
	case T:
		out = v
	case *T:
		if v == nil {
			return nil, errors.New("nil arguments")
		}
		out = *v
	default:
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &out,
			WeaklyTypedInput: true,
			TagName:          "mapstructure",
		})
		if err != nil {
			return nil, fmt.Errorf("build decoder: %w", err)
		}
		if err := dec.Decode(raw); err != nil {
			return nil, err
		}
	}

	if err := structValidator.Struct(out); err != nil {
		return nil, err
	}
	return out, nil
}
