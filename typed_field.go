// typed_field.go - typed reads of GraphQL extensions and extra info.
//
// Extensions arrive as map[string]any and extra info as any; both are
// opaque to this package. These helpers only save callers the type
// assertion dance:
//
//	var ExtCode = gqlerror.Extension[string]("code")
//
//	for _, ge := range gqlerror.GraphQLErrorsOf(err) {
//	    if code, ok := ExtCode.Get(ge); ok && code == "UNAUTHENTICATED" {
//	        ...
//	    }
//	}
//
// The stored dynamic type must match T exactly; no conversions are made.
// Values decoded by encoding/json are float64, string, bool, []any or
// map[string]any.
package gqlerror

import "fmt"

// TypedExtension is a typed accessor for one key of GraphQLError.Extensions.
type TypedExtension[T any] struct {
	key string
}

// Extension constructs a TypedExtension[T] for key.
func Extension[T any](key string) TypedExtension[T] {
	return TypedExtension[T]{key: key}
}

// Key returns the extension key.
func (x TypedExtension[T]) Key() string { return x.key }

// Get returns the value under the key, or (zero, false) when it is missing or
// has a different dynamic type.
func (x TypedExtension[T]) Get(ge GraphQLError) (T, bool) {
	var zero T
	v, ok := ge.Extensions[x.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics when the value is missing or mistyped.
// Meant for tests and call sites where absence is a bug.
func (x TypedExtension[T]) MustGet(ge GraphQLError) T {
	var zero T
	v, ok := ge.Extensions[x.key]
	if !ok {
		panic(fmt.Errorf("gqlerror.Extension[%T](%q): missing", zero, x.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("gqlerror.Extension[%T](%q): wrong dynamic type (%T)", zero, x.key, v))
	}
	return tv
}

// ExtraInfoAs returns the extra info of the first *Error in err's chain as T.
// It returns (zero, false) when there is no *Error, no extra info, or the
// payload has a different dynamic type.
func ExtraInfoAs[T any](err error) (T, bool) {
	var zero T
	e, ok := As(err)
	if !ok || e.extraInfo == nil {
		return zero, false
	}
	tv, ok := e.extraInfo.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}
