// predicates.go - questions callers ask before deciding to retry.
//
// Every helper follows both Unwrap() error and Unwrap() []error, so an *Error
// is found behind fmt.Errorf %w wrapping and inside errors.Join trees.
package gqlerror

import "errors"

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsNetworkError reports whether err's chain holds an *Error with a network error.
func IsNetworkError(err error) bool {
	return NetworkErrorOf(err) != nil
}

// HasGraphQLErrors reports whether err's chain holds an *Error carrying at
// least one GraphQL error.
func HasGraphQLErrors(err error) bool {
	found := false
	walkErrors(err, func(e *Error) bool {
		found = len(e.graphQLErrors) > 0
		return !found
	})
	return found
}

// NetworkErrorOf returns the network error of the first *Error in err's
// unwrap tree that has one, or nil.
func NetworkErrorOf(err error) error {
	var out error
	walkErrors(err, func(e *Error) bool {
		out = e.networkError
		return out == nil
	})
	return out
}
