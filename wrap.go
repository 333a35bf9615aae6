// wrap.go - adapting arbitrary errors into *Error.
//
// Transport code usually holds a plain error (dial failure, decode failure,
// context deadline). Ensure turns that into the composite shape without
// losing the original for errors.Is/As.
package gqlerror

import "errors"

// Ensure converts err to *Error.
//   - nil → nil
//   - err is, or wraps, an *Error → that *Error (same pointer)
//   - otherwise → a new *Error with err as its network error; the stack is
//     captured at Ensure's caller
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(1, WithNetworkError(err))
}
