// Package gqlerror defines the composite error returned by GraphQL clients.
// One value carries the GraphQL errors reported by the server, the transport
// failure that prevented a response, or both, together with a single
// rendered message for logs and humans.
//
// Design tenets:
//   - Interop-first: errors.Is/As see every GraphQL error and the network
//     error through Unwrap() []error.
//   - Immutable: the message is derived once, in the constructor.
//   - Policy-free: no retries, logging, or classification beyond
//     "GraphQL" vs "network".
package gqlerror

import "fmt"

// Location points at a position in the GraphQL document that produced an error.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (l Location) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Column) }

// GraphQLError is a single entry of the "errors" list in a GraphQL response.
// Only Message is interpreted by this package; the rest is carried for callers.
type GraphQLError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string { return e.Message }

// Error is the composite client error. The zero value renders an empty
// message; build values with New or the From* constructors.
type Error struct {
	message       string
	graphQLErrors []GraphQLError
	networkError  error
	extraInfo     any
	stk           Stack
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Message returns the message fixed at construction.
func (e *Error) Message() string { return e.message }

// GraphQLErrors returns the GraphQL errors exactly as passed to the constructor.
func (e *Error) GraphQLErrors() []GraphQLError { return e.graphQLErrors }

// NetworkError returns the transport failure, or nil.
func (e *Error) NetworkError() error { return e.networkError }

// ExtraInfo returns the caller payload. The package never inspects it.
func (e *Error) ExtraInfo() any { return e.extraInfo }

// Stack returns the frames captured when the error was constructed.
func (e *Error) Stack() Stack { return e.stk }

// Unwrap exposes the GraphQL errors, in order, followed by the network error.
// Nil children are never returned so errors.Is/As can walk the result as-is.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	n := len(e.graphQLErrors)
	if e.networkError != nil {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]error, 0, n)
	for _, ge := range e.graphQLErrors {
		out = append(out, ge)
	}
	if e.networkError != nil {
		out = append(out, e.networkError)
	}
	return out
}

var (
	_ error         = (*Error)(nil)
	_ error         = GraphQLError{}
	_ fmt.Formatter = (*Error)(nil)
)
