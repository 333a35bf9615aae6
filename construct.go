// construct.go - construction of the composite error and its message.
//
// Message semantics:
//   - An explicit, non-empty message (WithMessage) is used verbatim.
//   - Otherwise the message is derived by GenerateMessage from the GraphQL
//     errors and the network error, in that order.
//   - The message is fixed once New returns; nothing re-derives it.
package gqlerror

import "strings"

const (
	graphQLPrefix = "GraphQL error: "
	networkPrefix = "Network error: "
)

// Option configures an Error during New.
type Option func(*Error)

// WithGraphQLErrors sets the GraphQL errors reported by the server.
// The slice is stored as passed; a later call replaces an earlier one.
func WithGraphQLErrors(errs ...GraphQLError) Option {
	return func(e *Error) { e.graphQLErrors = errs }
}

// WithNetworkError sets the transport failure. A later call replaces an earlier one.
func WithNetworkError(err error) Option {
	return func(e *Error) { e.networkError = err }
}

// WithMessage sets an explicit message. An empty msg leaves derivation on.
func WithMessage(msg string) Option {
	return func(e *Error) { e.message = msg }
}

// WithExtraInfo attaches an opaque caller payload.
func WithExtraInfo(v any) Option {
	return func(e *Error) { e.extraInfo = v }
}

// New builds an Error from opts and captures the caller's stack.
// It never fails: with no options the result has an empty message.
func New(opts ...Option) *Error {
	return newError(1, opts...)
}

// FromGraphQLErrors is shorthand for New(WithGraphQLErrors(errs...)).
func FromGraphQLErrors(errs ...GraphQLError) *Error {
	return newError(1, WithGraphQLErrors(errs...))
}

// FromNetworkError is shorthand for New(WithNetworkError(err)).
func FromNetworkError(err error) *Error {
	return newError(1, WithNetworkError(err))
}

// newError applies opts and captures a stack starting 'skip' frames above
// newError's caller (skip=0 records the caller itself).
func newError(skip int, opts ...Option) *Error {
	e := &Error{}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}
	e.stk = captureStackDefault(skip + 1)
	e.message = GenerateMessage(e.message, e.graphQLErrors, e.networkError)
	return e
}

// GenerateMessage renders the message for the given inputs. It is a plain
// function over its arguments so it can be called without an Error value.
//
// A non-empty msg is returned unchanged. Otherwise each GraphQL error yields a
// "GraphQL error: <message>" line, followed by a "Network error: <text>" line
// when networkError is non-nil; exactly one trailing newline is removed.
func GenerateMessage(msg string, graphQLErrors []GraphQLError, networkError error) string {
	if msg != "" {
		return msg
	}

	var sb strings.Builder
	for _, ge := range graphQLErrors {
		sb.WriteString(graphQLPrefix)
		sb.WriteString(ge.Message)
		sb.WriteByte('\n')
	}
	if networkError != nil {
		sb.WriteString(networkPrefix)
		sb.WriteString(networkError.Error())
		sb.WriteByte('\n')
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
