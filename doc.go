// doc.go - package documentation for xgx-gqlerror
//
// # Construction
//
// A response handler that sees an "errors" list builds the error from it;
// a transport that fails to get a response builds it from the failure:
//
//	err := gqlerror.FromGraphQLErrors(resp.Errors...)
//	err := gqlerror.FromNetworkError(dialErr)
//
// New takes functional options when more than one input is known:
//
//	err := gqlerror.New(
//	    gqlerror.WithGraphQLErrors(resp.Errors...),
//	    gqlerror.WithNetworkError(readErr),
//	    gqlerror.WithExtraInfo(map[string]string{"operation": "GetUser"}),
//	)
//
// Construction never fails. With no inputs the message is empty.
//
// # Message
//
// Unless WithMessage supplies one, the message is one line per GraphQL error
// followed by one line for the network error:
//
//	GraphQL error: user not found
//	GraphQL error: field "age" is deprecated
//	Network error: read tcp 10.0.0.1:443: i/o timeout
//
// There is no trailing newline. GenerateMessage exposes the same rendering as
// a plain function.
//
// # Inspection
//
//   - GraphQLErrors / NetworkError / ExtraInfo return the inputs as passed.
//   - errors.Is/As traverse every GraphQL error and the network error, so
//     errors.Is(err, context.DeadlineExceeded) works for timeouts.
//   - IsNetworkError, HasGraphQLErrors, GraphQLErrorsOf and NetworkErrorOf
//     search whole error trees, including errors.Join results.
//   - Extension[T] and ExtraInfoAs[T] give typed reads of opaque payloads.
//
// # Formatting
//
//   - %v, %s → Error()
//   - %q     → quoted Error()
//   - %+v    → message, each GraphQL error with locations, path and
//     extensions, the network error (itself with %+v), extra info, and the
//     construction stack
//
// *Error also implements slog.LogValuer, so slog.Any("err", err) logs a
// structured group rather than a flat string.
package gqlerror
