// format.go - fmt.Formatter and slog.LogValuer for *Error.
//
//   %s, %v   → Error()
//   %q       → quoted Error()
//   %+v      → verbose multi-line form:
//                msg="<message>"
//                graphql[0]: <message> at 3:5 path=[user name] ext: code=X
//                network: <network error rendered with %+v>
//                extra: <extra info>
//                stack:
//                  pkg.Func file.go:12
package gqlerror

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "msg=%q", e.message)

	for i, ge := range e.graphQLErrors {
		_, _ = fmt.Fprintf(w, "\ngraphql[%d]: %s", i, ge.Message)
		for j, loc := range ge.Locations {
			if j == 0 {
				_, _ = io.WriteString(w, " at ")
			} else {
				_, _ = io.WriteString(w, ",")
			}
			_, _ = io.WriteString(w, loc.String())
		}
		if len(ge.Path) > 0 {
			_, _ = fmt.Fprintf(w, " path=%v", ge.Path)
		}
		if len(ge.Extensions) > 0 {
			_, _ = io.WriteString(w, " ext:")
			for _, k := range slices.Sorted(maps.Keys(ge.Extensions)) {
				_, _ = fmt.Fprintf(w, " %s=%v", k, ge.Extensions[k])
			}
		}
	}

	if e.networkError != nil {
		_, _ = io.WriteString(w, "\nnetwork: ")
		// %+v so nested stacks and details render when the cause supports it.
		_, _ = fmt.Fprintf(w, "%+v", e.networkError)
	}

	if e.extraInfo != nil {
		_, _ = fmt.Fprintf(w, "\nextra: %v", e.extraInfo)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s", fr)
		}
	}
}

// LogValue renders the error as a slog group. Stacks are left out; log the
// error with %+v when frames are needed.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{slog.String("msg", e.message)}
	if n := len(e.graphQLErrors); n > 0 {
		msgs := make([]string, n)
		for i, ge := range e.graphQLErrors {
			msgs[i] = ge.Message
		}
		attrs = append(attrs,
			slog.Int("graphql_errors", n),
			slog.Any("graphql", msgs),
		)
	}
	if e.networkError != nil {
		attrs = append(attrs, slog.String("network", e.networkError.Error()))
	}
	if e.extraInfo != nil {
		attrs = append(attrs, slog.Any("extra", e.extraInfo))
	}
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = (*Error)(nil)
