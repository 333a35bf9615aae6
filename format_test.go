package gqlerror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

// verboseCause renders with a marker on %+v so recursion is observable.
type verboseCause struct{}

func (verboseCause) Error() string { return "short cause" }

func (verboseCause) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprint(s, "short cause (verbose detail)")
		return
	}
	_, _ = fmt.Fprint(s, "short cause")
}

func TestFormat_ConciseVerbs(t *testing.T) {
	t.Parallel()

	e := New(
		WithGraphQLErrors(GraphQLError{Message: "A"}),
		WithNetworkError(errors.New("timeout")),
	)
	want := "GraphQL error: A\nNetwork error: timeout"

	for _, verb := range []string{"%v", "%s"} {
		if got := fmt.Sprintf(verb, e); got != want {
			t.Fatalf("%s: want=%q got=%q", verb, want, got)
		}
	}
	if got := fmt.Sprintf("%q", e); got != fmt.Sprintf("%q", want) {
		t.Fatalf("%%q: got %s", got)
	}
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	e := New(
		WithGraphQLErrors(
			GraphQLError{
				Message:    "user not found",
				Locations:  []Location{{Line: 3, Column: 5}, {Line: 4, Column: 1}},
				Path:       []any{"user", "name"},
				Extensions: map[string]any{"retry": false, "code": "NOT_FOUND"},
			},
			GraphQLError{Message: "deprecated"},
		),
		WithNetworkError(verboseCause{}),
		WithExtraInfo("op=GetUser"),
	)

	verbose := fmt.Sprintf("%+v", e)
	if !containsInOrder(verbose,
		`msg="GraphQL error: user not found\nGraphQL error: deprecated\nNetwork error: short cause"`,
		"\ngraphql[0]: user not found at 3:5,4:1 path=[user name] ext: code=NOT_FOUND retry=false",
		"\ngraphql[1]: deprecated",
		"\nnetwork: short cause (verbose detail)",
		"\nextra: op=GetUser",
		"\nstack:",
		"TestFormat_Verbose",
	) {
		t.Fatalf("unexpected verbose output:\n%s", verbose)
	}
}

func TestFormat_VerboseOmitsEmptySections(t *testing.T) {
	t.Parallel()

	verbose := fmt.Sprintf("%+v", New(WithMessage("plain")))
	for _, section := range []string{"graphql[", "network:", "extra:"} {
		if strings.Contains(verbose, section) {
			t.Fatalf("%%+v should omit %q:\n%s", section, verbose)
		}
	}
	if !strings.HasPrefix(verbose, `msg="plain"`) {
		t.Fatalf("%%+v should start with the message:\n%s", verbose)
	}
}

func TestFormat_NestedErrorRecurses(t *testing.T) {
	t.Parallel()

	inner := FromNetworkError(context.DeadlineExceeded)
	outer := New(WithMessage("batch failed"), WithNetworkError(inner))

	verbose := fmt.Sprintf("%+v", outer)
	if !containsInOrder(verbose,
		`msg="batch failed"`,
		"\nnetwork: ",
		`msg="Network error: context deadline exceeded"`,
		"\nnetwork: context deadline exceeded",
	) {
		t.Fatalf("nested error not rendered verbosely:\n%s", verbose)
	}
}

func TestFormat_NilError(t *testing.T) {
	t.Parallel()

	var e *Error
	if got := fmt.Sprintf("%+v", e); got != "<nil>" {
		t.Fatalf("%%+v nil: got %q", got)
	}
	if got := fmt.Sprintf("%v", e); got != "<nil>" {
		t.Fatalf("%%v nil: got %q", got)
	}
}

func TestLogValue_Group(t *testing.T) {
	t.Parallel()

	e := New(
		WithGraphQLErrors(GraphQLError{Message: "A"}, GraphQLError{Message: "B"}),
		WithNetworkError(errors.New("refused")),
		WithExtraInfo(7),
	)

	v := e.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("want group kind, got %v", v.Kind())
	}
	got := map[string]any{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.Any()
	}
	want := map[string]any{
		"msg":            "GraphQL error: A\nGraphQL error: B\nNetwork error: refused",
		"graphql_errors": int64(2),
		"graphql":        []string{"A", "B"},
		"network":        "refused",
		"extra":          int64(7),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LogValue mismatch (-want +got):\n%s", diff)
	}
}

func TestLogValue_TextHandler(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	logger := slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Error("query failed", "err", FromNetworkError(errors.New("refused")))

	out := sb.String()
	if !strings.Contains(out, `err.msg="Network error: refused"`) || !strings.Contains(out, "err.network=refused") {
		t.Fatalf("unexpected log line: %s", out)
	}
	if strings.Contains(out, "graphql") {
		t.Fatalf("empty graphql attrs should be omitted: %s", out)
	}
}
