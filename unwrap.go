// unwrap.go - traversal over error trees that may hold several *Error values.
//
// errors.As stops at the first match, which is not enough when a client
// joins the errors of a batch, or when a network error is itself an *Error
// produced by a lower layer. The walk here visits every node once:
//   - pre-order, children left to right
//   - *Error nodes expand to their network error only; their GraphQL errors
//     are read from the node instead of being visited as children
//   - cycles are cut by remembering pointer-typed nodes by address; value
//     types are treated as acyclic and the walk is bounded by maxNodes
package gqlerror

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxNodes = 1 << 12

// GraphQLErrorsOf returns every GraphQL error in err's unwrap tree in
// depth-first order. Bare GraphQLError values (not wrapped in *Error) are
// included. It returns nil when there are none.
func GraphQLErrorsOf(err error) []GraphQLError {
	var out []GraphQLError
	walk(err, func(n error) bool {
		switch v := n.(type) {
		case *Error:
			if v != nil {
				out = append(out, v.graphQLErrors...)
			}
		case GraphQLError:
			out = append(out, v)
		case *GraphQLError:
			if v != nil {
				out = append(out, *v)
			}
		}
		return true
	})
	return out
}

// walkErrors calls visit for each *Error in err's tree until visit returns false.
func walkErrors(err error, visit func(*Error) bool) {
	walk(err, func(n error) bool {
		if e, ok := n.(*Error); ok && e != nil {
			return visit(e)
		}
		return true
	})
}

func walk(err error, visit func(error) bool) {
	if err == nil {
		return
	}
	seen := make(map[uintptr]struct{}, 8)
	stack := []error{err}
	markSeen(err, seen)

	for visited := 0; len(stack) > 0 && visited < maxNodes; visited++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		var kids []error
		switch v := cur.(type) {
		case *Error:
			if v != nil && v.networkError != nil {
				kids = []error{v.networkError}
			}
		case multiUnwrapper:
			kids = v.Unwrap()
		case singleUnwrapper:
			if u := v.Unwrap(); u != nil {
				kids = []error{u}
			}
		}
		// Push in reverse so the leftmost child is visited first.
		for i := len(kids) - 1; i >= 0; i-- {
			if k := kids[i]; k != nil && markSeen(k, seen) {
				stack = append(stack, k)
			}
		}
	}
}

// markSeen reports whether err should be visited: false only for a pointer
// already recorded in seen.
func markSeen(err error, seen map[uintptr]struct{}) bool {
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return true
	}
	id := rv.Pointer()
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	return true
}
