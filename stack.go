// stack.go - call-stack capture at construction time.
//
// Errors record where they were built so a network failure surfaced three
// layers up still points at the transport call that produced it. Capture is
// best-effort: when the runtime reports no frames the stack is simply nil.
package gqlerror

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single resolved call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified, e.g. example.com/pkg.(*T).Method
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Stack lists frames from the construction site outward.
type Stack []Frame

// String renders one frame per line, most recent first. A nil Stack renders "".
func (s Stack) String() string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, fr := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fr.String())
	}
	return sb.String()
}

const defaultMaxDepth = 32

// captureStackDefault captures up to defaultMaxDepth frames. With skip=0 the
// first frame is the function that called captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip+1, defaultMaxDepth)
}

// captureStack resolves frames via CallersFrames so inlined calls are
// expanded. With skip=0 the first frame is captureStack's caller.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +2 skips runtime.Callers and captureStack.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more || len(out) == maxDepth {
			break
		}
	}
	return out
}
