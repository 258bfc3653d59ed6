package record

import (
	"github.com/cockroachdb/errors"

	"github.com/qbitlabs/circuitkit/op"
)

// Stack is an explicit stack of recording contexts. Callers own their
// stack; there is no process-wide ambient one. The stack assumes a
// single logical thread builds one circuit at a time.
type Stack struct {
	frames []*Context
}

// NewStack creates an empty context stack.
func NewStack() *Stack {
	return &Stack{}
}

// Enter pushes a fresh context and returns it.
func (s *Stack) Enter() *Context {
	ctx := NewContext()
	s.frames = append(s.frames, ctx)
	return ctx
}

// Exit pops ctx and any frames above it, so the stack unwinds even
// when inner frames were abandoned. It errors when ctx is not on the
// stack.
func (s *Stack) Exit(ctx *Context) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i] == ctx {
			s.frames = s.frames[:i]
			return nil
		}
	}
	return errors.Newf("record: context %s is not on the recording stack", ctx.ID())
}

// Current returns the innermost context, or nil when the stack is
// empty.
func (s *Stack) Current() *Context {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of contexts on the stack.
func (s *Stack) Depth() int { return len(s.frames) }

// Record appends o to the innermost context only. It reports whether
// anything was recorded.
func (s *Stack) Record(o *op.Operation) bool {
	cur := s.Current()
	if cur == nil {
		return false
	}
	cur.Record(o)
	return true
}

// With runs fn inside a fresh context and returns that context. The
// frame is popped on every exit path, including panics.
func With(s *Stack, fn func(*Context)) *Context {
	ctx := s.Enter()
	defer func() {
		_ = s.Exit(ctx)
	}()
	fn(ctx)
	return ctx
}
