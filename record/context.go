package record

import (
	"strings"

	"github.com/google/uuid"

	"github.com/qbitlabs/circuitkit/op"
)

// Context is an ordered, append-only list of recorded operations.
// Constructing an operation never records it; recording happens only
// through Record, Apply or Stack.Record.
type Context struct {
	id  uuid.UUID
	ops []*op.Operation
}

// NewContext creates an empty recording context with a fresh handle.
func NewContext() *Context {
	return &Context{id: uuid.New()}
}

// ID returns the context handle.
func (c *Context) ID() uuid.UUID { return c.id }

// Record appends a single operation.
func (c *Context) Record(o *op.Operation) {
	c.ops = append(c.ops, o)
}

// Apply appends the operations in order.
func (c *Context) Apply(ops ...*op.Operation) {
	c.ops = append(c.ops, ops...)
}

// Operations returns a copy of the recorded sequence.
func (c *Context) Operations() []*op.Operation {
	return append([]*op.Operation(nil), c.ops...)
}

// Len returns the number of recorded operations.
func (c *Context) Len() int { return len(c.ops) }

// String renders one operation per line in recording order. The
// rendering is stable and suitable for golden comparisons.
func (c *Context) String() string {
	var b strings.Builder
	for _, o := range c.ops {
		b.WriteString(o.String())
		b.WriteString("\n")
	}
	return b.String()
}
