package record

import (
	"reflect"

	"github.com/qbitlabs/circuitkit/op"
)

// Template is a reusable sub-circuit: a pure function expanding into a
// fixed operation sequence over the given wires. Expand a template and
// pass the resulting slice to Invert; passing the function itself is
// an error.
type Template func(wires ...int) []*op.Operation

// Inversion is the result of Invert: the reversed, element-inverted
// sequence, available whether or not a context was spliced.
type Inversion struct {
	ops []*op.Operation
}

// Operations returns a copy of the inverted sequence.
func (v *Inversion) Operations() []*op.Operation {
	return append([]*op.Operation(nil), v.ops...)
}

// Invert reverses a sequence of operations and inverts each element.
// It accepts a single operation, a slice of operations, a mixed slice,
// or a previous Inversion.
//
// When ctx is non-nil, every input element already recorded in ctx is
// removed and the inverted block is spliced in at the position of the
// first removed element, preserving the surrounding order. Elements
// never recorded are inverted all the same; when none of the input was
// recorded the block is appended. All validation happens before the
// context is touched, so a failed call leaves ctx unchanged.
func Invert(ctx *Context, input any) (*Inversion, error) {
	ops, err := normalize(input)
	if err != nil {
		return nil, err
	}

	inverted := make([]*op.Operation, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		inv, err := ops[i].Inverse()
		if err != nil {
			return nil, err
		}
		inverted = append(inverted, inv)
	}

	if ctx != nil {
		splice(ctx, ops, inverted)
	}
	return &Inversion{ops: inverted}, nil
}

func normalize(input any) ([]*op.Operation, error) {
	if input == nil {
		return nil, NewInversionError(ErrCodeNilInput,
			"nil was passed as an argument to Invert; this could happen if inversion of a template without expansion is attempted")
	}
	switch v := input.(type) {
	case *op.Operation:
		if v == nil {
			return nil, NewInversionError(ErrCodeNilInput,
				"nil was passed as an argument to Invert; this could happen if inversion of a template without expansion is attempted")
		}
		return []*op.Operation{v}, nil
	case []*op.Operation:
		return append([]*op.Operation(nil), v...), nil
	case *Inversion:
		return v.Operations(), nil
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Func:
		return nil, NewInversionError(ErrCodeBareCallable,
			"a function was passed as an argument to Invert; expand the template into operations before inverting")
	case reflect.Slice, reflect.Array:
		ops := make([]*op.Operation, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			o, ok := elem.(*op.Operation)
			if !ok || o == nil {
				return nil, NewInversionError(ErrCodeNotOperation,
					"the given operation list does not only contain operations; element %d is %T", i, elem)
			}
			ops[i] = o
		}
		return ops, nil
	default:
		return nil, NewInversionError(ErrCodeNotIterable,
			"the provided operation list is not iterable; got %T", input)
	}
}

// splice removes the already-recorded input elements from ctx by
// identity and inserts the inverted block at the position of the first
// removal, or at the end when nothing was recorded. Each input element
// removes at most one occurrence, so an operation recorded twice keeps
// its other position.
func splice(ctx *Context, originals, inverted []*op.Operation) {
	pending := make(map[*op.Operation]int, len(originals))
	for _, o := range originals {
		pending[o]++
	}

	kept := make([]*op.Operation, 0, len(ctx.ops))
	insertAt := -1
	for _, o := range ctx.ops {
		if pending[o] > 0 {
			pending[o]--
			if insertAt < 0 {
				insertAt = len(kept)
			}
			continue
		}
		kept = append(kept, o)
	}
	if insertAt < 0 {
		insertAt = len(kept)
	}

	out := make([]*op.Operation, 0, len(kept)+len(inverted))
	out = append(out, kept[:insertAt]...)
	out = append(out, inverted...)
	out = append(out, kept[insertAt:]...)
	ctx.ops = out
}
