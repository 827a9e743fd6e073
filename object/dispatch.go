package object

import (
	"io"
	"strings"

	"github.com/wippyai/hollowcore/errors"
)

func typeOf(o Object) *Type {
	t := o.Header().typ
	if t == nil {
		panic(errors.InvalidInput(errors.PhaseDispatch, "object header not initialized"))
	}
	return t
}

// Resolve returns the function registered for op in o's own type. The
// result is one of the Ops field types and is never inherited from an
// ancestor.
func Resolve(o Object, op Operation) (any, error) {
	if IsNil(o) {
		return nil, errors.InvalidInput(errors.PhaseDispatch, "resolve on nil object")
	}
	ops := typeOf(o).ops
	switch op {
	case OpEqual:
		return ops.Equal, nil
	case OpHash:
		return ops.Hash, nil
	case OpPrint:
		return ops.Print, nil
	case OpDestroy:
		return ops.Destroy, nil
	}
	return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
		Type(typeOf(o).name).
		Value(op).
		Detail("unknown operation %d", uint8(op)).
		Build()
}

// Equal reports whether a considers itself equal to b. Only a's type is
// consulted; comparing across types is that type's decision. Nil is never
// equal to anything.
func Equal(a, b Object) bool {
	if IsNil(a) || IsNil(b) {
		return false
	}
	return typeOf(a).ops.Equal(a, b)
}

// Hash returns a's hash value, or 0 for nil.
func Hash(a Object) uint64 {
	if IsNil(a) {
		return 0
	}
	return typeOf(a).ops.Hash(a)
}

// Print writes a's textual representation to w.
func Print(a Object, w io.Writer) error {
	if IsNil(a) {
		_, err := io.WriteString(w, "<nil>")
		return err
	}
	return typeOf(a).ops.Print(a, w)
}

// String returns what Print would write.
func String(a Object) string {
	var b strings.Builder
	_ = Print(a, &b)
	return b.String()
}

// TypeOf returns o's most-derived type, or nil for nil.
func TypeOf(o Object) *Type {
	h := header(o)
	if h == nil {
		return nil
	}
	return h.typ
}

// Name returns the name of o's type.
func Name(o Object) string {
	if t := TypeOf(o); t != nil {
		return t.name
	}
	return ""
}

// Ancestor returns the parent of o's type.
func Ancestor(o Object) *Type {
	if t := TypeOf(o); t != nil {
		return t.ancestor
	}
	return nil
}

func IsOfType(o Object, t *Type) bool {
	return TypeOf(o).IsOfType(t)
}

func HasAncestor(o Object, t *Type) bool {
	return TypeOf(o).HasAncestor(t)
}

func IsOfKind(o Object, t *Type) bool {
	return TypeOf(o).IsOfKind(t)
}
