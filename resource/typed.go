package resource

import (
	"strconv"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/object"
)

// Typed is a type-safe view of a Table restricted to objects of kind typ
// whose Go type is T. Handles of other kinds are invisible through it.
type Typed[T object.Object] struct {
	table *Table
	typ   *object.Type
}

// NewTyped returns a view of table for objects of kind typ.
func NewTyped[T object.Object](table *Table, typ *object.Type) *Typed[T] {
	return &Typed[T]{table: table, typ: typ}
}

// Table returns the underlying table.
func (v *Typed[T]) Table() *Table {
	return v.table
}

// Insert retains value and returns its handle.
func (v *Typed[T]) Insert(value T) Handle {
	return v.table.Insert(value)
}

// Lookup returns the borrowed value behind handle. An empty handle is a
// not-found error; a handle holding another kind is a type mismatch.
func (v *Typed[T]) Lookup(handle Handle) (T, error) {
	var zero T
	o, ok := v.table.Get(handle)
	if !ok {
		err := errors.NotFound(errors.PhaseResource, "handle", strconv.FormatUint(uint64(handle), 10))
		err.Value = uint32(handle)
		return zero, err
	}
	value, ok := o.(T)
	if !ok || !object.IsOfKind(o, v.typ) {
		err := errors.TypeMismatch(errors.PhaseResource, []string{"resource", "Typed"}, object.Name(o), v.typ.Name())
		err.Value = uint32(handle)
		return zero, err
	}
	return value, nil
}

// Get returns the borrowed value behind handle.
func (v *Typed[T]) Get(handle Handle) (T, bool) {
	value, err := v.Lookup(handle)
	return value, err == nil
}

// Remove hands the table's reference to the caller. Handles of another kind
// are left in place.
func (v *Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	if _, ok := v.Get(handle); !ok {
		return zero, false
	}
	o, ok := v.table.Remove(handle)
	if !ok {
		return zero, false
	}
	value, ok := o.(T)
	if !ok {
		// Replaced between the check and the removal; drop what was taken.
		object.Release(o)
		return zero, false
	}
	return value, true
}

// Drop releases the table's reference to the value behind handle.
func (v *Typed[T]) Drop(handle Handle) bool {
	if _, ok := v.Get(handle); !ok {
		return false
	}
	return v.table.Drop(handle)
}

// Len returns the number of handles holding a value of this kind.
func (v *Typed[T]) Len() int {
	n := 0
	v.Each(func(Handle, T) bool {
		n++
		return true
	})
	return n
}

// Each visits the handles holding a value of this kind.
func (v *Typed[T]) Each(fn func(Handle, T) bool) {
	v.table.Each(func(h Handle, o object.Object) bool {
		value, ok := o.(T)
		if !ok || !object.IsOfKind(o, v.typ) {
			return true
		}
		return fn(h, value)
	})
}
