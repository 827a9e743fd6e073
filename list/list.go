package list

import (
	"io"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/object"
)

const (
	// NotFound is returned by the index searches when nothing matches.
	NotFound = -1

	// DefaultCapacity is the number of slots New preallocates.
	DefaultCapacity = 8

	// MaxCapacity bounds the slots a list may preallocate.
	MaxCapacity = 1<<31 - 1
)

// Type is the descriptor shared by every List, whatever its element type.
var Type = object.MustRegisterType("List", object.RootType, object.Ops{
	Equal:   listEqual,
	Hash:    listHash,
	Print:   listPrint,
	Destroy: listDestroy,
})

// List is an ordered, index-addressable sequence of object references.
//
// The list holds one reference to each element: insertion retains and
// removal releases, so plain mutation leaves the caller's own references
// untouched. The Released/Retained variants hand a reference over in one
// step instead.
//
// A List is itself an object with an initial reference count of 1; releasing
// the last reference releases every element. It is not safe for concurrent
// mutation.
type List[T object.Object] struct {
	header  object.Header
	objects []T
	count   int
}

// untyped is the view of a List the type's operations work through, since
// they cannot name the element type.
type untyped interface {
	object.Object
	Count() int
	element(i int) object.Object
	destroy()
}

// New creates an empty list with DefaultCapacity slots.
func New[T object.Object]() *List[T] {
	return newList[T](DefaultCapacity)
}

// NewWithCapacity creates an empty list with room for n elements.
func NewWithCapacity[T object.Object](n int) (*List[T], error) {
	if n < 0 {
		return nil, errors.New(errors.PhaseContainer, errors.KindInvalidInput).
			Path("list", "NewWithCapacity").
			Value(n).
			Detail("negative capacity %d", n).
			Build()
	}
	if n > MaxCapacity {
		return nil, errors.AllocationFailed(errors.PhaseContainer, n)
	}
	return newList[T](n), nil
}

// From creates a list holding items in order. Each item is retained.
func From[T object.Object](items ...T) *List[T] {
	l := newList[T](max(len(items), DefaultCapacity))
	for _, item := range items {
		l.AddObject(item)
	}
	return l
}

func newList[T object.Object](capacity int) *List[T] {
	l := &List[T]{objects: make([]T, capacity)}
	object.Init(&l.header, Type)
	return l
}

// Header implements object.Object.
func (l *List[T]) Header() *object.Header {
	return &l.header
}

func (l *List[T]) String() string {
	return object.String(l)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.count
}

// Capacity returns the number of allocated slots.
func (l *List[T]) Capacity() int {
	return len(l.objects)
}

// ContainsIndex reports whether i addresses an element.
func (l *List[T]) ContainsIndex(i int) bool {
	return i >= 0 && i < l.count
}

// ObjectAtIndex returns the element at i without retaining it.
func (l *List[T]) ObjectAtIndex(i int) (T, error) {
	if !l.ContainsIndex(i) {
		var zero T
		return zero, errors.OutOfBounds(errors.PhaseContainer, []string{"list", "ObjectAtIndex"}, i, l.count)
	}
	return l.objects[i], nil
}

// FirstObject returns the first element without retaining it.
func (l *List[T]) FirstObject() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, errors.Empty(errors.PhaseContainer, []string{"list", "FirstObject"})
	}
	return l.objects[0], nil
}

// LastObject returns the last element without retaining it.
func (l *List[T]) LastObject() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, errors.Empty(errors.PhaseContainer, []string{"list", "LastObject"})
	}
	return l.objects[l.count-1], nil
}

// Slice returns a copy of the elements. The references are borrowed from the
// list and are not retained.
func (l *List[T]) Slice() []T {
	out := make([]T, l.count)
	copy(out, l.objects[:l.count])
	return out
}

func (l *List[T]) element(i int) object.Object {
	return l.objects[i]
}

func (l *List[T]) destroy() {
	l.Clear()
	l.objects = nil
}

func listEqual(self, other object.Object) bool {
	a := self.(untyped)
	b, ok := other.(untyped)
	if !ok {
		return false
	}
	if a.Count() != b.Count() {
		return false
	}
	for i := 0; i < a.Count(); i++ {
		if !object.Equal(a.element(i), b.element(i)) {
			return false
		}
	}
	return true
}

func listHash(self object.Object) uint64 {
	l := self.(untyped)
	hash := uint64(5381)
	for i := 0; i < l.Count(); i++ {
		hash = (hash << 5) + hash + object.Hash(l.element(i))
	}
	return hash
}

func listPrint(self object.Object, w io.Writer) error {
	l := self.(untyped)
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := 0; i < l.Count(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := object.Print(l.element(i), w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

func listDestroy(self object.Object) {
	self.(untyped).destroy()
}
