// Package set provides Set, an unordered collection of distinct object
// references built on the object core.
//
// Elements are placed in buckets by object.Hash and told apart by
// object.Equal, so any two elements that compare equal must hash alike.
// Adding an element equal to one already present replaces it.
package set

import (
	"io"
	"iter"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/list"
	"github.com/wippyai/hollowcore/object"
)

// DefaultCapacity is the number of buckets New preallocates.
const DefaultCapacity = 8

// Type is the descriptor shared by every Set, whatever its element type.
var Type = object.MustRegisterType("Set", object.RootType, object.Ops{
	Equal:   setEqual,
	Hash:    setHash,
	Print:   setPrint,
	Destroy: setDestroy,
})

// Set holds one reference to each element. Like List it is itself an
// object; releasing the last reference releases every element. It is not
// safe for concurrent mutation.
type Set[T object.Object] struct {
	header  object.Header
	buckets []*list.List[T]
	count   int
}

type untyped interface {
	object.Object
	Count() int
	ContainsObject(x object.Object) bool
	elements() iter.Seq[object.Object]
	destroy()
}

// New creates an empty set with DefaultCapacity buckets.
func New[T object.Object]() *Set[T] {
	return newSet[T](DefaultCapacity)
}

// NewWithCapacity creates an empty set with n buckets. Zero is rounded up
// to one.
func NewWithCapacity[T object.Object](n int) (*Set[T], error) {
	if n < 0 {
		return nil, errors.New(errors.PhaseContainer, errors.KindInvalidInput).
			Path("set", "NewWithCapacity").
			Value(n).
			Detail("negative capacity %d", n).
			Build()
	}
	if n > list.MaxCapacity {
		return nil, errors.AllocationFailed(errors.PhaseContainer, n)
	}
	return newSet[T](max(n, 1)), nil
}

// From creates a set holding the distinct items. Each stored item is
// retained; of several equal items the last one wins.
func From[T object.Object](items ...T) *Set[T] {
	s := newSet[T](max(len(items), DefaultCapacity))
	for _, item := range items {
		s.AddObject(item)
	}
	return s
}

func newSet[T object.Object](capacity int) *Set[T] {
	s := &Set[T]{buckets: make([]*list.List[T], capacity)}
	object.Init(&s.header, Type)
	return s
}

// Header implements object.Object.
func (s *Set[T]) Header() *object.Header {
	return &s.header
}

func (s *Set[T]) String() string {
	return object.String(s)
}

func (s *Set[T]) IsEmpty() bool {
	return s.count == 0
}

func (s *Set[T]) Count() int {
	return s.count
}

// Capacity returns the number of buckets.
func (s *Set[T]) Capacity() int {
	return len(s.buckets)
}

func (s *Set[T]) slot(x object.Object) int {
	return int(object.Hash(x) % uint64(len(s.buckets)))
}

// find returns the bucket x hashes to and the index of the element equal to
// x within it, or list.NotFound.
func (s *Set[T]) find(x object.Object) (*list.List[T], int) {
	if object.IsNil(x) {
		return nil, list.NotFound
	}
	b := s.buckets[s.slot(x)]
	if b == nil {
		return nil, list.NotFound
	}
	return b, b.FirstIndexOfObject(x)
}

// bucket returns the bucket for x, creating it on first use.
func (s *Set[T]) bucket(x object.Object) *list.List[T] {
	i := s.slot(x)
	if s.buckets[i] == nil {
		b, _ := list.NewWithCapacity[T](2)
		s.buckets[i] = b
	}
	return s.buckets[i]
}

// rehash redistributes every element over n buckets. References move with
// their elements.
func (s *Set[T]) rehash(n int) {
	old := s.buckets
	s.buckets = make([]*list.List[T], n)
	for _, b := range old {
		if b == nil {
			continue
		}
		for x := range b.Values() {
			s.bucket(x).AddObject(x)
		}
		object.Release(b)
	}
}

// ContainsObject reports whether some element is equal to x.
func (s *Set[T]) ContainsObject(x object.Object) bool {
	_, i := s.find(x)
	return i != list.NotFound
}

// ObjectEqualToObject returns the stored element equal to x. The reference
// is borrowed from the set.
func (s *Set[T]) ObjectEqualToObject(x object.Object) (T, bool) {
	b, i := s.find(x)
	if i == list.NotFound {
		var zero T
		return zero, false
	}
	v, _ := b.ObjectAtIndex(i)
	return v, true
}

// AddObject stores x, retaining it. An equal element already present is
// released after x is retained, so adding an element to itself is safe.
// Nil is ignored.
func (s *Set[T]) AddObject(x T) {
	if object.IsNil(x) {
		return
	}
	s.add(object.Retain(x))
}

// AddObjectReleased stores x and adopts the caller's reference to it.
func (s *Set[T]) AddObjectReleased(x T) {
	if object.IsNil(x) {
		return
	}
	s.add(x)
}

func (s *Set[T]) add(x T) {
	if b, i := s.find(x); i != list.NotFound {
		old, _ := b.RemoveObjectRetainedAtIndex(i)
		_ = b.AddObjectReleasedAtIndex(i, x)
		object.Release(old)
		return
	}
	if s.count >= len(s.buckets) {
		s.rehash(len(s.buckets) * 2)
	}
	s.bucket(x).AddObjectReleased(x)
	s.count++
}

// RemoveObject removes and releases the element equal to x and reports
// whether there was one.
func (s *Set[T]) RemoveObject(x object.Object) bool {
	b, i := s.find(x)
	if i == list.NotFound {
		return false
	}
	_ = b.RemoveObjectAtIndex(i)
	s.count--
	return true
}

// RemoveObjectRetained removes the element equal to x and returns it owned
// by the caller.
func (s *Set[T]) RemoveObjectRetained(x object.Object) (T, bool) {
	b, i := s.find(x)
	if i == list.NotFound {
		var zero T
		return zero, false
	}
	v, _ := b.RemoveObjectRetainedAtIndex(i)
	s.count--
	return v, true
}

// Clear releases every element. Capacity is unchanged.
func (s *Set[T]) Clear() {
	for _, b := range s.buckets {
		if b != nil {
			b.Clear()
		}
	}
	s.count = 0
}

// All yields the elements in bucket order. The set must not be mutated
// during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, b := range s.buckets {
			if b == nil {
				continue
			}
			for x := range b.Values() {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Slice returns the elements in iteration order. They are borrowed.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.count)
	for x := range s.All() {
		out = append(out, x)
	}
	return out
}

func (s *Set[T]) elements() iter.Seq[object.Object] {
	return func(yield func(object.Object) bool) {
		for x := range s.All() {
			if !yield(x) {
				return
			}
		}
	}
}

func (s *Set[T]) destroy() {
	for i, b := range s.buckets {
		if b != nil {
			object.Release(b)
			s.buckets[i] = nil
		}
	}
	s.count = 0
}

func setEqual(self, other object.Object) bool {
	a := self.(untyped)
	b, ok := other.(untyped)
	if !ok || a.Count() != b.Count() {
		return false
	}
	for x := range a.elements() {
		if !b.ContainsObject(x) {
			return false
		}
	}
	return true
}

// setHash sums element hashes so that iteration order does not matter.
func setHash(self object.Object) uint64 {
	hash := uint64(5381)
	for x := range self.(untyped).elements() {
		hash += object.Hash(x)
	}
	return hash
}

func setPrint(self object.Object, w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	first := true
	for x := range self.(untyped).elements() {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if err := object.Print(x, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func setDestroy(self object.Object) {
	self.(untyped).destroy()
}
