package list

import (
	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/object"
)

// grow doubles the backing store, keeping element order.
func (l *List[T]) grow() {
	capacity := len(l.objects) * 2
	if capacity == 0 {
		capacity = 1
	}
	objects := make([]T, capacity)
	copy(objects, l.objects[:l.count])
	l.objects = objects
}

// insert places x at i, which must be in [0, count]. x is stored as is;
// the caller decides whether the slot's reference is a new one.
func (l *List[T]) insert(i int, x T) {
	if l.count == len(l.objects) {
		l.grow()
	}
	copy(l.objects[i+1:l.count+1], l.objects[i:l.count])
	l.objects[i] = x
	l.count++
}

// take removes the element at i and hands its slot reference to the caller.
func (l *List[T]) take(i int) T {
	x := l.objects[i]
	copy(l.objects[i:l.count-1], l.objects[i+1:l.count])
	var zero T
	l.objects[l.count-1] = zero
	l.count--
	return x
}

// AddObject appends x, retaining it.
func (l *List[T]) AddObject(x T) {
	l.insert(l.count, object.Retain(x))
}

// AddObjectAtIndex inserts x at i, retaining it and shifting later elements
// up by one. i may equal Count to append.
func (l *List[T]) AddObjectAtIndex(i int, x T) error {
	if i < 0 || i > l.count {
		return errors.OutOfBounds(errors.PhaseContainer, []string{"list", "AddObjectAtIndex"}, i, l.count)
	}
	l.insert(i, object.Retain(x))
	return nil
}

// RemoveObjectAtIndex removes and releases the element at i, shifting later
// elements down by one.
func (l *List[T]) RemoveObjectAtIndex(i int) error {
	if !l.ContainsIndex(i) {
		return errors.OutOfBounds(errors.PhaseContainer, []string{"list", "RemoveObjectAtIndex"}, i, l.count)
	}
	object.Release(l.take(i))
	return nil
}

// RemoveObject removes and releases the last element.
func (l *List[T]) RemoveObject() error {
	if l.count == 0 {
		return errors.Empty(errors.PhaseContainer, []string{"list", "RemoveObject"})
	}
	object.Release(l.take(l.count - 1))
	return nil
}

// RemoveFirstObjectEqualToObject removes the first element equal to x and
// reports whether one was found.
func (l *List[T]) RemoveFirstObjectEqualToObject(x object.Object) bool {
	return l.RemoveObjectEqualToObject(0, false, x)
}

// RemoveLastObjectEqualToObject removes the last element equal to x and
// reports whether one was found.
func (l *List[T]) RemoveLastObjectEqualToObject(x object.Object) bool {
	return l.RemoveObjectEqualToObject(l.count, true, x)
}

// RemoveObjectEqualToObject removes the element IndexOfObject would find.
func (l *List[T]) RemoveObjectEqualToObject(searchIndex int, reverse bool, x object.Object) bool {
	i := l.IndexOfObject(searchIndex, reverse, x)
	if i == NotFound {
		return false
	}
	object.Release(l.take(i))
	return true
}

// RemoveAllObjectsEqualToObject removes every element equal to x and
// returns how many were removed.
func (l *List[T]) RemoveAllObjectsEqualToObject(x object.Object) int {
	removed := 0
	for i := l.count - 1; i >= 0; i-- {
		if object.Equal(x, l.objects[i]) {
			object.Release(l.take(i))
			removed++
		}
	}
	return removed
}

// Clear releases every element. Capacity is unchanged.
func (l *List[T]) Clear() {
	var zero T
	for l.count > 0 {
		l.count--
		x := l.objects[l.count]
		l.objects[l.count] = zero
		object.Release(x)
	}
}

// AddObjectReleased appends x and gives up the caller's reference to it:
// the list adopts the reference instead of adding one.
func (l *List[T]) AddObjectReleased(x T) {
	l.insert(l.count, x)
}

// AddObjectReleasedAtIndex inserts x at i, adopting the caller's reference.
// The reference is consumed even when i is out of range, in which case it is
// released.
func (l *List[T]) AddObjectReleasedAtIndex(i int, x T) error {
	if i < 0 || i > l.count {
		object.Release(x)
		return errors.OutOfBounds(errors.PhaseContainer, []string{"list", "AddObjectReleasedAtIndex"}, i, l.count)
	}
	l.insert(i, x)
	return nil
}

// RemoveObjectRetained removes the last element and returns it together with
// the list's reference, which the caller now owns.
func (l *List[T]) RemoveObjectRetained() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, errors.Empty(errors.PhaseContainer, []string{"list", "RemoveObjectRetained"})
	}
	return l.take(l.count - 1), nil
}

// RemoveObjectRetainedAtIndex removes the element at i and returns it owned
// by the caller.
func (l *List[T]) RemoveObjectRetainedAtIndex(i int) (T, error) {
	if !l.ContainsIndex(i) {
		var zero T
		return zero, errors.OutOfBounds(errors.PhaseContainer, []string{"list", "RemoveObjectRetainedAtIndex"}, i, l.count)
	}
	return l.take(i), nil
}

// RemoveFirstObjectRetainedEqualToObject removes the first element equal to
// x and returns it owned by the caller.
func (l *List[T]) RemoveFirstObjectRetainedEqualToObject(x object.Object) (T, bool) {
	return l.RemoveObjectRetainedEqualToObject(0, false, x)
}

// RemoveLastObjectRetainedEqualToObject removes the last element equal to x
// and returns it owned by the caller.
func (l *List[T]) RemoveLastObjectRetainedEqualToObject(x object.Object) (T, bool) {
	return l.RemoveObjectRetainedEqualToObject(l.count, true, x)
}

// RemoveObjectRetainedEqualToObject removes the element IndexOfObject would
// find and returns it owned by the caller.
func (l *List[T]) RemoveObjectRetainedEqualToObject(searchIndex int, reverse bool, x object.Object) (T, bool) {
	i := l.IndexOfObject(searchIndex, reverse, x)
	if i == NotFound {
		var zero T
		return zero, false
	}
	return l.take(i), true
}
