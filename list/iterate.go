package list

import (
	"iter"

	"github.com/wippyai/hollowcore/object"
)

// All yields each index and element from first to last. Elements are
// borrowed; the list keeps its references.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(i, l.objects[i]) {
				return
			}
		}
	}
}

// Backward yields each index and element from last to first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.count - 1; i >= 0; i-- {
			if i >= l.count {
				continue
			}
			if !yield(i, l.objects[i]) {
				return
			}
		}
	}
}

// Values yields each element from first to last.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(l.objects[i]) {
				return
			}
		}
	}
}

// ForEach calls fn with each element in order.
func (l *List[T]) ForEach(fn func(T)) {
	for x := range l.Values() {
		fn(x)
	}
}

// FilterRetained returns a new list holding the elements for which keep
// reports true. The caller owns the returned list.
func (l *List[T]) FilterRetained(keep func(T) bool) *List[T] {
	out := New[T]()
	for x := range l.Values() {
		if keep(x) {
			out.AddObject(x)
		}
	}
	return out
}

// MapRetained returns a new list holding fn applied to each element of l.
// fn must return a reference the caller owns, such as a newly created object
// or a retained one; the new list adopts it. The caller owns the returned list.
func MapRetained[T, U object.Object](l *List[T], fn func(T) U) *List[U] {
	out := newList[U](max(l.count, 1))
	for x := range l.Values() {
		out.AddObjectReleased(fn(x))
	}
	return out
}

// ReduceRetained folds the elements of l into an accumulator starting from
// initial. fn receives a borrowed accumulator and must return an owned
// reference; the previous accumulator is released after each step. The
// caller owns the result.
func ReduceRetained[T, A object.Object](l *List[T], initial A, fn func(acc A, x T) A) A {
	acc := object.Retain(initial)
	for x := range l.Values() {
		next := fn(acc, x)
		object.Release(acc)
		acc = next
	}
	return acc
}
