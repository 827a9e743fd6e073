package list

import "github.com/wippyai/hollowcore/object"

// ContainsObject reports whether some element is equal to x.
func (l *List[T]) ContainsObject(x object.Object) bool {
	return l.FirstIndexOfObject(x) != NotFound
}

// FirstIndexOfObject returns the lowest index holding an element equal to x.
func (l *List[T]) FirstIndexOfObject(x object.Object) int {
	return l.IndexOfObject(0, false, x)
}

// LastIndexOfObject returns the highest index holding an element equal to x.
func (l *List[T]) LastIndexOfObject(x object.Object) int {
	return l.IndexOfObject(l.count, true, x)
}

// IndexOfObject searches for an element equal to x, comparing with
// object.Equal(x, element). A forward search scans upward from searchIndex;
// a reverse search scans downward from searchIndex-1. Returns NotFound when
// nothing matches.
func (l *List[T]) IndexOfObject(searchIndex int, reverse bool, x object.Object) int {
	if !reverse {
		for i := max(searchIndex, 0); i < l.count; i++ {
			if object.Equal(x, l.objects[i]) {
				return i
			}
		}
		return NotFound
	}
	for i := min(searchIndex, l.count) - 1; i >= 0; i-- {
		if object.Equal(x, l.objects[i]) {
			return i
		}
	}
	return NotFound
}
