package resource

import (
	"strconv"
	"sync"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/object"
)

// LocalBackend is an in-memory backend with borrow tracking and slot reuse.
type LocalBackend struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value       object.Object
	borrowCount uint32
	valid       bool
}

// NewLocalBackend creates a backend with room for capacity entries before
// it grows.
func NewLocalBackend(capacity int) *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, max(capacity, 0)),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores o and returns a handle.
func (b *LocalBackend) Create(o object.Object) (Handle, error) {
	if o == nil {
		return 0, errors.InvalidInput(errors.PhaseResource, "cannot store a nil object")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errors.Closed(errors.PhaseResource, "backend")
	}

	e := entry{value: o, valid: true}

	if len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return Handle(len(b.entries)), nil
}

// lookup returns the live entry for handle. Callers hold b.mu.
func (b *LocalBackend) lookup(handle Handle) *entry {
	if handle == 0 || int(handle-1) >= len(b.entries) {
		return nil
	}
	e := &b.entries[handle-1]
	if !e.valid {
		return nil
	}
	return e
}

// Get retrieves the object behind a handle.
func (b *LocalBackend) Get(handle Handle) (object.Object, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Drop empties the slot and returns its reference.
func (b *LocalBackend) Drop(handle Handle) (object.Object, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		err := errors.NotFound(errors.PhaseResource, "handle", strconv.FormatUint(uint64(handle), 10))
		err.Value = uint32(handle)
		return nil, err
	}
	if e.borrowCount > 0 {
		return nil, errors.Borrowed(errors.PhaseResource, uint32(handle), e.borrowCount)
	}

	value := e.value
	*e = entry{}
	b.freeList = append(b.freeList, handle)
	return value, nil
}

// Borrow increments the borrow count for a handle.
func (b *LocalBackend) Borrow(handle Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return false
	}
	e.borrowCount++
	return true
}

// ReturnBorrow decrements the borrow count for a handle.
func (b *LocalBackend) ReturnBorrow(handle Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil || e.borrowCount == 0 {
		return false
	}
	e.borrowCount--
	return true
}

// Borrows returns the outstanding borrow count for a handle.
func (b *LocalBackend) Borrows(handle Handle) (uint32, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.borrowCount, true
}

// Len returns the number of occupied slots.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries) - len(b.freeList)
}

// Each visits occupied slots in handle order. The lock is held during the
// walk, so fn must not call back into the backend.
func (b *LocalBackend) Each(fn func(Handle, object.Object) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.value) {
				break
			}
		}
	}
}

// Close empties every slot, borrowed or not, and returns the stored
// references. Later calls return nothing.
func (b *LocalBackend) Close() ([]object.Object, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, nil
	}
	b.closed = true

	var values []object.Object
	for i := range b.entries {
		if b.entries[i].valid {
			values = append(values, b.entries[i].value)
		}
	}

	b.entries = nil
	b.freeList = nil
	return values, nil
}
