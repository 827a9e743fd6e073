package resource

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/hollowcore/object"
)

// Options configures a Table.
type Options struct {
	// Logger receives drop and refusal messages. Nil means the package logger.
	Logger *zap.Logger

	// InitialCapacity is the number of slots reserved up front.
	InitialCapacity int
}

// DefaultOptions returns default table configuration.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: 64,
	}
}

// Table maps handles to retained objects. Each occupied slot owns one
// reference. Safe for concurrent use.
type Table struct {
	backend   Backend
	logger    *zap.Logger
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a table with a LocalBackend.
func NewTable(opts Options) *Table {
	return NewTableWithBackend(NewLocalBackend(opts.InitialCapacity), opts)
}

// NewTableWithDefaults creates a table with default options.
func NewTableWithDefaults() *Table {
	return NewTable(DefaultOptions())
}

// NewTableWithBackend creates a table over the given backend.
func NewTableWithBackend(b Backend, opts Options) *Table {
	l := opts.Logger
	if l == nil {
		l = Logger()
	}
	return &Table{backend: b, logger: l}
}

// Insert retains o and returns its handle, or 0 if the table is closed.
func (t *Table) Insert(o object.Object) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(object.Retain(o))
	if err != nil {
		object.Release(o)
		t.logger.Debug("insert refused", zap.Error(err))
		return 0
	}

	t.notify(Event{
		Type:       EventCreated,
		Handle:     handle,
		ObjectType: object.TypeOf(o),
		Value:      o,
	})

	return handle
}

// Get returns the object behind handle. The reference is borrowed from the
// table; retain it to keep it past a Drop.
func (t *Table) Get(handle Handle) (object.Object, bool) {
	return t.backend.Get(handle)
}

// GetTyped returns the object behind handle only if it is of kind typ.
func (t *Table) GetTyped(handle Handle, typ *object.Type) (object.Object, bool) {
	o, ok := t.backend.Get(handle)
	if !ok || !object.IsOfKind(o, typ) {
		return nil, false
	}
	return o, true
}

// Remove empties the slot and hands the table's reference to the caller,
// who must release it. Fails while the handle is borrowed.
func (t *Table) Remove(handle Handle) (object.Object, bool) {
	o, err := t.backend.Drop(handle)
	if err != nil {
		t.logger.Debug("remove refused", zap.Uint32("handle", uint32(handle)), zap.Error(err))
		return nil, false
	}

	t.notify(Event{
		Type:       EventDropped,
		Handle:     handle,
		ObjectType: object.TypeOf(o),
		Value:      o,
	})

	return o, true
}

// Drop empties the slot and releases the table's reference. It reports
// whether the handle was dropped.
func (t *Table) Drop(handle Handle) bool {
	o, ok := t.Remove(handle)
	if !ok {
		return false
	}
	name := object.Name(o)
	if object.Release(o) {
		t.logger.Debug("dropped last reference",
			zap.Uint32("handle", uint32(handle)),
			zap.String("type", name))
	}
	return true
}

// Borrow marks handle as lent out. Borrowed handles cannot be removed.
func (t *Table) Borrow(handle Handle) bool {
	if !t.backend.Borrow(handle) {
		return false
	}
	o, _ := t.backend.Get(handle)
	t.notify(Event{Type: EventBorrowed, Handle: handle, ObjectType: object.TypeOf(o), Value: o})
	return true
}

// ReturnBorrow ends one borrow of handle.
func (t *Table) ReturnBorrow(handle Handle) bool {
	if !t.backend.ReturnBorrow(handle) {
		return false
	}
	o, _ := t.backend.Get(handle)
	t.notify(Event{Type: EventBorrowReturned, Handle: handle, ObjectType: object.TypeOf(o), Value: o})
	return true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of occupied handles.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Each visits every handle in order until fn returns false. Objects are
// borrowed.
func (t *Table) Each(fn func(Handle, object.Object) bool) {
	// Snapshot so fn may call back into the table.
	type slot struct {
		h Handle
		o object.Object
	}
	var slots []slot
	t.backend.Each(func(h Handle, o object.Object) bool {
		slots = append(slots, slot{h, o})
		return true
	})
	for _, s := range slots {
		if !fn(s.h, s.o) {
			return
		}
	}
}

// Clear drops every handle that is not borrowed and returns how many were
// dropped.
func (t *Table) Clear() int {
	var handles []Handle
	t.backend.Each(func(h Handle, _ object.Object) bool {
		handles = append(handles, h)
		return true
	})
	dropped := 0
	for _, h := range handles {
		if t.Drop(h) {
			dropped++
		}
	}
	return dropped
}

// Close releases every held reference, borrowed or not, and stops accepting
// inserts.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	values, err := t.backend.Close()
	for _, o := range values {
		object.Release(o)
	}
	if len(values) > 0 {
		t.logger.Debug("table closed", zap.Int("released", len(values)))
	}
	return err
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
