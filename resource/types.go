package resource

import "github.com/wippyai/hollowcore/object"

// Handle is an opaque reference to an object held by a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType tells observers what happened to a handle.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventBorrowed
	EventBorrowReturned
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	case EventBorrowed:
		return "borrowed"
	case EventBorrowReturned:
		return "borrow-returned"
	default:
		return "unknown"
	}
}

// Event represents a handle lifecycle event. Value is borrowed for the
// duration of the callback.
type Event struct {
	Value      object.Object
	ObjectType *object.Type
	Handle     Handle
	Type       EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the slot storage behind a Table. It stores references
// as given; retaining and releasing is the table's job.
type Backend interface {
	// Create stores o and returns its handle.
	Create(o object.Object) (Handle, error)

	// Get retrieves the object behind a handle.
	Get(handle Handle) (object.Object, bool)

	// Drop empties the slot and returns the stored reference.
	// Fails for unknown handles and for handles with outstanding borrows.
	Drop(handle Handle) (object.Object, error)

	// Borrow increments the borrow count for a handle.
	Borrow(handle Handle) bool

	// ReturnBorrow decrements the borrow count for a handle.
	ReturnBorrow(handle Handle) bool

	// Len returns the number of occupied slots.
	Len() int

	// Each visits occupied slots in handle order until fn returns false.
	Each(fn func(Handle, object.Object) bool)

	// Close empties every slot and returns the stored references.
	Close() ([]object.Object, error)
}
