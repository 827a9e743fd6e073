package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegistration Phase = "registration" // type descriptor registration
	PhaseDispatch     Phase = "dispatch"     // operation resolution
	PhaseLifecycle    Phase = "lifecycle"    // retain/release
	PhaseContainer    Phase = "container"    // list operations
	PhaseResource     Phase = "resource"     // handle table operations
	PhaseConversion   Phase = "conversion"   // parsing values from text
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds     Kind = "out_of_bounds"
	KindEmpty           Kind = "empty"
	KindAllocation      Kind = "allocation"
	KindRegistration    Kind = "registration"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
	KindTypeMismatch    Kind = "type_mismatch"
	KindOverRelease     Kind = "over_release"
	KindUseAfterRelease Kind = "use_after_release"
	KindClosed          Kind = "closed"
	KindBorrowed        Kind = "borrowed"
)

// Error is the structured error type used throughout hollowcore
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the operation path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the object type name
func (b *Builder) Type(name string) *Builder {
	b.err.Type = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (count %d)", index, length),
		Value:  index,
	}
}

// Empty creates an error for an operation that needs at least one element
func Empty(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmpty,
		Path:   path,
		Detail: "no elements",
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d slots", count),
		Value:  count,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Type:   got,
		Detail: fmt.Sprintf("expected kind of %s", want),
	}
}

// OverRelease creates an error for a release past zero
func OverRelease(typeName string, count int64) *Error {
	return &Error{
		Phase:  PhaseLifecycle,
		Kind:   KindOverRelease,
		Type:   typeName,
		Detail: fmt.Sprintf("negative reference count %d", count),
		Value:  count,
	}
}

// UseAfterRelease creates an error for a retain of a destroyed object
func UseAfterRelease(typeName string) *Error {
	return &Error{
		Phase:  PhaseLifecycle,
		Kind:   KindUseAfterRelease,
		Type:   typeName,
		Detail: "object already destroyed",
	}
}

// Closed creates an error for an operation on a closed container
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s closed", what),
	}
}

// Borrowed creates an error for a removal refused by outstanding borrows
func Borrowed(phase Phase, handle uint32, borrows uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBorrowed,
		Detail: fmt.Sprintf("handle %d has %d outstanding borrow(s)", handle, borrows),
		Value:  handle,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a type registration error
func Registration(name string, detail string) *Error {
	return &Error{
		Phase:  PhaseRegistration,
		Kind:   KindRegistration,
		Type:   name,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
