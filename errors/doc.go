// Package errors provides structured error types for the hollowcore object runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: operation path, object type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseContainer, errors.KindOutOfBounds).
//		Path("list", "ObjectAtIndex").
//		Type("Number").
//		Detail("index %d out of bounds (count %d)", 7, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseContainer, path, 7, 3)
//	err := errors.Empty(errors.PhaseContainer, path)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only, so a bare &Error{Phase: p, Kind: k}
// works as a sentinel.
package errors
