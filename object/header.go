package object

import (
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/hollowcore/errors"
)

// Object is implemented by every instance. Concrete types embed a Header by
// value and return it from Header:
//
//	type Point struct {
//		header object.Header
//		x, y   float64
//	}
//
//	func (p *Point) Header() *object.Header { return &p.header }
type Object interface {
	Header() *Header
}

// Header is the state shared by every instance: its most-derived type and
// its reference count. A Header must not be copied after Init.
type Header struct {
	typ  *Type
	refs atomic.Int64
	dead atomic.Bool
}

// Init prepares h for an instance of type t with a reference count of 1,
// the creator's claim. It must be called exactly once, before the instance
// is shared.
func Init(h *Header, t *Type) {
	if t == nil {
		panic(errors.InvalidInput(errors.PhaseLifecycle, "init with nil type"))
	}
	if h.typ != nil {
		panic(errors.New(errors.PhaseLifecycle, errors.KindInvalidInput).
			Type(h.typ.name).
			Detail("header already initialized").
			Build())
	}
	h.typ = t
	h.refs.Store(1)
}

// Type returns the instance's most-derived type.
func (h *Header) Type() *Type {
	return h.typ
}

// RetainCount returns the current reference count.
func (h *Header) RetainCount() int64 {
	return h.refs.Load()
}

// Destroyed reports whether the instance's destroy chain has run.
func (h *Header) Destroyed() bool {
	return h.dead.Load()
}

func (h *Header) typeName() string {
	if h.typ == nil {
		return ""
	}
	return h.typ.name
}

// IsNil reports whether o is a nil interface or holds a nil pointer.
func IsNil(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func header(o Object) *Header {
	if IsNil(o) {
		return nil
	}
	return o.Header()
}

// Retain adds a reference to o and returns o. Retaining nil is a no-op.
// Retaining an object that was already destroyed panics and leaves its
// count at zero.
func Retain[T Object](o T) T {
	h := header(o)
	if h == nil {
		return o
	}
	for {
		n := h.refs.Load()
		if n <= 0 {
			panic(errors.UseAfterRelease(h.typeName()))
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return o
		}
	}
}

// Release drops a reference to o. The release that brings the count to zero
// runs the destroy chain and returns true; o must not be used afterwards.
// Releasing nil is a no-op. Releasing past zero panics.
func Release(o Object) bool {
	h := header(o)
	if h == nil {
		return false
	}
	n := h.refs.Add(-1)
	if n > 0 {
		return false
	}
	if n < 0 {
		panic(errors.OverRelease(h.typeName(), n))
	}
	destroy(o, h)
	return true
}

// destroy runs each level's destroy hook, most-derived type first and the
// root last. Each hook releases only what its own level owns.
func destroy(o Object, h *Header) {
	if !h.dead.CompareAndSwap(false, true) {
		panic(errors.UseAfterRelease(h.typeName()))
	}
	if ce := Logger().Check(zap.DebugLevel, "destroy object"); ce != nil {
		ce.Write(zap.String("type", h.typeName()))
	}
	for t := h.typ; t != nil; t = t.ancestor {
		t.ops.Destroy(o)
	}
}

// RetainCount returns o's current reference count, or 0 for nil.
func RetainCount(o Object) int64 {
	h := header(o)
	if h == nil {
		return 0
	}
	return h.refs.Load()
}

// IsAlive reports whether o is non-nil and not yet destroyed.
func IsAlive(o Object) bool {
	h := header(o)
	return h != nil && h.typ != nil && !h.dead.Load()
}
