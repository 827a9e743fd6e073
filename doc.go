// Package hollowcore provides a small object runtime for Go: type descriptors
// with explicit dispatch, atomic reference counting, and containers that
// move references between owners.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hollowcore/
//	├── object/          Type descriptors, dispatch, retain/release
//	├── list/            Ordered container of counted references
//	├── set/             Hash-bucketed set of distinct references
//	├── hashmap/         Key/value map built on set
//	├── number/          Boolean, integer and real values
//	├── resource/        Handle tables of retained objects
//	├── errors/          Structured error types
//	└── cmd/hcinspect/   Command-line and interactive list inspector
//
// # Quick Start
//
// Every concrete type embeds an object.Header, registers a descriptor once
// and initializes the header in its constructor:
//
//	type Point struct {
//	    header object.Header
//	    X, Y   int64
//	}
//
//	func (p *Point) Header() *object.Header { return &p.header }
//
//	var PointType = object.MustRegisterType("Point", object.RootType, object.Ops{
//	    Equal:   pointEqual,
//	    Hash:    pointHash,
//	    Print:   pointPrint,
//	    Destroy: object.NoDestroy,
//	})
//
//	func NewPoint(x, y int64) *Point {
//	    p := &Point{X: x, Y: y}
//	    object.Init(&p.header, PointType)
//	    return p
//	}
//
// # Dispatch
//
// Operations are looked up only in an object's own descriptor. A type that
// wants an ancestor's behavior names the ancestor's function in its Ops.
// Destruction is the exception: when the last reference is released, every
// level's destroy hook runs, most-derived first.
//
// # Ownership
//
// A new object starts with one reference owned by its creator. Retain adds
// a reference and Release drops one; the release that reaches zero destroys
// the object. Containers hold one reference per element:
//
//	l := list.New[*number.Number]()
//	l.AddObjectReleased(number.NewInteger(1)) // list adopts the reference
//	n, _ := l.RemoveObjectRetained()          // caller takes it back
//	object.Release(n)
//
// # Thread Safety
//
// Retain and Release are atomic and may be called from any goroutine.
// Containers are not synchronized; resource tables are.
package hollowcore
