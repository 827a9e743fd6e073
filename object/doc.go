// Package object provides the type descriptors, reference counting and
// dispatch shared by every hollowcore instance.
//
// # Types
//
// A Type is a process-wide descriptor holding a name, an ancestor and an
// operation table (equal, hash, print, destroy). Types are registered once,
// usually from a package-level var, and never change:
//
//	var PointType = object.MustRegisterType("Point", object.RootType, object.Ops{
//	    Equal:   pointEqual,
//	    Hash:    pointHash,
//	    Print:   pointPrint,
//	    Destroy: object.NoDestroy,
//	})
//
// Dispatch is not inherited. Equal, Hash and Print always call the entry in
// the instance's own type; a type reusing its ancestor's behavior stores the
// ancestor's function in its own table.
//
// # Instances
//
// Concrete types embed a Header and call Init from their constructor:
//
//	func NewPoint(x, y float64) *Point {
//	    p := &Point{x: x, y: y}
//	    object.Init(&p.header, PointType)
//	    return p
//	}
//
// A new instance has a reference count of 1. Retain and Release adjust it
// atomically, so references may be shared across goroutines. The release
// that reaches zero runs the destroy hook of every type in the lineage,
// most-derived first, exactly once.
//
// Retaining a destroyed instance or releasing below zero panics with an
// *errors.Error, in the manner of a negative sync.WaitGroup counter.
package object
