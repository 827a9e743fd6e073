// Package resource provides handle tables for reference-counted objects.
//
// A Table maps small integer handles to objects so they can be named by
// value: across an API boundary, in a command interpreter, or from a UI.
// Each occupied handle owns one reference to its object.
//
// # Ownership
//
//	Insert  - retains the object; the caller keeps its own reference
//	Get     - borrows the object; nothing changes hands
//	Remove  - empties the handle and hands its reference to the caller
//	Drop    - empties the handle and releases its reference
//
// # Handle Table
//
//	table := resource.NewTableWithDefaults()
//
//	n := number.NewInteger(7)
//	h := table.Insert(n)
//	object.Release(n) // the table now holds the only reference
//
//	value, ok := table.Get(h)
//	table.Drop(h)     // destroys n
//
// # Type Safety
//
// GetTyped only returns objects of the given kind, ancestors included:
//
//	value, ok := table.GetTyped(h, number.Type)  // ok
//	value, ok := table.GetTyped(h, list.Type)    // !ok
//
// Typed narrows a table to one kind and one Go type:
//
//	numbers := resource.NewTyped[*number.Number](table, number.Type)
//	n, ok := numbers.Get(h)
//
// # Borrows
//
// Borrow marks a handle as lent out. Remove and Drop refuse a borrowed
// handle until every borrow is returned with ReturnBorrow. Close releases
// everything regardless.
//
// # Observers
//
// Register observers to track handle lifecycle events:
//
//	table.Subscribe(observer)
//
// Observers run synchronously on the goroutine that caused the event and
// must not Subscribe or Unsubscribe from OnResourceEvent.
package resource
