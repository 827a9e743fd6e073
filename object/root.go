package object

import (
	"fmt"
	"io"
)

// RootType is the ancestor of every other type.
//
// Its operations are deliberately minimal: no object is equal to anything,
// every object hashes to the same value, and printing shows the type name
// and address. Types are expected to supply their own.
var RootType = MustRegisterType("Object", nil, Ops{
	Equal:   rootEqual,
	Hash:    rootHash,
	Print:   rootPrint,
	Destroy: NoDestroy,
})

func rootEqual(self, other Object) bool {
	return false
}

func rootHash(self Object) uint64 {
	return 0
}

func rootPrint(self Object, w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%s@%p>", typeOf(self).name, self)
	return err
}

// NoDestroy is a destroy hook for type levels that own no resources.
func NoDestroy(Object) {}
