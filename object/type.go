package object

import (
	"io"
	"sort"
	"sync"

	"github.com/wippyai/hollowcore/errors"
)

// Operation names one entry of a type's operation table.
type Operation uint8

const (
	OpEqual Operation = iota
	OpHash
	OpPrint
	OpDestroy
)

func (op Operation) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpHash:
		return "hash"
	case OpPrint:
		return "print"
	case OpDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Ops is the operation table of a type.
//
// Every entry must be set. Lookups never fall back to an ancestor, so a type
// that wants an ancestor's behavior stores the ancestor's function here:
//
//	Ops{Hash: object.RootType.Ops().Hash, ...}
type Ops struct {
	Equal   func(self, other Object) bool
	Hash    func(self Object) uint64
	Print   func(self Object, w io.Writer) error
	Destroy func(self Object)
}

func (o Ops) missing() (Operation, bool) {
	switch {
	case o.Equal == nil:
		return OpEqual, true
	case o.Hash == nil:
		return OpHash, true
	case o.Print == nil:
		return OpPrint, true
	case o.Destroy == nil:
		return OpDestroy, true
	}
	return 0, false
}

// Type describes a concrete object type. Types are created once through
// RegisterType and are read-only afterwards.
type Type struct {
	ancestor *Type
	name     string
	ops      Ops
}

// Name returns the type's unique name.
func (t *Type) Name() string {
	return t.name
}

// Ancestor returns the parent type, or nil for the root type.
func (t *Type) Ancestor() *Type {
	return t.ancestor
}

// Ops returns the type's own operation table.
func (t *Type) Ops() Ops {
	return t.ops
}

// IsOfType reports whether t and other denote the same type.
func (t *Type) IsOfType(other *Type) bool {
	return t != nil && other != nil && (t == other || t.name == other.name)
}

// HasAncestor reports whether other is a strict ancestor of t.
func (t *Type) HasAncestor(other *Type) bool {
	if t == nil {
		return false
	}
	for a := t.ancestor; a != nil; a = a.ancestor {
		if a.IsOfType(other) {
			return true
		}
	}
	return false
}

// IsOfKind reports whether t is other or descends from it.
func (t *Type) IsOfKind(other *Type) bool {
	return t.IsOfType(other) || t.HasAncestor(other)
}

// AncestorNamed walks from t toward the root and returns the first type
// with the given name, t itself included.
func (t *Type) AncestorNamed(name string) (*Type, bool) {
	for cur := t; cur != nil; cur = cur.ancestor {
		if cur.name == name {
			return cur, true
		}
	}
	return nil, false
}

// Lineage returns t followed by each of its ancestors, ending at the root.
func (t *Type) Lineage() []*Type {
	var out []*Type
	for cur := t; cur != nil; cur = cur.ancestor {
		out = append(out, cur)
	}
	return out
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	return t.name
}

type typeRegistry struct {
	types map[string]*Type
	root  *Type
	mu    sync.RWMutex
}

var registry = &typeRegistry{types: make(map[string]*Type)}

// RegisterType creates and registers a type descriptor.
//
// Only the first registered type may omit its ancestor; it becomes the root.
// Every other type must name an already registered ancestor.
func RegisterType(name string, ancestor *Type, ops Ops) (*Type, error) {
	if name == "" {
		return nil, errors.Registration(name, "empty type name")
	}
	if op, ok := ops.missing(); ok {
		return nil, errors.New(errors.PhaseRegistration, errors.KindRegistration).
			Type(name).
			Value(op).
			Detail("operation %s not defined", op).
			Build()
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.types[name]; exists {
		return nil, errors.Registration(name, "duplicate type name")
	}
	if ancestor == nil && registry.root != nil {
		return nil, errors.Registration(name, "ancestor required; root type is "+registry.root.name)
	}
	if ancestor != nil && registry.types[ancestor.name] != ancestor {
		return nil, errors.Registration(name, "ancestor "+ancestor.name+" is not registered")
	}

	t := &Type{name: name, ancestor: ancestor, ops: ops}
	registry.types[name] = t
	if ancestor == nil {
		registry.root = t
	}
	return t, nil
}

// MustRegisterType is like RegisterType but panics on error.
// It is meant for package-level type declarations.
func MustRegisterType(name string, ancestor *Type, ops Ops) *Type {
	t, err := RegisterType(name, ancestor, ops)
	if err != nil {
		panic(err)
	}
	return t
}

// LookupType returns the registered type with the given name.
func LookupType(name string) (*Type, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	t, ok := registry.types[name]
	return t, ok
}

// Types returns every registered type sorted by name.
func Types() []*Type {
	registry.mu.RLock()
	out := make([]*Type, 0, len(registry.types))
	for _, t := range registry.types {
		out = append(out, t)
	}
	registry.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
