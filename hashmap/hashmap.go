// Package hashmap provides Map, an unordered association of object keys to
// object values built on set.Set.
//
// A map stores key/value pairs in a set whose elements compare and hash by
// key alone. Storing a value under a key that is already present replaces
// the pair, releasing the old key and value.
package hashmap

import (
	"io"
	"iter"

	"github.com/wippyai/hollowcore/object"
	"github.com/wippyai/hollowcore/set"
)

// pairType describes the entries of every Map.
var pairType = object.MustRegisterType("MapPair", object.RootType, object.Ops{
	Equal:   pairEqual,
	Hash:    pairHash,
	Print:   pairPrint,
	Destroy: pairDestroy,
})

// pair owns one reference to its key and one to its value.
type pair struct {
	header object.Header
	key    object.Object
	value  object.Object
}

func (p *pair) Header() *object.Header { return &p.header }

// newPair adopts the references to key and value.
func newPair(key, value object.Object) *pair {
	p := &pair{key: key, value: value}
	object.Init(&p.header, pairType)
	return p
}

func pairEqual(self, other object.Object) bool {
	b, ok := other.(*pair)
	return ok && object.Equal(self.(*pair).key, b.key)
}

func pairHash(self object.Object) uint64 {
	return object.Hash(self.(*pair).key)
}

func pairPrint(self object.Object, w io.Writer) error {
	p := self.(*pair)
	if err := object.Print(p.key, w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ":"); err != nil {
		return err
	}
	return object.Print(p.value, w)
}

func pairDestroy(self object.Object) {
	p := self.(*pair)
	object.Release(p.key)
	object.Release(p.value)
	p.key, p.value = nil, nil
}

// Type is the descriptor shared by every Map, whatever its key and value
// types.
var Type = object.MustRegisterType("Map", object.RootType, object.Ops{
	Equal:   mapEqual,
	Hash:    mapHash,
	Print:   mapPrint,
	Destroy: mapDestroy,
})

// Map holds one reference to each key and each value. It is an object;
// releasing the last reference releases every entry. It is not safe for
// concurrent mutation.
type Map[K, V object.Object] struct {
	header object.Header
	pairs  *set.Set[*pair]
}

type untyped interface {
	object.Object
	entries() *set.Set[*pair]
}

// New creates an empty map.
func New[K, V object.Object]() *Map[K, V] {
	return newMap[K, V](set.New[*pair]())
}

// NewWithCapacity creates an empty map with n buckets.
func NewWithCapacity[K, V object.Object](n int) (*Map[K, V], error) {
	pairs, err := set.NewWithCapacity[*pair](n)
	if err != nil {
		return nil, err
	}
	return newMap[K, V](pairs), nil
}

func newMap[K, V object.Object](pairs *set.Set[*pair]) *Map[K, V] {
	m := &Map[K, V]{pairs: pairs}
	object.Init(&m.header, Type)
	return m
}

// Header implements object.Object.
func (m *Map[K, V]) Header() *object.Header {
	return &m.header
}

func (m *Map[K, V]) String() string {
	return object.String(m)
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.pairs.IsEmpty()
}

func (m *Map[K, V]) Count() int {
	return m.pairs.Count()
}

func (m *Map[K, V]) entries() *set.Set[*pair] {
	return m.pairs
}

// find returns the stored pair whose key equals key.
func (m *Map[K, V]) find(key object.Object) (*pair, bool) {
	if object.IsNil(key) {
		return nil, false
	}
	q := newPair(object.Retain(key), nil)
	defer object.Release(q)
	return m.pairs.ObjectEqualToObject(q)
}

// ContainsKey reports whether some key is equal to key.
func (m *Map[K, V]) ContainsKey(key object.Object) bool {
	_, ok := m.find(key)
	return ok
}

// ContainsObject reports whether some value is equal to value.
func (m *Map[K, V]) ContainsObject(value object.Object) bool {
	for p := range m.pairs.All() {
		if object.Equal(value, p.value) {
			return true
		}
	}
	return false
}

// ObjectForKey returns the value stored under key. The reference is
// borrowed from the map.
func (m *Map[K, V]) ObjectForKey(key object.Object) (V, bool) {
	p, ok := m.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := p.value.(V)
	return v, ok
}

// KeyEqualToKey returns the stored key equal to key, borrowed.
func (m *Map[K, V]) KeyEqualToKey(key object.Object) (K, bool) {
	p, ok := m.find(key)
	if !ok {
		var zero K
		return zero, false
	}
	k, ok := p.key.(K)
	return k, ok
}

// AddObjectForKey stores value under key, retaining both. Nil keys and
// values are ignored.
func (m *Map[K, V]) AddObjectForKey(key K, value V) {
	if object.IsNil(key) || object.IsNil(value) {
		return
	}
	m.pairs.AddObjectReleased(newPair(object.Retain(key), object.Retain(value)))
}

// AddObjectReleasedForKey stores value under key and adopts the caller's
// references to both. When either is nil the other is released.
func (m *Map[K, V]) AddObjectReleasedForKey(key K, value V) {
	if object.IsNil(key) || object.IsNil(value) {
		object.Release(key)
		object.Release(value)
		return
	}
	m.pairs.AddObjectReleased(newPair(key, value))
}

// RemoveObjectForKey removes the entry for key, releasing its key and
// value, and reports whether there was one.
func (m *Map[K, V]) RemoveObjectForKey(key object.Object) bool {
	p, ok := m.find(key)
	if !ok {
		return false
	}
	return m.pairs.RemoveObject(p)
}

// RemoveObjectRetainedForKey removes the entry for key and returns its value
// owned by the caller. The stored key is released.
func (m *Map[K, V]) RemoveObjectRetainedForKey(key object.Object) (V, bool) {
	var zero V
	p, ok := m.find(key)
	if !ok {
		return zero, false
	}
	p, _ = m.pairs.RemoveObjectRetained(p)
	v, ok := p.value.(V)
	if ok {
		p.value = nil
	}
	object.Release(p)
	if !ok {
		return zero, false
	}
	return v, true
}

// Clear releases every entry.
func (m *Map[K, V]) Clear() {
	m.pairs.Clear()
}

// All yields each key and value, borrowed. The map must not be mutated
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.pairs.All() {
			k, _ := p.key.(K)
			v, _ := p.value.(V)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys yields each key, borrowed.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields each value, borrowed.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func mapEqual(self, other object.Object) bool {
	a := self.(untyped).entries()
	o, ok := other.(untyped)
	if !ok {
		return false
	}
	b := o.entries()
	if a.Count() != b.Count() {
		return false
	}
	for p := range a.All() {
		q, ok := b.ObjectEqualToObject(p)
		if !ok || !object.Equal(p.value, q.value) {
			return false
		}
	}
	return true
}

// mapHash mixes each value into its key's hash; pairs alone hash by key.
func mapHash(self object.Object) uint64 {
	hash := uint64(5381)
	for p := range self.(untyped).entries().All() {
		hash += object.Hash(p.key)*33 + object.Hash(p.value)
	}
	return hash
}

func mapPrint(self object.Object, w io.Writer) error {
	return object.Print(self.(untyped).entries(), w)
}

func mapDestroy(self object.Object) {
	m := self.(untyped)
	object.Release(m.entries())
}
