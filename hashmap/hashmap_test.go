package hashmap

import (
	stderrors "errors"
	"sort"
	"testing"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/list"
	"github.com/wippyai/hollowcore/number"
	"github.com/wippyai/hollowcore/object"
)

type numbers = Map[*number.Number, *number.Number]

func fill(pairs ...int64) *numbers {
	m := New[*number.Number, *number.Number]()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.AddObjectReleasedForKey(number.NewInteger(pairs[i]), number.NewInteger(pairs[i+1]))
	}
	return m
}

func TestNew(t *testing.T) {
	m := New[*number.Number, *list.List[*number.Number]]()
	defer object.Release(m)

	if !m.IsEmpty() || m.Count() != 0 {
		t.Error("new map should be empty")
	}
	if object.TypeOf(m) != Type || object.Name(m) != "Map" {
		t.Error("map should carry the Map type")
	}
	if m.String() != "{}" {
		t.Errorf("print = %s", m)
	}

	if _, err := NewWithCapacity[*number.Number, *number.Number](-1); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseContainer, Kind: errors.KindInvalidInput}) {
		t.Errorf("negative capacity error = %v", err)
	}
}

func TestAddAndLookup(t *testing.T) {
	m := New[*number.Number, *number.Number]()
	defer object.Release(m)

	k, v := number.NewInteger(1), number.NewReal(2.5)
	defer object.Release(k)
	defer object.Release(v)

	m.AddObjectForKey(k, v)
	if object.RetainCount(k) != 2 || object.RetainCount(v) != 2 {
		t.Fatal("AddObjectForKey retains key and value")
	}

	tests := []struct {
		name  string
		key   *number.Number
		found bool
	}{
		{"same", k, true},
		{"equal integer", number.NewInteger(1), true},
		{"equal boolean", number.NewBoolean(true), true},
		{"missing", number.NewInteger(2), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.ObjectForKey(tt.key)
			if ok != tt.found || m.ContainsKey(tt.key) != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if tt.found && got != v {
				t.Errorf("ObjectForKey = %v", got)
			}
		})
	}

	if got, ok := m.KeyEqualToKey(number.NewReal(1)); !ok || got != k {
		t.Error("KeyEqualToKey should return the stored key")
	}
	if !m.ContainsObject(number.NewReal(2.5)) || m.ContainsObject(k) {
		t.Error("ContainsObject compares values")
	}
	if object.RetainCount(k) != 2 {
		t.Error("lookups must not leave references behind")
	}
}

func TestReplace(t *testing.T) {
	m := New[*number.Number, *number.Number]()
	defer object.Release(m)

	k1, v1 := number.NewInteger(1), number.NewInteger(10)
	k2, v2 := number.NewInteger(1), number.NewInteger(20)
	for _, n := range []*number.Number{k1, v1, k2, v2} {
		defer object.Release(n)
	}

	m.AddObjectForKey(k1, v1)
	m.AddObjectForKey(k2, v2)
	if m.Count() != 1 {
		t.Fatalf("count = %d", m.Count())
	}
	if got, _ := m.ObjectForKey(k1); got != v2 {
		t.Errorf("value = %v, want the replacement", got)
	}
	if object.RetainCount(k1) != 1 || object.RetainCount(v1) != 1 {
		t.Error("the replaced pair releases its key and value")
	}
	if object.RetainCount(k2) != 2 || object.RetainCount(v2) != 2 {
		t.Error("the new pair holds its key and value")
	}
}

func TestRemove(t *testing.T) {
	m := fill(1, 10, 2, 20, 3, 30)
	defer object.Release(m)

	if !m.RemoveObjectForKey(number.NewInteger(2)) || m.RemoveObjectForKey(number.NewInteger(2)) {
		t.Error("RemoveObjectForKey succeeds once")
	}

	v, ok := m.RemoveObjectRetainedForKey(number.NewInteger(3))
	if !ok || v.AsInteger() != 30 {
		t.Fatalf("RemoveObjectRetainedForKey = %v, %v", v, ok)
	}
	if object.RetainCount(v) != 1 {
		t.Errorf("the map's reference moves to the caller, count %d", object.RetainCount(v))
	}
	object.Release(v)
	if !object.IsAlive(m) || m.Count() != 1 || m.String() != "{1:10}" {
		t.Errorf("left = %s", m)
	}

	if _, ok := m.RemoveObjectRetainedForKey(nil); ok {
		t.Error("nil key")
	}
}

func TestNilIgnored(t *testing.T) {
	m := New[*number.Number, *number.Number]()
	defer object.Release(m)

	k := number.NewInteger(1)
	m.AddObjectForKey(k, nil)
	if m.Count() != 0 || object.RetainCount(k) != 1 {
		t.Fatal("nil values are not stored")
	}
	m.AddObjectReleasedForKey(k, nil)
	if object.IsAlive(k) {
		t.Error("AddObjectReleasedForKey consumes the key even when refused")
	}
}

func TestIteration(t *testing.T) {
	m := fill(1, 10, 2, 20, 3, 30)
	defer object.Release(m)

	var keys, values []int64
	for k, v := range m.All() {
		if v.AsInteger() != k.AsInteger()*10 {
			t.Errorf("pair %v:%v", k, v)
		}
	}
	for k := range m.Keys() {
		keys = append(keys, k.AsInteger())
	}
	for v := range m.Values() {
		values = append(values, v.AsInteger())
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	if len(keys) != 3 || keys[0] != 1 || keys[2] != 3 || values[1] != 20 {
		t.Errorf("keys %v, values %v", keys, values)
	}

	n := 0
	for range m.All() {
		n++
		break
	}
	if n != 1 {
		t.Error("All should stop when the loop breaks")
	}
}

func TestClearReleases(t *testing.T) {
	k, v := number.NewInteger(1), number.NewInteger(2)
	m := New[*number.Number, *number.Number]()
	m.AddObjectReleasedForKey(k, v)

	object.Retain(k)
	object.Retain(v)
	m.Clear()
	if m.Count() != 0 || object.RetainCount(k) != 1 || object.RetainCount(v) != 1 {
		t.Error("Clear releases keys and values")
	}

	m.AddObjectReleasedForKey(k, v)
	object.Release(m)
	if object.IsAlive(k) || object.IsAlive(v) {
		t.Error("destroying the map releases its entries")
	}
}

func TestMapAsObject(t *testing.T) {
	a, b := fill(1, 10, 2, 20), fill(2, 20, 1, 10)
	c, d := fill(1, 10, 2, 21), fill(1, 10)
	for _, m := range []*numbers{a, b, c, d} {
		defer object.Release(m)
	}

	if !object.Equal(a, b) || !object.Equal(b, a) {
		t.Error("insertion order does not matter")
	}
	if object.Hash(a) != object.Hash(b) {
		t.Error("equal maps must hash alike")
	}
	if object.Equal(a, c) || object.Equal(a, d) || object.Equal(d, a) {
		t.Error("values and counts must match")
	}
	if object.Hash(a) == object.Hash(c) {
		t.Error("values contribute to the hash")
	}
	if object.Equal(a, number.NewInteger(1)) {
		t.Error("a map never equals a number")
	}
	if d.String() != "{1:10}" {
		t.Errorf("print = %s", d)
	}

	// Maps as values compare through dispatch.
	outer1 := New[*number.Number, *numbers]()
	outer2 := New[*number.Number, *numbers]()
	defer object.Release(outer1)
	defer object.Release(outer2)
	key := number.NewInteger(0)
	defer object.Release(key)
	outer1.AddObjectForKey(key, a)
	outer2.AddObjectForKey(key, b)
	if !object.Equal(outer1, outer2) {
		t.Error("nested equal maps")
	}
}
