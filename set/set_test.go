package set

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"testing"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/list"
	"github.com/wippyai/hollowcore/number"
	"github.com/wippyai/hollowcore/object"
)

// token compares by label and hashes every label alike, so all tokens
// share a bucket.
type token struct {
	header    object.Header
	label     string
	id        int
	destroyed *int
}

func (k *token) Header() *object.Header { return &k.header }

var tokenType = object.MustRegisterType("testToken", object.RootType, object.Ops{
	Equal: func(self, other object.Object) bool {
		o, ok := other.(*token)
		return ok && self.(*token).label == o.label
	},
	Hash: func(object.Object) uint64 { return 7 },
	Print: func(self object.Object, w io.Writer) error {
		_, err := io.WriteString(w, self.(*token).label)
		return err
	},
	Destroy: func(self object.Object) {
		*self.(*token).destroyed++
	},
})

func newToken(label string, id int, destroyed *int) *token {
	k := &token{label: label, id: id, destroyed: destroyed}
	object.Init(&k.header, tokenType)
	return k
}

func ints(s *Set[*number.Number]) []int64 {
	var out []int64
	for n := range s.All() {
		out = append(out, n.AsInteger())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestNew(t *testing.T) {
	s := New[*number.Number]()
	defer object.Release(s)

	if !s.IsEmpty() || s.Count() != 0 || s.Capacity() != DefaultCapacity {
		t.Errorf("new set: count %d, capacity %d", s.Count(), s.Capacity())
	}
	if object.TypeOf(s) != Type || object.Name(s) != "Set" {
		t.Error("set should carry the Set type")
	}
	if object.RetainCount(s) != 1 {
		t.Error("new set should have one reference")
	}
}

func TestNewWithCapacity(t *testing.T) {
	tests := []struct {
		n        int
		capacity int
		kind     errors.Kind
	}{
		{0, 1, ""},
		{3, 3, ""},
		{-1, 0, errors.KindInvalidInput},
		{list.MaxCapacity + 1, 0, errors.KindAllocation},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			s, err := NewWithCapacity[*number.Number](tt.n)
			if tt.kind != "" {
				if s != nil || !stderrors.Is(err, &errors.Error{Phase: errors.PhaseContainer, Kind: tt.kind}) {
					t.Fatalf("got %v, %v; want %s", s, err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWithCapacity: %v", err)
			}
			defer object.Release(s)
			if s.Capacity() != tt.capacity {
				t.Errorf("Capacity = %d, want %d", s.Capacity(), tt.capacity)
			}
		})
	}
}

func TestAddObject_Distinct(t *testing.T) {
	s := New[*number.Number]()
	defer object.Release(s)

	one, real1, yes := number.NewInteger(1), number.NewReal(1), number.NewBoolean(true)
	defer object.Release(one)
	defer object.Release(real1)
	defer object.Release(yes)

	s.AddObject(one)
	s.AddObject(real1)
	s.AddObject(yes)
	if s.Count() != 1 {
		t.Fatalf("equal numbers of any kind are one element, count %d", s.Count())
	}
	got, ok := s.ObjectEqualToObject(one)
	if !ok || got != yes {
		t.Errorf("the last equal element added should be stored, got %v", got)
	}
	if object.RetainCount(one) != 1 || object.RetainCount(real1) != 1 || object.RetainCount(yes) != 2 {
		t.Error("replaced elements should be released")
	}

	s.AddObject(yes)
	if s.Count() != 1 || object.RetainCount(yes) != 2 {
		t.Error("re-adding the stored element must keep one set reference")
	}
}

func TestAddObject_Replace(t *testing.T) {
	destroyed := 0
	s := New[*token]()

	s.AddObjectReleased(newToken("a", 1, &destroyed))
	s.AddObjectReleased(newToken("a", 2, &destroyed))
	if s.Count() != 1 || destroyed != 1 {
		t.Fatalf("count %d, destroyed %d", s.Count(), destroyed)
	}
	if got, _ := s.ObjectEqualToObject(newToken("a", 0, &destroyed)); got.id != 2 {
		t.Errorf("stored id = %d, want 2", got.id)
	}

	object.Release(s)
	if destroyed != 2 {
		t.Errorf("destroying the set releases its element, destroyed %d", destroyed)
	}
}

func TestCollisions(t *testing.T) {
	destroyed := 0
	s, _ := NewWithCapacity[*token](4)
	defer object.Release(s)

	for i, label := range []string{"a", "b", "c", "d"} {
		s.AddObjectReleased(newToken(label, i, &destroyed))
	}
	if s.Count() != 4 {
		t.Fatalf("count = %d", s.Count())
	}
	if s.String() != "{a,b,c,d}" {
		t.Errorf("one bucket keeps insertion order, got %s", s)
	}

	b := newToken("b", 0, &destroyed)
	defer object.Release(b)
	got, ok := s.RemoveObjectRetained(b)
	if !ok || got.id != 1 {
		t.Fatal("RemoveObjectRetained should find b")
	}
	if object.RetainCount(got) != 1 {
		t.Error("the set's reference moves to the caller")
	}
	object.Release(got)

	if s.ContainsObject(b) || !s.ContainsObject(newToken("c", 0, &destroyed)) {
		t.Error("only b is gone")
	}
	if s.RemoveObject(b) {
		t.Error("second removal should fail")
	}
	if !s.RemoveObject(newToken("a", 0, &destroyed)) || s.String() != "{c,d}" {
		t.Errorf("after removing a: %s", s)
	}
}

func TestGrowth(t *testing.T) {
	s, _ := NewWithCapacity[*number.Number](1)
	defer object.Release(s)

	kept := number.NewInteger(50)
	defer object.Release(kept)
	for i := int64(0); i < 100; i++ {
		if i == 50 {
			s.AddObject(kept)
			continue
		}
		s.AddObjectReleased(number.NewInteger(i))
	}

	if s.Count() != 100 {
		t.Fatalf("count = %d", s.Count())
	}
	if s.Capacity() < s.Count() {
		t.Errorf("capacity %d should keep up with count", s.Capacity())
	}
	for i := int64(0); i < 100; i++ {
		q := number.NewInteger(i)
		if !s.ContainsObject(q) {
			t.Errorf("missing %d after rehash", i)
		}
		object.Release(q)
	}
	if object.RetainCount(kept) != 2 {
		t.Errorf("rehash must move references, count %d", object.RetainCount(kept))
	}
	if len(s.Slice()) != 100 {
		t.Error("Slice length")
	}
}

func TestNilIgnored(t *testing.T) {
	s := New[*number.Number]()
	defer object.Release(s)

	s.AddObject(nil)
	s.AddObjectReleased(nil)
	if s.Count() != 0 || s.ContainsObject(nil) || s.RemoveObject(nil) {
		t.Error("nil is never an element")
	}
	if _, ok := s.ObjectEqualToObject(nil); ok {
		t.Error("nil has no equal")
	}
}

func TestClear(t *testing.T) {
	destroyed := 0
	s := New[*token]()
	defer object.Release(s)
	for i, label := range []string{"x", "y"} {
		s.AddObjectReleased(newToken(label, i, &destroyed))
	}
	capacity := s.Capacity()

	s.Clear()
	if !s.IsEmpty() || destroyed != 2 || s.Capacity() != capacity {
		t.Errorf("count %d, destroyed %d, capacity %d", s.Count(), destroyed, s.Capacity())
	}
	s.AddObjectReleased(newToken("z", 0, &destroyed))
	if s.Count() != 1 {
		t.Error("a cleared set is reusable")
	}
}

func TestFrom(t *testing.T) {
	a, b := number.NewInteger(1), number.NewInteger(2)
	defer object.Release(a)
	defer object.Release(b)

	s := From(a, b, a)
	defer object.Release(s)
	if got := ints(s); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("From = %v", got)
	}
	if object.RetainCount(a) != 2 {
		t.Error("From retains each stored item once")
	}
}

func TestSetAsObject(t *testing.T) {
	newInts := func(vs ...int64) *Set[*number.Number] {
		s := New[*number.Number]()
		for _, v := range vs {
			s.AddObjectReleased(number.NewInteger(v))
		}
		return s
	}
	a, b, c := newInts(1, 2, 3), newInts(3, 2, 1), newInts(1, 2, 4)
	defer object.Release(a)
	defer object.Release(b)
	defer object.Release(c)

	if !object.Equal(a, b) || !object.Equal(b, a) {
		t.Error("insertion order does not matter")
	}
	if object.Equal(a, c) {
		t.Error("different elements")
	}
	if object.Hash(a) != object.Hash(b) {
		t.Error("equal sets must hash alike")
	}

	empty := New[*number.Number]()
	defer object.Release(empty)
	if object.Hash(empty) != 5381 || empty.String() != "{}" {
		t.Errorf("empty: hash %d, print %s", object.Hash(empty), empty)
	}
	single := newInts(7)
	defer object.Release(single)
	if single.String() != "{7}" {
		t.Errorf("print = %s", single)
	}

	l := list.New[*number.Number]()
	defer object.Release(l)
	for x := range a.All() {
		l.AddObject(x)
	}
	if object.Equal(a, l) || object.Equal(l, a) {
		t.Error("a set never equals a list")
	}
	if object.Equal(a, number.NewInteger(1)) {
		t.Error("a set never equals a number")
	}

	// Sets of sets dispatch element equality through the Set type.
	outer1, outer2 := New[*Set[*number.Number]](), New[*Set[*number.Number]]()
	defer object.Release(outer1)
	defer object.Release(outer2)
	outer1.AddObject(a)
	outer2.AddObject(b)
	if !object.Equal(outer1, outer2) {
		t.Error("nested equal sets")
	}
}
