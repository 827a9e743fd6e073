package resource

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/number"
	"github.com/wippyai/hollowcore/object"
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend(4)
	n := number.NewInteger(1)
	defer object.Release(n)

	handle, err := b.Create(n)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok || val != n {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	val, err = b.Drop(handle)
	if err != nil || val != n {
		t.Fatalf("Drop = %v, %v", val, err)
	}

	if _, ok := b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if object.RetainCount(n) != 1 {
		t.Error("backend must not touch reference counts")
	}
}

func TestLocalBackend_Nil(t *testing.T) {
	b := NewLocalBackend(0)
	if _, err := b.Create(nil); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResource, Kind: errors.KindInvalidInput}) {
		t.Fatalf("Create(nil) error = %v", err)
	}
}

func TestLocalBackend_Borrow(t *testing.T) {
	b := NewLocalBackend(0)
	n := number.NewInteger(1)
	defer object.Release(n)
	handle, _ := b.Create(n)

	for i := 0; i < 3; i++ {
		if !b.Borrow(handle) {
			t.Fatalf("Borrow %d failed", i)
		}
	}
	if got, _ := b.Borrows(handle); got != 3 {
		t.Fatalf("Borrows = %d, want 3", got)
	}

	_, err := b.Drop(handle)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResource, Kind: errors.KindBorrowed}) {
		t.Fatalf("Drop with outstanding borrows error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if !b.ReturnBorrow(handle) {
			t.Fatalf("ReturnBorrow %d failed", i)
		}
	}
	if b.ReturnBorrow(handle) {
		t.Fatal("ReturnBorrow without a borrow should fail")
	}

	if _, err := b.Drop(handle); err != nil {
		t.Fatalf("Drop after returning borrows: %v", err)
	}
}

func TestLocalBackend_HandleReuse(t *testing.T) {
	b := NewLocalBackend(0)
	n := number.NewInteger(1)
	defer object.Release(n)

	h1, _ := b.Create(n)
	h2, _ := b.Create(n)
	h3, _ := b.Create(n)

	b.Drop(h2)
	b.Drop(h1)

	h4, _ := b.Create(n)
	h5, _ := b.Create(n)
	if h4 != h1 || h5 != h2 {
		t.Fatalf("freed slots should be reused last-in first-out, got %d %d", h4, h5)
	}
	for _, h := range []Handle{h3, h4, h5} {
		if _, ok := b.Get(h); !ok {
			t.Fatalf("handle %d should be valid", h)
		}
	}
	if b.Len() != 3 {
		t.Fatalf("Len = %d, want 3", b.Len())
	}
}

func TestLocalBackend_Close(t *testing.T) {
	b := NewLocalBackend(0)
	n := number.NewInteger(1)
	defer object.Release(n)

	h, _ := b.Create(n)
	b.Create(n)
	b.Borrow(h)

	values, err := b.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("Close returned %d values, want 2", len(values))
	}
	if again, _ := b.Close(); again != nil {
		t.Fatal("second Close should return nothing")
	}

	_, err = b.Create(n)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResource, Kind: errors.KindClosed}) {
		t.Fatalf("Create after Close error = %v", err)
	}
}

func TestLocalBackend_Concurrent(t *testing.T) {
	b := NewLocalBackend(0)
	n := number.NewInteger(1)
	defer object.Release(n)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, _ := b.Create(n)
			b.Borrow(h)
			b.ReturnBorrow(h)
			b.Drop(h)
		}()
	}

	wg.Wait()
	if b.Len() != 0 {
		t.Fatalf("Len = %d after all drops", b.Len())
	}
}

func TestLocalBackend_Each(t *testing.T) {
	b := NewLocalBackend(0)
	n := number.NewInteger(1)
	defer object.Release(n)

	b.Create(n)
	h, _ := b.Create(n)
	b.Create(n)
	b.Drop(h)

	var seen []Handle
	b.Each(func(h Handle, _ object.Object) bool {
		seen = append(seen, h)
		return true
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("Each visited %v", seen)
	}

	count := 0
	b.Each(func(Handle, object.Object) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected early termination after 1 item, got %d", count)
	}
}

func TestLocalBackend_InvalidHandle(t *testing.T) {
	b := NewLocalBackend(0)

	for _, h := range []Handle{0, 999} {
		if _, ok := b.Get(h); ok {
			t.Errorf("Get(%d) should fail", h)
		}
		if b.Borrow(h) {
			t.Errorf("Borrow(%d) should fail", h)
		}
		if b.ReturnBorrow(h) {
			t.Errorf("ReturnBorrow(%d) should fail", h)
		}
		if _, err := b.Drop(h); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResource, Kind: errors.KindNotFound}) {
			t.Errorf("Drop(%d) error = %v", h, err)
		}
	}
}
