package lru

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := New[int, string](capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}

	c, err := New[int, string](3)
	if err != nil {
		t.Fatalf("New(3): %v", err)
	}
	if c.Cap() != 3 || c.Len() != 0 {
		t.Errorf("got cap=%d len=%d, want cap=3 len=0", c.Cap(), c.Len())
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0) did not panic")
		}
	}()
	MustNew[string, int](0)
}

func TestEviction(t *testing.T) {
	c := MustNew[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")

	if v, ok := c.Get(1); ok {
		t.Errorf("Get(1) = %q, want absent", v)
	}
	if v, ok := c.Get(2); !ok || v != "two" {
		t.Errorf("Get(2) = %q, %v, want two", v, ok)
	}
	if v, ok := c.Get(3); !ok || v != "three" {
		t.Errorf("Get(3) = %q, %v, want three", v, ok)
	}
}

func TestGetRefreshesRecency(t *testing.T) {
	c := MustNew[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Get(1)
	c.Set(3, "three")

	if c.Contains(2) {
		t.Error("key 2 should have been evicted")
	}
	if !c.Contains(1) || !c.Contains(3) {
		t.Errorf("keys = %v, want 1 and 3", c.Keys())
	}
}

func TestSetUpdatesExisting(t *testing.T) {
	c := MustNew[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)
	c.Set("c", 3)

	if diff := cmp.Diff([]string{"c", "a"}, c.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := c.Peek("a"); v != 10 {
		t.Errorf("a = %d, want 10", v)
	}
}

func TestStats(t *testing.T) {
	c := MustNew[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Get(1)
	c.Get(3)

	got := c.Stats()
	if got.Hits != 1 || got.Misses != 1 || got.Ratio() != 0.5 {
		t.Errorf("stats = %v, want hits=1 misses=1 ratio=0.5", got)
	}

	if (Stats{}).Ratio() != 0 {
		t.Error("empty stats ratio should be 0")
	}
}

func TestNilValueIsHit(t *testing.T) {
	c := MustNew[string, *int](4)
	c.Set("nil", nil)

	v, ok := c.Get("nil")
	if !ok || v != nil {
		t.Errorf("Get(nil) = %v, %v, want nil, true", v, ok)
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 0 {
		t.Errorf("stats = %v, want one hit", s)
	}
}

func TestContainsAndRemoveLeaveStats(t *testing.T) {
	c := MustNew[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")

	if !c.Contains(1) || c.Contains(5) {
		t.Error("Contains reported wrong presence")
	}
	// Contains must not refresh 1, so inserting 3 evicts it
	c.Set(3, "three")
	if c.Contains(1) {
		t.Error("Contains refreshed recency")
	}

	v, ok := c.Remove(2)
	if !ok || v != "two" {
		t.Errorf("Remove(2) = %q, %v", v, ok)
	}
	if _, ok := c.Remove(2); ok {
		t.Error("second Remove(2) reported a value")
	}
	if s := c.Stats(); s != (Stats{}) {
		t.Errorf("stats = %v, want zero", s)
	}
}

func TestClear(t *testing.T) {
	c := MustNew[int, int](3)
	for i := range 3 {
		c.Set(i, i*i)
	}
	c.Get(1)
	c.Get(9)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("len = %d after Clear", c.Len())
	}
	if s := c.Stats(); s != (Stats{}) {
		t.Errorf("stats = %v after Clear", s)
	}
	c.Set(7, 49)
	if v, ok := c.Get(7); !ok || v != 49 {
		t.Errorf("cache unusable after Clear: %d, %v", v, ok)
	}
}
