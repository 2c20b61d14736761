package thursday

import (
	"testing"

	"pgregory.net/rapid"
)

func TestEuc32Bounds(t *testing.T) {
	if _, err := NewEuc32(3, 8); err != nil {
		t.Errorf("NewEuc32(3,8): %v", err)
	}
	e, err := NewEuc32(0, 8)
	if err != nil {
		t.Errorf("NewEuc32(0,8): %v", err)
	}
	if e.PopCount() != 0 {
		t.Errorf("NewEuc32(0,8).PopCount() = %d, want 0", e.PopCount())
	}
	if _, err := NewEuc32(9, 8); err != ErrValueOutOfBounds {
		t.Errorf("NewEuc32(9,8): got %v, want ErrValueOutOfBounds", err)
	}
	if _, err := NewEuc32(3, 0); err != ErrValueOutOfBounds {
		t.Errorf("NewEuc32(3,0): got %v, want ErrValueOutOfBounds", err)
	}
	if _, err := NewEuc32(3, 33); err != ErrValueOutOfBounds {
		t.Errorf("NewEuc32(3,33): got %v, want ErrValueOutOfBounds", err)
	}
}

func TestEuc32KnownPatterns(t *testing.T) {
	// E(3,8) from the precomputed-counter walk is x..x.x.., a rotation of
	// the tresillo x..x..x.
	e, err := NewEuc32(3, 8)
	if err != nil {
		t.Fatalf("NewEuc32(3,8): %v", err)
	}
	want := []bool{true, false, false, true, false, true, false, false}
	for i, w := range want {
		if got := e.Hit(uint32(i)); got != w {
			t.Errorf("Hit(%d) = %v, want %v", i, got, w)
		}
	}
}

// TestEuc32PopCount is property 8: the number of set bits in a generated
// pattern always equals the requested hit count.
func TestEuc32PopCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		interval := rapid.IntRange(1, 32).Draw(t, "interval")
		hits := rapid.IntRange(0, interval).Draw(t, "hits")

		e, err := NewEuc32(uint32(hits), uint32(interval))
		if err != nil {
			t.Fatalf("NewEuc32(%d,%d): %v", hits, interval, err)
		}
		if got := e.PopCount(); got != hits {
			t.Fatalf("PopCount() = %d, want %d", got, hits)
		}
	})
}

func TestEuc32HitWraps(t *testing.T) {
	e, err := NewEuc32(3, 8)
	if err != nil {
		t.Fatalf("NewEuc32(3,8): %v", err)
	}
	for i := 0; i < 16; i++ {
		if e.Hit(uint32(i)) != e.Hit(uint32(i%8)) {
			t.Errorf("Hit(%d) does not match Hit(%d)", i, i%8)
		}
	}
}

func TestCyclerStepsAndWraps(t *testing.T) {
	e, err := NewEuc32(3, 8)
	if err != nil {
		t.Fatalf("NewEuc32(3,8): %v", err)
	}
	c := NewCycler(e)

	var got []bool
	for i := 0; i < 16; i++ {
		got = append(got, c.Next())
	}
	for i := 0; i < 8; i++ {
		if got[i] != got[i+8] {
			t.Errorf("Next() at step %d and %d diverge: %v vs %v", i, i+8, got[i], got[i+8])
		}
	}

	c.Reset()
	if first := c.Next(); first != e.Hit(0) {
		t.Errorf("after Reset, Next() = %v, want %v", first, e.Hit(0))
	}
}
