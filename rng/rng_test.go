package rng

import "testing"

func TestDefaultIsDeterministic(t *testing.T) {
	a := NewDefault(42)
	b := NewDefault(42)
	for i := 0; i < 100; i++ {
		if got, want := a.IntRange(0, 1000), b.IntRange(0, 1000); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := NewDefault(1)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("IntRange(5,10) = %d out of bounds", v)
		}
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	r := NewDefault(1)
	if v := r.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5,5) = %d, want 5", v)
	}
	if v := r.IntRange(5, 3); v != 5 {
		t.Errorf("IntRange(5,3) = %d, want 5", v)
	}
}

func TestIntRangeInclusiveBounds(t *testing.T) {
	r := NewDefault(2)
	seenMax := false
	for i := 0; i < 1000; i++ {
		v := r.IntRangeInclusive(0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("IntRangeInclusive(0,3) = %d out of bounds", v)
		}
		if v == 3 {
			seenMax = true
		}
	}
	if !seenMax {
		t.Error("IntRangeInclusive(0,3) never drew the inclusive upper bound in 1000 tries")
	}
}

func TestBoolPExtremes(t *testing.T) {
	r := NewDefault(3)
	for i := 0; i < 100; i++ {
		if r.BoolP(0) {
			t.Fatal("BoolP(0) returned true")
		}
		if !r.BoolP(1) {
			t.Fatal("BoolP(1) returned false")
		}
	}
}
