package search

import (
	"math"
	"testing"
)

func TestArgMax(t *testing.T) {
	xs := []float64{1.0, 5.0, 3.0, 5.0, -2.0}
	idx, val, err := ArgMax(len(xs), func(i int) float64 { return xs[i] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1 (first of the tied maxima)", idx)
	}
	if math.Abs(val-5.0) > 1e-12 {
		t.Errorf("val = %f, want 5.0", val)
	}
}

func TestArgMin(t *testing.T) {
	xs := []float64{4.0, -1.0, 2.0, -1.0}
	idx, val, err := ArgMin(len(xs), func(i int) float64 { return xs[i] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
	if math.Abs(val-(-1.0)) > 1e-12 {
		t.Errorf("val = %f, want -1.0", val)
	}
}

func TestArgMax_EmptyRange(t *testing.T) {
	_, _, err := ArgMax(0, func(i int) float64 { return 0 })
	if err != ErrEmptyRange {
		t.Errorf("err = %v, want ErrEmptyRange", err)
	}
}
