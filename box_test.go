package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGreenBoxAbsorb(t *testing.T) {
	b := newGreenBox(0.0)
	var got []float64
	for _, w := range []float64{1, 2, 3, 4, 5} {
		got = append(got, b.absorb(w))
	}
	want := []float64{
		1,    // mean(1)^2
		2.25, // mean(1,2)^2
		4,    // mean(1,2,3)^2
		9,    // mean(2,3,4)^2, the 1 is evicted
		16,   // mean(3,4,5)^2
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("green box scores do not match (-got, +want):\n%s", diff)
	}
	if got, want := b.totalWeight(), 15.0; got != want {
		t.Errorf("green box weight does not match: got %v; want %v", got, want)
	}
}

func TestBlueBoxAbsorb(t *testing.T) {
	b := newBlueBox(0.0)
	var got []float64
	for _, w := range []float64{1, 5, 3, 0} {
		got = append(got, b.absorb(w))
	}
	want := []float64{
		4,  // pairing(1, 1)
		26, // pairing(1, 5)
		26, // 3 is within the current bounds, score unchanged
		20, // pairing(0, 5)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("blue box scores do not match (-got, +want):\n%s", diff)
	}
	if got, want := b.totalWeight(), 9.0; got != want {
		t.Errorf("blue box weight does not match: got %v; want %v", got, want)
	}
}

func TestPairing(t *testing.T) {
	for _, tt := range []struct {
		a, b float64
		w    float64
	}{
		{a: 0, b: 0, w: 0},
		{a: 0, b: 1, w: 2},
		{a: 1, b: 1, w: 4},
		{a: 2, b: 2, w: 12},
		{a: 2, b: 13, w: 133},
		{a: 3, b: 21, w: 321},
	} {
		got := pairing(tt.a, tt.b)
		if got != tt.w {
			t.Errorf("pairing(%v, %v) does not match: got %v; want %v", tt.a, tt.b, got, tt.w)
		}
	}
}
