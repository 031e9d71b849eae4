package core

import (
	"slices"
	"testing"
)

func TestNewRNGDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("equal seeds must produce equal fills")
	}

	FillBinary(NewRNG(8).Source(), b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical 256-cell fills")
	}
}

func TestFillBernoulliExtremes(t *testing.T) {
	buf := make([]uint8, 128)
	rng := NewRNG(1).Source()

	FillBernoulli(rng, buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1: cell %d = %d", i, v)
		}
	}

	FillBernoulli(rng, buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0: cell %d = %d", i, v)
		}
	}

	// Out-of-range probabilities clamp.
	FillBernoulli(rng, buf, 2.5)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=2.5: cell %d = %d", i, v)
		}
	}
	FillBernoulli(rng, buf, -0.5)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=-0.5: cell %d = %d", i, v)
		}
	}
}
