package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesAtRate(t *testing.T) {
	fs := NewFixedStep(10)
	t0 := time.Unix(100, 0)

	if !fs.ShouldStepAt(t0) {
		t.Fatal("first poll should step")
	}
	if fs.ShouldStepAt(t0.Add(50 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.ShouldStepAt(t0.Add(100 * time.Millisecond)) {
		t.Fatal("expected a step after 100ms at 10 steps/s")
	}
	if fs.ShouldStepAt(t0.Add(116 * time.Millisecond)) {
		t.Fatal("stepped twice within one interval")
	}
}

func TestFixedStepLimitsCatchUp(t *testing.T) {
	fs := NewFixedStep(10)
	t0 := time.Unix(100, 0)
	fs.ShouldStepAt(t0)

	later := t0.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStepAt(later) {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected at most one catch-up step after a stall, got %d steps", steps)
	}
}

func TestFixedStepSetRateFallsBack(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Rate() != 10 {
		t.Fatalf("expected default rate 10, got %d", fs.Rate())
	}
	fs.SetRate(25)
	if fs.Rate() != 25 {
		t.Fatalf("expected rate 25, got %d", fs.Rate())
	}
}

func TestRNGFillSoupDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(7).FillSoup(a, 0.5)
	NewRNG(7).FillSoup(b, 0.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different soups at %d", i)
		}
		if a[i] > 1 {
			t.Fatalf("soup cell %d = %d, expected 0 or 1", i, a[i])
		}
	}

	NewRNG(7).FillSoup(a, 0)
	for i, c := range a {
		if c != 0 {
			t.Fatalf("density 0 produced live cell at %d", i)
		}
	}
	NewRNG(7).FillSoup(a, 1)
	for i, c := range a {
		if c != 1 {
			t.Fatalf("density 1 produced dead cell at %d", i)
		}
	}
}
