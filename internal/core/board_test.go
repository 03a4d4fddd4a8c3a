package core

import "testing"

func TestNewBoardClampsResolution(t *testing.T) {
	b := NewBoard(0)
	if b.Resolution() != 1 || len(b.Cells()) != 1 {
		t.Fatalf("expected 1x1 board, got res=%d len=%d", b.Resolution(), len(b.Cells()))
	}
}

func TestBoardIndexIsColumnPlusRowTimesResolution(t *testing.T) {
	b := NewBoard(5)
	if got := b.Index(3, 2); got != 13 {
		t.Fatalf("Index(3,2) = %d, expected 13", got)
	}
	b.Set(3, 2, 1)
	if b.Cells()[13] != 1 {
		t.Fatal("Set did not write to the expected slice index")
	}
}

func TestBoardWrap(t *testing.T) {
	b := NewBoard(4)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 3, 3},
		{4, 4, 0, 0},
		{5, -5, 1, 3},
		{2, 1, 2, 1},
	}
	for _, c := range cases {
		x, y := b.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestBoardSetNormalisesAndIgnoresOffBoard(t *testing.T) {
	b := NewBoard(3)
	b.Set(1, 1, 7)
	if b.At(1, 1) != 1 {
		t.Fatalf("expected normalised value 1, got %d", b.At(1, 1))
	}
	b.Set(3, 0, 1)
	b.Set(-1, 0, 1)
	if b.Population() != 1 {
		t.Fatalf("off-board writes changed the board, population=%d", b.Population())
	}
	if b.At(9, 9) != 0 {
		t.Fatal("off-board read should report a dead cell")
	}
}

func TestBoardClear(t *testing.T) {
	b := NewBoard(3)
	for i := range b.Cells() {
		b.Cells()[i] = 1
	}
	b.Clear()
	if b.Population() != 0 {
		t.Fatalf("expected empty board after Clear, population=%d", b.Population())
	}
}
