package life

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, res int) *Engine {
	t.Helper()
	e, err := New(res)
	if err != nil {
		t.Fatalf("New(%d): %v", res, err)
	}
	return e
}

func setAlive(t *testing.T, e *Engine, pts ...[2]int) {
	t.Helper()
	for _, p := range pts {
		if e.Cell(p[0], p[1]) == 1 {
			continue
		}
		if err := e.ToggleCell(p[0], p[1]); err != nil {
			t.Fatalf("ToggleCell(%d,%d): %v", p[0], p[1], err)
		}
	}
}

// boardOf builds the expected flat board for the given live cells.
func boardOf(res int, pts ...[2]int) []uint8 {
	cells := make([]uint8, res*res)
	for _, p := range pts {
		cells[p[0]+res*p[1]] = 1
	}
	return cells
}

func checkInvariant(t *testing.T, e *Engine) {
	t.Helper()
	res := e.Resolution()
	if len(e.Cells()) != res*res {
		t.Fatalf("board length %d, expected %d", len(e.Cells()), res*res)
	}
	for i, c := range e.Cells() {
		if c > 1 {
			t.Fatalf("cell %d = %d, expected 0 or 1", i, c)
		}
	}
}

func TestNewRejectsInvalidResolution(t *testing.T) {
	for _, res := range []int{0, -3} {
		if _, err := New(res); !errors.Is(err, ErrInvalidResolution) {
			t.Fatalf("New(%d) err = %v, expected ErrInvalidResolution", res, err)
		}
	}
}

func TestInvariantHoldsAcrossOperations(t *testing.T) {
	e := mustNew(t, 6)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		switch rng.IntN(5) {
		case 0:
			_ = e.Reset(1 + rng.IntN(9))
		case 1:
			_ = e.Resize(rng.IntN(9))
		case 2, 3:
			_ = e.ToggleCell(rng.IntN(12)-2, rng.IntN(12)-2)
		case 4:
			e.Step()
		}
		checkInvariant(t, e)
	}
}

func TestToroidalWraparound(t *testing.T) {
	e := mustNew(t, 3)
	setAlive(t, e, [2]int{2, 2})
	if got := e.CountNeighbors(0, 0); got != 1 {
		t.Fatalf("(0,0) should see (2,2) as a diagonal neighbour, got %d", got)
	}

	e = mustNew(t, 5)
	corners := [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}}
	setAlive(t, e, corners...)
	for _, c := range corners {
		if got := e.CountNeighbors(c[0], c[1]); got != 3 {
			t.Fatalf("corner (%d,%d) has %d neighbours, expected 3", c[0], c[1], got)
		}
	}
	if got := e.CountNeighbors(2, 2); got != 0 {
		t.Fatalf("centre should see no corners on a 5x5 board, got %d", got)
	}
}

func TestCountNeighborsExcludesCentre(t *testing.T) {
	e := mustNew(t, 4)
	setAlive(t, e, [2]int{1, 1})
	if got := e.CountNeighbors(1, 1); got != 0 {
		t.Fatalf("lone cell counted itself, got %d", got)
	}
	setAlive(t, e, [2]int{0, 0}, [2]int{2, 2}, [2]int{1, 0})
	if got := e.CountNeighbors(1, 1); got != 3 {
		t.Fatalf("expected 3 neighbours, got %d", got)
	}
	if got := e.CountNeighbors(7, 1); got != 0 {
		t.Fatalf("off-board neighbour count should be 0, got %d", got)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	const res = 6
	// Includes positions where the block straddles the wrap seam.
	for _, origin := range [][2]int{{1, 1}, {0, 0}, {5, 2}, {5, 5}} {
		e := mustNew(t, res)
		var pts [][2]int
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				pts = append(pts, [2]int{(origin[0] + dx) % res, (origin[1] + dy) % res})
			}
		}
		setAlive(t, e, pts...)
		want := boardOf(res, pts...)
		for gen := 0; gen < 10; gen++ {
			e.Step()
			if diff := cmp.Diff(want, e.Cells()); diff != "" {
				t.Fatalf("block at %v changed after %d steps (-want +got):\n%s", origin, gen+1, diff)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := mustNew(t, 5)
	horizontal := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	vertical := [][2]int{{2, 1}, {2, 2}, {2, 3}}
	setAlive(t, e, horizontal...)

	e.Step()
	if diff := cmp.Diff(boardOf(5, vertical...), e.Cells()); diff != "" {
		t.Fatalf("after first step (-want +got):\n%s", diff)
	}
	e.Step()
	if diff := cmp.Diff(boardOf(5, horizontal...), e.Cells()); diff != "" {
		t.Fatalf("after second step (-want +got):\n%s", diff)
	}
	if e.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", e.Generation())
	}
}

func TestVerticalBlinkerTurnsHorizontal(t *testing.T) {
	e := mustNew(t, 5)
	setAlive(t, e, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	e.Step()
	want := boardOf(5, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})
	if diff := cmp.Diff(want, e.Cells()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

// On a 3x3 torus every cell's wrapped 3x3 block is the whole board, so a
// three-cell line gives each dead cell exactly three neighbours.
func TestThreeByThreeLineFillsBoard(t *testing.T) {
	e := mustNew(t, 3)
	setAlive(t, e, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	e.Step()
	for i, c := range e.Cells() {
		if c != 1 {
			t.Fatalf("cell %d dead after one step, expected full board", i)
		}
	}
	e.Step()
	if e.Population() != 0 {
		t.Fatalf("full 3x3 board should die out (8 neighbours each), population=%d", e.Population())
	}
}

func TestStepIsAtomic(t *testing.T) {
	// A glider only keeps its shape if every cell reads the previous generation.
	e := mustNew(t, 8)
	setAlive(t, e, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	for i := 0; i < 4; i++ {
		e.Step()
	}
	want := boardOf(8, [2]int{2, 1}, [2]int{3, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})
	if diff := cmp.Diff(want, e.Cells()); diff != "" {
		t.Fatalf("glider did not translate by (1,1) after 4 steps (-want +got):\n%s", diff)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	e := mustNew(t, 4)
	setAlive(t, e, [2]int{0, 0}, [2]int{3, 3})
	e.SetRunning(true)

	for _, res := range []int{7, 7, 2} {
		if err := e.Reset(res); err != nil {
			t.Fatalf("Reset(%d): %v", res, err)
		}
		if !slices.Equal(e.Cells(), make([]uint8, res*res)) {
			t.Fatalf("Reset(%d) left live cells", res)
		}
		if e.Resolution() != res {
			t.Fatalf("resolution = %d, expected %d", e.Resolution(), res)
		}
	}
	if e.Running() {
		t.Fatal("Reset should stop the simulation")
	}
}

func TestResizeKeepsRunningFlag(t *testing.T) {
	e := mustNew(t, 4)
	setAlive(t, e, [2]int{1, 1})
	e.SetRunning(true)
	e.Step()

	if err := e.Resize(9); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if !e.Running() {
		t.Fatal("Resize should not change the running flag")
	}
	if e.Population() != 0 || len(e.Cells()) != 81 {
		t.Fatalf("Resize should produce an empty 9x9 board, population=%d len=%d", e.Population(), len(e.Cells()))
	}
	if e.Generation() != 0 {
		t.Fatalf("generation = %d after resize, expected 0", e.Generation())
	}

	e.SetRunning(false)
	_ = e.Resize(3)
	if e.Running() {
		t.Fatal("Resize should not start a stopped simulation")
	}
}

func TestInvalidResolutionLeavesBoardIntact(t *testing.T) {
	e := mustNew(t, 4)
	setAlive(t, e, [2]int{2, 3})
	e.SetRunning(true)
	before := slices.Clone(e.Cells())

	if err := e.Reset(0); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("Reset(0) err = %v", err)
	}
	if err := e.Resize(-1); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("Resize(-1) err = %v", err)
	}
	if !slices.Equal(before, e.Cells()) || e.Resolution() != 4 || !e.Running() {
		t.Fatal("rejected resolution change mutated the engine")
	}
}

func TestToggleIsIsolated(t *testing.T) {
	e := mustNew(t, 5)
	setAlive(t, e, [2]int{0, 0}, [2]int{4, 4})
	before := slices.Clone(e.Cells())

	if err := e.ToggleCell(2, 3); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	diffs := 0
	for i := range before {
		if before[i] != e.Cells()[i] {
			diffs++
			if i != 2+5*3 {
				t.Fatalf("toggle changed unrelated cell %d", i)
			}
		}
	}
	if diffs != 1 {
		t.Fatalf("expected exactly one changed cell, got %d", diffs)
	}

	_ = e.ToggleCell(2, 3)
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("toggling twice should restore the board")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	e := mustNew(t, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if err := e.ToggleCell(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("ToggleCell(%d,%d) err = %v, expected ErrOutOfRange", p[0], p[1], err)
		}
	}
	if e.Population() != 0 {
		t.Fatal("rejected toggle mutated the board")
	}
}

func TestSetRunningDoesNotTouchBoard(t *testing.T) {
	e := mustNew(t, 4)
	setAlive(t, e, [2]int{1, 2})
	before := slices.Clone(e.Cells())
	e.SetRunning(true)
	if !e.Running() || !slices.Equal(before, e.Cells()) {
		t.Fatal("SetRunning(true) should only flip the flag")
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := mustNew(t, 16)
	b := mustNew(t, 16)
	a.Seed(42, 0.3)
	b.Seed(42, 0.3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
	if a.Population() == 0 {
		t.Fatal("expected a non-empty soup")
	}
	checkInvariant(t, a)
}

func TestClearKeepsResolutionAndStops(t *testing.T) {
	e := mustNew(t, 5)
	setAlive(t, e, [2]int{0, 0}, [2]int{4, 4}, [2]int{2, 2})
	e.SetRunning(true)
	e.Step()

	e.Clear()
	if e.Resolution() != 5 || len(e.Cells()) != 25 {
		t.Fatalf("Clear changed the board size: res=%d len=%d", e.Resolution(), len(e.Cells()))
	}
	if e.Population() != 0 || e.Running() || e.Generation() != 0 {
		t.Fatalf("expected empty stopped board at generation 0, got pop=%d running=%v gen=%d",
			e.Population(), e.Running(), e.Generation())
	}
}
