package render

import (
	"bytes"
	"testing"
)

type fakeView struct {
	res   int
	cells []uint8
}

func (f fakeView) Resolution() int { return f.res }
func (f fakeView) Cells() []uint8 { return f.cells }

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	v := fakeView{res: 3, cells: []uint8{0, 1, 0, 0, 1, 0, 0, 1, 0}}
	if err := WriteText(&buf, v); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got, want := buf.String(), ".#.\n.#.\n.#.\n"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}
}
