package render

import (
	"bufio"
	"io"

	"torus-life/internal/core"
)

const (
	textAlive = '#'
	textDead  = '.'
)

// WriteText writes the board one row per line, '#' for live cells and '.'
// for dead ones.
func WriteText(w io.Writer, v core.View) error {
	res := v.Resolution()
	cells := v.Cells()
	bw := bufio.NewWriter(w)
	for y := 0; y < res; y++ {
		for _, c := range cells[y*res : (y+1)*res] {
			b := byte(textDead)
			if c != 0 {
				b = textAlive
			}
			if err := bw.WriteByte(b); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
