//go:build ebiten

package render

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter uploads a board into an image once per frame and draws it
// scaled to the board size, with separator lines between cells.
type BoardPainter struct {
	res int
	img *ebiten.Image
	buf []byte

	OnColor   color.Color
	OffColor  color.Color
	GridColor color.Color
}

// NewBoardPainter returns a painter that draws alive cells black on white.
func NewBoardPainter() *BoardPainter {
	return &BoardPainter{OnColor: color.Black, OffColor: color.White, GridColor: color.Black}
}

func (bp *BoardPainter) ensure(res int) {
	if bp.img != nil && bp.res == res {
		return
	}
	if bp.img != nil {
		bp.img.Dispose()
	}
	bp.res = res
	bp.img = ebiten.NewImage(res, res)
	bp.buf = make([]byte, 4*res*res)
}

// Draw paints view onto dst as a boardPixels square at the origin.
func (bp *BoardPainter) Draw(dst *ebiten.Image, view core.View, boardPixels int) {
	res := view.Resolution()
	cells := view.Cells()
	if res < 1 || len(cells) != res*res {
		return
	}
	bp.ensure(res)
	fillBinaryRGBA(bp.buf, cells, bp.OnColor, bp.OffColor)
	bp.img.WritePixels(bp.buf)

	scale := float64(boardPixels) / float64(res)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(bp.img, op)

	size := float32(boardPixels)
	for _, p := range gridLines(res, boardPixels) {
		vector.StrokeLine(dst, p, 0, p, size, 1, bp.GridColor, false)
		vector.StrokeLine(dst, 0, p, size, p, 1, bp.GridColor, false)
	}
}
