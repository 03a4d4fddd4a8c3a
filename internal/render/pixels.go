package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// minGridCell is the smallest cell size, in pixels, that still gets grid
// lines drawn between cells.
const minGridCell = 4

// gridLines returns the pixel offsets of the lines separating cells on a
// board of the given resolution drawn boardPixels wide. Boards whose cells
// are too small to separate get no lines.
func gridLines(resolution, boardPixels int) []float32 {
	if resolution < 2 || boardPixels/resolution < minGridCell {
		return nil
	}
	cellSize := float32(boardPixels) / float32(resolution)
	lines := make([]float32, 0, resolution-1)
	for i := 1; i < resolution; i++ {
		lines = append(lines, float32(i)*cellSize)
	}
	return lines
}
