package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	actionHeight   = 28
	actionGap      = 8
	controlsTop    = panelPadding + headerBaseline + 14
)

// controlRow holds the geometry of one +/- parameter row, relative to the
// panel's top-left corner.
type controlRow struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutPanel positions the parameter rows and, below them, one full-width
// button per action.
func layoutPanel(width, controls, actions int) ([]controlRow, []image.Rectangle) {
	if width <= 0 {
		return nil, nil
	}
	rows := make([]controlRow, controls)
	for i := range rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRow{top: top, minusRect: minus, plusRect: plus}
	}

	buttons := make([]image.Rectangle, actions)
	top := controlsTop + controls*lineHeight + actionGap
	for i := range buttons {
		y := top + i*(actionHeight+actionGap)
		buttons[i] = image.Rect(panelPadding, y, width-panelPadding, y+actionHeight)
	}
	return rows, buttons
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
