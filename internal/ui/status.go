//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Status draws the generation/population line in the board's top-left
// corner. Tab toggles it.
type Status struct {
	provider core.ParameterProvider
	hidden   bool
	line     string
}

// NewStatus constructs a status line reading from provider.
func NewStatus(provider core.ParameterProvider) *Status {
	return &Status{provider: provider}
}

// Update handles the visibility toggle and refreshes the text.
func (s *Status) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.hidden = !s.hidden
	}
	s.line = StatusLine(s.provider.Parameters())
}

// Draw paints the status line on a dark backing strip.
func (s *Status) Draw(screen *ebiten.Image) {
	if s.hidden || s.line == "" {
		return
	}
	width := float32(len(s.line)*6 + 8)
	vector.DrawFilledRect(screen, 0, 0, width, 18, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, s.line, 4, 1)
}
