//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBG  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFG  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonLiveBG = color.RGBA{R: 40, G: 96, B: 64, A: 255}
)

// runningAction is highlighted while the simulation is running.
const runningAction = "start"

// HUD renders the control panel to the right of the board.
type HUD struct {
	ctrl  Controller
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	lastHeight   int
	panelOffsetX int
	snapshot     core.ParameterSnapshot

	controls []hudControlState
	actions  []hudActionState
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool
	controlRow
}

type hudActionState struct {
	action core.Action
	rect   image.Rectangle
}

// NewHUD constructs a HUD for the provided controller and panel width. A
// width of zero disables the panel.
func NewHUD(ctrl Controller, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, width: width}
	if width == 0 {
		return h
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	controls := ctrl.ParameterControls()
	actions := ctrl.Actions()
	rows, rects := layoutPanel(width, len(controls), len(actions))
	h.controls = make([]hudControlState, len(controls))
	for i, c := range controls {
		h.controls[i] = hudControlState{control: c, controlRow: rows[i]}
	}
	h.actions = make([]hudActionState, len(actions))
	for i, a := range actions {
		h.actions[i] = hudActionState{action: a, rect: rects[i]}
	}
	return h
}

// Update refreshes the cached values and handles clicks on the panel, which
// starts at panelOffsetX in screen coordinates.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.ctrl.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
	for _, a := range h.actions {
		if pointInRect(px, my, a.rect) {
			h.ctrl.Trigger(a.action.Key)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	if h.ctrl.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

// target returns the value one step in direction, and whether that differs
// from the current value once clamped.
func (h *HUD) target(state *hudControlState, direction int) (int, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	return target, target != state.value
}

// Draw paints the HUD panel at offsetX, sized to the board height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawActions()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Life Controls", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		value, valueColor := "--", dimColor
		if state.hasValue {
			value, valueColor = strconv.Itoa(state.value), labelColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canDec := h.target(state, -1)
		_, canInc := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDec, false)
		h.drawButton(state.plusRect, "+", state.hasValue && canInc, false)
	}
}

func (h *HUD) drawActions() {
	running := false
	if p, ok := h.snapshot.Lookup("running"); ok {
		running = p.Value == "true"
	}
	for _, a := range h.actions {
		h.drawButton(a.rect, a.action.Label, true, running && a.action.Key == runningAction)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled, highlighted bool) {
	bg, fg := buttonBG, buttonFG
	switch {
	case !enabled:
		bg, fg = buttonOffBG, buttonOffFG
	case highlighted:
		bg = buttonLiveBG
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
