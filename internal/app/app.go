//go:build ebiten

package app

import (
	"image/color"

	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.BoardPainter
	hud     *ui.HUD
	status  *ui.Status

	boardPixels int
	hudWidth    int
}

// New constructs a Game for the provided session.
func New(session *Session, hudWidth int) *Game {
	return &Game{
		session:     session,
		painter:     render.NewBoardPainter(),
		hud:         ui.NewHUD(session, hudWidth),
		status:      ui.NewStatus(session),
		boardPixels: session.BoardPixels(),
		hudWidth:    hudWidth,
	}
}

// Update handles per-frame input and advances the simulation when a step is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Trigger("seed")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		_ = g.session.SetResolution(g.session.View().Resolution() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		_ = g.session.SetResolution(g.session.View().Resolution() - 1)
	}

	g.hud.Update(g.boardPixels)
	g.status.Update()

	mx, my := ebiten.CursorPosition()
	g.session.Pointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.session.Tick()
	return nil
}

// Draw renders the board, the HUD panel and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.session.View(), g.boardPixels)
	g.hud.Draw(screen, g.boardPixels, g.boardPixels)
	g.status.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardPixels + g.hudWidth, g.boardPixels
}
