//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"gridlife/internal/controller"
	"gridlife/internal/core"
	"gridlife/internal/render"
	"gridlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the controller to the ebiten.Game interface.
type Game struct {
	ctrl    *controller.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	layout  render.Layout
	engine  string
	seed    int64
	density float64
	playing bool
}

// New constructs a Game for the provided controller.
func New(ctrl *controller.Controller, cfg *Config) *Game {
	layout := render.Layout{Size: ctrl.Size(), Scale: cfg.Scale, Gap: cfg.Gap}.Normalized()
	palette := render.Palette{
		On:  color.RGBA{R: 240, G: 200, B: 60, A: 255},
		Off: color.RGBA{R: 44, G: 46, B: 54, A: 255},
		Gap: color.Black,
	}
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(layout, palette),
		hud:     ui.NewHUD(ctrl, hudWidth),
		overlay: ui.NewOverlay(layout),
		stepper: core.NewFixedStep(cfg.Rate),
		layout:  layout,
		engine:  cfg.Engine,
		seed:    cfg.Seed,
		density: cfg.Density,
	}
}

// Update handles per-frame input and autoplay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.stepper.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.playing = false
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize(g.seed, g.density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.ctrl.Randomize(g.seed, g.density)
	}

	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if row, col, ok := g.layout.CellAt(mx, my); ok {
			if _, err := g.ctrl.Flip(row, col); err != nil {
				log.Printf("flip (%d,%d): %v", row, col, err)
			}
		}
	}
	w, _ := g.layout.Bounds()
	g.hud.Update(w)

	if g.playing && g.stepper.ShouldStep() {
		if _, err := g.ctrl.Compute(g.engine, "1"); err != nil {
			g.playing = false
			log.Printf("autoplay: %v", err)
		}
	}
	return nil
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Cells())
	g.overlay.Draw(screen)
	w, _ := g.layout.Bounds()
	g.hud.Draw(screen, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.Bounds()
	return w + hudWidth, max(h, g.hud.MinHeight())
}
