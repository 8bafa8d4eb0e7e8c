//go:build ebiten

package ui

import (
	"image/color"

	"gridlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional guides on top of the board: row/column lines and a
// highlight under the cursor showing which cell a click would flip.
type Overlay struct {
	layout    render.Layout
	showLines bool
	hoverRow  int
	hoverCol  int
	hovering  bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(l render.Layout) *Overlay {
	o := &Overlay{layout: l.Normalized()}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles guides and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hovering = o.layout.CellAt(mx, my)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.layout.Size
	scale := o.layout.Scale
	pw, ph := o.layout.Bounds()
	if o.showLines && scale >= 4 {
		line := color.RGBA{R: 90, G: 90, B: 110, A: 255}
		for c := 0; c <= size.W; c++ {
			o.fill(screen, float64(c*scale), 0, 1, float64(ph), line)
		}
		for r := 0; r <= size.H; r++ {
			o.fill(screen, 0, float64(r*scale), float64(pw), 1, line)
		}
	}
	if o.hovering {
		inner := float64(scale - o.layout.Gap)
		x, y := float64(o.hoverCol*scale), float64(o.hoverRow*scale)
		o.fill(screen, x, y, inner, inner, color.RGBA{R: 255, G: 210, B: 80, A: 96})
	}
}

func (o *Overlay) fill(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
