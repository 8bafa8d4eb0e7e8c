//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image of the board in sync with cell data.
type GridPainter struct {
	layout  Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout, p Palette) *GridPainter {
	l = l.Normalized()
	pw, ph := l.Bounds()
	return &GridPainter{
		layout:  l,
		palette: p,
		img:     ebiten.NewImage(pw, ph),
		buf:     make([]byte, 4*pw*ph),
	}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool) {
	if len(cells) != gp.layout.Size.Len() {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.layout, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Layout returns the painter's cell layout.
func (gp *GridPainter) Layout() Layout { return gp.layout }
