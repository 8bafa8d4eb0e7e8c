package render

import (
	"image/color"

	"gridlife/internal/core"
)

// Palette holds the colors used to paint a board.
type Palette struct {
	On  color.Color
	Off color.Color
	Gap color.Color
}

// Layout describes how cells map to pixels: each cell covers Scale×Scale
// pixels, the last Gap rows and columns of which are painted with the gap
// color.
type Layout struct {
	Size  core.Size
	Scale int
	Gap   int
}

// Normalized clamps Scale to at least 1 and Gap to [0, Scale-1].
func (l Layout) Normalized() Layout {
	if l.Scale <= 0 {
		l.Scale = 1
	}
	if l.Gap < 0 {
		l.Gap = 0
	}
	if l.Gap >= l.Scale {
		l.Gap = l.Scale - 1
	}
	return l
}

// Bounds returns the pixel dimensions of the painted board.
func (l Layout) Bounds() (int, int) {
	l = l.Normalized()
	return l.Size.W * l.Scale, l.Size.H * l.Scale
}

// CellAt maps a pixel position to a cell coordinate. Pixels on a gap or
// outside the board report false.
func (l Layout) CellAt(px, py int) (row, col int, ok bool) {
	l = l.Normalized()
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row, col = py/l.Scale, px/l.Scale
	if _, in := l.Size.Index(row, col); !in {
		return 0, 0, false
	}
	if px%l.Scale >= l.Scale-l.Gap || py%l.Scale >= l.Scale-l.Gap {
		return 0, 0, false
	}
	return row, col, true
}

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA converts cell data into RGBA pixels in buf, which must hold
// 4*width*height bytes for the layout's pixel bounds.
func fillCellsRGBA(buf []byte, cells []bool, l Layout, p Palette) {
	l = l.Normalized()
	on, off, gap := toRGBA(p.On), toRGBA(p.Off), toRGBA(p.Gap)
	pw, ph := l.Bounds()
	if len(cells) != l.Size.Len() || len(buf) < 4*pw*ph {
		return
	}
	inner := l.Scale - l.Gap
	for py := 0; py < ph; py++ {
		row, ry := py/l.Scale, py%l.Scale
		for px := 0; px < pw; px++ {
			col, rx := px/l.Scale, px%l.Scale
			c := gap
			if rx < inner && ry < inner {
				c = off
				if cells[row*l.Size.W+col] {
					c = on
				}
			}
			base := (py*pw + px) * 4
			buf[base+0] = c[0]
			buf[base+1] = c[1]
			buf[base+2] = c[2]
			buf[base+3] = c[3]
		}
	}
}
