package filter

import (
	"github.com/seqsense/mapenhancer/grid"
)

// Color is an RGB stamp color. Stamps never touch alpha.
type Color [3]uint8

var (
	ColorObstacle = Color{0, 0, 0}
	ColorFree     = Color{255, 255, 255}
	ColorUnknown  = Color{205, 205, 205}
)

// DrawLine stamps the 8-connected Bresenham line from (x1, y1) to (x2, y2)
// inclusive. Cells outside the raster are skipped.
func DrawLine(r *grid.Raster, x1, y1, x2, y2 int, c Color) *grid.Raster {
	out := r.Clone()
	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		setColor(out, x, y, c)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}

// DrawRect fills [x, x+w) x [y, y+h) clipped to the raster bounds.
func DrawRect(r *grid.Raster, x, y, w, h int, c Color) *grid.Raster {
	out := r.Clone()
	x0 := clampInt(x, 0, r.Width)
	y0 := clampInt(y, 0, r.Height)
	x1 := clampInt(x+w, 0, r.Width)
	y1 := clampInt(y+h, 0, r.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			setColor(out, px, py, c)
		}
	}
	return out
}

func setColor(r *grid.Raster, x, y int, c Color) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	o := r.Offset(x, y)
	r.Pix[o] = c[0]
	r.Pix[o+1] = c[1]
	r.Pix[o+2] = c[2]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
