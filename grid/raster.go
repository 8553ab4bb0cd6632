// Package grid provides the in-memory occupancy-grid raster, the PGM and
// metadata codecs, and folder-based map I/O.
package grid

import (
	"bytes"
	"image"
	"image/draw"
)

// Raster is a width*height RGBA image buffer, row-major, top-left origin.
// Occupancy maps keep R==G==B; 0 is occupied, 255 free, 205 unknown.
type Raster struct {
	Width  int
	Height int
	Pix    []byte
}

func New(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// NewGray returns a raster filled with the given gray value and opaque alpha.
func NewGray(width, height int, v byte) *Raster {
	r := New(width, height)
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = v
		r.Pix[i+1] = v
		r.Pix[i+2] = v
		r.Pix[i+3] = 0xff
	}
	return r
}

func (r *Raster) Clone() *Raster {
	out := &Raster{
		Width:  r.Width,
		Height: r.Height,
		Pix:    make([]byte, len(r.Pix)),
	}
	copy(out.Pix, r.Pix)
	return out
}

// Offset returns the index of the R byte of the pixel at (x, y).
func (r *Raster) Offset(x, y int) int {
	return (y*r.Width + x) * 4
}

// Gray returns the R channel value at (x, y).
func (r *Raster) Gray(x, y int) byte {
	return r.Pix[r.Offset(x, y)]
}

// SetGray writes v to R, G and B at (x, y), leaving alpha untouched.
func (r *Raster) SetGray(x, y int, v byte) {
	o := r.Offset(x, y)
	r.Pix[o] = v
	r.Pix[o+1] = v
	r.Pix[o+2] = v
}

func (r *Raster) Equal(a *Raster) bool {
	return r.Width == a.Width && r.Height == a.Height && bytes.Equal(r.Pix, a.Pix)
}

// RGBA returns an image.RGBA view sharing the pixel buffer.
func (r *Raster) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    r.Pix,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// FromImage copies img into a freshly allocated raster.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := New(b.Dx(), b.Dy())
	draw.Draw(r.RGBA(), r.RGBA().Bounds(), img, b.Min, draw.Src)
	return r
}
