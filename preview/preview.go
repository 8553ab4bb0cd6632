// Package preview composes display images from the original and enhanced
// rasters of a map.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/seqsense/mapenhancer/grid"
)

type Mode int

const (
	ModeOriginal Mode = iota
	ModeEnhanced
	ModeSideBySide
)

const sideBySideGap = 4

// Options controls preview composition. Scale <= 0 means 1.
type Options struct {
	Mode   Mode
	Scale  float64
	Invert bool
	Grid   bool
}

// Compose renders the preview image. Side-by-side places the original left
// of the enhanced raster with a white gutter; shorter images are padded
// with white. Scaling uses nearest-neighbor when magnifying and bilinear
// when shrinking.
func Compose(original, enhanced *grid.Raster, o Options) *image.RGBA {
	var base *image.RGBA
	switch o.Mode {
	case ModeOriginal:
		base = cloneRGBA(original.RGBA())
	case ModeEnhanced:
		base = cloneRGBA(enhanced.RGBA())
	default:
		base = sideBySide(original, enhanced)
	}
	if o.Invert {
		invert(base)
	}
	if o.Grid {
		overlayGrid(base)
	}
	scale := o.Scale
	if scale <= 0 {
		scale = 1
	}
	if scale == 1 {
		return base
	}
	w := base.Bounds().Dx()
	h := base.Bounds().Dy()
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if scale >= 1 {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst
}

func sideBySide(left, right *grid.Raster) *image.RGBA {
	h := left.Height
	if right.Height > h {
		h = right.Height
	}
	w := left.Width + sideBySideGap + right.Width
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, left.Width, left.Height), left.RGBA(), image.Point{}, draw.Src)
	xOff := left.Width + sideBySideGap
	draw.Draw(out, image.Rect(xOff, 0, xOff+right.Width, right.Height), right.RGBA(), image.Point{}, draw.Src)
	return out
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

func invert(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255 - img.Pix[i]
		img.Pix[i+1] = 255 - img.Pix[i+1]
		img.Pix[i+2] = 255 - img.Pix[i+2]
	}
}

func overlayGrid(img *image.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	min := w
	if h < min {
		min = h
	}
	step := min / 40
	if step < 10 {
		step = 10
	}
	line := color.RGBA{180, 180, 180, 255}
	for x := 0; x < w; x += step {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, line)
		}
	}
	for y := 0; y < h; y += step {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, line)
		}
	}
}
