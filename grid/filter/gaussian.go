package filter

import (
	"math"

	"github.com/seqsense/mapenhancer/grid"
)

// Gaussian blurs with a separable kernel of the given radius.
type Gaussian struct {
	Radius int
}

func (f Gaussian) Filter(r *grid.Raster) (*grid.Raster, error) {
	return Blur(r, f.Radius), nil
}

// Blur applies a 2-D Gaussian blur as two sequential 1-D passes, horizontal
// then vertical, with clamp-to-edge sampling. sigma is radius/3 and the
// kernel spans 2*radius+1 samples. radius 0 is the identity.
func Blur(r *grid.Raster, radius int) *grid.Raster {
	if radius <= 0 {
		return r.Clone()
	}
	kernel := gaussianKernel(radius)
	return convolve1D(convolve1D(r, kernel, true), kernel, false)
}

func gaussianKernel(radius int) []float64 {
	sigma := float64(radius) / 3
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

func convolve1D(src *grid.Raster, kernel []float64, horizontal bool) *grid.Raster {
	dst := grid.New(src.Width, src.Height)
	radius := len(kernel) / 2
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var r, g, b float64
			for i, w := range kernel {
				sx, sy := x, y
				if horizontal {
					sx = clampInt(x+i-radius, 0, src.Width-1)
				} else {
					sy = clampInt(y+i-radius, 0, src.Height-1)
				}
				o := src.Offset(sx, sy)
				r += w * float64(src.Pix[o])
				g += w * float64(src.Pix[o+1])
				b += w * float64(src.Pix[o+2])
			}
			o := dst.Offset(x, y)
			dst.Pix[o] = clampByte(r)
			dst.Pix[o+1] = clampByte(g)
			dst.Pix[o+2] = clampByte(b)
			dst.Pix[o+3] = src.Pix[src.Offset(x, y)+3]
		}
	}
	return dst
}
