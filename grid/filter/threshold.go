package filter

import (
	"github.com/seqsense/mapenhancer/grid"
)

// Binarize thresholds at the given level in [0, 1].
type Binarize struct {
	Level float64
}

func (f Binarize) Filter(r *grid.Raster) (*grid.Raster, error) {
	return Threshold(r, f.Level), nil
}

// Threshold binarizes by BT.601 luma: pixels with
// 0.299R+0.587G+0.114B <= t*255 become 0, the rest 255. Alpha is preserved.
func Threshold(r *grid.Raster, t float64) *grid.Raster {
	out := r.Clone()
	cut := t * 255
	for i := 0; i < len(out.Pix); i += 4 {
		l := 0.299*float64(out.Pix[i]) + 0.587*float64(out.Pix[i+1]) + 0.114*float64(out.Pix[i+2])
		var v byte
		if l > cut {
			v = 255
		}
		out.Pix[i] = v
		out.Pix[i+1] = v
		out.Pix[i+2] = v
	}
	return out
}

// OtsuLevel computes Otsu's threshold over the R channel, returned in [0, 1].
func OtsuLevel(r *grid.Raster) float64 {
	var hist [256]int
	total := r.Width * r.Height
	if total == 0 {
		return 0.5
	}
	for i := 0; i < len(r.Pix); i += 4 {
		hist[r.Pix[i]]++
	}
	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}
	var sumB, wB float64
	var best float64
	level := 127
	for v := 0; v < 256; v++ {
		wB += float64(hist[v])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(v) * float64(hist[v])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			level = v
		}
	}
	return float64(level) / 255
}

// Adaptive binarizes against a local mean: each pixel is compared to the
// average of the surrounding block-sized window minus c. block is forced odd.
func Adaptive(r *grid.Raster, block int, c float64) *grid.Raster {
	if block < 3 {
		block = 3
	}
	if block%2 == 0 {
		block++
	}
	w, h := r.Width, r.Height
	out := r.Clone()
	if w == 0 || h == 0 {
		return out
	}

	// integral[y][x] holds the sum of gray values above-left of (x, y)
	integral := make([]uint64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(r.Gray(x, y))
			integral[(y+1)*(w+1)+x+1] = integral[y*(w+1)+x+1] + rowSum
		}
	}

	radius := block / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0 := clampInt(x-radius, 0, w-1)
			x1 := clampInt(x+radius, 0, w-1)
			y0 := clampInt(y-radius, 0, h-1)
			y1 := clampInt(y+radius, 0, h-1)
			n := uint64((x1 - x0 + 1) * (y1 - y0 + 1))
			s := integral[(y1+1)*(w+1)+x1+1] -
				integral[y0*(w+1)+x1+1] -
				integral[(y1+1)*(w+1)+x0] +
				integral[y0*(w+1)+x0]
			mean := float64(s) / float64(n)
			var v byte
			if float64(r.Gray(x, y)) > mean-c {
				v = 255
			}
			out.SetGray(x, y, v)
		}
	}
	return out
}
