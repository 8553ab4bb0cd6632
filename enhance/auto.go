package enhance

import (
	"github.com/seqsense/mapenhancer/grid"
	"github.com/seqsense/mapenhancer/grid/filter"
)

const (
	defaultResolution = 0.05
	targetWallMeters  = 0.15
)

// Suggest analyzes the raster and proposes pipeline settings and a
// binarization threshold: Otsu's level for the threshold, a
// Laplacian-variance noise estimate for the blur radius, a
// resolution-scaled opening for speckled maps, and dilation/erosion
// balancing the measured obstacle thickness against a 0.15 m wall target.
func Suggest(r *grid.Raster, meta *grid.MapMeta) (Settings, float64) {
	var s Settings

	threshold := filter.OtsuLevel(r)
	lapVar := laplacianVariance(r)
	switch {
	case lapVar < 30:
		s.Blur = 0
	case lapVar < 120:
		s.Blur = 1
	default:
		s.Blur = 3
	}

	res := defaultResolution
	if meta != nil && meta.Resolution > 0 {
		res = meta.Resolution
	}

	bin := filter.Threshold(r, threshold)
	occ := bin.Stats().Occupied
	if occ < 0.02 || lapVar > 120 {
		s.Opening = clamp(int(0.05/res+0.5), 0, 5)
	}

	thick := meanObstacleThickness(bin)
	target := float64(clamp(int(targetWallMeters/res+0.5), 1, 15))
	if thick < target {
		s.Dilation = clamp(int(target-thick+0.5), 0, 10)
	} else if thick > target*1.8 {
		s.Erosion = clamp(int(thick-target+0.5), 0, 10)
	}
	if s.Opening > 0 && s.Erosion > 0 {
		s.Erosion--
	}
	return s, threshold
}

// laplacianVariance measures noise as the variance of the 4-neighbor
// Laplacian response over the raster interior.
func laplacianVariance(r *grid.Raster) float64 {
	w, h := r.Width, r.Height
	if w < 3 || h < 3 {
		return 0
	}
	var sum, sumSq float64
	n := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			l := float64(r.Gray(x-1, y)) + float64(r.Gray(x+1, y)) +
				float64(r.Gray(x, y-1)) + float64(r.Gray(x, y+1)) -
				4*float64(r.Gray(x, y))
			sum += l
			sumSq += l * l
			n++
		}
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// meanObstacleThickness averages the lengths of horizontal and vertical runs
// of occupied pixels in a binarized raster.
func meanObstacleThickness(r *grid.Raster) float64 {
	var total, runs int
	flush := func(run int) {
		if run > 0 {
			total += run
			runs++
		}
	}
	for y := 0; y < r.Height; y++ {
		run := 0
		for x := 0; x < r.Width; x++ {
			if r.Gray(x, y) == grid.GrayOccupied {
				run++
			} else {
				flush(run)
				run = 0
			}
		}
		flush(run)
	}
	for x := 0; x < r.Width; x++ {
		run := 0
		for y := 0; y < r.Height; y++ {
			if r.Gray(x, y) == grid.GrayOccupied {
				run++
			} else {
				flush(run)
				run = 0
			}
		}
		flush(run)
	}
	if runs == 0 {
		return 1
	}
	return float64(total) / float64(runs)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
