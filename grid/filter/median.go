package filter

import (
	"github.com/anthonynsimon/bild/effect"

	"github.com/seqsense/mapenhancer/grid"
)

// Median removes salt-and-pepper noise with a window of the given size.
type Median struct {
	Size int
}

func (f Median) Filter(r *grid.Raster) (*grid.Raster, error) {
	return MedianFilter(r, f.Size), nil
}

// MedianFilter replaces each pixel with the median of its neighborhood.
// size 0 is the identity; even sizes are forced odd like the other kernels.
func MedianFilter(r *grid.Raster, size int) *grid.Raster {
	if size <= 0 {
		return r.Clone()
	}
	if size%2 == 0 {
		size++
	}
	return grid.FromImage(effect.Median(r.RGBA(), float64(size)))
}
