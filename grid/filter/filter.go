// Package filter implements the image filter primitives applied to
// occupancy-grid rasters. Every primitive returns a freshly allocated
// raster and never mutates its input.
package filter

import (
	"github.com/seqsense/mapenhancer/grid"
)

type Filter interface {
	Filter(*grid.Raster) (*grid.Raster, error)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
