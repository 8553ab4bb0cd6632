// Package enhance composes the filter primitives into the map enhancement
// pipeline and derives suggested settings from the map itself.
package enhance

import (
	"github.com/seqsense/mapenhancer/grid"
	"github.com/seqsense/mapenhancer/grid/filter"
)

// Settings holds the per-stage magnitudes of the enhancement pipeline.
// Each value is a kernel radius; 0 skips the stage.
type Settings struct {
	Blur     int
	Opening  int
	Dilation int
	Erosion  int
}

// Process runs the pipeline on a private copy of r, in fixed order:
// Gaussian blur, opening, dilation, erosion. A stage runs only when its
// magnitude is positive. Morphology stages use a (2*m+1)^2 structuring
// element so that magnitude 1 already affects direct neighbors. The call
// is deterministic and never mutates r.
func Process(r *grid.Raster, s Settings) *grid.Raster {
	out := r.Clone()
	if s.Blur > 0 {
		out = filter.Blur(out, s.Blur)
	}
	if s.Opening > 0 {
		out = filter.Opening(out, 2*s.Opening+1)
	}
	if s.Dilation > 0 {
		out = filter.Morphology(out, filter.Dilation, 2*s.Dilation+1)
	}
	if s.Erosion > 0 {
		out = filter.Morphology(out, filter.Erosion, 2*s.Erosion+1)
	}
	return out
}
