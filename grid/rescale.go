package grid

import (
	"github.com/nfnt/resize"
)

// Resample scales the raster to the given size using the selected
// interpolation.
func Resample(r *Raster, width, height int, interp resize.InterpolationFunction) *Raster {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	out := resize.Resize(uint(width), uint(height), r.RGBA(), interp)
	return FromImage(out)
}

// Rescale resizes the map raster by scale and compensates the metadata
// resolution so that world coordinates are preserved. Nearest-neighbor
// sampling keeps the occupied/free/unknown palette intact.
func (m *Map) Rescale(scale float64) *Map {
	if scale <= 0 {
		scale = 1
	}
	w := int(float64(m.Raster.Width)*scale + 0.5)
	h := int(float64(m.Raster.Height)*scale + 0.5)
	out := &Map{
		Raster: Resample(m.Raster, w, h, resize.NearestNeighbor),
		Meta:   m.Meta.Clone(),
	}
	if res, ok := out.Meta.Get("resolution"); ok {
		if f, ok := res.(float64); ok && out.Raster.Width > 0 {
			out.Meta.Set("resolution", f*float64(m.Raster.Width)/float64(out.Raster.Width))
		}
	}
	return out
}
