package filter

import (
	"github.com/seqsense/mapenhancer/grid"
)

// Op selects the morphological operation. The naming follows occupancy map
// semantics where 0 is an obstacle: Dilation takes the neighborhood minimum
// and grows dark regions, Erosion takes the maximum and shrinks them.
type Op int

const (
	Dilation Op = iota
	Erosion
)

// Morph applies a square structuring element of the given size.
type Morph struct {
	Op   Op
	Size int
}

func (f Morph) Filter(r *grid.Raster) (*grid.Raster, error) {
	return Morphology(r, f.Op, f.Size), nil
}

// Morphology sweeps a (2*radius+1)^2 neighborhood, radius = size/2, over
// every pixel whose full neighborhood is inside the raster. Pixels within
// radius of a border keep their original value. size 0 is the identity.
func Morphology(r *grid.Raster, op Op, size int) *grid.Raster {
	out := r.Clone()
	if size <= 0 {
		return out
	}
	radius := size / 2
	for y := radius; y < r.Height-radius; y++ {
		for x := radius; x < r.Width-radius; x++ {
			v := r.Gray(x-radius, y-radius)
			for ny := y - radius; ny <= y+radius; ny++ {
				for nx := x - radius; nx <= x+radius; nx++ {
					p := r.Gray(nx, ny)
					if op == Dilation {
						if p < v {
							v = p
						}
					} else if p > v {
						v = p
					}
				}
			}
			out.SetGray(x, y, v)
		}
	}
	return out
}

// Opening erodes then dilates with the same structuring element, removing
// small isolated obstacle specks.
func Opening(r *grid.Raster, size int) *grid.Raster {
	return Morphology(Morphology(r, Erosion, size), Dilation, size)
}

// Closing dilates then erodes, filling small gaps in obstacle regions.
func Closing(r *grid.Raster, size int) *grid.Raster {
	return Morphology(Morphology(r, Dilation, size), Erosion, size)
}
