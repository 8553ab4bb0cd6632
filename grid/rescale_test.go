package grid

import (
	"testing"
)

func TestRescale(t *testing.T) {
	m := &Map{
		Raster: NewGray(4, 4, GrayUnknown),
		Meta:   NewMetadata(),
	}
	m.Meta.Set("resolution", 0.05)

	out := m.Rescale(0.5)
	if out.Raster.Width != 2 || out.Raster.Height != 2 {
		t.Fatalf("Expected 2x2 raster, got %dx%d", out.Raster.Width, out.Raster.Height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if out.Raster.Gray(x, y) != GrayUnknown {
				t.Errorf("Expected unknown gray at (%d, %d), got %d", x, y, out.Raster.Gray(x, y))
			}
		}
	}
	res, _ := out.Meta.Get("resolution")
	if res != 0.1 {
		t.Errorf("Expected resolution 0.1, got %v", res)
	}
	// the source map must not change
	if m.Raster.Width != 4 {
		t.Error("Expected source raster untouched")
	}
	if res, _ := m.Meta.Get("resolution"); res != 0.05 {
		t.Errorf("Expected source resolution untouched, got %v", res)
	}
}
