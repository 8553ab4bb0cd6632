package cloud

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func newTestCloud(t *testing.T, pts []mat.Vec3, intensities []float32) *pc.PointCloud {
	t.Helper()
	n := len(pts)
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z", "intensity"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "F"},
			Count:     []int{1, 1, 1, 1},
			Width:     n,
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	vt, err := pp.Float32Iterator("intensity")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		it.SetVec3(pts[i])
		vt.SetFloat32(intensities[i])
		it.Incr()
		vt.Incr()
	}
	return pp
}

func TestIntensityPassThrough(t *testing.T) {
	pp := newTestCloud(t,
		[]mat.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{2, 0, 0},
			{3, 0, 0},
			{4, 0, 0},
		},
		[]float32{10, 100, 20, 100, 30},
	)
	out, err := IntensityPassThrough(pp, 50)
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 3 || out.Width != 3 || out.Height != 1 {
		t.Fatalf("Expected 3 points, got %d (%dx%d)", out.Points, out.Width, out.Height)
	}
	it, err := out.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	expected := []mat.Vec3{{0, 0, 0}, {2, 0, 0}, {4, 0, 0}}
	for i, e := range expected {
		if v := it.Vec3(); !v.Equal(e) {
			t.Errorf("Expected point %d at %v, got %v", i, e, v)
		}
		it.Incr()
	}
	if len(out.Data) != out.Points*out.Stride() {
		t.Errorf("Expected data trimmed to %d bytes, got %d", out.Points*out.Stride(), len(out.Data))
	}
}

func TestIntensityPassThrough_All(t *testing.T) {
	pp := newTestCloud(t,
		[]mat.Vec3{{0, 0, 0}, {1, 1, 1}},
		[]float32{1, 2},
	)
	t.Run("KeepAll", func(t *testing.T) {
		out, err := IntensityPassThrough(pp, 100)
		if err != nil {
			t.Fatal(err)
		}
		if out.Points != 2 {
			t.Errorf("Expected all points kept, got %d", out.Points)
		}
	})
	t.Run("DropAll", func(t *testing.T) {
		out, err := IntensityPassThrough(pp, 0)
		if err != nil {
			t.Fatal(err)
		}
		if out.Points != 0 {
			t.Errorf("Expected no points kept, got %d", out.Points)
		}
	})
}

func TestIntensityPassThrough_NoIntensity(t *testing.T) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   1,
			Height:  1,
		},
		Points: 1,
	}
	pp.Data = make([]byte, pp.Stride())
	if _, err := IntensityPassThrough(pp, 1); err == nil {
		t.Error("Expected error for cloud without intensity field")
	}
}
