package filter

import (
	"testing"

	"github.com/seqsense/mapenhancer/grid"
)

func TestThreshold(t *testing.T) {
	r := grid.NewGray(2, 2, 0)
	r.SetGray(0, 0, 30)
	r.SetGray(1, 0, 128)
	r.SetGray(0, 1, 200)
	r.SetGray(1, 1, 127) // just below t*255 = 127.5: not above, goes dark

	out := Threshold(r, 0.5)
	expected := map[[2]int]byte{
		{0, 0}: 0,
		{1, 0}: 255,
		{0, 1}: 255,
		{1, 1}: 0,
	}
	for p, want := range expected {
		if got := out.Gray(p[0], p[1]); got != want {
			t.Errorf("Expected %d at (%d, %d), got %d", want, p[0], p[1], got)
		}
	}
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != out.Pix[i+1] || out.Pix[i] != out.Pix[i+2] {
			t.Fatalf("Expected gray output, got pixel %v", out.Pix[i:i+4])
		}
		if out.Pix[i+3] != r.Pix[i+3] {
			t.Fatal("Expected alpha preserved")
		}
	}
	if r.Gray(0, 0) != 30 {
		t.Error("Expected source untouched")
	}
}

func TestThreshold_Luma(t *testing.T) {
	r := grid.New(1, 1)
	// pure blue has luma 0.114*255 ~ 29, far below a mid threshold
	r.Pix[0], r.Pix[1], r.Pix[2], r.Pix[3] = 0, 0, 255, 255
	out := Threshold(r, 0.5)
	if out.Gray(0, 0) != 0 {
		t.Errorf("Expected blue to threshold dark, got %d", out.Gray(0, 0))
	}
}

func TestOtsuLevel(t *testing.T) {
	r := grid.NewGray(10, 10, 230)
	for y := 0; y < 10; y++ {
		for x := 0; x < 4; x++ {
			r.SetGray(x, y, 20)
		}
	}
	level := OtsuLevel(r)
	if level < 20.0/255 || level >= 230.0/255 {
		t.Errorf("Expected level between the two modes, got %v", level)
	}
	out := Threshold(r, level)
	if out.Gray(0, 0) != 0 || out.Gray(9, 9) != 255 {
		t.Errorf("Expected Otsu threshold to separate the modes, got %d and %d",
			out.Gray(0, 0), out.Gray(9, 9))
	}
}

func TestAdaptive(t *testing.T) {
	t.Run("Uniform", func(t *testing.T) {
		r := grid.NewGray(6, 6, 100)
		out := Adaptive(r, 3, 5)
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				if out.Gray(x, y) != 255 {
					t.Fatalf("Expected uniform raster above mean-c, got %d at (%d, %d)",
						out.Gray(x, y), x, y)
				}
			}
		}
	})
	t.Run("DarkSpot", func(t *testing.T) {
		r := grid.NewGray(6, 6, 200)
		r.SetGray(3, 3, 0)
		out := Adaptive(r, 3, 5)
		if out.Gray(3, 3) != 0 {
			t.Errorf("Expected dark spot kept dark, got %d", out.Gray(3, 3))
		}
		if out.Gray(0, 0) != 255 {
			t.Errorf("Expected bright background white, got %d", out.Gray(0, 0))
		}
	})
}
