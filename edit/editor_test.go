package edit

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/seqsense/mapenhancer/enhance"
	"github.com/seqsense/mapenhancer/grid"
	"github.com/seqsense/mapenhancer/grid/filter"
)

func TestEditor_SetRaster(t *testing.T) {
	e := NewEditor()
	src := grid.NewGray(3, 3, grid.GrayFree)
	e.SetRaster(src)
	src.SetGray(0, 0, 0)
	if e.Raster().Gray(0, 0) != grid.GrayFree {
		t.Error("Expected editor to hold an independent copy")
	}
}

func TestEditor_NoRaster(t *testing.T) {
	e := NewEditor()
	if err := e.Apply(filter.Binarize{Level: 0.5}); !errors.Is(err, errNoRaster) {
		t.Errorf("Expected errNoRaster, got %v", err)
	}
	if err := e.DrawLine(0, 0, 1, 1, filter.ColorObstacle); !errors.Is(err, errNoRaster) {
		t.Errorf("Expected errNoRaster, got %v", err)
	}
	if e.Undo() {
		t.Error("Expected undo to fail on an empty editor")
	}
}

func TestEditor_DrawUndo(t *testing.T) {
	e := NewEditor()
	base := grid.NewGray(8, 8, grid.GrayFree)
	e.SetRaster(base)

	if err := e.DrawLine(0, 0, 7, 7, filter.ColorObstacle); err != nil {
		t.Fatal(err)
	}
	if e.Raster().Gray(3, 3) != grid.GrayOccupied {
		t.Fatal("Expected line stamped")
	}
	if !e.Undo() {
		t.Fatal("Expected undo to succeed")
	}
	if !base.Equal(e.Raster()) {
		t.Error("Expected undo to restore the exact previous raster")
	}
	if e.Undo() {
		t.Error("Expected second undo to fail at the initial snapshot")
	}
}

func TestEditor_ApplySettings(t *testing.T) {
	e := NewEditor()
	r := grid.NewGray(5, 5, grid.GrayFree)
	r.SetGray(2, 2, grid.GrayOccupied)
	e.SetRaster(r)
	if err := e.ApplySettings(enhance.Settings{Opening: 1}); err != nil {
		t.Fatal(err)
	}
	if e.Raster().Gray(2, 2) != grid.GrayFree {
		t.Errorf("Expected speck removed, got %d", e.Raster().Gray(2, 2))
	}
	if !e.Undo() {
		t.Fatal("Expected undo to succeed")
	}
	if e.Raster().Gray(2, 2) != grid.GrayOccupied {
		t.Error("Expected speck restored by undo")
	}
}

func TestEditor_HistoryBound(t *testing.T) {
	e := NewEditor()
	e.SetMaxHistory(2)
	e.SetRaster(grid.NewGray(4, 4, grid.GrayFree))
	for i := 0; i < 5; i++ {
		if err := e.DrawRect(i%4, 0, 1, 1, filter.ColorObstacle); err != nil {
			t.Fatal(err)
		}
	}
	n := 0
	for e.Undo() {
		n++
	}
	if n != 2 {
		t.Errorf("Expected 2 undo steps with max history 2, got %d", n)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("Compressible", func(t *testing.T) {
		r := grid.NewGray(32, 32, grid.GrayUnknown)
		s := compressSnapshot(r)
		if !s.compressed {
			t.Error("Expected uniform raster to compress")
		}
		if !r.Equal(reconstructRaster(s)) {
			t.Error("Expected snapshot to round-trip")
		}
	})
	t.Run("Incompressible", func(t *testing.T) {
		r := grid.New(16, 16)
		rnd := rand.New(rand.NewSource(1))
		for i := range r.Pix {
			r.Pix[i] = byte(rnd.Intn(256))
		}
		s := compressSnapshot(r)
		if !r.Equal(reconstructRaster(s)) {
			t.Error("Expected snapshot to round-trip")
		}
	})
}
