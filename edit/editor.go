// Package edit provides an editor holding the working raster of a map with
// snapshot-based undo for filter passes and manual annotation stamps.
package edit

import (
	"errors"

	"github.com/seqsense/mapenhancer/enhance"
	"github.com/seqsense/mapenhancer/grid"
	"github.com/seqsense/mapenhancer/grid/filter"
)

const maxHistoryDefault = 4

var errNoRaster = errors.New("no raster loaded")

// Editor owns the current working raster. Every mutating operation pushes
// the new state onto the snapshot history, so Undo restores the exact
// previous buffer.
type Editor struct {
	history
	raster *grid.Raster
}

func NewEditor() *Editor {
	return &Editor{
		history: newHistory(maxHistoryDefault),
	}
}

// SetRaster resets the editor to a copy of r.
func (e *Editor) SetRaster(r *grid.Raster) {
	e.clear()
	e.raster = e.push(r.Clone())
}

// Raster returns the current working raster. Callers must not mutate it.
func (e *Editor) Raster() *grid.Raster {
	return e.raster
}

// Apply runs a filter primitive on the current raster.
func (e *Editor) Apply(f filter.Filter) error {
	if e.raster == nil {
		return errNoRaster
	}
	out, err := f.Filter(e.raster)
	if err != nil {
		return err
	}
	e.raster = e.push(out)
	return nil
}

// ApplySettings runs the full enhancement pipeline.
func (e *Editor) ApplySettings(s enhance.Settings) error {
	if e.raster == nil {
		return errNoRaster
	}
	e.raster = e.push(enhance.Process(e.raster, s))
	return nil
}

// DrawLine stamps a line annotation.
func (e *Editor) DrawLine(x1, y1, x2, y2 int, c filter.Color) error {
	if e.raster == nil {
		return errNoRaster
	}
	e.raster = e.push(filter.DrawLine(e.raster, x1, y1, x2, y2, c))
	return nil
}

// DrawRect stamps a filled rectangle annotation.
func (e *Editor) DrawRect(x, y, w, h int, c filter.Color) error {
	if e.raster == nil {
		return errNoRaster
	}
	e.raster = e.push(filter.DrawRect(e.raster, x, y, w, h, c))
	return nil
}

// Undo reverts to the previous snapshot.
func (e *Editor) Undo() bool {
	r, ok := e.history.undo()
	if ok {
		e.raster = r
	}
	return ok
}

// Reset drops the raster and all history.
func (e *Editor) Reset() {
	e.clear()
	e.raster = nil
}
