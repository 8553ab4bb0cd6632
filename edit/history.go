package edit

import (
	lzf "github.com/zhuyie/golzf"

	"github.com/seqsense/mapenhancer/grid"
)

type history interface {
	MaxHistory() int
	SetMaxHistory(m int)
	push(r *grid.Raster) *grid.Raster
	undo() (*grid.Raster, bool)
	clear()
}

// snapshot stores one raster state, LZF-compressed when that saves space.
type snapshot struct {
	width, height int
	compressed    bool
	data          []byte
}

type lzfHistory struct {
	snapshots  []snapshot
	maxHistory int
}

func newHistory(n int) history {
	return &lzfHistory{maxHistory: n}
}

func (h *lzfHistory) MaxHistory() int {
	return h.maxHistory
}

func (h *lzfHistory) SetMaxHistory(m int) {
	if m < 0 {
		m = 0
	}
	h.maxHistory = m
}

func (h *lzfHistory) push(r *grid.Raster) *grid.Raster {
	h.snapshots = append(h.snapshots, compressSnapshot(r))
	if len(h.snapshots) > h.MaxHistory()+1 {
		h.snapshots = h.snapshots[1:]
	}
	return r
}

func (h *lzfHistory) undo() (*grid.Raster, bool) {
	if n := len(h.snapshots); n > 1 {
		h.snapshots = h.snapshots[:n-1]
		return reconstructRaster(h.snapshots[n-2]), true
	}
	return nil, false
}

func (h *lzfHistory) clear() {
	h.snapshots = nil
}

func compressSnapshot(r *grid.Raster) snapshot {
	s := snapshot{width: r.Width, height: r.Height}
	buf := make([]byte, len(r.Pix))
	if n, err := lzf.Compress(r.Pix, buf); err == nil && n > 0 {
		s.compressed = true
		s.data = append([]byte(nil), buf[:n]...)
		return s
	}
	// incompressible, keep raw
	s.data = append([]byte(nil), r.Pix...)
	return s
}

func reconstructRaster(s snapshot) *grid.Raster {
	r := grid.New(s.width, s.height)
	if !s.compressed {
		copy(r.Pix, s.data)
		return r
	}
	if _, err := lzf.Decompress(s.data, r.Pix); err != nil {
		// snapshots are produced by compressSnapshot only
		panic(err)
	}
	return r
}
