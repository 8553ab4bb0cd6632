package enhance

const maxSettingsHistoryDefault = 50

// History is a bounded undo/redo stack of Settings snapshots. The last
// pushed snapshot is the current state; consecutive duplicates are dropped.
type History struct {
	past   []Settings
	future []Settings
	max    int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = maxSettingsHistoryDefault
	}
	return &History{max: max}
}

// Push records s as the new current state and clears the redo stack.
func (h *History) Push(s Settings) {
	if n := len(h.past); n > 0 && h.past[n-1] == s {
		return
	}
	h.past = append(h.past, s)
	if len(h.past) > h.max {
		h.past = h.past[1:]
	}
	h.future = h.future[:0]
}

// Undo steps back to the previous snapshot.
func (h *History) Undo() (Settings, bool) {
	if len(h.past) <= 1 {
		return Settings{}, false
	}
	cur := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, cur)
	return h.past[len(h.past)-1], true
}

// Redo re-applies the most recently undone snapshot.
func (h *History) Redo() (Settings, bool) {
	if len(h.future) == 0 {
		return Settings{}, false
	}
	s := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, s)
	return s, true
}

func (h *History) Clear() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}
