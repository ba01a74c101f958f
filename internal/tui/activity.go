package tui

import "strings"

// sparkBlocks are the eight levels of a sparkline cell.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// ActivityHistory is a fixed-capacity ring of per-tick event counts. The
// oldest sample is overwritten once the ring is full.
type ActivityHistory struct {
	samples []int
	head    int
	count   int
}

// NewActivityHistory creates a history holding up to capacity samples.
func NewActivityHistory(capacity int) *ActivityHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &ActivityHistory{samples: make([]int, capacity)}
}

// Push appends a sample.
func (h *ActivityHistory) Push(v int) {
	h.samples[h.head] = v
	h.head = (h.head + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len returns the number of samples held.
func (h *ActivityHistory) Len() int { return h.count }

// Slice returns the samples, oldest first.
func (h *ActivityHistory) Slice() []int {
	out := make([]int, h.count)
	start := (h.head - h.count + len(h.samples)) % len(h.samples)
	for i := range out {
		out[i] = h.samples[(start+i)%len(h.samples)]
	}
	return out
}

// Reset empties the history.
func (h *ActivityHistory) Reset() {
	h.head = 0
	h.count = 0
}

// Sparkline renders the last width samples scaled to the largest one.
// An empty history renders as an empty string.
func (h *ActivityHistory) Sparkline(width int) string {
	data := h.Slice()
	if width > 0 && len(data) > width {
		data = data[len(data)-width:]
	}
	if len(data) == 0 {
		return ""
	}
	peak := 0
	for _, v := range data {
		peak = max(peak, v)
	}
	var b strings.Builder
	for _, v := range data {
		level := 0
		if peak > 0 && v > 0 {
			level = min(1+v*(len(sparkBlocks)-1)/peak, len(sparkBlocks)-1)
		}
		b.WriteRune(sparkBlocks[level])
	}
	return b.String()
}
