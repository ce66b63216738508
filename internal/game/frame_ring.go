package game

import "time"

// frameRing records the last N frame durations so the HUD can show a
// smoothed frame time.
type frameRing struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newFrameRing(size int) *frameRing {
	return &frameRing{buffer: make([]time.Duration, size)}
}

func (r *frameRing) record(d time.Duration) {
	r.buffer[r.nextIndex] = d
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.filled < len(r.buffer) {
		r.filled++
	}
}

// average is the mean of the recorded durations, 0 when empty.
func (r *frameRing) average() time.Duration {
	if r.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < r.filled; i++ {
		sum += r.buffer[i]
	}
	return sum / time.Duration(r.filled)
}

// snapshot returns up to the last n durations, oldest first.
func (r *frameRing) snapshot(n int) []time.Duration {
	if n > r.filled {
		n = r.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := r.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
		out = append(out, r.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
