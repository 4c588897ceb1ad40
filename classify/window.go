// frame-auditor - find dropped and merged frames in recorded video
//  Copyright (C) 2026, The frame-auditor authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package classify

import "sort"

// MotionWindow is a fixed-capacity FIFO of recent motion magnitudes.
// Its only job is providing a local median that transient spikes
// cannot drag around.
type MotionWindow struct {
	values []float64
	size   int
	last   float64
}

func NewMotionWindow(size int) *MotionWindow {
	return &MotionWindow{
		values: make([]float64, 0, size),
		size:   size,
	}
}

// Push appends a sample, evicting the oldest when the window is full.
func (w *MotionWindow) Push(v float64) {
	if len(w.values) == w.size {
		copy(w.values, w.values[1:])
		w.values = w.values[:w.size-1]
	}
	w.values = append(w.values, v)
	w.last = v
}

func (w *MotionWindow) Len() int {
	return len(w.values)
}

// Last returns the most recently pushed value.
func (w *MotionWindow) Last() float64 {
	return w.last
}

// LocalMedian returns the median of the held values, or the latest
// pushed value while the window is empty.
func (w *MotionWindow) LocalMedian() float64 {
	n := len(w.values)
	if n == 0 {
		return w.last
	}
	sorted := make([]float64, n)
	copy(sorted, w.values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
