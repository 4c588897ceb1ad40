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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowNeverExceedsCapacity(t *testing.T) {
	w := NewMotionWindow(7)
	for i := 0; i < 7+5; i++ {
		w.Push(float64(i))
		assert.LessOrEqual(t, w.Len(), 7)
	}
	assert.Equal(t, 7, w.Len())
}

func TestWindowEvictsOldestFirst(t *testing.T) {
	w := NewMotionWindow(3)
	w.Push(1)
	w.Push(2)
	w.Push(3)
	w.Push(100)
	// 1 is gone, so the median of {2, 3, 100} is 3.
	assert.Equal(t, 3.0, w.LocalMedian())
	w.Push(100)
	// now {3, 100, 100}
	assert.Equal(t, 100.0, w.LocalMedian())
}

func TestWindowMedian(t *testing.T) {
	w := NewMotionWindow(5)
	w.Push(9)
	w.Push(1)
	w.Push(5)
	assert.Equal(t, 5.0, w.LocalMedian())
	w.Push(7)
	assert.Equal(t, 6.0, w.LocalMedian())
}

func TestEmptyWindowMedianIsLastPushed(t *testing.T) {
	w := NewMotionWindow(3)
	assert.Equal(t, 0.0, w.LocalMedian())
	w.Push(42)
	assert.Equal(t, 42.0, w.Last())
}
