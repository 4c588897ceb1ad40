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

import "gocv.io/x/gocv"

// Frame is one preprocessed (grayscale, blurred) frame plus its
// position in the stream. The pixel buffer belongs to the processor's
// frame loop; sources decode into it, nothing retains it past the
// neighbourhood.
type Frame struct {
	Gray        gocv.Mat
	TimestampMs float64
	Index       int
}

// FrameLoop is a ring of pre-allocated frame slots addressed by a
// rotating index. The analysis neighbourhood needs three frames alive
// (previous, current, next) and never copies pixels between slots.
type FrameLoop struct {
	size    int
	current int
	frames  []*Frame
}

func NewFrameLoop(size int) *FrameLoop {
	frames := make([]*Frame, size)
	for i := range frames {
		frames[i] = &Frame{Gray: gocv.NewMat()}
	}
	return &FrameLoop{size: size, frames: frames}
}

// Current returns the slot the next decoded frame goes into.
func (fl *FrameLoop) Current() *Frame {
	return fl.frames[fl.current]
}

// Previous returns the most recently completed slot.
func (fl *FrameLoop) Previous() *Frame {
	return fl.frames[(fl.current+fl.size-1)%fl.size]
}

// Move rotates to the next slot and returns it.
func (fl *FrameLoop) Move() *Frame {
	fl.current = (fl.current + 1) % fl.size
	return fl.Current()
}

// Close releases the underlying pixel buffers.
func (fl *FrameLoop) Close() {
	for _, f := range fl.frames {
		f.Gray.Close()
	}
}
