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

import "github.com/videoqc/frame-auditor/stats"

// Signal extraction is indirected through package vars so tests can
// drive the pipeline with scripted scalars, the same way the log
// limiter and time window take a clock.
var (
	sharpness = func(f *Frame) float64 {
		return stats.Sharpness(f.Gray)
	}

	pairStats = func(prev, cur *Frame) stats.PairStats {
		return stats.Pair(prev.Gray, cur.Gray)
	}

	motionPixels = func(prev, cur *Frame, thresh int) int {
		return stats.MotionPixels(prev.Gray, cur.Gray, thresh)
	}
)
