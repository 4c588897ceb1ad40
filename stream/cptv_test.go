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

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixRange(t *testing.T) {
	pix := [][]uint16{
		{3000, 3100, 3050},
		{2990, 3500, 3200},
	}
	lo, hi := pixRange(pix)
	assert.Equal(t, uint16(2990), lo)
	assert.Equal(t, uint16(3500), hi)
}

func TestScalePixEndpointsAndClamping(t *testing.T) {
	assert.Equal(t, uint8(0), scalePix(3000, 3000, 3510))
	assert.Equal(t, uint8(255), scalePix(3510, 3000, 3510))

	// out of range values clamp
	assert.Equal(t, uint8(0), scalePix(100, 3000, 3510))
	assert.Equal(t, uint8(255), scalePix(60000, 3000, 3510))

	// degenerate range: everything maps to black
	assert.Equal(t, uint8(0), scalePix(3000, 3000, 3000))
}

func TestScalePixIsMonotonic(t *testing.T) {
	const lo, hi = 2800, 3800
	prev := scalePix(lo, lo, hi)
	for v := uint16(lo); v <= hi; v += 50 {
		cur := scalePix(v, lo, hi)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSupportedByExtension(t *testing.T) {
	assert.True(t, Supported("clip.mp4"))
	assert.True(t, Supported("CLIP.MKV"))
	assert.True(t, Supported("/spool/20260826-093000.cptv"))
	assert.False(t, Supported("notes.txt"))
	assert.False(t, Supported("archive.tar.gz"))
}
