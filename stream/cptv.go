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
	"fmt"
	"io"
	"os"

	cptv "github.com/TheCacophonyProject/go-cptv"
	"github.com/TheCacophonyProject/go-cptv/cptvframe"
	"github.com/TheCacophonyProject/lepton3"
	"gocv.io/x/gocv"

	"github.com/videoqc/frame-auditor/classify"
	"github.com/videoqc/frame-auditor/stats"
)

// CPTVFile reads a CPTV thermal recording. The 16 bit radiometric
// values are mapped to 8 bit gray using the range of the first frame,
// so the scaling stays fixed for the whole stream and frame-to-frame
// differences remain comparable.
type CPTVFile struct {
	file   *os.File
	reader *cptv.Reader
	frame  *cptvframe.Frame
	raw    gocv.Mat

	lo, hi  uint16
	ranged  bool
	firstMs float64
	index   int
}

// OpenCPTVFile opens a CPTV recording for sequential decoding.
func OpenCPTVFile(path string) (*CPTVFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	reader, err := cptv.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open %s: %v", path, err)
	}
	return &CPTVFile{
		file:   file,
		reader: reader,
		frame:  reader.EmptyFrame(),
		raw:    gocv.NewMatWithSize(reader.ResY(), reader.ResX(), gocv.MatTypeCV8U),
	}, nil
}

func (c *CPTVFile) NextFrame(f *classify.Frame) error {
	if err := c.reader.ReadFrame(c.frame); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}

	if !c.ranged {
		c.lo, c.hi = pixRange(c.frame.Pix)
		c.firstMs = float64(c.frame.Status.TimeOn.Milliseconds())
		c.ranged = true
	}

	for y, row := range c.frame.Pix {
		for x, v := range row {
			c.raw.SetUCharAt(y, x, scalePix(v, c.lo, c.hi))
		}
	}
	stats.GrayBlur(c.raw, &f.Gray)

	f.TimestampMs = float64(c.frame.Status.TimeOn.Milliseconds()) - c.firstMs
	f.Index = c.index
	c.index++
	return nil
}

// FrameRate returns the camera rate from the recording header, falling
// back to the Lepton rate for old files without one.
func (c *CPTVFile) FrameRate() float64 {
	if fps := c.reader.FPS(); fps > 0 {
		return float64(fps)
	}
	return float64(lepton3.FramesHz)
}

func (c *CPTVFile) Close() error {
	c.raw.Close()
	return c.file.Close()
}

// pixRange finds the min and max radiometric values in a frame.
func pixRange(pix [][]uint16) (lo, hi uint16) {
	lo, hi = pix[0][0], pix[0][0]
	for _, row := range pix {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// scalePix maps a radiometric value into 8 bit gray using a fixed
// range. Values outside the range clamp rather than wrap.
func scalePix(v, lo, hi uint16) uint8 {
	if hi <= lo {
		return 0
	}
	if v <= lo {
		return 0
	}
	if v >= hi {
		return 255
	}
	return uint8(uint32(v-lo) * 255 / uint32(hi-lo))
}
