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

// Package stream decodes recordings into the grayscale frame stream
// the classifier consumes. Container videos go through OpenCV; CPTV
// thermal recordings are read natively.
package stream

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"github.com/videoqc/frame-auditor/classify"
	"github.com/videoqc/frame-auditor/stats"
)

// used for synthesised timestamps when the container reports no rate
const assumedFPS = 25.0

// VideoFile reads frames from a container video (mp4, avi, mkv...)
// through OpenCV.
type VideoFile struct {
	capture *gocv.VideoCapture
	raw     gocv.Mat
	fps     float64
	index   int
}

// OpenVideoFile opens a container video for sequential decoding.
func OpenVideoFile(path string) (*VideoFile, error) {
	capture, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", path, err)
	}
	return &VideoFile{
		capture: capture,
		raw:     gocv.NewMat(),
		fps:     capture.Get(gocv.VideoCaptureFPS),
	}, nil
}

// NextFrame decodes the next frame into f. The timestamp comes from
// the container when the decoder provides one; otherwise it is
// synthesised from the frame index and the nominal rate.
func (v *VideoFile) NextFrame(f *classify.Frame) error {
	if ok := v.capture.Read(&v.raw); !ok || v.raw.Empty() {
		return io.EOF
	}

	ts := v.capture.Get(gocv.VideoCapturePosMsec)
	if ts <= 0 && v.index > 0 {
		fps := v.fps
		if fps <= 0 {
			fps = assumedFPS
		}
		ts = float64(v.index) * 1000.0 / fps
	}

	stats.GrayBlur(v.raw, &f.Gray)
	f.TimestampMs = ts
	f.Index = v.index
	v.index++
	return nil
}

// FrameRate returns the container's nominal rate, or zero when the
// decoder doesn't know it.
func (v *VideoFile) FrameRate() float64 {
	return v.fps
}

func (v *VideoFile) Close() error {
	v.raw.Close()
	return v.capture.Close()
}
