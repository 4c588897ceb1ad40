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

// Package stats computes the per-frame and frame-pair statistics the
// classifier runs on: difference mean and standard deviation, a PSNR
// style similarity score, Laplacian variance sharpness and a binarised
// motion pixel count.
package stats

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// BlurKernel is the Gaussian kernel applied before any differencing.
// Small on purpose: it only has to knock down sensor noise, not
// smooth out real detail.
const BlurKernel = 3

// mseFloor is the mean squared difference below which two frames are
// treated as identical and similarity becomes +Inf.
const mseFloor = 1e-9

// PairStats describes how different two consecutive frames are.
type PairStats struct {
	Mean       float64
	StdDev     float64
	Similarity float64
}

// GrayBlur converts a decoded frame of any channel depth to a single
// channel grayscale buffer and applies the noise blur. dst is reused
// between calls.
func GrayBlur(src gocv.Mat, dst *gocv.Mat) {
	switch src.Channels() {
	case 1:
		gocv.GaussianBlur(src, dst, image.Pt(BlurKernel, BlurKernel), 0, 0, gocv.BorderDefault)
	case 4:
		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(src, &gray, gocv.ColorBGRAToGray)
		gocv.GaussianBlur(gray, dst, image.Pt(BlurKernel, BlurKernel), 0, 0, gocv.BorderDefault)
	default:
		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
		gocv.GaussianBlur(gray, dst, image.Pt(BlurKernel, BlurKernel), 0, 0, gocv.BorderDefault)
	}
}

// Pair computes the difference statistics between two same-size
// grayscale buffers. Mean and StdDev are in 8-bit gray levels.
// Similarity is 10*log10(255^2/mse) and exactly +Inf when the mean
// squared difference is at or below the numeric floor - near identical
// frames are a legitimate input, not an error.
func Pair(a, b gocv.Mat) PairStats {
	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(a, b, &diff)

	meanMat := gocv.NewMat()
	defer meanMat.Close()
	stdMat := gocv.NewMat()
	defer stdMat.Close()
	gocv.MeanStdDev(diff, &meanMat, &stdMat)

	pixels := float64(diff.Rows() * diff.Cols())
	l2 := gocv.Norm(diff, gocv.NormL2)
	mse := l2 * l2 / pixels

	similarity := math.Inf(1)
	if mse > mseFloor {
		similarity = 10 * math.Log10(255*255/mse)
	}

	return PairStats{
		Mean:       meanMat.GetDoubleAt(0, 0),
		StdDev:     stdMat.GetDoubleAt(0, 0),
		Similarity: similarity,
	}
}

// Sharpness returns the variance of the Laplacian response of a
// grayscale buffer. A frame blended from two source frames loses edge
// energy, so its value drops well below sharp neighbours.
func Sharpness(m gocv.Mat) float64 {
	lap := gocv.NewMat()
	defer lap.Close()
	gocv.Laplacian(m, &lap, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	meanMat := gocv.NewMat()
	defer meanMat.Close()
	stdMat := gocv.NewMat()
	defer stdMat.Close()
	gocv.MeanStdDev(lap, &meanMat, &stdMat)

	std := stdMat.GetDoubleAt(0, 0)
	return std * std
}

// MotionPixels counts pixels whose absolute difference between the two
// buffers exceeds thresh. This is the alternative scalar motion signal
// used by the motion-magnitude classifier.
func MotionPixels(a, b gocv.Mat, thresh int) int {
	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(a, b, &diff)
	gocv.Threshold(diff, &diff, float32(thresh), 255, gocv.ThresholdBinary)
	return gocv.CountNonZero(diff)
}
