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

// sample is the scalar record kept per frame. Classification runs on
// these, never on pixel data, which is what lets the calibration
// prefix be classified retrospectively without holding frames.
type sample struct {
	index       int
	timestampMs float64
	dtMs        float64
	mean        float64
	stdDev      float64
	similarity  float64
	sharpness   float64
	motion      float64
}

// classifier applies the fixed-precedence rule chain to a three-frame
// neighbourhood. First matching rule wins; the order is part of the
// contract.
type classifier struct {
	conf       *Config
	baseline   Baseline
	intervalMs float64
	window     *MotionWindow
}

func newClassifier(conf *Config, baseline Baseline, intervalMs float64) *classifier {
	return &classifier{
		conf:       conf,
		baseline:   baseline,
		intervalMs: intervalMs,
		window:     NewMotionWindow(conf.WindowSize),
	}
}

// classify decides the status of the frame described by s, given the
// sharpness of both neighbours. A timing gap is conclusive on its own
// and is checked before any content signal in both signal families.
func (c *classifier) classify(prevSharp float64, s sample, nextSharp float64) (Status, Reason) {
	if s.dtMs > c.conf.TimingFactor*c.intervalMs {
		if c.conf.Method == MethodMotion {
			c.window.Push(s.motion)
		}
		return StatusFrameDrop, ReasonDeltaTime
	}
	if c.conf.Method == MethodMotion {
		return c.classifyMotion(s)
	}
	return c.classifyStats(prevSharp, s, nextSharp)
}

func (c *classifier) classifyStats(prevSharp float64, s sample, nextSharp float64) (Status, Reason) {
	if s.similarity > c.conf.SimilarityCutoff {
		return StatusFrameDrop, ReasonHighSimilarity
	}
	noiseCeiling := c.baseline.Mu + c.conf.SigmaFactor*c.baseline.Sigma
	if s.mean < noiseCeiling || s.mean < c.conf.NegligibleDiff {
		return StatusFrameDrop, ReasonLowMean
	}
	if s.mean > c.conf.SceneFloor &&
		s.sharpness < c.conf.SharpnessRatio*prevSharp &&
		s.sharpness < c.conf.SharpnessRatio*nextSharp {
		return StatusFrameMerge, ReasonSharpnessDip
	}
	return StatusNormal, ReasonNone
}

// classifyMotion is the motion-magnitude variant: freeze (valley) is
// checked before spike. The current motion value only enters the
// window after the rules have run, so the median and the previous
// value both describe history.
func (c *classifier) classifyMotion(s sample) (Status, Reason) {
	defer c.window.Push(s.motion)

	if c.window.Len() == 0 {
		return StatusNormal, ReasonNone
	}
	median := c.window.LocalMedian()
	if c.window.Len() >= 3 &&
		s.motion < c.conf.ValleyFactor*median &&
		s.motion < c.window.Last() {
		return StatusFrameMerge, ReasonFrameFreeze
	}
	if s.motion > c.conf.SpikeFactor*median {
		return StatusFrameDrop, ReasonHighSpike
	}
	return StatusNormal, ReasonNone
}
