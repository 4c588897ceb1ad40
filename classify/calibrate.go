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

// Baseline is the calibrated noise floor - the frame-to-frame
// difference expected from sensor noise alone. Computed once per
// analysis and immutable after that.
type Baseline struct {
	Mu    float64
	Sigma float64
}

// Calibrator averages the difference statistics of the first
// CalibrationFrames frame pairs. Pairs whose mean exceeds the sanity
// bound carry real content motion and must not pollute the baseline.
type Calibrator struct {
	pairsWanted int
	sanityBound float64
	defaults    Baseline

	pairsSeen int
	accepted  int
	muSum     float64
	sigmaSum  float64
}

func NewCalibrator(conf *Config) *Calibrator {
	return &Calibrator{
		pairsWanted: conf.CalibrationFrames - 1,
		sanityBound: conf.SanityBound,
		defaults:    Baseline{Mu: conf.DefaultMu, Sigma: conf.DefaultSigma},
	}
}

// Sample feeds one consecutive-pair statistic from the calibration
// prefix.
func (c *Calibrator) Sample(ps stats.PairStats) {
	if c.Done() {
		return
	}
	c.pairsSeen++
	if ps.Mean > c.sanityBound {
		return
	}
	c.accepted++
	c.muSum += ps.Mean
	c.sigmaSum += ps.StdDev
}

// Done reports whether the calibration prefix has been fully consumed.
func (c *Calibrator) Done() bool {
	return c.pairsSeen >= c.pairsWanted
}

// Baseline returns the calibrated noise floor. Streams too short to
// cover the calibration window, and streams where every pair failed
// the sanity bound, get the fixed defaults.
func (c *Calibrator) Baseline() Baseline {
	if !c.Done() || c.accepted == 0 {
		return c.defaults
	}
	n := float64(c.accepted)
	return Baseline{Mu: c.muSum / n, Sigma: c.sigmaSum / n}
}
