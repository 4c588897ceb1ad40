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
	"errors"
	"fmt"
)

// Signal families the classifier can run on.
const (
	MethodStats  = "stats"
	MethodMotion = "motion"
)

// Config carries every threshold the classifier uses. The defaults are
// the canonical values; anything can be overridden from the yaml
// config file.
type Config struct {
	// Method selects the signal family: "stats" (difference mean /
	// similarity / sharpness) or "motion" (binarised motion pixel
	// count against a local median).
	Method string `yaml:"method"`

	// CalibrationFrames is the length of the prefix used to estimate
	// the noise floor.
	CalibrationFrames int `yaml:"calibration-frames"`
	// SanityBound rejects calibration pairs whose difference mean is
	// real content motion rather than noise.
	SanityBound float64 `yaml:"sanity-bound"`
	// DefaultMu and DefaultSigma are the fallback noise floor used
	// when no calibration pair qualifies.
	DefaultMu    float64 `yaml:"default-mu"`
	DefaultSigma float64 `yaml:"default-sigma"`

	// TimingFactor: a frame arriving later than this multiple of the
	// nominal frame interval is a drop regardless of content.
	TimingFactor float64 `yaml:"timing-factor"`
	// SimilarityCutoff: similarity (dB) above which consecutive
	// frames are near duplicates.
	SimilarityCutoff float64 `yaml:"similarity-cutoff"`
	// SigmaFactor scales the calibrated sigma for the adaptive
	// low-motion threshold.
	SigmaFactor float64 `yaml:"sigma-factor"`
	// NegligibleDiff is the absolute difference mean below which
	// frame-to-frame change is negligible whatever the noise floor.
	NegligibleDiff float64 `yaml:"negligible-diff"`
	// SceneFloor gates the merge rule: a blended frame only makes
	// sense when there is real scene motion.
	SceneFloor float64 `yaml:"scene-floor"`
	// SharpnessRatio: a frame this much blunter than both neighbours
	// looks like a cross-blend.
	SharpnessRatio float64 `yaml:"sharpness-ratio"`

	// WindowSize is the motion window capacity (motion method only).
	WindowSize int `yaml:"window-size"`
	// SpikeFactor and ValleyFactor are the local-median-relative
	// thresholds of the motion method.
	SpikeFactor  float64 `yaml:"spike-factor"`
	ValleyFactor float64 `yaml:"valley-factor"`
	// MotionPixelThresh is the binarisation level for the motion
	// pixel count.
	MotionPixelThresh int `yaml:"motion-pixel-thresh"`

	// FallbackFPS is used when the container does not report a frame
	// rate.
	FallbackFPS float64 `yaml:"fallback-fps"`

	Verbose bool `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Method:            MethodStats,
		CalibrationFrames: 15,
		SanityBound:       1.0,
		DefaultMu:         0.05,
		DefaultSigma:      0.02,
		TimingFactor:      1.5,
		SimilarityCutoff:  50.0,
		SigmaFactor:       2.0,
		NegligibleDiff:    0.2,
		SceneFloor:        1.5,
		SharpnessRatio:    0.4,
		WindowSize:        7,
		SpikeFactor:       1.5,
		ValleyFactor:      0.35,
		MotionPixelThresh: 10,
		FallbackFPS:       25,
	}
}

func (conf *Config) Validate() error {
	if conf.Method != MethodStats && conf.Method != MethodMotion {
		return fmt.Errorf("method must be %q or %q", MethodStats, MethodMotion)
	}
	if conf.CalibrationFrames < 2 {
		return errors.New("calibration-frames must be at least 2")
	}
	if conf.WindowSize < 1 {
		return errors.New("window-size must be at least 1")
	}
	if conf.TimingFactor <= 1 {
		return errors.New("timing-factor must be greater than 1")
	}
	if conf.SharpnessRatio <= 0 || conf.SharpnessRatio >= 1 {
		return errors.New("sharpness-ratio must be between 0 and 1")
	}
	if conf.ValleyFactor >= conf.SpikeFactor {
		return errors.New("valley-factor must be smaller than spike-factor")
	}
	if conf.FallbackFPS <= 0 {
		return errors.New("fallback-fps must be positive")
	}
	return nil
}
