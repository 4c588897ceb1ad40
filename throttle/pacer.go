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

// Package throttle paces spool directory analysis. Video decoding is
// expensive and the auditor shares its host with the services that
// produce the recordings, so a flood of new files must not turn into
// a flood of concurrent decode work.
package throttle

import (
	"time"

	"github.com/juju/ratelimit"
)

type PacerConfig struct {
	ApplyPacing bool          `yaml:"apply-pacing"`
	MaxBacklog  int64         `yaml:"max-backlog"`
	MinInterval time.Duration `yaml:"min-interval"`
}

func DefaultPacerConfig() PacerConfig {
	return PacerConfig{
		ApplyPacing: true,
		MaxBacklog:  4,
		MinInterval: time.Minute,
	}
}

// NewPacer returns a Pacer driven by the real clock.
func NewPacer(conf PacerConfig) *Pacer {
	return NewPacerWithClock(conf, new(realClock))
}

func NewPacerWithClock(conf PacerConfig, clock ratelimit.Clock) *Pacer {
	// The token bucket tracks the number of analyses allowed to
	// start. It holds a burst of MaxBacklog and regains one analysis
	// every MinInterval.
	rate := 1.0 / conf.MinInterval.Seconds()
	return &Pacer{
		enabled: conf.ApplyPacing,
		bucket:  ratelimit.NewBucketWithRateAndClock(rate, conf.MaxBacklog, clock),
	}
}

// Pacer limits how often a new analysis may begin. With pacing
// disabled every TryStart succeeds.
type Pacer struct {
	enabled bool
	bucket  *ratelimit.Bucket
}

// TryStart consumes one analysis credit if one is available. It never
// blocks; a false return means try again on a later spool sweep.
func (p *Pacer) TryStart() bool {
	if !p.enabled {
		return true
	}
	return p.bucket.TakeAvailable(1) > 0
}

// Available returns the number of analyses that could start now.
func (p *Pacer) Available() int64 {
	if !p.enabled {
		return 1
	}
	return p.bucket.Available()
}

// realClock implements ratelimit.Clock in terms of standard time functions.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
