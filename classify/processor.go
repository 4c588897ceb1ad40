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

// Package classify turns a stream of preprocessed grayscale frames
// into an ordered sequence of per-frame defect reports. One Processor
// per video; feed frames in order, then Finish.
package classify

import (
	"log"
)

// Listener gets told about defects as they are classified. All calls
// happen on the goroutine driving the processor.
type Listener interface {
	DefectFound(FrameReport)
}

// Processor is one analysis session. It owns the three-slot frame
// ring, the calibrator and the classifier state; nothing is shared
// between sessions, so independent videos can run on independent
// goroutines with a Processor each.
type Processor struct {
	conf       *Config
	intervalMs float64
	loop       *FrameLoop
	calib      *Calibrator
	cls        *classifier
	listener   Listener

	samples      []sample
	nextClassify int
	reports      []FrameReport
	frames       int
}

// NewProcessor creates a session. frameRate is the stream's nominal
// rate; zero or negative falls back to the configured default.
func NewProcessor(conf *Config, frameRate float64, listener Listener) *Processor {
	if frameRate <= 0 {
		frameRate = conf.FallbackFPS
	}
	return &Processor{
		conf:         conf,
		intervalMs:   1000.0 / frameRate,
		loop:         NewFrameLoop(3),
		calib:        NewCalibrator(conf),
		listener:     listener,
		nextClassify: 1,
	}
}

// Current returns the ring slot the next frame must be decoded into.
func (p *Processor) Current() *Frame {
	return p.loop.Current()
}

// Process consumes the frame previously obtained from Current. All
// pixel work happens here, at arrival; classification itself runs on
// the retained scalar record once the successor's sharpness is known
// and the noise floor exists.
func (p *Processor) Process(frame *Frame) {
	s := sample{
		index:       p.frames,
		timestampMs: frame.TimestampMs,
		sharpness:   sharpness(frame),
	}

	if p.frames > 0 {
		prev := p.loop.Previous()
		ps := pairStats(prev, frame)
		s.dtMs = frame.TimestampMs - prev.TimestampMs
		s.mean = ps.Mean
		s.stdDev = ps.StdDev
		s.similarity = ps.Similarity
		s.motion = float64(motionPixels(prev, frame, p.conf.MotionPixelThresh))

		if !p.calib.Done() {
			p.calib.Sample(ps)
		}
	}

	p.samples = append(p.samples, s)
	p.frames++
	p.loop.Move()
	p.flush(false)
}

// flush classifies every sample whose successor has arrived. Until
// calibration completes nothing is classified; the backlog is drained
// the moment the baseline exists, which keeps the one-pass N-2 report
// invariant without retaining any pixel data.
func (p *Processor) flush(final bool) {
	if p.cls == nil {
		if !p.calib.Done() && !final {
			return
		}
		p.cls = newClassifier(p.conf, p.calib.Baseline(), p.intervalMs)
		if p.conf.Verbose {
			b := p.calib.Baseline()
			log.Printf("noise floor: mu=%.4f sigma=%.4f", b.Mu, b.Sigma)
		}
	}

	for p.nextClassify+1 < len(p.samples) {
		i := p.nextClassify
		prev, cur, next := p.samples[i-1], p.samples[i], p.samples[i+1]
		status, reason := p.cls.classify(prev.sharpness, cur, next.sharpness)

		report := FrameReport{
			Index:       cur.index,
			TimestampMs: cur.timestampMs,
			Status:      status,
			Reason:      reason,
			Sharpness:   cur.sharpness,
			Motion:      cur.motion,
		}
		p.reports = append(p.reports, report)
		p.nextClassify++

		if status != StatusNormal {
			if p.conf.Verbose {
				log.Printf("frame %d (%.1fms): %s %s", cur.index, cur.timestampMs, status, reason)
			}
			if p.listener != nil {
				p.listener.DefectFound(report)
			}
		}
	}
}

// Finish classifies whatever is still pending and returns the ordered
// report sequence. A stream of N frames yields exactly N-2 reports.
func (p *Processor) Finish() *Result {
	p.flush(true)
	return &Result{Reports: p.reports, FrameCount: p.frames}
}

// Close releases the frame ring's pixel buffers.
func (p *Processor) Close() {
	p.loop.Close()
}
