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
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/videoqc/frame-auditor/stats"
)

// scriptedSource feeds timestamps only; pixel signals come from the
// stubbed signal funcs, keyed by frame index.
type scriptedSource struct {
	ts   []float64
	rate float64
	next int
}

func (s *scriptedSource) NextFrame(f *Frame) error {
	if s.next >= len(s.ts) {
		return io.EOF
	}
	f.Index = s.next
	f.TimestampMs = s.ts[s.next]
	s.next++
	return nil
}

func (s *scriptedSource) FrameRate() float64 { return s.rate }
func (s *scriptedSource) Close() error       { return nil }

type script struct {
	sharp  map[int]float64
	pair   map[int]stats.PairStats
	motion map[int]float64
}

// steadyScript is a scene with constant clear motion: every frame
// classifies NORMAL unless the test overrides something.
func steadyScript(frames int) *script {
	sc := &script{
		sharp:  map[int]float64{},
		pair:   map[int]stats.PairStats{},
		motion: map[int]float64{},
	}
	for i := 0; i < frames; i++ {
		sc.sharp[i] = 100
		sc.pair[i] = stats.PairStats{Mean: 4.0, StdDev: 2.0, Similarity: 28.0}
		sc.motion[i] = 100
	}
	return sc
}

func (sc *script) install(t *testing.T) {
	oldSharp, oldPair, oldMotion := sharpness, pairStats, motionPixels
	sharpness = func(f *Frame) float64 { return sc.sharp[f.Index] }
	pairStats = func(prev, cur *Frame) stats.PairStats { return sc.pair[cur.Index] }
	motionPixels = func(prev, cur *Frame, thresh int) int { return int(sc.motion[cur.Index]) }
	t.Cleanup(func() {
		sharpness, pairStats, motionPixels = oldSharp, oldPair, oldMotion
	})
}

func uniformTimestamps(frames int, intervalMs float64) []float64 {
	ts := make([]float64, frames)
	for i := range ts {
		ts[i] = float64(i) * intervalMs
	}
	return ts
}

func runScript(t *testing.T, sc *script, ts []float64, conf Config) *Result {
	sc.install(t)
	src := &scriptedSource{ts: ts, rate: 25}
	return Analyse(src, &conf, nil)
}

func TestReportCountIsFramesMinusTwo(t *testing.T) {
	const frames = 20
	conf := DefaultConfig()
	result := runScript(t, steadyScript(frames), uniformTimestamps(frames, 40), conf)

	require.Len(t, result.Reports, frames-2)
	assert.Equal(t, frames, result.FrameCount)
	for i, report := range result.Reports {
		assert.Equal(t, i+1, report.Index)
		if i > 0 {
			assert.Greater(t, report.TimestampMs, result.Reports[i-1].TimestampMs)
		}
		assert.Equal(t, StatusNormal, report.Status)
	}
}

func TestTooFewFramesYieldNoReports(t *testing.T) {
	conf := DefaultConfig()
	for frames := 0; frames < 3; frames++ {
		result := runScript(t, steadyScript(frames), uniformTimestamps(frames, 40), conf)
		assert.Empty(t, result.Reports, "%d frames must yield no reports", frames)
		assert.Equal(t, frames, result.FrameCount)
	}
}

func TestAnalysisIsDeterministic(t *testing.T) {
	const frames = 25
	sc := steadyScript(frames)
	sc.pair[8] = stats.PairStats{Similarity: math.Inf(1)}
	sc.sharp[15] = 30

	conf := DefaultConfig()
	first := runScript(t, sc, uniformTimestamps(frames, 40), conf)
	second := runScript(t, sc, uniformTimestamps(frames, 40), conf)
	assert.Equal(t, first.Reports, second.Reports)
}

func TestDuplicateFrameReported(t *testing.T) {
	const frames = 20
	sc := steadyScript(frames)
	sc.pair[9] = stats.PairStats{Mean: 0, StdDev: 0, Similarity: math.Inf(1)}

	result := runScript(t, sc, uniformTimestamps(frames, 40), DefaultConfig())
	report := result.Reports[8] // frame 9
	assert.Equal(t, 9, report.Index)
	assert.Equal(t, StatusFrameDrop, report.Status)
	assert.Equal(t, ReasonHighSimilarity, report.Reason)
}

func TestTimingGapDominatesFabricatedContent(t *testing.T) {
	const frames = 20
	sc := steadyScript(frames)
	ts := uniformTimestamps(frames, 40)
	// frame 10 arrives 120ms after frame 9; shift the rest with it so
	// only one gap exists.
	for i := 10; i < frames; i++ {
		ts[i] += 80
	}
	// even an all-zero difference cannot override the gap
	sc.pair[10] = stats.PairStats{Mean: 0, StdDev: 0, Similarity: math.Inf(1)}

	result := runScript(t, sc, ts, DefaultConfig())
	report := result.Reports[9]
	assert.Equal(t, 10, report.Index)
	assert.Equal(t, StatusFrameDrop, report.Status)
	assert.Equal(t, ReasonDeltaTime, report.Reason)
}

func TestMergeReportedForSharpnessDip(t *testing.T) {
	const frames = 20
	sc := steadyScript(frames)
	sc.sharp[12] = 30 // 0.3x both neighbours

	result := runScript(t, sc, uniformTimestamps(frames, 40), DefaultConfig())
	report := result.Reports[11]
	assert.Equal(t, 12, report.Index)
	assert.Equal(t, StatusFrameMerge, report.Status)
	assert.Equal(t, ReasonSharpnessDip, report.Reason)
	assert.Equal(t, 30.0, report.Sharpness)
}

// calibration happens on a still prefix, then the scene starts moving:
// the prefix frames are still classified (as duplicates, correctly)
// and the baseline comes from the prefix noise.
func TestCalibrationPrefixIsStillClassified(t *testing.T) {
	const frames = 20
	sc := steadyScript(frames)
	conf := DefaultConfig()
	for i := 1; i < conf.CalibrationFrames; i++ {
		sc.pair[i] = stats.PairStats{Mean: 0.04, StdDev: 0.01, Similarity: 52.0}
	}

	result := runScript(t, sc, uniformTimestamps(frames, 40), conf)
	require.Len(t, result.Reports, frames-2)
	for i := 1; i < conf.CalibrationFrames-1; i++ {
		assert.Equal(t, StatusFrameDrop, result.Reports[i-1].Status, "prefix frame %d", i)
	}
	for i := conf.CalibrationFrames; i < frames-1; i++ {
		assert.Equal(t, StatusNormal, result.Reports[i-1].Status, "frame %d", i)
	}
}

func TestShortStreamUsesDefaultBaseline(t *testing.T) {
	// 6 frames: far fewer than the 15-frame calibration window, so the
	// default noise floor must be in force. A pair mean of 0.08 sits
	// under default mu + 2*sigma = 0.09 and must be dropped.
	const frames = 6
	sc := steadyScript(frames)
	sc.pair[3] = stats.PairStats{Mean: 0.08, StdDev: 0.01, Similarity: 40.0}

	result := runScript(t, sc, uniformTimestamps(frames, 40), DefaultConfig())
	require.Len(t, result.Reports, frames-2)
	assert.Equal(t, StatusFrameDrop, result.Reports[2].Status)
	assert.Equal(t, ReasonLowMean, result.Reports[2].Reason)
}

type recordingListener struct {
	defects []FrameReport
}

func (l *recordingListener) DefectFound(r FrameReport) {
	l.defects = append(l.defects, r)
}

func TestListenerSeesOnlyDefects(t *testing.T) {
	const frames = 20
	sc := steadyScript(frames)
	sc.pair[9] = stats.PairStats{Similarity: math.Inf(1)}
	sc.sharp[14] = 20

	sc.install(t)
	listener := &recordingListener{}
	conf := DefaultConfig()
	src := &scriptedSource{ts: uniformTimestamps(frames, 40), rate: 25}
	Analyse(src, &conf, listener)

	require.Len(t, listener.defects, 2)
	assert.Equal(t, 9, listener.defects[0].Index)
	assert.Equal(t, 14, listener.defects[1].Index)
}

// a source failing mid-stream truncates: everything classified so far
// is still returned.
type failingSource struct {
	scriptedSource
	failAt int
}

func (s *failingSource) NextFrame(f *Frame) error {
	if s.next == s.failAt {
		return io.ErrUnexpectedEOF
	}
	return s.scriptedSource.NextFrame(f)
}

func TestMidStreamFailureReturnsPartialReports(t *testing.T) {
	const frames = 30
	sc := steadyScript(frames)
	sc.install(t)

	src := &failingSource{
		scriptedSource: scriptedSource{ts: uniformTimestamps(frames, 40), rate: 25},
		failAt:         20,
	}
	conf := DefaultConfig()
	result := Analyse(src, &conf, nil)

	assert.Equal(t, 20, result.FrameCount)
	assert.Len(t, result.Reports, 18)
}
