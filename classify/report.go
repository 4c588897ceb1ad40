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

// Status is the verdict for one classified frame.
type Status int8

const (
	StatusNormal Status = iota
	StatusFrameDrop
	StatusFrameMerge
)

func (s Status) String() string {
	switch s {
	case StatusFrameDrop:
		return "FRAME_DROP"
	case StatusFrameMerge:
		return "FRAME_MERGE"
	default:
		return "NORMAL"
	}
}

func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Reason records which rule fired.
type Reason int8

const (
	ReasonNone Reason = iota
	ReasonDeltaTime
	ReasonHighSimilarity
	ReasonLowMean
	ReasonSharpnessDip
	ReasonHighSpike
	ReasonFrameFreeze
)

func (r Reason) String() string {
	switch r {
	case ReasonDeltaTime:
		return "DELTA_TIME"
	case ReasonHighSimilarity:
		return "HIGH_SIMILARITY"
	case ReasonLowMean:
		return "LOW_MEAN_THRESHOLD"
	case ReasonSharpnessDip:
		return "SHARPNESS_DIP"
	case ReasonHighSpike:
		return "HIGH_SPIKE"
	case ReasonFrameFreeze:
		return "FRAME_FREEZE"
	default:
		return ""
	}
}

func (r Reason) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// FrameReport is the per-frame output record. One report per interior
// frame; the first and last frame of a stream never get one because
// classification needs both neighbours.
type FrameReport struct {
	Index       int     `yaml:"frame"`
	TimestampMs float64 `yaml:"timestamp-ms"`
	Status      Status  `yaml:"status"`
	Reason      Reason  `yaml:"reason,omitempty"`
	Sharpness   float64 `yaml:"sharpness"`
	Motion      float64 `yaml:"motion"`
}

// Summary holds derived counts over a report sequence. It has no
// lifecycle of its own and is recomputed on demand.
type Summary struct {
	Total  int `yaml:"total"`
	Normal int `yaml:"normal"`
	Drops  int `yaml:"drops"`
	Merges int `yaml:"merges"`
}

// Result is what one analysis session hands back.
type Result struct {
	Reports    []FrameReport
	FrameCount int
}

func (r *Result) Summary() Summary {
	s := Summary{Total: len(r.Reports)}
	for _, report := range r.Reports {
		switch report.Status {
		case StatusFrameDrop:
			s.Drops++
		case StatusFrameMerge:
			s.Merges++
		default:
			s.Normal++
		}
	}
	return s
}
