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
	"log"
)

// Source produces a finite, ordered, one-pass sequence of
// preprocessed frames. NextFrame decodes into the supplied ring slot
// and returns io.EOF when the stream is exhausted; any other error
// means decoding stopped early.
type Source interface {
	NextFrame(*Frame) error
	FrameRate() float64
	Close() error
}

// Analyse runs one full synchronous pull pass over the source and
// returns the ordered report sequence. A decode fault mid-stream
// truncates the pass; everything classified so far is still returned,
// partial results are valid.
func Analyse(src Source, conf *Config, listener Listener) *Result {
	p := NewProcessor(conf, src.FrameRate(), listener)
	defer p.Close()

	for {
		frame := p.Current()
		if err := src.NextFrame(frame); err != nil {
			if err != io.EOF {
				log.Printf("stream ended early: %v", err)
			}
			break
		}
		p.Process(frame)
	}
	return p.Finish()
}
