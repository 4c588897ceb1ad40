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

// Package loglimiter suppresses repeated log messages. A defect heavy
// recording can produce the same classification line hundreds of times
// over; the limiter keeps one per interval per message.
package loglimiter

import (
	"fmt"
	"log"
	"time"
)

// New returns a LogLimiter with the given minimum interval between
// repeats of the same message.
func New(interval time.Duration) *LogLimiter {
	return &LogLimiter{
		interval: interval,
		lastSeen: make(map[string]time.Time),
		nowFunc:  time.Now,
	}
}

// LogLimiter suppresses a message when it was already logged within
// the interval. Distinct messages never suppress each other.
type LogLimiter struct {
	interval time.Duration
	lastSeen map[string]time.Time
	nowFunc  func() time.Time
}

func (limiter *LogLimiter) Printf(format string, v ...interface{}) {
	limiter.Print(fmt.Sprintf(format, v...))
}

func (limiter *LogLimiter) Print(s string) {
	now := limiter.nowFunc()
	if last, seen := limiter.lastSeen[s]; seen && now.Sub(last) < limiter.interval {
		return
	}
	log.Print(s)
	limiter.lastSeen[s] = now
}
