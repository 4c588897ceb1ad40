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

package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/videoqc/frame-auditor/classify"
	"github.com/videoqc/frame-auditor/loglimiter"
	"github.com/videoqc/frame-auditor/output"
	"github.com/videoqc/frame-auditor/stream"
)

const defectLogInterval = 10 * time.Second

// defectLogger reports defects as they are found. A broken recording
// can fire the same rule on every frame; the limiter keeps that from
// swamping the journal.
type defectLogger struct {
	limiter *loglimiter.LogLimiter
}

func newDefectLogger() *defectLogger {
	return &defectLogger{limiter: loglimiter.New(defectLogInterval)}
}

func (l *defectLogger) DefectFound(r classify.FrameReport) {
	l.limiter.Printf("%s (%s)", r.Status, r.Reason)
}

// analyseFile classifies one recording and writes its report.
func analyseFile(path string, conf *Config) (*classify.Result, error) {
	src, err := stream.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	log.Printf("analysing %s", path)
	result := classify.Analyse(src, &conf.Classify, newDefectLogger())

	summary := result.Summary()
	log.Printf("%s: %d frames, %d drops, %d merges",
		filepath.Base(path), result.FrameCount, summary.Drops, summary.Merges)

	if err := os.MkdirAll(conf.ReportDir, 0755); err != nil {
		return nil, err
	}
	reportPath, err := output.WriteReport(conf.ReportDir, path, result)
	if err != nil {
		return nil, err
	}
	log.Printf("report written to %s", reportPath)
	return result, nil
}

// analyseDir classifies every supported recording under dir. One bad
// file doesn't stop the sweep.
func analyseDir(dir string, conf *Config) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !stream.Supported(path) {
			return nil
		}
		if _, err := analyseFile(path, conf); err != nil {
			log.Printf("analysis of %s failed: %v", path, err)
		}
		return nil
	})
}
