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
	"sync"
	"time"

	"github.com/coreos/go-systemd/daemon"

	"github.com/videoqc/frame-auditor/output"
	"github.com/videoqc/frame-auditor/stream"
	"github.com/videoqc/frame-auditor/throttle"
)

// watcher sweeps the spool directory and analyses recordings that
// don't have a report yet. The pacer limits how many analyses a burst
// of new recordings can start.
type watcher struct {
	conf  *Config
	pacer *throttle.Pacer

	mu       sync.Mutex
	analysed int
	defects  int
}

func newWatcher(conf *Config) *watcher {
	return &watcher{
		conf:  conf,
		pacer: throttle.NewPacer(conf.Throttler),
	}
}

// runService runs the spool watcher with the d-bus control interface
// exported. It only returns on error.
func runService(conf *Config) error {
	w := newWatcher(conf)

	log.Println("starting d-bus service")
	if err := startService(w); err != nil {
		return err
	}

	if err := os.MkdirAll(conf.ReportDir, 0755); err != nil {
		return err
	}

	daemon.SdNotify(false, "READY=1")
	log.Printf("watching %s", conf.SpoolDir)
	for {
		if err := w.sweep(); err != nil {
			log.Printf("spool sweep failed: %v", err)
		}
		daemon.SdNotify(false, "WATCHDOG=1")
		time.Sleep(time.Duration(conf.PollSecs) * time.Second)
	}
}

// sweep analyses spool files without a report, pacing permitting.
// Files that show up mid-sweep are caught on the next one.
func (w *watcher) sweep() error {
	return filepath.Walk(w.conf.SpoolDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !stream.Supported(path) {
			return nil
		}
		if output.HasReport(w.conf.ReportDir, path) {
			return nil
		}
		if !w.pacer.TryStart() {
			log.Print("analysis paced, leaving remaining files for a later sweep")
			return filepath.SkipDir
		}
		w.analyse(path)
		return nil
	})
}

func (w *watcher) analyse(path string) {
	result, err := analyseFile(path, w.conf)
	if err != nil {
		log.Printf("analysis of %s failed: %v", path, err)
		return
	}

	summary := result.Summary()
	w.mu.Lock()
	w.analysed++
	w.defects += summary.Drops + summary.Merges
	w.mu.Unlock()

	if summary.Drops+summary.Merges > 0 {
		queueDefectEvent(path, summary)
	}
}

// analyseNow classifies a recording on request, skipping the pacer.
// Used by the d-bus Analyse method.
func (w *watcher) analyseNow(path string) (string, error) {
	result, err := analyseFile(path, w.conf)
	if err != nil {
		return "", err
	}

	summary := result.Summary()
	w.mu.Lock()
	w.analysed++
	w.defects += summary.Drops + summary.Merges
	w.mu.Unlock()

	return output.ReportPath(w.conf.ReportDir, path), nil
}

// stats returns the lifetime analysis counters.
func (w *watcher) stats() (analysed, defects int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.analysed, w.defects
}
