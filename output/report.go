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

// Package output persists analysis results as YAML report files.
package output

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/videoqc/frame-auditor/classify"
)

// Report is the document written for each analysed recording.
type Report struct {
	Source    string                 `yaml:"source"`
	Generated time.Time              `yaml:"generated"`
	Frames    int                    `yaml:"frame-count"`
	Summary   classify.Summary       `yaml:"summary"`
	Reports   []classify.FrameReport `yaml:"frames"`
}

// ReportPath returns where the report for sourcePath goes within dir.
func ReportPath(dir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".audit.yaml")
}

// HasReport reports whether a report for sourcePath already exists in
// dir. The spool watcher uses this to skip already processed files.
func HasReport(dir, sourcePath string) bool {
	_, err := os.Stat(ReportPath(dir, sourcePath))
	return err == nil
}

// WriteReport writes the report for one analysed recording into dir
// and returns the report's path. The file appears atomically: it is
// written to a temp file in the same directory first then renamed, so
// a watcher never sees a half written report.
func WriteReport(dir, sourcePath string, result *classify.Result) (string, error) {
	report := &Report{
		Source:    sourcePath,
		Generated: time.Now().UTC(),
		Frames:    result.FrameCount,
		Summary:   result.Summary(),
		Reports:   result.Reports,
	}
	buf, err := yaml.Marshal(report)
	if err != nil {
		return "", err
	}

	tmp, err := ioutil.TempFile(dir, ".audit-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	path := ReportPath(dir, sourcePath)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}
