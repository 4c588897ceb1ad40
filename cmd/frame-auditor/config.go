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
	"errors"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/videoqc/frame-auditor/classify"
	"github.com/videoqc/frame-auditor/throttle"
)

type Config struct {
	SpoolDir  string               `yaml:"spool-dir"`
	ReportDir string               `yaml:"report-dir"`
	PollSecs  int                  `yaml:"poll-secs"`
	Classify  classify.Config      `yaml:"classify"`
	Throttler throttle.PacerConfig `yaml:"throttler"`
}

var defaultConfig = Config{
	SpoolDir:  "/var/spool/video",
	ReportDir: "/var/spool/video/reports",
	PollSecs:  10,
}

func GetDefaultConfig() Config {
	conf := defaultConfig
	conf.Classify = classify.DefaultConfig()
	conf.Throttler = throttle.DefaultPacerConfig()
	return conf
}

func (conf *Config) Validate() error {
	if conf.SpoolDir == "" {
		return errors.New("spool-dir not set")
	}
	if conf.ReportDir == "" {
		return errors.New("report-dir not set")
	}
	if conf.PollSecs <= 0 {
		return errors.New("poll-secs must be positive")
	}
	return conf.Classify.Validate()
}

// ParseConfigFile loads the configuration. A missing file just means
// defaults - the tool has to work on a machine with no config at all.
func ParseConfigFile(filename string) (*Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		buf = nil
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := GetDefaultConfig()
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
