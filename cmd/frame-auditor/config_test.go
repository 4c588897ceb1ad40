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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoqc/frame-auditor/classify"
	"github.com/videoqc/frame-auditor/throttle"
)

func TestAllDefaults(t *testing.T) {
	conf, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	require.NoError(t, conf.Validate())

	assert.Equal(t, Config{
		SpoolDir:  "/var/spool/video",
		ReportDir: "/var/spool/video/reports",
		PollSecs:  10,
		Classify:  classify.DefaultConfig(),
		Throttler: throttle.DefaultPacerConfig(),
	}, *conf)
}

func TestPartialOverride(t *testing.T) {
	conf, err := ParseConfig([]byte(`
spool-dir: "/data/incoming"
poll-secs: 30
classify:
  method: motion
  verbose: true
throttler:
  apply-pacing: false
`))
	require.NoError(t, err)

	assert.Equal(t, "/data/incoming", conf.SpoolDir)
	assert.Equal(t, "/var/spool/video/reports", conf.ReportDir)
	assert.Equal(t, 30, conf.PollSecs)
	assert.Equal(t, classify.MethodMotion, conf.Classify.Method)
	assert.True(t, conf.Classify.Verbose)
	assert.False(t, conf.Throttler.ApplyPacing)

	// untouched classifier thresholds keep their defaults
	assert.Equal(t, classify.DefaultConfig().SimilarityCutoff, conf.Classify.SimilarityCutoff)
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := ParseConfig([]byte(`spool-dir: ""`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`poll-secs: -5`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("classify:\n  method: bogus\n"))
	assert.Error(t, err)
}

func TestMissingConfigFileUsesDefaults(t *testing.T) {
	conf, err := ParseConfigFile("/nonexistent/frame-auditor.yaml")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), *conf)
}
