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
	"log"

	arg "github.com/alexflint/go-arg"
)

var version = "<not set>"

type Args struct {
	Video      string `arg:"positional" help:"analyse a single recording and exit"`
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	Dir        string `arg:"-d,--dir" help:"analyse every recording in a directory and exit"`
	Service    bool   `arg:"--service" help:"watch the spool directory as a long running service"`
	ReportDir  string `arg:"-o,--output" help:"directory to write reports to (overrides config)"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
	Verbose    bool   `arg:"-v,--verbose" help:"log every classified defect"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/frame-auditor.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	if args.Verbose {
		conf.Classify.Verbose = true
	}
	if args.ReportDir != "" {
		conf.ReportDir = args.ReportDir
	}
	logConfig(conf)

	switch {
	case args.Video != "":
		_, err := analyseFile(args.Video, conf)
		return err
	case args.Dir != "":
		return analyseDir(args.Dir, conf)
	case args.Service:
		return runService(conf)
	default:
		return errors.New("nothing to do: give a recording, --dir or --service")
	}
}

func logConfig(conf *Config) {
	log.Printf("spool dir: %s", conf.SpoolDir)
	log.Printf("report dir: %s", conf.ReportDir)
	log.Printf("poll interval: %ds", conf.PollSecs)
	log.Printf("classify: %+v", conf.Classify)
	log.Printf("throttler: %+v", conf.Throttler)
}
