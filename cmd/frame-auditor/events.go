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
	"encoding/json"
	"log"
	"time"

	"github.com/godbus/dbus"

	"github.com/videoqc/frame-auditor/classify"
)

// queueDefectEvent posts a defective-recording event to the system
// event service. Failures are logged and swallowed; event delivery is
// best effort and must never fail an analysis.
func queueDefectEvent(sourcePath string, summary classify.Summary) {
	ts := time.Now()
	eventDetails := map[string]interface{}{
		"description": map[string]interface{}{
			"type": "frameDefect",
			"details": map[string]interface{}{
				"source": sourcePath,
				"drops":  summary.Drops,
				"merges": summary.Merges,
			},
		},
	}
	detailsJSON, err := json.Marshal(&eventDetails)
	if err != nil {
		log.Printf("Could not record defect event: %s", err)
		return
	}

	conn, err := dbus.SystemBus()
	if err != nil {
		log.Printf("Could not record defect event: %s", err)
		return
	}

	obj := conn.Object("org.videoqc.Events", "/org/videoqc/Events")
	call := obj.Call("org.videoqc.Events.Queue", 0, detailsJSON, ts.UnixNano())
	if call.Err != nil {
		log.Printf("Could not record defect event: %s", call.Err)
		return
	}
}
