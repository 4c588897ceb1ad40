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

	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"
)

const (
	dbusName = "org.videoqc.frameauditor"
	dbusPath = "/org/videoqc/frameauditor"
)

type service struct {
	watcher *watcher
}

func startService(w *watcher) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name already taken")
	}

	s := &service{
		watcher: w,
	}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")

	return nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

// Analyse classifies one recording immediately, bypassing the pacer,
// and returns the report path.
func (s *service) Analyse(path string) (string, *dbus.Error) {
	result, err := s.watcher.analyseNow(path)
	if err != nil {
		return "", &dbus.Error{
			Name: dbusName + ".Analyse",
			Body: []interface{}{err.Error()},
		}
	}
	return result, nil
}

// Status returns the number of recordings analysed and defects found
// since the service started.
func (s *service) Status() (int32, int32, *dbus.Error) {
	analysed, defects := s.watcher.stats()
	return int32(analysed), int32(defects), nil
}
