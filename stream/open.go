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

package stream

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/videoqc/frame-auditor/classify"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
}

// Open returns a frame source for the recording at path, chosen by
// file extension.
func Open(path string) (classify.Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".cptv":
		return OpenCPTVFile(path)
	case videoExtensions[ext]:
		return OpenVideoFile(path)
	default:
		return nil, fmt.Errorf("unsupported recording type %q", ext)
	}
}

// Supported reports whether Open knows how to decode the file.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".cptv" || videoExtensions[ext]
}
