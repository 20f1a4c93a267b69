// This file is part of Riskyv.
//
// Riskyv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Riskyv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Riskyv.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// UniqueFilename returns a name built from the prefix, an optional label and
// the current time to the second:
//
//	prepend_label_YYYYMMDD_HHMMSS
//
// The label part is dropped when empty. The filesystem is not consulted so two
// calls within the same second will collide.
func UniqueFilename(prepend string, label string) string {
	return uniqueFilename(prepend, label, time.Now())
}

func uniqueFilename(prepend string, label string, n time.Time) string {
	parts := []string{prepend}
	if l := strings.TrimSpace(label); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, n.Format(timestampLayout))
	return strings.Join(parts, "_")
}
