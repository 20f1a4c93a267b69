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

package logger

import (
	"io"
)

// the application shares a single log. entries from the harness, the scheduler
// and the command line all end up here
var central *Logger

// number of entries kept before the oldest are dropped
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf is the formatted variant of Log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear the central log.
func Clear() {
	central.Clear()
}

// Write every entry in the central log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries of the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries to output as they arrive. Echoing stops with a
// nil writer. Existing entries are written immediately if writeRecent is true.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}
