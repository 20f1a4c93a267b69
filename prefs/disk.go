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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while riskyv is running ***"

// the separator between key and value on each line of a preferences file.
const separator = " :: "

// ErrNoPrefsFile is wrapped by the error returned from Load() when the
// preferences file does not exist. Callers will usually want to ignore it.
var ErrNoPrefsFile = errors.New("no preferences file")

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// entries in the file that have not been added to the Disk are kept so
	// they survive a call to Save()
	unrecognised map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:         path,
		entries:      make(map[string]pref),
		unrecognised: make(map[string]string),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t:;") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk. Values that were read from the
// file but never added to the Disk are written back untouched.
func (dsk *Disk) Save() error {
	lines := make(map[string]string, len(dsk.entries)+len(dsk.unrecognised))
	for k, v := range dsk.unrecognised {
		lines[k] = v
	}
	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, lines[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack are applied afterwards and take precedence over the file. A missing
// file is reported with an error wrapping ErrNoPrefsFile but the command line
// values are still applied.
func (dsk *Disk) Load() error {
	ferr := dsk.loadFile()

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return ferr
}

func (dsk *Disk) loadFile() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("prefs: %s: %w", dsk.path, ErrNoPrefsFile)
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("prefs: %s: not a valid preferences file", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue // for loop
		}
		k = strings.TrimSpace(k)

		p, ok := dsk.entries[k]
		if !ok {
			dsk.unrecognised[k] = v
			continue // for loop
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return scanner.Err()
}
