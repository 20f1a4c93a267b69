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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Riskyv"

// number is set at link time with -ldflags "-X". an empty number means an
// unnumbered build
var number string

type build struct {
	version  string
	revision string
}

var current build

func init() {
	info, _ := debug.ReadBuildInfo()
	current = describe(number, info)
}

// describe the build from the link-time number and whatever VCS settings the
// toolchain embedded. info may be nil
func describe(number string, info *debug.BuildInfo) build {
	var vcs, modified bool
	var rev string

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	var b build

	switch {
	case rev == "":
		b.revision = "no revision information"
	case modified:
		b.revision = rev + "+dirty"
	default:
		b.revision = rev
	}

	switch {
	case number != "":
		b.version = number
	case vcs:
		b.version = "unreleased"
	default:
		b.version = "local"
	}

	return b
}

// Version returns the version string, the revision string and whether the
// build carries a release number.
//
// A version of "unreleased" means the binary was built from a VCS checkout
// without a number. "local" means there was neither a number nor VCS
// information, as happens with "go run .".
func Version() (string, string, bool) {
	return current.version, current.revision, number != "" && current.version == number
}

// Title returns a string suitable for a window title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, current.version)
}
