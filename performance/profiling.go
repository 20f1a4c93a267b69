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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfileString converts a comma separated list of profile names ("cpu",
// "mem", "all" or "none") into a Profile value.
func ParseProfileString(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileCPU | ProfileMem
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile %q", n)
		}
	}
	return p, nil
}

// RunProfiler runs the run function, generating the requested profiles. Files
// are named with filenameHeader and the profile type.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		f, ferr := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if ferr != nil {
			return fmt.Errorf("performance: %w", ferr)
		}
		defer f.Close()

		runtime.GC()
		if ferr := pprof.WriteHeapProfile(f); ferr != nil {
			return fmt.Errorf("performance: %w", ferr)
		}
	}

	return err
}
