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
	"os"
	"path/filepath"
)

// the name of the resource directory when it is found in the current
// directory. the leading dot is removed when the resource directory is placed
// in the user's configuration directory.
const baseResourcePath = ".riskyv"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths. The subPth argument names a
// directory that will be created if it does not already exist.
//
// The function returns an error if the directory could not be created.
func ResourcePath(subPth string, file string) (string, error) {
	b, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(b, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}
