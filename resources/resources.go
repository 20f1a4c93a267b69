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

package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/paths"
)

// AssetsDir is the sub-directory of the configuration directory that is
// searched for files not found at the given path.
const AssetsDir = "assets"

// FileAccessError is returned when a file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("resources: cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Resolve returns the path at which the named file can be found.
func Resolve(name string) (string, error) {
	_, err := os.Stat(name)
	if err == nil {
		return name, nil
	}

	if !errors.Is(err, fs.ErrNotExist) || filepath.IsAbs(name) {
		return "", &FileAccessError{Path: name, Err: err}
	}

	pth, perr := paths.ResourcePath(AssetsDir, name)
	if perr != nil {
		return "", &FileAccessError{Path: name, Err: err}
	}

	if _, perr := os.Stat(pth); perr != nil {
		// report the error for the path the user asked for
		return "", &FileAccessError{Path: name, Err: err}
	}

	return pth, nil
}

// Load the named file in its entirety.
func Load(name string) ([]byte, error) {
	pth, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		return nil, &FileAccessError{Path: pth, Err: err}
	}

	logger.Logf(logger.Allow, "resources", "loaded %s (%d bytes)", pth, len(data))

	return data, nil
}

// LoadSized loads the named file and checks that it is exactly the expected
// size.
func LoadSized(name string, expected int) ([]byte, error) {
	data, err := Load(name)
	if err != nil {
		return nil, err
	}
	if err := ExpectSize(name, data, expected); err != nil {
		return nil, err
	}
	return data, nil
}

// ExpectSize returns a *memory.SizeMismatchError if data is not the expected
// length.
func ExpectSize(name string, data []byte, expected int) error {
	if len(data) != expected {
		return &memory.SizeMismatchError{
			Name:     name,
			Expected: expected,
			Actual:   len(data),
		}
	}
	return nil
}
