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

package resources_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/resources"
	"github.com/jetsetilly/riskyv/test"
)

// chdir to a new temporary directory containing a portable configuration
// directory. the previous working directory is restored at the end of the
// test
func portable(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".riskyv"), 0o700))

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestLoad(t *testing.T) {
	dir := portable(t)

	fn := filepath.Join(dir, "emulator.glsl")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("void main() {}"), 0o600))

	data, err := resources.Load(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "void main() {}")
}

func TestLoadFromAssets(t *testing.T) {
	dir := portable(t)

	assets := filepath.Join(dir, ".riskyv", resources.AssetsDir)
	test.DemandSuccess(t, os.MkdirAll(assets, 0o700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(assets, "console.glsl"), []byte("console"), 0o600))

	data, err := resources.Load("console.glsl")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "console")
}

func TestMissing(t *testing.T) {
	portable(t)

	_, err := resources.Load("nosuchfile.rgba")
	test.ExpectFailure(t, err)

	var fae *resources.FileAccessError
	test.ExpectSuccess(t, errors.As(err, &fae))
	test.ExpectEquality(t, fae.Path, "nosuchfile.rgba")
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadSized(t *testing.T) {
	dir := portable(t)

	fn := filepath.Join(dir, "font.rgba")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 16), 0o600))

	_, err := resources.LoadSized(fn, 16)
	test.ExpectSuccess(t, err)

	_, err = resources.LoadSized(fn, 32)
	var sme *memory.SizeMismatchError
	test.DemandSuccess(t, errors.As(err, &sme))
	test.ExpectEquality(t, sme.Expected, 32)
	test.ExpectEquality(t, sme.Actual, 16)
}
