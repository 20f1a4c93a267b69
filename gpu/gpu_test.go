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

package gpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/test"
)

func TestLocation(t *testing.T) {
	test.ExpectFailure(t, gpu.NoLocation.Valid())
	test.ExpectSuccess(t, gpu.Location(0).Valid())
	test.ExpectSuccess(t, gpu.Location(3).Valid())
}

func TestParseFilter(t *testing.T) {
	f, err := gpu.ParseFilter("nearest")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, gpu.Nearest)

	f, err = gpu.ParseFilter(" Linear ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, gpu.Linear)

	_, err = gpu.ParseFilter("bilinear")
	test.ExpectFailure(t, err)
}

func TestBackendError(t *testing.T) {
	var err error = &gpu.BackendError{Op: "draw emulate", Code: gpu.InvalidOperation}
	test.ExpectEquality(t, err.Error(), "gpu: draw emulate: invalid operation (0x502)")

	err = &gpu.BackendError{Op: "clear", Code: 0x1234}
	test.ExpectEquality(t, err.Error(), "gpu: clear: error 0x1234")

	wrapped := fmt.Errorf("scheduler: %w", err)
	var be *gpu.BackendError
	test.ExpectSuccess(t, errors.As(wrapped, &be))
	test.ExpectEquality(t, be.Code, uint32(0x1234))
}

func TestQuad(t *testing.T) {
	// four vertices of two components and two triangles
	test.ExpectEquality(t, len(gpu.QuadVertices), 8)
	test.ExpectEquality(t, len(gpu.QuadIndices), 6)
	for _, i := range gpu.QuadIndices {
		test.ExpectSuccess(t, i < 4)
	}
}
