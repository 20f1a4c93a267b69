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

package gpu

import "fmt"

// Error codes that can be reported by the backend.
const (
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

var errorNames = map[uint32]string{
	InvalidEnum:                 "invalid enum",
	InvalidValue:                "invalid value",
	InvalidOperation:            "invalid operation",
	OutOfMemory:                 "out of memory",
	InvalidFramebufferOperation: "invalid framebuffer operation",
}

// BackendError is returned by CheckError() when the graphics backend has
// recorded an error.
type BackendError struct {
	// the call site that was being checked
	Op   string
	Code uint32
}

func (e *BackendError) Error() string {
	if n, ok := errorNames[e.Code]; ok {
		return fmt.Sprintf("gpu: %s: %s (%#x)", e.Op, n, e.Code)
	}
	return fmt.Sprintf("gpu: %s: error %#x", e.Op, e.Code)
}
