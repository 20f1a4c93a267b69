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

package gles31

import "github.com/jetsetilly/riskyv/gpu"

// the OpenGL implementation must satisfy the gpu.Device interface
var _ gpu.Device = (*Device)(nil)
