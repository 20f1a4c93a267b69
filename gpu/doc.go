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

// Package gpu defines the narrow surface of the graphics API that is needed
// to run the emulation and console programs. The Device interface is
// implemented for OpenGL ES 3.1 by the gles31 package and for testing by the
// gputest package.
//
// Every call that submits work to the GPU should be followed by a call to
// CheckError(). Errors are not sticky from the point of view of the caller:
// the first error found is reported as a *BackendError and the caller is
// expected to stop.
package gpu
