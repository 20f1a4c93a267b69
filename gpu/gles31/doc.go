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

// Package gles31 implements the gpu.Device interface with OpenGL ES 3.1,
// which is the first version of OpenGL ES to support image load/store from
// the fragment stage.
//
// A GL context must be current on the calling thread when NewDevice() is
// called and every method must be called from that same thread.
package gles31
