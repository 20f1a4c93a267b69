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

// Package memory prepares the memory image of the emulated machine and
// guards access to it once it has been uploaded to the GPU.
//
// A Snapshot is the host-side copy of the image. It is created from raw
// bytes which must be exactly the size of the image. Two words are patched
// unconditionally: the initial program counter (word 0) and the pointer to the
// device tree (word 11). Both are little-endian.
//
// Upload() transfers a Snapshot to the GPU as an Image. From that point the
// host never writes to the memory again. The Image may be bound by only one
// pass at a time and Bind() returns an error wrapping ErrAlreadyBound if that
// rule is broken.
package memory
