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

// Package resources loads the external files needed by the harness: shader
// sources, the font atlas and the memory snapshot.
//
// Files are looked for first at the path given. If a relative path is not
// found there, the assets directory in the riskyv configuration directory is
// searched (see the paths package).
//
// Failure to open or read a file is reported as a *FileAccessError. A file of
// the wrong size is reported as a *memory.SizeMismatchError by LoadSized().
package resources
