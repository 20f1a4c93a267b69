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

// Package platform opens the window and creates the OpenGL ES 3.1 context
// with SDL. It polls SDL for events, forwarding key transitions to the
// userinput package, and swaps the display buffers at the end of every
// frame.
//
// SDL requires that every call is made from the main thread. NewPlatform()
// locks the calling goroutine to its thread and every other function must be
// called from that goroutine.
package platform
