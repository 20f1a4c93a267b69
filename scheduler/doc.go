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

// Package scheduler runs the two passes that make up every frame.
//
// The emulation pass runs first. It binds the memory image read-write,
// receives at most one key event and advances the emulated machine. The
// presentation pass runs second. It binds the same memory image together
// with the font atlas and draws the console (and optionally the framebuffer)
// to the display.
//
// Both passes run exactly once per frame, in that order, whether or not there
// is a key event. The passes are submitted to the same command stream so the
// presentation pass always sees the memory as left by the emulation pass.
// There is no other synchronisation.
package scheduler
