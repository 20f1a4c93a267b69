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

// Package performance contains helpers relating to the speed of the frame
// loop.
//
// FPS measures the achieved frame rate over a sampling period. Limiter
// stalls the frame loop to a fixed rate when the display is not synchronised
// to the vertical blank. RunProfiler() wraps a function with the optional
// generation of CPU and memory profiles.
package performance
