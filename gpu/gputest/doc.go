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

// Package gputest provides an implementation of gpu.Device that records
// every call and can be told to fail. It does no rendering.
//
// Uniforms are discovered by scanning the shader sources for uniform
// declarations. The image unit of an image uniform is taken from the
// binding layout qualifier of the declaration.
package gputest
