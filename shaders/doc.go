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

// Package shaders compiles and links the GPU programs and resolves their
// named bindings.
//
// Every program shares the same vertex stage. Unless another is supplied,
// the embedded pass-through vertex stage (DefaultVertex) is used. The vertex
// stage receives the corners of the full-screen quad in the "pos" attribute.
//
// A missing binding is not an error by default. The location of a missing
// binding is gpu.NoLocation and must be checked with Valid() before it is
// used. A Loader created in strict mode returns a *MissingBindingError from
// Resolve() instead.
package shaders
