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

package gpu

import (
	"fmt"
	"strings"
)

// Stage of a GPU program.
type Stage int

// List of valid Stage values.
const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("stage %d", int(s))
}

// Handles to resources created by a Device. The zero value is never a valid
// handle.
type (
	Shader  uint32
	Program uint32
	Texture uint32
	Quad    uint32
)

// Location of a named binding in a linked program.
type Location int32

// NoLocation is the location of a binding that does not exist in the program.
const NoLocation Location = -1

// Valid returns false if the location does not refer to a binding.
func (l Location) Valid() bool {
	return l >= 0
}

// Filter is the sampling filter of a texture.
type Filter int

// List of valid Filter values.
const (
	Nearest Filter = iota
	Linear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("filter %d", int(f))
}

// ParseFilter converts the string "nearest" or "linear" to a Filter value.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	}
	return Nearest, fmt.Errorf("gpu: unknown filter %q", s)
}

// Access mode of an image binding.
type Access int

// List of valid Access values.
const (
	ReadOnly Access = iota
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "r"
	case WriteOnly:
		return "w"
	case ReadWrite:
		return "rw"
	}
	return fmt.Sprintf("access %d", int(a))
}

// PositionAttribute is the name of the vertex attribute that receives the
// corners of the full-screen quad. It is always bound to attribute location
// zero.
const PositionAttribute = "pos"

// QuadVertices are the corners of the full-screen quad in clip space, two
// components per vertex.
var QuadVertices = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, 1,
}

// QuadIndices divide the quad into two triangles.
var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}
