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

package gputest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/riskyv/gpu"
)

// TextureRecord is the state of a texture created by the Device.
type TextureRecord struct {
	Width  int32
	Height int32

	// true if the texture was created with CreateImageR32UI()
	Integer bool
	Filter  gpu.Filter

	// copy of the data supplied on creation
	Data []byte
}

type program struct {
	vertex   string
	fragment string
	attribs  []string

	// uniforms in order of declaration
	names    []string
	uniforms map[string]gpu.Location
	units    map[gpu.Location]int32
	values   map[gpu.Location]int32
}

// Device implements the gpu.Device interface.
type Device struct {
	// compilation of a stage fails with the diagnostic text if the stage is
	// in the map
	FailCompile map[gpu.Stage]string

	// linking fails with the log if FailLink is not empty
	FailLink string

	// CheckError() returns an error for the named op. the value "*" fails
	// every check
	FailCheck string

	// returned by ReadPixels(). if nil a zeroed buffer is returned
	Pixels []byte

	calls   []string
	pending bool

	// number of calls that were made while the previous call was unchecked
	unchecked int

	handle   uint32
	shaders  map[gpu.Shader]string
	programs map[gpu.Program]*program
	textures map[gpu.Texture]*TextureRecord
	quads    map[gpu.Quad]bool
	current  gpu.Program
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{
		FailCompile: make(map[gpu.Stage]string),
		shaders:     make(map[gpu.Shader]string),
		programs:    make(map[gpu.Program]*program),
		textures:    make(map[gpu.Texture]*TextureRecord),
		quads:       make(map[gpu.Quad]bool),
	}
}

func (dev *Device) next() uint32 {
	dev.handle++
	return dev.handle
}

// record a call that is expected to be followed by a call to CheckError()
func (dev *Device) record(format string, a ...any) {
	if dev.pending {
		dev.unchecked++
	}
	dev.pending = true
	dev.calls = append(dev.calls, fmt.Sprintf(format, a...))
}

// note a call that has no backend error to check
func (dev *Device) note(format string, a ...any) {
	dev.calls = append(dev.calls, fmt.Sprintf(format, a...))
}

// Calls returns the list of calls made since the Device was created or since
// the last call to ClearCalls(). Calls to CheckError() are not included.
func (dev *Device) Calls() []string {
	c := make([]string, len(dev.calls))
	copy(c, dev.calls)
	return c
}

// ClearCalls forgets the list of calls.
func (dev *Device) ClearCalls() {
	dev.calls = dev.calls[:0]
}

// Unchecked returns the number of calls that were not followed by a call to
// CheckError() before the next call was made.
func (dev *Device) Unchecked() int {
	return dev.unchecked
}

// Live returns the number of resources that have been created but not
// deleted.
func (dev *Device) Live() int {
	return len(dev.shaders) + len(dev.programs) + len(dev.textures) + len(dev.quads)
}

// Texture returns the record for the texture or nil if it doesn't exist.
func (dev *Device) Texture(t gpu.Texture) *TextureRecord {
	return dev.textures[t]
}

// Value returns the last value set for the named uniform of the program.
func (dev *Device) Value(p gpu.Program, name string) (int32, bool) {
	prg, ok := dev.programs[p]
	if !ok {
		return 0, false
	}
	l, ok := prg.uniforms[name]
	if !ok {
		return 0, false
	}
	v, ok := prg.values[l]
	return v, ok
}

// CompileShader implements the gpu.Device interface.
func (dev *Device) CompileShader(stage gpu.Stage, source string) (gpu.Shader, string, bool) {
	sh := gpu.Shader(dev.next())
	dev.shaders[sh] = source
	dev.note("CompileShader %s", stage)
	if log, ok := dev.FailCompile[stage]; ok {
		return sh, log, false
	}
	return sh, "", true
}

// DeleteShader implements the gpu.Device interface.
func (dev *Device) DeleteShader(sh gpu.Shader) {
	delete(dev.shaders, sh)
}

// LinkProgram implements the gpu.Device interface.
func (dev *Device) LinkProgram(vertex gpu.Shader, fragment gpu.Shader, attributes []string) (gpu.Program, string, bool) {
	p := gpu.Program(dev.next())
	prg := &program{
		vertex:   dev.shaders[vertex],
		fragment: dev.shaders[fragment],
		attribs:  attributes,
		uniforms: make(map[string]gpu.Location),
		units:    make(map[gpu.Location]int32),
		values:   make(map[gpu.Location]int32),
	}
	dev.programs[p] = prg
	dev.note("LinkProgram %d", p)

	if dev.FailLink != "" {
		return p, dev.FailLink, false
	}

	prg.reflect(prg.vertex)
	prg.reflect(prg.fragment)

	return p, "", true
}

var bindingQualifier = regexp.MustCompile(`binding\s*=\s*(\d+)`)

// reflect finds the uniform declarations in the source
func (prg *program) reflect(source string) {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "//") {
			continue // for loop
		}

		decl, _, ok := strings.Cut(line, ";")
		if !ok {
			continue // for loop
		}

		f := strings.Fields(decl)
		isUniform := false
		for _, w := range f {
			if w == "uniform" {
				isUniform = true
				break // for loop
			}
		}
		if !isUniform {
			continue // for loop
		}

		name, _, _ := strings.Cut(f[len(f)-1], "[")
		if _, ok := prg.uniforms[name]; ok {
			continue // for loop
		}

		l := gpu.Location(len(prg.names))
		prg.names = append(prg.names, name)
		prg.uniforms[name] = l

		if m := bindingQualifier.FindStringSubmatch(decl); m != nil {
			u, _ := strconv.Atoi(m[1])
			prg.units[l] = int32(u)
		}
	}
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(p gpu.Program) {
	delete(dev.programs, p)
	if dev.current == p {
		dev.current = 0
	}
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(p gpu.Program) {
	dev.current = p
	dev.record("UseProgram %d", p)
}

// UniformLocation implements the gpu.Device interface.
func (dev *Device) UniformLocation(p gpu.Program, name string) gpu.Location {
	prg, ok := dev.programs[p]
	if !ok {
		return gpu.NoLocation
	}
	if l, ok := prg.uniforms[name]; ok {
		return l
	}
	return gpu.NoLocation
}

// ImageUnit implements the gpu.Device interface.
func (dev *Device) ImageUnit(p gpu.Program, l gpu.Location) int32 {
	prg, ok := dev.programs[p]
	if !ok {
		return 0
	}
	return prg.units[l]
}

// SetInt implements the gpu.Device interface. The call is recorded with the
// name of the uniform.
func (dev *Device) SetInt(l gpu.Location, v int32) {
	name := "<invalid>"
	if prg, ok := dev.programs[dev.current]; ok && l.Valid() && int(l) < len(prg.names) {
		name = prg.names[l]
		prg.values[l] = v
	}
	dev.record("SetInt %s=%d", name, v)
}

// CreateImageR32UI implements the gpu.Device interface.
func (dev *Device) CreateImageR32UI(width int32, height int32, data []byte) gpu.Texture {
	t := gpu.Texture(dev.next())
	dev.textures[t] = &TextureRecord{
		Width:   width,
		Height:  height,
		Integer: true,
		Filter:  gpu.Nearest,
		Data:    append([]byte(nil), data...),
	}
	dev.record("CreateImageR32UI %dx%d", width, height)
	return t
}

// CreateTextureRGBA8 implements the gpu.Device interface.
func (dev *Device) CreateTextureRGBA8(width int32, height int32, filter gpu.Filter, data []byte) gpu.Texture {
	t := gpu.Texture(dev.next())
	dev.textures[t] = &TextureRecord{
		Width:  width,
		Height: height,
		Filter: filter,
		Data:   append([]byte(nil), data...),
	}
	dev.record("CreateTextureRGBA8 %dx%d %s", width, height, filter)
	return t
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(t gpu.Texture) {
	delete(dev.textures, t)
}

// BindImage implements the gpu.Device interface.
func (dev *Device) BindImage(unit int32, t gpu.Texture, access gpu.Access) {
	dev.record("BindImage unit=%d texture=%d %s", unit, t, access)
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(unit int32, t gpu.Texture) {
	dev.record("BindTexture unit=%d texture=%d", unit, t)
}

// CreateQuad implements the gpu.Device interface.
func (dev *Device) CreateQuad() gpu.Quad {
	q := gpu.Quad(dev.next())
	dev.quads[q] = true
	dev.record("CreateQuad")
	return q
}

// DrawQuad implements the gpu.Device interface.
func (dev *Device) DrawQuad(q gpu.Quad) {
	dev.record("DrawQuad %d", q)
}

// DeleteQuad implements the gpu.Device interface.
func (dev *Device) DeleteQuad(q gpu.Quad) {
	delete(dev.quads, q)
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(width int32, height int32) {
	dev.record("Viewport %dx%d", width, height)
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	dev.record("Clear")
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(width int32, height int32) []byte {
	dev.record("ReadPixels %dx%d", width, height)
	sz := int(width) * int(height) * 4
	if dev.Pixels != nil && len(dev.Pixels) == sz {
		return append([]byte(nil), dev.Pixels...)
	}
	return make([]byte, sz)
}

// CheckError implements the gpu.Device interface.
func (dev *Device) CheckError(op string) error {
	dev.pending = false
	if dev.FailCheck == "*" || dev.FailCheck == op {
		return &gpu.BackendError{Op: op, Code: gpu.InvalidOperation}
	}
	return nil
}
