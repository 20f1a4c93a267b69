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

package gles31

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.1/gles2"

	"github.com/jetsetilly/riskyv/gpu"
)

type quad struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// Device implements the gpu.Device interface.
type Device struct {
	quads map[gpu.Quad]quad
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() (*Device, error) {
	if err := gles2.Init(); err != nil {
		return nil, fmt.Errorf("gles31: %w", err)
	}
	return &Device{
		quads: make(map[gpu.Quad]quad),
	}, nil
}

// Version returns the version and renderer strings reported by the driver.
func (dev *Device) Version() string {
	return fmt.Sprintf("%s (%s)",
		gles2.GoStr(gles2.GetString(gles2.VERSION)),
		gles2.GoStr(gles2.GetString(gles2.RENDERER)))
}

func stageToGL(stage gpu.Stage) uint32 {
	if stage == gpu.VertexStage {
		return gles2.VERTEX_SHADER
	}
	return gles2.FRAGMENT_SHADER
}

// CompileShader implements the gpu.Device interface.
func (dev *Device) CompileShader(stage gpu.Stage, source string) (gpu.Shader, string, bool) {
	handle := gles2.CreateShader(stageToGL(stage))

	csource, free := gles2.Strs(source + "\x00")
	defer free()
	gles2.ShaderSource(handle, 1, csource, nil)
	gles2.CompileShader(handle)

	var status int32
	gles2.GetShaderiv(handle, gles2.COMPILE_STATUS, &status)
	if status == gles2.FALSE {
		var logLength int32
		gles2.GetShaderiv(handle, gles2.INFO_LOG_LENGTH, &logLength)
		return gpu.Shader(handle), infoLog(logLength, func(l *uint8) {
			gles2.GetShaderInfoLog(handle, logLength, nil, l)
		}), false
	}

	return gpu.Shader(handle), "", true
}

// infoLog allocates a buffer for a log of length and fills it with the get
// function.
func infoLog(length int32, get func(l *uint8)) string {
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	get(gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteShader implements the gpu.Device interface.
func (dev *Device) DeleteShader(sh gpu.Shader) {
	gles2.DeleteShader(uint32(sh))
}

// LinkProgram implements the gpu.Device interface.
func (dev *Device) LinkProgram(vertex gpu.Shader, fragment gpu.Shader, attributes []string) (gpu.Program, string, bool) {
	handle := gles2.CreateProgram()
	gles2.AttachShader(handle, uint32(vertex))
	gles2.AttachShader(handle, uint32(fragment))

	for i, a := range attributes {
		gles2.BindAttribLocation(handle, uint32(i), gles2.Str(a+"\x00"))
	}

	gles2.LinkProgram(handle)

	var status int32
	gles2.GetProgramiv(handle, gles2.LINK_STATUS, &status)
	if status == gles2.FALSE {
		var logLength int32
		gles2.GetProgramiv(handle, gles2.INFO_LOG_LENGTH, &logLength)
		return gpu.Program(handle), infoLog(logLength, func(l *uint8) {
			gles2.GetProgramInfoLog(handle, logLength, nil, l)
		}), false
	}

	return gpu.Program(handle), "", true
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(p gpu.Program) {
	gles2.DeleteProgram(uint32(p))
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(p gpu.Program) {
	gles2.UseProgram(uint32(p))
}

// UniformLocation implements the gpu.Device interface.
func (dev *Device) UniformLocation(p gpu.Program, name string) gpu.Location {
	return gpu.Location(gles2.GetUniformLocation(uint32(p), gles2.Str(name+"\x00")))
}

// ImageUnit implements the gpu.Device interface. The value of an image
// uniform is the unit given by its binding layout qualifier.
func (dev *Device) ImageUnit(p gpu.Program, l gpu.Location) int32 {
	var unit int32
	gles2.GetUniformiv(uint32(p), int32(l), &unit)
	return unit
}

// SetInt implements the gpu.Device interface.
func (dev *Device) SetInt(l gpu.Location, v int32) {
	gles2.Uniform1i(int32(l), v)
}

// CreateImageR32UI implements the gpu.Device interface.
func (dev *Device) CreateImageR32UI(width int32, height int32, data []byte) gpu.Texture {
	var handle uint32
	gles2.GenTextures(1, &handle)
	gles2.BindTexture(gles2.TEXTURE_2D, handle)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MIN_FILTER, gles2.NEAREST)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MAG_FILTER, gles2.NEAREST)

	// image load/store requires immutable storage
	gles2.TexStorage2D(gles2.TEXTURE_2D, 1, gles2.R32UI, width, height)
	gles2.TexSubImage2D(gles2.TEXTURE_2D, 0, 0, 0, width, height,
		gles2.RED_INTEGER, gles2.UNSIGNED_INT, gles2.Ptr(data))

	return gpu.Texture(handle)
}

// CreateTextureRGBA8 implements the gpu.Device interface.
func (dev *Device) CreateTextureRGBA8(width int32, height int32, filter gpu.Filter, data []byte) gpu.Texture {
	f := int32(gles2.NEAREST)
	if filter == gpu.Linear {
		f = gles2.LINEAR
	}

	var handle uint32
	gles2.GenTextures(1, &handle)
	gles2.BindTexture(gles2.TEXTURE_2D, handle)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MIN_FILTER, f)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_MAG_FILTER, f)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_WRAP_S, gles2.CLAMP_TO_EDGE)
	gles2.TexParameteri(gles2.TEXTURE_2D, gles2.TEXTURE_WRAP_T, gles2.CLAMP_TO_EDGE)

	gles2.TexStorage2D(gles2.TEXTURE_2D, 1, gles2.RGBA8, width, height)
	gles2.TexSubImage2D(gles2.TEXTURE_2D, 0, 0, 0, width, height,
		gles2.RGBA, gles2.UNSIGNED_BYTE, gles2.Ptr(data))

	return gpu.Texture(handle)
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(t gpu.Texture) {
	handle := uint32(t)
	gles2.DeleteTextures(1, &handle)
}

func accessToGL(access gpu.Access) uint32 {
	switch access {
	case gpu.ReadOnly:
		return gles2.READ_ONLY
	case gpu.WriteOnly:
		return gles2.WRITE_ONLY
	}
	return gles2.READ_WRITE
}

// BindImage implements the gpu.Device interface.
func (dev *Device) BindImage(unit int32, t gpu.Texture, access gpu.Access) {
	gles2.BindImageTexture(uint32(unit), uint32(t), 0, false, 0, accessToGL(access), gles2.R32UI)
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(unit int32, t gpu.Texture) {
	gles2.ActiveTexture(gles2.TEXTURE0 + uint32(unit))
	gles2.BindTexture(gles2.TEXTURE_2D, uint32(t))
}

// CreateQuad implements the gpu.Device interface.
func (dev *Device) CreateQuad() gpu.Quad {
	var q quad

	gles2.GenVertexArrays(1, &q.vao)
	gles2.BindVertexArray(q.vao)

	gles2.GenBuffers(1, &q.vbo)
	gles2.BindBuffer(gles2.ARRAY_BUFFER, q.vbo)
	gles2.BufferData(gles2.ARRAY_BUFFER, len(gpu.QuadVertices)*4, gles2.Ptr(gpu.QuadVertices), gles2.STATIC_DRAW)

	gles2.GenBuffers(1, &q.ebo)
	gles2.BindBuffer(gles2.ELEMENT_ARRAY_BUFFER, q.ebo)
	gles2.BufferData(gles2.ELEMENT_ARRAY_BUFFER, len(gpu.QuadIndices)*4, gles2.Ptr(gpu.QuadIndices), gles2.STATIC_DRAW)

	// the position attribute is always bound to location zero
	gles2.EnableVertexAttribArray(0)
	gles2.VertexAttribPointer(0, 2, gles2.FLOAT, false, 0, nil)

	gles2.BindVertexArray(0)

	dev.quads[gpu.Quad(q.vao)] = q
	return gpu.Quad(q.vao)
}

// DrawQuad implements the gpu.Device interface.
func (dev *Device) DrawQuad(h gpu.Quad) {
	gles2.BindVertexArray(uint32(h))
	gles2.DrawElements(gles2.TRIANGLES, int32(len(gpu.QuadIndices)), gles2.UNSIGNED_INT, nil)
	gles2.BindVertexArray(0)
}

// DeleteQuad implements the gpu.Device interface.
func (dev *Device) DeleteQuad(h gpu.Quad) {
	q, ok := dev.quads[h]
	if !ok {
		return
	}
	gles2.DeleteBuffers(1, &q.ebo)
	gles2.DeleteBuffers(1, &q.vbo)
	gles2.DeleteVertexArrays(1, &q.vao)
	delete(dev.quads, h)
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(width int32, height int32) {
	gles2.Viewport(0, 0, width, height)
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	gles2.ClearColor(0, 0, 0, 1)
	gles2.Clear(gles2.COLOR_BUFFER_BIT)
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(width int32, height int32) []byte {
	pix := make([]byte, int(width)*int(height)*4)
	gles2.ReadPixels(0, 0, width, height, gles2.RGBA, gles2.UNSIGNED_BYTE, gles2.Ptr(pix))
	return pix
}

// CheckError implements the gpu.Device interface. Every pending error is
// drained from the backend and the first one is returned.
func (dev *Device) CheckError(op string) error {
	var first uint32
	for {
		code := gles2.GetError()
		if code == gles2.NO_ERROR {
			break // for loop
		}
		if first == 0 {
			first = code
		}
	}
	if first != 0 {
		return &gpu.BackendError{Op: op, Code: first}
	}
	return nil
}
