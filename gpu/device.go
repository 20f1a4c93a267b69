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

// Device is the graphics API used by the harness. Methods that create
// resources never fail directly; failure is reported by the next call to
// CheckError().
type Device interface {
	// CompileShader compiles the source for the stage. If compilation fails
	// the boolean is false and the string contains the diagnostic text of
	// the compiler. The shader handle should still be deleted.
	CompileShader(stage Stage, source string) (Shader, string, bool)
	DeleteShader(Shader)

	// LinkProgram links a vertex and fragment shader. Attributes are bound
	// to locations before linking, the first attribute to location zero and
	// so on. If linking fails the boolean is false and the string contains
	// the link log. The program handle should still be deleted.
	LinkProgram(vertex Shader, fragment Shader, attributes []string) (Program, string, bool)
	DeleteProgram(Program)
	UseProgram(Program)

	// UniformLocation returns NoLocation if the name is not an active
	// uniform of the program.
	UniformLocation(p Program, name string) Location

	// ImageUnit returns the image unit assigned to an image uniform.
	ImageUnit(p Program, l Location) int32

	// SetInt sets an integer (or boolean) uniform of the program currently
	// in use.
	SetInt(l Location, v int32)

	// CreateImageR32UI creates a single mip level image of 32bit unsigned
	// integers, initialised with data. Length of data must be
	// width*height*4.
	CreateImageR32UI(width int32, height int32, data []byte) Texture

	// CreateTextureRGBA8 creates a single mip level texture of 8bit RGBA
	// values, initialised with data. Length of data must be
	// width*height*4.
	CreateTextureRGBA8(width int32, height int32, filter Filter, data []byte) Texture
	DeleteTexture(Texture)

	// BindImage binds a texture created by CreateImageR32UI() to an image
	// unit.
	BindImage(unit int32, t Texture, access Access)

	// BindTexture binds a texture to a texture unit for sampling.
	BindTexture(unit int32, t Texture)

	// CreateQuad creates the vertex data for a full-screen quad, using
	// QuadVertices and QuadIndices.
	CreateQuad() Quad
	DrawQuad(Quad)
	DeleteQuad(Quad)

	Viewport(width int32, height int32)
	Clear()

	// ReadPixels returns the RGBA8 contents of the default framebuffer. The
	// first row of the returned data is the bottom row of the framebuffer.
	ReadPixels(width int32, height int32) []byte

	// CheckError returns a *BackendError if the backend has recorded an
	// error since the last call. The op argument is used to identify the
	// call site in the error message.
	CheckError(op string) error
}
