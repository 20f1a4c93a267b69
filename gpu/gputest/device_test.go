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

package gputest_test

import (
	"testing"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/gpu/gputest"
	"github.com/jetsetilly/riskyv/test"
)

const fragment = `#version 310 es
precision highp float;
layout(binding = 2, r32ui) uniform highp uimage2D memory;
// uniform int commented;
uniform int keyEvent;
uniform sampler2D font;
out vec4 color;
void main() {}
`

func TestReflection(t *testing.T) {
	dev := gputest.NewDevice()

	vs, _, ok := dev.CompileShader(gpu.VertexStage, "in vec2 pos;")
	test.DemandSuccess(t, ok)
	fs, _, ok := dev.CompileShader(gpu.FragmentStage, fragment)
	test.DemandSuccess(t, ok)
	p, _, ok := dev.LinkProgram(vs, fs, []string{gpu.PositionAttribute})
	test.DemandSuccess(t, ok)

	mem := dev.UniformLocation(p, "memory")
	test.ExpectSuccess(t, mem.Valid())
	test.ExpectEquality(t, dev.ImageUnit(p, mem), int32(2))

	test.ExpectSuccess(t, dev.UniformLocation(p, "keyEvent").Valid())
	test.ExpectSuccess(t, dev.UniformLocation(p, "font").Valid())
	test.ExpectFailure(t, dev.UniformLocation(p, "commented").Valid())
	test.ExpectFailure(t, dev.UniformLocation(p, "missing").Valid())

	dev.UseProgram(p)
	test.ExpectSuccess(t, dev.CheckError("use"))
	dev.SetInt(dev.UniformLocation(p, "keyEvent"), 42)
	test.ExpectSuccess(t, dev.CheckError("set"))

	v, ok := dev.Value(p, "keyEvent")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, int32(42))

	test.ExpectEquality(t, dev.Unchecked(), 0)
	calls := dev.Calls()
	test.ExpectEquality(t, calls[len(calls)-1], "SetInt keyEvent=42")
}

func TestFailures(t *testing.T) {
	dev := gputest.NewDevice()
	dev.FailCompile[gpu.FragmentStage] = "0:1: syntax error"

	_, log, ok := dev.CompileShader(gpu.VertexStage, "")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, log, "")

	_, log, ok = dev.CompileShader(gpu.FragmentStage, "")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, log, "0:1: syntax error")

	dev.FailLink = "link failed"
	_, log, ok = dev.LinkProgram(1, 2, nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, log, "link failed")

	dev.FailCheck = "draw"
	test.ExpectSuccess(t, dev.CheckError("clear"))
	test.ExpectFailure(t, dev.CheckError("draw"))
}

func TestUnchecked(t *testing.T) {
	dev := gputest.NewDevice()
	dev.Clear()
	dev.Viewport(10, 10)
	test.ExpectEquality(t, dev.Unchecked(), 1)
	test.ExpectSuccess(t, dev.CheckError("viewport"))
	dev.Clear()
	test.ExpectSuccess(t, dev.CheckError("clear"))
	test.ExpectEquality(t, dev.Unchecked(), 1)
}

func TestResources(t *testing.T) {
	dev := gputest.NewDevice()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	img := dev.CreateImageR32UI(2, 1, data)
	tex := dev.CreateTextureRGBA8(1, 2, gpu.Linear, data)
	q := dev.CreateQuad()
	test.ExpectEquality(t, dev.Live(), 3)

	// the device keeps its own copy of the data
	data[0] = 0xff
	test.ExpectEquality(t, dev.Texture(img).Data[0], byte(1))
	test.ExpectSuccess(t, dev.Texture(img).Integer)
	test.ExpectEquality(t, dev.Texture(tex).Filter, gpu.Linear)

	dev.DeleteTexture(img)
	dev.DeleteTexture(tex)
	dev.DeleteQuad(q)
	test.ExpectEquality(t, dev.Live(), 0)

	px := dev.ReadPixels(2, 2)
	test.ExpectEquality(t, len(px), 16)
}
