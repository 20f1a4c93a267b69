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

// EmulatorSource is a fragment program that declares the bindings of the
// emulation program. It does nothing but is sufficient for the Device to
// discover the bindings.
const EmulatorSource = `#version 310 es
precision highp float;
precision highp int;
layout(binding = 0, r32ui) uniform highp uimage2D memory;
uniform int keyEvent;
out vec4 color;
void main() {
	color = vec4(0.0);
}
`

// ConsoleSource is a fragment program that declares the bindings of the
// console program.
const ConsoleSource = `#version 310 es
precision highp float;
precision highp int;
layout(binding = 1, r32ui) uniform highp uimage2D memory;
uniform sampler2D font;
uniform bool showFramebuffer;
out vec4 color;
void main() {
	color = vec4(0.0);
}
`
