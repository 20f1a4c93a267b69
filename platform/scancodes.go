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

package platform

import "github.com/veandco/go-sdl2/sdl"

// guest programs are written against the scan codes delivered by X11 and
// Wayland. those are the Linux evdev codes offset by eight
const nativeOffset = 8

// SDL scan codes use USB HID numbering. the table maps them back to evdev
// codes. it is the inverse of the table in SDL's scancodes_linux.h, limited
// to the keys of a standard 105 key keyboard
var evdevCodes = map[sdl.Scancode]int{
	sdl.SCANCODE_ESCAPE:    1,
	sdl.SCANCODE_1:         2,
	sdl.SCANCODE_2:         3,
	sdl.SCANCODE_3:         4,
	sdl.SCANCODE_4:         5,
	sdl.SCANCODE_5:         6,
	sdl.SCANCODE_6:         7,
	sdl.SCANCODE_7:         8,
	sdl.SCANCODE_8:         9,
	sdl.SCANCODE_9:         10,
	sdl.SCANCODE_0:         11,
	sdl.SCANCODE_MINUS:     12,
	sdl.SCANCODE_EQUALS:    13,
	sdl.SCANCODE_BACKSPACE: 14,
	sdl.SCANCODE_TAB:       15,

	sdl.SCANCODE_Q:            16,
	sdl.SCANCODE_W:            17,
	sdl.SCANCODE_E:            18,
	sdl.SCANCODE_R:            19,
	sdl.SCANCODE_T:            20,
	sdl.SCANCODE_Y:            21,
	sdl.SCANCODE_U:            22,
	sdl.SCANCODE_I:            23,
	sdl.SCANCODE_O:            24,
	sdl.SCANCODE_P:            25,
	sdl.SCANCODE_LEFTBRACKET:  26,
	sdl.SCANCODE_RIGHTBRACKET: 27,
	sdl.SCANCODE_RETURN:       28,
	sdl.SCANCODE_LCTRL:        29,

	sdl.SCANCODE_A:          30,
	sdl.SCANCODE_S:          31,
	sdl.SCANCODE_D:          32,
	sdl.SCANCODE_F:          33,
	sdl.SCANCODE_G:          34,
	sdl.SCANCODE_H:          35,
	sdl.SCANCODE_J:          36,
	sdl.SCANCODE_K:          37,
	sdl.SCANCODE_L:          38,
	sdl.SCANCODE_SEMICOLON:  39,
	sdl.SCANCODE_APOSTROPHE: 40,
	sdl.SCANCODE_GRAVE:      41,
	sdl.SCANCODE_LSHIFT:     42,
	sdl.SCANCODE_BACKSLASH:  43,

	sdl.SCANCODE_Z:           44,
	sdl.SCANCODE_X:           45,
	sdl.SCANCODE_C:           46,
	sdl.SCANCODE_V:           47,
	sdl.SCANCODE_B:           48,
	sdl.SCANCODE_N:           49,
	sdl.SCANCODE_M:           50,
	sdl.SCANCODE_COMMA:       51,
	sdl.SCANCODE_PERIOD:      52,
	sdl.SCANCODE_SLASH:       53,
	sdl.SCANCODE_RSHIFT:      54,
	sdl.SCANCODE_KP_MULTIPLY: 55,
	sdl.SCANCODE_LALT:        56,
	sdl.SCANCODE_SPACE:       57,
	sdl.SCANCODE_CAPSLOCK:    58,

	sdl.SCANCODE_F1:  59,
	sdl.SCANCODE_F2:  60,
	sdl.SCANCODE_F3:  61,
	sdl.SCANCODE_F4:  62,
	sdl.SCANCODE_F5:  63,
	sdl.SCANCODE_F6:  64,
	sdl.SCANCODE_F7:  65,
	sdl.SCANCODE_F8:  66,
	sdl.SCANCODE_F9:  67,
	sdl.SCANCODE_F10: 68,

	sdl.SCANCODE_NUMLOCKCLEAR: 69,
	sdl.SCANCODE_SCROLLLOCK:   70,
	sdl.SCANCODE_KP_7:         71,
	sdl.SCANCODE_KP_8:         72,
	sdl.SCANCODE_KP_9:         73,
	sdl.SCANCODE_KP_MINUS:     74,
	sdl.SCANCODE_KP_4:         75,
	sdl.SCANCODE_KP_5:         76,
	sdl.SCANCODE_KP_6:         77,
	sdl.SCANCODE_KP_PLUS:      78,
	sdl.SCANCODE_KP_1:         79,
	sdl.SCANCODE_KP_2:         80,
	sdl.SCANCODE_KP_3:         81,
	sdl.SCANCODE_KP_0:         82,
	sdl.SCANCODE_KP_PERIOD:    83,

	sdl.SCANCODE_NONUSBACKSLASH: 86,
	sdl.SCANCODE_F11:            87,
	sdl.SCANCODE_F12:            88,

	sdl.SCANCODE_KP_ENTER:    96,
	sdl.SCANCODE_RCTRL:       97,
	sdl.SCANCODE_KP_DIVIDE:   98,
	sdl.SCANCODE_PRINTSCREEN: 99,
	sdl.SCANCODE_RALT:        100,
	sdl.SCANCODE_HOME:        102,
	sdl.SCANCODE_UP:          103,
	sdl.SCANCODE_PAGEUP:      104,
	sdl.SCANCODE_LEFT:        105,
	sdl.SCANCODE_RIGHT:       106,
	sdl.SCANCODE_END:         107,
	sdl.SCANCODE_DOWN:        108,
	sdl.SCANCODE_PAGEDOWN:    109,
	sdl.SCANCODE_INSERT:      110,
	sdl.SCANCODE_DELETE:      111,
	sdl.SCANCODE_KP_EQUALS:   117,
	sdl.SCANCODE_PAUSE:       119,
	sdl.SCANCODE_LGUI:        125,
	sdl.SCANCODE_RGUI:        126,
	sdl.SCANCODE_APPLICATION: 127,
}

// nativeScanCode converts an SDL scan code to the code the guest expects.
// Keys without an entry in the table convert to zero, which is never queued.
func nativeScanCode(sc sdl.Scancode) int {
	if c, ok := evdevCodes[sc]; ok {
		return c + nativeOffset
	}
	return 0
}
