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

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/userinput"
)

// Config for a new Platform.
type Config struct {
	Title  string
	Width  int32
	Height int32

	// synchronise buffer swaps with the vertical blank
	VSync bool
}

// Platform is the SDL window and GL context.
type Platform struct {
	window  *sdl.Window
	context sdl.GLContext

	// refresh rate of the display in Hz. zero if unknown
	refresh int32
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The GL context is current on return.
func NewPlatform(cfg Config) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// image load/store from the fragment stage requires OpenGL ES 3.1
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		plt.refresh = mode.RefreshRate
		logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.refresh)
	}

	var err error
	plt.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Width, cfg.Height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.context, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	if err := plt.window.GLMakeCurrent(plt.context); err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	swap := 0
	if cfg.VSync {
		swap = 1
	}
	if err := sdl.GLSetSwapInterval(swap); err != nil {
		// not fatal. the frame rate will be limited by the harness instead
		logger.Logf(logger.Allow, "sdl", "cannot set swap interval: %v", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d ES", major, minor)

	return plt, nil
}

// Destroy the GL context and the window. Any GPU resources must be destroyed
// before calling this function.
func (plt *Platform) Destroy() {
	if plt.context != nil {
		sdl.GLDeleteContext(plt.context)
		plt.context = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}

// RefreshRate returns the refresh rate of the display in Hz. Returns zero if
// the refresh rate is unknown.
func (plt *Platform) RefreshRate() int {
	return int(plt.refresh)
}

// DrawableSize returns the size of the window in pixels.
func (plt *Platform) DrawableSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// Swap the display buffers.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// Service drains the SDL event queue, updating the input state. Returns the
// outcome of the events.
func (plt *Platform) Service(input *userinput.State) userinput.Events {
	var evs userinput.Events

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			evs.Quit = true

		case *sdl.KeyboardEvent:
			switch input.HandleKey(keyFromEvent(ev)) {
			case userinput.ActionScreenshot:
				evs.Screenshot = true
			}
		}
	}

	return evs
}

func keyFromEvent(ev *sdl.KeyboardEvent) userinput.Key {
	return userinput.Key{
		ScanCode: nativeScanCode(ev.Keysym.Scancode),
		Name:     sdl.GetKeyName(ev.Keysym.Sym),
		Pressed:  ev.Type == sdl.KEYDOWN,
		Repeat:   ev.Repeat != 0,
	}
}
