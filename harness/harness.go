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

package harness

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/performance"
	"github.com/jetsetilly/riskyv/resources"
	"github.com/jetsetilly/riskyv/scheduler"
	"github.com/jetsetilly/riskyv/shaders"
	"github.com/jetsetilly/riskyv/userinput"
)

// Platform is the window in which the frames are displayed.
type Platform interface {
	// Service drains pending events, forwarding key transitions to the
	// input state
	Service(input *userinput.State) userinput.Events

	// DrawableSize returns the size of the display in pixels
	DrawableSize() (int32, int32)

	// Swap the display buffers
	Swap()

	// RefreshRate returns the refresh rate of the display in Hz. zero if
	// the refresh rate is unknown
	RefreshRate() int
}

// frame rate report period if the preference cannot be used
const fpsPeriod = 5 * time.Second

// the refresh rate assumed if the platform doesn't know the actual rate
const nominalRefresh = 60

// Harness owns the GPU resources and runs the frame loop.
type Harness struct {
	dev   gpu.Device
	prefs *Preferences

	// the input state of the application. updated by the platform and read
	// by the scheduler
	Input *userinput.State

	res scheduler.Resources
	sch *scheduler.Scheduler

	// screenshots are encoded and saved in the background
	screenshots sync.WaitGroup
}

// New creates every resource described by the preferences. If any resource
// cannot be created, the resources already created are destroyed and the
// error is returned.
func New(dev gpu.Device, p *Preferences) (*Harness, error) {
	h := &Harness{
		dev:   dev,
		prefs: p,
		Input: userinput.NewState(p.ToggleKey.String(), p.ScreenshotKey.String()),
	}

	if err := h.setup(); err != nil {
		h.Destroy()
		return nil, fmt.Errorf("harness: %w", err)
	}

	h.sch = scheduler.NewScheduler(dev, h.res, h.Input)
	h.sch.SetKeyEventLogging(p.LogKeyEvents.Get().(bool))

	return h, nil
}

func (h *Harness) setup() error {
	var vertex []byte
	if v := h.prefs.Vertex.String(); v != "" {
		var err error
		vertex, err = resources.Load(v)
		if err != nil {
			return err
		}
	}

	ldr := shaders.NewLoader(h.dev, h.prefs.Strict.Get().(bool))

	compile := func(name string, filename string, bindings []string) (*shaders.Program, error) {
		src, err := resources.Load(filename)
		if err != nil {
			return nil, err
		}
		prg, err := ldr.Compile(name, vertex, src)
		if err != nil {
			return nil, err
		}
		if err := prg.Resolve(bindings...); err != nil {
			prg.Destroy()
			return nil, err
		}
		return prg, nil
	}

	var err error

	h.res.Console, err = compile("console", h.prefs.Console.String(), scheduler.ConsoleBindings)
	if err != nil {
		return err
	}

	h.res.Emulator, err = compile("emulator", h.prefs.Emulator.String(), scheduler.EmulatorBindings)
	if err != nil {
		return err
	}

	filter, err := gpu.ParseFilter(h.prefs.FontFilter.String())
	if err != nil {
		return err
	}
	fw := h.prefs.FontWidth.Get().(int)
	fh := h.prefs.FontHeight.Get().(int)
	font, err := resources.LoadSized(h.prefs.Font.String(), fw*fh*4)
	if err != nil {
		return err
	}
	h.res.Font = h.dev.CreateTextureRGBA8(int32(fw), int32(fh), filter, font)
	if err := h.dev.CheckError("create font"); err != nil {
		return err
	}

	data, err := resources.Load(h.prefs.Snapshot.String())
	if err != nil {
		return err
	}
	snap, err := memory.NewSnapshot(data, h.prefs.MemorySpec())
	if err != nil {
		return err
	}
	h.res.Memory, err = memory.Upload(h.dev, snap)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "harness", "memory: %s", snap.Spec())

	h.res.Quad = h.dev.CreateQuad()
	if err := h.dev.CheckError("create quad"); err != nil {
		return err
	}

	return nil
}

// Destroy every resource. The Harness should not be used after this call.
// Waits for any screenshots to finish saving.
func (h *Harness) Destroy() {
	h.screenshots.Wait()

	if h.res.Quad != 0 {
		h.dev.DeleteQuad(h.res.Quad)
		h.res.Quad = 0
	}
	if h.res.Memory != nil {
		h.res.Memory.Destroy()
		h.res.Memory = nil
	}
	if h.res.Font != 0 {
		h.dev.DeleteTexture(h.res.Font)
		h.res.Font = 0
	}
	if h.res.Emulator != nil {
		h.res.Emulator.Destroy()
		h.res.Emulator = nil
	}
	if h.res.Console != nil {
		h.res.Console.Destroy()
		h.res.Console = nil
	}
}

// Frames returns the number of completed frames.
func (h *Harness) Frames() uint64 {
	if h.sch == nil {
		return 0
	}
	return h.sch.Frames()
}

// time between frame rate reports. the preference is in seconds
func (h *Harness) fpsPeriod() time.Duration {
	d := time.Duration(h.prefs.FPSPeriod.Get().(float64) * float64(time.Second))
	if d <= 0 {
		return fpsPeriod
	}
	return d
}

// Run the frame loop until the platform reports that the window should close
// or a signal arrives on the interrupt channel. The interrupt channel can be
// nil.
//
// A nil error is returned on a clean close. Any other error is fatal.
func (h *Harness) Run(plt Platform, interrupt <-chan os.Signal) error {
	refresh := plt.RefreshRate()
	if refresh <= 0 {
		refresh = nominalRefresh
	}
	fps := performance.NewFPS(float64(refresh), h.fpsPeriod(), time.Now())

	limiter := performance.NewLimiter(0)
	if !h.prefs.VSync.Get().(bool) {
		limiter.SetLimit(h.prefs.MaxFPS.Get().(int))
	}

	for {
		evs := plt.Service(h.Input)

		select {
		case sig := <-interrupt:
			logger.Logf(logger.Allow, "harness", "caught signal: %v", sig)
			evs.Quit = true
		default:
		}

		// checked before the emulation pass so that a frame is never
		// partially submitted
		if evs.Quit {
			logger.Logf(logger.Allow, "harness", "closing after %d frames", h.sch.Frames())
			return nil
		}

		width, height := plt.DrawableSize()
		if err := h.sch.Frame(width, height); err != nil {
			return fmt.Errorf("harness: %w", err)
		}

		if evs.Screenshot {
			if err := h.screenshot(width, height); err != nil {
				return err
			}
		}

		plt.Swap()
		limiter.Wait()

		if m, ok := fps.Tick(time.Now()); ok {
			logger.Logf(logger.Allow, "harness", "%s (queue length %d)", m, h.Input.Queue.Len())
		}
	}
}
