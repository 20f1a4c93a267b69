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

package scheduler

import (
	"fmt"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/shaders"
	"github.com/jetsetilly/riskyv/userinput"
)

// names of the passes. used when binding the memory image and in error
// messages
const (
	PassEmulate = "emulate"
	PassPresent = "present"
)

// Names of the bindings used by the two programs.
const (
	BindMemory          = "memory"
	BindKeyEvent        = "keyEvent"
	BindFont            = "font"
	BindShowFramebuffer = "showFramebuffer"
)

// EmulatorBindings are the bindings of the emulation program.
var EmulatorBindings = []string{BindMemory, BindKeyEvent}

// ConsoleBindings are the bindings of the console program.
var ConsoleBindings = []string{BindMemory, BindFont, BindShowFramebuffer}

// the texture unit used by the font atlas
const fontUnit = 0

// Resources used by the Scheduler. The Scheduler does not own the resources
// and will not destroy them.
type Resources struct {
	Emulator *shaders.Program
	Console  *shaders.Program
	Memory   *memory.Image
	Font     gpu.Texture
	Quad     gpu.Quad
}

// Scheduler runs the emulation and presentation passes.
type Scheduler struct {
	dev   gpu.Device
	res   Resources
	input *userinput.State

	frames uint64

	// the key event sent to the emulation program on the most recent frame
	lastKeyEvent int32

	// key events are logged as they are sent when true
	keyLog bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(dev gpu.Device, res Resources, input *userinput.State) *Scheduler {
	return &Scheduler{
		dev:   dev,
		res:   res,
		input: input,
	}
}

// Frames returns the number of completed frames.
func (sch *Scheduler) Frames() uint64 {
	return sch.frames
}

// SetKeyEventLogging turns the logging of key events on or off.
func (sch *Scheduler) SetKeyEventLogging(on bool) {
	sch.keyLog = on
}

// LastKeyEvent returns the key event sent on the most recent frame.
func (sch *Scheduler) LastKeyEvent() int32 {
	return sch.lastKeyEvent
}

func (sch *Scheduler) check(op string) error {
	if err := sch.dev.CheckError(op); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

// Frame runs both passes for a display of the given size. Any error is
// fatal and the loop should stop.
func (sch *Scheduler) Frame(width int32, height int32) error {
	sch.dev.Clear()
	if err := sch.check("clear"); err != nil {
		return err
	}

	sch.dev.Viewport(width, height)
	if err := sch.check("viewport"); err != nil {
		return err
	}

	if err := sch.emulate(); err != nil {
		return err
	}

	if err := sch.present(); err != nil {
		return err
	}

	sch.frames++

	return nil
}

// bind the memory image to the unit declared by the program's memory binding.
// returns false if the program has no memory binding
func (sch *Scheduler) bindMemory(prg *shaders.Program, pass string) (bool, error) {
	unit, ok := prg.ImageUnit(BindMemory)
	if !ok {
		return false, nil
	}
	if err := sch.res.Memory.Bind(pass, unit); err != nil {
		return false, fmt.Errorf("scheduler: %w", err)
	}
	return true, nil
}

func (sch *Scheduler) releaseMemory(bound bool, pass string) error {
	if !bound {
		return nil
	}
	if err := sch.res.Memory.Release(pass); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

func (sch *Scheduler) emulate() error {
	prg := sch.res.Emulator

	if err := prg.Use(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	bound, err := sch.bindMemory(prg, PassEmulate)
	if err != nil {
		return err
	}

	// at most one key event per frame. zero if there is no event
	sch.lastKeyEvent = sch.input.Queue.PopOldestOrZero()
	if sch.lastKeyEvent != 0 {
		logger.Logf(logger.Allowed(&sch.keyLog), "scheduler", "frame %d: key event %d", sch.frames, sch.lastKeyEvent)
	}
	if err := prg.SetInt(BindKeyEvent, sch.lastKeyEvent); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	sch.dev.DrawQuad(sch.res.Quad)
	if err := sch.check("draw " + PassEmulate); err != nil {
		return err
	}

	return sch.releaseMemory(bound, PassEmulate)
}

func (sch *Scheduler) present() error {
	prg := sch.res.Console

	if err := prg.Use(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if prg.Location(BindFont).Valid() {
		sch.dev.BindTexture(fontUnit, sch.res.Font)
		if err := sch.check("bind font"); err != nil {
			return err
		}
		if err := prg.SetInt(BindFont, fontUnit); err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
	}

	bound, err := sch.bindMemory(prg, PassPresent)
	if err != nil {
		return err
	}

	if err := prg.SetInt(BindShowFramebuffer, boolToInt32(sch.input.Toggle.Show())); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	sch.dev.DrawQuad(sch.res.Quad)
	if err := sch.check("draw " + PassPresent); err != nil {
		return err
	}

	return sch.releaseMemory(bound, PassPresent)
}

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
