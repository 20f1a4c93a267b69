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

package userinput

import (
	"strings"

	"github.com/jetsetilly/riskyv/logger"
)

// Key is a key transition reported by the platform.
type Key struct {
	// physical scan code of the key, numbered as X11 and Wayland report it
	// (evdev code plus eight)
	ScanCode int

	// name of the key in the current keyboard layout. used to identify the
	// toggle and screenshot keys
	Name string

	Pressed bool

	// true if the event was generated by the key repeat of the platform
	Repeat bool
}

// Action is the result of handling a Key.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionQueued
	ActionToggle
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionQueued:
		return "queued"
	case ActionToggle:
		return "toggle"
	case ActionScreenshot:
		return "screenshot"
	}
	return "none"
}

// State is the input state of the application.
type State struct {
	Queue  Queue
	Toggle Toggle

	// names of the toggle and screenshot keys. comparison is case
	// insensitive
	ToggleKey     string
	ScreenshotKey string
}

// NewState is the preferred method of initialisation for the State type.
func NewState(toggleKey string, screenshotKey string) *State {
	return &State{
		ToggleKey:     toggleKey,
		ScreenshotKey: screenshotKey,
	}
}

// HandleKey updates the State with the key transition. Key repeats are
// ignored. The toggle key is acted on when it is pressed and the screenshot
// key when it is released; neither is ever queued.
func (st *State) HandleKey(k Key) Action {
	if k.Repeat {
		return ActionNone
	}

	if st.ToggleKey != "" && strings.EqualFold(k.Name, st.ToggleKey) {
		if !k.Pressed {
			return ActionNone
		}
		st.Toggle.Flip()
		logger.Log(logger.Allow, "userinput", st.Toggle.String())
		return ActionToggle
	}

	if st.ScreenshotKey != "" && strings.EqualFold(k.Name, st.ScreenshotKey) {
		if k.Pressed {
			return ActionNone
		}
		return ActionScreenshot
	}

	if k.ScanCode <= 0 || k.ScanCode >= MaxScanCode {
		return ActionNone
	}

	st.Queue.KeyTransition(k.ScanCode, k.Pressed)
	return ActionQueued
}

// Events summarises the events drained from the platform in one call.
type Events struct {
	// the user has asked to close the window
	Quit bool

	// the screenshot key has been released
	Screenshot bool
}
