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
	"errors"
	"fmt"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/prefs"
)

// Preferences for the harness.
type Preferences struct {
	dsk *prefs.Disk

	MemoryWidth  prefs.Int
	MemoryHeight prefs.Int
	MemoryPC     prefs.Int
	MemoryDTB    prefs.Int

	Snapshot   prefs.String
	Font       prefs.String
	FontWidth  prefs.Int
	FontHeight prefs.Int
	FontFilter prefs.String

	// an empty vertex value means the embedded vertex stage is used
	Vertex   prefs.String
	Emulator prefs.String
	Console  prefs.String
	Strict   prefs.Bool

	WindowWidth  prefs.Int
	WindowHeight prefs.Int
	VSync        prefs.Bool

	// frame rate limit when vsync is off. zero for no limit
	MaxFPS prefs.Int

	ToggleKey     prefs.String
	ScreenshotKey prefs.String

	// log every key event as it is sent to the emulation program
	LogKeyEvents prefs.Bool

	// seconds between frame rate reports
	FPSPeriod prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at path, if it exists,
// and then from the top of the prefs command line stack.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("value must be greater than zero")
		}
		return nil
	}
	for _, i := range []*prefs.Int{&p.MemoryWidth, &p.MemoryHeight, &p.FontWidth, &p.FontHeight, &p.WindowWidth, &p.WindowHeight} {
		i.SetHookPre(positive)
	}

	word := func(v prefs.Value) error {
		if n := int64(v.(int)); n < 0 || n > 0xffffffff {
			return fmt.Errorf("value must fit in 32 bits")
		}
		return nil
	}
	p.MemoryPC.SetHookPre(word)
	p.MemoryDTB.SetHookPre(word)

	p.FPSPeriod.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("value must be greater than zero")
		}
		return nil
	})

	p.FontFilter.SetHookPre(func(v prefs.Value) error {
		_, err := gpu.ParseFilter(v.(string))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	entries := []struct {
		key  string
		pref interface {
			Set(prefs.Value) error
			Get() prefs.Value
			String() string
		}
	}{
		{"memory.width", &p.MemoryWidth},
		{"memory.height", &p.MemoryHeight},
		{"memory.pc", &p.MemoryPC},
		{"memory.dtb", &p.MemoryDTB},
		{"assets.snapshot", &p.Snapshot},
		{"assets.font", &p.Font},
		{"assets.font.width", &p.FontWidth},
		{"assets.font.height", &p.FontHeight},
		{"assets.font.filter", &p.FontFilter},
		{"shaders.vertex", &p.Vertex},
		{"shaders.emulator", &p.Emulator},
		{"shaders.console", &p.Console},
		{"shaders.strict", &p.Strict},
		{"window.width", &p.WindowWidth},
		{"window.height", &p.WindowHeight},
		{"window.vsync", &p.VSync},
		{"window.maxfps", &p.MaxFPS},
		{"input.togglekey", &p.ToggleKey},
		{"input.screenshotkey", &p.ScreenshotKey},
		{"log.keyevents", &p.LogKeyEvents},
		{"log.fpsperiod", &p.FPSPeriod},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, fmt.Errorf("harness: %w", err)
		}
	}

	if err := p.dsk.Load(); err != nil && !errors.Is(err, prefs.ErrNoPrefsFile) {
		return nil, fmt.Errorf("harness: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.MemoryWidth.Set(memory.Reference.Width)
	_ = p.MemoryHeight.Set(memory.Reference.Height)
	_ = p.MemoryPC.Set(int(memory.Reference.PC))
	_ = p.MemoryDTB.Set(int(memory.Reference.DTB))
	_ = p.Snapshot.Set("mem.rgba")
	_ = p.Font.Set("consolefont.rgba")
	_ = p.FontWidth.Set(3072)
	_ = p.FontHeight.Set(18)
	_ = p.FontFilter.Set(gpu.Nearest.String())
	_ = p.Vertex.Set("")
	_ = p.Emulator.Set("emulator.glsl")
	_ = p.Console.Set("console.glsl")
	_ = p.Strict.Set(false)
	_ = p.WindowWidth.Set(640)
	_ = p.WindowHeight.Set(480)
	_ = p.VSync.Set(true)
	_ = p.MaxFPS.Set(60)
	_ = p.ToggleKey.Set("F11")
	_ = p.ScreenshotKey.Set("F12")
	_ = p.LogKeyEvents.Set(false)
	_ = p.FPSPeriod.Set(5.0)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("harness: %w", err)
	}
	return nil
}

// MemorySpec returns the memory layout described by the preferences.
func (p *Preferences) MemorySpec() memory.Spec {
	return memory.Spec{
		Width:  p.MemoryWidth.Get().(int),
		Height: p.MemoryHeight.Get().(int),
		PC:     uint32(p.MemoryPC.Get().(int)),
		DTB:    uint32(p.MemoryDTB.Get().(int)),
	}
}
