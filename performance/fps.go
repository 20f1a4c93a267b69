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

package performance

import (
	"fmt"
	"time"
)

// FPS counts frames and reports the frame rate over a sampling period.
type FPS struct {
	// the nominal refresh rate. used to calculate the accuracy value
	refresh float64

	period time.Duration
	frames int
	start  time.Time
}

// NewFPS is the preferred method of initialisation for the FPS type. The
// period argument is the minimum duration between measurements.
func NewFPS(refresh float64, period time.Duration, now time.Time) *FPS {
	return &FPS{
		refresh: refresh,
		period:  period,
		start:   now,
	}
}

// Measurement is the result of a completed sampling period.
type Measurement struct {
	FPS float64

	// accuracy as a percentage of the nominal refresh rate
	Accuracy float64
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.2f fps (%.1f%%)", m.FPS, m.Accuracy)
}

// Tick records a completed frame. If the sampling period has elapsed the
// measurement is returned along with a true value and a new period begins.
func (f *FPS) Tick(now time.Time) (Measurement, bool) {
	f.frames++

	d := now.Sub(f.start)
	if d < f.period {
		return Measurement{}, false
	}

	m := CalcFPS(f.frames, d.Seconds(), f.refresh)
	f.frames = 0
	f.start = now

	return m, true
}

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value compared to the
// nominal refresh rate.
func CalcFPS(numFrames int, duration float64, refresh float64) Measurement {
	if duration <= 0 {
		return Measurement{}
	}
	m := Measurement{FPS: float64(numFrames) / duration}
	if refresh > 0 {
		m.Accuracy = 100 * m.FPS / refresh
	}
	return m
}
