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
	"time"
)

// Limiter stalls the caller so that Wait() returns no more often than the
// requested rate. This is a rough limiter that is only useful when the
// machine can comfortably exceed the rate.
type Limiter struct {
	secondsPerFrame time.Duration
	next            time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A framesPerSecond value of zero or less means that Wait() never stalls.
func NewLimiter(framesPerSecond int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate at which the Limiter waits.
func (lim *Limiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
		return
	}
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// Active returns true if the Limiter will stall.
func (lim *Limiter) Active() bool {
	return lim.secondsPerFrame > 0
}

// Wait blocks until the next frame is due.
func (lim *Limiter) Wait() {
	if !lim.Active() {
		return
	}
	time.Sleep(lim.delay(time.Now()))
}

// delay returns how long to sleep at time now and schedules the following
// frame. if the caller has fallen behind by more than a frame the schedule is
// reset rather than allowing a burst of frames to catch up.
func (lim *Limiter) delay(now time.Time) time.Duration {
	if lim.next.IsZero() || now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now.Add(lim.secondsPerFrame)
		return 0
	}
	d := lim.next.Sub(now)
	lim.next = lim.next.Add(lim.secondsPerFrame)
	if d < 0 {
		return 0
	}
	return d
}
