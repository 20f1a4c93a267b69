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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/riskyv/performance"
	"github.com/jetsetilly/riskyv/test"
)

func TestFPS(t *testing.T) {
	start := time.Unix(1000, 0)
	fps := performance.NewFPS(60, time.Second, start)

	// 59 frames in the first second
	var now time.Time
	for i := range 59 {
		now = start.Add(time.Duration(i+1) * (time.Second / 60))
		_, ok := fps.Tick(now)
		test.ExpectFailure(t, ok)
	}

	// sixtieth frame completes the period
	m, ok := fps.Tick(start.Add(time.Second))
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, m.FPS, 60.0, 0.001)
	test.ExpectApproximate(t, m.Accuracy, 100.0, 0.001)

	// a new period has begun
	_, ok = fps.Tick(start.Add(time.Second + time.Millisecond))
	test.ExpectFailure(t, ok)
}

func TestCalcFPS(t *testing.T) {
	m := performance.CalcFPS(30, 1.0, 60)
	test.ExpectApproximate(t, m.FPS, 30.0, 0.001)
	test.ExpectApproximate(t, m.Accuracy, 50.0, 0.001)
	test.ExpectEquality(t, m.String(), "30.00 fps (50.0%)")

	// zero duration must not divide by zero
	m = performance.CalcFPS(30, 0, 60)
	test.ExpectEquality(t, m.FPS, 0.0)
}

func TestLimiter(t *testing.T) {
	lim := performance.NewLimiter(0)
	test.ExpectFailure(t, lim.Active())

	// an inactive limiter returns immediately
	lim.Wait()

	lim.SetLimit(1000)
	test.ExpectSuccess(t, lim.Active())

	start := time.Now()
	for range 10 {
		lim.Wait()
	}

	// ten frames at 1000fps can't complete in less than 9ms (the first wait
	// doesn't stall)
	test.ExpectSuccess(t, time.Since(start) >= 9*time.Millisecond)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "riskyv")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}
