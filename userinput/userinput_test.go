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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/riskyv/test"
	"github.com/jetsetilly/riskyv/userinput"
)

func TestEmptyQueue(t *testing.T) {
	var q userinput.Queue
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.PopOldestOrZero(), int32(0))
	test.ExpectEquality(t, q.PopOldestOrZero(), int32(0))
}

func TestKeyTransition(t *testing.T) {
	for s := 1; s < userinput.MaxScanCode; s++ {
		var q userinput.Queue
		q.KeyTransition(s, true)
		q.KeyTransition(s, false)
		test.ExpectEquality(t, q.Len(), 2, s)
		test.ExpectEquality(t, q.PopOldestOrZero(), int32(s), s)
		test.ExpectEquality(t, q.PopOldestOrZero(), int32(-s), s)
		test.ExpectEquality(t, q.PopOldestOrZero(), int32(0), s)
	}
}

func TestOutOfRange(t *testing.T) {
	var q userinput.Queue
	for _, s := range []int{0, -1, 128, 129, 255, 1000} {
		q.KeyTransition(s, true)
		q.KeyTransition(s, false)
	}
	test.ExpectEquality(t, q.Len(), 0)
}

func TestFIFO(t *testing.T) {
	var q userinput.Queue

	// more events than frames. nothing is dropped and order is preserved
	q.KeyTransition(4, true)
	q.KeyTransition(5, true)
	q.KeyTransition(4, false)
	q.KeyTransition(200, true)
	q.KeyTransition(5, false)

	expected := []int32{4, 5, -4, -5, 0}
	for i, e := range expected {
		test.ExpectEquality(t, q.PopOldestOrZero(), e, i)
	}

	// the queue is usable after draining
	q.KeyTransition(7, true)
	test.ExpectEquality(t, q.PopOldestOrZero(), int32(7))
}

func TestToggle(t *testing.T) {
	var tg userinput.Toggle
	test.ExpectSuccess(t, tg.Show())

	for i := range 10 {
		tg.Flip()
		test.ExpectEquality(t, tg.Show(), i%2 == 1, i)
	}

	// even number of flips restores the value
	test.ExpectSuccess(t, tg.Show())
}

func TestHandleKey(t *testing.T) {
	st := userinput.NewState("F11", "F12")

	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 4, Name: "A", Pressed: true}), userinput.ActionQueued)
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 4, Name: "A", Pressed: true, Repeat: true}), userinput.ActionNone)
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 4, Name: "A"}), userinput.ActionQueued)
	test.ExpectEquality(t, st.Queue.Len(), 2)

	// the toggle key flips on press and is never queued in either direction
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 68, Name: "F11", Pressed: true}), userinput.ActionToggle)
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 68, Name: "F11"}), userinput.ActionNone)
	test.ExpectFailure(t, st.Toggle.Show())
	test.ExpectEquality(t, st.Queue.Len(), 2)

	// key names are case insensitive
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 68, Name: "f11", Pressed: true}), userinput.ActionToggle)
	test.ExpectSuccess(t, st.Toggle.Show())

	// screenshot key acts on release and is never queued
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 69, Name: "F12", Pressed: true}), userinput.ActionNone)
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 69, Name: "F12"}), userinput.ActionScreenshot)
	test.ExpectEquality(t, st.Queue.Len(), 2)

	// scan codes out of range are not queued
	test.ExpectEquality(t, st.HandleKey(userinput.Key{ScanCode: 224, Name: "Left Ctrl", Pressed: true}), userinput.ActionNone)
	test.ExpectEquality(t, st.Queue.Len(), 2)

	test.ExpectEquality(t, st.Queue.PopOldestOrZero(), int32(4))
	test.ExpectEquality(t, st.Queue.PopOldestOrZero(), int32(-4))
}

func TestToggleNeverTouchesQueue(t *testing.T) {
	st := userinput.NewState("F11", "")
	st.Queue.KeyTransition(10, true)

	for range 3 {
		st.HandleKey(userinput.Key{ScanCode: 68, Name: "F11", Pressed: true})
		st.HandleKey(userinput.Key{ScanCode: 68, Name: "F11"})
	}

	test.ExpectFailure(t, st.Toggle.Show())
	test.ExpectEquality(t, st.Queue.Len(), 1)
	test.ExpectEquality(t, st.Queue.PopOldestOrZero(), int32(10))
}
