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

// MaxScanCode is the first scan code that will not be queued.
const MaxScanCode = 128

// Queue is a FIFO of signed scan codes.
type Queue struct {
	events []int32
}

// KeyTransition appends +scanCode to the queue if pressed is true and
// -scanCode if it is false. Scan codes outside the range 1 to 127 are ignored.
//
// Codes of 128 and above are extended keys the guest has no use for. Codes of
// zero and below are also dropped, unlike a GLFW host which passes them on.
// Zero is the "no event" value delivered on an empty queue and a negative
// code would read as the release of a different key. Platforms report zero
// for keys they cannot translate.
func (q *Queue) KeyTransition(scanCode int, pressed bool) {
	if scanCode <= 0 || scanCode >= MaxScanCode {
		return
	}
	ev := int32(scanCode)
	if !pressed {
		ev = -ev
	}
	q.events = append(q.events, ev)
}

// PopOldestOrZero removes and returns the oldest event. Returns zero if the
// queue is empty.
func (q *Queue) PopOldestOrZero() int32 {
	if len(q.events) == 0 {
		return 0
	}
	ev := q.events[0]
	q.events = q.events[1:]

	// release the backing array once the queue has drained. the queue
	// rarely grows beyond a few events
	if len(q.events) == 0 {
		q.events = nil
	}

	return ev
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}
