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

// Package userinput translates key transitions from the platform into the
// values that are forwarded to the GPU programs.
//
// Key presses and releases are appended to a Queue as signed scan codes: a
// press of scan code S is appended as +S and a release as -S. The queue is
// drained one event per frame with PopOldestOrZero(), which returns zero when
// there are no events. Scan codes of 128 and above are never queued.
//
// The Toggle is a single boolean, flipped by a dedicated key, that tells the
// console program whether to show the framebuffer. The toggle key (and the
// screenshot key) are never queued.
//
// State collects the Queue, the Toggle and the key assignments. It is only
// used from the thread that polls the platform for events and so it is not
// safe for concurrent use.
package userinput
