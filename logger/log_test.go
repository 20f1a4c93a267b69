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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "frame", "key event 30")
	log.Log(logger.Allow, "frame", "key event 30")
	log.Log(logger.Allow, "frame", "key event 30")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "frame: key event 30 (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}

	var verbose bool
	log.Clear()
	w.Reset()
	log.Log(logger.Allowed(&verbose), "tag", "silent")
	verbose = true
	log.Log(logger.Allowed(&verbose), "tag", "loud")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: loud\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

func TestMultilineDetail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "shaders", "0:1: error\n0:2: error\n")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "shaders: 0:1: error 0:2: error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "before", "echo")

	w := &test.CompareWriter{}
	log.SetEcho(w, true)
	log.Log(logger.Allow, "after", "echo")
	test.ExpectSuccess(t, w.Compare("before: echo\nafter: echo\n"))

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "ignored", "echo")
	test.ExpectSuccess(t, w.Compare("before: echo\nafter: echo\n"))
}

func TestColorizerPassthrough(t *testing.T) {
	// a CompareWriter is not a terminal so no color codes are inserted
	w := &test.CompareWriter{}
	c := logger.NewColorizer(w)
	_, err := c.Write([]byte("error\ndetail\n"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("error\ndetail\n"))
}
