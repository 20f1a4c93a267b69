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

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	dimRedPen = "\033[2;31m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring to the text written to it. The first line
// of every write is printed normally and any subsequent lines are dimmed.
// This suits multi-line messages, such as shader compiler diagnostics,
// where the first line summarises the problem.
//
// Color is only applied if the underlying writer is a terminal.
type Colorizer struct {
	out   io.Writer
	color bool
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	c := Colorizer{out: out}
	if f, ok := out.(*os.File); ok {
		c.color = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	if !c.color {
		return c.out.Write(p)
	}

	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	m, err := io.WriteString(c.out, l[0]+"\n")
	n += m
	if err != nil || len(l) == 1 {
		return n, err
	}

	m, err = io.WriteString(c.out, dimRedPen)
	n += m
	if err != nil {
		return n, err
	}

	defer func() {
		_, _ = io.WriteString(c.out, normalPen)
	}()

	for _, s := range l[1:] {
		m, err := io.WriteString(c.out, s+"\n")
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
