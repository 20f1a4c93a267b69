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

// Toggle records whether the framebuffer is shown by the console program.
// The zero value shows the framebuffer.
type Toggle struct {
	// stored inverted so that the zero value is the default
	hide bool
}

// Flip the value of the Toggle.
func (t *Toggle) Flip() {
	t.hide = !t.hide
}

// Show returns true if the framebuffer should be shown.
func (t *Toggle) Show() bool {
	return !t.hide
}

func (t *Toggle) String() string {
	if t.Show() {
		return "framebuffer shown"
	}
	return "framebuffer hidden"
}
