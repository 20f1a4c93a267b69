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

package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// byte offsets of the words that are patched when a snapshot is created
const (
	PCOffset  = 0
	DTBOffset = 44
)

// Spec describes the dimensions of the memory image and the values of the
// patched words.
type Spec struct {
	// dimensions in 32bit words
	Width  int
	Height int

	// initial program counter
	PC uint32

	// address of the device tree
	DTB uint32
}

// Reference is the layout of the memory image used by the reference
// emulator program. 32MiB of memory with execution starting at 4MiB.
var Reference = Spec{
	Width:  2048,
	Height: 4096,
	PC:     4 * 1024 * 1024,
	DTB:    0x1000,
}

func (spec Spec) String() string {
	return fmt.Sprintf("%dx%d words (pc=%#08x dtb=%#08x)", spec.Width, spec.Height, spec.PC, spec.DTB)
}

// Words returns the number of 32bit words in the image.
func (spec Spec) Words() int {
	return spec.Width * spec.Height
}

// Size returns the number of bytes in the image.
func (spec Spec) Size() int {
	return spec.Words() * 4
}

// Validate returns an error if the Spec cannot describe a usable image.
func (spec Spec) Validate() error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("memory: illegal dimensions %dx%d", spec.Width, spec.Height)
	}

	// the patched words must be inside the image
	if spec.Size() < DTBOffset+4 {
		return fmt.Errorf("memory: image of %d bytes is too small", spec.Size())
	}

	return nil
}

// SizeMismatchError is returned when data is not of the expected size.
type SizeMismatchError struct {
	// what was being loaded. may be empty
	Name string

	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("wrong size (expected %d, actual %d)", e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: wrong size (expected %d, actual %d)", e.Name, e.Expected, e.Actual)
}

// Snapshot is the host-side copy of the memory image.
type Snapshot struct {
	spec Spec
	data []byte
}

// NewSnapshot creates a Snapshot from data. The data slice is retained and
// patched in place; the caller should not use it afterwards.
//
// Returns a *SizeMismatchError if the length of data is not exactly the size
// of the image described by spec.
func NewSnapshot(data []byte, spec Spec) (*Snapshot, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if len(data) != spec.Size() {
		return nil, &SizeMismatchError{
			Name:     "memory",
			Expected: spec.Size(),
			Actual:   len(data),
		}
	}

	binary.LittleEndian.PutUint32(data[PCOffset:], spec.PC)
	binary.LittleEndian.PutUint32(data[DTBOffset:], spec.DTB)

	return &Snapshot{
		spec: spec,
		data: data,
	}, nil
}

// Spec returns the layout used to create the Snapshot.
func (snap *Snapshot) Spec() Spec {
	return snap.spec
}

// Word returns the 32bit word at index i.
func (snap *Snapshot) Word(i int) uint32 {
	return binary.LittleEndian.Uint32(snap.data[i*4:])
}

// Bytes returns the raw bytes of the snapshot. The returned slice should not
// be modified.
func (snap *Snapshot) Bytes() []byte {
	return snap.data
}

// ErrAlreadyBound is wrapped by the error returned by Image.Bind() when the
// image is already bound by another pass.
var ErrAlreadyBound = errors.New("memory already bound")

// ErrNotBound is wrapped by the error returned by Image.Release() when the
// pass does not hold the binding.
var ErrNotBound = errors.New("memory not bound")
