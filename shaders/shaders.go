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

package shaders

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jetsetilly/riskyv/gpu"
	"github.com/jetsetilly/riskyv/logger"
)

// DefaultVertex is the pass-through vertex stage.
//
//go:embed straight.vert
var DefaultVertex []byte

// CompileError is returned when a stage fails to compile or when the program
// fails to link. Log is the diagnostic text of the backend, unaltered.
type CompileError struct {
	Program string

	// "vertex", "fragment" or "link"
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shaders: %s: %s: %s", e.Program, e.Stage, strings.TrimSpace(e.Log))
}

// MissingBindingError is returned by Resolve() in strict mode when a named
// binding does not exist in the program.
type MissingBindingError struct {
	Program string
	Binding string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("shaders: %s: missing binding %q", e.Program, e.Binding)
}

// Loader compiles programs for a gpu.Device.
type Loader struct {
	dev    gpu.Device
	strict bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
// In strict mode a missing binding is an error.
func NewLoader(dev gpu.Device, strict bool) *Loader {
	return &Loader{
		dev:    dev,
		strict: strict,
	}
}

// Compile the vertex and fragment sources and link them into a Program. If
// vertex is nil then DefaultVertex is used.
func (ldr *Loader) Compile(name string, vertex []byte, fragment []byte) (*Program, error) {
	if vertex == nil {
		vertex = DefaultVertex
	}

	vs, log, ok := ldr.dev.CompileShader(gpu.VertexStage, string(vertex))
	if !ok {
		ldr.dev.DeleteShader(vs)
		return nil, &CompileError{Program: name, Stage: gpu.VertexStage.String(), Log: log}
	}

	fs, log, ok := ldr.dev.CompileShader(gpu.FragmentStage, string(fragment))
	if !ok {
		ldr.dev.DeleteShader(fs)
		ldr.dev.DeleteShader(vs)
		return nil, &CompileError{Program: name, Stage: gpu.FragmentStage.String(), Log: log}
	}

	handle, log, ok := ldr.dev.LinkProgram(vs, fs, []string{gpu.PositionAttribute})

	// now that the program has linked we no longer need the individual
	// shaders
	ldr.dev.DeleteShader(fs)
	ldr.dev.DeleteShader(vs)

	if !ok {
		ldr.dev.DeleteProgram(handle)
		return nil, &CompileError{Program: name, Stage: "link", Log: log}
	}

	if err := ldr.dev.CheckError(fmt.Sprintf("compile %s", name)); err != nil {
		ldr.dev.DeleteProgram(handle)
		return nil, fmt.Errorf("shaders: %w", err)
	}

	logger.Logf(logger.Allow, "shaders", "%s: compiled and linked", name)

	return &Program{
		name:     name,
		dev:      ldr.dev,
		handle:   handle,
		strict:   ldr.strict,
		bindings: make(map[string]gpu.Location),
	}, nil
}

// Program is a linked GPU program.
type Program struct {
	name   string
	dev    gpu.Device
	handle gpu.Program
	strict bool

	bindings map[string]gpu.Location
}

func (prg *Program) String() string {
	return prg.name
}

// Handle returns the handle of the program on the GPU.
func (prg *Program) Handle() gpu.Program {
	return prg.handle
}

// Resolve the named bindings. Bindings that do not exist are logged and
// given the location gpu.NoLocation, unless the Loader was in strict mode in
// which case a *MissingBindingError is returned for the first missing
// binding.
func (prg *Program) Resolve(names ...string) error {
	for _, n := range names {
		l := prg.dev.UniformLocation(prg.handle, n)
		prg.bindings[n] = l

		if !l.Valid() {
			if prg.strict {
				return &MissingBindingError{Program: prg.name, Binding: n}
			}
			logger.Logf(logger.Allow, "shaders", "%s: missing binding %q", prg.name, n)
		}
	}
	return nil
}

// Location returns the location of a binding. Bindings that have not been
// resolved or which do not exist return gpu.NoLocation.
func (prg *Program) Location(name string) gpu.Location {
	if l, ok := prg.bindings[name]; ok {
		return l
	}
	return gpu.NoLocation
}

// ImageUnit returns the image unit assigned to an image binding and true.
// Returns false if the binding does not exist.
func (prg *Program) ImageUnit(name string) (int32, bool) {
	l := prg.Location(name)
	if !l.Valid() {
		return 0, false
	}
	return prg.dev.ImageUnit(prg.handle, l), true
}

// Use makes the program current.
func (prg *Program) Use() error {
	prg.dev.UseProgram(prg.handle)
	return prg.dev.CheckError(fmt.Sprintf("use %s", prg.name))
}

// SetInt sets the named binding of the current program. Has no effect if the
// binding does not exist.
func (prg *Program) SetInt(name string, v int32) error {
	l := prg.Location(name)
	if !l.Valid() {
		return nil
	}
	prg.dev.SetInt(l, v)
	return prg.dev.CheckError(fmt.Sprintf("set %s.%s", prg.name, name))
}

// Destroy the program on the GPU. The Program should not be used after this
// call.
func (prg *Program) Destroy() {
	if prg.handle != 0 {
		prg.dev.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}
