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
	"fmt"

	"github.com/jetsetilly/riskyv/gpu"
)

// Image is the memory image resident on the GPU.
type Image struct {
	dev  gpu.Device
	tex  gpu.Texture
	spec Spec

	// the pass currently holding the binding. empty if no pass holds it
	bound string
}

// Upload the Snapshot to the GPU.
func Upload(dev gpu.Device, snap *Snapshot) (*Image, error) {
	tex := dev.CreateImageR32UI(int32(snap.spec.Width), int32(snap.spec.Height), snap.data)
	if err := dev.CheckError("upload memory"); err != nil {
		dev.DeleteTexture(tex)
		return nil, fmt.Errorf("memory: %w", err)
	}

	return &Image{
		dev:  dev,
		tex:  tex,
		spec: snap.spec,
	}, nil
}

// Spec returns the layout of the image.
func (img *Image) Spec() Spec {
	return img.spec
}

// Texture returns the handle of the image on the GPU.
func (img *Image) Texture() gpu.Texture {
	return img.tex
}

// Bound returns the name of the pass holding the binding or the empty string.
func (img *Image) Bound() string {
	return img.bound
}

// Bind the image for read-write access on the image unit. The binding is held
// by the named pass until Release() is called.
func (img *Image) Bind(pass string, unit int32) error {
	if img.bound != "" {
		return fmt.Errorf("memory: %s: %w by %s", pass, ErrAlreadyBound, img.bound)
	}

	img.dev.BindImage(unit, img.tex, gpu.ReadWrite)
	if err := img.dev.CheckError(fmt.Sprintf("bind memory %s", pass)); err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	img.bound = pass
	return nil
}

// Release the binding held by the named pass.
func (img *Image) Release(pass string) error {
	if img.bound != pass {
		return fmt.Errorf("memory: %s: %w", pass, ErrNotBound)
	}
	img.bound = ""
	return nil
}

// Destroy the image on the GPU. The Image should not be used after this
// call.
func (img *Image) Destroy() {
	if img.tex != 0 {
		img.dev.DeleteTexture(img.tex)
		img.tex = 0
	}
}
