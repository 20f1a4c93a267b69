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

package harness

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/paths"
)

// the prefix of every screenshot filename
const screenshotPrefix = "riskyv"

// read the presented frame and save it as a PNG file in the background
func (h *Harness) screenshot(width int32, height int32) error {
	pix := h.dev.ReadPixels(width, height)
	if err := h.dev.CheckError("read pixels"); err != nil {
		return fmt.Errorf("harness: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	// the first row read from the GPU is the bottom row of the image
	stride := int(width) * 4
	for y := 0; y < int(height); y++ {
		src := pix[(int(height)-1-y)*stride : (int(height)-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}

	// the alpha channel of the display is meaningless
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	path := fmt.Sprintf("%s.png", paths.UniqueFilename(screenshotPrefix, fmt.Sprintf("frame%d", h.sch.Frames())))

	h.screenshots.Add(1)
	go func() {
		defer h.screenshots.Done()
		savePNG(img, path)
	}()

	return nil
}

// savePNG writes the image to the specified path.
func savePNG(img *image.RGBA, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	err = png.Encode(f, img)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		_ = f.Close()
		return
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
}
