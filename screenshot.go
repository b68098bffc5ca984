// This file is part of fbotrack.
//
// fbotrack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fbotrack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with fbotrack.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"image"
	"image/jpeg"
	"os"

	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/glcontext"
	"github.com/jetsetilly/fbotrack/layout"
	"github.com/jetsetilly/fbotrack/logger"
	"github.com/jetsetilly/fbotrack/paths"
)

// screenshot saves color attachment zero as a JPEG. Does not return any
// errors but will log the outcome.
func screenshot(ctx *glcontext.Context, b *layout.Built) {
	if len(b.Color) == 0 {
		logger.Log(logger.Allow, "fbotrack", "screenshot failed: no color attachment")
		return
	}

	path, err := paths.ResourcePath("screenshots", paths.UniqueFilename("fbo", "")+".jpg")
	if err != nil {
		logger.Logf(logger.Allow, "fbotrack", "screenshot failed: %v", err)
		return
	}

	width, height, _ := b.Color[0].Dimensions()

	b.Framebuffer.BindForRead()
	ctx.ReadBuffer(driver.ColorAttachment0)
	pixels := ctx.ReadPixels(width, height)

	img := flip(pixels, int(width), int(height))

	go func() {
		f, err := os.Create(path)
		if err != nil {
			logger.Logf(logger.Allow, "fbotrack", "screenshot failed: %v", err)
			return
		}

		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
		if err != nil {
			logger.Logf(logger.Allow, "fbotrack", "screenshot failed: %v", err)
			_ = f.Close()
			return
		}

		err = f.Close()
		if err != nil {
			logger.Logf(logger.Allow, "fbotrack", "screenshot failed: %v", err)
			return
		}

		logger.Logf(logger.Allow, "fbotrack", "screenshot saved: %s", path)
	}()
}

// flip returns an image from RGBA pixels ordered bottom row first
func flip(pixels []byte, width int, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}
