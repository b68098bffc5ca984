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

package glcontext

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/fbotrack/driver"
)

// the functions in this file are not part of the driver interfaces. they
// are used by the fbotrack command to present the contents of a framebuffer

// Viewport sets the viewport for subsequent draw operations.
func (ctx *Context) Viewport(width int32, height int32) {
	gl.Viewport(0, 0, width, height)
}

// ClearColorAttachment clears the color draw buffer at index of the
// framebuffer bound for drawing.
func (ctx *Context) ClearColorAttachment(index int, r, g, b, a float32) {
	v := [4]float32{r, g, b, a}
	gl.ClearBufferfv(gl.COLOR, int32(index), &v[0])
}

// Clear the color buffer of the framebuffer bound for drawing.
func (ctx *Context) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadBuffer selects the color attachment of the read framebuffer used by
// ReadPixels() and Blit().
func (ctx *Context) ReadBuffer(attachment driver.Enum) {
	gl.ReadBuffer(uint32(attachment))
}

// Blit copies the color buffer of the read framebuffer to the draw
// framebuffer, scaling as required.
func (ctx *Context) Blit(srcWidth, srcHeight, dstWidth, dstHeight int32) {
	gl.BlitFramebuffer(0, 0, srcWidth, srcHeight,
		0, 0, dstWidth, dstHeight,
		gl.COLOR_BUFFER_BIT, gl.LINEAR)
}

// ReadPixels reads RGBA pixels from the read framebuffer. The returned slice is
// width*height*4 bytes long. Rows are ordered bottom to top.
func (ctx *Context) ReadPixels(width, height int32) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
