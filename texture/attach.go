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

package texture

import "github.com/jetsetilly/fbotrack/driver"

// AttachFlat attaches a flat texture to the framebuffer bound for drawing.
// The target is the texture target enum.
func AttachFlat(ctx driver.Framebuffers, attachment driver.Enum, target int32, texture driver.Handle) {
	ctx.FramebufferTexture2D(driver.DrawFramebuffer, attachment, driver.Enum(target), texture, 0)
}

// AttachLayer attaches a single layer of a layered texture to the framebuffer
// bound for drawing.
func AttachLayer(ctx driver.Framebuffers, attachment driver.Enum, layer int32, texture driver.Handle) {
	ctx.FramebufferTextureLayer(driver.DrawFramebuffer, attachment, texture, 0, layer)
}
