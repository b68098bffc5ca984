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

// Package texture implements the textures that can be attached to a
// framebuffer. There are two kinds of texture and the kind decides how the
// texture is attached:
//
//	flat: Texture2D and Cubemap; attached with FramebufferTexture2D()
//	layered: Texture2DArray and Texture3D; attached with FramebufferTextureLayer()
//
// The target of an attachment is a texture target enum for flat textures
// (eg. a face of a cubemap) and a layer index for layered textures.
//
// Resizing a texture re-specifies the storage of the same texture object. The
// handle does not change but the contents are lost and any framebuffer the
// texture is attached to must attach it again.
package texture
