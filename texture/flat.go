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

// Texture2D is a flat texture with a single image.
type Texture2D struct {
	object
}

// NewTexture2D is the preferred method of initialisation for the Texture2D
// type.
func NewTexture2D(ctx driver.Textures, width int32, height int32, format Format) *Texture2D {
	tex := &Texture2D{}
	tex.create(ctx, driver.Texture2D, format)
	tex.Resize(width, height, 0)
	return tex
}

// Resize recreates the texture storage. The depth argument is ignored.
func (tex *Texture2D) Resize(width int32, height int32, _ int32) {
	tex.width = width
	tex.height = height
	tex.depth = 1

	tex.ctx.BindTexture(tex.target, tex.handle)
	tex.ctx.TexImage2D(tex.target, 0, tex.format.Internal, width, height, tex.format.Pixel, tex.format.Type, nil)
}

// DefaultTarget of a Texture2D is the TEXTURE_2D target.
func (tex *Texture2D) DefaultTarget() int32 {
	return int32(driver.Texture2D)
}

// Attach implements the framebuffer.Texture interface.
func (tex *Texture2D) Attach(ctx driver.Framebuffers, attachment driver.Enum, target int32) {
	AttachFlat(ctx, attachment, target, tex.handle)
}

// Cubemap is a flat texture with six faces. Any face can be attached to a
// framebuffer by using the face's target enum.
type Cubemap struct {
	object
}

// NewCubemap is the preferred method of initialisation for the Cubemap type.
// Cubemap faces are square so the size is both the width and height.
func NewCubemap(ctx driver.Textures, size int32, format Format) *Cubemap {
	tex := &Cubemap{}
	tex.create(ctx, driver.TextureCubeMap, format)
	tex.Resize(size, size, 0)
	return tex
}

// Resize recreates the storage of all six faces. Faces are square so the
// width is used for both dimensions. The height and depth arguments are
// ignored.
func (tex *Cubemap) Resize(width int32, _ int32, _ int32) {
	tex.width = width
	tex.height = width
	tex.depth = 1

	tex.ctx.BindTexture(tex.target, tex.handle)
	for i := 0; i < driver.TextureCubeMapFaces; i++ {
		face := driver.TextureCubeMapPositiveX + driver.Enum(i)
		tex.ctx.TexImage2D(face, 0, tex.format.Internal, width, width, tex.format.Pixel, tex.format.Type, nil)
	}
}

// DefaultTarget of a Cubemap is the positive X face.
func (tex *Cubemap) DefaultTarget() int32 {
	return int32(driver.TextureCubeMapPositiveX)
}

// Attach implements the framebuffer.Texture interface.
func (tex *Cubemap) Attach(ctx driver.Framebuffers, attachment driver.Enum, target int32) {
	AttachFlat(ctx, attachment, target, tex.handle)
}
