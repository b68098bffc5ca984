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

// layered is the implementation shared by Texture2DArray and Texture3D
type layered struct {
	object
}

func (tex *layered) init(ctx driver.Textures, target driver.Enum, width, height, depth int32, format Format) {
	tex.create(ctx, target, format)
	tex.depth = depth
	tex.Resize(width, height, depth)
}

// Resize recreates the texture storage. A depth of zero keeps the existing
// depth.
func (tex *layered) Resize(width int32, height int32, depth int32) {
	tex.width = width
	tex.height = height
	if depth != 0 {
		tex.depth = depth
	}

	tex.ctx.BindTexture(tex.target, tex.handle)
	tex.ctx.TexImage3D(tex.target, 0, tex.format.Internal, width, height, tex.depth, tex.format.Pixel, tex.format.Type, nil)
}

// DefaultTarget of a layered texture is layer zero.
func (tex *layered) DefaultTarget() int32 {
	return 0
}

// Attach implements the framebuffer.Texture interface. The target is the
// layer to attach.
func (tex *layered) Attach(ctx driver.Framebuffers, attachment driver.Enum, layer int32) {
	AttachLayer(ctx, attachment, layer, tex.handle)
}

// Texture2DArray is an array of two dimensional images. Each layer can be
// attached to a framebuffer.
type Texture2DArray struct {
	layered
}

// NewTexture2DArray is the preferred method of initialisation for the
// Texture2DArray type.
func NewTexture2DArray(ctx driver.Textures, width int32, height int32, layers int32, format Format) *Texture2DArray {
	tex := &Texture2DArray{}
	tex.init(ctx, driver.Texture2DArray, width, height, layers, format)
	return tex
}

// Texture3D is a three dimensional texture. Each slice of depth can be
// attached to a framebuffer.
type Texture3D struct {
	layered
}

// NewTexture3D is the preferred method of initialisation for the Texture3D
// type.
func NewTexture3D(ctx driver.Textures, width int32, height int32, depth int32, format Format) *Texture3D {
	tex := &Texture3D{}
	tex.init(ctx, driver.Texture3D, width, height, depth, format)
	return tex
}
