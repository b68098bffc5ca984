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

// object is the part common to every texture type
type object struct {
	ctx    driver.Textures
	target driver.Enum
	handle driver.Handle
	format Format

	width  int32
	height int32
	depth  int32
}

func (obj *object) create(ctx driver.Textures, target driver.Enum, format Format) {
	obj.ctx = ctx
	obj.target = target
	obj.format = format
	obj.handle = ctx.CreateTexture()

	ctx.BindTexture(target, obj.handle)
	ctx.TexParameteri(target, driver.TextureMinFilter, int32(driver.Linear))
	ctx.TexParameteri(target, driver.TextureMagFilter, int32(driver.Linear))
	ctx.TexParameteri(target, driver.TextureWrapS, int32(driver.ClampToEdge))
	ctx.TexParameteri(target, driver.TextureWrapT, int32(driver.ClampToEdge))
	if target == driver.Texture3D || target == driver.TextureCubeMap {
		ctx.TexParameteri(target, driver.TextureWrapR, int32(driver.ClampToEdge))
	}
}

// Handle returns the native texture handle. Zero after Delete().
func (obj *object) Handle() driver.Handle {
	return obj.handle
}

// Format returns the format the texture was created with.
func (obj *object) Format() Format {
	return obj.format
}

// Dimensions returns the current width, height and depth of the texture. The
// depth of a flat texture is always one.
func (obj *object) Dimensions() (width int32, height int32, depth int32) {
	return obj.width, obj.height, obj.depth
}

// Delete the texture object. It is safe to call Delete() more than once.
func (obj *object) Delete() {
	if obj.handle == 0 {
		return
	}
	obj.ctx.DeleteTexture(obj.handle)
	obj.handle = 0
}
