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

package layout

import (
	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/framebuffer"
	"github.com/jetsetilly/fbotrack/logger"
	"github.com/jetsetilly/fbotrack/texture"
)

// Resource is a texture created by Build().
type Resource interface {
	framebuffer.Texture
	Handle() driver.Handle
	Dimensions() (width int32, height int32, depth int32)
	Delete()
}

// Built is the result of building a Layout.
type Built struct {
	Framebuffer *framebuffer.Framebuffer
	Color       []Resource
	Depth       Resource
}

// Delete the framebuffer and all textures.
func (b *Built) Delete() {
	b.Framebuffer.Delete()
	for _, r := range b.Color {
		r.Delete()
	}
	if b.Depth != nil {
		b.Depth.Delete()
	}
}

// the layout should have been checked before create() is called
func (a Attachment) create(ctx driver.Textures, width int32, height int32) (Resource, int32) {
	format, _ := texture.FormatByName(a.Format)

	switch a.kind() {
	case KindCubemap:
		tex := texture.NewCubemap(ctx, width, format)
		return tex, int32(driver.TextureCubeMapPositiveX) + a.Face
	case KindArray:
		tex := texture.NewTexture2DArray(ctx, width, height, max(a.Layers, 1), format)
		return tex, a.Layer
	case Kind3D:
		tex := texture.NewTexture3D(ctx, width, height, max(a.Layers, 1), format)
		return tex, a.Layer
	}

	tex := texture.NewTexture2D(ctx, width, height, format)
	return tex, tex.DefaultTarget()
}

// Build creates the textures described by the layout and attaches them to a
// new framebuffer. The layout must have been created by one of the decoding
// functions or by Default().
func (l Layout) Build(ctx driver.Context, state *framebuffer.State) *Built {
	width, height := l.Width, l.Height
	if width == 0 || height == 0 {
		dw, dh := ctx.DrawingBufferSize()
		if width == 0 {
			width = dw
		}
		if height == 0 {
			height = dh
		}
	}

	b := &Built{
		Framebuffer: framebuffer.New(ctx, state),
	}

	for i, a := range l.Color {
		tex, target := a.create(ctx, width, height)
		b.Color = append(b.Color, tex)
		b.Framebuffer.AttachColorTarget(i, tex, target)
	}

	if l.Depth != nil {
		tex, target := l.Depth.create(ctx, width, height)
		b.Depth = tex
		b.Framebuffer.AttachDepthTarget(tex, target)
	}

	logger.Logf(logger.Allow, "layout", "built %dx%d %s", width, height, l)

	return b
}
