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
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/logger"
)

// Drawable is the output surface of the context. It is satisfied by
// *sdl.Window.
type Drawable interface {
	GLGetDrawableSize() (int32, int32)
}

// Context implements the driver.Context interface.
type Context struct {
	drawable Drawable
}

var _ driver.Context = (*Context)(nil)

// New is the preferred method of initialisation for the Context type.
func New(drawable Drawable) (*Context, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("glcontext: %w", err)
	}

	logger.Logf(logger.Allow, "glcontext", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "glcontext", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "glcontext", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Context{
		drawable: drawable,
	}, nil
}

func ptr(pixels []byte) unsafe.Pointer {
	if len(pixels) == 0 {
		return nil
	}
	return gl.Ptr(pixels)
}

func (ctx *Context) CreateFramebuffer() driver.Handle {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return driver.Handle(fbo)
}

func (ctx *Context) DeleteFramebuffer(fbo driver.Handle) {
	h := uint32(fbo)
	gl.DeleteFramebuffers(1, &h)
}

func (ctx *Context) BindFramebuffer(role driver.Enum, fbo driver.Handle) {
	gl.BindFramebuffer(uint32(role), uint32(fbo))
}

func (ctx *Context) FramebufferTexture2D(role driver.Enum, attachment driver.Enum, target driver.Enum, texture driver.Handle, level int32) {
	gl.FramebufferTexture2D(uint32(role), uint32(attachment), uint32(target), uint32(texture), level)
}

func (ctx *Context) FramebufferTextureLayer(role driver.Enum, attachment driver.Enum, texture driver.Handle, level int32, layer int32) {
	gl.FramebufferTextureLayer(uint32(role), uint32(attachment), uint32(texture), level, layer)
}

func (ctx *Context) DrawBuffers(attachments []driver.Enum) {
	if len(attachments) == 0 {
		return
	}
	bufs := make([]uint32, len(attachments))
	for i, a := range attachments {
		bufs[i] = uint32(a)
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (ctx *Context) CheckFramebufferStatus(role driver.Enum) driver.Enum {
	return driver.Enum(gl.CheckFramebufferStatus(uint32(role)))
}

func (ctx *Context) DrawingBufferSize() (int32, int32) {
	return ctx.drawable.GLGetDrawableSize()
}

func (ctx *Context) CreateTexture() driver.Handle {
	var tex uint32
	gl.GenTextures(1, &tex)
	return driver.Handle(tex)
}

func (ctx *Context) DeleteTexture(texture driver.Handle) {
	h := uint32(texture)
	gl.DeleteTextures(1, &h)
}

func (ctx *Context) BindTexture(target driver.Enum, texture driver.Handle) {
	gl.BindTexture(uint32(target), uint32(texture))
}

func (ctx *Context) TexImage2D(target driver.Enum, level int32, internalFormat driver.Enum, width int32, height int32, format driver.Enum, xtype driver.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(xtype), ptr(pixels))
}

func (ctx *Context) TexImage3D(target driver.Enum, level int32, internalFormat driver.Enum, width int32, height int32, depth int32, format driver.Enum, xtype driver.Enum, pixels []byte) {
	gl.TexImage3D(uint32(target), level, int32(internalFormat), width, height, depth, 0, uint32(format), uint32(xtype), ptr(pixels))
}

func (ctx *Context) TexParameteri(target driver.Enum, pname driver.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (ctx *Context) GetError() driver.Enum {
	return driver.Enum(gl.GetError())
}
