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

package fake

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/fbotrack/driver"
)

// Call is a single recorded call to the Context.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	s := strings.Builder{}
	s.WriteString(c.Name)
	s.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		switch a := a.(type) {
		case driver.Enum:
			s.WriteString(fmt.Sprintf("0x%04x", uint32(a)))
		case []driver.Enum:
			s.WriteString("[")
			for j, e := range a {
				if j > 0 {
					s.WriteString(" ")
				}
				s.WriteString(fmt.Sprintf("0x%04x", uint32(e)))
			}
			s.WriteString("]")
		default:
			s.WriteString(fmt.Sprintf("%v", a))
		}
	}
	s.WriteString(")")
	return s.String()
}

// Attachment is the record of a texture attached to a framebuffer.
type Attachment struct {
	Texture driver.Handle
	Level   int32

	// Layered is true if the texture was attached with
	// FramebufferTextureLayer(), in which case Layer is meaningful and Target
	// is not
	Layered bool
	Target  driver.Enum
	Layer   int32
}

// Storage describes the most recent TexImage2D() or TexImage3D() call for a
// texture.
type Storage struct {
	Target         driver.Enum
	InternalFormat driver.Enum
	Width          int32
	Height         int32
	Depth          int32

	// number of times storage has been (re)specified
	Specified int
}

type framebuffer struct {
	attachments map[driver.Enum]Attachment
	drawBuffers []driver.Enum
}

// Context implements the driver.Context interface.
type Context struct {
	// size of the drawing buffer returned by DrawingBufferSize()
	Width  int32
	Height int32

	// if ForceStatus is not zero it is returned by CheckFramebufferStatus()
	// instead of the computed status
	ForceStatus driver.Enum

	calls []Call

	next         driver.Handle
	framebuffers map[driver.Handle]*framebuffer
	textures     map[driver.Handle]*Storage
	bound        map[driver.Enum]driver.Handle
	boundTexture map[driver.Enum]driver.Handle
	errors       []driver.Enum
}

var _ driver.Context = (*Context)(nil)

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(width int32, height int32) *Context {
	return &Context{
		Width:        width,
		Height:       height,
		framebuffers: make(map[driver.Handle]*framebuffer),
		textures:     make(map[driver.Handle]*Storage),
		bound:        make(map[driver.Enum]driver.Handle),
		boundTexture: make(map[driver.Enum]driver.Handle),
	}
}

func (ctx *Context) record(name string, args ...any) {
	ctx.calls = append(ctx.calls, Call{Name: name, Args: args})
}

func (ctx *Context) raise(err driver.Enum) {
	ctx.errors = append(ctx.errors, err)
}

// Calls returns a copy of the recorded calls.
func (ctx *Context) Calls() []Call {
	c := make([]Call, len(ctx.calls))
	copy(c, ctx.calls)
	return c
}

// Count returns the number of recorded calls with the name.
func (ctx *Context) Count(name string) int {
	var n int
	for _, c := range ctx.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls. The modelled state is unchanged.
func (ctx *Context) Reset() {
	ctx.calls = ctx.calls[:0]
}

// Bound returns the framebuffer natively bound for the role.
func (ctx *Context) Bound(role driver.Enum) driver.Handle {
	return ctx.bound[role]
}

// Live returns true if fbo names a framebuffer that has not been deleted.
func (ctx *Context) Live(fbo driver.Handle) bool {
	_, ok := ctx.framebuffers[fbo]
	return ok
}

// Attachment returns the attachment at the attachment point of fbo.
func (ctx *Context) Attachment(fbo driver.Handle, attachment driver.Enum) (Attachment, bool) {
	f, ok := ctx.framebuffers[fbo]
	if !ok {
		return Attachment{}, false
	}
	a, ok := f.attachments[attachment]
	return a, ok
}

// DrawBuffersOf returns the draw buffers most recently declared for fbo.
func (ctx *Context) DrawBuffersOf(fbo driver.Handle) []driver.Enum {
	f, ok := ctx.framebuffers[fbo]
	if !ok {
		return nil
	}
	return f.drawBuffers
}

// Storage returns the storage of a texture.
func (ctx *Context) Storage(texture driver.Handle) (Storage, bool) {
	s, ok := ctx.textures[texture]
	if !ok {
		return Storage{}, false
	}
	return *s, true
}

func (ctx *Context) CreateFramebuffer() driver.Handle {
	ctx.next++
	ctx.framebuffers[ctx.next] = &framebuffer{
		attachments: make(map[driver.Enum]Attachment),
	}
	ctx.record("CreateFramebuffer")
	return ctx.next
}

func (ctx *Context) DeleteFramebuffer(fbo driver.Handle) {
	ctx.record("DeleteFramebuffer", fbo)
	delete(ctx.framebuffers, fbo)

	// deleting a bound framebuffer reverts the binding to the default
	for role, h := range ctx.bound {
		if h == fbo {
			ctx.bound[role] = 0
		}
	}
}

func (ctx *Context) BindFramebuffer(role driver.Enum, fbo driver.Handle) {
	ctx.record("BindFramebuffer", role, fbo)
	if fbo != 0 && !ctx.Live(fbo) {
		ctx.raise(driver.InvalidOperation)
		return
	}
	ctx.bound[role] = fbo
}

func (ctx *Context) attach(role driver.Enum, attachment driver.Enum, a Attachment) {
	f, ok := ctx.framebuffers[ctx.bound[role]]
	if !ok {
		ctx.raise(driver.InvalidOperation)
		return
	}
	if a.Texture == 0 {
		delete(f.attachments, attachment)
		return
	}
	if _, ok := ctx.textures[a.Texture]; !ok {
		ctx.raise(driver.InvalidOperation)
		return
	}
	f.attachments[attachment] = a
}

func (ctx *Context) FramebufferTexture2D(role driver.Enum, attachment driver.Enum, target driver.Enum, texture driver.Handle, level int32) {
	ctx.record("FramebufferTexture2D", role, attachment, target, texture, level)
	ctx.attach(role, attachment, Attachment{
		Texture: texture,
		Level:   level,
		Target:  target,
	})
}

func (ctx *Context) FramebufferTextureLayer(role driver.Enum, attachment driver.Enum, texture driver.Handle, level int32, layer int32) {
	ctx.record("FramebufferTextureLayer", role, attachment, texture, level, layer)
	ctx.attach(role, attachment, Attachment{
		Texture: texture,
		Level:   level,
		Layered: true,
		Layer:   layer,
	})
}

func (ctx *Context) DrawBuffers(attachments []driver.Enum) {
	c := make([]driver.Enum, len(attachments))
	copy(c, attachments)
	ctx.record("DrawBuffers", c)

	f, ok := ctx.framebuffers[ctx.bound[driver.DrawFramebuffer]]
	if !ok {
		ctx.raise(driver.InvalidOperation)
		return
	}
	f.drawBuffers = c
}

func (ctx *Context) CheckFramebufferStatus(role driver.Enum) driver.Enum {
	ctx.record("CheckFramebufferStatus", role)

	if ctx.ForceStatus != 0 {
		return ctx.ForceStatus
	}

	fbo := ctx.bound[role]
	if fbo == 0 {
		return driver.FramebufferComplete
	}

	f, ok := ctx.framebuffers[fbo]
	if !ok {
		return driver.FramebufferUndefined
	}
	if len(f.attachments) == 0 {
		return driver.FramebufferIncompleteMissingAttachment
	}
	for _, a := range f.attachments {
		s, ok := ctx.textures[a.Texture]
		if !ok || s.Specified == 0 || s.Width == 0 || s.Height == 0 {
			return driver.FramebufferIncompleteAttachment
		}
		if a.Layered && (a.Layer < 0 || a.Layer >= s.Depth) {
			return driver.FramebufferIncompleteAttachment
		}
	}
	for _, d := range f.drawBuffers {
		if d == driver.None {
			continue
		}
		if _, ok := f.attachments[d]; !ok {
			return driver.FramebufferIncompleteDrawBuffer
		}
	}

	return driver.FramebufferComplete
}

func (ctx *Context) DrawingBufferSize() (int32, int32) {
	return ctx.Width, ctx.Height
}

func (ctx *Context) CreateTexture() driver.Handle {
	ctx.next++
	ctx.textures[ctx.next] = &Storage{}
	ctx.record("CreateTexture")
	return ctx.next
}

func (ctx *Context) DeleteTexture(texture driver.Handle) {
	ctx.record("DeleteTexture", texture)
	delete(ctx.textures, texture)
	for target, h := range ctx.boundTexture {
		if h == texture {
			ctx.boundTexture[target] = 0
		}
	}
}

func (ctx *Context) BindTexture(target driver.Enum, texture driver.Handle) {
	ctx.record("BindTexture", target, texture)
	if texture != 0 {
		s, ok := ctx.textures[texture]
		if !ok {
			ctx.raise(driver.InvalidOperation)
			return
		}
		if s.Target != 0 && s.Target != target {
			ctx.raise(driver.InvalidOperation)
			return
		}
		s.Target = target
	}
	ctx.boundTexture[target] = texture
}

// storageTarget maps a cubemap face to the cubemap target
func storageTarget(target driver.Enum) driver.Enum {
	if target >= driver.TextureCubeMapPositiveX && target <= driver.TextureCubeMapNegativeZ {
		return driver.TextureCubeMap
	}
	return target
}

func (ctx *Context) specify(target driver.Enum, internalFormat driver.Enum, width, height, depth int32) {
	s, ok := ctx.textures[ctx.boundTexture[storageTarget(target)]]
	if !ok {
		ctx.raise(driver.InvalidOperation)
		return
	}
	if width < 0 || height < 0 || depth < 0 {
		ctx.raise(driver.InvalidValue)
		return
	}
	// cubemap faces must be square
	if storageTarget(target) == driver.TextureCubeMap && width != height {
		ctx.raise(driver.InvalidValue)
		return
	}
	s.InternalFormat = internalFormat
	s.Width = width
	s.Height = height
	s.Depth = depth
	s.Specified++
}

func (ctx *Context) TexImage2D(target driver.Enum, level int32, internalFormat driver.Enum, width int32, height int32, format driver.Enum, xtype driver.Enum, pixels []byte) {
	ctx.record("TexImage2D", target, level, internalFormat, width, height, format, xtype)
	ctx.specify(target, internalFormat, width, height, 1)
}

func (ctx *Context) TexImage3D(target driver.Enum, level int32, internalFormat driver.Enum, width int32, height int32, depth int32, format driver.Enum, xtype driver.Enum, pixels []byte) {
	ctx.record("TexImage3D", target, level, internalFormat, width, height, depth, format, xtype)
	ctx.specify(target, internalFormat, width, height, depth)
}

func (ctx *Context) TexParameteri(target driver.Enum, pname driver.Enum, param int32) {
	ctx.record("TexParameteri", target, pname, param)
}

func (ctx *Context) GetError() driver.Enum {
	if len(ctx.errors) == 0 {
		return driver.NoError
	}
	err := ctx.errors[0]
	ctx.errors = ctx.errors[1:]
	return err
}
