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

package framebuffer

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/logger"
)

// Texture is a resource that can be attached to a framebuffer. The
// implementation decides how it is attached: flat textures are attached with
// FramebufferTexture2D() and layered textures with FramebufferTextureLayer().
//
// The texture package provides implementations.
type Texture interface {
	// Attach the texture to the framebuffer currently bound for drawing. The
	// meaning of target depends on the implementation: a texture target
	// enum for flat textures and a layer index for layered textures.
	Attach(ctx driver.Framebuffers, attachment driver.Enum, target int32)

	// DefaultTarget is the target used when none is specified.
	DefaultTarget() int32

	// Resize recreates the texture storage with the new dimensions. The
	// texture keeps its handle. A depth of zero leaves the depth of a layered
	// texture unchanged and is ignored by flat textures.
	Resize(width int32, height int32, depth int32)
}

type slot struct {
	texture Texture
	target  int32
}

// Framebuffer is a framebuffer object and a record of the attached textures.
// The Framebuffer does not own the textures.
type Framebuffer struct {
	ctx   driver.Framebuffers
	state *State

	fbo driver.Handle

	// color slots. a nil texture is an unpopulated slot
	color []slot
	depth slot
}

// New is the preferred method of initialisation for the Framebuffer type. The
// State should be shared by all framebuffers created for the same context.
func New(ctx driver.Framebuffers, state *State) *Framebuffer {
	fb := &Framebuffer{
		ctx:   ctx,
		state: state,
		fbo:   ctx.CreateFramebuffer(),
	}
	logger.Logf(state.perm, "framebuffer", "created %d", fb.fbo)
	return fb
}

func (fb *Framebuffer) String() string {
	if fb.fbo == 0 {
		return "framebuffer (deleted)"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("framebuffer %d: %d color", fb.fbo, fb.NumColorTargets()))
	if fb.depth.texture != nil {
		s.WriteString(", depth")
	}
	return s.String()
}

// Handle returns the native framebuffer handle. Zero after Delete().
func (fb *Framebuffer) Handle() driver.Handle {
	return fb.fbo
}

// Deleted returns true if Delete() has been called.
func (fb *Framebuffer) Deleted() bool {
	return fb.fbo == 0
}

// NumColorTargets returns the number of color slots in use. This is one more
// than the highest populated index, whatever the number of attach calls.
func (fb *Framebuffer) NumColorTargets() int {
	for i := len(fb.color) - 1; i >= 0; i-- {
		if fb.color[i].texture != nil {
			return i + 1
		}
	}
	return 0
}

// ColorTexture returns the texture attached at the color index. Returns nil if
// nothing has been attached at that index.
func (fb *Framebuffer) ColorTexture(index int) Texture {
	if index < 0 || index >= len(fb.color) {
		return nil
	}
	return fb.color[index].texture
}

// ColorTarget returns the target used to attach the texture at the color
// index. The second return value is false if nothing is attached there.
func (fb *Framebuffer) ColorTarget(index int) (int32, bool) {
	if fb.ColorTexture(index) == nil {
		return 0, false
	}
	return fb.color[index].target, true
}

// DepthTexture returns the attached depth texture. Returns nil if there is
// no depth attachment.
func (fb *Framebuffer) DepthTexture() Texture {
	return fb.depth.texture
}

// DepthTarget returns the target used when attaching the depth texture.
func (fb *Framebuffer) DepthTarget() (int32, bool) {
	if fb.depth.texture == nil {
		return 0, false
	}
	return fb.depth.target, true
}

// DrawBuffers returns the list of draw buffers declared to the context. There
// is an entry for every color slot up to the highest populated index. Unused
// slots are driver.None.
func (fb *Framebuffer) DrawBuffers() []driver.Enum {
	n := fb.NumColorTargets()
	bufs := make([]driver.Enum, n)
	for i := 0; i < n; i++ {
		if fb.color[i].texture != nil {
			bufs[i] = driver.ColorAttachment(i)
		} else {
			bufs[i] = driver.None
		}
	}
	return bufs
}

// AttachColor attaches the texture at the color index using the texture's
// default target.
func (fb *Framebuffer) AttachColor(index int, tex Texture) {
	fb.AttachColorTarget(index, tex, tex.DefaultTarget())
}

// AttachColorTarget attaches the texture at the color index. The target is
// a texture target enum (eg. a cubemap face) for flat textures and a layer
// for layered textures.
//
// The draw buffers are declared again after every attachment. A negative
// index will panic.
func (fb *Framebuffer) AttachColorTarget(index int, tex Texture, target int32) {
	for len(fb.color) <= index {
		fb.color = append(fb.color, slot{})
	}

	prev := fb.bindAndCaptureState()

	fb.color[index] = slot{texture: tex, target: target}
	tex.Attach(fb.ctx, driver.ColorAttachment(index), target)
	fb.ctx.DrawBuffers(fb.DrawBuffers())

	fb.restoreState(prev)
}

// AttachDepth attaches the texture at the depth attachment point using the
// texture's default target.
func (fb *Framebuffer) AttachDepth(tex Texture) {
	fb.AttachDepthTarget(tex, tex.DefaultTarget())
}

// AttachDepthTarget attaches the texture at the depth attachment point. See
// AttachColorTarget() for the meaning of target.
func (fb *Framebuffer) AttachDepthTarget(tex Texture, target int32) {
	prev := fb.bindAndCaptureState()

	fb.depth = slot{texture: tex, target: target}
	tex.Attach(fb.ctx, driver.DepthAttachment, target)

	fb.restoreState(prev)
}

// Resize every attached texture and attach them again. Texture storage
// cannot be resized without being recreated, which detaches it.
//
// A width or height of zero is the size of the context's drawing buffer in
// that dimension. A depth of zero leaves the depth of layered textures
// unchanged.
func (fb *Framebuffer) Resize(width int32, height int32, depth int32) {
	if width == 0 || height == 0 {
		dw, dh := fb.ctx.DrawingBufferSize()
		if width == 0 {
			width = dw
		}
		if height == 0 {
			height = dh
		}
	}

	prev := fb.bindAndCaptureState()

	for i, s := range fb.color {
		if s.texture == nil {
			continue
		}
		s.texture.Resize(width, height, depth)
		s.texture.Attach(fb.ctx, driver.ColorAttachment(i), s.target)
	}

	if fb.depth.texture != nil {
		fb.depth.texture.Resize(width, height, depth)
		fb.depth.texture.Attach(fb.ctx, driver.DepthAttachment, fb.depth.target)
	}

	fb.restoreState(prev)

	logger.Logf(fb.state.perm, "framebuffer", "resized %d to %dx%d", fb.fbo, width, height)
}

// ResizeToDrawingBuffer resizes every attached texture to the size of the
// context's drawing buffer.
func (fb *Framebuffer) ResizeToDrawingBuffer() {
	fb.Resize(0, 0, 0)
}

// Status queries the completeness of the framebuffer.
func (fb *Framebuffer) Status() Status {
	prev := fb.bindAndCaptureState()
	status := Status(fb.ctx.CheckFramebufferStatus(driver.DrawFramebuffer))
	fb.restoreState(prev)
	return status
}

// Delete the framebuffer object. It is safe to call Delete() more than once.
// The attached textures are not deleted.
func (fb *Framebuffer) Delete() {
	if fb.fbo == 0 {
		return
	}

	logger.Logf(fb.state.perm, "framebuffer", "deleted %d", fb.fbo)

	fb.ctx.DeleteFramebuffer(fb.fbo)
	fb.fbo = 0
	fb.state.forget(fb)
}

// BindForDraw binds the framebuffer as the draw framebuffer. Nothing happens
// if it is already bound for drawing.
func (fb *Framebuffer) BindForDraw() {
	if fb.state.draw != fb {
		fb.ctx.BindFramebuffer(driver.DrawFramebuffer, fb.fbo)
		fb.state.draw = fb
	}
}

// BindForRead binds the framebuffer as the read framebuffer. Nothing happens
// if it is already bound for reading.
func (fb *Framebuffer) BindForRead() {
	if fb.state.read != fb {
		fb.ctx.BindFramebuffer(driver.ReadFramebuffer, fb.fbo)
		fb.state.read = fb
	}
}

// bindAndCaptureState binds the framebuffer for drawing without updating the
// state. returns the framebuffer that was bound beforehand, which should be
// passed to restoreState() once the update is complete
func (fb *Framebuffer) bindAndCaptureState() *Framebuffer {
	prev := fb.state.draw
	if prev != fb {
		fb.ctx.BindFramebuffer(driver.DrawFramebuffer, fb.fbo)
	}
	return prev
}

// restoreState binds prev for drawing. a nil prev is the default framebuffer
func (fb *Framebuffer) restoreState(prev *Framebuffer) {
	if prev != fb {
		var h driver.Handle
		if prev != nil {
			h = prev.fbo
		}
		fb.ctx.BindFramebuffer(driver.DrawFramebuffer, h)
	}
}
