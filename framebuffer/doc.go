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

// Package framebuffer wraps a framebuffer object of the graphics context. The
// Framebuffer type records which textures are attached to which attachment
// point and forwards attach, resize and delete requests to the context.
//
// Framebuffers created for the same context share a State. The State records
// which Framebuffer is bound for drawing and which for reading, so that
// redundant bind calls can be suppressed:
//
//	state := framebuffer.NewState(logger.Allow)
//	fb := framebuffer.New(ctx, state)
//	fb.AttachColor(0, colorTexture)
//	fb.AttachDepth(depthTexture)
//
// Operations that change the framebuffer object (attaching, resizing and
// querying the status) bind the framebuffer for the duration of the operation
// and then restore whatever binding was in place beforehand. From the
// caller's point of view these operations do not change which framebuffer is
// current.
//
// A texture is attached at a color index. Color index N corresponds to the
// attachment point COLOR_ATTACHMENT0+N. Indices are expected to be contiguous
// from zero but gaps are allowed. A gap is declared as NONE in the list of
// draw buffers.
//
// No validation of arguments is performed and no errors are raised. Misuse is
// reported by the graphics context through its own error channel, which is
// polled by the owner of the context.
//
// Like the graphics context itself, none of the types in this package are
// safe for concurrent use.
package framebuffer
