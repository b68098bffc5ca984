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

package driver

// Framebuffers is the set of framebuffer object operations.
type Framebuffers interface {
	CreateFramebuffer() Handle
	DeleteFramebuffer(fbo Handle)

	// BindFramebuffer binds fbo for the role (DrawFramebuffer or
	// ReadFramebuffer). A zero handle binds the default framebuffer.
	BindFramebuffer(role Enum, fbo Handle)

	FramebufferTexture2D(role Enum, attachment Enum, target Enum, texture Handle, level int32)
	FramebufferTextureLayer(role Enum, attachment Enum, texture Handle, level int32, layer int32)

	// DrawBuffers declares the attachments written to by the fragment
	// shader. The list applies to the framebuffer currently bound for draw.
	DrawBuffers(attachments []Enum)

	CheckFramebufferStatus(role Enum) Enum

	// DrawingBufferSize is the size of the output surface, in pixels.
	DrawingBufferSize() (width int32, height int32)
}

// Textures is the set of texture object operations.
type Textures interface {
	CreateTexture() Handle
	DeleteTexture(texture Handle)
	BindTexture(target Enum, texture Handle)

	// pixels may be nil, in which case the storage is allocated but
	// uninitialised
	TexImage2D(target Enum, level int32, internalFormat Enum, width int32, height int32, format Enum, xtype Enum, pixels []byte)
	TexImage3D(target Enum, level int32, internalFormat Enum, width int32, height int32, depth int32, format Enum, xtype Enum, pixels []byte)

	TexParameteri(target Enum, pname Enum, param int32)
}

// Context is everything a graphics context offers to this module.
type Context interface {
	Framebuffers
	Textures

	// GetError returns and clears the oldest pending error. NoError if there
	// is nothing pending.
	GetError() Enum
}
