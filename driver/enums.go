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

import "fmt"

// Enum is a graphics API enumeration value.
type Enum uint32

// Handle names a native object (framebuffer or texture). Zero is null.
type Handle uint32

// framebuffer binding roles
const (
	ReadFramebuffer Enum = 0x8ca8
	DrawFramebuffer Enum = 0x8ca9
)

// attachment points. color attachment N is ColorAttachment0 + N
const (
	None                   Enum = 0x0000
	ColorAttachment0       Enum = 0x8ce0
	DepthAttachment        Enum = 0x8d00
	DepthStencilAttachment Enum = 0x821a
)

// ColorAttachment returns the attachment enum for color slot index.
func ColorAttachment(index int) Enum {
	return ColorAttachment0 + Enum(index)
}

// texture targets
const (
	Texture2D               Enum = 0x0de1
	Texture3D               Enum = 0x806f
	Texture2DArray          Enum = 0x8c1a
	TextureCubeMap          Enum = 0x8513
	TextureCubeMapPositiveX Enum = 0x8515
	TextureCubeMapNegativeX Enum = 0x8516
	TextureCubeMapPositiveY Enum = 0x8517
	TextureCubeMapNegativeY Enum = 0x8518
	TextureCubeMapPositiveZ Enum = 0x8519
	TextureCubeMapNegativeZ Enum = 0x851a
)

// TextureCubeMapFaces is the number of faces in a cubemap. Face N has the
// target TextureCubeMapPositiveX + N.
const TextureCubeMapFaces = 6

// texture formats and pixel types
const (
	DepthComponent    Enum = 0x1902
	RGBA              Enum = 0x1908
	RGBA8             Enum = 0x8058
	RGBA16F           Enum = 0x881a
	DepthComponent24  Enum = 0x81a6
	DepthComponent32F Enum = 0x8cac
	UnsignedByte      Enum = 0x1401
	UnsignedInt       Enum = 0x1405
	Float             Enum = 0x1406
	HalfFloat         Enum = 0x140b
)

// texture parameters
const (
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	TextureWrapR     Enum = 0x8072
	Nearest          Enum = 0x2600
	Linear           Enum = 0x2601
	ClampToEdge      Enum = 0x812f
)

// framebuffer status values
const (
	FramebufferComplete                    Enum = 0x8cd5
	FramebufferUndefined                   Enum = 0x8219
	FramebufferIncompleteAttachment        Enum = 0x8cd6
	FramebufferIncompleteMissingAttachment Enum = 0x8cd7
	FramebufferIncompleteDrawBuffer        Enum = 0x8cdb
	FramebufferIncompleteReadBuffer        Enum = 0x8cdc
	FramebufferUnsupported                 Enum = 0x8cdd
	FramebufferIncompleteMultisample       Enum = 0x8d56
	FramebufferIncompleteLayerTargets      Enum = 0x8da8
)

// error values returned by GetError()
const (
	NoError                     Enum = 0x0000
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

var errorNames = map[Enum]string{
	NoError:                     "NO_ERROR",
	InvalidEnum:                 "INVALID_ENUM",
	InvalidValue:                "INVALID_VALUE",
	InvalidOperation:            "INVALID_OPERATION",
	OutOfMemory:                 "OUT_OF_MEMORY",
	InvalidFramebufferOperation: "INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorName returns the API name of a value returned by GetError(). Unknown
// values are formatted as hexadecimal.
func ErrorName(e Enum) string {
	if s, ok := errorNames[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%04x", uint32(e))
}
