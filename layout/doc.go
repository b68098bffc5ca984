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

// Package layout describes the attachments of a framebuffer in a YAML or
// TOML file and builds the textures and framebuffer from the description.
//
// An example layout in YAML:
//
//	width: 640
//	height: 480
//	color:
//	  - format: RGBA8
//	  - format: RGBA16F
//	    kind: array
//	    layers: 4
//	    layer: 2
//	depth:
//	  format: Depth24
//
// And the same layout in TOML:
//
//	width = 640
//	height = 480
//
//	[[color]]
//	format = "RGBA8"
//
//	[[color]]
//	format = "RGBA16F"
//	kind = "array"
//	layers = 4
//	layer = 2
//
//	[depth]
//	format = "Depth24"
//
// The kind of an attachment is one of "2d" (the default), "cubemap", "array"
// or "3d". The layer field selects the layer of an array or 3d texture and
// the face field selects the face (0 to 5) of a cubemap. A width or height of
// zero means the size of the drawing buffer.
package layout
