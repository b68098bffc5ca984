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

// Package driver defines the small part of the graphics API that the
// framebuffer and texture packages consume. The types are deliberately
// independent of any binding package so that the consumers can be exercised
// without a live context. The glcontext package implements the interfaces
// over OpenGL and the fake package implements them in memory.
//
// A Handle of zero has the meaning it has in OpenGL: no object, or in the
// case of a framebuffer binding, the default framebuffer.
//
// None of the interface functions return errors. Errors are reported through
// the side channel of GetError(), which callers poll when they choose to.
package driver
