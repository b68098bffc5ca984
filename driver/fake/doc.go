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

// Package fake is an in-memory implementation of the driver interfaces. It
// records every call made to it and models enough of a real context (object
// lifetimes, the draw and read bindings, texture storage, attachments and the
// error side channel) for the framebuffer and texture packages to be tested
// without a display.
//
// It is also used by the PROBE mode of the fbotrack command.
package fake
