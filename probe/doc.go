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

// Package probe builds a framebuffer layout against the recording context of
// the driver/fake package and reports on the result. No window or graphics
// hardware is required.
//
// The report shows the completeness status of the framebuffer after it has
// been built and again after it has been resized. Optionally, the driver
// calls made to the context can be listed and a graphviz representation of
// the framebuffer can be written with the memviz package.
package probe
