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

// Package platform opens an SDL window with an OpenGL 3.2 core profile
// context. The window is the Drawable for the glcontext package.
//
// SDL requires that the window is created and serviced on the main thread.
// NewWindow() locks the calling goroutine to its OS thread and the Window
// should only be used from that goroutine.
package platform
