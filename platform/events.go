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

package platform

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Events is the summary of the SDL events serviced by a single call to
// Service().
type Events struct {
	Quit bool

	// the drawable area of the window has changed size
	Resized bool

	// keys pressed since the last call to Service(). the key names are as
	// given by sdl.GetKeyName()
	Keys []string
}

// Service polls and handles all pending SDL events. It must be called from the
// thread that created the Window.
func (win *Window) Service() Events {
	var ev Events

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			ev.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
				ev.Resized = true
			case sdl.WINDOWEVENT_CLOSE:
				ev.Quit = true
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				ev.Keys = append(ev.Keys, sdl.GetKeyName(e.Keysym.Sym))
			}
		}
	}

	return ev
}
