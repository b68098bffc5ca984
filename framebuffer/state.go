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
	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/logger"
)

// State records the framebuffers currently bound for drawing and for reading.
// There should be one State per graphics context, shared by every Framebuffer
// created for that context. A nil Framebuffer in either role means the
// default framebuffer.
type State struct {
	draw *Framebuffer
	read *Framebuffer

	// logging permission for all framebuffers sharing this state
	perm logger.Permission
}

// NewState is the preferred method of initialisation for the State type. The
// Permission is used for all log entries made by framebuffers sharing the
// state.
func NewState(perm logger.Permission) *State {
	if perm == nil {
		perm = logger.Deny
	}
	return &State{
		perm: perm,
	}
}

// DrawFramebuffer returns the framebuffer bound for drawing. Returns nil if the
// default framebuffer is bound.
func (st *State) DrawFramebuffer() *Framebuffer {
	return st.draw
}

// ReadFramebuffer returns the framebuffer bound for reading. Returns nil if the
// default framebuffer is bound.
func (st *State) ReadFramebuffer() *Framebuffer {
	return st.read
}

// BindDefault binds the default framebuffer for the role, either
// driver.DrawFramebuffer or driver.ReadFramebuffer. Nothing happens if the
// default framebuffer is already bound for that role.
func (st *State) BindDefault(ctx driver.Framebuffers, role driver.Enum) {
	switch role {
	case driver.DrawFramebuffer:
		if st.draw != nil {
			ctx.BindFramebuffer(driver.DrawFramebuffer, 0)
			st.draw = nil
		}
	case driver.ReadFramebuffer:
		if st.read != nil {
			ctx.BindFramebuffer(driver.ReadFramebuffer, 0)
			st.read = nil
		}
	}
}

// forget is called when a framebuffer is deleted. the graphics context
// reverts a deleted framebuffer binding to the default framebuffer and so
// must the state
func (st *State) forget(fb *Framebuffer) {
	if st.draw == fb {
		st.draw = nil
	}
	if st.read == fb {
		st.read = nil
	}
}
