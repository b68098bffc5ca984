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
	"errors"
	"fmt"

	"github.com/jetsetilly/fbotrack/driver"
)

// ErrIncomplete is wrapped by the error returned from Status.Err().
var ErrIncomplete = errors.New("incomplete")

// Status is the completeness status of a framebuffer, as reported by the
// graphics context.
type Status driver.Enum

var statusNames = map[Status]string{
	Status(driver.FramebufferComplete):                    "FRAMEBUFFER_COMPLETE",
	Status(driver.FramebufferUndefined):                   "FRAMEBUFFER_UNDEFINED",
	Status(driver.FramebufferIncompleteAttachment):        "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	Status(driver.FramebufferIncompleteMissingAttachment): "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	Status(driver.FramebufferIncompleteDrawBuffer):        "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	Status(driver.FramebufferIncompleteReadBuffer):        "FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	Status(driver.FramebufferUnsupported):                 "FRAMEBUFFER_UNSUPPORTED",
	Status(driver.FramebufferIncompleteMultisample):       "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	Status(driver.FramebufferIncompleteLayerTargets):      "FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS",
}

// Complete returns true if the framebuffer can be drawn to.
func (s Status) Complete() bool {
	return s == Status(driver.FramebufferComplete)
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("unknown framebuffer status (0x%04x)", uint32(s))
}

// Err returns nil if the status is complete. Otherwise it returns an error
// wrapping ErrIncomplete.
func (s Status) Err() error {
	if s.Complete() {
		return nil
	}
	return fmt.Errorf("framebuffer: %w: %s", ErrIncomplete, s.String())
}
