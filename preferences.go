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

package main

import (
	"fmt"

	"github.com/jetsetilly/fbotrack/platform"
	"github.com/jetsetilly/fbotrack/prefs"
)

// preferences for the fbotrack command. can be set with the -prefs flag
type preferences struct {
	grp *prefs.Group

	// initial size of the window. in RUN mode the size of the drawing buffer
	// can be different depending on the DPI of the display
	width  prefs.Int
	height prefs.Int

	// swap interval of the window. one of the platform.Sync values
	swap prefs.Int
}

func newPreferences() (*preferences, error) {
	p := &preferences{
		grp: prefs.NewGroup(),
	}

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("value must be greater than zero")
		}
		return nil
	}
	p.width.SetHookPre(positive)
	p.height.SetHookPre(positive)

	p.swap.SetHookPre(func(v prefs.Value) error {
		switch v.(int) {
		case platform.SyncImmediateUpdate, platform.SyncWithVerticalRetrace, platform.SyncAdaptive:
			return nil
		}
		return fmt.Errorf("unsupported swap interval (%d)", v.(int))
	})

	if err := p.width.Set(640); err != nil {
		return nil, err
	}
	if err := p.height.Set(480); err != nil {
		return nil, err
	}
	if err := p.swap.Set(platform.SyncWithVerticalRetrace); err != nil {
		return nil, err
	}

	if err := p.grp.Add("width", &p.width); err != nil {
		return nil, err
	}
	if err := p.grp.Add("height", &p.height); err != nil {
		return nil, err
	}
	if err := p.grp.Add("swap", &p.swap); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) size() (int32, int32) {
	return int32(p.width.Get().(int)), int32(p.height.Get().(int))
}
