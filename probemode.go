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
	"os"

	"github.com/jetsetilly/fbotrack/modalflag"
	"github.com/jetsetilly/fbotrack/probe"
)

func probeMode(md *modalflag.Modes) error {
	md.NewMode()

	calls := md.AddBool("calls", false, "list driver calls")
	viz := md.AddString("memviz", "", "write graphviz of framebuffer to file")

	ok, l, pref, err := setup(md)
	if err != nil || !ok {
		return err
	}

	width, height := pref.size()
	opts := probe.Options{
		Width:  width,
		Height: height,
		Calls:  *calls,
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return fmt.Errorf("memviz: %w", err)
		}
		defer f.Close()
		opts.Memviz = f
	}

	return probe.Report(os.Stdout, l, opts)
}
