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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each mode having its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which
// takes no arguments. This allows the same argument list to be parsed in
// stages, one stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PROBE")
//	p, err := md.Parse()
//
// After Parse(), Mode() returns the sub-mode that was selected. If the first
// non-flag argument does not name a sub-mode then the first sub-mode in the
// list is selected.
//
// Flags for the selected mode are added after a call to NewMode() and then
// parsed with another call to Parse():
//
//	md.NewMode()
//	echo := md.AddBool("log", false, "echo log to stdout")
//	p, err = md.Parse()
//
// Any arguments that are neither flags nor a sub-mode are returned by
// RemainingArgs() and GetArg().
package modalflag
