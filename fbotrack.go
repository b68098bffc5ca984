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
	"runtime"

	"github.com/jetsetilly/fbotrack/layout"
	"github.com/jetsetilly/fbotrack/logger"
	"github.com/jetsetilly/fbotrack/modalflag"
	"github.com/jetsetilly/fbotrack/prefs"
	"github.com/jetsetilly/fbotrack/version"
)

// SDL and the GL context must be serviced from the main thread
func init() {
	runtime.LockOSThread()
}

const additionalHelp = `The layout file argument is optional. Layout files are YAML (.yaml or .yml)
or TOML (.toml). Without a layout file the framebuffer has one RGBA8 color
attachment and a Depth24 depth attachment.

Preferences can be set with the -prefs flag. For example:

	-prefs "width::800; height::600; swap::0"`

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the value to be used with os.Exit()
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PROBE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = runMode(md)
	case "PROBE":
		err = probeMode(md)
	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// setup handles the flags and arguments common to all modes. the mode
// specific flags must have been added before calling. returns false if the
// mode should not continue
func setup(md *modalflag.Modes) (bool, layout.Layout, *preferences, error) {
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prf := md.AddString("prefs", "", "preferences for this session")
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, layout.Layout{}, nil, err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	pref, err := newPreferences()
	if err != nil {
		return false, layout.Layout{}, nil, err
	}

	prefs.PushCommandLineStack(*prf)
	err = pref.grp.SetFromCommandLine()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "fbotrack", "unused preferences: %s", unused)
	}
	if err != nil {
		return false, layout.Layout{}, nil, err
	}

	l := layout.Default()
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		l, err = layout.Load(md.GetArg(0))
		if err != nil {
			return false, layout.Layout{}, nil, err
		}
	default:
		return false, layout.Layout{}, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	return true, l, pref, nil
}
