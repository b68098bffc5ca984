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

// Package prefs provides typed preference values that can be changed from
// the command line.
//
// Each preference type (Bool, Int and String) can be set with a value of its
// own type or with a string, which will be converted. Hook functions can be
// attached to a preference and are called before and after a new value is
// stored. An error from the pre hook prevents the value from being stored.
//
// Preferences are collected into a Group under a key. Values for those keys
// can be given on the command line in the form:
//
//	"key::value; key::value"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack() and Group.SetFromCommandLine() sets the values of
// matching preferences.
package prefs
