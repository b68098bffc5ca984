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
	"testing"

	"github.com/jetsetilly/fbotrack/prefs"
	"github.com/jetsetilly/fbotrack/test"
)

func TestFlip(t *testing.T) {
	// two rows, bottom row first
	pixels := []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}
	img := flip(pixels, 2, 2)
	test.ExpectEquality(t, img.Pix[0], uint8(3))
	test.ExpectEquality(t, img.Pix[4], uint8(4))
	test.ExpectEquality(t, img.Pix[8], uint8(1))
	test.ExpectEquality(t, img.Pix[12], uint8(2))
}

func TestPreferences(t *testing.T) {
	pref, err := newPreferences()
	test.DemandSuccess(t, err)

	w, h := pref.size()
	test.ExpectEquality(t, w, int32(640))
	test.ExpectEquality(t, h, int32(480))
	test.ExpectEquality(t, pref.grp.String(), "height::480; swap::1; width::640")

	prefs.PushCommandLineStack("width::800; swap::-1")
	test.ExpectSuccess(t, pref.grp.SetFromCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	w, _ = pref.size()
	test.ExpectEquality(t, w, int32(800))
	test.ExpectEquality(t, pref.swap.Get(), prefs.Value(-1))

	// rejected by the pre hooks
	test.ExpectFailure(t, pref.width.Set(0))
	test.ExpectFailure(t, pref.swap.Set(2))
	test.ExpectEquality(t, pref.width.Get(), prefs.Value(800))
}
