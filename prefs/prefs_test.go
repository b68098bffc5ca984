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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/fbotrack/prefs"
	"github.com/jetsetilly/fbotrack/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool
	test.ExpectEquality(t, p.String(), "false")

	test.ExpectSuccess(t, p.Set(true))
	test.ExpectEquality(t, p.Get(), prefs.Value(true))

	test.ExpectSuccess(t, p.Set("FALSE"))
	test.ExpectEquality(t, p.Get(), prefs.Value(false))

	test.ExpectSuccess(t, p.Set("true"))
	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.String(), "false")

	test.ExpectFailure(t, p.Set(1))
}

func TestInt(t *testing.T) {
	var p prefs.Int
	test.ExpectEquality(t, p.String(), "0")

	test.ExpectSuccess(t, p.Set(640))
	test.ExpectEquality(t, p.Get(), prefs.Value(640))

	test.ExpectSuccess(t, p.Set(" 480 "))
	test.ExpectEquality(t, p.String(), "480")

	test.ExpectSuccess(t, p.Set(int32(10)))
	test.ExpectEquality(t, p.Get(), prefs.Value(10))

	test.ExpectFailure(t, p.Set("ten"))
	test.ExpectFailure(t, p.Set(1.5))
	test.ExpectEquality(t, p.Get(), prefs.Value(10))
}

func TestString(t *testing.T) {
	var p prefs.String
	test.ExpectSuccess(t, p.Set("foo"))
	test.ExpectEquality(t, p.String(), "foo")
	test.ExpectSuccess(t, p.Set(10))
	test.ExpectEquality(t, p.String(), "10")
	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.String(), "")
}

func TestHooks(t *testing.T) {
	var p prefs.Int
	var post int

	p.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	p.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, p.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook prevents the value from being stored
	test.ExpectFailure(t, p.Set(-1))
	test.ExpectEquality(t, p.Get(), prefs.Value(10))
	test.ExpectEquality(t, post, 10)
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// (partially) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// nested groups
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("bar"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestGroup(t *testing.T) {
	var width prefs.Int
	var echo prefs.Bool

	grp := prefs.NewGroup()
	test.ExpectSuccess(t, grp.Add("width", &width))
	test.ExpectSuccess(t, grp.Add("echo", &echo))
	test.ExpectFailure(t, grp.Add("width", &width))

	prefs.PushCommandLineStack("width::800; echo::true; unused::1")
	test.ExpectSuccess(t, grp.SetFromCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectEquality(t, width.Get(), prefs.Value(800))
	test.ExpectEquality(t, echo.Get(), prefs.Value(true))
	test.ExpectEquality(t, grp.String(), "echo::true; width::800")

	prefs.PushCommandLineStack("width::wide")
	test.ExpectFailure(t, grp.SetFromCommandLine())
	prefs.PopCommandLineStack()

	test.ExpectSuccess(t, grp.Reset())
	test.ExpectEquality(t, grp.String(), "echo::false; width::0")
}
