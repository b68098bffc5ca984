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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The "Expect" functions report a test error and allow the test to continue.
// The "Demand" functions are testing fatalities and should be used when later
// tests depend on the value being correct. For example, demanding that the
// length of a slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() test values for success or failure in a
// way suitable for the type of the value. Currently supported types:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> always success
//
// It is worth describing how nil is handled because it is not obvious. A nil
// value is considered a success. This is because a nil error interface arrives
// as an untyped nil and we need nil errors to be successes.
//
// Finally, the CompareWriter type implements the io.Writer interface and
// should be used to capture output for comparison with an expected string.
package test
