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

// Package paths contains functions to prepare paths for fbotrack output
// files, such as screenshots and memory dumps.
//
// The ResourcePath() function prepends the base resource path, currently
// defined to be ".fbotrack", to the supplied sub-path and filename. The
// directories are created if they do not already exist. For example:
//
//	p, err := paths.ResourcePath("screenshots", "fbo.jpg")
//
// will return ".fbotrack/screenshots/fbo.jpg".
//
// The base path is relative to the current directory unless it is not
// writable, in which case the user's config directory is used. The package
// uses os.UserConfigDir() from the Go standard library for this.
package paths
