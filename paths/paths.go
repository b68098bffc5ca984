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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the base path for all resources. not used directly except in the
// getBasePath() function
const baseResourcePath = ".fbotrack"

// ResourcePath returns the resource string (representing the resource to be
// saved or loaded) prepended with the base resource path. The directories in
// the path are created if necessary.
//
// If the file argument is empty then the returned path is the path of the
// directory. If both arguments are empty then the returned path is the base
// resource path.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}

// getBasePath returns the base path joined with subPth, creating it if it
// does not exist. the user's config directory is tried if the current
// directory can not be used
func getBasePath(subPth string) (string, error) {
	pth := filepath.Join(baseResourcePath, subPth)

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0700); err == nil {
		return pth, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	pth = filepath.Join(cnf, baseResourcePath[1:], subPth)
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}

	return pth, nil
}
