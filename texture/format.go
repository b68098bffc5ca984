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

package texture

import (
	"strings"

	"github.com/jetsetilly/fbotrack/driver"
)

// Format describes how texture storage is specified.
type Format struct {
	Name     string
	Internal driver.Enum
	Pixel    driver.Enum
	Type     driver.Enum
}

func (f Format) String() string {
	return f.Name
}

// list of commonly used formats
var (
	RGBA8    = Format{Name: "RGBA8", Internal: driver.RGBA8, Pixel: driver.RGBA, Type: driver.UnsignedByte}
	RGBA16F  = Format{Name: "RGBA16F", Internal: driver.RGBA16F, Pixel: driver.RGBA, Type: driver.HalfFloat}
	Depth24  = Format{Name: "Depth24", Internal: driver.DepthComponent24, Pixel: driver.DepthComponent, Type: driver.UnsignedInt}
	Depth32F = Format{Name: "Depth32F", Internal: driver.DepthComponent32F, Pixel: driver.DepthComponent, Type: driver.Float}
)

var formats = []Format{RGBA8, RGBA16F, Depth24, Depth32F}

// FormatByName returns the Format with the name. The comparison is case
// insensitive.
func FormatByName(name string) (Format, bool) {
	for _, f := range formats {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Format{}, false
}

// FormatNames returns the names of all formats known to FormatByName().
func FormatNames() []string {
	n := make([]string, len(formats))
	for i, f := range formats {
		n[i] = f.Name
	}
	return n
}
