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

package fake_test

import (
	"testing"

	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/driver/fake"
	"github.com/jetsetilly/fbotrack/test"
)

func TestCubemapFacesSquare(t *testing.T) {
	ctx := fake.NewContext(640, 480)

	tex := ctx.CreateTexture()
	ctx.BindTexture(driver.TextureCubeMap, tex)

	ctx.TexImage2D(driver.TextureCubeMapPositiveX, 0, driver.RGBA8, 64, 64, driver.RGBA, driver.UnsignedByte, nil)
	test.ExpectEquality(t, ctx.GetError(), driver.NoError)

	ctx.TexImage2D(driver.TextureCubeMapNegativeZ, 0, driver.RGBA8, 640, 480, driver.RGBA, driver.UnsignedByte, nil)
	test.ExpectEquality(t, ctx.GetError(), driver.InvalidValue)

	// storage is unchanged by the rejected call
	s, ok := ctx.Storage(tex)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Width, 64)
	test.ExpectEquality(t, s.Height, 64)
	test.ExpectEquality(t, s.Specified, 1)
}

func TestFlatTextureRectangle(t *testing.T) {
	ctx := fake.NewContext(640, 480)

	tex := ctx.CreateTexture()
	ctx.BindTexture(driver.Texture2D, tex)
	ctx.TexImage2D(driver.Texture2D, 0, driver.RGBA8, 640, 480, driver.RGBA, driver.UnsignedByte, nil)
	test.ExpectEquality(t, ctx.GetError(), driver.NoError)

	s, _ := ctx.Storage(tex)
	test.ExpectEquality(t, s.Width, 640)
	test.ExpectEquality(t, s.Height, 480)
}
