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

package layout_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/driver/fake"
	"github.com/jetsetilly/fbotrack/framebuffer"
	"github.com/jetsetilly/fbotrack/layout"
	"github.com/jetsetilly/fbotrack/logger"
	"github.com/jetsetilly/fbotrack/test"
)

const yamlLayout = `
width: 320
height: 200
color:
  - format: RGBA8
  - format: rgba16f
    kind: array
    layers: 4
    layer: 2
depth:
  format: Depth24
`

const tomlLayout = `
width = 320
height = 200

[[color]]
format = "RGBA8"

[[color]]
format = "rgba16f"
kind = "array"
layers = 4
layer = 2

[depth]
format = "Depth24"
`

func checkDecoded(t *testing.T, l layout.Layout) {
	t.Helper()
	test.ExpectEquality(t, l.Width, 320)
	test.ExpectEquality(t, l.Height, 200)
	test.DemandEquality(t, len(l.Color), 2)
	test.ExpectEquality(t, l.Color[0].Format, "RGBA8")
	test.ExpectEquality(t, l.Color[1].Kind, layout.KindArray)
	test.ExpectEquality(t, l.Color[1].Layers, 4)
	test.ExpectEquality(t, l.Color[1].Layer, 2)
	test.DemandSuccess(t, l.Depth != nil)
	test.ExpectEquality(t, l.Depth.Format, "Depth24")
	test.ExpectEquality(t, l.String(), "color0:RGBA8 color1:rgba16f(array x4 @2) depth:Depth24")
}

func TestDecodeYAML(t *testing.T) {
	l, err := layout.DecodeYAML(strings.NewReader(yamlLayout))
	test.DemandSuccess(t, err)
	checkDecoded(t, l)
}

func TestDecodeTOML(t *testing.T) {
	l, err := layout.DecodeTOML(strings.NewReader(tomlLayout))
	test.DemandSuccess(t, err)
	checkDecoded(t, l)
}

func TestDecodeErrors(t *testing.T) {
	_, err := layout.DecodeYAML(strings.NewReader("color:\n  - format: RGB565\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownFormat))

	_, err = layout.DecodeYAML(strings.NewReader("color:\n  - format: RGBA8\n    kind: 1d\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownKind))

	_, err = layout.DecodeYAML(strings.NewReader("colour:\n  - format: RGBA8\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownField))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "colour"))

	_, err = layout.DecodeYAML(strings.NewReader("width: wide\ncolor:\n  - format: RGBA8\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownField))

	// a syntax error is not a field error
	_, err = layout.DecodeYAML(strings.NewReader("color: [\n"))
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, errors.Is(err, layout.ErrUnknownField))

	_, err = layout.DecodeTOML(strings.NewReader("[[colour]]\nformat = \"RGBA8\"\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownField))

	_, err = layout.DecodeTOML(strings.NewReader("[depth]\nformat = \"Depth16\"\n"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnknownFormat))

	// an empty yaml document is an empty layout
	l, err := layout.DecodeYAML(strings.NewReader(""))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(l.Color), 0)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	p := filepath.Join(dir, "layout.yml")
	test.DemandSuccess(t, os.WriteFile(p, []byte(yamlLayout), 0600))
	l, err := layout.Load(p)
	test.DemandSuccess(t, err)
	checkDecoded(t, l)

	p = filepath.Join(dir, "layout.TOML")
	test.DemandSuccess(t, os.WriteFile(p, []byte(tomlLayout), 0600))
	l, err = layout.Load(p)
	test.DemandSuccess(t, err)
	checkDecoded(t, l)

	_, err = layout.Load(filepath.Join(dir, "layout.json"))
	test.ExpectSuccess(t, errors.Is(err, layout.ErrUnsupportedFile))

	_, err = layout.Load(filepath.Join(dir, "missing.yaml"))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestBuild(t *testing.T) {
	ctx := fake.NewContext(640, 480)
	state := framebuffer.NewState(logger.Deny)

	l, err := layout.DecodeYAML(strings.NewReader(yamlLayout))
	test.DemandSuccess(t, err)

	b := l.Build(ctx, state)
	fb := b.Framebuffer
	test.ExpectEquality(t, fb.NumColorTargets(), 2)
	test.DemandEquality(t, len(b.Color), 2)
	test.DemandSuccess(t, b.Depth != nil)

	w, h, d := b.Color[1].Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)
	test.ExpectEquality(t, d, 4)

	a, ok := ctx.Attachment(fb.Handle(), driver.ColorAttachment(1))
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, a.Layered)
	test.ExpectEquality(t, a.Layer, 2)

	test.ExpectSuccess(t, fb.Status().Complete())
	test.ExpectEquality(t, state.DrawFramebuffer(), nil)

	fbo := fb.Handle()
	b.Delete()
	test.ExpectFailure(t, ctx.Live(fbo))
	test.ExpectEquality(t, ctx.Count("DeleteTexture"), 3)
	test.ExpectEquality(t, ctx.GetError(), driver.NoError)
}

func TestBuildDefault(t *testing.T) {
	ctx := fake.NewContext(800, 600)
	state := framebuffer.NewState(logger.Deny)

	b := layout.Default().Build(ctx, state)
	w, h, _ := b.Color[0].Dimensions()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)
	test.ExpectSuccess(t, b.Framebuffer.Status().Complete())
}

func TestBuildCubemap(t *testing.T) {
	ctx := fake.NewContext(800, 600)
	state := framebuffer.NewState(logger.Deny)

	l := layout.Layout{
		Width:  64,
		Height: 64,
		Color:  []layout.Attachment{{Format: "RGBA8", Kind: layout.KindCubemap, Face: 3}},
	}
	b := l.Build(ctx, state)

	a, ok := ctx.Attachment(b.Framebuffer.Handle(), driver.ColorAttachment0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Target, driver.TextureCubeMapNegativeY)
	test.ExpectSuccess(t, b.Framebuffer.Status().Complete())
}
