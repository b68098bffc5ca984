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

package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/fbotrack/texture"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the decoding functions. They are always wrapped.
var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUnknownFormat   = errors.New("unknown texture format")
	ErrUnknownKind     = errors.New("unknown texture kind")

	// a field that is not known or that has a value of the wrong type
	ErrUnknownField = errors.New("unknown field")
)

// list of valid texture kinds
const (
	Kind2D      = "2d"
	KindCubemap = "cubemap"
	KindArray   = "array"
	Kind3D      = "3d"
)

// Attachment describes a single texture attachment.
type Attachment struct {
	Format string `yaml:"format" toml:"format"`
	Kind   string `yaml:"kind,omitempty" toml:"kind,omitempty"`

	// number of layers for array textures or the depth of 3d textures
	Layers int32 `yaml:"layers,omitempty" toml:"layers,omitempty"`

	Layer int32 `yaml:"layer,omitempty" toml:"layer,omitempty"`
	Face  int32 `yaml:"face,omitempty" toml:"face,omitempty"`
}

// Layout describes all the attachments of a framebuffer.
type Layout struct {
	Width  int32        `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int32        `yaml:"height,omitempty" toml:"height,omitempty"`
	Color  []Attachment `yaml:"color" toml:"color"`
	Depth  *Attachment  `yaml:"depth,omitempty" toml:"depth,omitempty"`
}

// Default returns a layout with one RGBA8 color attachment and a Depth24
// depth attachment, both the size of the drawing buffer.
func Default() Layout {
	return Layout{
		Color: []Attachment{{Format: texture.RGBA8.Name}},
		Depth: &Attachment{Format: texture.Depth24.Name},
	}
}

func (l Layout) String() string {
	s := strings.Builder{}
	for i, a := range l.Color {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("color%d:%s", i, a))
	}
	if l.Depth != nil {
		if len(l.Color) > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("depth:%s", *l.Depth))
	}
	return s.String()
}

func (a Attachment) String() string {
	switch a.kind() {
	case KindArray, Kind3D:
		return fmt.Sprintf("%s(%s x%d @%d)", a.Format, a.kind(), a.Layers, a.Layer)
	case KindCubemap:
		return fmt.Sprintf("%s(%s face %d)", a.Format, a.kind(), a.Face)
	}
	return a.Format
}

func (a Attachment) kind() string {
	if a.Kind == "" {
		return Kind2D
	}
	return strings.ToLower(a.Kind)
}

func (a Attachment) check(name string) error {
	if _, ok := texture.FormatByName(a.Format); !ok {
		return fmt.Errorf("layout: %s: %w: %q (valid formats: %s)", name, ErrUnknownFormat, a.Format,
			strings.Join(texture.FormatNames(), ", "))
	}
	switch a.kind() {
	case Kind2D, KindCubemap, KindArray, Kind3D:
	default:
		return fmt.Errorf("layout: %s: %w: %q", name, ErrUnknownKind, a.Kind)
	}
	return nil
}

func (l Layout) check() error {
	for i, a := range l.Color {
		err := a.check(fmt.Sprintf("color %d", i))
		if err != nil {
			return err
		}
	}
	if l.Depth != nil {
		err := l.Depth.check("depth")
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeYAML decodes a YAML layout. Fields not known to the Layout type, or
// with a value of the wrong type, are an error wrapping ErrUnknownField.
func DecodeYAML(r io.Reader) (Layout, error) {
	var l Layout

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&l)
	if err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Layout{}, fmt.Errorf("layout: %w: %s", ErrUnknownField, strings.Join(typeErr.Errors, ", "))
		}
		return Layout{}, fmt.Errorf("layout: %w", err)
	}

	err = l.check()
	if err != nil {
		return Layout{}, err
	}

	return l, nil
}

// DecodeTOML decodes a TOML layout. Keys not known to the Layout type are an
// error.
func DecodeTOML(r io.Reader) (Layout, error) {
	var l Layout

	md, err := toml.NewDecoder(r).Decode(&l)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Layout{}, fmt.Errorf("layout: %w: %s", ErrUnknownField, strings.Join(keys, ", "))
	}

	err = l.check()
	if err != nil {
		return Layout{}, err
	}

	return l, nil
}

// Load a layout from a file. The file extension decides how the file is
// decoded: .yaml or .yml for YAML and .toml for TOML.
func Load(path string) (Layout, error) {
	var decode func(io.Reader) (Layout, error)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".toml":
		decode = DecodeTOML
	default:
		return Layout{}, fmt.Errorf("layout: %w: %s", ErrUnsupportedFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()

	return decode(f)
}
