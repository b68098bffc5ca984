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

package probe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/driver/fake"
	"github.com/jetsetilly/fbotrack/framebuffer"
	"github.com/jetsetilly/fbotrack/layout"
	"github.com/jetsetilly/fbotrack/logger"
)

// ErrDriver is wrapped by the error returned by Report() if the context
// raised an error.
var ErrDriver = errors.New("driver error")

// Options for the Report() function.
type Options struct {
	// size of the drawing buffer of the fake context
	Width  int32
	Height int32

	// the drawing buffer is changed to this size before the framebuffer is
	// resized. if either value is zero then the drawing buffer size is doubled
	ResizeWidth  int32
	ResizeHeight int32

	// list every driver call
	Calls bool

	// graphviz output of the framebuffer after it has been built. can be nil
	Memviz io.Writer
}

// Report builds the layout and writes a report to output. The returned error
// is non-nil if the framebuffer is incomplete at any stage or if the context
// raised an error.
func Report(output io.Writer, l layout.Layout, opts Options) error {
	ctx := fake.NewContext(opts.Width, opts.Height)
	state := framebuffer.NewState(logger.Allow)

	fmt.Fprintf(output, "layout: %s\n", l)

	b := l.Build(ctx, state)
	fb := b.Framebuffer

	fmt.Fprintf(output, "built: %s\n", fb)
	fmt.Fprintf(output, "draw buffers: %s\n", enums(fb.DrawBuffers()))

	built := fb.Status()
	fmt.Fprintf(output, "status: %s\n", built)

	if opts.Memviz != nil {
		memviz.Map(opts.Memviz, fb)
	}

	ctx.Width, ctx.Height = opts.ResizeWidth, opts.ResizeHeight
	if ctx.Width == 0 || ctx.Height == 0 {
		ctx.Width, ctx.Height = opts.Width*2, opts.Height*2
	}
	fb.ResizeToDrawingBuffer()

	resized := fb.Status()
	fmt.Fprintf(output, "resized: %dx%d\n", ctx.Width, ctx.Height)
	fmt.Fprintf(output, "status: %s\n", resized)

	b.Delete()

	if opts.Calls {
		calls := ctx.Calls()
		fmt.Fprintf(output, "driver calls: %d\n", len(calls))
		for _, c := range calls {
			fmt.Fprintf(output, "  %s\n", c)
		}
	}

	var driverErrs []string
	for e := ctx.GetError(); e != driver.NoError; e = ctx.GetError() {
		driverErrs = append(driverErrs, driver.ErrorName(e))
	}
	if len(driverErrs) > 0 {
		fmt.Fprintf(output, "driver errors: %s\n", strings.Join(driverErrs, ", "))
		return fmt.Errorf("probe: %w: %s", ErrDriver, strings.Join(driverErrs, ", "))
	}

	if err := built.Err(); err != nil {
		return fmt.Errorf("probe: after build: %w", err)
	}
	if err := resized.Err(); err != nil {
		return fmt.Errorf("probe: after resize: %w", err)
	}

	return nil
}

func enums(e []driver.Enum) string {
	s := make([]string, len(e))
	for i := range e {
		if e[i] == driver.None {
			s[i] = "NONE"
		} else {
			s[i] = fmt.Sprintf("0x%04x", uint32(e[i]))
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(s, " "))
}
