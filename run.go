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
	"fmt"
	"math"
	"os"
	"os/signal"

	"github.com/jetsetilly/fbotrack/driver"
	"github.com/jetsetilly/fbotrack/framebuffer"
	"github.com/jetsetilly/fbotrack/glcontext"
	"github.com/jetsetilly/fbotrack/layout"
	"github.com/jetsetilly/fbotrack/logger"
	"github.com/jetsetilly/fbotrack/modalflag"
	"github.com/jetsetilly/fbotrack/platform"
	"github.com/jetsetilly/fbotrack/statsview"
	"github.com/jetsetilly/fbotrack/version"
)

func runMode(md *modalflag.Modes) error {
	md.NewMode()

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	ok, l, pref, err := setup(md)
	if err != nil || !ok {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	width, height := pref.size()
	win, err := platform.NewWindow(version.ApplicationName, width, height)
	if err != nil {
		return err
	}
	defer func() {
		_ = win.Destroy()
	}()

	win.SetSwapInterval(pref.swap.Get().(int))

	ctx, err := glcontext.New(win)
	if err != nil {
		return err
	}

	state := framebuffer.NewState(logger.Allow)
	b := l.Build(ctx, state)
	defer b.Delete()

	logStatus(b.Framebuffer)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	var frame int
	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}

		ev := win.Service()
		if ev.Quit {
			return nil
		}

		if ev.Resized {
			b.Framebuffer.ResizeToDrawingBuffer()
			logStatus(b.Framebuffer)
		}

		for _, k := range ev.Keys {
			switch k {
			case "S":
				screenshot(ctx, b)
			case "Escape":
				return nil
			}
		}

		draw(ctx, state, b, frame)
		win.Swap()
		frame++

		for e := ctx.GetError(); e != driver.NoError; e = ctx.GetError() {
			logger.Logf(logger.Allow, "fbotrack", "GL error: %s", driver.ErrorName(e))
		}
	}
}

func logStatus(fb *framebuffer.Framebuffer) {
	logger.Logf(logger.Allow, "fbotrack", "%s: %s", fb, fb.Status())
}

// draw clears every color attachment of the framebuffer to a color that
// changes with the frame number and then copies attachment zero to the
// default framebuffer
func draw(ctx *glcontext.Context, state *framebuffer.State, b *layout.Built, frame int) {
	fb := b.Framebuffer
	dw, dh := ctx.DrawingBufferSize()

	fb.BindForDraw()
	for i, n := 0, fb.NumColorTargets(); i < n; i++ {
		if fb.ColorTexture(i) == nil {
			continue
		}
		t := float64(frame)/60.0 + float64(i)
		ctx.ClearColorAttachment(i,
			float32(0.5+0.5*math.Sin(t)),
			float32(0.5+0.5*math.Sin(t+2.0)),
			float32(0.5+0.5*math.Sin(t+4.0)),
			1.0)
	}

	state.BindDefault(ctx, driver.DrawFramebuffer)
	ctx.Viewport(dw, dh)
	ctx.Clear(0, 0, 0, 1)

	if len(b.Color) == 0 {
		return
	}

	fb.BindForRead()
	ctx.ReadBuffer(driver.ColorAttachment0)
	sw, sh, _ := b.Color[0].Dimensions()
	ctx.Blit(sw, sh, dw, dh)
}
