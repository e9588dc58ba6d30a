// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wm opens a demo window drawn by the window manager:
// two tiled areas, an overlapping side panel that slides in and out,
// and a floating heads-up pane.
package main

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/wm/base/errors"
	"cogentcore.org/wm/base/logx"
	"cogentcore.org/wm/events"
	"cogentcore.org/wm/gpu/software"
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver"
	"cogentcore.org/wm/timer"
	"cogentcore.org/wm/wm"
	"github.com/spf13/cobra"
)

// options are the command line flags.
type options struct {
	verbose, veryVerbose, quiet bool

	settings            string
	simulateEvents      bool
	forceSoftwareCursor bool
	idleSleep           time.Duration
	stereo              string
	fullscreen          bool
	nogui               bool
	width, height       int
}

func main() {
	cmd := newCommand(&options{})
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newCommand returns the root command, which sets opts from its flags.
func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wm",
		Short: "Open a window drawn by the window manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational messages")
	f.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	f.StringVar(&opts.settings, "settings", "", "settings file (TOML, or YAML with a .yaml extension)")
	f.BoolVar(&opts.simulateEvents, "simulate-events", false, "never sleep in the main loop")
	f.BoolVar(&opts.forceSoftwareCursor, "force-software-cursor", false, "draw the cursor in software")
	f.DurationVar(&opts.idleSleep, "idle-sleep", 0, "main loop sleep when idle (0 keeps the setting)")
	f.StringVar(&opts.stereo, "stereo", "", "stereo display: PageFlip, Anaglyph, Interlace, SideBySide or TopBottom")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "open the window in fullscreen")
	f.BoolVar(&opts.nogui, "nogui", false, "run headless on the offscreen platform")
	f.IntVar(&opts.width, "width", 1024, "window width")
	f.IntVar(&opts.height, "height", 640, "window height")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
	logx.SetDefaultLogger()

	app, err := driver.NewApp(opts.nogui)
	if err != nil {
		return err
	}
	m := wm.NewManager(app, software.NewBackend())
	if opts.settings != "" {
		m.Settings.File = opts.settings
	}
	if err := wm.LoadSettings(m.Settings); err != nil {
		return err
	}
	if opts.simulateEvents {
		m.Settings.SimulateEvents = true
	}
	if opts.forceSoftwareCursor {
		m.Settings.ForceSoftwareCursor = true
	}
	if opts.idleSleep > 0 {
		m.Settings.IdleSleep = wm.Duration(opts.idleSleep)
	}
	m.Settings.Apply()

	stereo := opts.stereo != ""
	w, err := m.NewWindow(&system.NewWindowOptions{
		Title:      "wm demo",
		Size:       image.Pt(opts.width, opts.height),
		Fullscreen: opts.fullscreen,
		Stereo:     stereo,
	})
	if err != nil {
		return err
	}
	if stereo {
		if err := w.Stereo.Display.UnmarshalText([]byte(opts.stereo)); err != nil {
			return err
		}
	}
	buildDemo(m, w)

	go func() {
		errors.Log(m.WatchSettings(ctx))
	}()
	slog.Info("wm: running", "platform", app.Name(), "settings", m.Settings.Filename())
	err = m.Run(ctx)
	m.Quit()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildDemo adds the areas and panes of the demo window.
func buildDemo(m *wm.Manager, w *wm.Window) {
	sc := w.Screen
	left := sc.AddArea(image.Rectangle{}, &wm.ImageSpace{})
	left.AddPane("image", wm.RegionWindow, wm.PaneFunc(drawChecker), image.Rectangle{})
	right := sc.AddArea(image.Rectangle{}, &wm.View3DSpace{HasCamera: true})
	right.AddPane("view", wm.RegionWindow, wm.PaneFunc(drawGradient), image.Rectangle{})
	tools := right.AddPane("tools", wm.RegionTools, wm.PaneFunc(drawPanel), image.Rectangle{})
	tools.Overlapping = true
	tools.Alignment = wm.AlignRight
	hud := sc.AddFloating("hud", wm.PaneFunc(drawHUD), image.Rect(16, 16, 176, 56))

	sc.Refresher = wm.RefresherFunc(func(w *wm.Window) {
		sz := w.Size()
		half := sz.X / 2
		left.Rect = image.Rect(0, 0, half, sz.Y)
		right.Rect = image.Rect(half, 0, sz.X, sz.Y)
		left.Panes[0].Rect = left.Rect
		right.Panes[0].Rect = right.Rect
		tools.Rect = image.Rect(max(half, sz.X-200), 0, sz.X, sz.Y)
	})
	sc.DoRefresh = true

	// the tool panel toggles every two seconds and the hud blinks with it
	visible := true
	m.AddNotifierTimer(w.ID, &wm.Notifier{Category: wm.NotifyWindow, WindowID: w.ID}, time.Second)
	w.AddDrawCallback(func(dc *wm.DrawContext) {
		sz := dc.Window.Size()
		dc.FillRect(image.Rect(0, sz.Y-4, sz.X*time.Now().Second()/59, sz.Y), color.RGBA{0x40, 0x80, 0xff, 0xff})
	})
	toggle := m.Timers.Add(w.ID, timer.Window, 2*time.Second)
	w.Handler = func(w *wm.Window, ev events.Event) {
		if ev.Type != events.Timer || ev.TimerID != toggle {
			return
		}
		visible = !visible
		w.SetPaneHidden(right, tools, !visible)
		hud.Visible = visible
		sc.DoDraw = true
	}
}

func drawChecker(dc *wm.DrawContext) {
	dc.Clear(color.RGBA{0x20, 0x20, 0x20, 0xff})
	const cell = 32
	sz := dc.Rect.Size()
	for y := 0; y < sz.Y; y += cell {
		for x := (y / cell % 2) * cell; x < sz.X; x += 2 * cell {
			dc.FillRect(image.Rect(x, y, x+cell, y+cell), color.RGBA{0x60, 0x60, 0x60, 0xff})
		}
	}
}

func drawGradient(dc *wm.DrawContext) {
	sz := dc.Rect.Size()
	for y := 0; y < sz.Y; y += 4 {
		v := uint8(0x30 + 0xa0*y/max(sz.Y, 1))
		c := color.RGBA{v / 3, v / 2, v, 0xff}
		if dc.View == 1 {
			c = color.RGBA{v, v / 2, v / 3, 0xff}
		}
		dc.FillRect(image.Rect(0, y, sz.X, y+4), c)
	}
}

func drawPanel(dc *wm.DrawContext) {
	dc.Clear(color.RGBA{0x28, 0x30, 0x38, 0xff})
	sz := dc.Rect.Size()
	for y := 12; y+20 < sz.Y; y += 32 {
		dc.FillRect(image.Rect(12, y, sz.X-12, y+20), color.RGBA{0x50, 0x5c, 0x68, 0xff})
	}
}

func drawHUD(dc *wm.DrawContext) {
	dc.Clear(color.RGBA{0, 0, 0, 0xa0})
}
