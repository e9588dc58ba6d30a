// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements a headless [system.App] with a manual
// clock, for tests and event simulation. Windows draw into in-memory
// back buffers, and events are scripted with [App.Send] and the
// [Window] helpers.
package offscreen

import (
	"image"
	"time"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/base"
)

// App is the [system.App] for the offscreen platform.
type App struct {
	base.AppMulti[*Window]

	// Caps are the reported platform capabilities.
	Caps system.Capabilities

	// HDR is whether the graphics device supports extended dynamic range.
	HDR bool

	// Clock is the current time. It only moves with [App.Sleep] and [App.Advance].
	Clock time.Time

	// Slept records the duration of every [App.Sleep] call.
	Slept []time.Duration
}

var _ system.App = (*App)(nil)

// NewApp returns a new offscreen app whose clock starts at a fixed time,
// with cursor warping and front buffer reading available.
func NewApp() *App {
	return &App{
		Caps:  system.CursorWarp | system.WindowPosition | system.GPUReadFrontBuffer,
		Clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (a *App) Name() string { return "offscreen" }

func (a *App) Capabilities() system.Capabilities { return a.Caps }

func (a *App) HDRSupported() bool { return a.HDR }

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()
	w := &Window{
		app:         a,
		id:          a.NextWindowID(),
		title:       opts.Title,
		scale:       1,
		stereo:      opts.Stereo && a.Caps.Has(system.HardwareStereo),
		Visible:     true,
		Fullscreen:  opts.Fullscreen,
		CursorShown: true,
	}
	w.resize(opts.Size)
	a.AddWindow(w)
	return w, nil
}

func (a *App) ProcessEvents(wait bool) bool {
	return a.HasPending()
}

func (a *App) Now() time.Time { return a.Clock }

// Sleep records the duration and advances the clock by it.
func (a *App) Sleep(d time.Duration) {
	a.Slept = append(a.Slept, d)
	a.Clock = a.Clock.Add(d)
}

// Advance moves the clock forward by the given duration.
func (a *App) Advance(d time.Duration) time.Time {
	a.Clock = a.Clock.Add(d)
	return a.Clock
}

func (a *App) Quit() {
	for _, w := range append([]*Window{}, a.Windows...) {
		w.Close()
	}
}

// MoveCursor sends a [events.MouseMove] event for the given window.
func (a *App) MoveCursor(w *Window, pos image.Point) {
	a.Send(events.Event{Type: events.MouseMove, WindowID: w.id, Pos: pos, Time: a.Clock})
}
