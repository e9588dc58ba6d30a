// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the operating system interface used by the
// window manager: the platform event source, the clock, windows with
// their drawing surfaces, and the capabilities of the platform.
package system

import (
	"image"
	"time"

	"cogentcore.org/wm/events"
)

// App represents the platform: it creates windows, delivers their
// events and reports what the platform is capable of.
// It is only used from the main thread.
type App interface {

	// Name is the name of the platform driver.
	Name() string

	// Capabilities returns the capability flags of the platform.
	// They do not change while the app is running.
	Capabilities() Capabilities

	// HDRSupported returns whether the graphics device supports
	// extended dynamic range output.
	HDRSupported() bool

	// NewWindow returns a new window with the given options.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// ProcessEvents collects pending platform events, waiting for
	// one if wait is true. It returns whether any event is pending.
	ProcessEvents(wait bool) bool

	// DispatchEvents passes every pending event to fn in order.
	DispatchEvents(fn func(ev events.Event))

	// Now returns the current time of the platform clock.
	Now() time.Time

	// Sleep blocks for the given duration.
	Sleep(d time.Duration)

	// Quit releases all platform resources.
	Quit()
}

// NewWindowOptions are the options used to create a new [Window].
type NewWindowOptions struct {

	// Title is the title of the window.
	Title string

	// Size is the initial size of the window in pixels.
	Size image.Point

	// Fullscreen opens the window in fullscreen mode.
	Fullscreen bool

	// Stereo requests separate left and right back buffers.
	Stereo bool
}

// Fixup sets default values for unset options.
func (o *NewWindowOptions) Fixup() {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		o.Size = image.Pt(1280, 720)
	}
	if o.Title == "" {
		o.Title = "wm"
	}
}
