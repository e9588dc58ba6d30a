// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"image/draw"

	"cogentcore.org/wm/base/errors"
)

// ErrNoFrontBuffer is returned by [Window.FrontBuffer] when the
// platform cannot read back the front buffer.
var ErrNoFrontBuffer = errors.New("system: front buffer cannot be read")

// Buffer selects a back buffer of a window.
type Buffer int32

const (
	// BackLeft is the back buffer, or the left eye back buffer of a stereo window.
	BackLeft Buffer = iota

	// BackRight is the right eye back buffer of a stereo window.
	BackRight
)

// GrabMode is the cursor confinement mode of a window.
type GrabMode int32

const (
	// GrabFree means the cursor is not grabbed.
	GrabFree GrabMode = iota

	// GrabHide means the cursor is hidden and kept inside the window.
	GrabHide

	// GrabWrap means the cursor wraps around the grab bounds.
	GrabWrap
)

// Axis is a bit mask of the axes a wrapped grab applies to.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisNone Axis = 0
	AxisBoth      = AxisX | AxisY
)

// GrabState is the current cursor grab of a window.
type GrabState struct {

	// Mode is the grab mode.
	Mode GrabMode

	// Axis are the axes the cursor wraps on for [GrabWrap].
	Axis Axis

	// Bounds are the wrap bounds in window pixels for [GrabWrap].
	Bounds image.Rectangle
}

// IsActive returns whether the cursor is hidden or wrapped.
func (g GrabState) IsActive() bool {
	return g.Mode == GrabHide || g.Mode == GrabWrap
}

// CursorBitmap is the image of the current cursor.
type CursorBitmap struct {

	// Image is the cursor image in cursor pixels.
	Image image.Image

	// Hotspot is the point of the image at the cursor position.
	Hotspot image.Point
}

// Window is a platform window with a graphics surface.
type Window interface {

	// ID returns the unique identifier of the window, which is never 0.
	ID() int

	// Size returns the size of the window surface in pixels.
	Size() image.Point

	// PixelScale returns the number of pixels per logical unit.
	PixelScale() float32

	// IsVisible returns whether the window is shown and not minimized.
	IsVisible() bool

	// IsFullscreen returns whether the window is fullscreen.
	IsFullscreen() bool

	// HDREnabled returns whether the window is on a display with
	// extended dynamic range enabled.
	HDREnabled() bool

	// Activate makes the graphics context of the window current.
	Activate()

	// Release releases the graphics context of the window.
	Release()

	// Surface returns the given back buffer. Windows without hardware
	// stereo return the [BackLeft] buffer for [BackRight].
	Surface(b Buffer) draw.Image

	// FrontBuffer returns a copy of the last presented frame, or
	// [ErrNoFrontBuffer].
	FrontBuffer() (*image.RGBA, error)

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// CursorVisible returns whether the native cursor is visible.
	CursorVisible() bool

	// Grab returns the current cursor grab state.
	Grab() GrabState

	// CursorBitmap returns the image of the current cursor, if the
	// platform can provide one.
	CursorBitmap() (*CursorBitmap, bool)

	// Close closes the window.
	Close()
}
