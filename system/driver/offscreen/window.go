// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"image/draw"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/system"
)

// Window is the [system.Window] for the offscreen platform.
// Its exported fields can be set to simulate platform state.
type Window struct {
	app    *App
	id     int
	title  string
	size   image.Point
	scale  float32
	stereo bool
	back   [2]*image.RGBA
	front  *image.RGBA
	closed bool

	// Visible is whether the window is shown.
	Visible bool

	// Fullscreen is whether the window is fullscreen.
	Fullscreen bool

	// HDR is whether the display of the window has extended dynamic range enabled.
	HDR bool

	// CursorShown is whether the native cursor is visible.
	CursorShown bool

	// GrabState is the reported cursor grab.
	GrabState system.GrabState

	// Bitmap is the reported cursor bitmap, if any.
	Bitmap *system.CursorBitmap

	// Active is whether the graphics context is current.
	Active bool

	// Swaps counts the calls to SwapBuffers.
	Swaps int
}

var _ system.Window = (*Window)(nil)

func (w *Window) resize(sz image.Point) {
	w.size = sz
	r := image.Rectangle{Max: sz}
	w.back[0] = image.NewRGBA(r)
	if w.stereo {
		w.back[1] = image.NewRGBA(r)
	}
}

// Resize changes the window size and sends a [events.WindowResize] event.
func (w *Window) Resize(sz image.Point) {
	w.resize(sz)
	w.app.Send(events.Event{Type: events.WindowResize, WindowID: w.id, Size: sz, Time: w.app.Clock})
}

// SetPixelScale sets the pixel scale.
func (w *Window) SetPixelScale(s float32) {
	w.scale = s
}

func (w *Window) ID() int { return w.id }
func (w *Window) Title() string { return w.title }
func (w *Window) Size() image.Point { return w.size }
func (w *Window) PixelScale() float32 { return w.scale }
func (w *Window) IsVisible() bool { return w.Visible && !w.closed }
func (w *Window) IsFullscreen() bool { return w.Fullscreen }
func (w *Window) HDREnabled() bool { return w.HDR }
func (w *Window) CursorVisible() bool { return w.CursorShown }
func (w *Window) Grab() system.GrabState { return w.GrabState }

func (w *Window) Activate() { w.Active = true }
func (w *Window) Release() { w.Active = false }

func (w *Window) Surface(b system.Buffer) draw.Image {
	if b == system.BackRight && w.back[1] != nil {
		return w.back[1]
	}
	return w.back[0]
}

func (w *Window) FrontBuffer() (*image.RGBA, error) {
	if !w.app.Caps.Has(system.GPUReadFrontBuffer) || w.front == nil {
		return nil, system.ErrNoFrontBuffer
	}
	out := image.NewRGBA(w.front.Rect)
	copy(out.Pix, w.front.Pix)
	return out, nil
}

// Front returns the last presented frame, or nil.
func (w *Window) Front() *image.RGBA {
	return w.front
}

func (w *Window) SwapBuffers() {
	w.Swaps++
	b := w.back[0]
	if w.front == nil || w.front.Rect != b.Rect {
		w.front = image.NewRGBA(b.Rect)
	}
	copy(w.front.Pix, b.Pix)
}

func (w *Window) CursorBitmap() (*system.CursorBitmap, bool) {
	return w.Bitmap, w.Bitmap != nil
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.app.RemoveWindow(w)
}
