// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"image/draw"

	"cogentcore.org/wm/system"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the [system.Window] for the desktop platform.
type Window struct {
	app        *App
	id         int
	glw        *glfw.Window
	back       *image.RGBA
	front      *image.RGBA
	scale      float32
	fullscreen bool
	iconified  bool
	closed     bool
}

var _ system.Window = (*Window)(nil)

// resize reallocates the back buffer to the framebuffer size.
func (w *Window) resize() {
	fw, fh := w.glw.GetFramebufferSize()
	ww, _ := w.glw.GetSize()
	w.scale = 1
	if ww > 0 {
		w.scale = float32(fw) / float32(ww)
	}
	if w.back == nil || w.back.Rect.Dx() != fw || w.back.Rect.Dy() != fh {
		w.back = image.NewRGBA(image.Rect(0, 0, fw, fh))
	}
}

func (w *Window) ID() int { return w.id }

func (w *Window) Size() image.Point { return w.back.Rect.Size() }

func (w *Window) PixelScale() float32 { return w.scale }

func (w *Window) IsVisible() bool {
	return !w.closed && !w.iconified && w.glw.GetAttrib(glfw.Visible) == glfw.True
}

func (w *Window) IsFullscreen() bool { return w.fullscreen }

func (w *Window) HDREnabled() bool { return false }

func (w *Window) Activate() {
	if !w.closed {
		w.glw.MakeContextCurrent()
	}
}

func (w *Window) Release() {
	glfw.DetachCurrentContext()
}

// Surface returns the back buffer. Hardware stereo is not
// available, so both eyes share it.
func (w *Window) Surface(b system.Buffer) draw.Image {
	return w.back
}

func (w *Window) FrontBuffer() (*image.RGBA, error) {
	if w.front == nil {
		return nil, system.ErrNoFrontBuffer
	}
	out := image.NewRGBA(w.front.Rect)
	copy(out.Pix, w.front.Pix)
	return out, nil
}

// SwapBuffers uploads the back buffer to the GL back buffer
// and presents it. Go images are y-down, so rows are flipped.
func (w *Window) SwapBuffers() {
	if w.closed {
		return
	}
	b := w.back
	sz := b.Rect.Size()
	gl.Viewport(0, 0, int32(sz.X), int32(sz.Y))
	gl.WindowPos2i(0, int32(sz.Y))
	gl.PixelZoom(1, -1)
	gl.DrawPixels(int32(sz.X), int32(sz.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(b.Pix))
	w.glw.SwapBuffers()
	if w.front == nil || w.front.Rect != b.Rect {
		w.front = image.NewRGBA(b.Rect)
	}
	copy(w.front.Pix, b.Pix)
}

func (w *Window) CursorVisible() bool {
	return w.glw.GetInputMode(glfw.CursorMode) == glfw.CursorNormal
}

func (w *Window) Grab() system.GrabState {
	switch w.glw.GetInputMode(glfw.CursorMode) {
	case glfw.CursorDisabled:
		return system.GrabState{Mode: system.GrabWrap, Axis: system.AxisBoth, Bounds: w.back.Rect}
	case glfw.CursorHidden:
		return system.GrabState{Mode: system.GrabHide}
	}
	return system.GrabState{}
}

// CursorBitmap is not available from GLFW.
func (w *Window) CursorBitmap() (*system.CursorBitmap, bool) {
	return nil, false
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.app.RemoveWindow(w)
	w.glw.Destroy()
}
