// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"time"

	"cogentcore.org/wm/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) setCallbacks() {
	w.glw.SetPosCallback(w.moved)
	w.glw.SetFramebufferSizeCallback(w.fbResized)
	w.glw.SetCloseCallback(w.closeReq)
	w.glw.SetRefreshCallback(w.refresh)
	w.glw.SetFocusCallback(w.focus)
	w.glw.SetIconifyCallback(w.iconify)
	w.glw.SetCursorPosCallback(w.CursorPosEvent)
}

func (w *Window) send(typ events.Types) {
	w.app.Send(events.Event{Type: typ, WindowID: w.id, Time: time.Now()})
}

func (w *Window) moved(gw *glfw.Window, x, y int) {
	w.send(events.WindowMove)
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.resize()
	w.app.Send(events.Event{Type: events.WindowResize, WindowID: w.id, Size: image.Pt(width, height), Time: time.Now()})
}

func (w *Window) closeReq(gw *glfw.Window) {
	w.send(events.WindowClose)
}

func (w *Window) refresh(gw *glfw.Window) {
	w.send(events.WindowExpose)
}

func (w *Window) focus(gw *glfw.Window, focused bool) {
	if focused {
		w.send(events.WindowActivate)
	} else {
		w.send(events.WindowDeactivate)
	}
}

func (w *Window) iconify(gw *glfw.Window, iconified bool) {
	w.iconified = iconified
	if !iconified {
		w.send(events.WindowExpose)
	}
}

// MousePosToPoint converts window coordinates to pixels.
func (w *Window) MousePosToPoint(x, y float64) image.Point {
	return image.Pt(int(float64(w.scale)*x), int(float64(w.scale)*y))
}

func (w *Window) CursorPosEvent(gw *glfw.Window, x, y float64) {
	w.app.Send(events.Event{Type: events.MouseMove, WindowID: w.id, Pos: w.MousePosToPoint(x, y), Time: time.Now()})
}
