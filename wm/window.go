// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"log/slog"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
)

// Window is one window of the [Manager], with its platform window,
// its [Screen] and its event queue.
type Window struct {

	// ID is the platform window id.
	ID int

	// System is the platform window.
	System system.Window

	// Manager is the manager of the window.
	Manager *Manager

	// Screen is the layout of the window.
	Screen *Screen

	// StereoEnabled turns stereo drawing on for the window.
	StereoEnabled bool

	// Stereo are the stereo display settings of the window.
	Stereo gpu.StereoSettings

	// Queue holds the events of the window until the main loop handles them.
	Queue events.Queue

	// Gestures are the gestures in progress, drawn over everything but
	// drags and the software cursor.
	Gestures []Gesture

	// EventPos is the last cursor position, in window pixels.
	EventPos image.Point

	// Handler is called for every event of the window after the
	// manager has handled it, if it is set.
	Handler func(w *Window, ev events.Event)

	stereoSurface gpu.Offscreen
	drawCallbacks []*DrawCallback
	closed        bool
}

// Gesture is an interactive gesture, such as a box selection or a lasso.
type Gesture interface {
	DrawGesture(dc *DrawContext)
}

// Drag is an item being dragged between windows.
type Drag interface {

	// DrawDrag draws the item at the given cursor position.
	DrawDrag(dc *DrawContext, pos image.Point)
}

// DrawCallback is a function that draws onto the window after the
// areas and their edges, but before the floating panes.
type DrawCallback struct {
	Draw func(dc *DrawContext)
}

// AddDrawCallback adds a new draw callback to the window.
func (w *Window) AddDrawCallback(fn func(dc *DrawContext)) *DrawCallback {
	cb := &DrawCallback{Draw: fn}
	w.drawCallbacks = append(w.drawCallbacks, cb)
	return cb
}

// RemoveDrawCallback removes the given draw callback.
func (w *Window) RemoveDrawCallback(cb *DrawCallback) {
	for i, c := range w.drawCallbacks {
		if c == cb {
			w.drawCallbacks = append(w.drawCallbacks[:i], w.drawCallbacks[i+1:]...)
			return
		}
	}
}

// AddGesture adds a gesture and tags it for drawing.
func (w *Window) AddGesture(g Gesture) {
	w.Gestures = append(w.Gestures, g)
	w.Screen.DoDrawGesture = true
}

// RemoveGesture removes a gesture and tags the window to erase it.
func (w *Window) RemoveGesture(g Gesture) {
	for i, wg := range w.Gestures {
		if wg == g {
			w.Gestures = append(w.Gestures[:i], w.Gestures[i+1:]...)
			w.Screen.DoDrawGesture = true
			return
		}
	}
}

// Size returns the size of the window in pixels.
func (w *Window) Size() image.Point {
	return w.System.Size()
}

// TextureFormat returns the pixel format of the draw buffers of the
// window: [gpu.RGBA16F] when both the graphics device and the display
// of the window have extended dynamic range, else [gpu.RGBA8].
func (w *Window) TextureFormat() gpu.TextureFormat {
	return gpu.FormatFor(w.Manager.App.HDRSupported() && w.System.HDREnabled())
}

// TagRedraw tags the whole window for redraw.
func (w *Window) TagRedraw() {
	w.Screen.DoDraw = true
	w.Screen.EachPane(func(a *Area, p *Pane) bool {
		p.TagRedraw()
		return true
	})
}

// IsStereo returns whether the window is drawn in stereo.
// Side by side and top bottom displays need a fullscreen window.
func (w *Window) IsStereo() bool {
	if !w.StereoEnabled {
		return false
	}
	if w.Stereo.Display.IsSplit() && !w.System.IsFullscreen() {
		return false
	}
	return true
}

// releaseBuffers releases every draw buffer of the window.
func (w *Window) releaseBuffers() {
	w.Screen.EachPane(func(a *Area, p *Pane) bool {
		p.ReleaseBuffer()
		return true
	})
	if w.stereoSurface != nil {
		w.stereoSurface.Release()
		w.stereoSurface = nil
	}
}

// NewWindow opens a new platform window and adds it to the manager,
// with an empty screen and the default stereo settings.
func (m *Manager) NewWindow(opts *system.NewWindowOptions) (*Window, error) {
	sw, err := m.App.NewWindow(opts)
	if err != nil {
		return nil, err
	}
	w := &Window{ID: sw.ID(), System: sw, Manager: m, Screen: &Screen{DoDraw: true}, Stereo: m.Settings.Stereo}
	if opts != nil && opts.Stereo {
		w.StereoEnabled = true
	}
	m.Timers.AddReferencer(&w.Queue)
	m.Windows = append(m.Windows, w)
	if m.Settings.Debug.EventTrace {
		slog.Debug("wm: window opened", "window", w.ID, "size", sw.Size())
	}
	return w, nil
}

// WindowByID returns the window with the given id, or nil.
func (m *Manager) WindowByID(id int) *Window {
	for _, w := range m.Windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// CloseWindow closes the window: its jobs are ended, its timers removed,
// its gestures and queued events dropped, and every draw buffer of the
// window released before the platform window is closed.
func (m *Manager) CloseWindow(w *Window) {
	if w.closed {
		return
	}
	w.closed = true
	m.endWindowJobs(w)
	m.Timers.RemoveWindow(w.ID)
	if !m.firing {
		m.Timers.Sweep()
	}
	w.Gestures = nil
	w.Queue.Clear()
	w.releaseBuffers()
	m.clearDrawable()
	if m.Active == w {
		m.Active = nil
	}
	m.Timers.RemoveReferencer(&w.Queue)
	for i, mw := range m.Windows {
		if mw == w {
			m.Windows = append(m.Windows[:i], m.Windows[i+1:]...)
			break
		}
	}
	if m.cursor.windowID == w.ID {
		m.cursor.clear()
	}
	w.System.Close()
	if m.Settings.Debug.EventTrace {
		slog.Debug("wm: window closed", "window", w.ID)
	}
}

// clearDrawable releases the graphics context of the drawable window, if any.
func (m *Manager) clearDrawable() {
	if m.drawable != nil {
		m.drawable.System.Release()
		m.drawable = nil
	}
}

// makeDrawable makes the graphics context of the window current,
// releasing the one of the previously drawable window.
func (m *Manager) makeDrawable(w *Window) {
	if m.drawable == w {
		return
	}
	m.clearDrawable()
	m.drawable = w
	w.System.Activate()
	if m.Settings.Debug.RenderTrace {
		slog.Debug("wm: set drawable", "window", w.ID)
	}
}

// RemovePane removes the pane from its area, or from the floating
// panes when a is nil, ending its fade if it has one.
func (w *Window) RemovePane(a *Area, p *Pane) {
	if p.blend != nil {
		w.Manager.endRegionBlend(w, p, true)
	}
	if w.Screen.ActivePane == p {
		w.Screen.ActivePane = nil
	}
	if a == nil {
		w.Screen.RemoveFloating(p)
		return
	}
	a.RemovePane(p)
	w.Screen.DoDraw = true
}

// AddDrag starts dragging the item.
func (m *Manager) AddDrag(d Drag) {
	m.Drags = append(m.Drags, d)
	m.tagDrags()
}

// RemoveDrag stops dragging the item.
func (m *Manager) RemoveDrag(d Drag) {
	for i, e := range m.Drags {
		if e == d {
			m.Drags = append(m.Drags[:i], m.Drags[i+1:]...)
			m.tagDrags()
			return
		}
	}
}

func (m *Manager) tagDrags() {
	for _, w := range m.Windows {
		w.Screen.DoDrawDrag = true
	}
}
