// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"slices"

	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
)

// DrawUpdate draws every window that needs it, as reported by
// [Manager.NeedsRedraw], and presents it.
func (m *Manager) DrawUpdate() {
	for _, w := range slices.Clone(m.Windows) {
		if w.closed || !m.NeedsRedraw(w) {
			continue
		}
		if m.Settings.Debug.RenderTrace {
			slog.Debug("wm: draw window", "window", w.ID)
		}
		m.makeDrawable(w)
		m.stage(w, StageLayoutRefresh)
		m.refreshScreen(w)
		m.drawWindow(w)
		m.ClearRedrawFlags(w)
		w.System.SwapBuffers()
	}
}

// stage marks the start of a draw stage.
func (m *Manager) stage(w *Window, s Stage) {
	if m.Settings.Debug.RenderTrace {
		slog.Debug("wm: draw stage", "window", w.ID, "stage", s)
	}
	if m.StageHook != nil {
		m.StageHook(w, s)
	}
}

// refreshScreen recomputes the screen layout if it was requested.
// Panes whose size changed are tagged for redraw.
func (m *Manager) refreshScreen(w *Window) {
	sc := w.Screen
	if !sc.DoRefresh {
		return
	}
	if sc.Refresher != nil {
		sizes := map[*Pane]image.Point{}
		sc.EachPane(func(a *Area, p *Pane) bool {
			sizes[p] = p.Size()
			return true
		})
		sc.Refresher.Refresh(w)
		sc.EachPane(func(a *Area, p *Pane) bool {
			if sz, ok := sizes[p]; !ok || sz != p.Size() {
				p.TagRedraw()
			}
			return true
		})
	}
	sc.DoRefresh = false
}

// drawWindow draws the dirty panes of the window into their buffers
// and composites everything onto the window surface, once per eye
// for the stereo displays that need it.
func (m *Manager) drawWindow(w *Window) {
	stereo := w.IsStereo()
	m.stage(w, StagePaneOffscreenDraw)
	m.drawOffscreen(w, stereo)

	m.Backend.BindSurface(w.System.Surface(system.BackLeft))
	if !stereo {
		m.drawOnscreen(w, -1)
		m.stage(w, StageDone)
		return
	}
	switch display := m.stereoDisplay(w); display {
	case gpu.PageFlip:
		m.Backend.BindSurface(w.System.Surface(system.BackRight))
		m.drawOnscreen(w, 1)
		m.Backend.BindSurface(w.System.Surface(system.BackLeft))
		m.drawOnscreen(w, 0)
	case gpu.Anaglyph, gpu.Interlace:
		m.drawOnscreen(w, -1)
	default:
		m.drawStereoSplit(w, display)
	}
	m.stage(w, StageDone)
}

// drawOffscreen draws every visible dirty pane into its draw buffer,
// after computing the layout of the panes that have one, and then
// draws every visible floating pane.
func (m *Manager) drawOffscreen(w *Window, stereo bool) {
	sc := w.Screen
	for _, a := range sc.Areas {
		for _, p := range a.Panes {
			// a dynamically sized pane that is too small is not visible,
			// but its layout still runs so that it can grow again
			measure := p.DynamicSize && p.TooSmall && !p.Hidden
			if (p.Visible || measure) && p.isDirty() {
				if l, ok := p.Type.(Layouter); ok {
					l.Layout(w, a, p)
				}
			}
		}
		for _, p := range a.Panes {
			if !p.Visible || !p.isDirty() {
				continue
			}
			m.drawPane(w, a, p, stereo)
		}
	}
	for _, p := range sc.Floating {
		if !p.Visible {
			continue
		}
		if l, ok := p.Type.(Layouter); ok {
			l.Layout(w, nil, p)
		}
		db := w.EnsureDrawBuffer(p, p.Size(), false, false)
		if db == nil {
			continue
		}
		db.Bind(0, p.Rect)
		m.Backend.Clear(color.Transparent)
		m.drawPaneContents(w, nil, p, 0)
		db.Unbind()
	}
}

// drawPane draws one pane into its draw buffer, both eyes when the
// window and the pane are stereo.
func (m *Manager) drawPane(w *Window, a *Area, p *Pane, stereo bool) {
	useViewport := usesViewport(a, p)
	if stereo && setStereoEye(a, p, EyeLeft) {
		db := w.EnsureDrawBuffer(p, p.Size(), true, useViewport)
		if db == nil {
			return
		}
		for view := 0; view < 2; view++ {
			if view == 1 {
				setStereoEye(a, p, EyeRight)
			}
			db.Bind(view, p.Rect)
			m.drawPaneContents(w, a, p, view)
			db.Unbind()
		}
		if db.Viewport != nil {
			db.Viewport.StereoComposite(m.stereoSettings(w))
		}
		return
	}
	db := w.EnsureDrawBuffer(p, p.Size(), false, useViewport)
	if db == nil {
		return
	}
	db.Bind(0, p.Rect)
	m.drawPaneContents(w, a, p, 0)
	db.Unbind()
}

// drawPaneContents calls the pane type to draw into the bound buffer.
func (m *Manager) drawPaneContents(w *Window, a *Area, p *Pane, view int) {
	if p.Type == nil {
		return
	}
	p.Type.Draw(&DrawContext{
		Drawer:  m.Backend,
		Manager: m,
		Window:  w,
		Area:    a,
		Pane:    p,
		View:    view,
		Rect:    image.Rectangle{Max: p.Size()},
		Rebuild: p.NeedsRedraw || !p.NeedsRedrawNoRebuild,
	})
}

// drawOnscreen composites the window onto the bound surface for the
// given view, -1 for mono.
func (m *Manager) drawOnscreen(w *Window, view int) {
	sc := w.Screen
	m.Backend.DisableScissor()
	winRect := image.Rectangle{Max: w.Size()}
	dc := func(a *Area, p *Pane, r image.Rectangle) *DrawContext {
		return &DrawContext{Drawer: m.Backend, Manager: m, Window: w, Area: a, Pane: p, View: view, Rect: r, Rebuild: true}
	}

	m.stage(w, StageOnscreenBlit)
	for _, a := range sc.Areas {
		for _, p := range a.Panes {
			if p.Visible && !p.Overlapping && p.DrawBuffer != nil {
				p.DrawBuffer.Blit(view, p.Rect)
			}
		}
	}

	m.stage(w, StageOnscreenOverlay)
	for _, a := range sc.Areas {
		for _, p := range a.Panes {
			if !p.Visible {
				continue
			}
			if od, ok := p.Type.(OverlayDrawer); ok {
				m.Backend.SetScissor(p.Rect)
				od.DrawOverlay(dc(a, p, p.Rect))
				m.Backend.DisableScissor()
			}
			if len(m.paintCursors) > 0 && p == sc.ActivePane {
				m.drawPaintCursors(dc(a, p, p.Rect))
			}
		}
	}

	m.stage(w, StageOnscreenBlend)
	for _, a := range sc.Areas {
		for _, p := range a.Panes {
			if p.Visible && p.Overlapping {
				m.blendPane(p, 0, true)
			}
		}
	}

	m.stage(w, StageEdgeDecoration)
	m.drawEdges(w)

	m.stage(w, StageCallbackDraw)
	for _, cb := range slices.Clone(w.drawCallbacks) {
		cb.Draw(dc(nil, nil, winRect))
	}

	m.stage(w, StageFloatingPaneBlend)
	for _, p := range sc.Floating {
		if p.Visible {
			m.blendPane(p, 0, true)
		}
	}

	m.stage(w, StageGestureOverlay)
	for _, g := range w.Gestures {
		g.DrawGesture(dc(nil, nil, winRect))
	}

	m.stage(w, StageDragOverlay)
	if len(m.Drags) > 0 && (m.Active == nil || m.Active == w) {
		pos := m.cursorPosition(w)
		for _, d := range m.Drags {
			d.DrawDrag(dc(nil, nil, winRect), pos)
		}
	}

	m.stage(w, StageSoftwareCursor)
	m.drawSoftwareCursor(w)
}

// blendPane blends the buffer of an overlapping or floating pane over
// the bound surface with its fade alpha. Panes aligned to the left or
// right of their area slide in and out instead of fading. Without blend
// the pane is drawn opaque. Buffers always hold premultiplied colors.
func (m *Manager) blendPane(p *Pane, view int, blend bool) {
	db := p.DrawBuffer
	if db == nil {
		return
	}
	alpha := p.FadeAlpha()
	if alpha <= 0 {
		return
	}
	if !blend {
		alpha = 1
	}
	tex := db.ColorTexture(view)
	if tex == nil {
		return
	}
	sz := tex.Size()
	dst := image.Rectangle{Min: p.Rect.Min, Max: p.Rect.Min.Add(sz)}
	src := image.Rectangle{Max: sz}
	easing := 1 - (1-alpha)*(1-alpha)
	ofs := int(float32(sz.X) * (1 - easing))
	switch p.Alignment {
	case AlignRight:
		dst.Min.X += ofs
		src.Max.X -= ofs
		alpha = 1
	case AlignLeft:
		dst.Max.X -= ofs
		src.Min.X += ofs
		alpha = 1
	}
	m.Backend.DrawTexture(tex, dst, src, gpu.DrawOptions{Op: draw.Over, Alpha: alpha, Premultiplied: true})
}

// drawEdges draws the borders of the areas.
func (m *Manager) drawEdges(w *Window) {
	c := m.Settings.EdgeColorValue()
	t := max(1, int(w.System.PixelScale()))
	for _, a := range w.Screen.Areas {
		r := a.Rect
		if r.Empty() {
			continue
		}
		m.Backend.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
		m.Backend.FillRect(image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
		m.Backend.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
		m.Backend.FillRect(image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
	}
}
