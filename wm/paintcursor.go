// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"slices"
)

// PaintCursor is a cursor drawn by a tool over the active pane, such
// as the brush outline of a paint tool.
type PaintCursor interface {

	// Poll returns whether the cursor is shown over the pane.
	Poll(w *Window, a *Area, p *Pane) bool

	// DrawCursor draws the cursor at the given window position.
	DrawCursor(dc *DrawContext, pos image.Point)
}

type paintCursor struct {
	space  SpaceKind
	region RegionKind
	cursor PaintCursor
}

// AddPaintCursor adds a paint cursor that is drawn over panes of the
// given region kind in areas of the given space kind; [SpaceAny] and
// [RegionAny] match every kind.
func (m *Manager) AddPaintCursor(space SpaceKind, region RegionKind, pc PaintCursor) {
	m.paintCursors = append(m.paintCursors, &paintCursor{space: space, region: region, cursor: pc})
	for _, w := range m.Windows {
		w.Screen.DoDrawPaintCursor = true
	}
}

// RemovePaintCursor removes the given paint cursor.
// It returns false if it was not added.
func (m *Manager) RemovePaintCursor(pc PaintCursor) bool {
	for i, e := range m.paintCursors {
		if e.cursor == pc {
			m.paintCursors = slices.Delete(m.paintCursors, i, i+1)
			for _, w := range m.Windows {
				w.Screen.DoDrawPaintCursor = true
			}
			return true
		}
	}
	return false
}

// drawPaintCursors draws the paint cursors that match the pane of dc,
// restricted to the pane. Nothing is drawn while the interface is locked.
func (m *Manager) drawPaintCursors(dc *DrawContext) {
	if m.InterfaceLocked {
		return
	}
	w, a, p := dc.Window, dc.Area, dc.Pane
	if !p.Visible || p != w.Screen.ActivePane {
		return
	}
	pos := m.cursorPosition(w)
	for _, e := range slices.Clone(m.paintCursors) {
		if !a.SpaceKind().Matches(e.space) || !p.Kind.Matches(e.region) {
			continue
		}
		if !e.cursor.Poll(w, a, p) {
			continue
		}
		m.Backend.SetScissor(p.Rect)
		e.cursor.DrawCursor(dc, pos)
		m.Backend.DisableScissor()
	}
}

// paneAt returns the topmost visible pane of the window at the given
// position, and its area, which is nil for floating panes.
func paneAt(sc *Screen, pos image.Point) (*Area, *Pane) {
	for i := len(sc.Floating) - 1; i >= 0; i-- {
		if p := sc.Floating[i]; p.Visible && pos.In(p.Rect) {
			return nil, p
		}
	}
	for _, overlap := range []bool{true, false} {
		for _, a := range sc.Areas {
			for i := len(a.Panes) - 1; i >= 0; i-- {
				p := a.Panes[i]
				if p.Visible && p.Overlapping == overlap && pos.In(p.Rect) {
					return a, p
				}
			}
		}
	}
	return nil, nil
}

// tagPaintCursors updates the active pane of the window for the cursor
// position, and tags the panes whose paint cursors need to be drawn
// again after the cursor moved. Dragged items follow the cursor, so
// they are tagged too.
func (m *Manager) tagPaintCursors(w *Window) {
	sc := w.Screen
	if len(m.Drags) > 0 {
		sc.DoDrawDrag = true
	}
	a, p := paneAt(sc, w.EventPos)
	if p != sc.ActivePane {
		if sc.ActivePane != nil && len(m.paintCursors) > 0 {
			sc.ActivePane.TagPaintCursorRedraw()
		}
		sc.ActivePane = p
	}
	if p == nil || len(m.paintCursors) == 0 || m.InterfaceLocked {
		return
	}
	for _, e := range m.paintCursors {
		if a.SpaceKind().Matches(e.space) && p.Kind.Matches(e.region) && e.cursor.Poll(w, a, p) {
			p.TagPaintCursorRedraw()
			return
		}
	}
}
