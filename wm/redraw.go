// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// NeedsRedraw returns whether the window has to be drawn again: when a
// visible pane or one of its gizmos requested a redraw, when a screen
// level redraw flag is set, or when the software cursor moved or has to
// be erased. It only reads the flags; they are cleared by
// [Manager.ClearRedrawFlags] once the window has been drawn, so a draw
// that does not happen never loses a request.
func (m *Manager) NeedsRedraw(w *Window) bool {
	if w.closed || !w.System.IsVisible() {
		return false
	}
	sc := w.Screen
	dirty := false
	sc.EachPane(func(a *Area, p *Pane) bool {
		if !p.Visible {
			return true
		}
		if p.isDirty() || p.NeedsPaintCursorRedraw || p.Gizmos.NeedsRedraw() {
			dirty = true
			return false
		}
		return true
	})
	if dirty {
		return true
	}
	if sc.DoRefresh || sc.DoDraw || sc.DoDrawGesture || sc.DoDrawPaintCursor || sc.DoDrawDrag {
		return true
	}
	if m.softwareCursorEnabled() {
		if m.softwareCursorNeeded(w) {
			if m.cursor.moved(w) {
				return true
			}
		} else if m.cursor.windowID == w.ID {
			// erase the cursor drawn last time
			return true
		}
	}
	return false
}

// ClearRedrawFlags clears the redraw flags of the window after it has
// been drawn: the redraw flags of its visible panes, the paint cursor
// and gizmo flags of all of its panes, and the screen level flags.
func (m *Manager) ClearRedrawFlags(w *Window) {
	sc := w.Screen
	sc.EachPane(func(a *Area, p *Pane) bool {
		if p.Visible {
			p.NeedsRedraw = false
			p.NeedsRedrawNoRebuild = false
		}
		p.NeedsPaintCursorRedraw = false
		p.Gizmos.ClearRedraw()
		return true
	})
	sc.DoRefresh = false
	sc.DoDraw = false
	sc.DoDrawGesture = false
	sc.DoDrawPaintCursor = false
	sc.DoDrawDrag = false
}
