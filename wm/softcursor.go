// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"cogentcore.org/wm/base/errors"
	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
)

// softwareCursor is the state of the cursor that the manager draws
// itself when the platform cannot warp the native one. It records the
// window and position it was last drawn at; windowID 0 means it is
// not shown anywhere.
type softwareCursor struct {
	probed   bool
	enabled  bool
	windowID int
	pos      image.Point
}

// moved returns whether the cursor has to be drawn again for the window.
func (c *softwareCursor) moved(w *Window) bool {
	return c.windowID != w.ID || c.pos != w.EventPos
}

func (c *softwareCursor) set(w *Window) {
	c.windowID = w.ID
	c.pos = w.EventPos
}

func (c *softwareCursor) clear() {
	c.windowID = 0
	c.pos = image.Point{}
}

// softwareCursorEnabled returns whether the software cursor is used at
// all. It is probed once from the platform capabilities.
func (m *Manager) softwareCursorEnabled() bool {
	if !m.cursor.probed {
		m.cursor.enabled = !m.Capabilities().Has(system.CursorWarp) || m.Settings.ForceSoftwareCursor
		m.cursor.probed = true
		if m.cursor.enabled {
			slog.Debug("wm: using software cursor")
		}
	}
	return m.cursor.enabled
}

// softwareCursorNeeded returns whether the window shows the software
// cursor: the native cursor is hidden while it is grabbed.
func (m *Manager) softwareCursorNeeded(w *Window) bool {
	if w.System.CursorVisible() {
		return false
	}
	return w.System.Grab().IsActive()
}

// wrapPosition folds the position into the wrap bounds of the grab on
// each wrapping axis.
func wrapPosition(pos image.Point, g system.GrabState) image.Point {
	if g.Mode != system.GrabWrap {
		return pos
	}
	b := g.Bounds
	if g.Axis&system.AxisX != 0 && b.Max.X != b.Min.X {
		pos.X = mod(pos.X-b.Min.X, b.Max.X-b.Min.X) + b.Min.X
	}
	if g.Axis&system.AxisY != 0 && b.Max.Y != b.Min.Y {
		pos.Y = mod(pos.Y-b.Min.Y, b.Max.Y-b.Min.Y) + b.Min.Y
	}
	return pos
}

// mod is the modulo of a by b with the sign of b.
func mod(a, b int) int {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// cursorPosition returns the position of the cursor in the window,
// folded through the wrap bounds while the cursor is grabbed.
func (m *Manager) cursorPosition(w *Window) image.Point {
	g := w.System.Grab()
	if g.IsActive() {
		return wrapPosition(w.EventPos, g)
	}
	return w.EventPos
}

// drawSoftwareCursor draws the software cursor of the window if it
// needs one, and updates the record of where it was drawn.
func (m *Manager) drawSoftwareCursor(w *Window) {
	if !m.softwareCursorEnabled() {
		return
	}
	if !m.softwareCursorNeeded(w) {
		if m.cursor.windowID == w.ID {
			m.cursor.clear()
		}
		return
	}
	pos := wrapPosition(w.EventPos, w.System.Grab())
	bm, ok := w.System.CursorBitmap()
	if !ok || bm == nil || bm.Image == nil || !m.drawCursorBitmap(w, pos, bm) {
		m.drawCrosshair(pos)
	}
	m.cursor.set(w)
}

// cursorScale returns the integer scale of cursor bitmaps.
func (m *Manager) cursorScale(w *Window) int {
	s := m.Settings.PixelSize
	if s <= 0 {
		s = w.System.PixelScale()
	}
	return max(1, int(s))
}

// drawCursorBitmap draws the cursor bitmap with its hotspot at pos.
// It returns false if the bitmap could not be uploaded.
func (m *Manager) drawCursorBitmap(w *Window, pos image.Point, bm *system.CursorBitmap) bool {
	tex, err := m.Backend.NewTexture(bm.Image)
	if errors.Log(err) != nil {
		return false
	}
	defer tex.Release()
	scale := m.cursorScale(w)
	sz := tex.Size()
	tl := pos.Sub(bm.Hotspot.Mul(scale))
	dst := image.Rectangle{Min: tl, Max: tl.Add(sz.Mul(scale))}
	m.Backend.DrawTexture(tex, dst, image.Rectangle{Max: sz}, gpu.DrawOptions{Op: draw.Over, Alpha: 1, Premultiplied: true, Filter: gpu.Nearest})
	return true
}

// drawCrosshair draws a white cross with a black core at pos, sized
// from the preferred cursor size.
func (m *Manager) drawCrosshair(pos image.Point) {
	unit := max(float32(m.Settings.CursorSize)/DefaultCursorSize, 1)
	cross := func(line, size int, c color.Color) {
		m.Backend.FillRect(image.Rect(pos.X-line, pos.Y-size, pos.X+line, pos.Y+size), c)
		m.Backend.FillRect(image.Rect(pos.X-size, pos.Y-line, pos.X+size, pos.Y+line), c)
	}
	cross(int(8*unit), int(2*unit), color.White)
	cross(int(7*unit), int(1*unit), color.Black)
}
