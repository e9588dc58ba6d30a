// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/draw"
	"log/slog"

	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
)

// stereoDisplay returns the stereo display used for the window.
// Page flipping needs hardware stereo; without it, anaglyph is used.
func (m *Manager) stereoDisplay(w *Window) gpu.StereoDisplay {
	d := w.Stereo.Display
	if d == gpu.PageFlip && !m.Capabilities().Has(system.HardwareStereo) {
		if !m.stereoFallbackLogged {
			m.stereoFallbackLogged = true
			slog.Warn("wm: page flip stereo is not supported, using anaglyph", "platform", m.App.Name())
		}
		return gpu.Anaglyph
	}
	return d
}

// stereoSettings returns the stereo settings of the window with the
// display that is actually used.
func (m *Manager) stereoSettings(w *Window) gpu.StereoSettings {
	s := w.Stereo
	s.Display = m.stereoDisplay(w)
	return s
}

// drawStereoSplit draws each eye of the window into a whole window
// surface and then draws that into its half of the window. If the
// surface cannot be allocated, the left eye is drawn alone.
func (m *Manager) drawStereoSplit(w *Window, display gpu.StereoDisplay) {
	sz := w.Size()
	off := m.ensureStereoSurface(w, sz)
	if off == nil {
		m.drawOnscreen(w, 0)
		return
	}
	tex := off.ColorTexture()
	for view := 0; view < 2; view++ {
		off.Bind()
		m.drawOnscreen(w, view)
		off.Unbind()
		dst := stereoHalf(display, w.Stereo.CrossEyed, view, sz)
		m.Backend.DrawTexture(tex, dst, image.Rectangle{Max: sz}, gpu.DrawOptions{Op: draw.Src, Alpha: 1, Premultiplied: true, Filter: gpu.Linear})
	}
}

// ensureStereoSurface returns the whole window surface of the window
// for the given size, or nil if it cannot be allocated.
func (m *Manager) ensureStereoSurface(w *Window, sz image.Point) gpu.Offscreen {
	if off := w.stereoSurface; off != nil {
		if off.Size() == sz {
			return off
		}
		off.Release()
		w.stereoSurface = nil
	}
	off, err := m.Backend.NewOffscreen(sz, gpu.RGBA8)
	if err != nil {
		m.allocationFailed(w, "stereo", err)
		return nil
	}
	m.allocFailed = false
	w.stereoSurface = off
	return off
}

// stereoHalf returns the half of the window that the given view is
// drawn into: the left eye goes left, or right when cross eyed, for
// side by side, and on top for top bottom.
func stereoHalf(display gpu.StereoDisplay, crossEyed bool, view int, sz image.Point) image.Rectangle {
	if display == gpu.SideBySide {
		half := sz.X / 2
		x := 0
		if (view == 0) == crossEyed {
			x = half
		}
		return image.Rect(x, 0, x+half, sz.Y)
	}
	half := sz.Y / 2
	y := 0
	if view == 1 {
		y = half
	}
	return image.Rect(0, y, sz.X, y+half)
}
