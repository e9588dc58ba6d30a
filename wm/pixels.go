// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"

	"cogentcore.org/wm/base/errors"
	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
)

// ReadPixels returns the pixels of the window. The last presented frame
// is read when the platform can read the front buffer; otherwise the
// window is drawn again into an offscreen surface.
func (m *Manager) ReadPixels(w *Window) (*image.RGBA, error) {
	if m.Capabilities().Has(system.GPUReadFrontBuffer) {
		img, err := w.System.FrontBuffer()
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, system.ErrNoFrontBuffer) {
			return nil, err
		}
	}
	return m.ReadPixelsOffscreen(w)
}

// ReadPixelsOffscreen draws the window in mono into a new offscreen
// surface and returns its pixels. The redraw flags are left unchanged.
func (m *Manager) ReadPixelsOffscreen(w *Window) (*image.RGBA, error) {
	sz := w.Size()
	off, err := m.Backend.NewOffscreen(sz, gpu.RGBA8)
	if err != nil {
		return nil, err
	}
	defer off.Release()
	m.makeDrawable(w)
	m.drawOffscreen(w, false)
	off.Bind()
	m.drawOnscreen(w, -1)
	img := m.Backend.ReadPixels(image.Rectangle{Max: sz})
	off.Unbind()
	return img, nil
}
