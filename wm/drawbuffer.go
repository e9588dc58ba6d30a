// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/draw"
	"log/slog"

	"cogentcore.org/wm/base/enums"
	"cogentcore.org/wm/gpu"
)

// BufferKind is the kind of render target of a [DrawBuffer].
type BufferKind int32

const (
	// OffscreenBuffer is a color-only offscreen surface.
	OffscreenBuffer BufferKind = iota

	// ViewportBuffer is a full viewport target, which may be stereo.
	ViewportBuffer
)

func (k BufferKind) String() string {
	return enums.String("BufferKind", []string{"OffscreenBuffer", "ViewportBuffer"}, int32(k))
}

// DrawBuffer is the render target owned by one pane.
// It is never resized or reformatted in place: [Window.EnsureDrawBuffer]
// releases it and makes a new one instead.
type DrawBuffer struct {

	// Kind is the kind of render target.
	Kind BufferKind

	// Offscreen is the surface of an [OffscreenBuffer].
	Offscreen gpu.Offscreen

	// Viewport is the target of a [ViewportBuffer].
	Viewport gpu.Viewport

	// Stereo is whether the buffer was made for stereo drawing.
	Stereo bool

	// BoundView is the view that is bound, or -1 when unbound.
	BoundView int

	backend gpu.Backend
}

// Size returns the size of the buffer in pixels. Viewports have
// the size of the rectangle they were last bound with.
func (db *DrawBuffer) Size() image.Point {
	if db.Viewport != nil {
		return db.Viewport.Size()
	}
	return db.Offscreen.Size()
}

// Format returns the pixel format of the buffer.
func (db *DrawBuffer) Format() gpu.TextureFormat {
	if db.Viewport != nil {
		return db.Viewport.Format()
	}
	return db.Offscreen.Format()
}

// Bind makes the given view of the buffer the render target for drawing
// the pane at rect, in window pixels. Offscreen surfaces are scissored
// to the pane size; viewports do that themselves.
func (db *DrawBuffer) Bind(view int, rect image.Rectangle) {
	if db.Viewport != nil {
		db.Viewport.Bind(view, rect)
	} else {
		db.Offscreen.Bind()
		db.backend.SetScissor(image.Rectangle{Max: rect.Size()})
	}
	db.BoundView = view
}

// Unbind restores the previous render target.
func (db *DrawBuffer) Unbind() {
	db.BoundView = -1
	if db.Viewport != nil {
		db.Viewport.Unbind()
		return
	}
	db.backend.DisableScissor()
	db.Offscreen.Unbind()
}

// ColorTexture returns the color texture of the given view, or nil
// if the view has not been drawn.
func (db *DrawBuffer) ColorTexture(view int) gpu.Texture {
	if db.Viewport != nil {
		return db.Viewport.ColorTexture(view)
	}
	return db.Offscreen.ColorTexture()
}

// BoundViewport returns the viewport of the buffer while it is bound,
// or nil.
func (db *DrawBuffer) BoundViewport() gpu.Viewport {
	if db.BoundView == -1 {
		return nil
	}
	return db.Viewport
}

// blitView returns the view to present for the requested one:
// mono drawing and buffers without stereo views use view 0.
func (db *DrawBuffer) blitView(view int) int {
	if view < 0 {
		return 0
	}
	if view > 0 && (db.Viewport == nil || !db.Stereo) {
		return 0
	}
	return view
}

// Blit copies the given view of the buffer onto the current render
// target at rect.
func (db *DrawBuffer) Blit(view int, rect image.Rectangle) {
	view = db.blitView(view)
	tex := db.ColorTexture(view)
	if tex == nil {
		return
	}
	sz := tex.Size()
	dst := rect
	if db.Viewport == nil {
		dst = image.Rectangle{Min: rect.Min, Max: rect.Min.Add(sz)}
	}
	db.backend.DrawTexture(tex, dst, image.Rectangle{Max: sz}, gpu.DrawOptions{Op: draw.Src, Alpha: 1, Premultiplied: true})
}

// Release frees the render target. The buffer must not be used afterward.
func (db *DrawBuffer) Release() {
	db.BoundView = -1
	if db.Viewport != nil {
		db.Viewport.Release()
		db.Viewport = nil
	}
	if db.Offscreen != nil {
		db.Offscreen.Release()
		db.Offscreen = nil
	}
}

// EnsureDrawBuffer returns the draw buffer of the pane for drawing at
// the given size, making a new one if there is none or if the existing
// one does not match. A mismatch of the stereo flag or of the buffer
// kind always makes a new buffer, as does a mismatch of the size or
// format of an offscreen surface. Viewports resize themselves, so they
// are only remade for a different format. The pane is tagged for redraw
// whenever its buffer is remade.
//
// EnsureDrawBuffer returns nil if the buffer cannot be allocated, in
// which case the pane is skipped for this draw.
func (w *Window) EnsureDrawBuffer(p *Pane, size image.Point, stereo, useViewport bool) *DrawBuffer {
	m := w.Manager
	format := w.TextureFormat()
	if db := p.DrawBuffer; db != nil {
		var remake bool
		switch {
		case db.Stereo != stereo:
			remake = true
		case (db.Kind == ViewportBuffer) != useViewport:
			remake = true
		case db.Kind == OffscreenBuffer:
			remake = db.Offscreen.Size() != size || db.Offscreen.Format() != format
		default:
			remake = db.Viewport.Format() != format
		}
		if remake {
			if m.Settings.Debug.RenderTrace {
				slog.Debug("wm: remaking draw buffer", "window", w.ID, "pane", p.Name, "size", size, "stereo", stereo, "format", format)
			}
			p.ReleaseBuffer()
			p.TagRedraw()
		}
	}
	if p.DrawBuffer != nil {
		return p.DrawBuffer
	}
	db := &DrawBuffer{Stereo: stereo, BoundView: -1, backend: m.Backend}
	var err error
	if useViewport {
		db.Kind = ViewportBuffer
		db.Viewport, err = m.Backend.NewViewport(stereo, format)
	} else {
		db.Kind = OffscreenBuffer
		db.Offscreen, err = m.Backend.NewOffscreen(size, format)
	}
	if err != nil {
		m.allocationFailed(w, p.Name, err)
		return nil
	}
	m.allocFailed = false
	p.DrawBuffer = db
	return db
}

// allocationFailed reports the failure to allocate a render target,
// once until an allocation succeeds again.
func (m *Manager) allocationFailed(w *Window, target string, err error) {
	if m.allocFailed {
		return
	}
	m.allocFailed = true
	slog.Debug("wm: allocation failed", "window", w.ID, "target", target, "err", err)
	m.Report(slog.LevelError, "Region could not be drawn")
}
