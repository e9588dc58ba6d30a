// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"

	"cogentcore.org/wm/gpu"
)

// Pane is a rectangular part of a window that draws into its own
// [DrawBuffer]. Tiled panes belong to an [Area]; floating panes
// belong directly to the [Screen].
//
// The redraw flags are set by anything that changes what the pane
// shows, and are only cleared by [Manager.ClearRedrawFlags] after
// the window has been drawn.
type Pane struct {

	// Name is the name of the pane.
	Name string

	// Kind is the role of the pane in its area.
	Kind RegionKind

	// Type draws the contents of the pane.
	Type PaneType

	// Rect is the rectangle of the pane in window pixels.
	Rect image.Rectangle

	// Alignment is the side of the area the pane is attached to.
	Alignment Alignment

	// Visible is whether the pane is shown.
	Visible bool

	// Overlapping panes are blended over the tiled panes
	// instead of being copied onto the window.
	Overlapping bool

	// Hidden is whether the user hid the pane.
	Hidden bool

	// TooSmall is set when the pane is too small to be shown.
	TooSmall bool

	// DynamicSize is set when the size of the pane depends on its layout.
	DynamicSize bool

	// NeedsRedraw requests a redraw of the pane.
	NeedsRedraw bool

	// NeedsRedrawNoRebuild requests a redraw of the pane that reuses
	// its existing layout.
	NeedsRedrawNoRebuild bool

	// NeedsPaintCursorRedraw requests a redraw of the paint cursors
	// over the pane.
	NeedsPaintCursorRedraw bool

	// Gizmos are the interactive handles drawn in the pane, if any.
	Gizmos *GizmoMap

	// DrawBuffer is the render target of the pane; nil until the
	// pane is first drawn, or when it could not be allocated.
	DrawBuffer *DrawBuffer

	blend *regionBlend
}

// Size returns the size of the pane in pixels.
func (p *Pane) Size() image.Point {
	return p.Rect.Size()
}

// TagRedraw requests a full redraw of the pane.
func (p *Pane) TagRedraw() {
	p.NeedsRedraw = true
	p.NeedsRedrawNoRebuild = false
}

// TagRedrawNoRebuild requests a redraw of the pane that keeps its
// layout, unless a full redraw is already requested.
func (p *Pane) TagRedrawNoRebuild() {
	if !p.NeedsRedraw {
		p.NeedsRedrawNoRebuild = true
	}
}

// TagPaintCursorRedraw requests a redraw of the paint cursors over the pane.
func (p *Pane) TagPaintCursorRedraw() {
	p.NeedsPaintCursorRedraw = true
}

// isDirty returns whether the contents of the pane need to be drawn again.
func (p *Pane) isDirty() bool {
	return p.NeedsRedraw || p.NeedsRedrawNoRebuild
}

// ReleaseBuffer releases the draw buffer of the pane, if any.
func (p *Pane) ReleaseBuffer() {
	if p.DrawBuffer != nil {
		p.DrawBuffer.Release()
		p.DrawBuffer = nil
	}
}

// PaneType draws the contents of a pane. It may also implement
// [Layouter], [OverlayDrawer] and [Listener].
type PaneType interface {

	// Draw draws the pane into dc.Rect of the bound render target.
	Draw(dc *DrawContext)
}

// Layouter is implemented by pane types that compute their layout
// before drawing.
type Layouter interface {
	Layout(w *Window, a *Area, p *Pane)
}

// OverlayDrawer is implemented by pane types that draw directly onto
// the window, over the composited pane.
type OverlayDrawer interface {
	DrawOverlay(dc *DrawContext)
}

// Listener is implemented by pane types that react to notifiers.
type Listener interface {
	Listen(w *Window, a *Area, p *Pane, n *Notifier)
}

// PaneFunc is a function that implements [PaneType].
type PaneFunc func(dc *DrawContext)

func (f PaneFunc) Draw(dc *DrawContext) { f(dc) }

// DrawContext is passed to everything that draws during a window draw.
// It embeds the [gpu.Drawer] of the bound render target.
type DrawContext struct {
	gpu.Drawer

	// Manager is the window manager.
	Manager *Manager

	// Window is the window being drawn.
	Window *Window

	// Area is the area of the pane, nil for floating panes
	// and for drawing that is not for a pane.
	Area *Area

	// Pane is the pane being drawn, if any.
	Pane *Pane

	// View is the stereo view being drawn: -1 for onscreen mono, else 0 or 1.
	View int

	// Rect is where to draw, in the coordinates of the bound render target.
	Rect image.Rectangle

	// Rebuild is false when only a redraw without a layout rebuild was requested.
	Rebuild bool
}

// Backend returns the graphics backend, for creating textures.
func (dc *DrawContext) Backend() gpu.Backend {
	return dc.Manager.Backend
}
