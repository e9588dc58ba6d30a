// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import "image"

// Screen is the layout of a window: tiled areas, each with its own
// panes, and floating panes such as menus and popups that are drawn
// on top of them.
type Screen struct {

	// Areas are the tiled areas of the screen.
	Areas []*Area

	// Floating are the floating panes, drawn after everything else.
	Floating []*Pane

	// ActivePane is the pane under the cursor. Only it draws paint cursors.
	ActivePane *Pane

	// Refresher recomputes the layout of the screen when DoRefresh is set.
	Refresher Refresher

	// DoRefresh requests a layout refresh before the next draw.
	DoRefresh bool

	// DoDraw requests a redraw of the whole window.
	DoDraw bool

	// DoDrawGesture requests a redraw of the window gestures.
	DoDrawGesture bool

	// DoDrawPaintCursor requests a redraw of the paint cursors.
	DoDrawPaintCursor bool

	// DoDrawDrag requests a redraw of the dragged items.
	DoDrawDrag bool
}

// Refresher recomputes the area and pane rectangles of a screen,
// for example after the window was resized.
type Refresher interface {
	Refresh(w *Window)
}

// RefresherFunc is a function that implements [Refresher].
type RefresherFunc func(w *Window)

func (f RefresherFunc) Refresh(w *Window) { f(w) }

// AddArea adds a new area with the given rectangle and space.
func (s *Screen) AddArea(rect image.Rectangle, space Space) *Area {
	a := &Area{Rect: rect, Space: space}
	s.Areas = append(s.Areas, a)
	return a
}

// AddFloating adds a new visible floating pane with the given type and rectangle.
func (s *Screen) AddFloating(name string, typ PaneType, rect image.Rectangle) *Pane {
	p := &Pane{Name: name, Kind: RegionTemporary, Type: typ, Rect: rect, Visible: true, Overlapping: true, NeedsRedraw: true}
	s.Floating = append(s.Floating, p)
	return p
}

// RemoveFloating removes the given floating pane and releases its buffer.
func (s *Screen) RemoveFloating(p *Pane) {
	for i, fp := range s.Floating {
		if fp == p {
			s.Floating = append(s.Floating[:i], s.Floating[i+1:]...)
			p.ReleaseBuffer()
			s.DoDraw = true
			return
		}
	}
}

// EachPane calls fn for every pane of every area and then for every
// floating pane, whose area is nil, stopping if fn returns false.
func (s *Screen) EachPane(fn func(a *Area, p *Pane) bool) {
	for _, a := range s.Areas {
		for _, p := range a.Panes {
			if !fn(a, p) {
				return
			}
		}
	}
	for _, p := range s.Floating {
		if !fn(nil, p) {
			return
		}
	}
}

// AreaOf returns the area that contains the given pane, or nil
// for floating panes.
func (s *Screen) AreaOf(p *Pane) *Area {
	for _, a := range s.Areas {
		for _, ap := range a.Panes {
			if ap == p {
				return a
			}
		}
	}
	return nil
}

// Area is a tiled part of a screen showing one editor.
type Area struct {

	// Name is the name of the area.
	Name string

	// Rect is the rectangle of the area in window pixels.
	Rect image.Rectangle

	// Space is the editor shown in the area.
	Space Space

	// Panes are the panes of the area, in drawing order.
	Panes []*Pane
}

// SpaceKind returns the kind of the space of the area.
func (a *Area) SpaceKind() SpaceKind {
	if a == nil || a.Space == nil {
		return SpaceEmpty
	}
	return a.Space.Kind()
}

// AddPane adds a new visible pane to the area.
func (a *Area) AddPane(name string, kind RegionKind, typ PaneType, rect image.Rectangle) *Pane {
	p := &Pane{Name: name, Kind: kind, Type: typ, Rect: rect, Visible: true, NeedsRedraw: true}
	a.Panes = append(a.Panes, p)
	return p
}

// RemovePane removes the given pane and releases its buffer.
func (a *Area) RemovePane(p *Pane) {
	for i, ap := range a.Panes {
		if ap == p {
			a.Panes = append(a.Panes[:i], a.Panes[i+1:]...)
			p.ReleaseBuffer()
			return
		}
	}
}

// TagRedraw tags every pane of the area for redraw.
func (a *Area) TagRedraw() {
	for _, p := range a.Panes {
		p.TagRedraw()
	}
}
