// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// GizmoMap holds the interactive handles drawn over a pane.
type GizmoMap struct {
	Gizmos []*Gizmo
}

// Gizmo is one interactive handle.
type Gizmo struct {
	Name string

	// DoDraw requests a redraw of the gizmo.
	DoDraw bool
}

// Add adds a new gizmo with the given name.
func (gm *GizmoMap) Add(name string) *Gizmo {
	g := &Gizmo{Name: name}
	gm.Gizmos = append(gm.Gizmos, g)
	return g
}

// NeedsRedraw returns whether any gizmo requested a redraw.
// It does not clear the requests.
func (gm *GizmoMap) NeedsRedraw() bool {
	if gm == nil {
		return false
	}
	for _, g := range gm.Gizmos {
		if g.DoDraw {
			return true
		}
	}
	return false
}

// ClearRedraw clears the redraw requests of every gizmo.
func (gm *GizmoMap) ClearRedraw() {
	if gm == nil {
		return
	}
	for _, g := range gm.Gizmos {
		g.DoDraw = false
	}
}
