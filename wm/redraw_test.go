// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsRedrawFlags(t *testing.T) {
	m, _, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	_, p, _ := addFullPane(w, &BasicSpace{SpaceKind: SpaceOutliner}, RegionWindow, green)

	assert.True(t, m.NeedsRedraw(w))
	m.DrawUpdate()
	assert.False(t, m.NeedsRedraw(w))

	p.TagRedrawNoRebuild()
	assert.True(t, m.NeedsRedraw(w))
	assert.True(t, m.NeedsRedraw(w), "the query must not clear the request")
	m.ClearRedrawFlags(w)
	assert.False(t, m.NeedsRedraw(w))

	for _, set := range []func(s *Screen){
		func(s *Screen) { s.DoRefresh = true },
		func(s *Screen) { s.DoDraw = true },
		func(s *Screen) { s.DoDrawGesture = true },
		func(s *Screen) { s.DoDrawPaintCursor = true },
		func(s *Screen) { s.DoDrawDrag = true },
	} {
		set(w.Screen)
		assert.True(t, m.NeedsRedraw(w))
		m.ClearRedrawFlags(w)
		assert.False(t, m.NeedsRedraw(w))
	}

	p.TagPaintCursorRedraw()
	assert.True(t, m.NeedsRedraw(w))
	m.ClearRedrawFlags(w)

	p.Gizmos = &GizmoMap{}
	g := p.Gizmos.Add("translate")
	g.DoDraw = true
	assert.True(t, m.NeedsRedraw(w))
	assert.True(t, g.DoDraw)
	m.ClearRedrawFlags(w)
	assert.False(t, g.DoDraw)

	p.TagRedraw()
	ow.Visible = false
	assert.False(t, m.NeedsRedraw(w))
	ow.Visible = true
	assert.True(t, m.NeedsRedraw(w))
}

func TestNeedsRedrawHiddenPane(t *testing.T) {
	m, _, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	_, p, _ := addFullPane(w, nil, RegionWindow, green)
	m.DrawUpdate()

	p.Visible = false
	p.TagRedraw()
	assert.False(t, m.NeedsRedraw(w))

	// the request of a hidden pane survives the clearing
	w.Screen.DoDraw = true
	m.ClearRedrawFlags(w)
	assert.True(t, p.NeedsRedraw)
	p.Visible = true
	assert.True(t, m.NeedsRedraw(w))
}

func TestDrawOnlyWhenNeeded(t *testing.T) {
	m, _, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	_, p, tp := addFullPane(w, nil, RegionWindow, green)

	m.DrawUpdate()
	m.DrawUpdate()
	assert.Equal(t, 1, tp.draws)
	assert.Equal(t, 1, ow.Swaps)

	p.TagRedraw()
	m.DrawUpdate()
	assert.Equal(t, 2, tp.draws)
	assert.Equal(t, 2, ow.Swaps)
	assert.False(t, p.NeedsRedraw)
}
