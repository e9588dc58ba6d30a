// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPaintCursor struct {
	show  bool
	polls int
	pos   []image.Point
}

func (pc *testPaintCursor) Poll(w *Window, a *Area, p *Pane) bool {
	pc.polls++
	return pc.show
}

func (pc *testPaintCursor) DrawCursor(dc *DrawContext, pos image.Point) {
	pc.pos = append(pc.pos, pos)
	dc.FillRect(image.Rectangle{Min: pos, Max: pos.Add(image.Pt(4, 4))}, blue)
}

func TestPaintCursor(t *testing.T) {
	m, app, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	_, p, _ := addFullPane(w, &View3DSpace{}, RegionWindow, green)
	m.DrawUpdate()

	pc := &testPaintCursor{show: true}
	m.AddPaintCursor(SpaceView3D, RegionWindow, pc)
	assert.True(t, w.Screen.DoDrawPaintCursor)
	m.DrawUpdate()
	assert.Empty(t, pc.pos, "no pane is under the cursor yet")

	app.MoveCursor(ow, image.Pt(30, 40))
	m.ProcessEvents()
	assert.Same(t, p, w.Screen.ActivePane)
	assert.True(t, p.NeedsPaintCursorRedraw)
	assert.True(t, m.NeedsRedraw(w))
	m.DrawUpdate()
	assert.Equal(t, []image.Point{{30, 40}}, pc.pos)
	assert.Equal(t, blue, ow.Front().RGBAAt(31, 41))
	assert.False(t, p.NeedsPaintCursorRedraw)

	m.InterfaceLocked = true
	app.MoveCursor(ow, image.Pt(60, 40))
	m.ProcessEvents()
	assert.False(t, p.NeedsPaintCursorRedraw)
	w.Screen.DoDraw = true
	m.DrawUpdate()
	assert.Len(t, pc.pos, 1, "nothing is drawn while the interface is locked")
	m.InterfaceLocked = false

	pc.show = false
	app.MoveCursor(ow, image.Pt(70, 40))
	m.ProcessEvents()
	assert.False(t, p.NeedsPaintCursorRedraw)

	assert.True(t, m.RemovePaintCursor(pc))
	assert.False(t, m.RemovePaintCursor(pc))
}

func TestPaintCursorFilter(t *testing.T) {
	m, app, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	addFullPane(w, &ImageSpace{}, RegionWindow, green)

	view3d := &testPaintCursor{show: true}
	header := &testPaintCursor{show: true}
	all := &testPaintCursor{show: true}
	m.AddPaintCursor(SpaceView3D, RegionWindow, view3d)
	m.AddPaintCursor(SpaceAny, RegionHeader, header)
	m.AddPaintCursor(SpaceAny, RegionAny, all)

	app.MoveCursor(ow, image.Pt(10, 10))
	m.ProcessEvents()
	m.DrawUpdate()
	assert.Zero(t, view3d.polls)
	assert.Zero(t, header.polls)
	assert.Len(t, all.pos, 1)
}

func TestPaneAt(t *testing.T) {
	sc := &Screen{}
	a := sc.AddArea(image.Rect(0, 0, 200, 100), nil)
	main := a.AddPane("main", RegionWindow, nil, image.Rect(0, 0, 200, 100))
	hud := a.AddPane("hud", RegionHUD, nil, image.Rect(150, 0, 200, 50))
	hud.Overlapping = true
	menu := sc.AddFloating("menu", nil, image.Rect(160, 10, 180, 30))

	_, p := paneAt(sc, image.Pt(170, 20))
	assert.Same(t, menu, p)
	ha, p := paneAt(sc, image.Pt(155, 40))
	assert.Same(t, hud, p)
	assert.Same(t, a, ha)
	_, p = paneAt(sc, image.Pt(10, 10))
	assert.Same(t, main, p)
	_, p = paneAt(sc, image.Pt(300, 10))
	assert.Nil(t, p)
}
