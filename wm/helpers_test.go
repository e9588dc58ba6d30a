// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/wm/gpu/software"
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/offscreen"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	cyan  = color.RGBA{0, 0xff, 0xff, 0xff}
)

// testPane fills the pane with one color per view and counts calls.
type testPane struct {
	fill    [2]color.RGBA
	draws   int
	layouts int
	views   []int
}

func newTestPane(c color.RGBA) *testPane {
	return &testPane{fill: [2]color.RGBA{c, c}}
}

func (tp *testPane) Draw(dc *DrawContext) {
	tp.draws++
	tp.views = append(tp.views, dc.View)
	c := tp.fill[0]
	if dc.View == 1 {
		c = tp.fill[1]
	}
	dc.Clear(c)
}

func (tp *testPane) Layout(w *Window, a *Area, p *Pane) {
	tp.layouts++
}

// newTestManager returns a manager on the offscreen platform and the
// software backend that does not sleep.
func newTestManager() (*Manager, *offscreen.App, *software.Backend) {
	app := offscreen.NewApp()
	be := software.NewBackend()
	m := NewManager(app, be)
	m.Settings.SimulateEvents = true
	return m, app, be
}

// newTestWindow opens a window whose refresher sizes every area and
// tiled pane to the whole window.
func newTestWindow(t *testing.T, m *Manager, size image.Point) (*Window, *offscreen.Window) {
	w, err := m.NewWindow(&system.NewWindowOptions{Size: size})
	require.NoError(t, err)
	w.Screen.Refresher = RefresherFunc(func(w *Window) {
		r := image.Rectangle{Max: w.Size()}
		for _, a := range w.Screen.Areas {
			a.Rect = r
			for _, p := range a.Panes {
				p.Rect = r
			}
		}
	})
	return w, w.System.(*offscreen.Window)
}

// addFullPane adds an area covering the window with one pane.
func addFullPane(w *Window, space Space, kind RegionKind, c color.RGBA) (*Area, *Pane, *testPane) {
	r := image.Rectangle{Max: w.Size()}
	a := w.Screen.AddArea(r, space)
	tp := newTestPane(c)
	p := a.AddPane("main", kind, tp, r)
	return a, p, tp
}
