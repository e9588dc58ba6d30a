// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionBlendHide(t *testing.T) {
	m, app, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	a, _, _ := addFullPane(w, nil, RegionWindow, green)
	side := a.AddPane("side", RegionUI, newTestPane(red), image.Rect(100, 0, 200, 100))
	side.Overlapping = true
	m.DrawUpdate()

	assert.Equal(t, float32(1), side.FadeAlpha())
	w.SetPaneHidden(a, side, true)
	require.True(t, side.IsBlending())
	assert.True(t, side.Visible, "a pane stays visible while it fades out")
	assert.InDelta(t, 0.9-1.0/60, side.FadeAlpha(), 1e-4)

	prev := side.FadeAlpha()
	for i := 0; i < 20 && side.IsBlending(); i++ {
		app.Advance(20 * time.Millisecond)
		m.ProcessEvents()
		if side.IsBlending() {
			assert.True(t, side.NeedsRedraw)
			assert.LessOrEqual(t, side.FadeAlpha(), prev)
			prev = side.FadeAlpha()
		}
		m.DrawUpdate()
	}
	assert.False(t, side.IsBlending())
	assert.True(t, side.Hidden)
	assert.False(t, side.Visible)
	assert.Equal(t, float32(1), side.FadeAlpha())
	m.Timers.Sweep()
	assert.Zero(t, m.Timers.Len())
}

func TestRegionBlendShowInterrupted(t *testing.T) {
	m, app, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	a, _, _ := addFullPane(w, nil, RegionWindow, green)
	side := a.AddPane("side", RegionUI, newTestPane(red), image.Rect(100, 0, 200, 100))
	side.Overlapping = true

	w.SetPaneHidden(a, side, true)
	app.Advance(20 * time.Millisecond)
	m.ProcessEvents()
	// showing again ends the fade out and keeps the pane shown
	w.SetPaneHidden(a, side, false)
	require.True(t, side.IsBlending())
	assert.False(t, side.Hidden)
	assert.Equal(t, float32(0), side.FadeAlpha())

	for i := 0; i < 20 && side.IsBlending(); i++ {
		app.Advance(20 * time.Millisecond)
		m.ProcessEvents()
	}
	assert.False(t, side.Hidden)
	assert.True(t, side.Visible)
}

func TestSetPaneHiddenTiled(t *testing.T) {
	m, _, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	a, p, _ := addFullPane(w, nil, RegionWindow, green)
	m.DrawUpdate()

	w.SetPaneHidden(a, p, true)
	assert.False(t, p.IsBlending())
	assert.True(t, p.Hidden)
	assert.False(t, p.Visible)
	assert.True(t, m.NeedsRedraw(w))
	assert.Zero(t, m.Timers.Len())
}

func TestRemovePaneEndsBlend(t *testing.T) {
	m, _, be := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	a, _, _ := addFullPane(w, nil, RegionWindow, green)
	side := a.AddPane("side", RegionUI, newTestPane(red), image.Rect(100, 0, 200, 100))
	side.Overlapping = true
	m.DrawUpdate()
	w.SetPaneHidden(a, side, true)

	w.RemovePane(a, side)
	assert.False(t, side.IsBlending())
	assert.Len(t, a.Panes, 1)
	assert.Nil(t, side.DrawBuffer)
	assert.Equal(t, 1, be.Releases)
	m.Timers.Sweep()
	assert.Zero(t, m.Timers.Len())
}
