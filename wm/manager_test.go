// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"log/slog"
	"testing"
	"time"

	"cogentcore.org/wm/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilitiesCached(t *testing.T) {
	m, app, _ := newTestManager()
	assert.True(t, m.Capabilities().Has(system.CursorWarp))
	app.Caps = 0
	assert.True(t, m.Capabilities().Has(system.CursorWarp))
}

func TestReport(t *testing.T) {
	m, app, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(100, 100))
	m.DrawUpdate()

	m.Report(slog.LevelWarn, "Region could not be drawn")
	require.NotNil(t, m.LastReport)
	assert.Equal(t, slog.LevelWarn, m.LastReport.Level)
	assert.Equal(t, app.Clock, m.LastReport.Time)
	first := m.ReportTimer
	assert.NotZero(t, first)
	assert.True(t, w.Screen.DoDraw)

	m.Report(slog.LevelInfo, "Saved")
	assert.NotEqual(t, first, m.ReportTimer, "a new report replaces the timer")
	assert.Nil(t, m.Timers.Get(first))
	assert.Equal(t, "Saved", m.LastReport.Message)

	m.DrawUpdate()
	for i := 0; i < 4; i++ {
		app.Advance(time.Second)
		m.ProcessEvents()
		assert.NotNil(t, m.LastReport)
	}
	app.Advance(time.Second + time.Millisecond)
	m.ProcessEvents()
	assert.Nil(t, m.LastReport)
	assert.Zero(t, m.ReportTimer)
	assert.True(t, w.Screen.DoDraw)
}

func TestQuit(t *testing.T) {
	m, app, _ := newTestManager()
	newTestWindow(t, m, image.Pt(100, 100))
	newTestWindow(t, m, image.Pt(100, 100))
	m.Quit()
	assert.Empty(t, m.Windows)
	assert.Zero(t, app.NWindows())
}
