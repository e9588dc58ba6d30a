// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"context"
	"image"
	"testing"
	"time"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilMicroseconds(t *testing.T) {
	assert.Equal(t, time.Duration(0), ceilMicroseconds(0))
	assert.Equal(t, time.Duration(0), ceilMicroseconds(-time.Second))
	assert.Equal(t, time.Microsecond, ceilMicroseconds(1))
	assert.Equal(t, 3*time.Microsecond, ceilMicroseconds(2001*time.Nanosecond))
	assert.Equal(t, time.Millisecond, ceilMicroseconds(time.Millisecond))
}

func TestIdleSleep(t *testing.T) {
	m, app, _ := newTestManager()
	m.Settings.SimulateEvents = false
	m.Timers.Add(0, timer.Window, 3*time.Second)

	assert.Equal(t, 5*time.Millisecond, m.ProcessEvents())
	assert.Equal(t, []time.Duration{5 * time.Millisecond}, app.Slept)

	// a timer due before the idle sleep shortens it
	m.Timers.Add(0, timer.Window, 2*time.Millisecond)
	assert.Equal(t, 2*time.Millisecond, m.ProcessEvents())

	// a timer due right now does not fire until the clock moves
	assert.Equal(t, time.Microsecond, m.ProcessEvents())

	// a firing timer means no sleep
	assert.Equal(t, time.Duration(0), m.ProcessEvents())
	assert.Len(t, app.Slept, 3)

	// nor does a platform event
	w, ow := newTestWindow(t, m, image.Pt(100, 100))
	m.Timers.Sweep()
	m.Timers.Each(func(tm *timer.Timer) bool {
		m.Timers.Remove(tm.ID)
		return true
	})
	app.MoveCursor(ow, image.Pt(1, 2))
	assert.Equal(t, time.Duration(0), m.ProcessEvents())
	assert.Equal(t, image.Pt(1, 2), w.EventPos)

	m.Settings.SimulateEvents = true
	n := len(app.Slept)
	assert.Equal(t, 5*time.Millisecond, m.ProcessEvents())
	assert.Len(t, app.Slept, n, "simulated events never sleep")
}

func TestTimerPhaseInLoop(t *testing.T) {
	m, app, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(100, 100))
	step := 30 * time.Millisecond
	id := m.Timers.Add(w.ID, timer.Window, step)
	start := m.Timers.Get(id).Start

	var got []timer.ID
	w.Handler = func(w *Window, ev events.Event) {
		if ev.Type == events.Timer {
			got = append(got, ev.TimerID)
		}
	}
	for _, d := range []time.Duration{31 * time.Millisecond, 7 * time.Millisecond, 2 * time.Second, 29 * time.Millisecond, 45 * time.Millisecond} {
		app.Advance(d)
		m.ProcessEvents()
		tm := m.Timers.Get(id)
		require.NotNil(t, tm)
		assert.Zero(t, tm.Next.Sub(start)%step)
		assert.True(t, tm.Next.After(tm.Last) || tm.Next.Equal(tm.Last))
	}
	assert.NotEmpty(t, got)
	for _, g := range got {
		assert.Equal(t, id, g)
	}
}

func TestRemoveTimerInHandler(t *testing.T) {
	m, app, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(100, 100))
	a := m.Timers.Add(w.ID, timer.Window, 10*time.Millisecond)
	b := m.Timers.Add(w.ID, timer.Window, 10*time.Millisecond)

	var got []timer.ID
	w.Handler = func(w *Window, ev events.Event) {
		if ev.Type != events.Timer {
			return
		}
		got = append(got, ev.TimerID)
		if ev.TimerID == a {
			m.Timers.Remove(b)
		}
	}
	app.Advance(11 * time.Millisecond)
	m.ProcessEvents()
	assert.Equal(t, []timer.ID{a}, got, "the queued event of a removed timer is dropped")
	assert.Nil(t, m.Timers.Get(b))
	assert.Equal(t, 2, m.Timers.Len())

	app.Advance(11 * time.Millisecond)
	m.ProcessEvents()
	assert.Equal(t, 1, m.Timers.Len())
	assert.Equal(t, []timer.ID{a, a}, got)
}

func TestWindowEvents(t *testing.T) {
	m, app, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(100, 100))
	m.DrawUpdate()

	app.Send(events.Event{Type: events.WindowActivate, WindowID: w.ID})
	m.ProcessEvents()
	assert.Same(t, w, m.Active)

	app.Send(events.Event{Type: events.WindowExpose, WindowID: w.ID})
	m.ProcessEvents()
	assert.True(t, w.Screen.DoDraw)

	app.Send(events.Event{Type: events.WindowDeactivate, WindowID: w.ID})
	m.ProcessEvents()
	assert.Nil(t, m.Active)

	var closed bool
	w.Handler = func(w *Window, ev events.Event) {
		if ev.Type == events.WindowClose {
			closed = true
		}
	}
	m.Timers.Add(w.ID, timer.Window, time.Second)
	app.Send(events.Event{Type: events.WindowClose, WindowID: w.ID})
	m.ProcessEvents()
	assert.True(t, closed)
	assert.Empty(t, m.Windows)
	assert.False(t, ow.IsVisible())
	assert.Zero(t, m.Timers.Len())
}

func TestCloseWindow(t *testing.T) {
	m, _, be := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(100, 100))
	_, p, _ := addFullPane(w, nil, RegionWindow, green)
	w.Screen.AddFloating("menu", newTestPane(red), image.Rect(0, 0, 10, 10))
	m.DrawUpdate()
	require.NotNil(t, p.DrawBuffer)
	assert.True(t, ow.Active)
	assert.Equal(t, 2, be.Allocs)

	m.Timers.Add(w.ID, timer.RegionBlend, time.Second)
	w.Queue.Send(events.Event{Type: events.WindowExpose, WindowID: w.ID})
	w.AddGesture(&testGesture{})
	m.Active = w

	m.CloseWindow(w)
	assert.Equal(t, 2, be.Releases)
	assert.Nil(t, p.DrawBuffer)
	assert.Zero(t, m.Timers.Len())
	assert.Zero(t, w.Queue.Len())
	assert.Empty(t, w.Gestures)
	assert.Nil(t, m.Active)
	assert.Nil(t, m.drawable)
	assert.False(t, ow.Active)
	assert.Nil(t, m.WindowByID(w.ID))
	assert.False(t, m.NeedsRedraw(w))

	m.CloseWindow(w)
	assert.Equal(t, 2, be.Releases)
}

func TestRun(t *testing.T) {
	m, app, _ := newTestManager()
	assert.NoError(t, m.Run(context.Background()), "no windows")

	w, _ := newTestWindow(t, m, image.Pt(100, 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)

	n := 0
	w.Handler = func(w *Window, ev events.Event) {
		n++
	}
	app.Send(events.Event{Type: events.WindowClose, WindowID: w.ID})
	assert.NoError(t, m.Run(context.Background()))
	assert.Equal(t, 1, n)
}
