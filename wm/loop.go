// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/timer"
)

// ProcessEvents runs one iteration of the main loop, apart from drawing.
// It polls the platform without waiting and dispatches its events to
// the windows, fires the due timers and then sleeps: for the idle sleep
// of the settings when nothing happened, less if a timer is due before
// that, and not at all if there was an event, a timer fired, or events
// are being simulated. Finally it removes the swept timers, applies
// reloaded settings, and handles the queued window events and the
// notifiers. It returns the computed sleep.
func (m *Manager) ProcessEvents() time.Duration {
	hasEvent := m.App.ProcessEvents(false)
	if hasEvent {
		m.App.DispatchEvents(m.platformEvent)
	}

	sleep := time.Duration(m.Settings.IdleSleep)
	if hasEvent {
		sleep = 0
	}
	now := m.App.Now()
	m.firing = true
	fired, next, hasNext := m.Timers.Fire(now, m.dispatchTimer)
	m.firing = false
	if fired {
		sleep = 0
	}
	if sleep != 0 && hasNext {
		if until := next.Sub(now); until < sleep {
			// a timer due right now fires once the clock has moved on
			sleep = max(ceilMicroseconds(until), time.Microsecond)
		}
	}
	m.Timers.Sweep()

	if sleep != 0 && !m.Settings.SimulateEvents {
		m.App.Sleep(sleep)
	}

	m.applyPendingSettings()
	m.handleEvents()
	m.handleNotifiers()
	return sleep
}

// ceilMicroseconds rounds d up to a whole number of microseconds,
// so that sleeping for it never ends before d has elapsed.
func ceilMicroseconds(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return (d + time.Microsecond - 1) / time.Microsecond * time.Microsecond
}

// dispatchTimer runs the action of a fired timer. Timers of the
// manager run directly; window timers send a timer event to their window.
func (m *Manager) dispatchTimer(t *timer.Timer) {
	switch t.Kind {
	case timer.Jobs:
		m.handleJobsTimer(t)
	case timer.Autosave:
		m.handleAutosaveTimer(t)
	case timer.Notifier:
		m.notifierTimer(t)
	case timer.Report:
		m.handleReportTimer(t)
	default:
		if w := m.WindowByID(t.WindowID); w != nil {
			w.Queue.Send(events.NewTimer(w.ID, t.ID, m.App.Now()))
		}
	}
}

// platformEvent applies a platform event to the state of its window
// and queues it for handling.
func (m *Manager) platformEvent(ev events.Event) {
	w := m.WindowByID(ev.WindowID)
	if w == nil {
		return
	}
	switch ev.Type {
	case events.WindowResize:
		w.Screen.DoRefresh = true
		w.Screen.DoDraw = true
	case events.WindowExpose:
		w.Screen.DoDraw = true
	case events.WindowActivate:
		m.Active = w
	case events.WindowDeactivate:
		if m.Active == w {
			m.Active = nil
		}
	case events.MouseMove:
		w.EventPos = ev.Pos
	}
	w.Queue.Send(ev)
}

// handleEvents handles the queued events of every window.
func (m *Manager) handleEvents() {
	for _, w := range slices.Clone(m.Windows) {
		for !w.closed {
			ev, ok := w.Queue.NextEvent()
			if !ok {
				break
			}
			m.handleEvent(w, ev)
		}
	}
}

// handleEvent handles one window event. Events of removed timers
// have been neutralized and are skipped.
func (m *Manager) handleEvent(w *Window, ev events.Event) {
	if ev.IsNone() {
		return
	}
	if m.Settings.Debug.EventTrace {
		slog.Debug("wm: event", "event", ev)
	}
	switch ev.Type {
	case events.Timer:
		t := m.Timers.Get(ev.TimerID)
		if t == nil {
			return
		}
		if t.Kind == timer.RegionBlend {
			m.handleRegionBlendTimer(w, t)
			return
		}
	case events.MouseMove:
		m.tagPaintCursors(w)
	case events.WindowClose:
		if w.Handler != nil {
			w.Handler(w, ev)
		}
		m.CloseWindow(w)
		return
	}
	if w.Handler != nil {
		w.Handler(w, ev)
	}
}
