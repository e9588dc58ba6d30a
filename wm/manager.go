// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wm is a window manager that schedules and composites the
// drawing of windows made of panes. Once per main loop iteration,
// [Manager.ProcessEvents] polls the platform and fires timers, and
// [Manager.DrawUpdate] redraws every window that needs it: each dirty
// pane is drawn into its own [DrawBuffer], and the buffers are then
// composited onto the window surface together with overlays, floating
// panes, gestures, drags and, where the platform needs it, a software
// cursor. Stereo windows are drawn with one of the [gpu.StereoDisplay]
// strategies.
//
// A Manager and everything it owns belong to the main loop goroutine.
package wm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/timer"
)

// Manager is the window manager.
type Manager struct {

	// App is the platform.
	App system.App

	// Backend is the graphics backend that every window draws with.
	Backend gpu.Backend

	// Timers are the timers of every window, and the global timers.
	Timers *timer.Registry

	// Settings are the settings of the manager.
	Settings *ManagerSettings

	// Windows are the open windows, in drawing order.
	Windows []*Window

	// Active is the window that has the focus, if any.
	Active *Window

	// Drags are the items being dragged, drawn over every window.
	Drags []Drag

	// InterfaceLocked is set while another goroutine may change the
	// data that paint cursors draw; paint cursors are not drawn then.
	InterfaceLocked bool

	// Autosaver saves the open document periodically, if it is set.
	// Use [Manager.SetAutosaver] to set it.
	Autosaver Autosaver

	// ReportTimer is the timer that clears LastReport, or 0.
	ReportTimer timer.ID

	// LastReport is the report shown to the user, if any.
	LastReport *Report

	// StageHook is called before each stage of every window draw.
	StageHook func(w *Window, s Stage)

	paintCursors []*paintCursor
	drawable     *Window
	caps         system.Capabilities
	capsProbed   bool
	cursor       softwareCursor
	jobs         []*Job
	notifiers    []*Notifier

	autosaveID        timer.ID
	autosaveScheduled bool

	allocFailed          bool
	stereoFallbackLogged bool
	firing               bool

	pendingMu       sync.Mutex
	pendingSettings *ManagerSettings
}

// NewManager returns a new manager for the given platform and graphics
// backend, with default settings. Its timers use the platform clock.
func NewManager(app system.App, backend gpu.Backend) *Manager {
	m := &Manager{App: app, Backend: backend}
	m.Timers = timer.NewRegistry(app.Now)
	m.Timers.AddReferencer(m)
	m.Settings = &ManagerSettings{SettingsBase: SettingsBase{Name: "Window manager", File: "settings.toml"}, manager: m}
	m.Settings.Defaults()
	m.Settings.Apply()
	return m
}

// applySettings pushes the settings into the timers and restarts autosaving.
func (m *Manager) applySettings() {
	m.Timers.Trace = m.Settings.Debug.TimerTrace
	m.cursor.probed = false
	if m.Autosaver != nil {
		m.autosaveBegin(time.Duration(m.Settings.AutosaveInterval))
	}
	for _, w := range m.Windows {
		w.TagRedraw()
	}
}

// Capabilities returns the capabilities of the platform.
// They are probed once and then cached.
func (m *Manager) Capabilities() system.Capabilities {
	if !m.capsProbed {
		m.caps = m.App.Capabilities()
		m.capsProbed = true
		slog.Debug("wm: platform capabilities", "platform", m.App.Name(), "caps", m.caps)
	}
	return m.caps
}

// ForgetTimer clears the timer slots of the manager that refer to the
// removed timer. It implements [timer.Referencer].
func (m *Manager) ForgetTimer(id timer.ID) {
	if m.ReportTimer == id {
		m.ReportTimer = 0
	}
	if m.autosaveID == id {
		m.autosaveID = 0
	}
}

// Run runs the main loop until the context is done or there are no
// more windows.
func (m *Manager) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if len(m.Windows) == 0 {
			return nil
		}
		m.ProcessEvents()
		m.DrawUpdate()
	}
}

// Quit closes every window and releases the platform.
func (m *Manager) Quit() {
	for len(m.Windows) > 0 {
		m.CloseWindow(m.Windows[len(m.Windows)-1])
	}
	m.endAllJobs()
	m.App.Quit()
}

// Report is a message shown to the user until it times out.
type Report struct {
	Level   slog.Level
	Message string
	Time    time.Time
}

const (
	// ReportTimeout is how long a report is shown.
	ReportTimeout = 5 * time.Second

	reportStep = 50 * time.Millisecond
)

// Report logs the message and shows it to the user until
// [ReportTimeout] elapses or another report replaces it.
func (m *Manager) Report(level slog.Level, msg string) {
	slog.Log(context.Background(), level, msg)
	m.LastReport = &Report{Level: level, Message: msg, Time: m.App.Now()}
	m.Timers.Remove(m.ReportTimer)
	m.ReportTimer = m.Timers.Add(0, timer.Report, reportStep)
	m.tagWindowsDraw()
}

func (m *Manager) handleReportTimer(t *timer.Timer) {
	if t.ID != m.ReportTimer {
		m.Timers.Remove(t.ID)
		return
	}
	if t.Duration < ReportTimeout {
		return
	}
	m.Timers.Remove(t.ID)
	m.LastReport = nil
	m.tagWindowsDraw()
}

func (m *Manager) tagWindowsDraw() {
	for _, w := range m.Windows {
		w.Screen.DoDraw = true
	}
}
