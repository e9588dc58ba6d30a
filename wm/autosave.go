// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"log/slog"
	"time"

	"cogentcore.org/wm/timer"
)

// autosaveRetry is how soon an autosave is tried again when the
// [Autosaver] is busy.
const autosaveRetry = 10 * time.Millisecond

// Autosaver saves the open document for crash recovery.
type Autosaver interface {

	// Busy returns whether the document cannot be saved right now,
	// for example during an interactive edit.
	Busy() bool

	// Autosave saves the document.
	Autosave() error
}

// SetAutosaver sets the autosaver and starts the autosave timer
// if autosaving is enabled in the settings.
func (m *Manager) SetAutosaver(a Autosaver) {
	m.Autosaver = a
	if a == nil {
		m.autosaveEnd()
		return
	}
	m.autosaveBegin(time.Duration(m.Settings.AutosaveInterval))
}

// AutosaveScheduled returns whether the last autosave failed, so that
// it should be done at the next opportunity with [Manager.AutosaveNow].
func (m *Manager) AutosaveScheduled() bool {
	return m.autosaveScheduled
}

// AutosaveNow saves the document right away and restarts the
// autosave timer.
func (m *Manager) AutosaveNow() error {
	if m.Autosaver == nil {
		return nil
	}
	err := m.Autosaver.Autosave()
	m.autosaveBegin(time.Duration(m.Settings.AutosaveInterval))
	if err != nil {
		slog.Error("wm: autosave failed", "err", err)
		m.autosaveScheduled = true
		return err
	}
	m.autosaveScheduled = false
	return nil
}

// autosaveBegin restarts the autosave timer with the given interval.
func (m *Manager) autosaveBegin(d time.Duration) {
	m.autosaveEnd()
	if m.Settings.Autosave && m.Autosaver != nil {
		m.autosaveID = m.Timers.Add(0, timer.Autosave, d)
	}
}

func (m *Manager) autosaveEnd() {
	if m.autosaveID != 0 {
		m.Timers.Remove(m.autosaveID)
		m.autosaveID = 0
	}
}

// handleAutosaveTimer saves the document, unless the autosaver is busy,
// in which case it tries again shortly.
func (m *Manager) handleAutosaveTimer(t *timer.Timer) {
	if t.ID != m.autosaveID {
		m.Timers.Remove(t.ID)
		return
	}
	m.autosaveEnd()
	if m.Autosaver == nil {
		return
	}
	if m.Autosaver.Busy() {
		m.autosaveBegin(autosaveRetry)
		return
	}
	m.autosaveScheduled = false
	if err := m.Autosaver.Autosave(); err != nil {
		slog.Error("wm: autosave failed", "err", err)
		m.autosaveScheduled = true
	}
	m.autosaveBegin(time.Duration(m.Settings.AutosaveInterval))
}
