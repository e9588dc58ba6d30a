// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the logic shared by the platform drivers.
package base

import (
	"slices"
	"sync"

	"cogentcore.org/wm/events"
	"cogentcore.org/wm/system"
)

// AppMulti contains the data and logic common to all multi-window
// implementations of [system.App] (desktop and offscreen): the list
// of windows, window id assignment and the pending event list.
// The driver App type should embed it.
type AppMulti[W system.Window] struct {

	// Mu protects the windows and pending events.
	Mu sync.Mutex

	// Windows are the windows associated with the app
	Windows []W

	// Pending are the events collected but not yet dispatched
	Pending []events.Event

	lastID int
}

// NextWindowID returns a new unique window id, starting at 1.
func (a *AppMulti[W]) NextWindowID() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.lastID++
	return a.lastID
}

// AddWindow adds the given window to the app's list of windows.
func (a *AppMulti[W]) AddWindow(w W) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = append(a.Windows, w)
}

// RemoveWindow removes the given Window from the app's list of windows.
// It does not actually close it; see [system.Window.Close] for that.
func (a *AppMulti[W]) RemoveWindow(w system.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = slices.DeleteFunc(a.Windows, func(ew W) bool {
		return system.Window(ew) == w
	})
}

// WindowByID returns the window with the given id.
func (a *AppMulti[W]) WindowByID(id int) (W, bool) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.ID() == id {
			return w, true
		}
	}
	var zero W
	return zero, false
}

func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

// Send adds a platform event to the pending list.
func (a *AppMulti[W]) Send(ev events.Event) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Pending = append(a.Pending, ev)
}

// HasPending returns whether any event is pending.
func (a *AppMulti[W]) HasPending() bool {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Pending) > 0
}

// DispatchEvents passes every pending event to fn in order.
// Events sent by fn are dispatched on the next call.
func (a *AppMulti[W]) DispatchEvents(fn func(ev events.Event)) {
	a.Mu.Lock()
	evs := a.Pending
	a.Pending = nil
	a.Mu.Unlock()
	for _, ev := range evs {
		fn(ev)
	}
}
