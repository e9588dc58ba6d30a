// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"log/slog"
	"time"

	"cogentcore.org/wm/base/enums"
	"cogentcore.org/wm/timer"
)

// NotifierCategory is the kind of change a [Notifier] reports.
type NotifierCategory int32

const (
	// NotifyWindow redraws the whole window.
	NotifyWindow NotifierCategory = iota

	// NotifyScreen requests a layout refresh of the screen.
	NotifyScreen

	// NotifySpace reports a change of the editor shown in an area.
	NotifySpace

	// NotifyScene reports a change of the displayed document.
	NotifyScene

	// NotifyObject reports a change of one item of the document.
	NotifyObject
)

func (c NotifierCategory) String() string {
	return enums.String("NotifierCategory", []string{"NotifyWindow", "NotifyScreen", "NotifySpace", "NotifyScene", "NotifyObject"}, int32(c))
}

// Notifier reports a change to the panes that listen for it.
type Notifier struct {

	// Category is the kind of change.
	Category NotifierCategory

	// WindowID is the window to notify, 0 for every window.
	WindowID int

	// Data is a subtype within the category.
	Data uint32

	// Reference is the changed item, if any. It must be comparable,
	// usually a pointer.
	Reference any
}

func (n *Notifier) equal(o *Notifier) bool {
	return n.Category == o.Category && n.WindowID == o.WindowID && n.Data == o.Data && n.Reference == o.Reference
}

// AddNotifier queues the notifier for the next main loop iteration.
// A notifier equal to one already queued is dropped.
func (m *Manager) AddNotifier(n *Notifier) {
	for _, e := range m.notifiers {
		if e.equal(n) {
			return
		}
	}
	m.notifiers = append(m.notifiers, n)
}

// AddNotifierTimer adds a timer that queues the notifier every step,
// for the given window or 0 for none. The notifier stays owned by the
// caller.
func (m *Manager) AddNotifierTimer(windowID int, n *Notifier, step time.Duration) timer.ID {
	return m.Timers.AddNotifier(windowID, n, step)
}

// notifierTimer queues the notifier of a fired notifier timer; its data
// is a *[Notifier], or a [NotifierCategory] for the window of the timer.
func (m *Manager) notifierTimer(t *timer.Timer) {
	switch d := t.Data.(type) {
	case *Notifier:
		n := *d
		m.AddNotifier(&n)
	case NotifierCategory:
		m.AddNotifier(&Notifier{Category: d, WindowID: t.WindowID})
	default:
		slog.Debug("wm: notifier timer without notifier", "timer", t.ID)
	}
}

// handleNotifiers delivers the queued notifiers. Window notifiers tag
// the window for redraw; the others are passed to every pane type that
// is a [Listener].
func (m *Manager) handleNotifiers() {
	if len(m.notifiers) == 0 {
		return
	}
	ns := m.notifiers
	m.notifiers = nil
	for _, n := range ns {
		if m.Settings.Debug.EventTrace {
			slog.Debug("wm: notifier", "category", n.Category, "window", n.WindowID, "data", n.Data)
		}
		for _, w := range m.Windows {
			if n.WindowID != 0 && n.WindowID != w.ID {
				continue
			}
			switch n.Category {
			case NotifyWindow:
				w.TagRedraw()
				continue
			case NotifyScreen:
				w.Screen.DoRefresh = true
			}
			w.Screen.EachPane(func(a *Area, p *Pane) bool {
				if l, ok := p.Type.(Listener); ok {
					l.Listen(w, a, p, n)
				}
				return true
			})
		}
	}
}
