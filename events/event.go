// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events delivered by the platform
// and by window timers, and the per-window queue that holds them
// until the main loop handles them.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/wm/timer"
)

// Event is one window event.
type Event struct {

	// Type is the type of event.
	Type Types

	// WindowID is the window the event is for.
	WindowID int

	// TimerID is the timer that sent a [Timer] event; 0 once it has been removed.
	TimerID timer.ID

	// Pos is the cursor position for [MouseMove], in window pixels.
	Pos image.Point

	// Size is the new window size for [WindowResize], in pixels.
	Size image.Point

	// Time is when the event was generated.
	Time time.Time
}

// NewTimer returns a new [Timer] event for the given window timer.
func NewTimer(windowID int, id timer.ID, t time.Time) Event {
	return Event{Type: Timer, WindowID: windowID, TimerID: id, Time: t}
}

// IsNone returns whether there is nothing to do for the event.
func (e Event) IsNone() bool {
	return e.Type == None
}

func (e Event) String() string {
	switch e.Type {
	case Timer:
		return fmt.Sprintf("%v{Window: %d, Timer: %d}", e.Type, e.WindowID, e.TimerID)
	case MouseMove:
		return fmt.Sprintf("%v{Window: %d, Pos: %v}", e.Type, e.WindowID, e.Pos)
	case WindowResize:
		return fmt.Sprintf("%v{Window: %d, Size: %v}", e.Type, e.WindowID, e.Size)
	}
	return fmt.Sprintf("%v{Window: %d}", e.Type, e.WindowID)
}
