// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "cogentcore.org/wm/base/enums"

// Types determines the type of a window event.
type Types int32

const (
	// None is an event with nothing to do. Timer events whose timer
	// was removed while they were queued become None.
	None Types = iota

	// Timer is sent when a window timer fires. The timer is
	// identified by [Event.TimerID].
	Timer

	// MouseMove is sent when the cursor moves over the window.
	MouseMove

	// WindowResize is sent when the window size or pixel scale changes.
	WindowResize

	// WindowMove is sent when the window moves on the screen.
	WindowMove

	// WindowActivate is sent when the window gets focus.
	WindowActivate

	// WindowDeactivate is sent when the window loses focus.
	WindowDeactivate

	// WindowExpose is sent when the window surface must be redrawn.
	WindowExpose

	// WindowClose is sent when the user asks to close the window.
	WindowClose
)

var typeNames = []string{"None", "Timer", "MouseMove", "WindowResize", "WindowMove", "WindowActivate", "WindowDeactivate", "WindowExpose", "WindowClose"}

// String returns the name of the type.
func (t Types) String() string {
	return enums.String("Types", typeNames, int32(t))
}

// IsWindow returns whether the type is a window state event.
func (t Types) IsWindow() bool {
	return t >= WindowResize && t <= WindowClose
}
