// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timer

import "cogentcore.org/wm/base/enums"

// Kind is the event kind a timer delivers when it fires.
type Kind int32

const (
	// Window timers are delivered to the event queue of their window.
	Window Kind = iota

	// Jobs timers poll running background jobs.
	Jobs

	// Autosave timers trigger a periodic save.
	Autosave

	// Notifier timers push their Data as a notifier when they fire.
	Notifier

	// RegionBlend timers drive pane fade and slide animations.
	RegionBlend

	// Report timers expire the status bar report banner.
	Report
)

var kindNames = []string{"Window", "Jobs", "Autosave", "Notifier", "RegionBlend", "Report"}

// String returns the name of the kind.
func (k Kind) String() string {
	return enums.String("Kind", kindNames, int32(k))
}
