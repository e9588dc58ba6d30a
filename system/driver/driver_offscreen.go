// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

// Package driver provides the platform [system.App] for the current build.
package driver

import (
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/offscreen"
)

// NewApp returns the offscreen app, whatever nogui is.
func NewApp(nogui bool) (system.App, error) {
	return offscreen.NewApp(), nil
}
