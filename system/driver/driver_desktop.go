// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

// Package driver provides the platform [system.App] for the current build.
package driver

import (
	"testing"

	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/desktop"
	"cogentcore.org/wm/system/driver/offscreen"
)

// NewApp returns the desktop app, or the offscreen app
// when testing or when nogui is set.
func NewApp(nogui bool) (system.App, error) {
	if nogui || testing.Testing() {
		return offscreen.NewApp(), nil
	}
	return desktop.NewApp()
}
