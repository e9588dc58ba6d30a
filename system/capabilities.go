// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "strings"

// Capabilities are the bit flags of optional platform features.
type Capabilities int64 //enums:bitflag

const (
	// CursorWarp means the platform can move the cursor, so wrapped
	// and hidden grabs can use the native cursor.
	CursorWarp Capabilities = 1 << iota

	// WindowPosition means windows can be positioned by the app.
	WindowPosition

	// ClipboardPrimary means there is a primary selection clipboard.
	ClipboardPrimary

	// GPUReadFrontBuffer means the front buffer of a window can be read.
	GPUReadFrontBuffer

	// CursorRGBA means native cursors can be full color.
	CursorRGBA

	// HardwareStereo means windows can have left and right back buffers.
	HardwareStereo
)

var capabilityNames = []string{"CursorWarp", "WindowPosition", "ClipboardPrimary", "GPUReadFrontBuffer", "CursorRGBA", "HardwareStereo"}

// Has returns whether all of the given flags are set.
func (c Capabilities) Has(f Capabilities) bool {
	return c&f == f
}

// String returns the names of the set flags joined by "|".
func (c Capabilities) String() string {
	var names []string
	for i, n := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}
