// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/wm/base/enums"

// TextureFormat is the pixel format of a render target or texture.
type TextureFormat int32

const (
	// RGBA8 is 8 bits per channel, premultiplied alpha.
	RGBA8 TextureFormat = iota

	// RGBA16F is 16 bits per channel, used on displays
	// with extended dynamic range.
	RGBA16F
)

// FormatFor returns the render target format for a display
// with or without extended dynamic range support.
func FormatFor(hdr bool) TextureFormat {
	if hdr {
		return RGBA16F
	}
	return RGBA8
}

// String returns the name of the format.
func (f TextureFormat) String() string {
	return enums.String("TextureFormat", []string{"RGBA8", "RGBA16F"}, int32(f))
}

// BytesPerPixel returns the storage size of one pixel.
func (f TextureFormat) BytesPerPixel() int {
	if f == RGBA16F {
		return 8
	}
	return 4
}
