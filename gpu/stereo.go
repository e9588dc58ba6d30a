// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/wm/base/enums"

// StereoDisplay is the way the two eye views of a stereo window
// are presented.
type StereoDisplay int32

const (
	// PageFlip presents the eyes in separate hardware back buffers.
	PageFlip StereoDisplay = iota

	// Anaglyph combines the eyes with complementary color filters.
	Anaglyph

	// Interlace alternates the eyes by row, column or checkerboard.
	Interlace

	// SideBySide draws the eyes in the left and right halves of the window.
	SideBySide

	// TopBottom draws the eyes in the top and bottom halves of the window.
	TopBottom
)

// AnaglyphType is the color filter pair used by [Anaglyph].
type AnaglyphType int32

const (
	RedCyan AnaglyphType = iota
	GreenMagenta
	YellowBlue
)

// InterlaceType is the pattern used by [Interlace].
type InterlaceType int32

const (
	RowInterlace InterlaceType = iota
	ColumnInterlace
	CheckerboardInterlace
)

// StereoSettings are the stereo presentation settings of a window.
type StereoSettings struct {

	// Display is how the two views are presented.
	Display StereoDisplay

	// Anaglyph is the color filter pair for [Anaglyph].
	Anaglyph AnaglyphType

	// Interlace is the pattern for [Interlace].
	Interlace InterlaceType

	// SwapEyes swaps the eyes of the interlace pattern.
	SwapEyes bool

	// CrossEyed puts the left eye on the right for [SideBySide].
	CrossEyed bool
}

var (
	stereoDisplayNames = []string{"PageFlip", "Anaglyph", "Interlace", "SideBySide", "TopBottom"}
	anaglyphNames      = []string{"RedCyan", "GreenMagenta", "YellowBlue"}
	interlaceNames     = []string{"RowInterlace", "ColumnInterlace", "CheckerboardInterlace"}
)

func (d StereoDisplay) String() string {
	return enums.String("StereoDisplay", stereoDisplayNames, int32(d))
}

// MarshalText implements [encoding.TextMarshaler].
func (d StereoDisplay) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StereoDisplay) UnmarshalText(text []byte) error {
	v, err := enums.Parse("StereoDisplay", stereoDisplayNames, text)
	*d = StereoDisplay(v)
	return err
}

// IsSplit returns whether the eyes are drawn into two halves of the window.
func (d StereoDisplay) IsSplit() bool {
	return d == SideBySide || d == TopBottom
}

func (a AnaglyphType) String() string {
	return enums.String("AnaglyphType", anaglyphNames, int32(a))
}

// MarshalText implements [encoding.TextMarshaler].
func (a AnaglyphType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *AnaglyphType) UnmarshalText(text []byte) error {
	v, err := enums.Parse("AnaglyphType", anaglyphNames, text)
	*a = AnaglyphType(v)
	return err
}

func (it InterlaceType) String() string {
	return enums.String("InterlaceType", interlaceNames, int32(it))
}

// MarshalText implements [encoding.TextMarshaler].
func (it InterlaceType) MarshalText() ([]byte, error) { return []byte(it.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (it *InterlaceType) UnmarshalText(text []byte) error {
	v, err := enums.Parse("InterlaceType", interlaceNames, text)
	*it = InterlaceType(v)
	return err
}
