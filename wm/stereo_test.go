// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/wm/gpu"
	"cogentcore.org/wm/gpu/software"
	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStereoHalf(t *testing.T) {
	sz := image.Pt(200, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 100), stereoHalf(gpu.SideBySide, false, 0, sz))
	assert.Equal(t, image.Rect(100, 0, 200, 100), stereoHalf(gpu.SideBySide, false, 1, sz))
	assert.Equal(t, image.Rect(100, 0, 200, 100), stereoHalf(gpu.SideBySide, true, 0, sz))
	assert.Equal(t, image.Rect(0, 0, 100, 100), stereoHalf(gpu.SideBySide, true, 1, sz))
	assert.Equal(t, image.Rect(0, 0, 200, 50), stereoHalf(gpu.TopBottom, false, 0, sz))
	assert.Equal(t, image.Rect(0, 50, 200, 100), stereoHalf(gpu.TopBottom, true, 1, sz))
}

func TestIsStereo(t *testing.T) {
	m, _, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	assert.False(t, w.IsStereo())
	w.StereoEnabled = true
	w.Stereo.Display = gpu.Anaglyph
	assert.True(t, w.IsStereo())
	w.Stereo.Display = gpu.SideBySide
	assert.False(t, w.IsStereo(), "split displays need a fullscreen window")
	ow.Fullscreen = true
	assert.True(t, w.IsStereo())
}

// stereoCallback records the view of every call and fills the window
// with red for the left eye and blue for the right eye.
func stereoCallback(views *[]int) func(dc *DrawContext) {
	return func(dc *DrawContext) {
		*views = append(*views, dc.View)
		c := red
		if dc.View == 1 {
			c = blue
		}
		dc.FillRect(dc.Rect, c)
	}
}

func TestStereoSplitFailure(t *testing.T) {
	m, _, be := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.SideBySide
	ow.Fullscreen = true
	be.FailOffscreen = true

	var views []int
	w.AddDrawCallback(stereoCallback(&views))
	m.DrawUpdate()
	assert.Equal(t, []int{0}, views)
	require.NotNil(t, m.LastReport)
	assert.Equal(t, 1, ow.Swaps)
	assert.Equal(t, red, ow.Front().RGBAAt(150, 50))
}

func TestStereoSideBySide(t *testing.T) {
	m, _, be := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.SideBySide
	ow.Fullscreen = true

	var views []int
	w.AddDrawCallback(stereoCallback(&views))
	m.DrawUpdate()
	assert.Equal(t, []int{0, 1}, views)
	front := ow.Front()
	l, r := front.RGBAAt(50, 50), front.RGBAAt(150, 50)
	assert.Greater(t, l.R, uint8(200))
	assert.Less(t, l.B, uint8(50))
	assert.Greater(t, r.B, uint8(200))
	assert.Less(t, r.R, uint8(50))

	// the whole window surface is kept for the next draw
	require.NotNil(t, w.stereoSurface)
	allocs := be.Allocs
	w.Screen.DoDraw = true
	m.DrawUpdate()
	assert.Equal(t, allocs, be.Allocs)

	ow.Fullscreen = false
	views = nil
	w.Screen.DoDraw = true
	m.DrawUpdate()
	assert.Equal(t, []int{-1}, views)
}

func TestStereoPageFlip(t *testing.T) {
	m, _, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.PageFlip

	var views []int
	w.AddDrawCallback(stereoCallback(&views))
	m.DrawUpdate()
	assert.Equal(t, []int{-1}, views, "without hardware stereo page flip falls back to anaglyph")
	assert.Equal(t, gpu.Anaglyph, m.stereoDisplay(w))
	assert.True(t, m.stereoFallbackLogged)

	app2 := offscreen.NewApp()
	app2.Caps |= system.HardwareStereo
	m2 := NewManager(app2, software.NewBackend())
	m2.Settings.SimulateEvents = true
	w2, err := m2.NewWindow(&system.NewWindowOptions{Size: image.Pt(200, 100), Stereo: true})
	require.NoError(t, err)
	w2.Stereo.Display = gpu.PageFlip
	views = nil
	w2.AddDrawCallback(stereoCallback(&views))
	m2.DrawUpdate()
	assert.Equal(t, []int{1, 0}, views)
	assert.Equal(t, blue, w2.System.Surface(system.BackRight).At(100, 50))
	assert.Equal(t, red, w2.System.Surface(system.BackLeft).At(100, 50))
}

func TestStereoPaneAnaglyph(t *testing.T) {
	m, _, _ := newTestManager()
	w, ow := newTestWindow(t, m, image.Pt(200, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.Anaglyph
	w.Stereo.Anaglyph = gpu.RedCyan
	space := &ImageSpace{}
	_, p, tp := addFullPane(w, space, RegionWindow, red)
	tp.fill[1] = cyan

	m.DrawUpdate()
	assert.Equal(t, []int{0, 1}, tp.views)
	assert.Equal(t, EyeRight, space.Eye)
	require.NotNil(t, p.DrawBuffer)
	assert.Equal(t, ViewportBuffer, p.DrawBuffer.Kind)
	assert.True(t, p.DrawBuffer.Stereo)
	// red from the left eye, green and blue from the right eye
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, ow.Front().RGBAAt(100, 50))
}

func TestStereoMonoPane(t *testing.T) {
	m, _, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(200, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.Anaglyph
	_, p, tp := addFullPane(w, &View3DSpace{}, RegionWindow, red)

	m.DrawUpdate()
	assert.Equal(t, []int{0}, tp.views, "3D views without a camera are drawn once")
	assert.False(t, p.DrawBuffer.Stereo)
}

func TestSetStereoEye(t *testing.T) {
	tests := []struct {
		name   string
		space  Space
		kind   RegionKind
		stereo bool
		want   Space
	}{
		{"image window", &ImageSpace{}, RegionWindow, true, &ImageSpace{Eye: EyeRight}},
		{"image header", &ImageSpace{}, RegionHeader, false, &ImageSpace{}},
		{"image preview", &ImageSpace{}, RegionPreview, false, &ImageSpace{}},
		{"3d camera", &View3DSpace{HasCamera: true}, RegionWindow, true,
			&View3DSpace{HasCamera: true, Eye: EyeRight}},
		{"3d camera background", &View3DSpace{HasCamera: true, HasBackground: true}, RegionWindow, true,
			&View3DSpace{HasCamera: true, HasBackground: true, Eye: EyeRight, BackgroundEye: EyeRight}},
		{"3d no camera", &View3DSpace{HasBackground: true}, RegionWindow, false,
			&View3DSpace{HasBackground: true}},
		{"3d mono engine", &View3DSpace{HasCamera: true, NoStereoEngine: true}, RegionWindow, false,
			&View3DSpace{HasCamera: true, NoStereoEngine: true}},
		{"3d tools", &View3DSpace{HasCamera: true}, RegionTools, false, &View3DSpace{HasCamera: true}},
		{"node backdrop", &NodeSpace{Backdrop: true}, RegionWindow, true,
			&NodeSpace{Backdrop: true, ViewerEye: EyeRight}},
		{"node no backdrop", &NodeSpace{}, RegionWindow, false, &NodeSpace{}},
		{"node preview", &NodeSpace{Backdrop: true}, RegionPreview, false, &NodeSpace{Backdrop: true}},
		{"sequencer preview", &SequencerSpace{}, RegionPreview, true, &SequencerSpace{Eye: EyeRight}},
		{"sequencer backdrop", &SequencerSpace{Backdrop: true}, RegionWindow, true,
			&SequencerSpace{Backdrop: true, Eye: EyeRight}},
		{"sequencer no backdrop", &SequencerSpace{}, RegionWindow, false, &SequencerSpace{Eye: EyeRight}},
		{"sequencer channels", &SequencerSpace{Backdrop: true}, RegionChannels, false, &SequencerSpace{Backdrop: true}},
		{"basic", &BasicSpace{SpaceKind: SpaceView3D}, RegionWindow, false, &BasicSpace{SpaceKind: SpaceView3D}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Area{Space: tt.space}
			p := &Pane{Kind: tt.kind}
			assert.Equal(t, tt.stereo, setStereoEye(a, p, EyeRight))
			assert.Equal(t, tt.want, a.Space)
		})
	}
}

func TestStereoEyePerView(t *testing.T) {
	m, _, _ := newTestManager()
	w, _ := newTestWindow(t, m, image.Pt(100, 100))
	w.StereoEnabled = true
	w.Stereo.Display = gpu.Anaglyph
	sp := &View3DSpace{HasCamera: true, HasBackground: true}
	var eyes []Eye
	a := w.Screen.AddArea(image.Rect(0, 0, 100, 100), sp)
	a.AddPane("view", RegionWindow, PaneFunc(func(dc *DrawContext) {
		assert.Equal(t, sp.Eye, sp.BackgroundEye)
		eyes = append(eyes, sp.Eye)
	}), image.Rect(0, 0, 100, 100))

	m.DrawUpdate()
	assert.Equal(t, []Eye{EyeLeft, EyeRight}, eyes)
}
