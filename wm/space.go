// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// Space is the editor state of an [Area]. The stereo eye of the
// editors that support stereo drawing lives in their space.
type Space interface {
	Kind() SpaceKind
}

// BasicSpace is a [Space] of any kind without stereo support.
type BasicSpace struct {
	SpaceKind SpaceKind
}

func (s *BasicSpace) Kind() SpaceKind { return s.SpaceKind }

// ImageSpace is the space of an image editor.
type ImageSpace struct {

	// Eye is the eye currently being drawn.
	Eye Eye
}

func (s *ImageSpace) Kind() SpaceKind { return SpaceImage }

// View3DSpace is the space of a 3D viewport.
type View3DSpace struct {

	// HasCamera is whether the view looks through a camera.
	// Only camera views are drawn in stereo.
	HasCamera bool

	// NoStereoEngine is set when the render engine of the view
	// cannot draw stereo.
	NoStereoEngine bool

	// Eye is the eye currently being drawn.
	Eye Eye

	// HasBackground is whether the view draws a background image.
	HasBackground bool

	// BackgroundEye is the eye of the background image.
	BackgroundEye Eye
}

func (s *View3DSpace) Kind() SpaceKind { return SpaceView3D }

// NodeSpace is the space of a node editor.
type NodeSpace struct {

	// Backdrop is whether the compositor backdrop is shown.
	Backdrop bool

	// ViewerEye is the eye of the viewer image of the backdrop.
	ViewerEye Eye
}

func (s *NodeSpace) Kind() SpaceKind { return SpaceNode }

// SequencerSpace is the space of a video sequencer.
type SequencerSpace struct {

	// Backdrop is whether the preview is drawn behind the strips.
	Backdrop bool

	// Eye is the eye currently being drawn.
	Eye Eye
}

func (s *SequencerSpace) Kind() SpaceKind { return SpaceSequencer }

// setStereoEye sets the eye to draw for the pane in the given area.
// It returns whether the pane draws in stereo; panes that do not
// are drawn mono.
func setStereoEye(a *Area, p *Pane, eye Eye) bool {
	if p.Kind != RegionWindow && p.Kind != RegionPreview {
		return false
	}
	switch s := a.Space.(type) {
	case *ImageSpace:
		if p.Kind == RegionWindow {
			s.Eye = eye
			return true
		}
	case *View3DSpace:
		if p.Kind == RegionWindow && s.HasCamera && !s.NoStereoEngine {
			s.Eye = eye
			if s.HasBackground {
				s.BackgroundEye = eye
			}
			return true
		}
	case *NodeSpace:
		if p.Kind == RegionWindow && s.Backdrop {
			s.ViewerEye = eye
			return true
		}
	case *SequencerSpace:
		s.Eye = eye
		if p.Kind == RegionPreview {
			return true
		}
		return s.Backdrop
	}
	return false
}

// usesViewport returns whether the pane draws into a viewport target
// instead of an offscreen surface.
func usesViewport(a *Area, p *Pane) bool {
	switch a.SpaceKind() {
	case SpaceView3D, SpaceImage, SpaceNode:
		return p.Kind == RegionWindow
	case SpaceSequencer:
		return p.Kind == RegionWindow || p.Kind == RegionPreview
	}
	return false
}
