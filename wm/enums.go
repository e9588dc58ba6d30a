// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import "cogentcore.org/wm/base/enums"

// SpaceKind is the kind of editor shown in an [Area].
type SpaceKind int32

const (
	// SpaceAny matches every space kind in paint cursor filters.
	SpaceAny SpaceKind = iota - 1

	// SpaceEmpty is an area without an editor.
	SpaceEmpty

	// SpaceView3D is a 3D viewport.
	SpaceView3D

	// SpaceImage is an image editor.
	SpaceImage

	// SpaceNode is a node editor.
	SpaceNode

	// SpaceSequencer is a video sequencer.
	SpaceSequencer

	// SpaceOutliner is a tree outliner.
	SpaceOutliner

	// SpaceProperties is a property editor.
	SpaceProperties
)

var spaceKindNames = []string{"Empty", "View3D", "Image", "Node", "Sequencer", "Outliner", "Properties"}

func (k SpaceKind) String() string {
	if k == SpaceAny {
		return "Any"
	}
	return enums.String("SpaceKind", spaceKindNames, int32(k))
}

// Matches returns whether the space kind passes the given filter,
// which may be [SpaceAny].
func (k SpaceKind) Matches(filter SpaceKind) bool {
	return filter == SpaceAny || filter == k
}

// RegionKind is the role of a [Pane] inside its area.
type RegionKind int32

const (
	// RegionAny matches every region kind in paint cursor filters.
	RegionAny RegionKind = iota - 1

	// RegionWindow is the main region of an area.
	RegionWindow
	RegionHeader
	RegionChannels
	RegionTemporary
	RegionUI
	RegionTools
	RegionToolProps

	// RegionPreview is the preview region of a sequencer.
	RegionPreview
	RegionHUD
	RegionNavBar
	RegionFooter
)

var regionKindNames = []string{"Window", "Header", "Channels", "Temporary", "UI", "Tools", "ToolProps", "Preview", "HUD", "NavBar", "Footer"}

func (k RegionKind) String() string {
	if k == RegionAny {
		return "Any"
	}
	return enums.String("RegionKind", regionKindNames, int32(k))
}

// Matches returns whether the region kind passes the given filter,
// which may be [RegionAny].
func (k RegionKind) Matches(filter RegionKind) bool {
	return filter == RegionAny || filter == k
}

// Alignment is the side of its area that a pane is attached to.
// Overlapping panes aligned left or right slide in and out instead
// of fading.
type Alignment int32

const (
	AlignNone Alignment = iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight
	AlignFloat
)

var alignmentNames = []string{"None", "Top", "Bottom", "Left", "Right", "Float"}

func (a Alignment) String() string {
	return enums.String("Alignment", alignmentNames, int32(a))
}

// Eye is one of the two views of a stereo pass.
type Eye int32

const (
	EyeLeft Eye = iota
	EyeRight
)

func (e Eye) String() string {
	return enums.String("Eye", []string{"Left", "Right"}, int32(e))
}

// Stage is one step of drawing a window. Stages run in order,
// every one of them even when an earlier one could not draw.
type Stage int32

const (
	StageLayoutRefresh Stage = iota
	StagePaneOffscreenDraw
	StageOnscreenBlit
	StageOnscreenOverlay
	StageOnscreenBlend
	StageEdgeDecoration
	StageCallbackDraw
	StageFloatingPaneBlend
	StageGestureOverlay
	StageDragOverlay
	StageSoftwareCursor
	StageDone
)

var stageNames = []string{"LayoutRefresh", "PaneOffscreenDraw", "OnscreenBlit", "OnscreenOverlay", "OnscreenBlend", "EdgeDecoration", "CallbackDraw", "FloatingPaneBlend", "GestureOverlay", "DragOverlay", "SoftwareCursor", "Done"}

func (s Stage) String() string {
	return enums.String("Stage", stageNames, int32(s))
}
