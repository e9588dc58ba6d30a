// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the graphics backend used by the window manager
// to render panes into offscreen surfaces and viewport targets and to
// composite them onto window surfaces. See the software subpackage for
// an implementation on Go images.
package gpu

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/wm/base/errors"
)

// ErrAllocation is returned when a render target or texture
// cannot be allocated.
var ErrAllocation = errors.New("gpu: allocation failed")

// Filter is the texture sampling filter used when drawing a texture
// at a different size.
type Filter int32

const (
	// Nearest samples the nearest texel.
	Nearest Filter = iota

	// Linear interpolates between texels.
	Linear
)

// Texture is a color image that can be drawn with [Drawer.DrawTexture].
type Texture interface {

	// Size returns the size of the texture in pixels.
	Size() image.Point

	// Format returns the pixel format.
	Format() TextureFormat

	// Release frees the texture. It must not be used afterward.
	Release()
}

// Offscreen is a color-only render target without depth or
// multisampling. While bound, drawing is restricted to its bounds.
type Offscreen interface {
	Size() image.Point
	Format() TextureFormat

	// Bind makes the surface the current render target.
	Bind()

	// Unbind restores the previous render target.
	Unbind()

	// ColorTexture returns the color attachment.
	ColorTexture() Texture

	// Release frees the surface.
	Release()
}

// Viewport is a full render target with one view, or two
// (left and right eye) when it is stereo. It sizes itself to
// the rectangle given to Bind.
type Viewport interface {

	// IsStereo returns whether the viewport has two views.
	IsStereo() bool

	// Size returns the current size of the views.
	Size() image.Point

	// Format returns the pixel format.
	Format() TextureFormat

	// Bind makes the given view the current render target,
	// resizing the views to the size of rect if needed.
	// Drawing is in coordinates local to rect.
	Bind(view int, rect image.Rectangle)

	// Unbind restores the previous render target.
	Unbind()

	// ColorTexture returns the color texture of the given view.
	ColorTexture(view int) Texture

	// StereoComposite combines both views into view 0 according
	// to the anaglyph or interlace settings. Other displays need the
	// whole window and leave the views unchanged.
	StereoComposite(s StereoSettings)

	// Release frees the viewport.
	Release()
}

// DrawOptions are the options for [Drawer.DrawTexture].
type DrawOptions struct {

	// Op is [draw.Src] to replace the destination or [draw.Over] to blend.
	Op draw.Op

	// Alpha is a uniform opacity multiplied with the texture, in [0, 1].
	Alpha float32

	// Premultiplied means the texture colors are premultiplied by alpha.
	Premultiplied bool

	// Filter is used when the source and destination sizes differ.
	Filter Filter
}

// Drawer draws onto the current render target.
type Drawer interface {

	// Clear sets every pixel inside the scissor to the given color.
	Clear(c color.Color)

	// SetScissor restricts drawing to the given rectangle.
	SetScissor(r image.Rectangle)

	// DisableScissor removes the drawing restriction.
	DisableScissor()

	// FillRect blends a solid color over the given rectangle.
	FillRect(r image.Rectangle, c color.Color)

	// DrawTexture draws the src rectangle of the texture into dst.
	DrawTexture(t Texture, dst, src image.Rectangle, opts DrawOptions)
}

// Backend creates render targets and textures and draws onto them.
type Backend interface {
	Drawer

	// BindSurface makes the given window surface the render target
	// used when no offscreen surface or viewport is bound.
	BindSurface(surface draw.Image)

	// NewOffscreen returns a new offscreen surface, or
	// [ErrAllocation] if it cannot be allocated.
	NewOffscreen(size image.Point, format TextureFormat) (Offscreen, error)

	// NewViewport returns a new viewport target.
	NewViewport(stereo bool, format TextureFormat) (Viewport, error)

	// NewTexture returns a new texture holding a copy of the image.
	NewTexture(img image.Image) (Texture, error)

	// ReadPixels returns a copy of the given rectangle of the
	// current render target.
	ReadPixels(r image.Rectangle) *image.RGBA
}
