// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package software implements [gpu.Backend] on the CPU, drawing into
// Go images with golang.org/x/image/draw. It is used headless for
// testing and by the desktop driver, which presents the resulting
// window surfaces.
package software

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/wm/gpu"
	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Backend is a [gpu.Backend] that draws into Go images.
// It is not safe for concurrent use.
type Backend struct {

	// FailOffscreen makes every NewOffscreen call fail with [gpu.ErrAllocation].
	FailOffscreen bool

	// FailViewport makes every NewViewport call fail with [gpu.ErrAllocation].
	FailViewport bool

	// Allocs is the number of offscreen surfaces and viewports allocated.
	Allocs int

	// Releases is the number of offscreen surfaces and viewports released.
	Releases int

	surface target
	stack   []*target
}

// target is one render target with its own scissor state.
type target struct {
	img       draw.Image
	scissor   image.Rectangle
	scissored bool
}

// NewBackend returns a new software backend.
func NewBackend() *Backend {
	return &Backend{}
}

var _ gpu.Backend = (*Backend)(nil)

// current returns the current render target, which may have a nil image.
func (b *Backend) current() *target {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1]
	}
	return &b.surface
}

func (b *Backend) push(img draw.Image) {
	b.stack = append(b.stack, &target{img: img})
}

func (b *Backend) pop(img draw.Image) {
	n := len(b.stack)
	if n == 0 || b.stack[n-1].img != img {
		return
	}
	b.stack = b.stack[:n-1]
}

// Bound returns the image of the current render target.
func (b *Backend) Bound() draw.Image {
	return b.current().img
}

// Scissor returns the current scissor rectangle, and whether it is enabled.
func (b *Backend) Scissor() (image.Rectangle, bool) {
	t := b.current()
	return t.scissor, t.scissored
}

// dst returns the drawing destination restricted to the scissor.
func (b *Backend) dst() draw.Image {
	t := b.current()
	if t.img == nil || !t.scissored {
		return t.img
	}
	if si, ok := t.img.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		if d, ok := si.SubImage(t.scissor).(draw.Image); ok {
			return d
		}
	}
	return t.img
}

func (b *Backend) BindSurface(surface draw.Image) {
	b.surface = target{img: surface}
	b.stack = b.stack[:0]
}

func (b *Backend) SetScissor(r image.Rectangle) {
	t := b.current()
	t.scissor = r
	t.scissored = true
}

func (b *Backend) DisableScissor() {
	b.current().scissored = false
}

func (b *Backend) Clear(c color.Color) {
	d := b.dst()
	if d == nil {
		return
	}
	xdraw.Draw(d, d.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (b *Backend) FillRect(r image.Rectangle, c color.Color) {
	d := b.dst()
	if d == nil {
		return
	}
	xdraw.Draw(d, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (b *Backend) DrawTexture(t gpu.Texture, dst, src image.Rectangle, opts gpu.DrawOptions) {
	tex, ok := t.(*Texture)
	d := b.dst()
	if !ok || tex.img == nil || d == nil || dst.Empty() || src.Empty() {
		return
	}
	var img image.Image = tex.img
	if !opts.Premultiplied {
		img = straight(tex.img)
	}
	var o *xdraw.Options
	if a := min(max(opts.Alpha, 0), 1); a < 1 {
		o = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha16{A: uint16(math32.Floor(a*0xffff + 0.5))})}
	}
	if dst.Size() == src.Size() {
		xdraw.Copy(d, dst.Min, img, src, opts.Op, o)
		return
	}
	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	if opts.Filter == gpu.Linear {
		interp = xdraw.ApproxBiLinear
	}
	interp.Scale(d, dst, img, src, opts.Op, o)
}

func (b *Backend) ReadPixels(r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(r)
	if img := b.current().img; img != nil {
		xdraw.Draw(out, r, img, r.Min, draw.Src)
	}
	return out
}

func (b *Backend) NewTexture(img image.Image) (gpu.Texture, error) {
	format := gpu.RGBA8
	if _, ok := img.(*image.RGBA64); ok {
		format = gpu.RGBA16F
	}
	t := newTexture(img.Bounds().Size(), format)
	xdraw.Draw(t.img, t.img.Bounds(), img, img.Bounds().Min, draw.Src)
	return t, nil
}

func (b *Backend) NewOffscreen(size image.Point, format gpu.TextureFormat) (gpu.Offscreen, error) {
	if b.FailOffscreen || size.X <= 0 || size.Y <= 0 {
		return nil, gpu.ErrAllocation
	}
	b.Allocs++
	return &Offscreen{b: b, tex: newTexture(size, format)}, nil
}

func (b *Backend) NewViewport(stereo bool, format gpu.TextureFormat) (gpu.Viewport, error) {
	if b.FailViewport {
		return nil, gpu.ErrAllocation
	}
	b.Allocs++
	return &Viewport{b: b, stereo: stereo, format: format}, nil
}

// straight returns the image reinterpreted as having
// non-premultiplied alpha.
func straight(img draw.Image) image.Image {
	switch m := img.(type) {
	case *image.RGBA:
		return &image.NRGBA{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect}
	case *image.RGBA64:
		return &image.NRGBA64{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect}
	}
	return img
}
