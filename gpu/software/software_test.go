// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package software

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"cogentcore.org/wm/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func newSurface(w, h int) *image.RGBA {
	s := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(s, s.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)
	return s
}

func TestOffscreenScissor(t *testing.T) {
	b := NewBackend()
	surf := newSurface(8, 8)
	b.BindSurface(surf)

	off, err := b.NewOffscreen(image.Pt(4, 4), gpu.RGBA8)
	require.NoError(t, err)
	off.Bind()
	b.SetScissor(image.Rect(0, 0, 2, 4))
	b.Clear(red)
	off.Unbind()
	assert.Equal(t, draw.Image(surf), b.Bound())

	img := off.ColorTexture().(*Texture).Image()
	assert.Equal(t, red, img.At(1, 1))
	assert.Equal(t, color.RGBA{}, img.At(3, 1))
	assert.Equal(t, black, surf.At(1, 1))

	b.DrawTexture(off.ColorTexture(), image.Rect(4, 4, 8, 8), image.Rect(0, 0, 4, 4), gpu.DrawOptions{Op: draw.Over, Alpha: 1, Premultiplied: true})
	assert.Equal(t, red, surf.At(4, 4))
	assert.Equal(t, black, surf.At(7, 4))
	assert.Equal(t, black, surf.At(0, 0))

	off.Release()
	assert.Equal(t, 1, b.Allocs)
	assert.Equal(t, 1, b.Releases)
	off.Release()
	assert.Equal(t, 1, b.Releases)
}

func TestDrawTextureScaleAndAlpha(t *testing.T) {
	b := NewBackend()
	surf := newSurface(8, 8)
	b.BindSurface(surf)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(src, src.Bounds(), image.NewUniform(green), image.Point{}, draw.Src)
	tex, err := b.NewTexture(src)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 2), tex.Size())

	b.DrawTexture(tex, image.Rect(0, 0, 8, 8), image.Rect(0, 0, 2, 2), gpu.DrawOptions{Op: draw.Src, Alpha: 1, Premultiplied: true})
	assert.Equal(t, green, surf.At(7, 7))

	b.Clear(black)
	b.DrawTexture(tex, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 2, 2), gpu.DrawOptions{Op: draw.Over, Alpha: 0.5, Premultiplied: true})
	c := surf.RGBAAt(0, 0)
	assert.InDelta(t, 127, int(c.G), 2)
	assert.Equal(t, uint8(255), c.A)

	b.SetScissor(image.Rect(0, 0, 1, 1))
	b.Clear(blue)
	b.DisableScissor()
	assert.Equal(t, blue, surf.At(0, 0))
	assert.Equal(t, c, surf.RGBAAt(1, 0))

	// alpha is clamped to [0, 1]
	b.Clear(black)
	b.DrawTexture(tex, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 2, 2), gpu.DrawOptions{Op: draw.Over, Alpha: 2, Premultiplied: true})
	assert.Equal(t, green, surf.At(0, 0))
	b.Clear(black)
	b.DrawTexture(tex, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 2, 2), gpu.DrawOptions{Op: draw.Over, Alpha: -1, Premultiplied: true})
	assert.Equal(t, black, surf.At(0, 0))
}

func TestNewTextureHDR(t *testing.T) {
	b := NewBackend()
	tex, err := b.NewTexture(image.NewRGBA64(image.Rect(0, 0, 3, 2)))
	require.NoError(t, err)
	assert.Equal(t, gpu.RGBA16F, tex.Format())
	tex.Release()
	assert.Equal(t, image.Point{}, tex.Size())
}

func TestAllocationFailure(t *testing.T) {
	b := NewBackend()
	b.FailOffscreen = true
	off, err := b.NewOffscreen(image.Pt(4, 4), gpu.RGBA8)
	assert.Nil(t, off)
	assert.ErrorIs(t, err, gpu.ErrAllocation)

	b.FailOffscreen = false
	_, err = b.NewOffscreen(image.Pt(0, 4), gpu.RGBA8)
	assert.ErrorIs(t, err, gpu.ErrAllocation)

	b.FailViewport = true
	_, err = b.NewViewport(true, gpu.RGBA8)
	assert.ErrorIs(t, err, gpu.ErrAllocation)
	assert.Equal(t, 0, b.Allocs)
}

func TestViewportResize(t *testing.T) {
	b := NewBackend()
	vp, err := b.NewViewport(false, gpu.RGBA16F)
	require.NoError(t, err)
	vp.Bind(0, image.Rect(10, 10, 30, 20))
	assert.Equal(t, image.Pt(20, 10), vp.Size())
	b.Clear(red)
	vp.Unbind()
	assert.Nil(t, b.Bound())

	vp.Bind(1, image.Rect(0, 0, 40, 40))
	assert.Equal(t, image.Pt(40, 40), vp.ColorTexture(1).Size())
	assert.Equal(t, gpu.RGBA16F, vp.ColorTexture(0).Format())
	vp.Unbind()
	vp.Release()
	assert.Equal(t, 1, b.Releases)
}

func drawStereo(t *testing.T, b *Backend, s gpu.StereoSettings) image.Image {
	vp, err := b.NewViewport(true, gpu.RGBA8)
	require.NoError(t, err)
	r := image.Rect(0, 0, 2, 2)
	vp.Bind(0, r)
	b.Clear(red)
	vp.Unbind()
	vp.Bind(1, r)
	b.Clear(color.RGBA{0, 255, 255, 255})
	vp.Unbind()
	vp.StereoComposite(s)
	return vp.ColorTexture(0).(*Texture).Image()
}

func TestStereoCompositeAnaglyph(t *testing.T) {
	img := drawStereo(t, NewBackend(), gpu.StereoSettings{Display: gpu.Anaglyph, Anaglyph: gpu.RedCyan})
	c := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	img = drawStereo(t, NewBackend(), gpu.StereoSettings{Display: gpu.Anaglyph, Anaglyph: gpu.YellowBlue})
	c = color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, c)
}

func TestStereoCompositeInterlace(t *testing.T) {
	cyan := color.RGBA{0, 255, 255, 255}
	at := func(img image.Image, x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}
	img := drawStereo(t, NewBackend(), gpu.StereoSettings{Display: gpu.Interlace, Interlace: gpu.RowInterlace})
	assert.Equal(t, red, at(img, 0, 0))
	assert.Equal(t, cyan, at(img, 0, 1))

	img = drawStereo(t, NewBackend(), gpu.StereoSettings{Display: gpu.Interlace, Interlace: gpu.ColumnInterlace, SwapEyes: true})
	assert.Equal(t, cyan, at(img, 0, 0))
	assert.Equal(t, red, at(img, 1, 0))

	img = drawStereo(t, NewBackend(), gpu.StereoSettings{Display: gpu.Interlace, Interlace: gpu.CheckerboardInterlace})
	assert.Equal(t, red, at(img, 1, 1))
	assert.Equal(t, cyan, at(img, 1, 0))
}
