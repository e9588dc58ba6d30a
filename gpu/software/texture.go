// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package software

import (
	"image"
	"image/draw"

	"cogentcore.org/wm/gpu"
)

// Texture is a [gpu.Texture] backed by an [image.RGBA], or by an
// [image.RGBA64] for [gpu.RGBA16F].
type Texture struct {
	img    draw.Image
	format gpu.TextureFormat
}

func newTexture(size image.Point, format gpu.TextureFormat) *Texture {
	r := image.Rectangle{Max: size}
	t := &Texture{format: format}
	if format == gpu.RGBA16F {
		t.img = image.NewRGBA64(r)
	} else {
		t.img = image.NewRGBA(r)
	}
	return t
}

// Image returns the pixels of the texture, or nil after Release.
func (t *Texture) Image() draw.Image {
	return t.img
}

func (t *Texture) Size() image.Point {
	if t.img == nil {
		return image.Point{}
	}
	return t.img.Bounds().Size()
}

func (t *Texture) Format() gpu.TextureFormat {
	return t.format
}

func (t *Texture) Release() {
	t.img = nil
}

// Offscreen is a [gpu.Offscreen] drawing into a [Texture].
type Offscreen struct {
	b   *Backend
	tex *Texture
}

func (o *Offscreen) Size() image.Point { return o.tex.Size() }
func (o *Offscreen) Format() gpu.TextureFormat { return o.tex.format }
func (o *Offscreen) ColorTexture() gpu.Texture { return o.tex }
func (o *Offscreen) Bind() { o.b.push(o.tex.img) }
func (o *Offscreen) Unbind() { o.b.pop(o.tex.img) }

func (o *Offscreen) Release() {
	if o.tex.img == nil {
		return
	}
	o.b.pop(o.tex.img)
	o.tex.Release()
	o.b.Releases++
}
