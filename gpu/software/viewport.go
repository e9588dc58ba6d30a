// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package software

import (
	"image"
	"image/color"

	"cogentcore.org/wm/gpu"
)

// Viewport is a [gpu.Viewport] with one or two views, each a [Texture].
type Viewport struct {
	b        *Backend
	stereo   bool
	format   gpu.TextureFormat
	size     image.Point
	views    [2]*Texture
	bound    int
	released bool
}

func (v *Viewport) IsStereo() bool { return v.stereo }
func (v *Viewport) Size() image.Point { return v.size }
func (v *Viewport) Format() gpu.TextureFormat { return v.format }

func (v *Viewport) view(view int) int {
	if view < 0 || view > 1 || !v.stereo {
		return 0
	}
	return view
}

// Bind resizes the views to rect when its size changed and binds one.
func (v *Viewport) Bind(view int, rect image.Rectangle) {
	if v.released {
		return
	}
	if sz := rect.Size(); sz != v.size {
		v.size = sz
		v.views = [2]*Texture{}
	}
	vi := v.view(view)
	if v.views[vi] == nil {
		v.views[vi] = newTexture(v.size, v.format)
	}
	v.bound = vi
	v.b.push(v.views[vi].img)
}

func (v *Viewport) Unbind() {
	if t := v.views[v.bound]; t != nil {
		v.b.pop(t.img)
	}
}

func (v *Viewport) ColorTexture(view int) gpu.Texture {
	t := v.views[v.view(view)]
	if t == nil {
		return nil
	}
	return t
}

// StereoComposite writes the combination of both eyes into view 0.
func (v *Viewport) StereoComposite(s gpu.StereoSettings) {
	if s.Display != gpu.Anaglyph && s.Display != gpu.Interlace {
		return
	}
	left, right := v.views[0], v.views[1]
	if !v.stereo || left == nil || right == nil {
		return
	}
	r := left.img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			l := color.RGBA64Model.Convert(left.img.At(x, y)).(color.RGBA64)
			rt := color.RGBA64Model.Convert(right.img.At(x, y)).(color.RGBA64)
			left.img.Set(x, y, composite(s, x, y, l, rt))
		}
	}
}

func composite(s gpu.StereoSettings, x, y int, l, r color.RGBA64) color.RGBA64 {
	if s.Display == gpu.Interlace {
		var right bool
		switch s.Interlace {
		case gpu.RowInterlace:
			right = y%2 == 1
		case gpu.ColumnInterlace:
			right = x%2 == 1
		default:
			right = (x+y)%2 == 1
		}
		if right != s.SwapEyes {
			return r
		}
		return l
	}
	c := color.RGBA64{A: max(l.A, r.A)}
	switch s.Anaglyph {
	case gpu.GreenMagenta:
		c.R, c.G, c.B = r.R, l.G, r.B
	case gpu.YellowBlue:
		c.R, c.G, c.B = l.R, l.G, r.B
	default:
		c.R, c.G, c.B = l.R, r.G, r.B
	}
	return c
}

func (v *Viewport) Release() {
	if v.released {
		return
	}
	v.Unbind()
	v.released = true
	v.views = [2]*Texture{}
	v.b.Releases++
}
