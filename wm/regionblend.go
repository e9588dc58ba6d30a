// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"time"

	"cogentcore.org/wm/timer"
)

const (
	// BlendTimeout is how long a pane takes to fade or slide in or out.
	BlendTimeout = 100 * time.Millisecond

	// blendStep is the interval of the blend timer, one frame at 60Hz.
	blendStep = time.Second / 60
)

// regionBlend is the state of a running pane fade.
type regionBlend struct {
	timer  *timer.Timer
	area   *Area
	hidden bool
}

// FadeAlpha returns the opacity of the pane while it fades in or out,
// or 1 when it is not fading.
func (p *Pane) FadeAlpha() float32 {
	b := p.blend
	if b == nil || b.timer == nil || b.timer.Removed() {
		return 1
	}
	alpha := float32(b.timer.Duration) / float32(BlendTimeout)
	if b.hidden {
		alpha = 0.9 - float32(blendStep.Seconds()) - alpha
	}
	return min(max(alpha, 0), 1)
}

// IsBlending returns whether the pane is fading in or out.
func (p *Pane) IsBlending() bool {
	return p.blend != nil
}

// SetPaneHidden hides or shows the pane of the given area. Overlapping
// panes fade or slide out of and into view; the pane stays visible
// until a fade out ends. Other panes change at once.
func (w *Window) SetPaneHidden(a *Area, p *Pane, hidden bool) {
	m := w.Manager
	if p.blend != nil {
		m.endRegionBlend(w, p, true)
	}
	if !p.Overlapping {
		p.Hidden = hidden
		p.Visible = !hidden
		p.TagRedraw()
		w.Screen.DoDraw = true
		return
	}
	id := m.Timers.Add(w.ID, timer.RegionBlend, blendStep)
	t := m.Timers.Get(id)
	t.Data = p
	p.blend = &regionBlend{timer: t, area: a, hidden: hidden}
	p.Hidden = false
	p.Visible = true
	p.TagRedraw()
}

// handleRegionBlendTimer advances the fade of the pane of the timer,
// and ends it once [BlendTimeout] has elapsed.
func (m *Manager) handleRegionBlendTimer(w *Window, t *timer.Timer) {
	p, ok := t.Data.(*Pane)
	if !ok || p.blend == nil || p.blend.timer != t {
		m.Timers.Remove(t.ID)
		return
	}
	if t.Duration > BlendTimeout {
		m.endRegionBlend(w, p, false)
		return
	}
	p.TagRedraw()
	if a := p.blend.area; a != nil {
		a.TagRedraw()
	}
}

// endRegionBlend removes the fade of the pane. A fade out that is
// interrupted leaves the pane shown; one that completes hides it.
func (m *Manager) endRegionBlend(w *Window, p *Pane, running bool) {
	b := p.blend
	p.blend = nil
	p.TagRedraw()
	if b.timer != nil {
		m.Timers.Remove(b.timer.ID)
	}
	if !running && b.hidden {
		p.Hidden = true
		p.Visible = false
	}
	if !running {
		if b.area != nil {
			b.area.TagRedraw()
		}
		w.Screen.DoDraw = true
	}
}
