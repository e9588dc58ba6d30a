// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timer provides the registry of recurring and one-shot timers
// that are fired once per main loop iteration.
//
// Timers are never unlinked while the registry is being iterated:
// [Registry.Remove] only tags a timer, and tagged timers are freed
// by [Registry.Sweep] at one point of the loop, after the firing pass.
package timer

import (
	"io"
	"log/slog"
	"time"

	"cogentcore.org/wm/base/errors"
)

// ID is an opaque handle to a timer. The zero ID is never assigned.
type ID uint64

// Timer is one registered timer record.
type Timer struct {

	// ID is the handle of this timer.
	ID ID

	// WindowID is the window that owns the timer, 0 for global timers.
	WindowID int

	// Kind is the event kind delivered when the timer fires.
	Kind Kind

	// Step is the interval between firings; 0 fires on every iteration.
	Step time.Duration

	// Start is when the timer was added; all firings stay in phase with it.
	Start time.Time

	// Last is when the timer last fired, or Start.
	Last time.Time

	// Next is when the timer is next due.
	Next time.Time

	// Delta is the time between the last two firings.
	Delta time.Duration

	// Duration is the total time accumulated over all firings.
	Duration time.Duration

	// Sleep suppresses firing without removing the timer.
	Sleep bool

	// Data is an optional payload. It is owned by the caller unless OwnsData is set.
	Data any

	// OwnsData means the registry closes Data on removal if it is an [io.Closer].
	OwnsData bool

	removed bool
}

// Removed returns whether the timer is tagged for removal.
func (t *Timer) Removed() bool {
	return t.removed
}

// update advances the timer bookkeeping for a firing at now.
// Next is kept at Start + k*Step for an integer k.
func (t *Timer) update(now time.Time) {
	t.Delta = now.Sub(t.Last)
	t.Duration += t.Delta
	t.Last = now
	if t.Step == 0 {
		t.Next = t.Start
		return
	}
	k := (t.Duration + t.Step - 1) / t.Step
	t.Next = t.Start.Add(t.Step * k)
}

// Referencer is implemented by anything that may hold a reference to a
// timer that outlives it, such as a queued timer event. ForgetTimer is
// called synchronously by [Registry.Remove].
type Referencer interface {
	ForgetTimer(id ID)
}

// Registry is an ordered set of timers.
// It is not safe for concurrent use; it belongs to the main loop.
type Registry struct {

	// Now returns the current time. It defaults to [time.Now].
	Now func() time.Time

	// Trace logs every firing and removal at debug level.
	Trace bool

	timers      []*Timer
	byID        map[ID]*Timer
	lastID      ID
	referencers []Referencer
}

// NewRegistry returns a new registry using the given clock,
// or [time.Now] if it is nil.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{Now: now, byID: map[ID]*Timer{}}
}

func (r *Registry) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// AddReferencer registers a [Referencer] to be told about every removal.
func (r *Registry) AddReferencer(ref Referencer) {
	r.referencers = append(r.referencers, ref)
}

// RemoveReferencer unregisters a [Referencer].
func (r *Registry) RemoveReferencer(ref Referencer) {
	for i, rf := range r.referencers {
		if rf == ref {
			r.referencers = append(r.referencers[:i], r.referencers[i+1:]...)
			return
		}
	}
}

// Add adds a timer for the given window (0 for global) and kind
// that fires every step, starting one step from now.
// A negative step is treated as 0.
func (r *Registry) Add(windowID int, kind Kind, step time.Duration) ID {
	if step < 0 {
		slog.Debug("timer: negative step clamped to 0", "kind", kind, "step", step)
		step = 0
	}
	if r.byID == nil {
		r.byID = map[ID]*Timer{}
	}
	now := r.now()
	r.lastID++
	t := &Timer{ID: r.lastID, WindowID: windowID, Kind: kind, Step: step, Start: now, Last: now, Next: now.Add(step)}
	r.timers = append(r.timers, t)
	r.byID[t.ID] = t
	if r.Trace {
		slog.Debug("timer: add", "id", t.ID, "window", windowID, "kind", kind, "step", step)
	}
	return t.ID
}

// AddNotifier adds a [Notifier] timer that delivers the given value
// every step. The value stays owned by the caller.
func (r *Registry) AddNotifier(windowID int, notifier any, step time.Duration) ID {
	id := r.Add(windowID, Notifier, step)
	r.byID[id].Data = notifier
	return id
}

// Get returns the live timer with the given id, or nil if the id is
// unknown, already swept or tagged for removal.
func (r *Registry) Get(id ID) *Timer {
	t := r.byID[id]
	if t == nil || t.removed {
		return nil
	}
	return t
}

// Remove tags the timer for removal. Every [Referencer] is told to
// forget it immediately. Owned data is closed now; caller-owned data
// is left alone. Unknown and stale ids are ignored.
func (r *Registry) Remove(id ID) {
	t := r.byID[id]
	if t == nil || t.removed {
		return
	}
	t.removed = true
	for _, ref := range r.referencers {
		ref.ForgetTimer(id)
	}
	if t.OwnsData {
		if c, ok := t.Data.(io.Closer); ok {
			errors.Log(c.Close())
		}
		t.Data = nil
	}
	if r.Trace {
		slog.Debug("timer: remove", "id", id, "kind", t.Kind)
	}
}

// RemoveWindow tags every timer owned by the given window for removal.
func (r *Registry) RemoveWindow(windowID int) {
	for _, t := range r.timers {
		if t.WindowID == windowID && !t.removed {
			r.Remove(t.ID)
		}
	}
}

// SetSleep pauses (true) or resumes (false) the timer.
// It is ignored for unknown and tagged timers.
func (r *Registry) SetSleep(id ID, sleep bool) {
	if t := r.Get(id); t != nil {
		t.Sleep = sleep
	}
}

// Sweep frees every timer tagged for removal.
// It must not be called while [Registry.Fire] is running.
func (r *Registry) Sweep() {
	n := 0
	for _, t := range r.timers {
		if t.removed {
			delete(r.byID, t.ID)
			continue
		}
		r.timers[n] = t
		n++
	}
	clear(r.timers[n:])
	r.timers = r.timers[:n]
}

// Fire runs the firing pass at the given time: every live, awake timer
// with Next before now is updated and passed to dispatch. Timers added
// by dispatch are not fired in this pass, and timers removed by dispatch
// are only tagged. It returns whether any timer fired and the earliest
// Next of the timers that were not due, if there is one.
func (r *Registry) Fire(now time.Time, dispatch func(t *Timer)) (fired bool, next time.Time, hasNext bool) {
	n := len(r.timers)
	for i := 0; i < n; i++ {
		t := r.timers[i]
		if t.removed || t.Sleep {
			continue
		}
		if !t.Next.Before(now) {
			if !hasNext || t.Next.Before(next) {
				next = t.Next
				hasNext = true
			}
			continue
		}
		t.update(now)
		fired = true
		if r.Trace {
			slog.Debug("timer: fire", "id", t.ID, "kind", t.Kind, "delta", t.Delta, "next", t.Next)
		}
		if dispatch != nil {
			dispatch(t)
		}
	}
	return
}

// Len returns the number of timers, including tagged ones not yet swept.
func (r *Registry) Len() int {
	return len(r.timers)
}

// Each calls fn for every live timer in registration order,
// stopping if fn returns false.
func (r *Registry) Each(fn func(t *Timer) bool) {
	for _, t := range r.timers {
		if t.removed {
			continue
		}
		if !fn(t) {
			return
		}
	}
}
