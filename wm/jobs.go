// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/wm/timer"
)

// DefaultJobStep is the polling interval of jobs that do not set one.
const DefaultJobStep = 100 * time.Millisecond

// Progress is the progress of a running [Job]. It is written by the job
// goroutine and read by the main loop.
type Progress struct {
	mu      sync.Mutex
	value   float32
	changed bool
}

// Set sets the progress, in [0, 1].
func (p *Progress) Set(v float32) {
	p.mu.Lock()
	p.value = v
	p.changed = true
	p.mu.Unlock()
}

// Value returns the last progress set.
func (p *Progress) Value() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// take returns the progress and whether it changed since the last call.
func (p *Progress) take() (float32, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch := p.changed
	p.changed = false
	return p.value, ch
}

// Job is work that runs in the background for a window. Run is called
// on its own goroutine; Update and End are called on the main loop.
type Job struct {

	// Name identifies the job.
	Name string

	// WindowID is the window the job belongs to, 0 for none.
	WindowID int

	// Step is how often the main loop polls the job.
	// It defaults to [DefaultJobStep].
	Step time.Duration

	// Run does the work. It must return soon after ctx is done.
	Run func(ctx context.Context, p *Progress) error

	// Update is called when the progress changed, if it is set.
	Update func(j *Job, progress float32)

	// End is called once Run has returned, if it is set.
	End func(j *Job, err error)

	// Progress is the progress of the job.
	Progress Progress

	timerID timer.ID
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
}

// IsRunning returns whether the job has been started and has not
// been ended yet.
func (j *Job) IsRunning() bool {
	return j.done != nil
}

// StartJob starts running the job in the background.
// A running job is not started again.
func (m *Manager) StartJob(j *Job) {
	if j.IsRunning() {
		return
	}
	if j.Step <= 0 {
		j.Step = DefaultJobStep
	}
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})
	j.err = nil
	j.timerID = m.Timers.Add(j.WindowID, timer.Jobs, j.Step)
	m.Timers.Get(j.timerID).Data = j
	m.jobs = append(m.jobs, j)
	slog.Debug("wm: job started", "job", j.Name, "window", j.WindowID)
	go func() {
		defer close(j.done)
		if j.Run != nil {
			j.err = j.Run(ctx, &j.Progress)
		}
	}()
}

// StopJob asks the job to stop. It is ended on the main loop once
// Run has returned.
func (m *Manager) StopJob(j *Job) {
	if j.cancel != nil {
		j.cancel()
	}
}

// Jobs returns the running jobs.
func (m *Manager) Jobs() []*Job {
	return slices.Clone(m.jobs)
}

// handleJobsTimer polls the job of the timer.
func (m *Manager) handleJobsTimer(t *timer.Timer) {
	j, ok := t.Data.(*Job)
	if !ok || !j.IsRunning() {
		m.Timers.Remove(t.ID)
		return
	}
	select {
	case <-j.done:
		m.endJob(j)
	default:
		if v, ch := j.Progress.take(); ch && j.Update != nil {
			j.Update(j, v)
		}
	}
}

// endJob removes the job once its goroutine has returned, calls its
// end callback and tags its window for redraw.
func (m *Manager) endJob(j *Job) {
	<-j.done
	j.cancel()
	m.Timers.Remove(j.timerID)
	m.jobs = slices.DeleteFunc(m.jobs, func(e *Job) bool { return e == j })
	j.done = nil
	j.timerID = 0
	if v, ch := j.Progress.take(); ch && j.Update != nil {
		j.Update(j, v)
	}
	if j.err != nil {
		slog.Debug("wm: job failed", "job", j.Name, "err", j.err)
	}
	if j.End != nil {
		j.End(j, j.err)
	}
	if w := m.WindowByID(j.WindowID); w != nil {
		w.TagRedraw()
	}
}

// endWindowJobs stops the jobs of the window and waits for them to end.
func (m *Manager) endWindowJobs(w *Window) {
	for _, j := range slices.Clone(m.jobs) {
		if j.WindowID == w.ID {
			j.cancel()
			m.endJob(j)
		}
	}
}

// endAllJobs stops every job and waits for them to end.
func (m *Manager) endAllJobs() {
	for _, j := range slices.Clone(m.jobs) {
		j.cancel()
		m.endJob(j)
	}
}
