// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"

	"cogentcore.org/wm/timer"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue for one window.
// The zero value is ready to use, and it is safe for concurrent use.
// It implements [timer.Referencer], so queued [Timer] events of a
// removed timer become [None] instead of referring to a stale timer.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the end of the queue. Consecutive [MouseMove]
// and [WindowResize] events are compressed into the last one.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && (ev.Type == MouseMove || ev.Type == WindowResize) {
		last := &q.events[n-1]
		if last.Type == ev.Type && last.WindowID == ev.WindowID {
			if TraceEventCompression {
				slog.Info("events: compressed", "event", ev)
			}
			*last = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns false if the queue is empty.
func (q *Queue) NextEvent() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return ev, true
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Clear removes all events.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = nil
}

// ForgetTimer neutralizes every queued event sent by the given timer.
func (q *Queue) ForgetTimer(id timer.ID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.events {
		ev := &q.events[i]
		if ev.Type == Timer && ev.TimerID == id {
			ev.Type = None
			ev.TimerID = 0
		}
	}
}
