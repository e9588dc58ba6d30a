// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level prefix colored according to the terminal profile.
// It only shows records at or above [UserLevel] unless a different
// [slog.Leveler] is given.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

// NewHandler returns a new [Handler] writing to the given writer.
// A nil level means that [UserLevel] is consulted for every record.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{out: termenv.NewOutput(w), level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] with [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

func (h *Handler) minLevel() slog.Level {
	if h.level == nil {
		return UserLevel
	}
	return h.level.Level()
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.minLevel()
}

// levelColor returns the hex color used for the given level.
func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "#ff5f5f"
	case l >= slog.LevelWarn:
		return "#ffd75f"
	case l >= slog.LevelInfo:
		return "#5fafff"
	default:
		return "#8a8a8a"
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	lv := h.out.String(r.Level.String()).Foreground(h.out.Color(levelColor(r.Level))).Bold()
	b.WriteString(lv.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve().Any())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}
