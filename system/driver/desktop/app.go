// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.App] with GLFW. Windows draw into
// in-memory back buffers that are presented with OpenGL pixel transfers.
package desktop

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"cogentcore.org/wm/system"
	"cogentcore.org/wm/system/driver/base"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling and context calls must run on the main thread.
	runtime.LockOSThread()
}

// App is the [system.App] for the desktop platform.
type App struct {
	base.AppMulti[*Window]

	caps   system.Capabilities
	glInit bool
}

var _ system.App = (*App)(nil)

// NewApp initializes GLFW and returns a new desktop app.
func NewApp() (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("system/driver/desktop: failed to initialize glfw: %w", err)
	}
	a := &App{caps: system.CursorWarp | system.WindowPosition | system.GPUReadFrontBuffer | system.CursorRGBA}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		// Wayland compositors do not let clients warp the cursor or place windows.
		a.caps &^= system.CursorWarp | system.WindowPosition
	}
	return a, nil
}

func (a *App) Name() string { return "desktop" }

func (a *App) Capabilities() system.Capabilities { return a.caps }

func (a *App) HDRSupported() bool { return false }

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()
	glw, err := newGlfwWindow(opts)
	if err != nil {
		return nil, err
	}
	if !a.glInit {
		glw.MakeContextCurrent()
		if err := gl.Init(); err != nil {
			glw.Destroy()
			return nil, fmt.Errorf("system/driver/desktop: failed to initialize gl: %w", err)
		}
		a.glInit = true
	}
	w := &Window{app: a, id: a.NextWindowID(), glw: glw, fullscreen: opts.Fullscreen}
	w.resize()
	w.setCallbacks()
	a.AddWindow(w)
	glw.Show()
	return w, nil
}

// newGlfwWindow must be run on main.
func newGlfwWindow(opts *system.NewWindowOptions) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False) // needed to position
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	if opts.Stereo {
		glfw.WindowHint(glfw.Stereo, glfw.True)
	}
	var mon *glfw.Monitor
	if opts.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	return glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, mon, nil)
}

func (a *App) ProcessEvents(wait bool) bool {
	if wait {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
	return a.HasPending()
}

func (a *App) Now() time.Time { return time.Now() }

func (a *App) Sleep(d time.Duration) { time.Sleep(d) }

func (a *App) Quit() {
	for _, w := range append([]*Window{}, a.Windows...) {
		w.Close()
	}
	glfw.Terminate()
}
