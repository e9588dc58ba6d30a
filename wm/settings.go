// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"context"
	"image/color"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/wm/base/errors"
	"cogentcore.org/wm/base/fsx"
	"cogentcore.org/wm/base/iox/tomlx"
	"cogentcore.org/wm/base/iox/yamlx"
	"cogentcore.org/wm/gpu"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCursorSize is the cursor size in pixels at a pixel size of 1.
const DefaultCursorSize = 24

// DataDir returns the directory in which settings files are stored.
func DataDir() string {
	return errors.Log1(fsx.ConfigDir("wm"))
}

// Settings is the interface that describes the functionality common to all settings data types.
type Settings interface {

	// Label returns the label text for the settings.
	Label() string

	// Filename returns the full filename/filepath at which the settings are stored.
	Filename() string

	// Defaults sets the default values for all of the settings.
	Defaults()

	// Apply does anything necessary to apply the settings to the app.
	Apply()
}

// SettingsOpener is an optional additional interface that
// [Settings] can satisfy to customize the behavior of [OpenSettings].
type SettingsOpener interface {
	Settings

	// Open opens the settings
	Open() error
}

// SettingsSaver is an optional additional interface that
// [Settings] can satisfy to customize the behavior of [SaveSettings].
type SettingsSaver interface {
	Settings

	// Save saves the settings
	Save() error
}

// SettingsBase contains base settings logic that other settings data types can extend.
type SettingsBase struct {

	// Name is the name of the settings.
	Name string `toml:"-" yaml:"-"`

	// File is the filename/filepath at which the settings are stored relative to [DataDir].
	// It may also be absolute or start with ~.
	File string `toml:"-" yaml:"-"`
}

// Label returns the label text for the settings.
func (sb *SettingsBase) Label() string {
	return sb.Name
}

// Filename returns the full filename/filepath at which the settings are stored.
func (sb *SettingsBase) Filename() string {
	fnm := fsx.ExpandHome(sb.File)
	if filepath.IsAbs(fnm) {
		return fnm
	}
	return filepath.Join(DataDir(), fnm)
}

// Defaults does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Defaults() {}

// Apply does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Apply() {}

func isYAML(fnm string) bool {
	ext := filepath.Ext(fnm)
	return ext == ".yaml" || ext == ".yml"
}

// OpenSettings opens the given settings from their [Settings.Filename].
// The settings are assumed to be in TOML unless they have a .yaml or .yml
// file extension. If they satisfy the [SettingsOpener] interface,
// [SettingsOpener.Open] will be used instead.
func OpenSettings(se Settings) error {
	if so, ok := se.(SettingsOpener); ok {
		return so.Open()
	}
	fnm := se.Filename()
	if isYAML(fnm) {
		return yamlx.Open(se, fnm)
	}
	return tomlx.Open(se, fnm)
}

// SaveSettings saves the given settings to their [Settings.Filename],
// in the same format that [OpenSettings] reads. If they satisfy the
// [SettingsSaver] interface, [SettingsSaver.Save] will be used instead.
func SaveSettings(se Settings) error {
	if ss, ok := se.(SettingsSaver); ok {
		return ss.Save()
	}
	fnm := se.Filename()
	if isYAML(fnm) {
		return yamlx.Save(se, fnm)
	}
	return tomlx.Save(se, fnm)
}

// LoadSettings sets the defaults of, opens, and applies the given settings.
// A missing settings file is not an error.
func LoadSettings(se Settings) error {
	se.Defaults()
	err := OpenSettings(se)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	se.Apply()
	return err
}

// Duration is a [time.Duration] that is stored in settings files
// in its string form, such as "5ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// ManagerSettings are the settings of a [Manager].
type ManagerSettings struct {
	SettingsBase `toml:"-" yaml:",inline"`

	// IdleSleep is how long the main loop sleeps when there is nothing to do.
	IdleSleep Duration

	// SimulateEvents skips the main loop sleep, for event simulation and tests.
	SimulateEvents bool

	// ForceSoftwareCursor draws the cursor in software even when
	// the platform can warp the native cursor.
	ForceSoftwareCursor bool

	// CursorSize is the preferred cursor size in pixels.
	CursorSize int

	// PixelSize is the scale of cursor bitmaps; 0 uses the pixel scale of the window.
	PixelSize float32

	// Autosave enables periodic autosaving.
	Autosave bool

	// AutosaveInterval is the time between autosaves.
	AutosaveInterval Duration

	// EdgeColor is the hex color of the borders drawn between areas.
	EdgeColor string

	// Stereo are the stereo settings that new windows start with.
	Stereo gpu.StereoSettings

	// Debug are the trace settings.
	Debug DebugSettings

	manager   *Manager
	edgeColor color.Color
}

// DebugSettings are the debugging trace settings.
type DebugSettings struct {

	// RenderTrace logs every window draw and its stages.
	RenderTrace bool

	// TimerTrace logs every timer addition, firing and removal.
	TimerTrace bool

	// EventTrace logs every window event that is handled.
	EventTrace bool
}

func (ms *ManagerSettings) Defaults() {
	ms.IdleSleep = Duration(5 * time.Millisecond)
	ms.SimulateEvents = false
	ms.ForceSoftwareCursor = false
	ms.CursorSize = DefaultCursorSize
	ms.PixelSize = 0
	ms.Autosave = true
	ms.AutosaveInterval = Duration(2 * time.Minute)
	ms.EdgeColor = "#161616"
	ms.Stereo = gpu.StereoSettings{Display: gpu.Anaglyph}
	ms.Debug = DebugSettings{}
}

// Apply parses the edge color and pushes the settings into the manager.
func (ms *ManagerSettings) Apply() {
	ms.edgeColor = parseColor(ms.EdgeColor, color.RGBA{0x16, 0x16, 0x16, 0xff})
	if ms.manager != nil {
		ms.manager.applySettings()
	}
}

// EdgeColorValue returns the parsed [ManagerSettings.EdgeColor].
func (ms *ManagerSettings) EdgeColorValue() color.Color {
	if ms.edgeColor == nil {
		ms.edgeColor = parseColor(ms.EdgeColor, color.RGBA{0x16, 0x16, 0x16, 0xff})
	}
	return ms.edgeColor
}

func parseColor(hex string, def color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		slog.Error("wm: invalid color", "color", hex, "err", err)
		return def
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// clone returns a copy of the settings that is not attached to a manager.
func (ms *ManagerSettings) clone() *ManagerSettings {
	c := *ms
	c.manager = nil
	c.edgeColor = nil
	return &c
}

// set replaces the values of the settings with those of ns,
// keeping the manager they are attached to.
func (ms *ManagerSettings) set(ns *ManagerSettings) {
	mgr := ms.manager
	*ms = *ns
	ms.manager = mgr
	ms.edgeColor = nil
}

// WatchSettings reloads the settings of the manager whenever their file
// changes, until the context is done. Reloaded settings are applied on
// the main loop by [Manager.ProcessEvents].
func (m *Manager) WatchSettings(ctx context.Context) error {
	base := m.Settings.clone()
	return fsx.Watch(ctx, m.Settings.Filename(), func() {
		ns := base.clone()
		if errors.Log(OpenSettings(ns)) != nil {
			return
		}
		m.pendingMu.Lock()
		m.pendingSettings = ns
		m.pendingMu.Unlock()
	})
}

// applyPendingSettings copies reloaded settings, if any, onto the
// settings of the manager and applies them.
func (m *Manager) applyPendingSettings() {
	m.pendingMu.Lock()
	ns := m.pendingSettings
	m.pendingSettings = nil
	m.pendingMu.Unlock()
	if ns == nil {
		return
	}
	m.Settings.set(ns)
	slog.Info("wm: settings reloaded", "file", m.Settings.Filename())
	m.Settings.Apply()
}
