// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers: home directory expansion,
// existence checks and file change monitoring.
package fsx

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/wm/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading ~ in the given path to the user's home
// directory. It returns the path unchanged if it can not be expanded.
func ExpandHome(path string) string {
	ep, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return ep
}

// ConfigDir returns the directory for configuration files of the
// given application name, creating it if it does not exist.
func ConfigDir(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		dir = filepath.Join(home, ".config")
	}
	dir = filepath.Join(dir, name)
	return dir, os.MkdirAll(dir, 0750)
}

// FileExists checks whether the given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Watch calls fn whenever the given file is written, created or renamed
// into place, until the context is done. It watches the parent directory,
// so editors that save through a temporary file are handled. fn is called
// on the watcher goroutine. Watch returns once the watcher is running.
func Watch(ctx context.Context, path string, fn func()) error {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					fn()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("fsx.Watch", "path", abs, "err", err)
			}
		}
	}()
	return nil
}
