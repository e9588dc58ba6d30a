// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layout struct {
	Name  string
	Areas []int
	Drag  bool
}

func TestSaveOpen(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "layout.toml")
	in := &layout{Name: "default", Areas: []int{2, 3}, Drag: true}
	require.NoError(t, Save(in, fnm))

	out := &layout{}
	require.NoError(t, Open(out, fnm))
	assert.Equal(t, in, out)
}

func TestReadBytes(t *testing.T) {
	out := &layout{}
	require.NoError(t, ReadBytes(out, []byte("Name = \"split\"\nAreas = [1]\n")))
	assert.Equal(t, "split", out.Name)
	assert.Equal(t, []int{1}, out.Areas)

	assert.Error(t, ReadBytes(out, []byte("Name = ")))
	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}
