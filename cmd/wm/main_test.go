// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--nogui", "--idle-sleep", "2ms", "-v", "--stereo", "SideBySide"}))
	assert.True(t, opts.nogui)
	assert.True(t, opts.verbose)
	assert.Equal(t, 2*time.Millisecond, opts.idleSleep)
	assert.Equal(t, "SideBySide", opts.stereo)
	assert.Equal(t, 1024, opts.width)
}
