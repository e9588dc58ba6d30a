// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppNoGUI(t *testing.T) {
	app, err := NewApp(true)
	require.NoError(t, err)
	assert.Equal(t, "offscreen", app.Name())
	app.Quit()
}
