// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eyeNames = []string{"Left", "Right"}

func TestString(t *testing.T) {
	assert.Equal(t, "Right", String("Eye", eyeNames, 1))
	assert.Equal(t, "Eye(2)", String("Eye", eyeNames, 2))
	assert.Equal(t, "Eye(-1)", String("Eye", eyeNames, -1))
}

func TestParse(t *testing.T) {
	v, err := Parse("Eye", eyeNames, []byte("Right"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	_, err = Parse("Eye", eyeNames, []byte("Center"))
	assert.ErrorContains(t, err, `"Center" is not a valid value for type Eye`)
}
