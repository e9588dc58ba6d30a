// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the name lookup and text parsing shared by
// the enumerated int32 types of the module. Each type keeps its names
// in a slice indexed by value.
package enums

import (
	"fmt"
	"slices"
	"strconv"
)

// String returns the name of value v, or typ(v) when v has no name.
func String(typ string, names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return typ + "(" + strconv.Itoa(int(v)) + ")"
}

// Parse returns the value named by text.
func Parse(typ string, names []string, text []byte) (int32, error) {
	i := slices.Index(names, string(text))
	if i < 0 {
		return 0, fmt.Errorf("%q is not a valid value for type %s", text, typ)
	}
	return int32(i), nil
}
