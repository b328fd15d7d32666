// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"a", "b", "c"}, om.Keys())
	assert.Equal(t, []int{1, 2, 3}, om.Values())

	v, ok := om.ValueByKey("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, om.IndexByKey("b"))

	// replacing keeps the original position
	om.Add("a", 10)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []int{10, 2, 3}, om.Values())

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())
	assert.Equal(t, 1, om.IndexByKey("c"))
	assert.Equal(t, -1, om.IndexByKey("b"))
	assert.False(t, om.Has("b"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
}

func TestMapZeroValue(t *testing.T) {
	var om Map[int, string]
	om.Add(7, "seven")
	assert.True(t, om.Has(7))
	v, ok := om.ValueByKey(7)
	assert.True(t, ok)
	assert.Equal(t, "seven", v)
}
