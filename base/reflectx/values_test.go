// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	b, err := ToBool(1)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = ToBool("false")
	require.NoError(t, err)
	assert.False(t, b)

	b, err = ToBool(0.0)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestToFloat32(t *testing.T) {
	f, err := ToFloat32(3)
	require.NoError(t, err)
	assert.Equal(t, float32(3), f)

	f, err = ToFloat32("2.5")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	f, err = ToFloat32(float64(1.5))
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)
}

func TestSetRobust(t *testing.T) {
	var f float32
	require.NoError(t, SetRobust(&f, 2))
	assert.Equal(t, float32(2), f)

	var s string
	require.NoError(t, SetRobust(&s, "hi"))
	assert.Equal(t, "hi", s)

	var b bool
	require.NoError(t, SetRobust(&b, "true"))
	assert.True(t, b)

	var i int
	require.NoError(t, SetRobust(&i, 4.0))
	assert.Equal(t, 4, i)

	var v any
	require.NoError(t, SetRobust(&v, 7))
	assert.Equal(t, 7, v)
}
