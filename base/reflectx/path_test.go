// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	X float32
	Y float32
}

type outer struct {
	Name     string
	Position inner
	Extra    map[string]any
	Link     *inner
}

func TestFieldPathValue(t *testing.T) {
	ob := &outer{Name: "hi", Position: inner{X: 1, Y: 2}}

	v, err := FieldPathValue(ob, "name")
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	v, err = FieldPathValue(ob, "position-x")
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	_, err = FieldPathValue(ob, "position-z")
	assert.ErrorIs(t, err, ErrPathUndefined)

	_, err = FieldPathValue(ob, "bogus")
	assert.ErrorIs(t, err, ErrPathUndefined)
}

func TestFieldPathValueNilIntermediate(t *testing.T) {
	ob := &outer{}
	_, err := FieldPathValue(ob, "link-x")
	assert.ErrorIs(t, err, ErrPathUndefined)
}

func TestSetFieldPath(t *testing.T) {
	ob := &outer{}

	require.NoError(t, SetFieldPath(ob, "name", "hello"))
	assert.Equal(t, "hello", ob.Name)

	require.NoError(t, SetFieldPath(ob, "position-y", 3))
	assert.Equal(t, float32(3), ob.Position.Y)

	err := SetFieldPath(ob, "position-z", 3)
	assert.ErrorIs(t, err, ErrPathUndefined)
}

func TestSetFieldPathMap(t *testing.T) {
	ob := &outer{Extra: map[string]any{}}

	require.NoError(t, SetFieldPath(ob, "extra-mode", "fast"))
	assert.Equal(t, "fast", ob.Extra["mode"])
}

func TestSetFieldPathCaseFold(t *testing.T) {
	ob := &outer{}
	require.NoError(t, SetFieldPath(ob, "Name", "cased"))
	assert.Equal(t, "cased", ob.Name)
}
