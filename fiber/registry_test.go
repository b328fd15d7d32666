// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/changqingniubi/react-three-fiber/fiber"
	"github.com/changqingniubi/react-three-fiber/three"
)

func TestRegistryExtend(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Has("widget"))

	reg.Extend(map[string]Constructor{
		"widget": func(args ...any) (any, error) { return three.NewGroup(), nil },
	})
	assert.True(t, reg.Has("widget"))

	obj, err := reg.New("widget")
	require.NoError(t, err)
	assert.IsType(t, &three.Group{}, obj)
}

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Extend(map[string]Constructor{
		"thing": func(args ...any) (any, error) { return three.NewGroup(), nil },
	})
	reg.Extend(map[string]Constructor{
		"thing": func(args ...any) (any, error) { return three.NewScene(), nil },
	})

	obj, err := reg.New("thing")
	require.NoError(t, err)
	assert.IsType(t, &three.Scene{}, obj)
	// replacement does not duplicate the kind
	assert.Equal(t, []string{"thing"}, reg.Kinds())
}

func TestRegistryUnknownKind(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.New("nope")
	var uk *UnknownKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "nope", uk.Kind)
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	for _, kind := range []string{
		"group", "scene", "mesh", "points", "color", "texture",
		"boxGeometry", "sphereGeometry", "meshBasicMaterial",
		"meshStandardMaterial", "perspectiveCamera", "orthographicCamera",
		"ambientLight", "pointLight", "directionalLight",
	} {
		assert.True(t, DefaultRegistry.Has(kind), "kind %s", kind)
	}
}

func TestConstructorArgs(t *testing.T) {
	obj, err := DefaultRegistry.New("boxGeometry", 2, 3, 4)
	require.NoError(t, err)
	geo := obj.(*three.BoxGeometry)
	assert.Equal(t, float32(2), geo.Width)
	assert.Equal(t, float32(3), geo.Height)
	assert.Equal(t, float32(4), geo.Depth)

	obj, err = DefaultRegistry.New("color", 0.5, 0.25, 1)
	require.NoError(t, err)
	assert.Equal(t, &three.Color{R: 0.5, G: 0.25, B: 1}, obj)
}

func TestConstructorArgFallback(t *testing.T) {
	// arguments that cannot coerce to float fall back to the
	// constructor defaults instead of zeroing the dimension
	obj, err := DefaultRegistry.New("boxGeometry", struct{}{}, "wide", 4)
	require.NoError(t, err)
	geo := obj.(*three.BoxGeometry)
	assert.Equal(t, float32(1), geo.Width)
	assert.Equal(t, float32(1), geo.Height)
	assert.Equal(t, float32(4), geo.Depth)
}
