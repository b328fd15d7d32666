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

func TestPrimitiveMount(t *testing.T) {
	rt := newTestRoot(t)
	obj := three.NewGroup()
	obj.Name = "external"

	_, err := rt.Render(N(KindPrimitive, map[string]any{"object": obj}))
	require.NoError(t, err)

	sc := sceneOf(t, rt)
	require.Equal(t, 1, sc.NumChildren())
	assert.Same(t, obj, sc.Children[0])
}

func TestPrimitiveMissingObject(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(N(KindPrimitive, nil))
	require.Error(t, err)
	var uk *UnknownKindError
	assert.ErrorAs(t, err, &uk)
}

func TestPrimitiveSwapPreservesPosition(t *testing.T) {
	rt := newTestRoot(t)
	obj1 := three.NewGroup()
	obj2 := three.NewGroup()

	render := func(obj any) {
		t.Helper()
		_, err := rt.Render(
			N("group", nil).SetKey("before"),
			N(KindPrimitive, map[string]any{"object": obj, "name": "prim"}).SetKey("p"),
			N("group", nil).SetKey("after"),
		)
		require.NoError(t, err)
	}

	render(obj1)
	sc := sceneOf(t, rt)
	require.Equal(t, 3, sc.NumChildren())
	assert.Same(t, obj1, sc.Children[1])
	assert.Equal(t, "prim", obj1.Name)

	render(obj2)
	// same parent, same index, new object
	require.Equal(t, 3, sc.NumChildren())
	assert.Same(t, obj2, sc.Children[1])
	assert.Nil(t, obj1.AsObject3D().Parent)
	// props are re-applied against the new object
	assert.Equal(t, "prim", obj2.Name)
}

func TestPrimitiveSwapReattachesSlots(t *testing.T) {
	rt := newTestRoot(t)
	obj1 := three.NewGroup()
	obj2 := three.NewGroup()

	render := func(obj any) {
		t.Helper()
		_, err := rt.Render(
			N(KindPrimitive, map[string]any{"object": obj},
				N("color", nil).SetArgs(1, 0, 0).SetAttach("background"),
			),
		)
		require.NoError(t, err)
	}

	render(obj1)
	require.NotNil(t, obj1.Background)

	render(obj2)
	// the slot moves to the new object; the old one is restored
	assert.Nil(t, obj1.Background)
	require.NotNil(t, obj2.Background)
	assert.Equal(t, &three.Color{R: 1, G: 0, B: 0}, obj2.Background)
}

func TestPrimitiveSwapDropsOldChildren(t *testing.T) {
	rt := newTestRoot(t)
	obj1 := three.NewGroup()
	obj2 := three.NewGroup()

	render := func(obj any) {
		t.Helper()
		_, err := rt.Render(
			N(KindPrimitive, map[string]any{"object": obj},
				N("mesh", nil),
			),
		)
		require.NoError(t, err)
	}

	render(obj1)
	require.Equal(t, 1, obj1.NumChildren())
	mesh := obj1.Children[0]

	render(obj2)
	// managed children move to the new object, not copied alongside
	assert.Equal(t, 0, obj1.NumChildren())
	require.Equal(t, 1, obj2.NumChildren())
	assert.Same(t, mesh, obj2.Children[0])
}

func TestPrimitiveNeverDisposed(t *testing.T) {
	rt := newTestRoot(t)
	geo := three.NewBoxGeometry(1, 1, 1)

	_, err := rt.Render(
		N("mesh", nil,
			N(KindPrimitive, map[string]any{"object": geo}).SetAttach("geometry"),
		),
	)
	require.NoError(t, err)
	mesh := sceneOf(t, rt).Children[0].(*three.Mesh)
	assert.Same(t, geo, mesh.Geometry)

	_, err = rt.Render(N("mesh", nil))
	require.NoError(t, err)
	assert.Nil(t, mesh.Geometry)
	assert.False(t, geo.Disposed())
}

func TestDisposeFalsePropExemptsTarget(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("mesh", nil,
			N("boxGeometry", map[string]any{"dispose": false}).SetAttach("geometry"),
		),
	)
	require.NoError(t, err)
	mesh := sceneOf(t, rt).Children[0].(*three.Mesh)
	geo := mesh.Geometry.(*three.BoxGeometry)

	_, err = rt.Render(N("mesh", nil))
	require.NoError(t, err)
	assert.False(t, geo.Disposed())
}
