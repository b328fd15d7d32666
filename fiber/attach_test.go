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

func TestAttachSlotMountAndRestore(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("mesh", nil,
			N("meshStandardMaterial", nil).SetAttach("material"),
			N("boxGeometry", nil).SetAttach("geometry"),
		),
	)
	require.NoError(t, err)

	sc := sceneOf(t, rt)
	mesh := sc.Children[0].(*three.Mesh)
	require.NotNil(t, mesh.Material)
	require.NotNil(t, mesh.Geometry)
	assert.IsType(t, &three.MeshStandardMaterial{}, mesh.Material)
	// slot-attached children do not enter the ordinary child list
	assert.Equal(t, 0, mesh.NumChildren())

	// unmounting the children restores the slots to their pre-attach values
	_, err = rt.Render(N("mesh", nil))
	require.NoError(t, err)
	assert.Same(t, mesh, sc.Children[0])
	assert.Nil(t, mesh.Material)
	assert.Nil(t, mesh.Geometry)
}

func TestAttachPiercedSlot(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("mesh", nil,
			N("meshStandardMaterial", nil).SetAttach("material"),
			N("texture", nil).SetAttach("material-map"),
		),
	)
	require.NoError(t, err)

	mesh := sceneOf(t, rt).Children[0].(*three.Mesh)
	mat := mesh.Material.(*three.MeshStandardMaterial)
	require.NotNil(t, mat.Map)
	// a texture bound into a new slot is flagged for re-upload
	assert.True(t, mat.Map.NeedsUpdate)
}

func TestAttachNestedSlotUnwindOnUnmount(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("mesh", nil,
			N("meshStandardMaterial", nil).SetAttach("material"),
			N("texture", nil).SetAttach("material-map"),
		),
	)
	require.NoError(t, err)
	mesh := sceneOf(t, rt).Children[0].(*three.Mesh)
	mat := mesh.Material.(*three.MeshStandardMaterial)
	require.NotNil(t, mat.Map)

	// unmounting the mesh restores the inner "material-map" slot
	// while the material is still reachable through the outer slot
	_, err = rt.Render()
	require.NoError(t, err)
	assert.Nil(t, mat.Map)
	assert.Nil(t, mesh.Material)
}

func TestAttachSlotMove(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("mesh", nil,
			N("meshBasicMaterial", nil).SetKey("m").SetAttach("material"),
		),
	)
	require.NoError(t, err)
	mesh := sceneOf(t, rt).Children[0].(*three.Mesh)
	mat := mesh.Material
	require.NotNil(t, mat)

	// switching to custom attach functions detaches the slot under
	// the old key before binding under the new mode
	var bound int
	bind := func(parent, self any) func() {
		bound++
		return nil
	}
	_, err = rt.Render(
		N("mesh", nil,
			N("meshBasicMaterial", nil).SetKey("m").SetAttach(BindFunc(bind)),
		),
	)
	require.NoError(t, err)
	assert.Nil(t, mesh.Material)
	assert.Equal(t, 1, bound)
}

func TestAttachCustomFns(t *testing.T) {
	rt := newTestRoot(t)
	var bound, unbound int
	bind := func(parent, self any) func() {
		bound++
		return func() { unbound++ }
	}
	_, err := rt.Render(
		N("group", nil,
			N("pointLight", nil).SetAttach(BindFunc(bind)),
		),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, bound)
	assert.Equal(t, 0, unbound)

	// custom-attached children stay out of the ordinary child list
	gp := sceneOf(t, rt).Children[0].(*three.Group)
	assert.Equal(t, 0, gp.NumChildren())

	_, err = rt.Render(N("group", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, unbound)
}

func TestAttachCustomUnbindFallback(t *testing.T) {
	rt := newTestRoot(t)
	var unbound int
	fns := &AttachFns{
		Bind:   func(parent, self any) func() { return nil },
		Unbind: func(parent, self any) { unbound++ },
	}
	_, err := rt.Render(
		N("group", nil,
			N("pointLight", nil).SetAttach(fns),
		),
	)
	require.NoError(t, err)

	_, err = rt.Render(N("group", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, unbound)
}

func TestAttachNonObjectChildNeedsSlot(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("group", nil,
			N("color", nil), // no slot: a color cannot be an ordinary child
		),
	)
	require.Error(t, err)
	var ae *AttachResolutionError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "color", ae.Kind)
}

func TestSyncGraphChildrenOrder(t *testing.T) {
	rt := newTestRoot(t)
	_, err := rt.Render(
		N("group", nil).SetKey("a"),
		N("mesh", nil).SetKey("b"),
		N("group", nil).SetKey("c"),
	)
	require.NoError(t, err)
	sc := sceneOf(t, rt)
	require.Equal(t, 3, sc.NumChildren())
	b := sc.Children[1]

	_, err = rt.Render(
		N("mesh", nil).SetKey("b"),
		N("group", nil).SetKey("c"),
		N("group", nil).SetKey("a"),
	)
	require.NoError(t, err)
	assert.Same(t, b, sc.Children[0])
}
