// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/changqingniubi/react-three-fiber/fiber"
	"github.com/changqingniubi/react-three-fiber/three"
)

func TestPortalRendersIntoContainer(t *testing.T) {
	rt := newTestRoot(t)
	container := three.NewGroup()

	_, err := rt.Render(
		N("mesh", nil),
		CreatePortal(container, nil, N("pointLight", nil)),
	)
	require.NoError(t, err)

	sc := sceneOf(t, rt)
	// the portal marker itself never enters the render graph
	require.Equal(t, 1, sc.NumChildren())
	assert.IsType(t, &three.Mesh{}, sc.Children[0])

	require.Equal(t, 1, container.NumChildren())
	assert.IsType(t, &three.PointLight{}, container.Children[0])
}

func TestPortalSharesPrivateKeys(t *testing.T) {
	rt := newTestRoot(t)
	container := three.NewGroup()

	_, err := rt.Render(CreatePortal(container, nil, N("mesh", nil)))
	require.NoError(t, err)

	parent := rt.GetState()
	marker := rt.Container().Children[0]
	enclave := marker.Children[0].Root()
	require.NotNil(t, enclave)
	require.NotSame(t, parent, enclave)

	pv := reflect.ValueOf(parent).Elem()
	ev := reflect.ValueOf(enclave).Elem()
	for _, name := range PrivateKeys() {
		pf := pv.FieldByName(name)
		ef := ev.FieldByName(name)
		require.True(t, pf.IsValid(), "unknown field %s", name)
		if pf.Kind() == reflect.Func {
			assert.Equal(t, pf.Pointer(), ef.Pointer(), "field %s", name)
			continue
		}
		assert.Equal(t, pf.Interface(), ef.Interface(), "field %s", name)
	}

	// per-portal fields are fresh
	assert.Same(t, container, enclave.GraphRoot)
	assert.NotSame(t, parent.Events, enclave.Events)
	assert.Same(t, parent, enclave.Previous)
}

func TestPortalOverride(t *testing.T) {
	rt := newTestRoot(t)
	container := three.NewGroup()
	events := NewEventRegistry()
	frameloop := FrameloopNever

	_, err := rt.Render(CreatePortal(container, &RootOverride{
		Events:    events,
		Frameloop: &frameloop,
		Size:      &Size{Width: 64, Height: 32},
	}, N("mesh", nil)))
	require.NoError(t, err)

	enclave := rt.Container().Children[0].Children[0].Root()
	assert.Same(t, events, enclave.Events)
	assert.Equal(t, FrameloopNever, enclave.Frameloop)
	assert.Equal(t, Size{Width: 64, Height: 32}, enclave.Size)
}

func TestPortalContainerSwap(t *testing.T) {
	rt := newTestRoot(t)
	c1 := three.NewGroup()
	c2 := three.NewGroup()

	_, err := rt.Render(CreatePortal(c1, nil, N("mesh", nil)))
	require.NoError(t, err)
	require.Equal(t, 1, c1.NumChildren())
	mesh := c1.Children[0]

	_, err = rt.Render(CreatePortal(c2, nil, N("mesh", nil)))
	require.NoError(t, err)
	assert.Equal(t, 0, c1.NumChildren())
	require.Equal(t, 1, c2.NumChildren())
	assert.Same(t, mesh, c2.Children[0])
}

func TestPortalEventsUseEnclaveRegistry(t *testing.T) {
	rt := newTestRoot(t)
	container := three.NewGroup()

	_, err := rt.Render(CreatePortal(container, nil,
		N("mesh", map[string]any{"onClick": func(ev *Event) {}}),
	))
	require.NoError(t, err)

	enclave := rt.Container().Children[0].Children[0].Root()
	assert.Equal(t, 1, enclave.Events.Len())
	assert.Equal(t, 0, rt.GetState().Events.Len())
}
