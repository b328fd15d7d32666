// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import "github.com/changqingniubi/react-three-fiber/three"

// portalSpec carries the alternate reconciliation target of a node
// produced by [CreatePortal].
type portalSpec struct {
	container any
	override  *RootOverride
}

// RootOverride overrides selected fields of a portal's derived state.
// Nil fields keep the derived value.
type RootOverride struct {

	// Renderer replaces the inherited renderer reference.
	Renderer *three.Renderer

	// Camera replaces the inherited camera reference.
	Camera three.Camera

	// Size replaces the portal's own size.
	Size *Size

	// Viewport replaces the portal's own viewport.
	Viewport *Viewport

	// Events replaces the portal's own event registry.
	Events *EventRegistry

	// Frameloop replaces the inherited frameloop mode.
	Frameloop *Frameloop

	// Performance replaces the inherited performance state reference.
	Performance *Performance

	// Invalidate replaces the inherited invalidation callback.
	Invalidate func()
}

// CreatePortal returns a node that reconciles the given children
// against the given container object instead of the enclosing graph
// root. The portal node itself never enters the render graph; its
// children see a derived state in which identity and subsystem
// references are shared with the enclosing root and per-portal
// fields (graph root, size, viewport, events) are fresh. A non-nil
// override replaces selected derived fields.
func CreatePortal(container any, override *RootOverride, children ...*NodeSpec) *NodeSpec {
	return &NodeSpec{
		Kind:     kindPortal,
		Children: children,
		portal:   &portalSpec{container: container, override: override},
	}
}

// privateKeys names the [RootState] fields that portal enclaves share
// by reference with their enclosing root rather than overriding.
var privateKeys = []string{
	"ID",
	"Renderer",
	"Camera",
	"Performance",
	"Frameloop",
	"Clock",
	"Invalidate",
	"Legacy",
	"Linear",
	"Flat",
	"Shadows",
}

// PrivateKeys returns the names of the [RootState] fields that portal
// enclaves inherit by reference from their enclosing root.
func PrivateKeys() []string {
	return append([]string(nil), privateKeys...)
}

// newPortalState derives a portal enclave state from the enclosing
// root state. The fields named by [PrivateKeys] are copied by
// reference so the enclave observes the enclosing root's renderer,
// camera, timing, and mode flags; the graph root, size, viewport,
// and event registry are per-portal.
func newPortalState(parent *RootState, container any, override *RootOverride) *RootState {
	st := &RootState{
		ID:          parent.ID,
		GraphRoot:   container,
		Renderer:    parent.Renderer,
		Camera:      parent.Camera,
		Size:        parent.Size,
		Viewport:    Viewport{Dpr: parent.Viewport.Dpr, InitialDpr: parent.Viewport.InitialDpr},
		Performance: parent.Performance,
		Events:      NewEventRegistry(),
		Frameloop:   parent.Frameloop,
		Clock:       parent.Clock,
		Invalidate:  parent.Invalidate,
		Legacy:      parent.Legacy,
		Linear:      parent.Linear,
		Flat:        parent.Flat,
		Shadows:     parent.Shadows,
		Previous:    parent,
	}
	st.Viewport.Width = st.Size.Width * st.Viewport.Dpr
	st.Viewport.Height = st.Size.Height * st.Viewport.Dpr
	if override == nil {
		return st
	}
	if override.Renderer != nil {
		st.Renderer = override.Renderer
	}
	if override.Camera != nil {
		st.Camera = override.Camera
	}
	if override.Size != nil {
		st.SetSize(override.Size.Width, override.Size.Height)
	}
	if override.Viewport != nil {
		st.Viewport = *override.Viewport
	}
	if override.Events != nil {
		st.Events = override.Events
	}
	if override.Frameloop != nil {
		st.Frameloop = *override.Frameloop
	}
	if override.Performance != nil {
		st.Performance = override.Performance
	}
	if override.Invalidate != nil {
		st.Invalidate = override.Invalidate
	}
	return st
}

// updatePortal commits a portal marker instance against its spec.
// The enclave state is derived once on mount; a changed container on
// a later pass moves the subtree, detaching every mounted child from
// the old container so the remainder of the pass re-creates its
// attachments against the new one.
func (rt *Root) updatePortal(parent, child *Instance, spec *NodeSpec) error {
	if child.enclave == nil {
		child.enclave = newPortalState(contextRoot(parent), spec.portal.container, spec.portal.override)
		return nil
	}
	if sameRef(spec.portal.container, child.Target) {
		return nil
	}
	for i := len(child.Children) - 1; i >= 0; i-- {
		detachInstance(child, child.Children[i])
	}
	child.Target = spec.portal.container
	child.enclave.GraphRoot = spec.portal.container
	return nil
}
