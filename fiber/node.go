// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fiber implements a reconciliation engine that projects a
// declarative, nested scene description (a tree of [NodeSpec]s) onto
// the retained object graph of the [three] package. It provides the
// instance lifecycle model (creation from a kind tag, property
// application with dash-pierced paths, attach/detach strategies,
// replacement and removal), per-root mutable state with idempotent
// configuration merging, and portals that reconcile a subtree
// against an alternate graph root while sharing surrounding state.
package fiber

import (
	"github.com/changqingniubi/react-three-fiber/base/errors"
	"github.com/jinzhu/copier"
)

// BindFunc is a custom attach function: it binds the child target
// into the parent target at mount time. If the returned function is
// non-nil, it is invoked at unmount time instead of the paired
// [AttachFns.Unbind], which lets a bind closure capture mount-time
// state for its own teardown.
type BindFunc func(parent, self any) func()

// UnbindFunc is a custom detach function invoked at unmount time.
type UnbindFunc func(parent, self any)

// AttachFns is a pair of custom attach and detach functions,
// used when attachment behavior is fully custom.
type AttachFns struct {
	Bind   BindFunc
	Unbind UnbindFunc
}

// NodeSpec is one node of the declarative scene description:
// a kind tag plus properties and children. NodeSpecs are plain data;
// reconciling them against a [Root] produces [Instance]s.
type NodeSpec struct {

	// Kind is the lowercase type tag used to construct the instance,
	// resolved in the kind registry ("mesh", "group", "primitive", ...).
	Kind string

	// Key is an optional identity token. Children with the same key
	// keep the same instance across re-renders regardless of their
	// position; children without keys match up by position.
	Key string

	// Args are positional constructor arguments. They are applied at
	// construction only, not as ongoing properties; changing them
	// reconstructs the underlying object.
	Args []any

	// Attach declares how the instance binds to its parent:
	// a string names a (possibly dash-pierced) slot on the parent
	// target; a [BindFunc] or [*AttachFns] supplies fully custom
	// bind/unbind behavior; nil means ordinary child-list insertion.
	Attach any

	// Props is the property set applied to the constructed target.
	// Dash-separated keys pierce into nested objects. Keys shaped
	// like event handlers (onClick, onPointerOver, ...) register the
	// instance for interaction dispatch instead of being assigned.
	Props map[string]any

	// Children are the declarative children of this node.
	Children []*NodeSpec

	// portal carries the alternate reconciliation target for nodes
	// produced by [CreatePortal]; nil for ordinary nodes.
	portal *portalSpec
}

// N returns a new [NodeSpec] with the given kind, props, and children.
// It is a convenience constructor for building declarative trees inline.
func N(kind string, props map[string]any, children ...*NodeSpec) *NodeSpec {
	return &NodeSpec{Kind: kind, Props: props, Children: children}
}

// SetKey sets the identity key and returns the spec for chaining.
func (ns *NodeSpec) SetKey(key string) *NodeSpec {
	ns.Key = key
	return ns
}

// SetArgs sets the positional constructor arguments and returns the
// spec for chaining.
func (ns *NodeSpec) SetArgs(args ...any) *NodeSpec {
	ns.Args = args
	return ns
}

// SetAttach sets the attachment declaration and returns the spec for
// chaining. See [NodeSpec.Attach] for the accepted forms.
func (ns *NodeSpec) SetAttach(attach any) *NodeSpec {
	ns.Attach = attach
	return ns
}

// Clone returns a deep copy of this spec and its children, so a tree
// can be rendered into multiple roots or portals without sharing
// mutable prop maps. Attach functions and portal links are shared,
// not copied.
func (ns *NodeSpec) Clone() *NodeSpec {
	nc := &NodeSpec{}
	errors.Log(copier.CopyWithOption(nc, ns, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nc.Attach = ns.Attach
	nc.portal = ns.portal
	for i, child := range ns.Children {
		nc.Children[i] = child.Clone()
	}
	return nc
}
