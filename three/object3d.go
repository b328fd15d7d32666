// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package three provides the retained 3D object graph that the fiber
// reconciler projects declarative trees onto: objects with parent and
// child links, cameras, lights, meshes, materials, textures, and the
// renderer configuration surface. It deliberately stops at the
// construction and property-mutation contract; GPU resource upload
// and rasterization are outside its scope.
package three

import (
	"slices"

	"github.com/changqingniubi/react-three-fiber/math32"
)

// Object is the interface for all objects that live in the scene
// graph. The core functionality is defined on [Object3D], which all
// graph object types embed; AsObject3D provides access to it.
type Object interface {

	// AsObject3D returns the [Object3D] of this object, which holds
	// the core transform and parent / child graph links.
	AsObject3D() *Object3D
}

// Disposer is implemented by objects holding resources that must be
// explicitly released. Dispose implementations are idempotent.
type Disposer interface {
	Dispose()
}

// Updatable is implemented by objects that carry a needs-update
// convention: replacing them (or mutating them out of band) must
// flag them for re-upload.
type Updatable interface {

	// MarkNeedsUpdate flags the object for re-upload.
	MarkNeedsUpdate()
}

// Object3D is the base implementation for all scene graph objects.
// It holds the local transform and the parent / child links. The
// Parent link is a back-reference only; ownership flows strictly
// from parent to child through the Children list.
type Object3D struct {

	// Name is an optional name for finding this object in the graph.
	Name string

	// Position is the position of the object in local space.
	Position math32.Vector3

	// Rotation is the euler rotation of the object, in radians.
	Rotation math32.Vector3

	// Scale is the scale of the object; it defaults to (1, 1, 1).
	Scale math32.Vector3

	// Visible is whether the object is rendered; it defaults to true.
	Visible bool

	// Parent is the object this object is a child of, or nil.
	Parent Object

	// Children is the ordered list of child objects.
	Children []Object

	this Object
}

// NewObject3D returns a new [Object3D] with default transform values.
func NewObject3D() *Object3D {
	ob := &Object3D{}
	ob.Defaults()
	ob.this = ob
	return ob
}

// Defaults sets the default transform values on this object.
// It is called by all object constructors.
func (ob *Object3D) Defaults() {
	ob.Scale.SetScalar(1)
	ob.Visible = true
}

// AsObject3D returns this [Object3D].
func (ob *Object3D) AsObject3D() *Object3D {
	return ob
}

// asObject returns the outermost embedding object when known,
// falling back to the base itself.
func (ob *Object3D) asObject() Object {
	if ob.this != nil {
		return ob.this
	}
	return ob
}

// setThis records the outermost object for graph link purposes.
// All object constructors call this with the constructed value.
func (ob *Object3D) setThis(o Object) {
	ob.this = o
}

// NumChildren returns the number of children of this object.
func (ob *Object3D) NumChildren() int {
	return len(ob.Children)
}

// IndexOfChild returns the index of the given child in this object's
// children list, or -1 if it is not a child.
func (ob *Object3D) IndexOfChild(child Object) int {
	return slices.IndexFunc(ob.Children, func(o Object) bool {
		return o.AsObject3D() == child.AsObject3D()
	})
}

// AddChild appends the given object to this object's children,
// removing it from any previous parent first.
func (ob *Object3D) AddChild(child Object) {
	cb := child.AsObject3D()
	if cb.Parent != nil {
		cb.Parent.AsObject3D().RemoveChild(child)
	}
	ob.Children = append(ob.Children, child)
	cb.Parent = ob.asObject()
}

// InsertChild inserts the given object before the given sibling in
// this object's children. If before is nil or not a child, the
// object is appended.
func (ob *Object3D) InsertChild(child, before Object) {
	cb := child.AsObject3D()
	if cb.Parent != nil {
		cb.Parent.AsObject3D().RemoveChild(child)
	}
	idx := -1
	if before != nil {
		idx = ob.IndexOfChild(before)
	}
	if idx < 0 {
		ob.Children = append(ob.Children, child)
	} else {
		ob.Children = slices.Insert(ob.Children, idx, child)
	}
	cb.Parent = ob.asObject()
}

// RemoveChild removes the given object from this object's children,
// clearing its parent link. It is a no-op if the object is not a child.
func (ob *Object3D) RemoveChild(child Object) {
	idx := ob.IndexOfChild(child)
	if idx < 0 {
		return
	}
	ob.Children = slices.Delete(ob.Children, idx, idx+1)
	child.AsObject3D().Parent = nil
}

// RemoveChildren removes all children from this object.
func (ob *Object3D) RemoveChildren() {
	for _, child := range ob.Children {
		child.AsObject3D().Parent = nil
	}
	ob.Children = nil
}

// Group collects objects in a scene but has no geometry of its own.
// Its transform applies to everything under it.
type Group struct {
	Object3D

	// Background is an optional background color or texture bound
	// onto this group; it is used when the group is rendered as an
	// effective scene root.
	Background any
}

// NewGroup returns a new [Group].
func NewGroup() *Group {
	gp := &Group{}
	gp.Defaults()
	gp.setThis(gp)
	return gp
}
