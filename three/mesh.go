// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Mesh is a shaded solid in the scene: a [Geometry] shape rendered
// with a [Material] surface. Geometry and Material are single named
// slots, not ordinary children.
type Mesh struct {
	Object3D

	// Geometry is the shape of the mesh.
	Geometry Geometry

	// Material is the surface of the mesh.
	Material Material

	// CastShadow is whether the mesh casts shadows.
	CastShadow bool

	// ReceiveShadow is whether the mesh receives shadows.
	ReceiveShadow bool
}

// NewMesh returns a new [Mesh] with the given geometry and material,
// either of which may be nil and attached later.
func NewMesh(geometry Geometry, material Material) *Mesh {
	ms := &Mesh{}
	ms.Defaults()
	ms.setThis(ms)
	ms.Geometry = geometry
	ms.Material = material
	return ms
}

// Points renders a geometry as individual points using a material.
type Points struct {
	Object3D

	// Geometry holds the point positions.
	Geometry Geometry

	// Material is the point rendering material.
	Material Material
}

// NewPoints returns a new [Points] with the given geometry and material.
func NewPoints(geometry Geometry, material Material) *Points {
	pt := &Points{}
	pt.Defaults()
	pt.setThis(pt)
	pt.Geometry = geometry
	pt.Material = material
	return pt
}
