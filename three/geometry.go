// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Geometry is the interface for all mesh shape data; the core data
// is on [GeometryBase], which geometry types embed.
type Geometry interface {

	// AsGeometryBase returns the [GeometryBase] of this geometry.
	AsGeometryBase() *GeometryBase
}

// GeometryBase is the base implementation for geometries. It stands
// in for GPU-resident vertex data, tracking only the disposal state
// that the reconciler depends on.
type GeometryBase struct {
	disposed bool
}

// AsGeometryBase returns this [GeometryBase].
func (gb *GeometryBase) AsGeometryBase() *GeometryBase {
	return gb
}

// Dispose releases the geometry's GPU-held resources.
// Repeated calls are a no-op.
func (gb *GeometryBase) Dispose() {
	gb.disposed = true
}

// Disposed returns whether the geometry has been disposed.
func (gb *GeometryBase) Disposed() bool {
	return gb.disposed
}

// BoxGeometry is a rectangular box shape.
type BoxGeometry struct {
	GeometryBase

	Width  float32
	Height float32
	Depth  float32
}

// NewBoxGeometry returns a new [BoxGeometry] with the given dimensions.
func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	return &BoxGeometry{Width: width, Height: height, Depth: depth}
}

// SphereGeometry is a UV sphere shape.
type SphereGeometry struct {
	GeometryBase

	Radius         float32
	WidthSegments  int
	HeightSegments int
}

// NewSphereGeometry returns a new [SphereGeometry] with the given
// radius and default segment counts.
func NewSphereGeometry(radius float32) *SphereGeometry {
	return &SphereGeometry{Radius: radius, WidthSegments: 32, HeightSegments: 16}
}
