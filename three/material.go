// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Material is the interface for all surface materials; the core
// data is on [MaterialBase], which material types embed.
type Material interface {

	// AsMaterialBase returns the [MaterialBase] of this material.
	AsMaterialBase() *MaterialBase
}

// MaterialBase holds the surface properties common to all materials.
type MaterialBase struct {

	// Color is the base surface color.
	Color Color

	// Map is the optional color texture.
	Map *Texture

	// Transparent is whether the material uses alpha blending.
	Transparent bool

	// Opacity is the overall opacity in the 0..1 range; it defaults to 1.
	Opacity float32

	// NeedsUpdate flags the material for re-upload after its
	// texture bindings or blend state change.
	NeedsUpdate bool

	disposed bool
}

// AsMaterialBase returns this [MaterialBase].
func (mb *MaterialBase) AsMaterialBase() *MaterialBase {
	return mb
}

// MaterialDefaults sets the default material values.
func (mb *MaterialBase) MaterialDefaults() {
	mb.Color.Set(1, 1, 1)
	mb.Opacity = 1
}

// MarkNeedsUpdate flags the material for re-upload.
func (mb *MaterialBase) MarkNeedsUpdate() {
	mb.NeedsUpdate = true
}

// Dispose releases the material's GPU-held resources.
// Repeated calls are a no-op.
func (mb *MaterialBase) Dispose() {
	mb.disposed = true
}

// Disposed returns whether the material has been disposed.
func (mb *MaterialBase) Disposed() bool {
	return mb.disposed
}

// MeshBasicMaterial is a flat-shaded material not affected by lights.
type MeshBasicMaterial struct {
	MaterialBase
}

// NewMeshBasicMaterial returns a new [MeshBasicMaterial] with default values.
func NewMeshBasicMaterial() *MeshBasicMaterial {
	mt := &MeshBasicMaterial{}
	mt.MaterialDefaults()
	return mt
}

// MeshStandardMaterial is a physically based material with
// roughness and metalness parameters.
type MeshStandardMaterial struct {
	MaterialBase

	// Roughness is the surface roughness in the 0..1 range; 1 is fully diffuse.
	Roughness float32

	// Metalness is how metallic the surface is, in the 0..1 range.
	Metalness float32
}

// NewMeshStandardMaterial returns a new [MeshStandardMaterial] with default values.
func NewMeshStandardMaterial() *MeshStandardMaterial {
	mt := &MeshStandardMaterial{}
	mt.MaterialDefaults()
	mt.Roughness = 1
	return mt
}
