// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// LightBase holds the properties common to all lights.
type LightBase struct {
	Object3D

	// Color is the color of the light.
	Color Color

	// Intensity is the brightness of the light; it defaults to 1.
	Intensity float32
}

// LightDefaults sets the default light values.
func (lb *LightBase) LightDefaults() {
	lb.Defaults()
	lb.Color.Set(1, 1, 1)
	lb.Intensity = 1
}

// AmbientLight illuminates all objects equally from no particular direction.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new [AmbientLight] with default values.
func NewAmbientLight() *AmbientLight {
	lt := &AmbientLight{}
	lt.LightDefaults()
	lt.setThis(lt)
	return lt
}

// PointLight emits light in all directions from its position.
type PointLight struct {
	LightBase

	// Distance is the range of the light; 0 means unlimited.
	Distance float32

	// Decay is how quickly the light dims with distance; it defaults to 2.
	Decay float32
}

// NewPointLight returns a new [PointLight] with default values.
func NewPointLight() *PointLight {
	lt := &PointLight{}
	lt.LightDefaults()
	lt.setThis(lt)
	lt.Decay = 2
	return lt
}

// DirectionalLight emits parallel light rays along its orientation,
// like sunlight.
type DirectionalLight struct {
	LightBase

	// CastShadow is whether the light casts shadows.
	CastShadow bool
}

// NewDirectionalLight returns a new [DirectionalLight] with default values.
func NewDirectionalLight() *DirectionalLight {
	lt := &DirectionalLight{}
	lt.LightDefaults()
	lt.setThis(lt)
	return lt
}
