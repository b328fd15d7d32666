// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// ToneMapping selects the tone mapping operator applied to rendered output.
type ToneMapping int32

const (
	// NoToneMapping disables tone mapping.
	NoToneMapping ToneMapping = iota

	// LinearToneMapping applies linear exposure scaling only.
	LinearToneMapping

	// ACESFilmicToneMapping applies the ACES filmic curve; this is
	// the gamma-correct default.
	ACESFilmicToneMapping
)

// ColorSpace selects the output color space encoding.
type ColorSpace int32

const (
	// LinearColorSpace outputs linear, non-gamma-corrected color.
	LinearColorSpace ColorSpace = iota

	// SRGBColorSpace outputs sRGB gamma-encoded color; this is the default.
	SRGBColorSpace
)

// ShadowMapType selects the shadow filtering technique.
type ShadowMapType int32

const (
	// BasicShadowMap is unfiltered hard shadows.
	BasicShadowMap ShadowMapType = iota

	// PCFShadowMap filters shadow edges with percentage-closer filtering.
	PCFShadowMap

	// PCFSoftShadowMap is the soft-edged percentage-closer variant,
	// the default when shadows are enabled.
	PCFSoftShadowMap
)

// ShadowMap is the renderer's shadow rendering configuration.
type ShadowMap struct {

	// Enabled is whether shadow maps are rendered.
	Enabled bool

	// Type is the shadow filtering technique.
	Type ShadowMapType
}

// Renderer holds the rendering configuration for one drawing
// surface. It is the configuration surface the reconciler mutates;
// actual frame execution is driven externally.
type Renderer struct {

	// Surface is the drawing surface this renderer draws to.
	Surface any

	// PixelRatio is the device pixel ratio in effect.
	PixelRatio float32

	// ToneMapping is the tone mapping operator for output.
	ToneMapping ToneMapping

	// OutputColorSpace is the output color encoding.
	OutputColorSpace ColorSpace

	// ShadowMap is the shadow rendering configuration.
	ShadowMap ShadowMap

	// Props holds renderer options that have no dedicated field;
	// unrecognized configuration keys land here.
	Props map[string]any

	// Frames is the number of frames rendered so far.
	Frames int

	disposed bool
}

// NewRenderer returns a new [Renderer] for the given drawing surface,
// with gamma-correct defaults (ACES filmic tone mapping, sRGB output).
func NewRenderer(surface any) *Renderer {
	return &Renderer{
		Surface:          surface,
		PixelRatio:       1,
		ToneMapping:      ACESFilmicToneMapping,
		OutputColorSpace: SRGBColorSpace,
		Props:            map[string]any{},
	}
}

// SetPixelRatio sets the device pixel ratio in effect.
func (rd *Renderer) SetPixelRatio(dpr float32) {
	rd.PixelRatio = dpr
}

// Render records one frame of the given scene with the given camera.
// Frame execution is external; this only advances the frame count.
func (rd *Renderer) Render(scene *Scene, camera Camera) {
	rd.Frames++
}

// Dispose releases the renderer's resources for its surface.
// Repeated calls are a no-op.
func (rd *Renderer) Dispose() {
	rd.disposed = true
}

// Disposed returns whether the renderer has been disposed.
func (rd *Renderer) Disposed() bool {
	return rd.disposed
}
