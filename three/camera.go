// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Camera is the interface for all cameras; the core data is on
// [CameraBase], which camera types embed.
type Camera interface {
	Object

	// AsCameraBase returns the [CameraBase] of this camera.
	AsCameraBase() *CameraBase
}

// CameraBase holds the properties common to all cameras.
type CameraBase struct {
	Object3D

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Zoom is the zoom factor; it defaults to 1.
	Zoom float32
}

// AsCameraBase returns this [CameraBase].
func (cb *CameraBase) AsCameraBase() *CameraBase {
	return cb
}

// CameraDefaults sets the default camera projection values.
func (cb *CameraBase) CameraDefaults() {
	cb.Defaults()
	cb.Near = 0.1
	cb.Far = 1000
	cb.Zoom = 1
}

// PerspectiveCamera is a camera with perspective projection.
type PerspectiveCamera struct {
	CameraBase

	// Fov is the vertical field of view in degrees; it defaults to 75.
	Fov float32

	// Aspect is the frustum aspect ratio (width / height).
	Aspect float32
}

// NewPerspectiveCamera returns a new [PerspectiveCamera] with the
// given field of view in degrees and aspect ratio.
func NewPerspectiveCamera(fov, aspect float32) *PerspectiveCamera {
	pc := &PerspectiveCamera{}
	pc.CameraDefaults()
	pc.setThis(pc)
	pc.Fov = fov
	pc.Aspect = aspect
	return pc
}

// OrthographicCamera is a camera with orthographic projection.
type OrthographicCamera struct {
	CameraBase

	// Left, Right, Top and Bottom are the frustum extents.
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// NewOrthographicCamera returns a new [OrthographicCamera] with the
// given frustum width and height, centered on the origin.
func NewOrthographicCamera(width, height float32) *OrthographicCamera {
	oc := &OrthographicCamera{}
	oc.CameraDefaults()
	oc.setThis(oc)
	oc.Left = -width / 2
	oc.Right = width / 2
	oc.Top = height / 2
	oc.Bottom = -height / 2
	return oc
}
