// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "image"

// Texture is an image used by materials and scene backgrounds.
// It stands in for a GPU-resident texture, tracking the needs-update
// and disposal state that the reconciler depends on.
type Texture struct {

	// Name is an optional name for the texture.
	Name string

	// Image is the source image data, if any.
	Image image.Image

	// NeedsUpdate flags the texture for re-upload after its image
	// data changes or it is bound into a new slot.
	NeedsUpdate bool

	disposed bool
}

// NewTexture returns a new [Texture] with the given source image.
func NewTexture(img image.Image) *Texture {
	return &Texture{Image: img}
}

// MarkNeedsUpdate flags the texture for re-upload.
func (tx *Texture) MarkNeedsUpdate() {
	tx.NeedsUpdate = true
}

// Dispose releases the texture's GPU-held resources.
// Repeated calls are a no-op.
func (tx *Texture) Dispose() {
	tx.disposed = true
}

// Disposed returns whether the texture has been disposed.
func (tx *Texture) Disposed() bool {
	return tx.disposed
}
