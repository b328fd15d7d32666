// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Scene is the root of a rendered object graph. Anything to be
// rendered must be reachable from a Scene.
type Scene struct {
	Object3D

	// Background is the scene background: typically a [*Color] or a
	// [*Texture], attached by name rather than as an ordinary child.
	Background any
}

// NewScene returns a new [Scene].
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	sc.setThis(sc)
	return sc
}
