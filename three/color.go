// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Color is an RGB color with float32 components in the 0..1 range.
type Color struct {
	R float32
	G float32
	B float32
}

// NewColor returns a new [Color] with the given components.
func NewColor(r, g, b float32) *Color {
	return &Color{R: r, G: g, B: b}
}

// Set sets this color's components.
func (c *Color) Set(r, g, b float32) {
	c.R = r
	c.G = g
	c.B = b
}
