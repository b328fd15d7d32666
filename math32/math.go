// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 vector and scalar math for the
// 3D scene graph, built on [github.com/chewxy/math32] for the
// scalar functions.
package math32

import "github.com/chewxy/math32"

// Pi is the float32 value of pi.
const Pi = math32.Pi

// DegToRadFactor converts degrees to radians when multiplied.
const DegToRadFactor = Pi / 180

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	return math32.Max(a, math32.Min(x, b))
}

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}
