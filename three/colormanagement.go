// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// ColorManagement is the process-wide color management state.
// When Enabled, colors supplied in sRGB are converted to working
// linear space automatically; legacy mode disables this for
// compatibility with content authored without color management.
var ColorManagement = &colorManagement{Enabled: true}

type colorManagement struct {

	// Enabled is whether automatic color space conversion is active.
	Enabled bool
}
