// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"maps"
	"os"
	"slices"
	"time"

	"github.com/changqingniubi/react-three-fiber/base/errors"
	"github.com/changqingniubi/react-three-fiber/base/logx"
	"github.com/changqingniubi/react-three-fiber/base/reflectx"
	"github.com/changqingniubi/react-three-fiber/math32"
	"github.com/changqingniubi/react-three-fiber/three"
	"github.com/pelletier/go-toml/v2"
)

// CameraConfig is the camera part of a [Config] patch. Nil fields
// are left unchanged.
type CameraConfig struct {

	// Position is the initial camera position.
	Position *math32.Vector3 `toml:"position,omitempty"`

	// Zoom is the camera zoom factor.
	Zoom *float32 `toml:"zoom,omitempty"`

	// Fov is the vertical field of view in degrees (perspective only).
	Fov *float32 `toml:"fov,omitempty"`

	// Near and Far are the clipping plane distances.
	Near *float32 `toml:"near,omitempty"`
	Far  *float32 `toml:"far,omitempty"`
}

// PerformanceConfig is the adaptive quality part of a [Config] patch.
type PerformanceConfig struct {

	// Min is the lower throttle bound.
	Min *float32 `toml:"min,omitempty"`

	// Debounce is how long after the last regression full quality
	// is restored.
	Debounce *time.Duration `toml:"debounce,omitempty"`
}

// Config is a partial configuration patch merged onto a root's state
// by [Root.Configure]. Nil fields are left unchanged, so repeated
// merges are idempotent. Mode convenience flags (Linear, Flat,
// Shadows, Legacy) are applied before the explicit GL patch, so
// explicit GL values win on conflict.
type Config struct {

	// Orthographic selects the camera kind: orthographic when true,
	// perspective otherwise (the default).
	Orthographic *bool `toml:"orthographic,omitempty"`

	// Camera is the initial camera transform and projection patch.
	Camera *CameraConfig `toml:"camera,omitempty"`

	// DPR is the device-pixel-ratio policy: one element is a direct
	// target, two elements are a [min, max] clamp range applied to
	// the initial ratio only.
	DPR []float32 `toml:"dpr,omitempty"`

	// Performance is the adaptive quality patch.
	Performance *PerformanceConfig `toml:"performance,omitempty"`

	// Shadows enables the default soft shadow technique.
	Shadows *bool `toml:"shadows,omitempty"`

	// Linear disables gamma-correct output encoding when true.
	Linear *bool `toml:"linear,omitempty"`

	// Flat disables tone mapping when true.
	Flat *bool `toml:"flat,omitempty"`

	// Legacy toggles the process-wide color management compatibility
	// mode.
	Legacy *bool `toml:"legacy,omitempty"`

	// Frameloop selects when frames are rendered:
	// always, demand, or never.
	Frameloop *Frameloop `toml:"frameloop,omitempty"`

	// GL is a property patch applied to the renderer. Keys naming
	// renderer fields (dash-pierced paths allowed) are assigned;
	// unrecognized keys pass through to the renderer's Props surface.
	GL map[string]any `toml:"gl,omitempty"`

	// GLFactory fully constructs the renderer for the target surface.
	// Supplying a factory reconstructs the renderer even if one
	// exists; without one, later GL patches apply additively to the
	// existing renderer.
	GLFactory func(surface any) *three.Renderer `toml:"-"`
}

// LoadConfig reads a [Config] from the given TOML file.
func LoadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, "fiber: loading config %q", filename)
	}
	return cfg, nil
}

// SaveConfig writes the given [Config] to the given TOML file.
// The GL factory function is not serialized.
func SaveConfig(cfg *Config, filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "fiber: saving config %q", filename)
	}
	return os.WriteFile(filename, b, 0666)
}

// Configure merges the given partial configuration onto the root's
// state. It is idempotent across repeated renders: only fields
// present in the patch change anything. Merge order on conflicts is
// mode convenience flags first, explicit GL patch second, so
// last-applied (explicit) values win. Configuring an unmounted root
// is a no-op.
func (rt *Root) Configure(cfg *Config) *Root {
	st := rt.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if cfg == nil || !rt.mounted {
		return rt
	}

	if cfg.GLFactory != nil {
		if st.Renderer != nil {
			st.Renderer.Dispose()
			logx.PrintlnDebug("fiber: reconstructing renderer for root", st.ID)
		}
		st.Renderer = cfg.GLFactory(rt.surface)
		st.Renderer.SetPixelRatio(st.Viewport.Dpr)
	} else if st.Renderer == nil {
		st.Renderer = three.NewRenderer(rt.surface)
		st.Renderer.SetPixelRatio(st.Viewport.Dpr)
	}

	rt.configureCamera(cfg)

	// mode convenience flags before the explicit GL patch
	if cfg.Legacy != nil {
		st.Legacy = *cfg.Legacy
		three.ColorManagement.Enabled = !st.Legacy
	}
	if cfg.Linear != nil {
		st.Linear = *cfg.Linear
		if st.Linear {
			st.Renderer.OutputColorSpace = three.LinearColorSpace
		} else {
			st.Renderer.OutputColorSpace = three.SRGBColorSpace
		}
	}
	if cfg.Flat != nil {
		st.Flat = *cfg.Flat
		if st.Flat {
			st.Renderer.ToneMapping = three.NoToneMapping
		} else {
			st.Renderer.ToneMapping = three.ACESFilmicToneMapping
		}
	}
	if cfg.Shadows != nil {
		st.Shadows = *cfg.Shadows
		st.Renderer.ShadowMap.Enabled = st.Shadows
		if st.Shadows {
			st.Renderer.ShadowMap.Type = three.PCFSoftShadowMap
		}
	}

	switch len(cfg.DPR) {
	case 1:
		st.SetDpr(cfg.DPR[0])
	case 2:
		st.dprMin, st.dprMax = cfg.DPR[0], cfg.DPR[1]
		st.dprClamped = true
	}

	if cfg.Performance != nil {
		if cfg.Performance.Min != nil {
			st.Performance.Min = *cfg.Performance.Min
		}
		if cfg.Performance.Debounce != nil {
			st.Performance.Debounce = *cfg.Performance.Debounce
		}
	}
	if cfg.Frameloop != nil {
		st.Frameloop = *cfg.Frameloop
	}

	// explicit GL values override flag-derived defaults;
	// unrecognized keys pass through to the renderer's own surface
	for _, key := range slices.Sorted(maps.Keys(cfg.GL)) {
		value := cfg.GL[key]
		if err := reflectx.SetFieldPath(st.Renderer, key, value); err != nil {
			st.Renderer.Props[key] = value
		}
	}
	return rt
}

// configureCamera applies the camera part of a patch: kind selection
// (reconstructing only when the kind changes) and projection values.
func (rt *Root) configureCamera(cfg *Config) {
	st := rt.state
	ortho := cfg.Orthographic != nil && *cfg.Orthographic
	switch {
	case st.Camera == nil:
		if ortho {
			st.Camera = three.NewOrthographicCamera(st.Size.Width, st.Size.Height)
		} else {
			cam := three.NewPerspectiveCamera(75, aspect(st.Size))
			cam.Position.Set(0, 0, 5)
			st.Camera = cam
		}
	case cfg.Orthographic != nil:
		_, isOrtho := st.Camera.(*three.OrthographicCamera)
		if ortho != isOrtho {
			pos := st.Camera.AsObject3D().Position
			if ortho {
				st.Camera = three.NewOrthographicCamera(st.Size.Width, st.Size.Height)
			} else {
				st.Camera = three.NewPerspectiveCamera(75, aspect(st.Size))
			}
			st.Camera.AsObject3D().Position = pos
		}
	}
	cc := cfg.Camera
	if cc == nil {
		return
	}
	cb := st.Camera.AsCameraBase()
	if cc.Position != nil {
		cb.Position = *cc.Position
	}
	if cc.Zoom != nil {
		cb.Zoom = *cc.Zoom
	}
	if cc.Near != nil {
		cb.Near = *cc.Near
	}
	if cc.Far != nil {
		cb.Far = *cc.Far
	}
	if cc.Fov != nil {
		if pc, ok := st.Camera.(*three.PerspectiveCamera); ok {
			pc.Fov = *cc.Fov
		}
	}
}
