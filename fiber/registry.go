// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"sync"

	"github.com/changqingniubi/react-three-fiber/base/errors"
	"github.com/changqingniubi/react-three-fiber/base/ordmap"
	"github.com/changqingniubi/react-three-fiber/base/reflectx"
	"github.com/changqingniubi/react-three-fiber/three"
)

// Constructor builds a new target object for a kind tag from
// positional constructor arguments.
type Constructor func(args ...any) (any, error)

// Registry maps kind tags to constructors. The set of constructible
// kinds is open: new kinds can be registered at any time with
// [Registry.Extend]. Registration is additive only (there is no
// teardown) and last-write-wins on name collisions. Register kinds
// before the first render that uses them.
type Registry struct {
	mu    sync.RWMutex
	kinds ordmap.Map[string, Constructor]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// Extend registers the given constructors under their kind tags.
// It is additive: existing kinds not named are unaffected, and a
// kind that is already registered is replaced (last-write-wins).
func (rg *Registry) Extend(kinds map[string]Constructor) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	for kind, ctor := range kinds {
		rg.kinds.Add(kind, ctor)
	}
}

// Has returns whether the given kind tag is registered.
func (rg *Registry) Has(kind string) bool {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return rg.kinds.Has(kind)
}

// Kinds returns the registered kind tags in registration order.
func (rg *Registry) Kinds() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return rg.kinds.Keys()
}

// New constructs a new target object for the given kind tag with the
// given positional arguments. It returns [UnknownKindError] if the
// kind is not registered.
func (rg *Registry) New(kind string, args ...any) (any, error) {
	rg.mu.RLock()
	ctor, ok := rg.kinds.ValueByKey(kind)
	rg.mu.RUnlock()
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	return ctor(args...)
}

// DefaultRegistry is the registry used by [NewRoot] roots. It is
// seeded with the built-in [three] kinds and extended by [Extend].
var DefaultRegistry = NewRegistry()

// Extend registers the given constructors in the [DefaultRegistry].
func Extend(kinds map[string]Constructor) {
	DefaultRegistry.Extend(kinds)
}

// argFloat returns the i-th argument coerced to float32,
// or def if it is absent or not coercible.
func argFloat(args []any, i int, def float32) float32 {
	if i >= len(args) {
		return def
	}
	f, err := reflectx.ToFloat32(args[i])
	if errors.Log(err) != nil {
		return def
	}
	return f
}

func init() {
	DefaultRegistry.Extend(map[string]Constructor{
		"group": func(args ...any) (any, error) {
			return three.NewGroup(), nil
		},
		"scene": func(args ...any) (any, error) {
			return three.NewScene(), nil
		},
		"mesh": func(args ...any) (any, error) {
			var geo three.Geometry
			var mat three.Material
			if len(args) > 0 {
				geo, _ = args[0].(three.Geometry)
			}
			if len(args) > 1 {
				mat, _ = args[1].(three.Material)
			}
			return three.NewMesh(geo, mat), nil
		},
		"points": func(args ...any) (any, error) {
			var geo three.Geometry
			var mat three.Material
			if len(args) > 0 {
				geo, _ = args[0].(three.Geometry)
			}
			if len(args) > 1 {
				mat, _ = args[1].(three.Material)
			}
			return three.NewPoints(geo, mat), nil
		},
		"color": func(args ...any) (any, error) {
			return three.NewColor(argFloat(args, 0, 0), argFloat(args, 1, 0), argFloat(args, 2, 0)), nil
		},
		"texture": func(args ...any) (any, error) {
			return three.NewTexture(nil), nil
		},
		"boxGeometry": func(args ...any) (any, error) {
			return three.NewBoxGeometry(argFloat(args, 0, 1), argFloat(args, 1, 1), argFloat(args, 2, 1)), nil
		},
		"sphereGeometry": func(args ...any) (any, error) {
			return three.NewSphereGeometry(argFloat(args, 0, 1)), nil
		},
		"meshBasicMaterial": func(args ...any) (any, error) {
			return three.NewMeshBasicMaterial(), nil
		},
		"meshStandardMaterial": func(args ...any) (any, error) {
			return three.NewMeshStandardMaterial(), nil
		},
		"perspectiveCamera": func(args ...any) (any, error) {
			return three.NewPerspectiveCamera(argFloat(args, 0, 75), argFloat(args, 1, 1)), nil
		},
		"orthographicCamera": func(args ...any) (any, error) {
			return three.NewOrthographicCamera(argFloat(args, 0, 2), argFloat(args, 1, 2)), nil
		},
		"ambientLight": func(args ...any) (any, error) {
			return three.NewAmbientLight(), nil
		},
		"pointLight": func(args ...any) (any, error) {
			return three.NewPointLight(), nil
		},
		"directionalLight": func(args ...any) (any, error) {
			return three.NewDirectionalLight(), nil
		},
	})
}
