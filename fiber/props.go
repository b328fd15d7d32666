// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/changqingniubi/react-three-fiber/base/reflectx"
	"github.com/changqingniubi/react-three-fiber/three"
)

// reservedKeys are prop keys excluded from direct assignment onto
// the target; they are handled by other parts of the lifecycle.
var reservedKeys = map[string]struct{}{
	"attach":   {},
	"args":     {},
	"key":      {},
	"children": {},
	"object":   {},
	"dispose":  {},
}

// applyProps applies the given property set onto the instance's
// target, in sorted key order for determinism. Dash-separated keys
// pierce into nested objects; event-shaped keys update handler
// registration; reserved keys are recorded but not assigned.
func applyProps(inst *Instance, props map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(props)) {
		if err := applyProp(inst, key, props[key]); err != nil {
			return err
		}
	}
	return nil
}

// applyProp applies a single property onto the instance's target.
func applyProp(inst *Instance, key string, value any) error {
	if _, res := reservedKeys[key]; res {
		if key == "dispose" {
			if b, ok := value.(bool); value == nil || (ok && !b) {
				inst.noDispose = true
			}
		}
		inst.Props[key] = value
		return nil
	}
	if isEventKey(key) {
		return setHandler(inst, key, value)
	}
	old, _ := reflectx.FieldPathValue(inst.Target, key)
	if err := reflectx.SetFieldPath(inst.Target, key, value); err != nil {
		return newPropertyPathError(inst.Kind, key, err)
	}
	markNeedsUpdate(old, value)
	inst.Props[key] = value
	return nil
}

// markNeedsUpdate flags a newly assigned sub-object for re-upload
// when it replaces a different prior value and carries the
// needs-update convention (e.g. a texture bound into a new slot).
func markNeedsUpdate(old, value any) {
	if value == nil || sameRef(old, value) {
		return
	}
	if u, ok := value.(three.Updatable); ok {
		u.MarkNeedsUpdate()
	}
}

// sameRef reports whether two prop values are the same comparable
// value; uncomparable values are never considered the same.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// setHandler updates the instance's handler for an event-shaped prop
// key and synchronizes its interaction registry membership.
func setHandler(inst *Instance, key string, value any) error {
	var h EventHandler
	switch f := value.(type) {
	case nil:
	case EventHandler:
		h = f
	case func(*Event):
		h = f
	case func():
		h = func(*Event) { f() }
	default:
		return fmt.Errorf("fiber: prop %q must be an event handler, got %T", key, value)
	}
	if h == nil {
		delete(inst.handlers, key)
	} else {
		if inst.handlers == nil {
			inst.handlers = map[string]EventHandler{}
		}
		inst.handlers[key] = h
	}
	inst.Props[key] = value
	if inst.root != nil && inst.root.Events != nil {
		inst.root.Events.update(inst)
	}
	return nil
}

// commitUpdate diffs the new property set against the last-applied
// one key by key and reapplies only keys whose values changed.
// Props are additive-apply: keys absent from the new set are not
// reverted, matching the one-directional nature of imperative
// mutation. An error leaves earlier keys applied (not rolled back).
func commitUpdate(inst *Instance, newProps map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(newProps)) {
		nv := newProps[key]
		if ov, had := inst.Props[key]; had && equalProp(ov, nv) {
			continue
		}
		if err := applyProp(inst, key, nv); err != nil {
			return err
		}
	}
	return nil
}

// equalProp reports whether two prop values are equal for diffing.
// Function values never compare equal, so handlers are re-recorded;
// handler re-registration is idempotent.
func equalProp(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
