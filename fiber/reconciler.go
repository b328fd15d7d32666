// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"reflect"
	"strconv"

	"github.com/changqingniubi/react-three-fiber/base/plan"
)

// planNameFor returns the plan identity of a child spec within its
// parent. The kind is baked into the name so that a changed kind
// never matches the old instance: the old one is disposed and a new
// one created at the same graph position. Keys give stable identity
// across position changes; unkeyed children match by position.
func planNameFor(spec *NodeSpec, i int) string {
	if spec.Key != "" {
		return spec.Kind + ":" + spec.Key
	}
	return spec.Kind + ":" + strconv.Itoa(i)
}

// contextRoot returns the state container that children of the given
// instance render into: the portal enclave for portal markers, and
// the instance's own root otherwise.
func contextRoot(inst *Instance) *RootState {
	if inst.enclave != nil {
		return inst.enclave
	}
	return inst.root
}

// reconcileChildren runs one reconciliation pass for the children of
// the given parent instance against the given specs. The keyed-list
// diff itself is delegated to [plan.Update]; this drives the
// lifecycle operations (create, attach, commit, move, remove) it
// implies. An error aborts the pass; instances committed before the
// failure keep their applied state.
func (rt *Root) reconcileChildren(parent *Instance, specs []*NodeSpec) error {
	root := contextRoot(parent)
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = planNameFor(spec, i)
	}

	// construct targets for incoming children before any mutation,
	// so an unknown kind aborts the pass without orphan edits
	existing := make(map[string]*Instance, len(parent.Children))
	for _, c := range parent.Children {
		existing[c.name] = c
	}
	created := make(map[string]*Instance, len(specs))
	for i, spec := range specs {
		if _, ok := existing[names[i]]; ok {
			continue
		}
		if _, ok := created[names[i]]; ok {
			continue
		}
		inst, err := newInstance(spec, root, rt.registry)
		if err != nil {
			return err
		}
		inst.name = names[i]
		created[names[i]] = inst
	}

	plan.Update(&parent.Children, len(specs),
		func(i int) string {
			return names[i]
		}, func(name string, i int) *Instance {
			return created[name]
		}, func(child *Instance, i int) {
			child.Parent = parent
		}, func(child *Instance) {
			rt.removeChild(parent, child)
		},
	)

	// keep committed siblings in the graph even when a later child
	// aborts the pass
	var firstErr error
	for i, spec := range specs {
		if err := rt.updateChild(parent, parent.Children[i], spec); err != nil {
			firstErr = err
			break
		}
	}
	syncGraphChildren(parent)
	if firstErr != nil {
		return firstErr
	}

	for i, spec := range specs {
		if err := rt.reconcileChildren(parent.Children[i], spec.Children); err != nil {
			return err
		}
	}
	return nil
}

// updateChild commits one child instance against its spec: attach
// declaration changes, constructor argument changes, primitive
// object swaps, binding, and the additive prop diff.
func (rt *Root) updateChild(parent, child *Instance, spec *NodeSpec) error {
	child.Parent = parent
	if err := child.setAttach(spec.Attach); err != nil {
		return err
	}

	switch {
	case spec.portal != nil:
		if err := rt.updatePortal(parent, child, spec); err != nil {
			return err
		}
	case child.Primitive && child.mounted:
		if obj, ok := spec.Props["object"]; ok && !sameRef(obj, child.Target) {
			rt.swapTarget(parent, child, obj)
		}
	case child.mounted && !reflect.DeepEqual(child.Args, spec.Args):
		// args are construction-only; changing them rebuilds the target
		if err := rt.rebuildTarget(parent, child, spec); err != nil {
			return err
		}
	}

	// re-run the attach resolver when the binding mode or slot moved;
	// detach under the old mode before attaching under the new one
	if child.attached != attachNone {
		desired := child.desiredMode()
		if desired != child.attached || (desired == attachSlot && child.attachedKey != child.Attach) {
			detachInstance(parent, child)
		}
	}
	if child.attached == attachNone {
		if err := attachInstance(parent, child); err != nil {
			return err
		}
	}

	if err := commitUpdate(child, spec.Props); err != nil {
		return err
	}
	child.mounted = true
	return nil
}

// swapTarget replaces a primitive's wrapped object with a new one.
// The old object is detached with its managed attachments dropped;
// the instance keeps its graph position, and all attachments and
// props are re-created against the new object by the remainder of
// the pass. Nothing is disposed: both objects are externally owned.
func (rt *Root) swapTarget(parent, child *Instance, obj any) {
	for i := len(child.Children) - 1; i >= 0; i-- {
		detachInstance(child, child.Children[i])
	}
	detachInstance(parent, child)
	child.Target = obj
	child.Props = map[string]any{}
}

// rebuildTarget disposes a child's target and constructs a fresh one
// from the new constructor arguments, at the same graph position.
func (rt *Root) rebuildTarget(parent, child *Instance, spec *NodeSpec) error {
	obj, err := rt.registry.New(spec.Kind, spec.Args...)
	if err != nil {
		return err
	}
	for i := len(child.Children) - 1; i >= 0; i-- {
		detachInstance(child, child.Children[i])
	}
	detachInstance(parent, child)
	child.disposeTargetOnly()
	child.Target = obj
	child.Args = spec.Args
	child.Props = map[string]any{}
	return nil
}

// removeChild unmounts the child from the parent: it always detaches
// before any disposal, then disposes the subtree depth-first in
// post-order (children before parents). Primitives and targets
// marked non-owned are detached but never disposed.
func (rt *Root) removeChild(parent, child *Instance) {
	detachInstance(parent, child)
	disposeTree(child)
}

// disposeTree disposes the given instance's subtree in strict
// children-before-parent order, detaching each child first. Children
// detach in reverse declaration order so a nested pierced slot (a
// texture in "material-map" behind a sibling's "material" slot)
// restores before the outer slot restore removes its path.
func disposeTree(inst *Instance) {
	for i := len(inst.Children) - 1; i >= 0; i-- {
		c := inst.Children[i]
		detachInstance(inst, c)
		disposeTree(c)
	}
	inst.Children = nil
	inst.dispose()
	inst.Parent = nil
}
