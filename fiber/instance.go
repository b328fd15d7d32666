// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"github.com/changqingniubi/react-three-fiber/three"
)

// KindPrimitive is the special kind tag that wraps an externally
// supplied object (the "object" prop) instead of constructing one.
// Primitive targets are externally owned: they are detached but
// never disposed on unmount, and swapping the wrapped object across
// renders preserves the instance's graph position.
const KindPrimitive = "primitive"

// kindPortal is the internal kind tag for portal boundary markers
// produced by [CreatePortal].
const kindPortal = "portal"

// attachMode is the resolved binding strategy of a mounted instance:
// a tagged variant rather than subtype behavior, so the resolver can
// switch modes across renders.
type attachMode int32

const (
	// attachNone means the instance is not currently bound to a parent.
	attachNone attachMode = iota

	// attachCustom means a [BindFunc]/[UnbindFunc] pair manages binding.
	attachCustom

	// attachSlot means the instance is bound into a named slot on the
	// parent target.
	attachSlot

	// attachChild means ordinary child-list insertion, either in the
	// parent target's object graph or in-memory only for parents
	// without a child-list capability.
	attachChild
)

// Instance wraps one object from the retained graph together with
// its reconciliation metadata. Instances are created and mutated
// only by render passes; external code reaches the wrapped object
// through [Instance.Public].
type Instance struct {

	// Kind is the lowercase type tag this instance was constructed from.
	Kind string

	// Target is the wrapped graph object. It is exclusively owned by
	// this instance while mounted, except for primitives, whose
	// target is supplied and owned externally.
	Target any

	// Props is the last-applied property set, kept for diffing on update.
	Props map[string]any

	// Args are the constructor arguments the target was built with.
	Args []any

	// Parent is a back-reference to the owning instance, used for
	// event bubbling and attach bookkeeping only; ownership flows
	// strictly parent to child through Children.
	Parent *Instance

	// Children is the ordered list of child instances present in the
	// graph. Children bound through a slot or custom attach functions
	// are included here for lifecycle purposes but are not part of
	// the target's ordinary child list.
	Children []*Instance

	// Attach names a single slot on the parent target (possibly
	// dash-pierced) that this instance binds into, instead of the
	// ordinary child list.
	Attach string

	// AttachFns, if non-nil, supplies fully custom bind/unbind behavior.
	AttachFns *AttachFns

	// Hidden marks a non-graphical marker instance (a portal
	// boundary) that must not itself enter the render graph.
	Hidden bool

	// Primitive is whether the target is externally owned.
	Primitive bool

	// name is the plan identity of this instance within its parent.
	name string

	// root is the state container this instance renders into; portal
	// subtrees carry their enclave state here.
	root *RootState

	// handlers holds the event handlers from event-shaped props,
	// keyed by prop name (onClick, ...).
	handlers map[string]EventHandler

	// attached is the binding mode currently in effect.
	attached attachMode

	// attachedKey is the slot path in effect at mount time, so a
	// changed declaration still detaches under the old key.
	attachedKey string

	// mounted is whether the instance has completed its first commit.
	mounted bool

	// enclave is the derived state container for portal markers;
	// children of the marker render into it instead of root.
	enclave *RootState

	// detach undoes the current custom binding; set at bind time.
	detach func()

	// savedSlot is the slot's value before this instance was bound
	// into it, restored at detach.
	savedSlot any

	// noDispose marks the target as non-owned (dispose prop set to
	// false): detached on unmount but never disposed.
	noDispose bool

	// disposed guards dispose idempotence.
	disposed bool
}

// PlanName returns the plan identity of the instance within its parent.
func (inst *Instance) PlanName() string {
	return inst.name
}

// Public returns the raw wrapped object for external use (ref
// forwarding). It is identity-stable across re-renders that preserve
// the logical instance, and changes only when a primitive's wrapped
// object is swapped.
func (inst *Instance) Public() any {
	return inst.Target
}

// Root returns the state container this instance renders into.
func (inst *Instance) Root() *RootState {
	return inst.root
}

// newInstance constructs an [Instance] for the given spec. The
// primitive kind wraps the spec's "object" prop without constructing;
// other kinds are resolved in the given registry.
func newInstance(spec *NodeSpec, root *RootState, reg *Registry) (*Instance, error) {
	inst := &Instance{
		Kind:  spec.Kind,
		Props: map[string]any{},
		Args:  spec.Args,
		root:  root,
	}
	if err := inst.setAttach(spec.Attach); err != nil {
		return nil, err
	}
	switch spec.Kind {
	case KindPrimitive:
		obj, ok := spec.Props["object"]
		if !ok || obj == nil {
			return nil, &UnknownKindError{Kind: KindPrimitive}
		}
		inst.Target = obj
		inst.Primitive = true
	case kindPortal:
		inst.Hidden = true
		inst.Primitive = true // the container is externally owned
		inst.Target = spec.portal.container
	default:
		obj, err := reg.New(spec.Kind, spec.Args...)
		if err != nil {
			return nil, err
		}
		inst.Target = obj
	}
	return inst, nil
}

// setAttach records the attachment declaration from a spec,
// accepting a slot path string, a [BindFunc], or an [*AttachFns].
func (inst *Instance) setAttach(attach any) error {
	inst.Attach = ""
	inst.AttachFns = nil
	switch at := attach.(type) {
	case nil:
	case string:
		inst.Attach = at
	case BindFunc:
		inst.AttachFns = &AttachFns{Bind: at}
	case func(parent, self any) func():
		inst.AttachFns = &AttachFns{Bind: at}
	case *AttachFns:
		inst.AttachFns = at
	default:
		return &AttachResolutionError{Kind: inst.Kind, Reason: "attach must be a slot path string or bind/unbind functions"}
	}
	if inst.Attach != "" && inst.AttachFns != nil {
		return &AttachResolutionError{Kind: inst.Kind, Reason: "both a slot path and custom attach functions were supplied"}
	}
	return nil
}

// dispose releases the instance's target: it drops event
// registrations and calls the target's dispose hook. It never runs
// for primitives or targets marked non-owned, and repeated calls are
// a no-op by contract (there is no double-dispose error).
func (inst *Instance) dispose() {
	if inst.disposed {
		return
	}
	inst.disposed = true
	inst.clearHandlers()
	if inst.Primitive || inst.noDispose {
		return
	}
	if d, ok := inst.Target.(three.Disposer); ok {
		d.Dispose()
	}
}

// disposeTargetOnly releases the current target ahead of a rebuild,
// leaving the instance itself live for its replacement target.
func (inst *Instance) disposeTargetOnly() {
	if inst.Primitive || inst.noDispose {
		return
	}
	if d, ok := inst.Target.(three.Disposer); ok {
		d.Dispose()
	}
}

// clearHandlers removes all event handlers and deregisters the
// instance from its root's interaction registry.
func (inst *Instance) clearHandlers() {
	inst.handlers = nil
	if inst.root != nil && inst.root.Events != nil {
		inst.root.Events.update(inst)
	}
}
