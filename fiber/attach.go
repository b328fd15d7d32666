// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"github.com/changqingniubi/react-three-fiber/base/errors"
	"github.com/changqingniubi/react-three-fiber/base/reflectx"
	"github.com/changqingniubi/react-three-fiber/three"
)

// desiredMode returns the binding mode the instance's current
// attachment declaration resolves to, in priority order: custom
// bind/unbind functions, then a named slot, then the ordinary
// child list.
func (inst *Instance) desiredMode() attachMode {
	switch {
	case inst.AttachFns != nil:
		return attachCustom
	case inst.Attach != "":
		return attachSlot
	default:
		return attachChild
	}
}

// attachInstance binds the child into the parent under the mode its
// declaration resolves to. The caller must have detached any prior
// binding first; switching modes across renders always detaches
// under the old mode before attaching under the new one. Ordinary
// child-list graph insertion is position-dependent and is performed
// by syncGraphChildren; this only validates and records the mode.
func attachInstance(parent, child *Instance) error {
	if child.AttachFns != nil && child.Attach != "" {
		return &AttachResolutionError{Kind: child.Kind, Reason: "both a slot path and custom attach functions were supplied"}
	}
	if child.Hidden {
		// non-graphical markers never enter the render graph
		child.attached = attachChild
		return nil
	}
	switch child.desiredMode() {
	case attachCustom:
		if child.AttachFns.Bind == nil {
			return &AttachResolutionError{Kind: child.Kind, Reason: "custom attach requires a bind function"}
		}
		unbind := child.AttachFns.Bind(parent.Target, child.Target)
		fns := child.AttachFns
		pt, ct := parent.Target, child.Target
		child.detach = func() {
			if unbind != nil {
				unbind()
				return
			}
			if fns.Unbind != nil {
				fns.Unbind(pt, ct)
			}
		}
		child.attached = attachCustom
	case attachSlot:
		saved, err := reflectx.FieldPathValue(parent.Target, child.Attach)
		if err != nil {
			return newPropertyPathError(child.Kind, child.Attach, err)
		}
		if err := reflectx.SetFieldPath(parent.Target, child.Attach, child.Target); err != nil {
			return newPropertyPathError(child.Kind, child.Attach, err)
		}
		child.savedSlot = saved
		child.attachedKey = child.Attach
		if u, ok := child.Target.(three.Updatable); ok {
			u.MarkNeedsUpdate()
		}
		child.attached = attachSlot
	default:
		_, parentIsObject := parent.Target.(three.Object)
		_, childIsObject := child.Target.(three.Object)
		if parentIsObject && !childIsObject {
			return &AttachResolutionError{Kind: child.Kind, Reason: "target cannot enter the parent's child list and no slot or attach functions were supplied"}
		}
		child.attached = attachChild
	}
	return nil
}

// detachInstance undoes the child's current binding to the parent:
// custom bindings run their unbind, slot bindings restore the slot
// to its pre-attach value, and ordinary children are removed from
// the parent target's child list. Detaching an unbound instance is
// a no-op.
func detachInstance(parent, child *Instance) {
	switch child.attached {
	case attachNone:
		return
	case attachCustom:
		if child.detach != nil {
			child.detach()
			child.detach = nil
		}
	case attachSlot:
		errors.Log(reflectx.SetFieldPath(parent.Target, child.attachedKey, child.savedSlot))
		child.savedSlot = nil
		child.attachedKey = ""
	case attachChild:
		if child.Hidden {
			break
		}
		if po, ok := parent.Target.(three.Object); ok {
			if co, ok := child.Target.(three.Object); ok {
				po.AsObject3D().RemoveChild(co)
			}
		}
	}
	child.attached = attachNone
}

// syncGraphChildren makes the parent target's ordinary child list
// reflect the order of the parent instance's ordinary-mode children,
// inserting and moving targets as needed. Objects that are not
// managed by the reconciler (added imperatively) keep their places
// after the managed ones.
func syncGraphChildren(parent *Instance) {
	po, ok := parent.Target.(three.Object)
	if !ok {
		return
	}
	pb := po.AsObject3D()
	pos := 0
	for _, child := range parent.Children {
		if child.attached != attachChild || child.Hidden {
			continue
		}
		co, ok := child.Target.(three.Object)
		if !ok {
			continue
		}
		if cur := pb.IndexOfChild(co); cur == pos {
			pos++
			continue
		} else if cur >= 0 {
			pb.RemoveChild(co)
		}
		var before three.Object
		if pos < pb.NumChildren() {
			before = pb.Children[pos]
		}
		pb.InsertChild(co, before)
		pos++
	}
}
