// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"strings"
	"unicode"

	"github.com/changqingniubi/react-three-fiber/base/ordmap"
)

// Event is one interaction event dispatched to instance handlers.
// Pointer geometry testing happens externally; events arrive here
// already targeted at an instance.
type Event struct {

	// Type is the lowercase event type ("click", "pointerover", ...).
	Type string

	// Instance is the instance the event targets.
	Instance *Instance

	// Data is optional event payload from the external dispatcher.
	Data any

	// stopped is whether propagation to parent instances was stopped.
	stopped bool
}

// StopPropagation prevents the event from bubbling to parent instances.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// EventHandler handles one interaction event.
type EventHandler func(ev *Event)

// isEventKey reports whether a prop key is event-handler-shaped:
// "on" followed by a capitalized event name (onClick, onPointerOver).
func isEventKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on") && unicode.IsUpper(rune(key[2]))
}

// eventKeyForType returns the handler prop key for an event type:
// "click" becomes "onClick".
func eventKeyForType(typ string) string {
	if typ == "" {
		return ""
	}
	return "on" + strings.ToUpper(typ[:1]) + typ[1:]
}

// EventRegistry tracks the instances currently eligible for
// interaction dispatch in one root (or portal enclave). Membership
// follows handler count: an instance is inserted when its first
// handler is added and removed when its last one goes, with no
// duplicate entries.
type EventRegistry struct {
	interactive ordmap.Map[*Instance, struct{}]
}

// NewEventRegistry returns a new empty [EventRegistry].
func NewEventRegistry() *EventRegistry {
	return &EventRegistry{}
}

// update synchronizes the registry membership of the given instance
// with its current handler count.
func (er *EventRegistry) update(inst *Instance) {
	if len(inst.handlers) > 0 {
		if !er.interactive.Has(inst) {
			er.interactive.Add(inst, struct{}{})
		}
		return
	}
	er.interactive.DeleteKey(inst)
}

// Has returns whether the given instance is registered for dispatch.
func (er *EventRegistry) Has(inst *Instance) bool {
	return er.interactive.Has(inst)
}

// Len returns the number of registered instances.
func (er *EventRegistry) Len() int {
	return er.interactive.Len()
}

// Instances returns the registered instances in registration order.
func (er *EventRegistry) Instances() []*Instance {
	return er.interactive.Keys()
}

// Dispatch delivers the given event to its target instance's handler
// and bubbles it up through parent instances until stopped or the
// root is reached.
func (er *EventRegistry) Dispatch(ev *Event) {
	key := eventKeyForType(ev.Type)
	for inst := ev.Instance; inst != nil && !ev.stopped; inst = inst.Parent {
		if h, ok := inst.handlers[key]; ok {
			h(ev)
		}
	}
}
