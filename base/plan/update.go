// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target. The
// mechanism depends on unique name string identifiers to determine
// whether an element is currently configured correctly. This is the
// standard keyed-list reconciliation step that drives declarative
// configuration of imperative object lists.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types implement to specify their name
// in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Update ensures that the elements of the given slice contain the
// elements according to the plan, specified by unique element names,
// with n = total number of items in the target list. If a new item
// is needed, new is called to create it for the given name at the
// given index position, and then init is called on it after it has
// been inserted. If destroy is non-nil, it is called on any element
// being removed from the slice. It reports whether any changes were
// made. Duplicate names are logged and produce undefined ordering.
func Update[T Namer](s *[]T, n int, name func(i int) string, new func(name string, i int) T, init func(e T, i int), destroy func(e T)) bool {
	names := make([]string, n)
	nmap := make(map[string]int, n)
	for i := range n {
		nm := name(i)
		names[i] = nm
		if _, has := nmap[nm]; has {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		nmap[nm] = i
	}
	mods := false
	r := *s
	// remove anything not in the target list, back to front
	for i := len(r) - 1; i >= 0; i-- {
		nm := r[i].PlanName()
		if _, ok := nmap[nm]; ok {
			continue
		}
		mods = true
		if destroy != nil {
			destroy(r[i])
		}
		r = slices.Delete(r, i, i+1)
	}
	// add and move items as needed, in order so positions are guaranteed
	for i, tn := range names {
		ci := slices.IndexFunc(r, func(e T) bool { return e.PlanName() == tn })
		if ci < 0 { // not currently on the list
			mods = true
			ne := new(tn, i)
			r = slices.Insert(r, i, ne)
			if init != nil {
				init(ne, i)
			}
		} else if ci != i { // on the list but in the wrong place
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	*s = r
	return mods
}
