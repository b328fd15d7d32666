// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nameObj struct {
	name string
}

func (n *nameObj) PlanName() string {
	return n.name
}

func assertNames(t *testing.T, names []string, items []*nameObj) {
	t.Helper()
	if len(names) != len(items) {
		t.Error("lengths of lists are not the same:", len(names), len(items))
	}
	for i, nm := range names {
		inm := items[i].PlanName()
		if nm != inm {
			t.Error("item at index:", i, "name mismatch, should be:", nm, "was:", inm)
		}
	}
}

func updateTo(s *[]*nameObj, names []string, destroy func(e *nameObj)) bool {
	return Update(s, len(names),
		func(i int) string { return names[i] },
		func(name string, i int) *nameObj { return &nameObj{name: name} },
		nil, destroy)
}

func TestUpdate(t *testing.T) {
	var s []*nameObj

	names1 := []string{"a", "b", "c"}
	changed := updateTo(&s, names1, nil)
	assertNames(t, names1, s)
	assert.True(t, changed)

	names2 := []string{"a", "aa", "b", "c"}
	changed = updateTo(&s, names2, nil)
	assertNames(t, names2, s)
	assert.True(t, changed)

	names3 := []string{"b", "a", "c"}
	changed = updateTo(&s, names3, nil)
	assertNames(t, names3, s)
	assert.True(t, changed)

	changed = updateTo(&s, names3, nil)
	assertNames(t, names3, s)
	assert.False(t, changed)

	changed = updateTo(&s, nil, nil)
	assertNames(t, nil, s)
	assert.True(t, changed)
}

func TestUpdatePreservesExisting(t *testing.T) {
	var s []*nameObj
	updateTo(&s, []string{"a", "b", "c"}, nil)
	a, c := s[0], s[2]

	updateTo(&s, []string{"c", "a"}, nil)
	assert.Same(t, c, s[0])
	assert.Same(t, a, s[1])
}

func TestUpdateDestroy(t *testing.T) {
	var s []*nameObj
	updateTo(&s, []string{"a", "b", "c"}, nil)

	var destroyed []string
	destroy := func(e *nameObj) {
		destroyed = append(destroyed, e.name)
	}
	updateTo(&s, []string{"b"}, destroy)
	assertNames(t, []string{"b"}, s)
	assert.Equal(t, []string{"c", "a"}, destroyed)
}

func TestUpdateInit(t *testing.T) {
	var s []*nameObj
	inited := map[string]int{}
	Update(&s, 2,
		func(i int) string { return []string{"x", "y"}[i] },
		func(name string, i int) *nameObj { return &nameObj{name: name} },
		func(e *nameObj, i int) { inited[e.name] = i },
		nil)
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, inited)
}
