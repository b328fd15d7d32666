// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// PathSeparator is the separator used in pierced property paths;
// each separator descends one nested property level on the target.
const PathSeparator = "-"

// ErrPathUndefined indicates that a pierced property path traverses
// an intermediate that does not exist or is nil on the target.
var ErrPathUndefined = errors.New("property path traverses an undefined intermediate")

// fieldByNameFold returns the field of the given struct value whose
// name matches the given segment case-insensitively, so that lower
// camel case property keys resolve to exported Go fields.
func fieldByNameFold(v reflect.Value, segment string) reflect.Value {
	return v.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, segment)
	})
}

// descend resolves one path segment on the given value, which must
// be a struct (or addressable map) one level up from the result.
// The returned value is addressable when the input is.
func descend(v reflect.Value, segment string) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Struct:
		f := fieldByNameFold(v, segment)
		if !f.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: no field %q on %s", ErrPathUndefined, segment, v.Type())
		}
		return f, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("%w: map %s is not string-keyed", ErrPathUndefined, v.Type())
		}
		mv := v.MapIndex(reflect.ValueOf(segment))
		if !mv.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: no key %q in map", ErrPathUndefined, segment)
		}
		return mv, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot descend into %s at %q", ErrPathUndefined, v.Kind(), segment)
}

// FieldPathValue returns the value at the given dash-pierced property
// path on the given target object, which must be a non-nil pointer
// for struct targets. It returns [ErrPathUndefined] if any path
// segment does not resolve.
func FieldPathValue(target any, path string) (any, error) {
	v := Underlying(reflect.ValueOf(target))
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil target for path %q", ErrPathUndefined, path)
	}
	segs := strings.Split(path, PathSeparator)
	for i, seg := range segs {
		f, err := descend(v, seg)
		if err != nil {
			return nil, err
		}
		if i == len(segs)-1 {
			return f.Interface(), nil
		}
		v = Underlying(f)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: nil intermediate %q in path %q", ErrPathUndefined, seg, path)
		}
	}
	return nil, fmt.Errorf("%w: empty path", ErrPathUndefined)
}

// SetFieldPath sets the property at the given dash-pierced path on
// the given target object to the given value, coercing it per
// [SetRobust] semantics. The target must be a non-nil pointer for
// struct assignment to be settable. An undefined intermediate
// segment returns [ErrPathUndefined] wrapped with path context,
// never failing silently.
func SetFieldPath(target any, path string, value any) error {
	v := Underlying(reflect.ValueOf(target))
	if !v.IsValid() {
		return fmt.Errorf("%w: nil target for path %q", ErrPathUndefined, path)
	}
	segs := strings.Split(path, PathSeparator)
	for i, seg := range segs {
		last := i == len(segs)-1
		if v.Kind() == reflect.Map {
			if !last {
				mv, err := descend(v, seg)
				if err != nil {
					return err
				}
				v = Underlying(mv)
				if !v.IsValid() {
					return fmt.Errorf("%w: nil intermediate %q in path %q", ErrPathUndefined, seg, path)
				}
				continue
			}
			if v.Type().Key().Kind() != reflect.String {
				return fmt.Errorf("%w: map %s is not string-keyed", ErrPathUndefined, v.Type())
			}
			ev := reflect.New(v.Type().Elem()).Elem()
			if err := setValueRobust(ev, value); err != nil {
				return fmt.Errorf("path %q: %w", path, err)
			}
			v.SetMapIndex(reflect.ValueOf(seg), ev)
			return nil
		}
		f, err := descend(v, seg)
		if err != nil {
			return err
		}
		if last {
			if !f.CanSet() {
				return fmt.Errorf("%w: field %q in path %q is not settable", ErrPathUndefined, seg, path)
			}
			if err := setValueRobust(f, value); err != nil {
				return fmt.Errorf("path %q: %w", path, err)
			}
			return nil
		}
		v = Underlying(f)
		if !v.IsValid() {
			return fmt.Errorf("%w: nil intermediate %q in path %q", ErrPathUndefined, seg, path)
		}
	}
	return fmt.Errorf("%w: empty path", ErrPathUndefined)
}
