// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
)

// Robust conversion functions for end-user settable properties.
// These deliberately trade type safety for generality, handling the
// common-sense cases (string <-> number, int <-> float, etc).

// ToBool robustly converts the given value to a bool.
func ToBool(v any) (bool, error) {
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return false, fmt.Errorf("reflectx.ToBool: nil value")
	}
	switch {
	case uv.Kind() == reflect.Bool:
		return uv.Bool(), nil
	case uv.CanInt():
		return uv.Int() != 0, nil
	case uv.CanUint():
		return uv.Uint() != 0, nil
	case uv.CanFloat():
		return uv.Float() != 0, nil
	case uv.Kind() == reflect.String:
		return strconv.ParseBool(uv.String())
	}
	return false, fmt.Errorf("reflectx.ToBool: cannot convert %T", v)
}

// ToFloat32 robustly converts the given value to a float32.
func ToFloat32(v any) (float32, error) {
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return 0, fmt.Errorf("reflectx.ToFloat32: nil value")
	}
	switch {
	case uv.CanFloat():
		return float32(uv.Float()), nil
	case uv.CanInt():
		return float32(uv.Int()), nil
	case uv.CanUint():
		return float32(uv.Uint()), nil
	case uv.Kind() == reflect.Bool:
		if uv.Bool() {
			return 1, nil
		}
		return 0, nil
	case uv.Kind() == reflect.String:
		f, err := strconv.ParseFloat(uv.String(), 32)
		return float32(f), err
	}
	return 0, fmt.Errorf("reflectx.ToFloat32: cannot convert %T", v)
}

// ToString robustly converts the given value to a string,
// using [fmt.Stringer] when implemented.
func ToString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// SetRobust robustly sets the to value from the from value.
// The to value must be a settable pointer. Values of identical or
// assignable types are set directly; numeric kinds, bools, and
// strings are coerced as needed. It returns an error if the set
// cannot be done.
func SetRobust(to, from any) error {
	if to == nil {
		return fmt.Errorf("reflectx.SetRobust: nil destination")
	}
	tv := reflect.ValueOf(to)
	tp := NonPointerValue(tv)
	if !tp.IsValid() || !tp.CanSet() {
		return fmt.Errorf("reflectx.SetRobust: destination %T is not settable; it must be a non-nil pointer", to)
	}
	return setValueRobust(tp, from)
}

// setValueRobust sets the given settable destination value from the
// given source, coercing kinds as needed.
func setValueRobust(dst reflect.Value, from any) error {
	if from == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	fv := reflect.ValueOf(from)
	if fv.Type().AssignableTo(dst.Type()) {
		dst.Set(fv)
		return nil
	}
	ufv := Underlying(fv)
	if ufv.IsValid() && ufv.Type().AssignableTo(dst.Type()) {
		dst.Set(ufv)
		return nil
	}
	switch dst.Kind() {
	case reflect.Bool:
		b, err := ToBool(from)
		if err != nil {
			return err
		}
		dst.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, err := ToFloat32(from)
		if err != nil {
			return err
		}
		dst.SetInt(int64(f))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, err := ToFloat32(from)
		if err != nil {
			return err
		}
		dst.SetUint(uint64(f))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := ToFloat32(from)
		if err != nil {
			return err
		}
		dst.SetFloat(float64(f))
		return nil
	case reflect.String:
		dst.SetString(ToString(from))
		return nil
	}
	if ufv.IsValid() && ufv.Type().ConvertibleTo(dst.Type()) && ufv.Kind() != reflect.String && dst.Kind() != reflect.String {
		dst.Set(ufv.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("reflectx.SetRobust: cannot set %s from %T", dst.Type(), from)
}
