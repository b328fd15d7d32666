// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"

	"github.com/changqingniubi/react-three-fiber/base/errors"
	"github.com/changqingniubi/react-three-fiber/base/reflectx"
)

// ErrUnmounted is returned by [Root.Render] after [Root.Unmount];
// obtain a fresh root from [NewRoot] instead.
var ErrUnmounted = errors.New("fiber: root has been unmounted")

// UnknownKindError is returned when an instance is requested for a
// kind tag that has not been registered and is not the special
// primitive kind.
type UnknownKindError struct {

	// Kind is the unregistered kind tag.
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("fiber: unknown kind %q: register it with Extend, or use a primitive to wrap an existing object", e.Kind)
}

// InvalidPropertyPathError is returned when a pierced property path
// traverses an intermediate segment that is undefined on the target.
type InvalidPropertyPathError struct {

	// Kind is the kind of the instance whose target was addressed.
	Kind string

	// Path is the offending property path.
	Path string

	// Err is the underlying resolution error,
	// wrapping [reflectx.ErrPathUndefined].
	Err error
}

func (e *InvalidPropertyPathError) Error() string {
	return fmt.Sprintf("fiber: invalid property path %q on %q: %v", e.Path, e.Kind, e.Err)
}

func (e *InvalidPropertyPathError) Unwrap() error {
	return e.Err
}

// newPropertyPathError wraps a [reflectx.ErrPathUndefined] resolution
// failure, passing other errors through unchanged.
func newPropertyPathError(kind, path string, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, reflectx.ErrPathUndefined) {
		return err
	}
	return &InvalidPropertyPathError{Kind: kind, Path: path, Err: err}
}

// AttachResolutionError is returned when an instance's attachment
// cannot be resolved: both a slot key and custom attach functions
// were supplied, or neither applies and the parent target has no
// ordinary child-list capability.
type AttachResolutionError struct {

	// Kind is the kind of the child instance.
	Kind string

	// Reason describes why resolution failed.
	Reason string
}

func (e *AttachResolutionError) Error() string {
	return fmt.Sprintf("fiber: cannot resolve attachment for %q: %s", e.Kind, e.Reason)
}
