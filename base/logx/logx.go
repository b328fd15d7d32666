// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple user-facing logging level and
// helpers gated on it, layered on top of the standard [log/slog].
// Library code that wants to print user-visible information uses
// these helpers instead of printing directly, so that applications
// can control verbosity with one setting.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above the current level are shown. It defaults to
// [slog.LevelInfo].
var UserLevel = defaultUserLevel

// SetLevelFast sets [UserLevel] and also sets the default slog
// logger level so that direct slog calls are filtered consistently.
func SetLevelFast(level slog.Level) {
	UserLevel = level
	slog.SetLogLoggerLevel(level)
}

// PrintlnDebug prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintfDebug prints the given format string with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}

// PrintlnInfo prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintfInfo prints the given format string with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}

// PrintlnWarn prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}
