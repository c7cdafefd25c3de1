// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logline

import (
	"github.com/matt-FFFFFF/logline/internal/color"
)

// Level is the severity of a log record. Levels are never compared or
// filtered; a level only selects the display label and the message color.
type Level int

// Log levels in increasing severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelColors = map[Level]string{
	LevelDebug: color.ControlString(color.FgWhite),
	LevelInfo:  color.ControlString(color.FgBlue),
	LevelWarn:  color.ControlString(color.FgYellow),
	LevelError: color.ControlString(color.FgRed),
	LevelFatal: color.ControlString(color.BgRed, color.FgWhite),
}

// String returns the display label for the level.
// Any value outside the defined levels returns "UNKNOWN".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return "UNKNOWN"
}

// control returns the ANSI sequence that colors the record's message text.
// Any value outside the defined levels returns the reset sequence.
func (l Level) control() string {
	if c, ok := levelColors[l]; ok {
		return c
	}

	return color.ControlString(color.Reset)
}
