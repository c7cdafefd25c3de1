// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color renders ANSI escape sequences for terminal text formatting.
// ControlString produces the raw activation sequence for a set of codes and
// is what the log-level color table is built from. Colorize wraps a string
// in an activation sequence plus a trailing reset, and is a no-op when color
// output is not enabled. Enablement is decided once at startup from the
// NO_COLOR and FORCE_COLOR environment variables and, failing those, from
// whether standard error is a terminal (golang.org/x/term).
package color
