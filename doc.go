// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logline builds single-line, color-coded log records and writes
// them to standard error. Each logging statement creates one Record, which
// captures the wall-clock time, the severity, and the call site (file
// basename, function name and line number) at construction, accumulates
// message fragments, and is flushed as one atomic write when it is sent:
//
//	logline.Info().Append("connected to ", addr).Send()
//	logline.Errorf("timeout after %d retries", retries)
//
// Output always goes to standard error and follows a fixed format:
//
//	2025-04-01 12:30:45 conn.go:send():57 ERROR | <message>
//
// with the message colored by severity. There is no level filtering, no
// structured output and no configurable destination; redirect the process's
// standard error stream to redirect the log.
package logline
