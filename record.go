// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logline

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/matt-FFFFFF/logline/internal/color"
)

const (
	// timeFormat is the timestamp layout, rendered in the host's local zone.
	timeFormat = "2006-01-02 15:04:05"
	// separator sits between the level label and the color sequence.
	separator = " | "
)

var (
	// mu serializes writes so concurrent records emit whole lines.
	mu sync.Mutex
	// out is always standard error; it is a variable only so tests can
	// capture output.
	out io.Writer = os.Stderr
	// now is stubbed in tests.
	now = time.Now

	resetSeq = color.ControlString(color.Reset)
)

// Record accumulates a single log line. A record is created by one logging
// statement, appended to within that statement, and written to standard
// error exactly once by Send or Close. Records must not be shared between
// goroutines or stored beyond the statement that created them.
type Record struct {
	buf  []byte
	sent bool
}

// New returns a record for the given level with the timestamp and the
// caller's location already rendered.
func New(level Level) *Record {
	return newRecord(level, callerSkip)
}

// Debug returns a record at the debug level.
func Debug() *Record { return newRecord(LevelDebug, callerSkip) }

// Info returns a record at the info level.
func Info() *Record { return newRecord(LevelInfo, callerSkip) }

// Warn returns a record at the warn level.
func Warn() *Record { return newRecord(LevelWarn, callerSkip) }

// Error returns a record at the error level.
func Error() *Record { return newRecord(LevelError, callerSkip) }

// Fatal returns a record at the fatal level. The level only selects the
// label and color; sending the record does not exit the process.
func Fatal() *Record { return newRecord(LevelFatal, callerSkip) }

// Debugf logs a formatted message at the debug level in one call.
func Debugf(format string, args ...any) {
	newRecord(LevelDebug, callerSkip).Appendf(format, args...).Send()
}

// Infof logs a formatted message at the info level in one call.
func Infof(format string, args ...any) {
	newRecord(LevelInfo, callerSkip).Appendf(format, args...).Send()
}

// Warnf logs a formatted message at the warn level in one call.
func Warnf(format string, args ...any) {
	newRecord(LevelWarn, callerSkip).Appendf(format, args...).Send()
}

// Errorf logs a formatted message at the error level in one call.
func Errorf(format string, args ...any) {
	newRecord(LevelError, callerSkip).Appendf(format, args...).Send()
}

// Fatalf logs a formatted message at the fatal level in one call.
// It does not exit the process.
func Fatalf(format string, args ...any) {
	newRecord(LevelFatal, callerSkip).Appendf(format, args...).Send()
}

// callerSkip is the runtime.Caller skip depth from the exported entry
// points down to the user's call site. All exported constructors must sit
// exactly one frame above newRecord for this to hold.
const callerSkip = 3

func newRecord(level Level, skip int) *Record {
	file, function, line := caller(skip)
	return newRecordAt(level, file, function, line)
}

// newRecordAt renders the header:
//
//	<timestamp> <basename>:<function>():<line> <LEVEL> | <COLOR>
//
// Everything appended afterwards inherits the level color until Send
// writes the trailing reset.
func newRecordAt(level Level, file, function string, line int) *Record {
	r := &Record{buf: make([]byte, 0, 128)}
	r.buf = now().AppendFormat(r.buf, timeFormat)
	r.buf = append(r.buf, ' ')
	r.buf = append(r.buf, basename(file)...)
	r.buf = append(r.buf, ':')
	r.buf = append(r.buf, function...)
	r.buf = append(r.buf, "():"...)
	r.buf = strconv.AppendInt(r.buf, int64(line), 10)
	r.buf = append(r.buf, ' ')
	r.buf = append(r.buf, level.String()...)
	r.buf = append(r.buf, separator...)
	r.buf = append(r.buf, level.control()...)

	return r
}

// Append formats each value with %v and appends it to the record, in order,
// with no separators. It returns the record so calls can chain.
func (r *Record) Append(values ...any) *Record {
	for _, v := range values {
		r.buf = fmt.Appendf(r.buf, "%v", v)
	}

	return r
}

// Appendf appends fmt.Sprintf-formatted text to the record.
// It returns the record so calls can chain.
func (r *Record) Appendf(format string, args ...any) *Record {
	r.buf = fmt.Appendf(r.buf, format, args...)
	return r
}

// Send terminates the record with the color reset and a newline and writes
// the whole line to standard error as a single write. A record is sent at
// most once; further calls are no-ops. Write errors are not reported: the
// record cannot fail in its own terms.
func (r *Record) Send() {
	if r.sent {
		return
	}

	r.sent = true
	r.buf = append(r.buf, resetSeq...)
	r.buf = append(r.buf, '\n')

	mu.Lock()
	defer mu.Unlock()

	_, _ = out.Write(r.buf)
}

// Close sends the record and always returns nil. It exists so a record held
// open across a scope can be flushed on every exit path with defer.
func (r *Record) Close() error {
	r.Send()
	return nil
}

// caller resolves the logging statement's source location. On failure the
// location renders as ???:???():0 rather than signaling an error.
func caller(skip int) (file, function string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", "???", 0
	}

	function = "???"

	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		// Strip the package path and any receiver, keeping the bare name.
		if i := strings.LastIndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}

	return file, function, line
}

// basename strips any directory prefix up to and including the last path
// separator. Both slash styles are handled because file tokens come from
// the build host.
func basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}
