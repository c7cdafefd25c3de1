// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logline

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fixedClock pins the timestamp so output can be compared byte for byte.
func fixedClock() time.Time {
	return time.Date(2025, 4, 1, 12, 30, 45, 0, time.Local)
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	stubs := gostub.Stub(&out, io.Writer(buf))
	stubs.Stub(&now, fixedClock)
	t.Cleanup(stubs.Reset)

	return buf
}

func TestSendEndToEnd(t *testing.T) {
	buf := capture(t)

	newRecordAt(LevelError, "/src/net/conn.ext", "send", 57).
		Append("timeout after ").
		Append(3).
		Append(" retries").
		Send()

	want := "2025-04-01 12:30:45 conn.ext:send():57 ERROR | " +
		"\033[31mtimeout after 3 retries\033[0m\n"
	assert.Equal(t, want, buf.String())
}

func TestSendUnknownLevel(t *testing.T) {
	buf := capture(t)

	newRecordAt(Level(99), "/src/net/conn.ext", "send", 57).
		Append("something happened").
		Send()

	want := "2025-04-01 12:30:45 conn.ext:send():57 UNKNOWN | " +
		"\033[0msomething happened\033[0m\n"
	assert.Equal(t, want, buf.String())
}

func TestBasename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "unix path",
			path: "/a/b/c.ext",
			want: "c.ext",
		},
		{
			name: "no separator",
			path: "file.ext",
			want: "file.ext",
		},
		{
			name: "windows path",
			path: `C:\src\net\conn.ext`,
			want: "conn.ext",
		},
		{
			name: "trailing separator",
			path: "/a/b/",
			want: "",
		},
		{
			name: "empty",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, basename(tt.path))
		})
	}
}

func TestAppendOrder(t *testing.T) {
	buf := capture(t)

	newRecordAt(LevelInfo, "main.go", "main", 1).
		Append("x=", 42).
		Append(", y=").
		Append(3.5).
		Send()

	assert.Contains(t, buf.String(), "\033[34mx=42, y=3.5\033[0m\n")
}

func TestAppendf(t *testing.T) {
	buf := capture(t)

	newRecordAt(LevelWarn, "main.go", "main", 1).
		Appendf("disk at %d%%", 93).
		Send()

	assert.Contains(t, buf.String(), "WARN | \033[33mdisk at 93%\033[0m\n")
}

func TestSendExactlyOnce(t *testing.T) {
	buf := capture(t)

	r := newRecordAt(LevelInfo, "main.go", "main", 1).Append("once")
	r.Send()
	r.Send()
	require.NoError(t, r.Close())

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Equal(t, 1, strings.Count(buf.String(), "once"))
}

func TestCloseFlushes(t *testing.T) {
	buf := capture(t)

	func() {
		r := New(LevelDebug).Append("scoped")
		defer r.Close() //nolint:errcheck
		r.Append(" exit")
	}()

	assert.Contains(t, buf.String(), "DEBUG | \033[37mscoped exit\033[0m\n")
}

func TestDeterministicOutput(t *testing.T) {
	buf := capture(t)

	newRecordAt(LevelInfo, "/a/b/c.ext", "run", 10).Append("same").Send()
	first := buf.String()
	buf.Reset()
	newRecordAt(LevelInfo, "/a/b/c.ext", "run", 10).Append("same").Send()

	assert.Equal(t, first, buf.String())
}

func TestNothingWrittenBeforeSend(t *testing.T) {
	buf := capture(t)

	r := Info().Append("pending")
	assert.Zero(t, buf.Len(), "no output may appear before the record is sent")

	r.Send()
	assert.NotZero(t, buf.Len())
}

func TestCallerCapture(t *testing.T) {
	buf := capture(t)

	Error().Append("boom").Send()

	line := buf.String()
	assert.Contains(t, line, "record_test.go:TestCallerCapture():")
	assert.Contains(t, line, " ERROR | ")
}

func TestImmediateHelpers(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(string, ...any)
		label   string
	}{
		{"Debugf", Debugf, "DEBUG"},
		{"Infof", Infof, "INFO"},
		{"Warnf", Warnf, "WARN"},
		{"Errorf", Errorf, "ERROR"},
		{"Fatalf", Fatalf, "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)

			tt.logFunc("value is %d", 7)

			line := buf.String()
			assert.Contains(t, line, " "+tt.label+" | ")
			assert.Contains(t, line, "value is 7")
			assert.Contains(t, line, "record_test.go:")
			assert.True(t, strings.HasSuffix(line, "\033[0m\n"))
		})
	}
}

func TestFatalfDoesNotExit(t *testing.T) {
	buf := capture(t)

	Fatalf("still here")

	// Reaching this assertion is the point.
	assert.Contains(t, buf.String(), "\033[41;37mstill here\033[0m\n")
}

func TestConcurrentSendsEmitWholeLines(t *testing.T) {
	defer goleak.VerifyNone(t)

	buf := capture(t)

	const goroutines = 50

	var wg sync.WaitGroup

	wg.Add(goroutines)

	for i := range goroutines {
		go func() {
			defer wg.Done()
			Infof("worker %d", i)
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines)

	for _, line := range lines {
		assert.Regexp(t,
			`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} record_test\.go:\S+\(\):\d+ INFO \| `+
				"\033"+`\[34mworker \d+`+"\033"+`\[0m$`,
			line)
	}
}

func TestHeaderLayout(t *testing.T) {
	buf := capture(t)

	newRecordAt(LevelInfo, "/a/b/c.ext", "run", 10).Send()

	want := fmt.Sprintf("2025-04-01 12:30:45 c.ext:run():10 INFO | %s%s\n",
		"\033[34m", "\033[0m")
	assert.Equal(t, want, buf.String())
}
