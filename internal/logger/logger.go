// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the generator binaries. Every entry is
// JSON with a role, a timestamp and the calling function under "func".
//
// Request- and call-scoped loggers travel in a context and are read back
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const clientLogFile = "qr-keeper.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var setupOnce sync.Once

// setup configures zerolog globals shared by all loggers.
func setup() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

func newLogger(out io.Writer, role string) *Logger {
	setup()
	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger returns a logger for the given role that writes to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is [NewLogger] for the terminal front-ends, which must keep
// log lines off the screen. Entries are appended to path, or to
// qr-keeper.log beside the executable when path is empty. If the file cannot
// be opened the logger falls back to stdout.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		exe, _ := os.Executable()
		path = filepath.Join(filepath.Dir(exe), clientLogFile)
	}

	var out io.Writer = os.Stdout
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = f
	}

	return newLogger(out, role)
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a copy of l that adds key=value to every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
