// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import luxlog "github.com/luxfi/log"

// Logger is the narrow logging surface this package needs. A Machine takes
// one as a field (see WithLogger) rather than calling package-level
// globals, the same way the teacher's subsystems accept a log.Logger so
// tests can inject a silent one.
type Logger interface {
	Debug(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Warn(string, ...any)  {}
func (discardLogger) Error(string, ...any) {}

// NewLogger adapts a luxfi/log logger to this package's Logger interface.
func NewLogger(l luxlog.Logger) Logger {
	return luxLoggerAdapter{l}
}

type luxLoggerAdapter struct {
	l luxlog.Logger
}

func (a luxLoggerAdapter) Debug(msg string, kv ...any) { a.l.Debug(msg, kv...) }
func (a luxLoggerAdapter) Warn(msg string, kv ...any)  { a.l.Warn(msg, kv...) }
func (a luxLoggerAdapter) Error(msg string, kv ...any) { a.l.Error(msg, kv...) }

// levelOrder mirrors the four verbosities internal/config accepts. Logger
// itself has no Info call (this package only ever emits Debug/Warn/Error),
// so a "info" threshold has the same effect as "warn" minus debug noise:
// it suppresses Debug but passes Warn and Error through.
var levelOrder = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// NewLeveledLogger wraps base so that only messages at or above level are
// forwarded. cmd/inet uses this to thread internal/config.Config.LogLevel
// into the Logger a Machine is built with, since this package's Logger
// interface is narrower than luxfi/log's own handler-level verbosity
// control (no NewTerminalHandlerWithLevel equivalent is retrievable for
// github.com/luxfi/log itself, as opposed to the unrelated
// github.com/luxfi/geth/log package the teacher's other subsystems use).
func NewLeveledLogger(base Logger, level string) Logger {
	threshold, ok := levelOrder[level]
	if !ok {
		threshold = levelOrder["info"]
	}
	return &leveledLogger{base: base, threshold: threshold}
}

type leveledLogger struct {
	base      Logger
	threshold int
}

func (l *leveledLogger) Debug(msg string, kv ...any) {
	if l.threshold <= levelOrder["debug"] {
		l.base.Debug(msg, kv...)
	}
}

func (l *leveledLogger) Warn(msg string, kv ...any) {
	if l.threshold <= levelOrder["warn"] {
		l.base.Warn(msg, kv...)
	}
}

func (l *leveledLogger) Error(msg string, kv ...any) {
	l.base.Error(msg, kv...)
}
