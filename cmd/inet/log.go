// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	luxlog "github.com/luxfi/log"

	"github.com/WtzLAS/inet/core"
	"github.com/WtzLAS/inet/internal/config"
)

// setupLogger builds a core.Logger for cmd/inet: luxfi/log's default
// logger for structured stderr output, optionally teeing plain lines into a
// lumberjack-rotated file when cfg.LogFile is set, the same "structured
// logger over a rotated file" combination the teacher's long-running
// daemons use. cfg.LogLevel is threaded through core.NewLeveledLogger so
// --log-level actually gates what a Machine logs rather than being parsed
// and discarded.
func setupLogger(cfg config.Config) core.Logger {
	base := core.NewLogger(luxlog.Root())

	var logger core.Logger = base
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		logger = &teeLogger{base: base, file: file}
	}
	return core.NewLeveledLogger(logger, cfg.LogLevel)
}

// teeLogger forwards every call to base (luxfi/log's structured handler)
// and additionally appends a plain line to file, so a --log-file is
// readable without a structured-log viewer.
type teeLogger struct {
	base core.Logger
	file io.Writer
}

func (t *teeLogger) Debug(msg string, kv ...any) {
	t.base.Debug(msg, kv...)
	t.writeLine("DEBUG", msg, kv...)
}

func (t *teeLogger) Warn(msg string, kv ...any) {
	t.base.Warn(msg, kv...)
	t.writeLine("WARN", msg, kv...)
}

func (t *teeLogger) Error(msg string, kv ...any) {
	t.base.Error(msg, kv...)
	t.writeLine("ERROR", msg, kv...)
}

func (t *teeLogger) writeLine(level, msg string, kv ...any) {
	fmt.Fprintf(t.file, "%s %s %v\n", level, msg, kv)
}

// terminalWriter returns a colorable writer for interactive readout, the
// same isatty + go-colorable pairing the teacher's CLI output uses.
func terminalWriter() (io.Writer, bool) {
	isTerm := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return colorable.NewColorableStdout(), isTerm
}
