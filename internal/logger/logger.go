// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dacolabs/typegen/internal/errors"
)

// EnvLevel is the environment variable consulted when no level flag is given.
const EnvLevel = "TYPEGEN_LOG_LEVEL"

// Logger is the global logger. It is a no-op until Initialize is called.
var Logger = zap.NewNop().Sugar()

// Options controls logger construction.
type Options struct {
	Level  string    // debug, info, warn or error; empty means warn
	JSON   bool      // JSON lines instead of console output
	Output io.Writer // defaults to stderr
}

// ParseLevel converts a level name to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", s)
	}
	return lvl, nil
}

// New builds a logger without touching the global one.
func New(opts Options) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), lvl)
	return zap.New(core).Sugar(), nil
}

// Initialize replaces the global logger.
func Initialize(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
