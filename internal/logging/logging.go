// Copyright 2026 katsuya1128. All rights reserved.

// Package logging builds the run logger: human-readable records on the
// console, and optionally a duplicate of warnings and errors in a log file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config contains logging configuration.
type Config struct {
	// Verbosity is the -v count; 2 or more enables debug records.
	Verbosity int
	// ErrorLogPath receives warnings and errors when set. The file is
	// appended to, not truncated.
	ErrorLogPath string
	// Console is the console destination (default os.Stderr).
	Console io.Writer
}

// Setup returns the configured logger and a cleanup function that closes
// the error log file.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Verbosity >= 2 {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropTime,
		}),
	}
	cleanup := func() {}

	if cfg.ErrorLogPath != "" {
		f, err := os.OpenFile(cfg.ErrorLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening error log %s: %w", cfg.ErrorLogPath, err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelWarn}))
		cleanup = func() { _ = f.Close() }
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), cleanup, nil
	}
	return slog.New(fanout(handlers)), cleanup, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dropTime removes the timestamp from console records.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
