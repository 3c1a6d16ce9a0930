// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newCommandLogger creates the structured logger for CLI operations.
// When stderr is a terminal, slog.TextHandler gives human-readable
// output; when piped or redirected (CI, scripts), slog.JSONHandler
// keeps the output machine-parseable. PALISADE_DEBUG enables debug
// level.
func newCommandLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("PALISADE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
