// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default logger to a text logger on
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	setDefaultLogger(os.Stderr)
}

func setDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}

// NewHandler returns a text handler writing to w at the given level,
// with the level names colored when w is a terminal that supports it.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lv.String()).Foreground(out.Color(LevelColor(lv))).String())
			return a
		},
	})
}

// LevelColor returns the ANSI color used for the given level.
func LevelColor(lv slog.Level) string {
	switch {
	case lv >= slog.LevelError:
		return "1"
	case lv >= slog.LevelWarn:
		return "3"
	case lv >= slog.LevelInfo:
		return "4"
	}
	return "8"
}
