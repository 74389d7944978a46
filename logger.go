// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frameengine

import (
	"log/slog"

	"github.com/gogpu/frameengine/core"
)

// SetLogger configures the logger the engine logs through. See
// [core.SetLogger] for the level conventions.
//
// Example:
//
//	frameengine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { core.SetLogger(l) }

// Logger returns the logger currently configured via SetLogger.
func Logger() *slog.Logger { return core.Logger() }
