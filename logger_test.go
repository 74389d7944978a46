// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frameengine

import (
	"log/slog"
	"strings"
	"testing"
)

func TestSetLoggerRoundTrip(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf strings.Builder
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	Logger().Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set a nop logger, not nil")
	}
}
