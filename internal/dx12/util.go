// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import "unsafe"

// ptr converts a typed pointer to unsafe.Pointer for the handful of COM
// calls (CheckFeatureSupport and friends) that take a raw feature-data
// pointer rather than a typed struct argument.
func ptr[T any](v *T) unsafe.Pointer { return unsafe.Pointer(v) }
