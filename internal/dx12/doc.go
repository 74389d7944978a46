// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dx12 implements core.Driver against the Windows D3D12/DXGI APIs.
// It is the only backend this module ships: the frame-resource engine in
// package core never talks to d3d12/dxgi directly, only through the
// Driver interface this package satisfies.
package dx12
