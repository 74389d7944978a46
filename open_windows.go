// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package frameengine

import (
	"fmt"

	"github.com/gogpu/frameengine/internal/dx12"
)

// Open creates a Device backed by the D3D12 native driver. There is a
// single native backend, so adapter enumeration and device creation
// collapse into this one call.
func Open() (*Device, error) {
	driver, err := dx12.New()
	if err != nil {
		return nil, newErr("Open", ErrInit, fmt.Errorf("dx12: %w", err))
	}
	d, err := newDevice(driver)
	if err != nil {
		return nil, newErr("Open", ErrInit, err)
	}
	return d, nil
}
