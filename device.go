// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frameengine

import "github.com/gogpu/frameengine/core"

// Device is the frame-resource engine's public entry point. It embeds
// *core.Device, so every CreateBuffer/CreateTexture/ClaimWindow/Submit/Wait
// method documented on core.Device is available directly on Device; this
// type exists only to pair the engine with the platform-specific driver
// Open constructs.
type Device struct {
	*core.Device
}

// newDevice wraps a driver-agnostic core.Device, shared by every
// platform's Open implementation.
func newDevice(driver core.Driver) (*Device, error) {
	cd, err := core.NewDevice(driver)
	if err != nil {
		return nil, err
	}
	return &Device{Device: cd}, nil
}
