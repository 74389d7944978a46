// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
	"golang.org/x/sys/windows"
)

// nativeFence pairs a D3D12 timeline fence with the Win32 event object
// SetEventOnCompletion signals, mirroring the teacher's Fence type.
type nativeFence struct {
	raw   *d3d12.ID3D12Fence
	event windows.Handle
}

func (d *Device) CreateFenceObject() (core.NativeFence, error) {
	raw, err := d.raw.CreateFence(0, d3d12.D3D12_FENCE_FLAG_NONE)
	if err != nil {
		return nil, fmt.Errorf("dx12: create fence: %w", err)
	}
	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		raw.Release()
		return nil, fmt.Errorf("dx12: create fence event: %w", err)
	}
	return &nativeFence{raw: raw, event: event}, nil
}

func (d *Device) DestroyFenceObject(h core.NativeFence) {
	f := h.(*nativeFence)
	if f.event != 0 {
		_ = windows.CloseHandle(f.event)
	}
	f.raw.Release()
}

func (d *Device) SignalFence(h core.NativeFence, value uint64) error {
	return h.(*nativeFence).raw.Signal(value)
}

func (d *Device) GetFenceCompletedValue(h core.NativeFence) uint64 {
	return h.(*nativeFence).raw.GetCompletedValue()
}

func (d *Device) WaitFenceEvent(h core.NativeFence, value uint64, timeoutMS uint32) (bool, error) {
	f := h.(*nativeFence)
	if f.raw.GetCompletedValue() >= value {
		return true, nil
	}
	if err := f.raw.SetEventOnCompletion(value, uintptr(f.event)); err != nil {
		return false, fmt.Errorf("dx12: set event on completion: %w", err)
	}
	result, err := windows.WaitForSingleObject(f.event, timeoutMS)
	if err != nil {
		return false, fmt.Errorf("dx12: wait for fence event: %w", err)
	}
	switch result {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case uint32(windows.WAIT_TIMEOUT):
		return false, nil
	default:
		return false, fmt.Errorf("dx12: unexpected wait result: %d", result)
	}
}

func (d *Device) ExecuteCommandLists(lists []core.NativeCommandList, signalFence core.NativeFence, signalValue uint64) error {
	raws := make([]*d3d12.ID3D12GraphicsCommandList, len(lists))
	for i, l := range lists {
		raws[i] = l.(*nativeCommandList).list
	}
	if len(raws) > 0 {
		d.queue.ExecuteCommandLists(uint32(len(raws)), &raws[0])
	}
	if signalFence == nil {
		return nil
	}
	return d.queue.Signal(signalFence.(*nativeFence).raw, signalValue)
}
