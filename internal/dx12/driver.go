// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"sync"

	"github.com/gogpu/frameengine/internal/dx12/d3d12"
	"github.com/gogpu/frameengine/internal/dx12/dxgi"
)

// Device is the concrete core.Driver implementation. One Device owns one
// D3D12 adapter, device, and direct command queue; the frame-resource
// engine layered on top (package core) is the only thing that sees more
// than one logical "device" at a time, via its own pooling.
type Device struct {
	factory  *dxgi.IDXGIFactory6
	adapter  *dxgi.IDXGIAdapter4
	raw      *d3d12.ID3D12Device
	queue    *d3d12.ID3D12CommandQueue
	rsVersion d3d12.D3D_ROOT_SIGNATURE_VERSION
	tearing  bool

	mu            sync.Mutex
	cmdAllocators []*d3d12.ID3D12CommandAllocator

	// stagingHeaps caches the one non-shader-visible descriptor heap this
	// device holds per DescriptorHeapKind, so command-recording methods
	// that only receive a core.CPUDescriptor (kind+slot) can resolve it to
	// a real D3D12_CPU_DESCRIPTOR_HANDLE without the engine threading the
	// heap through every call.
	stagingHeaps [4]*nativeHeap

	// Indirect-argument command signatures. D3D12 requires one per
	// argument layout; the engine only ever issues bare draw/dispatch
	// indirect calls (no root-constant payload), so three root-signature-
	// less signatures cover every ExecuteIndirect call this backend makes.
	drawIndirectSig        *d3d12.ID3D12CommandSignature
	drawIndexedIndirectSig *d3d12.ID3D12CommandSignature
	dispatchIndirectSig    *d3d12.ID3D12CommandSignature
}

// New creates a Device against the highest-performance available adapter,
// mirroring the teacher's Backend.CreateInstance → EnumerateAdapters →
// CreateDevice sequence, collapsed into a single constructor since this
// module ships exactly one backend rather than a pluggable instance layer.
func New() (*Device, error) {
	dxgiLib, err := dxgi.LoadDXGI()
	if err != nil {
		return nil, fmt.Errorf("dx12: load dxgi: %w", err)
	}
	d3d12Lib, err := d3d12.LoadD3D12()
	if err != nil {
		return nil, fmt.Errorf("dx12: load d3d12: %w", err)
	}

	factory, err := dxgiLib.CreateFactory2(0)
	if err != nil {
		return nil, fmt.Errorf("dx12: create dxgi factory: %w", err)
	}

	adapter, err := factory.EnumAdapterByGpuPreference(0, dxgi.DXGI_GPU_PREFERENCE_HIGH_PERFORMANCE)
	if err != nil {
		adapter, err = factory.EnumAdapters1(0)
		if err != nil {
			return nil, fmt.Errorf("dx12: no adapters: %w", err)
		}
	}

	raw, err := d3d12Lib.CreateDevice(ptr(adapter), d3d12.D3D_FEATURE_LEVEL_11_0)
	if err != nil {
		return nil, fmt.Errorf("dx12: create device: %w", err)
	}

	queue, err := raw.CreateCommandQueue(&d3d12.D3D12_COMMAND_QUEUE_DESC{
		Type:     d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT,
		Priority: 0,
		Flags:    d3d12.D3D12_COMMAND_QUEUE_FLAG_NONE,
		NodeMask: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("dx12: create command queue: %w", err)
	}

	d := &Device{
		factory:   factory,
		adapter:   adapter,
		raw:       raw,
		queue:     queue,
		rsVersion: d3d12.D3D_ROOT_SIGNATURE_VERSION_1_0,
		tearing:   checkTearingSupport(factory),
	}
	if err := d.createIndirectSignatures(); err != nil {
		return nil, fmt.Errorf("dx12: create indirect command signatures: %w", err)
	}
	return d, nil
}

// createIndirectSignatures builds the three bare (no root-constant stage)
// command signatures ExecuteIndirect needs for draw/drawIndexed/dispatch.
func (d *Device) createIndirectSignatures() error {
	drawArg := d3d12.D3D12_INDIRECT_ARGUMENT_DESC{Type: d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DRAW}
	drawIndexedArg := d3d12.D3D12_INDIRECT_ARGUMENT_DESC{Type: d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED}
	dispatchArg := d3d12.D3D12_INDIRECT_ARGUMENT_DESC{Type: d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH}

	var err error
	d.drawIndirectSig, err = d.raw.CreateCommandSignature(&d3d12.D3D12_COMMAND_SIGNATURE_DESC{
		ByteStride: 16, NumArgumentDescs: 1, ArgumentDescs: &drawArg,
	}, nil)
	if err != nil {
		return err
	}
	d.drawIndexedIndirectSig, err = d.raw.CreateCommandSignature(&d3d12.D3D12_COMMAND_SIGNATURE_DESC{
		ByteStride: 20, NumArgumentDescs: 1, ArgumentDescs: &drawIndexedArg,
	}, nil)
	if err != nil {
		return err
	}
	d.dispatchIndirectSig, err = d.raw.CreateCommandSignature(&d3d12.D3D12_COMMAND_SIGNATURE_DESC{
		ByteStride: 12, NumArgumentDescs: 1, ArgumentDescs: &dispatchArg,
	}, nil)
	return err
}

// checkTearingSupport mirrors the teacher's Instance.checkTearingSupport,
// collapsed to the factory.CheckFeatureSupport call; a failed query means
// no tearing support rather than an error, since it gates an optional
// present-flag choice, not device creation.
func checkTearingSupport(factory *dxgi.IDXGIFactory6) bool {
	var allowTearing int32
	if err := factory.CheckFeatureSupport(dxgi.DXGI_FEATURE_PRESENT_ALLOW_TEARING, ptr(&allowTearing), 4); err != nil {
		return false
	}
	return allowTearing != 0
}

func (d *Device) SupportsTearing() bool { return d.tearing }

// acquireCommandAllocator draws from the device-wide allocator pool or
// creates a fresh one; AcquireCommandList always pairs a fresh allocator
// with a fresh list since core never issues more than one live list per
// allocator at a time (§4.7 "Acquisition").
func (d *Device) acquireCommandAllocator() (*d3d12.ID3D12CommandAllocator, error) {
	d.mu.Lock()
	if n := len(d.cmdAllocators); n > 0 {
		a := d.cmdAllocators[n-1]
		d.cmdAllocators = d.cmdAllocators[:n-1]
		d.mu.Unlock()
		return a, nil
	}
	d.mu.Unlock()
	return d.raw.CreateCommandAllocator(d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT)
}

func (d *Device) releaseCommandAllocator(a *d3d12.ID3D12CommandAllocator) {
	d.mu.Lock()
	d.cmdAllocators = append(d.cmdAllocators, a)
	d.mu.Unlock()
}
