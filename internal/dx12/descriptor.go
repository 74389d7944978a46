// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
)

// nativeHeap is the concrete value behind every core.NativeHeap this
// package returns: the raw descriptor heap plus the handle/stride
// bookkeeping needed to turn a core.CPUDescriptor slot into a real D3D12
// descriptor handle.
type nativeHeap struct {
	kind          core.DescriptorHeapKind
	heap          *d3d12.ID3D12DescriptorHeap
	increment     uint32
	cpuStart      d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	gpuStart      d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	shaderVisible bool
}

func (d *Device) CreateDescriptorHeap(kind core.DescriptorHeapKind, capacity uint32, shaderVisible bool) (core.NativeHeap, error) {
	heapType := descriptorHeapKindToD3D12(kind)
	flags := d3d12.D3D12_DESCRIPTOR_HEAP_FLAG_NONE
	if shaderVisible {
		flags = d3d12.D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE
	}
	heap, err := d.raw.CreateDescriptorHeap(&d3d12.D3D12_DESCRIPTOR_HEAP_DESC{
		Type:           heapType,
		NumDescriptors: capacity,
		Flags:          flags,
	})
	if err != nil {
		return nil, err
	}
	nh := &nativeHeap{
		kind:          kind,
		heap:          heap,
		increment:     d.raw.GetDescriptorHandleIncrementSize(heapType),
		cpuStart:      heap.GetCPUDescriptorHandleForHeapStart(),
		shaderVisible: shaderVisible,
	}
	if shaderVisible {
		nh.gpuStart = heap.GetGPUDescriptorHandleForHeapStart()
	}

	// One staging (non shader-visible) heap exists per kind for the whole
	// device's lifetime; keep it so OMSetRenderTargets/Clear*View, which
	// only ever receive a kind+slot pair, can resolve the real handle.
	if !shaderVisible {
		d.mu.Lock()
		d.stagingHeaps[kind] = nh
		d.mu.Unlock()
	}
	return nh, nil
}

func (d *Device) DestroyDescriptorHeap(h core.NativeHeap) {
	nh := h.(*nativeHeap)
	nh.heap.Release()
}

func (d *Device) cpuHandle(h *nativeHeap, slot uint32) d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	return h.cpuStart.Offset(int(slot), h.increment)
}

func (d *Device) gpuHandle(h *nativeHeap, slot uint32) d3d12.D3D12_GPU_DESCRIPTOR_HANDLE {
	return h.gpuStart.Offset(int(slot), h.increment)
}

func (d *Device) WriteBufferView(heap core.NativeHeap, slot uint32, kind core.DescriptorHeapKind, buffer core.NativeHandle, offset, size uint64) {
	nh := heap.(*nativeHeap)
	res := buffer.(*nativeResource)
	dst := d.cpuHandle(nh, slot)
	switch kind {
	case core.HeapKindCBVSRVUAV:
		d.raw.CreateConstantBufferView(&d3d12.D3D12_CONSTANT_BUFFER_VIEW_DESC{
			BufferLocation: res.gpuAddress + offset,
			SizeInBytes:    alignUp32(uint32(size), 256),
		}, dst)
	}
}

func (d *Device) WriteTextureView(heap core.NativeHeap, slot uint32, kind core.DescriptorHeapKind, texture core.NativeHandle, sub core.SubresourceAllocDesc) {
	nh := heap.(*nativeHeap)
	res := texture.(*nativeResource)
	dst := d.cpuHandle(nh, slot)
	switch kind {
	case core.HeapKindRTV:
		d.raw.CreateRenderTargetView(res.resource, &d3d12.D3D12_RENDER_TARGET_VIEW_DESC{
			Format:        res.format,
			ViewDimension: d3d12.D3D12_RTV_DIMENSION_TEXTURE2D,
		}, dst)
	case core.HeapKindDSV:
		d.raw.CreateDepthStencilView(res.resource, &d3d12.D3D12_DEPTH_STENCIL_VIEW_DESC{
			Format:        res.format,
			ViewDimension: d3d12.D3D12_DSV_DIMENSION_TEXTURE2D,
		}, dst)
	case core.HeapKindCBVSRVUAV:
		d.raw.CreateShaderResourceView(res.resource, &d3d12.D3D12_SHADER_RESOURCE_VIEW_DESC{
			Format:                  res.format,
			ViewDimension:           d3d12.D3D12_SRV_DIMENSION_TEXTURE2D,
			Shader4ComponentMapping: d3d12DefaultShader4ComponentMapping,
		}, dst)
	}
	_ = sub
}

func (d *Device) WriteSamplerView(heap core.NativeHeap, slot uint32, sampler core.NativeHandle) {
	nh := heap.(*nativeHeap)
	sd := sampler.(*nativeSampler)
	d.raw.CreateSampler(&sd.desc, d.cpuHandle(nh, slot))
}

func (d *Device) CopyDescriptor(dstHeap core.NativeHeap, dstSlot uint32, srcHeap core.NativeHeap, srcSlot uint32, kind core.DescriptorHeapKind) {
	dh := dstHeap.(*nativeHeap)
	sh := srcHeap.(*nativeHeap)
	d.raw.CopyDescriptorsSimple(1, d.cpuHandle(dh, dstSlot), d.cpuHandle(sh, srcSlot), descriptorHeapKindToD3D12(kind))
}

// d3d12DefaultShader4ComponentMapping is D3D12_DEFAULT_SHADER_4_COMPONENT_MAPPING,
// the identity component swizzle almost every SRV uses.
const d3d12DefaultShader4ComponentMapping = 1<<3 | 2<<6 | 3<<9 | 1<<12

func alignUp32(v, align uint32) uint32 {
	return (v + align - 1) &^ (align - 1)
}
