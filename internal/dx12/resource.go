// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
)

// nativeResource is the concrete value behind every core.NativeHandle that
// wraps a committed D3D12 resource (buffer or texture).
type nativeResource struct {
	resource   *d3d12.ID3D12Resource
	gpuAddress uint64
	format     d3d12.DXGI_FORMAT
}

// nativeSampler is the concrete value behind a core.NativeHandle produced
// by CreateSampler; D3D12 samplers are pure descriptor data, not a COM
// object, so the desc itself is all that needs to survive until it is
// written into a heap slot.
type nativeSampler struct {
	desc d3d12.D3D12_SAMPLER_DESC
}

func heapPropertiesFor(kind core.NativeHeapKind) d3d12.D3D12_HEAP_PROPERTIES {
	return d3d12.D3D12_HEAP_PROPERTIES{
		Type:                 heapKindToD3D12(kind),
		CPUPageProperty:      d3d12.D3D12_CPU_PAGE_PROPERTY_UNKNOWN,
		MemoryPoolPreference: d3d12.D3D12_MEMORY_POOL_UNKNOWN,
	}
}

func (d *Device) CreateBuffer(size uint64, kind core.NativeHeapKind) (core.NativeHandle, uint64, error) {
	initialState := d3d12.D3D12_RESOURCE_STATE_COMMON
	switch kind {
	case core.HeapUpload:
		initialState = d3d12.D3D12_RESOURCE_STATE_GENERIC_READ
	case core.HeapReadback:
		initialState = d3d12.D3D12_RESOURCE_STATE_COPY_DEST
	}

	desc := &d3d12.D3D12_RESOURCE_DESC{
		Dimension:  d3d12.D3D12_RESOURCE_DIMENSION_BUFFER,
		Width:      size,
		Height:     1,
		DepthOrArraySize: 1,
		MipLevels:  1,
		Format:     d3d12.DXGI_FORMAT_UNKNOWN,
		SampleDesc: d3d12.DXGI_SAMPLE_DESC{Count: 1},
		Layout:     d3d12.D3D12_TEXTURE_LAYOUT_ROW_MAJOR,
	}
	props := heapPropertiesFor(kind)
	res, err := d.raw.CreateCommittedResource(&props, d3d12.D3D12_HEAP_FLAG_NONE, desc, initialState, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("dx12: create buffer: %w", err)
	}
	addr := res.GetGPUVirtualAddress()
	return &nativeResource{resource: res, gpuAddress: addr}, addr, nil
}

func (d *Device) DestroyBuffer(h core.NativeHandle) {
	h.(*nativeResource).resource.Release()
}

func (d *Device) MapBuffer(h core.NativeHandle) (uintptr, error) {
	ptr, err := h.(*nativeResource).resource.Map(0, nil)
	return uintptr(ptr), err
}

func (d *Device) UnmapBuffer(h core.NativeHandle) {
	h.(*nativeResource).resource.Unmap(0, nil)
}

func textureResourceFlags(usage uint32) d3d12.D3D12_RESOURCE_FLAGS {
	flags := d3d12.D3D12_RESOURCE_FLAG_NONE
	if usage&uint32(core.TextureUsageColorTarget) != 0 {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET
	}
	if usage&uint32(core.TextureUsageDepthStencilTarget) != 0 {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL
	}
	if usage&uint32(core.TextureUsageGraphicsStorageWrite|core.TextureUsageComputeStorageWrite) != 0 {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	return flags
}

func (d *Device) CreateTexture(desc core.TextureAllocDesc) (core.NativeHandle, error) {
	format := textureFormatToDXGI(desc.Format)
	rdesc := &d3d12.D3D12_RESOURCE_DESC{
		Dimension:        d3d12.D3D12_RESOURCE_DIMENSION_TEXTURE2D,
		Width:            uint64(desc.Width),
		Height:           desc.Height,
		DepthOrArraySize: uint16(desc.DepthOrArray),
		MipLevels:        uint16(desc.MipLevels),
		Format:           format,
		SampleDesc:       d3d12.DXGI_SAMPLE_DESC{Count: desc.SampleCount},
		Layout:           d3d12.D3D12_TEXTURE_LAYOUT_UNKNOWN,
		Flags:            textureResourceFlags(desc.Usage),
	}
	props := heapPropertiesFor(core.HeapGPULocal)

	var clearValue *d3d12.D3D12_CLEAR_VALUE
	if rdesc.Flags&d3d12.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET != 0 {
		clearValue = &d3d12.D3D12_CLEAR_VALUE{Format: format}
	} else if rdesc.Flags&d3d12.D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL != 0 {
		clearValue = &d3d12.D3D12_CLEAR_VALUE{Format: format, Color: [4]float32{1, 0, 0, 0}}
	}

	res, err := d.raw.CreateCommittedResource(&props, d3d12.D3D12_HEAP_FLAG_NONE, rdesc, d3d12.D3D12_RESOURCE_STATE_COMMON, clearValue)
	if err != nil {
		return nil, fmt.Errorf("dx12: create texture: %w", err)
	}
	return &nativeResource{resource: res, format: format}, nil
}

func (d *Device) DestroyTexture(h core.NativeHandle) {
	h.(*nativeResource).resource.Release()
}

func (d *Device) CreateSampler(desc core.SamplerDesc) (core.NativeHandle, error) {
	maxAniso := desc.MaxAnisotropy
	if maxAniso == 0 {
		maxAniso = 1
	}
	cmp := d3d12.D3D12_COMPARISON_FUNC_ALWAYS
	if desc.CompareEnable {
		cmp = d3d12.D3D12_COMPARISON_FUNC_LESS_EQUAL
	}
	return &nativeSampler{desc: d3d12.D3D12_SAMPLER_DESC{
		Filter:         filterToD3D12(desc.MinFilter, desc.MagFilter, desc.MipFilter),
		AddressU:       addressModeToD3D12(desc.AddressModeU),
		AddressV:       addressModeToD3D12(desc.AddressModeV),
		AddressW:       addressModeToD3D12(desc.AddressModeW),
		MaxAnisotropy:  maxAniso,
		ComparisonFunc: cmp,
		MaxLOD:         float32Max,
	}}, nil
}

func (d *Device) DestroySampler(core.NativeHandle) {
	// Samplers are plain descriptor data on D3D12; nothing to release.
}

const float32Max = 3.402823466e+38
