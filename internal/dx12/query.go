// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
)

func (d *Device) CreateQueryHeap(count uint32) (core.NativeHeap, error) {
	heap, err := d.raw.CreateQueryHeap(&d3d12.D3D12_QUERY_HEAP_DESC{
		Type:  d3d12.D3D12_QUERY_HEAP_TYPE_OCCLUSION,
		Count: count,
	})
	if err != nil {
		return nil, fmt.Errorf("dx12: create query heap: %w", err)
	}
	return heap, nil
}

func (d *Device) DestroyQueryHeap(h core.NativeHeap) {
	h.(*d3d12.ID3D12QueryHeap).Release()
}

func (d *Device) BeginQuery(list core.NativeCommandList, heap core.NativeHeap, index uint32) {
	list.(*nativeCommandList).list.BeginQuery(heap.(*d3d12.ID3D12QueryHeap), d3d12.D3D12_QUERY_TYPE_OCCLUSION, index)
}

func (d *Device) EndQuery(list core.NativeCommandList, heap core.NativeHeap, index uint32) {
	list.(*nativeCommandList).list.EndQuery(heap.(*d3d12.ID3D12QueryHeap), d3d12.D3D12_QUERY_TYPE_OCCLUSION, index)
}

func (d *Device) ResolveQueryData(list core.NativeCommandList, heap core.NativeHeap, startIndex, count uint32, dst core.NativeHandle, dstOffset uint64) {
	list.(*nativeCommandList).list.ResolveQueryData(
		heap.(*d3d12.ID3D12QueryHeap),
		d3d12.D3D12_QUERY_TYPE_OCCLUSION,
		startIndex, count,
		dst.(*nativeResource).resource, dstOffset,
	)
}
