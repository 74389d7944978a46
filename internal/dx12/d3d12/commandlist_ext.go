// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"syscall"
	"unsafe"
)

// The methods below round out ID3D12GraphicsCommandList's binding: the
// vtbl layout already reserves their slots (interfaces.go), but no Go
// wrapper called through them yet. Added to exercise root CBVs, texture
// copies, occlusion queries and indirect draws/dispatches from the
// frame-resource engine's command recording path.

func (c *ID3D12GraphicsCommandList) ExecuteIndirect(commandSignature *ID3D12CommandSignature, maxCommandCount uint32, argumentBuffer *ID3D12Resource, argumentBufferOffset uint64, countBuffer *ID3D12Resource, countBufferOffset uint64) {
	syscall.Syscall9(
		c.vtbl.ExecuteIndirect,
		7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(commandSignature)),
		uintptr(maxCommandCount),
		uintptr(unsafe.Pointer(argumentBuffer)),
		uintptr(argumentBufferOffset),
		uintptr(unsafe.Pointer(countBuffer)),
		uintptr(countBufferOffset),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) SetComputeRootConstantBufferView(rootParameterIndex uint32, bufferLocation uint64) {
	syscall.Syscall(
		c.vtbl.SetComputeRootConstantBufferView,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(rootParameterIndex),
		uintptr(bufferLocation),
	)
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootConstantBufferView(rootParameterIndex uint32, bufferLocation uint64) {
	syscall.Syscall(
		c.vtbl.SetGraphicsRootConstantBufferView,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(rootParameterIndex),
		uintptr(bufferLocation),
	)
}

func (c *ID3D12GraphicsCommandList) CopyTextureRegion(dst *D3D12_TEXTURE_COPY_LOCATION, dstX, dstY, dstZ uint32, src *D3D12_TEXTURE_COPY_LOCATION, srcBox *D3D12_BOX) {
	syscall.Syscall9(
		c.vtbl.CopyTextureRegion,
		7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(dstZ),
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(srcBox)),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) BeginQuery(queryHeap *ID3D12QueryHeap, queryType D3D12_QUERY_TYPE, index uint32) {
	syscall.Syscall6(
		c.vtbl.BeginQuery,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(queryHeap)),
		uintptr(queryType),
		uintptr(index),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) EndQuery(queryHeap *ID3D12QueryHeap, queryType D3D12_QUERY_TYPE, index uint32) {
	syscall.Syscall6(
		c.vtbl.EndQuery,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(queryHeap)),
		uintptr(queryType),
		uintptr(index),
		0, 0,
	)
}

// CopyDescriptorsSimple rounds out ID3D12Device's binding the same way:
// its vtbl slot is reserved but had no Go wrapper, needed by the
// descriptor allocator's cross-heap copy path.
func (d *ID3D12Device) CopyDescriptorsSimple(numDescriptors uint32, dstStart, srcStart D3D12_CPU_DESCRIPTOR_HANDLE, heapType D3D12_DESCRIPTOR_HEAP_TYPE) {
	syscall.Syscall6(
		d.vtbl.CopyDescriptorsSimple,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(numDescriptors),
		dstStart.Ptr,
		srcStart.Ptr,
		uintptr(heapType),
		0,
	)
}

func (c *ID3D12GraphicsCommandList) ResolveQueryData(queryHeap *ID3D12QueryHeap, queryType D3D12_QUERY_TYPE, startIndex, numQueries uint32, destBuffer *ID3D12Resource, alignedDestBufferOffset uint64) {
	syscall.Syscall9(
		c.vtbl.ResolveQueryData,
		7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(queryHeap)),
		uintptr(queryType),
		uintptr(startIndex),
		uintptr(numQueries),
		uintptr(unsafe.Pointer(destBuffer)),
		uintptr(alignedDestBufferOffset),
		0, 0,
	)
}
