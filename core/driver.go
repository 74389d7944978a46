// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package core implements the frame-resource engine: the command-buffer
// lifecycle, the resource-cycling and binding model, the automatic
// resource-state tracker, the two-tier descriptor heap allocator, the
// uniform-buffer sub-allocator, and the swapchain manager. It is driven
// by a single native backend reached through the Driver interface; unlike
// the wider cross-backend library this engine was extracted from, only
// one Driver implementation (internal/dx12) ships with this module.
package core

import "github.com/gogpu/gputypes"

// Driver is the native-backend contract the frame-resource engine is built
// against. Exactly one concrete implementation (internal/dx12.Device)
// exists; the interface exists so core's engine logic — cycling, tracking,
// descriptor bookkeeping, submission — stays free of cgo/syscall-level
// native calls and is unit-testable against a fake.
type Driver interface {
	// CreateBuffer allocates a concrete GPU buffer of the given size and
	// heap kind, returning an opaque native handle plus its GPU virtual
	// address (only meaningful for upload/readback heaps).
	CreateBuffer(size uint64, kind NativeHeapKind) (NativeHandle, uint64, error)
	DestroyBuffer(NativeHandle)
	MapBuffer(NativeHandle) (uintptr, error)
	UnmapBuffer(NativeHandle)

	// CreateTexture allocates a concrete GPU texture matching desc.
	CreateTexture(desc TextureAllocDesc) (NativeHandle, error)
	DestroyTexture(NativeHandle)

	CreateSampler(desc SamplerDesc) (NativeHandle, error)
	DestroySampler(NativeHandle)

	// CreateDescriptorHeap allocates a native heap of capacity descriptors
	// of the given kind. shaderVisible selects a GPU-bindable heap (for the
	// per-command-buffer pools) versus a CPU-only staging heap.
	CreateDescriptorHeap(kind DescriptorHeapKind, capacity uint32, shaderVisible bool) (NativeHeap, error)
	DestroyDescriptorHeap(NativeHeap)
	WriteBufferView(heap NativeHeap, slot uint32, kind DescriptorHeapKind, buffer NativeHandle, offset, size uint64)
	WriteTextureView(heap NativeHeap, slot uint32, kind DescriptorHeapKind, texture NativeHandle, sub SubresourceAllocDesc)
	WriteSamplerView(heap NativeHeap, slot uint32, sampler NativeHandle)
	CopyDescriptor(dstHeap NativeHeap, dstSlot uint32, srcHeap NativeHeap, srcSlot uint32, kind DescriptorHeapKind)

	CreateRootSignature(desc RootSignatureDesc) (NativeHandle, error)
	DestroyRootSignature(NativeHandle)
	CreateGraphicsPipeline(desc GraphicsPipelineDesc) (NativeHandle, error)
	CreateComputePipeline(desc ComputePipelineDesc) (NativeHandle, error)
	DestroyPipeline(NativeHandle)

	AcquireCommandList() (NativeCommandList, error)
	ResetCommandList(NativeCommandList)
	CloseCommandList(NativeCommandList) error

	CreateFenceObject() (NativeFence, error)
	DestroyFenceObject(NativeFence)
	SignalFence(f NativeFence, value uint64) error
	GetFenceCompletedValue(f NativeFence) uint64
	WaitFenceEvent(f NativeFence, value uint64, timeoutMS uint32) (signalled bool, err error)

	ExecuteCommandLists(lists []NativeCommandList, signalFence NativeFence, signalValue uint64) error

	CreateSwapchain(windowHandle uintptr, width, height uint32, composition gputypes.TextureFormat, bufferCount uint32, tearing bool) (NativeSwapchain, error)
	ResizeSwapchain(s NativeSwapchain, width, height uint32) error
	DestroySwapchain(NativeSwapchain)
	CurrentBackBufferIndex(s NativeSwapchain) uint32
	BackBufferTexture(s NativeSwapchain, index uint32) NativeHandle
	Present(s NativeSwapchain, syncInterval uint32, tearing bool) error
	SupportsTearing() bool

	CreateQueryHeap(count uint32) (NativeHeap, error)
	DestroyQueryHeap(NativeHeap)
	BeginQuery(list NativeCommandList, heap NativeHeap, index uint32)
	EndQuery(list NativeCommandList, heap NativeHeap, index uint32)
	// ResolveQueryData copies count consecutive occlusion-query results
	// (one uint64 each) starting at startIndex in heap into dst at dstOffset.
	ResolveQueryData(list NativeCommandList, heap NativeHeap, startIndex, count uint32, dst NativeHandle, dstOffset uint64)

	// Command-list recording. Every method below records onto the command
	// list most recently returned by AcquireCommandList/ResetCommandList
	// for the CommandBuffer that owns it; the engine never issues these
	// calls from more than one goroutine concurrently per list (§5).
	ResourceBarrier(list NativeCommandList, resource NativeHandle, subresource uint32, before, after uint32)
	SetDescriptorHeaps(list NativeCommandList, viewHeap, samplerHeap NativeHeap)
	OMSetRenderTargets(list NativeCommandList, rtvs []CPUDescriptor, dsv *CPUDescriptor)
	ClearRenderTargetView(list NativeCommandList, rtv CPUDescriptor, color [4]float32)
	ClearDepthStencilView(list NativeCommandList, dsv CPUDescriptor, depth float32, stencil uint8, clearDepth, clearStencil bool)
	SetViewportScissor(list NativeCommandList, x, y, width, height, minDepth, maxDepth float32)
	SetPipelineState(list NativeCommandList, pipeline NativeHandle, rootSig NativeHandle, isCompute bool)
	SetPrimitiveTopology(list NativeCommandList, topology PrimitiveTopology)
	SetBlendConstant(list NativeCommandList, color [4]float32)
	SetStencilReference(list NativeCommandList, ref uint32)
	SetVertexBuffer(list NativeCommandList, slot uint32, buffer NativeHandle, offset, size, stride uint64)
	SetIndexBuffer(list NativeCommandList, buffer NativeHandle, offset, size uint64, format uint32)
	SetGraphicsRootDescriptorTable(list NativeCommandList, rootParam uint32, gpuHeap NativeHeap, slot uint32)
	SetComputeRootDescriptorTable(list NativeCommandList, rootParam uint32, gpuHeap NativeHeap, slot uint32)
	SetGraphicsRootConstantBufferView(list NativeCommandList, rootParam uint32, gpuAddress uint64)
	SetComputeRootConstantBufferView(list NativeCommandList, rootParam uint32, gpuAddress uint64)
	Draw(list NativeCommandList, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(list NativeCommandList, indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
	DrawIndirect(list NativeCommandList, buffer NativeHandle, offset uint64)
	DrawIndexedIndirect(list NativeCommandList, buffer NativeHandle, offset uint64)
	Dispatch(list NativeCommandList, x, y, z uint32)
	DispatchIndirect(list NativeCommandList, buffer NativeHandle, offset uint64)
	CopyBufferToBuffer(list NativeCommandList, src NativeHandle, srcOffset uint64, dst NativeHandle, dstOffset, size uint64)
	CopyBufferToTexture(list NativeCommandList, src NativeHandle, srcOffset uint64, rowPitch uint32, dst NativeHandle, sub SubresourceAllocDesc)
	CopyTextureToBuffer(list NativeCommandList, src NativeHandle, sub SubresourceAllocDesc, dst NativeHandle, dstOffset uint64, rowPitch uint32)
	CopyTextureToTexture(list NativeCommandList, src NativeHandle, srcSub SubresourceAllocDesc, dst NativeHandle, dstSub SubresourceAllocDesc)
	GenerateMipmaps(list NativeCommandList, texture NativeHandle, mipLevels uint32)
}

// NativeHandle is an opaque reference to a driver-owned object (buffer,
// texture, sampler, pipeline, root signature). The engine never inspects
// it; only the Driver that produced it ever dereferences it.
type NativeHandle any

// NativeHeap is an opaque reference to a driver-owned descriptor or query
// heap.
type NativeHeap any

// NativeCommandList is an opaque reference to a driver-owned native command
// list/allocator pair.
type NativeCommandList any

// NativeFence is an opaque reference to a driver-owned fence + OS event
// pair.
type NativeFence any

// NativeSwapchain is an opaque reference to a driver-owned swapchain.
type NativeSwapchain any

// NativeHeapKind selects the memory/visibility class a concrete buffer is
// allocated from.
type NativeHeapKind int

const (
	HeapGPULocal NativeHeapKind = iota
	HeapUpload
	HeapReadback
)

// DescriptorHeapKind selects which of the four descriptor heap kinds a
// slot belongs to (§3 "Descriptor heap").
type DescriptorHeapKind int

const (
	HeapKindCBVSRVUAV DescriptorHeapKind = iota
	HeapKindSampler
	HeapKindRTV
	HeapKindDSV
)

// TextureAllocDesc describes a concrete texture allocation request passed
// to the driver.
type TextureAllocDesc struct {
	Format       gputypes.TextureFormat
	Width        uint32
	Height       uint32
	DepthOrArray uint32
	MipLevels    uint32
	SampleCount  uint32
	Usage        uint32 // TextureUsageFlags bits, passed through opaquely
}

// SubresourceAllocDesc addresses one mip/array slice of a concrete
// texture for a view-creation call.
type SubresourceAllocDesc struct {
	MipLevel   uint32
	ArraySlice uint32
	PlaneSlice uint32
}

// SamplerDesc mirrors the sampler fields the driver needs to build a
// native sampler descriptor.
type SamplerDesc struct {
	MinFilter, MagFilter, MipFilter Filter
	AddressModeU, AddressModeV, AddressModeW uint32
	MaxAnisotropy                            uint32
	CompareEnable                            bool
}

// RootSignatureDesc is the builder's output: a flattened table of root
// parameters ready for native root-signature creation (C6).
type RootSignatureDesc struct {
	Parameters []RootParameter
}

// RootParameter is one root-signature slot: either an inline root CBV
// (used by the uniform-buffer sub-allocator) or a descriptor table
// spanning a contiguous run of a single descriptor-heap kind.
type RootParameter struct {
	IsRootCBV    bool
	ShaderRegister uint32
	TableKind    DescriptorHeapKind
	TableCount   uint32
}

// GraphicsPipelineDesc and ComputePipelineDesc carry opaque shader
// bytecode plus the fixed-function state the spec's pipeline builder
// bakes at creation time (§4.6).
type GraphicsPipelineDesc struct {
	RootSignature NativeHandle
	VertexShader  []byte
	PixelShader   []byte
	Topology      PrimitiveTopology
	RenderTargetFormats []gputypes.TextureFormat
	DepthFormat         gputypes.TextureFormat
	HasDepth            bool
	Blend               BlendState
	SampleCount         uint32
}

// ComputePipelineDesc carries opaque compute-shader bytecode.
type ComputePipelineDesc struct {
	RootSignature NativeHandle
	ComputeShader []byte
}
