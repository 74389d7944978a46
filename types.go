// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frameengine

import "github.com/gogpu/frameengine/core"

// The types below are thin re-exports of core's public vocabulary. The
// engine's real logic lives in package core; this package only adds the
// platform-specific Open constructor and keeps callers from having to
// import github.com/gogpu/frameengine/core directly for everyday use.

type (
	// BufferContainer is a logical buffer handle; its backing ConcreteBuffer
	// is swapped out from under it on every cycling write.
	BufferContainer = core.BufferContainer
	// TextureContainer is a logical texture handle, analogous to
	// BufferContainer.
	TextureContainer = core.TextureContainer
	// Sampler is an immutable sampler object.
	Sampler = core.Sampler

	// CommandBuffer records one frame's worth of GPU work between
	// AcquireCommandBuffer and Submit.
	CommandBuffer = core.CommandBuffer
	// RenderPassEncoder and ComputePassEncoder scope draw/dispatch calls to
	// one open pass on a CommandBuffer.
	RenderPassEncoder  = core.RenderPassEncoder
	ComputePassEncoder = core.ComputePassEncoder
	// RenderPassDescriptor, RenderPassColorAttachment, and
	// RenderPassDepthStencilAttachment configure BeginRenderPass.
	RenderPassDescriptor             = core.RenderPassDescriptor
	RenderPassColorAttachment        = core.RenderPassColorAttachment
	RenderPassDepthStencilAttachment = core.RenderPassDepthStencilAttachment

	// GraphicsPipeline and ComputePipeline are compiled pipeline state
	// objects built via Device.CreateGraphicsPipeline/CreateComputePipeline.
	GraphicsPipeline    = core.GraphicsPipeline
	ComputePipeline     = core.ComputePipeline
	GraphicsPipelineDesc = core.GraphicsPipelineDesc
	ComputePipelineDesc  = core.ComputePipelineDesc
	StageCounts           = core.StageCounts

	// Window is a claimed presentation surface backed by a driver swapchain.
	Window = core.Window
	// Fence is a pooled GPU/CPU synchronization point returned by Submit.
	Fence = core.Fence
	// OcclusionQuery is a handle into the device's occlusion query pool.
	OcclusionQuery = core.OcclusionQuery

	// BufferUsage and TextureUsage are bitmasks declared at creation time
	// and enforced by the resource-state tracker.
	BufferUsage  = core.BufferUsage
	TextureUsage = core.TextureUsage
	// NativeHeapKind selects the driver heap a buffer is allocated from
	// (e.g. device-local vs. upload).
	NativeHeapKind = core.NativeHeapKind
	// TextureDimensionality distinguishes 1D/2D/3D/Cube textures.
	TextureDimensionality = core.TextureDimensionality
	// TextureAllocDesc configures Device.CreateTexture.
	TextureAllocDesc = core.TextureAllocDesc
	// SubresourceAllocDesc selects a mip/array-slice range for a view write.
	SubresourceAllocDesc = core.SubresourceAllocDesc
	// SamplerDesc configures Device.CreateSampler.
	SamplerDesc = core.SamplerDesc

	// DescriptorHeapKind enumerates the four descriptor heap kinds the
	// engine allocates from (RTV, DSV, CBVSRVUAV, Sampler).
	DescriptorHeapKind = core.DescriptorHeapKind
	// CPUDescriptor is a lightweight (kind, slot) reference into a staging
	// heap, resolved to a real native handle only by the driver.
	CPUDescriptor = core.CPUDescriptor

	// SwapchainComposition and PresentMode configure ClaimWindow and
	// SetSwapchainParameters.
	SwapchainComposition = core.SwapchainComposition
	PresentMode          = core.PresentMode

	// LoadOp, StoreOp, Color, Filter, PrimitiveTopology, BlendFactor,
	// BlendOperation, BlendComponent, and BlendState are the pipeline's
	// fixed-function state vocabulary.
	LoadOp            = core.LoadOp
	StoreOp           = core.StoreOp
	Color             = core.Color
	Filter            = core.Filter
	PrimitiveTopology = core.PrimitiveTopology
	BlendFactor       = core.BlendFactor
	BlendOperation    = core.BlendOperation
	BlendComponent    = core.BlendComponent
	BlendState        = core.BlendState

	// BlitRect names a rectangular sub-region for CommandBuffer.Blit.
	BlitRect = core.BlitRect

	// RootSignatureDesc and RootParameter describe a pipeline's binding
	// layout to the driver's root-signature builder.
	RootSignatureDesc = core.RootSignatureDesc
	RootParameter     = core.RootParameter
)

// Heap kind and present-mode constants, re-exported so callers never need
// the core import just to name one.
const (
	HeapKindRTV       = core.HeapKindRTV
	HeapKindDSV       = core.HeapKindDSV
	HeapKindCBVSRVUAV = core.HeapKindCBVSRVUAV
	HeapKindSampler   = core.HeapKindSampler
)

const (
	PresentModeImmediate = core.PresentModeImmediate
	PresentModeVsync     = core.PresentModeVsync
	PresentModeMailbox   = core.PresentModeMailbox
)

const (
	CompositionSDR         = core.CompositionSDR
	CompositionSDRSRGB     = core.CompositionSDRSRGB
	CompositionHDR         = core.CompositionHDR
	CompositionHDRAdvanced = core.CompositionHDRAdvanced
)
