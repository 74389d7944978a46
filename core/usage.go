// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "github.com/gogpu/frameengine/core/track"

// BufferUsage is the closed bitmask of buffer usages recognized by
// CreateBuffer (§6 "Buffer usage flags").
type BufferUsage uint32

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageIndirect
	BufferUsageGraphicsStorageRead
	BufferUsageGraphicsStorageWrite
	BufferUsageComputeStorageRead
	BufferUsageComputeStorageWrite
)

func (u BufferUsage) Has(bit BufferUsage) bool { return u&bit != 0 }

// TextureUsage is the closed bitmask of texture usages recognized by
// CreateTexture (§6 "Texture usage flags").
type TextureUsage uint32

const (
	TextureUsageSampler TextureUsage = 1 << iota
	TextureUsageColorTarget
	TextureUsageDepthStencilTarget
	TextureUsageGraphicsStorageRead
	TextureUsageGraphicsStorageWrite
	TextureUsageComputeStorageRead
	TextureUsageComputeStorageWrite
)

func (u TextureUsage) Has(bit TextureUsage) bool { return u&bit != 0 }

// DefaultTextureState derives a newly created texture sub-resource's
// default state from its usage flags, applying the priority order in §4.3
// verbatim: the first matching row wins.
func DefaultTextureState(u TextureUsage) track.ResourceState {
	switch {
	case u.Has(TextureUsageSampler) || u.Has(TextureUsageGraphicsStorageRead):
		return track.StatePixelShaderResource | track.StateNonPixelShaderResource
	case u.Has(TextureUsageColorTarget):
		return track.StateRenderTarget
	case u.Has(TextureUsageDepthStencilTarget):
		return track.StateDepthWrite
	case u.Has(TextureUsageComputeStorageRead):
		return track.StateNonPixelShaderResource
	case u.Has(TextureUsageComputeStorageWrite):
		return track.StateUnorderedAccess
	default:
		return track.StateCommon
	}
}

// DefaultBufferState derives a newly created buffer's default state from
// its usage flags, applying the priority order in §4.3 verbatim.
func DefaultBufferState(u BufferUsage) track.ResourceState {
	switch {
	case u.Has(BufferUsageVertex):
		return track.StateVertexAndConstantBuffer
	case u.Has(BufferUsageIndex):
		return track.StateIndexBuffer
	case u.Has(BufferUsageIndirect):
		return track.StateIndirectArgument
	case u.Has(BufferUsageGraphicsStorageRead):
		return track.StatePixelShaderResource | track.StateNonPixelShaderResource
	case u.Has(BufferUsageComputeStorageRead):
		return track.StateNonPixelShaderResource
	case u.Has(BufferUsageComputeStorageWrite):
		return track.StateUnorderedAccess
	default:
		return track.StateCommon
	}
}
