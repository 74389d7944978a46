// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/core/track"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
	"github.com/gogpu/gputypes"
)

// textureFormatToDXGI maps an engine texture format to its D3D12 resource
// format, grounded on the teacher's own internal/dx12/convert.go switch of
// the same shape.
func textureFormatToDXGI(f gputypes.TextureFormat) d3d12.DXGI_FORMAT {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM_SRGB
	case gputypes.TextureFormatBGRA8Unorm:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM_SRGB
	case gputypes.TextureFormatDepth24Plus:
		return d3d12.DXGI_FORMAT_D24_UNORM_S8_UINT
	case gputypes.TextureFormatDepth32Float:
		return d3d12.DXGI_FORMAT_D32_FLOAT
	default:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM
	}
}

// resourceStateToD3D12 translates the engine's tracker bitmask (which can
// carry more than one bit set, e.g. pixel+non-pixel shader resource) into
// the equivalent D3D12_RESOURCE_STATES bitmask. Bits not representable in
// D3D12 (there are none in the tracker's current vocabulary) are dropped.
func resourceStateToD3D12(s track.ResourceState) d3d12.D3D12_RESOURCE_STATES {
	var out d3d12.D3D12_RESOURCE_STATES
	if s&track.StateVertexAndConstantBuffer != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER
	}
	if s&track.StateIndexBuffer != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_INDEX_BUFFER
	}
	if s&track.StateRenderTarget != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_RENDER_TARGET
	}
	if s&track.StateUnorderedAccess != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_UNORDERED_ACCESS
	}
	if s&track.StateDepthWrite != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_DEPTH_WRITE
	}
	if s&track.StateDepthRead != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_DEPTH_READ
	}
	if s&track.StateNonPixelShaderResource != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE
	}
	if s&track.StatePixelShaderResource != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE
	}
	if s&track.StateIndirectArgument != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_INDIRECT_ARGUMENT
	}
	if s&track.StateCopyDest != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_COPY_DEST
	}
	if s&track.StateCopySource != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE
	}
	if s&track.StateResolveDest != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_RESOLVE_DEST
	}
	if s&track.StateResolveSource != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_RESOLVE_SOURCE
	}
	if s&track.StatePresent != 0 {
		out |= d3d12.D3D12_RESOURCE_STATE_PRESENT
	}
	return out
}

func heapKindToD3D12(kind core.NativeHeapKind) d3d12.D3D12_HEAP_TYPE {
	switch kind {
	case core.HeapUpload:
		return d3d12.D3D12_HEAP_TYPE_UPLOAD
	case core.HeapReadback:
		return d3d12.D3D12_HEAP_TYPE_READBACK
	default:
		return d3d12.D3D12_HEAP_TYPE_DEFAULT
	}
}

func descriptorHeapKindToD3D12(kind core.DescriptorHeapKind) d3d12.D3D12_DESCRIPTOR_HEAP_TYPE {
	switch kind {
	case core.HeapKindSampler:
		return d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER
	case core.HeapKindRTV:
		return d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_RTV
	case core.HeapKindDSV:
		return d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_DSV
	default:
		return d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV
	}
}

func filterToD3D12(min, mag, mip core.Filter) d3d12.D3D12_FILTER {
	if min == core.FilterLinear && mag == core.FilterLinear && mip == core.FilterLinear {
		return d3d12.D3D12_FILTER_MIN_MAG_MIP_LINEAR
	}
	if min == core.FilterLinear && mag == core.FilterLinear {
		return d3d12.D3D12_FILTER_MIN_MAG_POINT_MIP_LINEAR
	}
	return d3d12.D3D12_FILTER_MIN_MAG_MIP_POINT
}

func addressModeToD3D12(mode uint32) d3d12.D3D12_TEXTURE_ADDRESS_MODE {
	switch mode {
	case 1:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_MIRROR
	case 2:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_CLAMP
	default:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_WRAP
	}
}

func topologyToD3D12(t core.PrimitiveTopology) (d3d12.D3D_PRIMITIVE_TOPOLOGY, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE) {
	switch t {
	case core.TopologyTriangleStrip:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	case core.TopologyLineList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_LINELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE
	case core.TopologyPointList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_POINTLIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT
	default:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	}
}

func blendFactorToD3D12(f core.BlendFactor) d3d12.D3D12_BLEND {
	switch f {
	case core.BlendFactorOne:
		return d3d12.D3D12_BLEND_ONE
	case core.BlendFactorSrcAlpha:
		return d3d12.D3D12_BLEND_SRC_ALPHA
	case core.BlendFactorOneMinusSrcAlpha:
		return d3d12.D3D12_BLEND_INV_SRC_ALPHA
	case core.BlendFactorDstAlpha:
		return d3d12.D3D12_BLEND_DEST_ALPHA
	case core.BlendFactorOneMinusDstAlpha:
		return d3d12.D3D12_BLEND_INV_DEST_ALPHA
	default:
		return d3d12.D3D12_BLEND_ZERO
	}
}

func blendOpToD3D12(op core.BlendOperation) d3d12.D3D12_BLEND_OP {
	switch op {
	case core.BlendOpSubtract:
		return d3d12.D3D12_BLEND_OP_SUBTRACT
	case core.BlendOpReverseSubtract:
		return d3d12.D3D12_BLEND_OP_REV_SUBTRACT
	case core.BlendOpMin:
		return d3d12.D3D12_BLEND_OP_MIN
	case core.BlendOpMax:
		return d3d12.D3D12_BLEND_OP_MAX
	default:
		return d3d12.D3D12_BLEND_OP_ADD
	}
}

func boolToBOOL(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
