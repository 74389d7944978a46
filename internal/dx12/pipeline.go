// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
)

// descriptorRangeTypeForTable maps a descriptor-table's heap kind to the
// range type declared in the serialized root signature. The table's
// individual slots may mix CBV/SRV/UAV descriptors within a CBVSRVUAV
// heap, but root-signature validation only needs one declared type per
// range, so this follows the convention already baked into
// core/rootsig.go's slot layout: SRV for the general resource table,
// SAMPLER for the sampler table.
func descriptorRangeTypeForTable(kind core.DescriptorHeapKind) d3d12.D3D12_DESCRIPTOR_RANGE_TYPE {
	if kind == core.HeapKindSampler {
		return d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER
	}
	return d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_SRV
}

func (d *Device) CreateRootSignature(desc core.RootSignatureDesc) (core.NativeHandle, error) {
	params := make([]d3d12.D3D12_ROOT_PARAMETER, len(desc.Parameters))
	// Descriptor ranges must outlive the Union byte copy below, so keep
	// them pinned in a parallel slice for the duration of serialization.
	ranges := make([]d3d12.D3D12_DESCRIPTOR_RANGE, len(desc.Parameters))
	tables := make([]d3d12.D3D12_ROOT_DESCRIPTOR_TABLE, len(desc.Parameters))

	for i, p := range desc.Parameters {
		rp := &params[i]
		rp.ShaderVisibility = d3d12.D3D12_SHADER_VISIBILITY_ALL
		if p.IsRootCBV {
			rp.ParameterType = d3d12.D3D12_ROOT_PARAMETER_TYPE_CBV
			rd := (*d3d12.D3D12_ROOT_DESCRIPTOR)(unsafe.Pointer(&rp.Union[0]))
			rd.ShaderRegister = p.ShaderRegister
			continue
		}
		rp.ParameterType = d3d12.D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE
		ranges[i] = d3d12.D3D12_DESCRIPTOR_RANGE{
			RangeType:                         descriptorRangeTypeForTable(p.TableKind),
			NumDescriptors:                    p.TableCount,
			BaseShaderRegister:                p.ShaderRegister,
			OffsetInDescriptorsFromTableStart: 0xFFFFFFFF, // D3D12_DESCRIPTOR_RANGE_OFFSET_APPEND
		}
		tables[i].NumDescriptorRanges = 1
		tables[i].DescriptorRanges = &ranges[i]
		*(*d3d12.D3D12_ROOT_DESCRIPTOR_TABLE)(unsafe.Pointer(&rp.Union[0])) = tables[i]
	}

	sigDesc := &d3d12.D3D12_ROOT_SIGNATURE_DESC{
		NumParameters: uint32(len(params)),
		Flags:         d3d12.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT,
	}
	if len(params) > 0 {
		sigDesc.Parameters = &params[0]
	}

	lib, err := d3d12.LoadD3D12()
	if err != nil {
		return nil, err
	}
	blob, errBlob, err := lib.SerializeRootSignature(sigDesc, d.rsVersion1_0())
	if err != nil {
		if errBlob != nil {
			defer errBlob.Release()
		}
		return nil, fmt.Errorf("dx12: serialize root signature: %w", err)
	}
	defer blob.Release()

	rootSig, err := d.raw.CreateRootSignature(0, blob.GetBufferPointer(), blob.GetBufferSize())
	if err != nil {
		return nil, fmt.Errorf("dx12: create root signature: %w", err)
	}
	return rootSig, nil
}

func (d *Device) rsVersion1_0() d3d12.D3D_ROOT_SIGNATURE_VERSION {
	return d3d12.D3D_ROOT_SIGNATURE_VERSION_1_0
}

func (d *Device) DestroyRootSignature(h core.NativeHandle) {
	h.(*d3d12.ID3D12RootSignature).Release()
}

func inputLayout() d3d12.D3D12_INPUT_LAYOUT_DESC {
	// The engine's vertex data is laid out by the caller into a single
	// interleaved buffer whose shader reflects its own input signature;
	// the pipeline builder declares no fixed input-element table, mirroring
	// the teacher's bindless-vertex-pulling convention.
	return d3d12.D3D12_INPUT_LAYOUT_DESC{}
}

func defaultRasterizerState() d3d12.D3D12_RASTERIZER_DESC {
	return d3d12.D3D12_RASTERIZER_DESC{
		FillMode:        d3d12.D3D12_FILL_MODE_SOLID,
		CullMode:        d3d12.D3D12_CULL_MODE_BACK,
		DepthClipEnable: 1,
	}
}

func blendDescFrom(b core.BlendState, numTargets uint32) d3d12.D3D12_BLEND_DESC {
	var bd d3d12.D3D12_BLEND_DESC
	rt := d3d12.D3D12_RENDER_TARGET_BLEND_DESC{
		BlendEnable:           boolToBOOL(b.Enabled),
		SrcBlend:              blendFactorToD3D12(b.Color.SrcFactor),
		DestBlend:             blendFactorToD3D12(b.Color.DstFactor),
		BlendOp:               blendOpToD3D12(b.Color.Operation),
		SrcBlendAlpha:         blendFactorToD3D12(b.Alpha.SrcFactor),
		DestBlendAlpha:        blendFactorToD3D12(b.Alpha.DstFactor),
		BlendOpAlpha:          blendOpToD3D12(b.Alpha.Operation),
		LogicOp:               d3d12.D3D12_LOGIC_OP_NOOP,
		RenderTargetWriteMask: d3d12.D3D12_COLOR_WRITE_ENABLE_ALL,
	}
	for i := uint32(0); i < numTargets && i < 8; i++ {
		bd.RenderTarget[i] = rt
	}
	return bd
}

func depthStencilStateFor(hasDepth bool) d3d12.D3D12_DEPTH_STENCIL_DESC {
	if !hasDepth {
		return d3d12.D3D12_DEPTH_STENCIL_DESC{}
	}
	return d3d12.D3D12_DEPTH_STENCIL_DESC{
		DepthEnable:    1,
		DepthWriteMask: d3d12.D3D12_DEPTH_WRITE_MASK_ALL,
		DepthFunc:      d3d12.D3D12_COMPARISON_FUNC_LESS_EQUAL,
	}
}

func (d *Device) CreateGraphicsPipeline(desc core.GraphicsPipelineDesc) (core.NativeHandle, error) {
	_, topologyType := topologyToD3D12(desc.Topology)

	rtvFormats := [8]d3d12.DXGI_FORMAT{}
	for i, f := range desc.RenderTargetFormats {
		if i >= 8 {
			break
		}
		rtvFormats[i] = textureFormatToDXGI(f)
	}

	dsvFormat := d3d12.DXGI_FORMAT_UNKNOWN
	if desc.HasDepth {
		dsvFormat = textureFormatToDXGI(desc.DepthFormat)
	}

	sampleCount := desc.SampleCount
	if sampleCount == 0 {
		sampleCount = 1
	}

	pdesc := &d3d12.D3D12_GRAPHICS_PIPELINE_STATE_DESC{
		RootSignature:         desc.RootSignature.(*d3d12.ID3D12RootSignature),
		VS:                    d3d12.D3D12_SHADER_BYTECODE{BytecodeLength: uintptr(len(desc.VertexShader)), ShaderBytecode: bytesPtr(desc.VertexShader)},
		PS:                    d3d12.D3D12_SHADER_BYTECODE{BytecodeLength: uintptr(len(desc.PixelShader)), ShaderBytecode: bytesPtr(desc.PixelShader)},
		BlendState:            blendDescFrom(desc.Blend, uint32(len(desc.RenderTargetFormats))),
		SampleMask:            0xFFFFFFFF,
		RasterizerState:       defaultRasterizerState(),
		DepthStencilState:     depthStencilStateFor(desc.HasDepth),
		InputLayout:           inputLayout(),
		PrimitiveTopologyType: topologyType,
		NumRenderTargets:      uint32(len(desc.RenderTargetFormats)),
		RTVFormats:            rtvFormats,
		DSVFormat:             dsvFormat,
		SampleDesc:            d3d12.DXGI_SAMPLE_DESC{Count: sampleCount},
	}
	pso, err := d.raw.CreateGraphicsPipelineState(pdesc)
	if err != nil {
		return nil, fmt.Errorf("dx12: create graphics pipeline: %w", err)
	}
	return pso, nil
}

func (d *Device) CreateComputePipeline(desc core.ComputePipelineDesc) (core.NativeHandle, error) {
	pdesc := &d3d12.D3D12_COMPUTE_PIPELINE_STATE_DESC{
		RootSignature: desc.RootSignature.(*d3d12.ID3D12RootSignature),
		CS:            d3d12.D3D12_SHADER_BYTECODE{BytecodeLength: uintptr(len(desc.ComputeShader)), ShaderBytecode: bytesPtr(desc.ComputeShader)},
	}
	pso, err := d.raw.CreateComputePipelineState(pdesc)
	if err != nil {
		return nil, fmt.Errorf("dx12: create compute pipeline: %w", err)
	}
	return pso, nil
}

func (d *Device) DestroyPipeline(h core.NativeHandle) {
	h.(*d3d12.ID3D12PipelineState).Release()
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
