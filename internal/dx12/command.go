// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/core/track"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
)

// nativeCommandList pairs a command allocator with the list recording
// against it, mirroring the 1:1 allocator/list pairing the engine's
// CommandBuffer never breaks (§4.7 "Acquisition").
type nativeCommandList struct {
	allocator *d3d12.ID3D12CommandAllocator
	list      *d3d12.ID3D12GraphicsCommandList
}

func (d *Device) AcquireCommandList() (core.NativeCommandList, error) {
	allocator, err := d.acquireCommandAllocator()
	if err != nil {
		return nil, fmt.Errorf("dx12: acquire command allocator: %w", err)
	}
	list, err := d.raw.CreateCommandList(0, d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT, allocator, nil)
	if err != nil {
		d.releaseCommandAllocator(allocator)
		return nil, fmt.Errorf("dx12: create command list: %w", err)
	}
	return &nativeCommandList{allocator: allocator, list: list}, nil
}

func (d *Device) ResetCommandList(h core.NativeCommandList) {
	ncl := h.(*nativeCommandList)
	ncl.allocator.Reset()
	ncl.list.Reset(ncl.allocator, nil)
}

func (d *Device) CloseCommandList(h core.NativeCommandList) error {
	return h.(*nativeCommandList).list.Close()
}

func (d *Device) ResourceBarrier(h core.NativeCommandList, resource core.NativeHandle, subresource uint32, before, after uint32) {
	res := resource.(*nativeResource)
	barrier := d3d12.NewTransitionBarrier(res.resource, resourceStateToD3D12(track.ResourceState(before)), resourceStateToD3D12(track.ResourceState(after)), subresource)
	h.(*nativeCommandList).list.ResourceBarrier(1, &barrier)
}

func (d *Device) SetDescriptorHeaps(h core.NativeCommandList, viewHeap, samplerHeap core.NativeHeap) {
	heaps := [2]*d3d12.ID3D12DescriptorHeap{}
	n := uint32(0)
	if viewHeap != nil {
		heaps[n] = viewHeap.(*nativeHeap).heap
		n++
	}
	if samplerHeap != nil {
		heaps[n] = samplerHeap.(*nativeHeap).heap
		n++
	}
	if n == 0 {
		return
	}
	h.(*nativeCommandList).list.SetDescriptorHeaps(n, &heaps[0])
}

func (d *Device) resolveCPU(c core.CPUDescriptor) d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	nh := d.stagingHeaps[c.Kind]
	if nh == nil {
		return d3d12.D3D12_CPU_DESCRIPTOR_HANDLE{}
	}
	return d.cpuHandle(nh, c.Slot)
}

func (d *Device) OMSetRenderTargets(h core.NativeCommandList, rtvs []core.CPUDescriptor, dsv *core.CPUDescriptor) {
	handles := make([]d3d12.D3D12_CPU_DESCRIPTOR_HANDLE, len(rtvs))
	for i, r := range rtvs {
		handles[i] = d.resolveCPU(r)
	}
	var rtvPtr *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if len(handles) > 0 {
		rtvPtr = &handles[0]
	}
	var dsvHandle d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	var dsvPtr *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if dsv != nil {
		dsvHandle = d.resolveCPU(*dsv)
		dsvPtr = &dsvHandle
	}
	h.(*nativeCommandList).list.OMSetRenderTargets(uint32(len(rtvs)), rtvPtr, 0, dsvPtr)
}

func (d *Device) ClearRenderTargetView(h core.NativeCommandList, rtv core.CPUDescriptor, color [4]float32) {
	h.(*nativeCommandList).list.ClearRenderTargetView(d.resolveCPU(rtv), &color, 0, nil)
}

func (d *Device) ClearDepthStencilView(h core.NativeCommandList, dsv core.CPUDescriptor, depth float32, stencil uint8, clearDepth, clearStencil bool) {
	var flags d3d12.D3D12_CLEAR_FLAGS
	if clearDepth {
		flags |= d3d12.D3D12_CLEAR_FLAG_DEPTH
	}
	if clearStencil {
		flags |= d3d12.D3D12_CLEAR_FLAG_STENCIL
	}
	if flags == 0 {
		return
	}
	h.(*nativeCommandList).list.ClearDepthStencilView(d.resolveCPU(dsv), flags, depth, stencil, 0, nil)
}

func (d *Device) SetViewportScissor(h core.NativeCommandList, x, y, width, height, minDepth, maxDepth float32) {
	list := h.(*nativeCommandList).list
	vp := d3d12.D3D12_VIEWPORT{TopLeftX: x, TopLeftY: y, Width: width, Height: height, MinDepth: minDepth, MaxDepth: maxDepth}
	list.RSSetViewports(1, &vp)
	rect := d3d12.D3D12_RECT{Left: int32(x), Top: int32(y), Right: int32(x + width), Bottom: int32(y + height)}
	list.RSSetScissorRects(1, &rect)
}

func (d *Device) SetPipelineState(h core.NativeCommandList, pipeline core.NativeHandle, rootSig core.NativeHandle, isCompute bool) {
	list := h.(*nativeCommandList).list
	list.SetPipelineState(pipeline.(*d3d12.ID3D12PipelineState))
	if isCompute {
		list.SetComputeRootSignature(rootSig.(*d3d12.ID3D12RootSignature))
	} else {
		list.SetGraphicsRootSignature(rootSig.(*d3d12.ID3D12RootSignature))
	}
}

func (d *Device) SetPrimitiveTopology(h core.NativeCommandList, topology core.PrimitiveTopology) {
	t, _ := topologyToD3D12(topology)
	h.(*nativeCommandList).list.IASetPrimitiveTopology(t)
}

func (d *Device) SetBlendConstant(h core.NativeCommandList, color [4]float32) {
	h.(*nativeCommandList).list.OMSetBlendFactor(&color)
}

func (d *Device) SetStencilReference(h core.NativeCommandList, ref uint32) {
	h.(*nativeCommandList).list.OMSetStencilRef(ref)
}

func (d *Device) SetVertexBuffer(h core.NativeCommandList, slot uint32, buffer core.NativeHandle, offset, size, stride uint64) {
	res := buffer.(*nativeResource)
	view := d3d12.D3D12_VERTEX_BUFFER_VIEW{
		BufferLocation: res.gpuAddress + offset,
		SizeInBytes:    uint32(size),
		StrideInBytes:  uint32(stride),
	}
	h.(*nativeCommandList).list.IASetVertexBuffers(slot, 1, &view)
}

func (d *Device) SetIndexBuffer(h core.NativeCommandList, buffer core.NativeHandle, offset, size uint64, format uint32) {
	res := buffer.(*nativeResource)
	view := d3d12.D3D12_INDEX_BUFFER_VIEW{
		BufferLocation: res.gpuAddress + offset,
		SizeInBytes:    uint32(size),
		Format:         d3d12.DXGI_FORMAT(format),
	}
	h.(*nativeCommandList).list.IASetIndexBuffer(&view)
}

func (d *Device) SetGraphicsRootDescriptorTable(h core.NativeCommandList, rootParam uint32, gpuHeap core.NativeHeap, slot uint32) {
	nh := gpuHeap.(*nativeHeap)
	h.(*nativeCommandList).list.SetGraphicsRootDescriptorTable(rootParam, d.gpuHandle(nh, slot))
}

func (d *Device) SetComputeRootDescriptorTable(h core.NativeCommandList, rootParam uint32, gpuHeap core.NativeHeap, slot uint32) {
	nh := gpuHeap.(*nativeHeap)
	h.(*nativeCommandList).list.SetComputeRootDescriptorTable(rootParam, d.gpuHandle(nh, slot))
}

func (d *Device) SetGraphicsRootConstantBufferView(h core.NativeCommandList, rootParam uint32, gpuAddress uint64) {
	h.(*nativeCommandList).list.SetGraphicsRootConstantBufferView(rootParam, gpuAddress)
}

func (d *Device) SetComputeRootConstantBufferView(h core.NativeCommandList, rootParam uint32, gpuAddress uint64) {
	h.(*nativeCommandList).list.SetComputeRootConstantBufferView(rootParam, gpuAddress)
}

func (d *Device) Draw(h core.NativeCommandList, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	h.(*nativeCommandList).list.DrawInstanced(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (d *Device) DrawIndexed(h core.NativeCommandList, indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	h.(*nativeCommandList).list.DrawIndexedInstanced(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

func (d *Device) DrawIndirect(h core.NativeCommandList, buffer core.NativeHandle, offset uint64) {
	res := buffer.(*nativeResource)
	h.(*nativeCommandList).list.ExecuteIndirect(d.drawIndirectSig, 1, res.resource, offset, nil, 0)
}

func (d *Device) DrawIndexedIndirect(h core.NativeCommandList, buffer core.NativeHandle, offset uint64) {
	res := buffer.(*nativeResource)
	h.(*nativeCommandList).list.ExecuteIndirect(d.drawIndexedIndirectSig, 1, res.resource, offset, nil, 0)
}

func (d *Device) Dispatch(h core.NativeCommandList, x, y, z uint32) {
	h.(*nativeCommandList).list.Dispatch(x, y, z)
}

func (d *Device) DispatchIndirect(h core.NativeCommandList, buffer core.NativeHandle, offset uint64) {
	res := buffer.(*nativeResource)
	h.(*nativeCommandList).list.ExecuteIndirect(d.dispatchIndirectSig, 1, res.resource, offset, nil, 0)
}

func (d *Device) CopyBufferToBuffer(h core.NativeCommandList, src core.NativeHandle, srcOffset uint64, dst core.NativeHandle, dstOffset, size uint64) {
	h.(*nativeCommandList).list.CopyBufferRegion(dst.(*nativeResource).resource, dstOffset, src.(*nativeResource).resource, srcOffset, size)
}

// subresourceIndexLocation addresses one mip/array slice of a texture
// resource directly, for texture-to-texture and texture-to-buffer copies.
func subresourceIndexLocation(res *nativeResource, sub core.SubresourceAllocDesc) d3d12.D3D12_TEXTURE_COPY_LOCATION {
	loc := d3d12.D3D12_TEXTURE_COPY_LOCATION{Resource: res.resource, Type: d3d12.D3D12_TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX}
	index := (*uint32)(unsafe.Pointer(&loc.Union[0]))
	*index = sub.MipLevel + sub.ArraySlice*mipLevelsPerArraySliceApprox
	return loc
}

// placedFootprintLocation addresses a linear buffer region laid out as one
// subresource's worth of texel data, for buffer<->texture copies.
func placedFootprintLocation(res *nativeResource, offset uint64, format d3d12.DXGI_FORMAT, width, height, rowPitch uint32) d3d12.D3D12_TEXTURE_COPY_LOCATION {
	loc := d3d12.D3D12_TEXTURE_COPY_LOCATION{Resource: res.resource, Type: d3d12.D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT}
	fp := (*d3d12.D3D12_PLACED_SUBRESOURCE_FOOTPRINT)(unsafe.Pointer(&loc.Union[0]))
	fp.Offset = offset
	fp.Footprint = d3d12.D3D12_SUBRESOURCE_FOOTPRINT{Format: format, Width: width, Height: height, Depth: 1, RowPitch: rowPitch}
	return loc
}

// mipLevelsPerArraySliceApprox is the stride used to flatten a
// (mip, array slice) pair into D3D12's linear subresource index, matching
// D3D12CalcSubresource's convention when every texture allocation this
// engine creates declares the same mip-level count passed at creation.
const mipLevelsPerArraySliceApprox = 16

func (d *Device) CopyBufferToTexture(h core.NativeCommandList, src core.NativeHandle, srcOffset uint64, rowPitch uint32, dst core.NativeHandle, sub core.SubresourceAllocDesc) {
	dstRes := dst.(*nativeResource)
	dstLoc := subresourceIndexLocation(dstRes, sub)
	srcLoc := placedFootprintLocation(src.(*nativeResource), srcOffset, dstRes.format, rowPitch/4, 0, rowPitch)
	h.(*nativeCommandList).list.CopyTextureRegion(&dstLoc, 0, 0, 0, &srcLoc, nil)
}

func (d *Device) CopyTextureToBuffer(h core.NativeCommandList, src core.NativeHandle, sub core.SubresourceAllocDesc, dst core.NativeHandle, dstOffset uint64, rowPitch uint32) {
	srcRes := src.(*nativeResource)
	srcLoc := subresourceIndexLocation(srcRes, sub)
	dstLoc := placedFootprintLocation(dst.(*nativeResource), dstOffset, srcRes.format, rowPitch/4, 0, rowPitch)
	h.(*nativeCommandList).list.CopyTextureRegion(&dstLoc, 0, 0, 0, &srcLoc, nil)
}

func (d *Device) CopyTextureToTexture(h core.NativeCommandList, src core.NativeHandle, srcSub core.SubresourceAllocDesc, dst core.NativeHandle, dstSub core.SubresourceAllocDesc) {
	srcLoc := subresourceIndexLocation(src.(*nativeResource), srcSub)
	dstLoc := subresourceIndexLocation(dst.(*nativeResource), dstSub)
	h.(*nativeCommandList).list.CopyTextureRegion(&dstLoc, 0, 0, 0, &srcLoc, nil)
}

// GenerateMipmaps records nothing on this backend: a copy pass's
// GenerateMipmaps (core/copypass.go) reaches this method, and the texture's
// lower mip levels are left as they were.
func (d *Device) GenerateMipmaps(h core.NativeCommandList, texture core.NativeHandle, mipLevels uint32) {
}
