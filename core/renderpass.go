// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "github.com/gogpu/frameengine/core/track"

// RenderPassColorAttachment is one color target bound for a render pass
// (§3, §4.7 "Begin render pass").
type RenderPassColorAttachment struct {
	Texture    *TextureContainer
	Layer      uint32
	Level      uint32
	LoadOp     LoadOp
	StoreOp    StoreOp
	ClearValue Color
	Cycle      bool
}

// RenderPassDepthStencilAttachment is the optional depth-stencil target.
type RenderPassDepthStencilAttachment struct {
	Texture           *TextureContainer
	Layer             uint32
	Level             uint32
	DepthLoadOp       LoadOp
	DepthStoreOp      StoreOp
	DepthClearValue   float32
	DepthReadOnly     bool
	StencilLoadOp     LoadOp
	StencilStoreOp    StoreOp
	StencilClearValue uint32
	StencilReadOnly   bool
	Cycle             bool
}

// RenderPassDescriptor bundles the attachments for BeginRenderPass.
type RenderPassDescriptor struct {
	Label                  string
	ColorAttachments       []RenderPassColorAttachment
	DepthStencilAttachment *RenderPassDepthStencilAttachment
}

// RenderPassEncoder records draw commands within one render pass (§3).
type RenderPassEncoder struct {
	cb   *CommandBuffer
	rtvs []CPUDescriptor
	dsv  *CPUDescriptor
}

// BeginRenderPass implements §4.7's "Begin render pass" verbatim: prepare
// every attachment's sub-resource for write, emit clears, set a default
// viewport/scissor to the smallest attachment dimensions, bind the render
// targets.
func (cb *CommandBuffer) BeginRenderPass(desc RenderPassDescriptor) (*RenderPassEncoder, error) {
	if cb.pass != passNone {
		return nil, ErrPassNesting
	}
	cb.pass = passRender

	p := &RenderPassEncoder{cb: cb}
	minW, minH := ^uint32(0), ^uint32(0)

	for _, ca := range desc.ColorAttachments {
		cycle := ca.Cycle && ca.LoadOp != LoadOpLoad
		sub, err := cb.PrepareTextureSubresourceForWrite(ca.Texture, ca.Layer, ca.Level, cycle, track.StateRenderTarget)
		if err != nil {
			return nil, err
		}
		if sub.rtv != nil {
			p.rtvs = append(p.rtvs, *sub.rtv)
			if ca.LoadOp == LoadOpClear {
				cb.device.driver.ClearRenderTargetView(cb.native, *sub.rtv, [4]float32{
					float32(ca.ClearValue.R), float32(ca.ClearValue.G), float32(ca.ClearValue.B), float32(ca.ClearValue.A),
				})
			}
		}
		if ca.Texture.desc.Width < minW {
			minW = ca.Texture.desc.Width
		}
		if ca.Texture.desc.Height < minH {
			minH = ca.Texture.desc.Height
		}
	}

	if ds := desc.DepthStencilAttachment; ds != nil {
		sub, err := cb.PrepareTextureSubresourceForWrite(ds.Texture, ds.Layer, ds.Level, ds.Cycle, track.StateDepthWrite)
		if err != nil {
			return nil, err
		}
		if sub.dsv != nil {
			p.dsv = sub.dsv
			clearDepth := ds.DepthLoadOp == LoadOpClear
			clearStencil := ds.StencilLoadOp == LoadOpClear
			if clearDepth || clearStencil {
				cb.device.driver.ClearDepthStencilView(cb.native, *sub.dsv, ds.DepthClearValue, uint8(ds.StencilClearValue), clearDepth, clearStencil)
			}
		}
		if ds.Texture.desc.Width < minW {
			minW = ds.Texture.desc.Width
		}
		if ds.Texture.desc.Height < minH {
			minH = ds.Texture.desc.Height
		}
	}

	if minW == ^uint32(0) {
		minW, minH = 0, 0
	}
	cb.device.driver.SetViewportScissor(cb.native, 0, 0, float32(minW), float32(minH), 0, 1)
	cb.device.driver.OMSetRenderTargets(cb.native, p.rtvs, p.dsv)

	return p, nil
}

// SetPipeline binds the pipeline-state object and root signature, sets
// the topology, and flags every binding group dirty (§4.7 "Bind graphics
// pipeline").
func (p *RenderPassEncoder) SetPipeline(pipeline NativeHandle, rs *rootSignature, topology PrimitiveTopology) {
	cb := p.cb
	cb.boundPipeline = pipeline
	cb.boundRootSig = rs
	cb.device.driver.SetPipelineState(cb.native, pipeline, rs.native, false)
	cb.device.driver.SetPrimitiveTopology(cb.native, topology)
	for _, g := range []bindGroupClass{groupSampler, groupSampledTexture, groupStorageTexture, groupStorageBuffer, groupUniform} {
		cb.dirtyGroups[bindGroupKey{stage: stageVertex, group: g}] = true
		cb.dirtyGroups[bindGroupKey{stage: stageFragment, group: g}] = true
	}
}

func (p *RenderPassEncoder) SetViewport(x, y, w, h, minDepth, maxDepth float32) {
	p.cb.device.driver.SetViewportScissor(p.cb.native, x, y, w, h, minDepth, maxDepth)
}

func (p *RenderPassEncoder) SetScissorRect(x, y, w, h uint32) {
	// The engine bakes scissor into the same call as viewport; a
	// dedicated scissor-only native call is unnecessary for this backend.
	p.cb.device.driver.SetViewportScissor(p.cb.native, float32(x), float32(y), float32(w), float32(h), 0, 1)
}

func (p *RenderPassEncoder) SetBlendConstant(c Color) {
	p.cb.device.driver.SetBlendConstant(p.cb.native, [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)})
}

func (p *RenderPassEncoder) SetStencilReference(ref uint32) {
	p.cb.device.driver.SetStencilReference(p.cb.native, ref)
}

func (p *RenderPassEncoder) SetVertexBuffer(slot uint32, c *BufferContainer, offset uint64) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateVertexAndConstantBuffer)
	if err != nil {
		return err
	}
	p.cb.device.driver.SetVertexBuffer(p.cb.native, slot, active.native, offset, c.size-offset, 0)
	return nil
}

func (p *RenderPassEncoder) SetIndexBuffer(c *BufferContainer, format uint32, offset uint64) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateIndexBuffer)
	if err != nil {
		return err
	}
	p.cb.device.driver.SetIndexBuffer(p.cb.native, active.native, offset, c.size-offset, format)
	return nil
}

// BindSampler stages sampler's descriptor at slot in stage's sampler table,
// flushed at the next draw (§4.6).
func (p *RenderPassEncoder) BindSampler(stage shaderStage, slot uint32, s *Sampler) error {
	if s.cpu == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stage, groupSampler, slot, *s.cpu)
	return nil
}

// BindSampledTexture stages the sub-resource's SRV at slot, transitioning it
// to a shader-resource read state.
func (p *RenderPassEncoder) BindSampledTexture(stage shaderStage, slot, layer, level uint32, c *TextureContainer) error {
	sub, err := p.cb.PrepareTextureSubresourceForWrite(c, layer, level, false, track.StatePixelShaderResource|track.StateNonPixelShaderResource)
	if err != nil {
		return err
	}
	if sub.srv == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stage, groupSampledTexture, slot, *sub.srv)
	return nil
}

// BindStorageTexture stages the sub-resource's UAV at slot for read-write
// shader access, cycling the container first if requested.
func (p *RenderPassEncoder) BindStorageTexture(stage shaderStage, slot, layer, level uint32, c *TextureContainer, cycle bool) error {
	sub, err := p.cb.PrepareTextureSubresourceForWrite(c, layer, level, cycle, track.StateUnorderedAccess)
	if err != nil {
		return err
	}
	if sub.uav == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stage, groupStorageTexture, slot, *sub.uav)
	return nil
}

// BindStorageBuffer stages c's active buffer for shader access. A buffer
// created with a storage-write usage carries a UAV descriptor; one created
// read-only carries an SRV instead — whichever this container has is the
// one this single graphics storage table binds.
func (p *RenderPassEncoder) BindStorageBuffer(stage shaderStage, slot uint32, c *BufferContainer, cycle bool) error {
	dest := track.StateUnorderedAccess
	if !c.usage.Has(BufferUsageGraphicsStorageWrite) {
		dest = track.StatePixelShaderResource | track.StateNonPixelShaderResource
	}
	active, err := p.cb.PrepareBufferForWrite(c, cycle, dest)
	if err != nil {
		return err
	}
	view := active.uav
	if view == nil {
		view = active.srv
	}
	if view == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stage, groupStorageBuffer, slot, *view)
	return nil
}

// flushBindings implements §4.7's "Flush bindings before draw/dispatch":
// for every dirty group with a nonzero pipeline-declared count, reserve
// GPU-heap slots, copy descriptors across, and set the root parameter;
// for every dirty uniform slot, set the root CBV from its draw offset.
func (p *RenderPassEncoder) flushBindings() {
	cb := p.cb
	for key, dirty := range cb.dirtyGroups {
		if !dirty || key.stage == stageCompute {
			continue
		}
		if key.group == groupUniform {
			if addr, ok := cb.rootCBVAddress(key.stage, 0); ok {
				cb.device.driver.SetGraphicsRootConstantBufferView(cb.native, 0, addr)
			}
			cb.dirtyGroups[key] = false
			continue
		}
		cb.flushDescriptorTable(key, false)
		cb.dirtyGroups[key] = false
	}
}

func (p *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.flushBindings()
	p.cb.device.driver.Draw(p.cb.native, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (p *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.flushBindings()
	p.cb.device.driver.DrawIndexed(p.cb.native, indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

func (p *RenderPassEncoder) DrawIndirect(c *BufferContainer, offset uint64) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateIndirectArgument)
	if err != nil {
		return err
	}
	p.flushBindings()
	p.cb.device.driver.DrawIndirect(p.cb.native, active.native, offset)
	return nil
}

func (p *RenderPassEncoder) DrawIndexedIndirect(c *BufferContainer, offset uint64) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateIndirectArgument)
	if err != nil {
		return err
	}
	p.flushBindings()
	p.cb.device.driver.DrawIndexedIndirect(p.cb.native, active.native, offset)
	return nil
}

// End clears the bound pipeline state and unbinds the render targets. It
// records no transition back to the attachments' default state: they keep
// the render-target or depth-write usage recorded in this command buffer's
// scope, which Finish merges into the device tracker.
func (p *RenderPassEncoder) End() error {
	cb := p.cb
	if cb.pass != passRender {
		return ErrNoActivePass
	}
	cb.boundPipeline = nil
	cb.boundRootSig = nil
	cb.device.driver.OMSetRenderTargets(cb.native, nil, nil)
	cb.pass = passNone
	return nil
}
