// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "github.com/gogpu/frameengine/core/track"

// ComputePassEncoder records dispatch commands within one compute pass
// (§3, §4.7 "Bind compute pipeline").
type ComputePassEncoder struct {
	cb *CommandBuffer
	// readTextures/readBuffers are the storage resources this pass
	// recorded as NonPixelShaderResource on bind. End drops these lists
	// without returning the resources to their default state.
	readTextures []*Subresource
	readBuffers  []*ConcreteBuffer
}

// BeginComputePass opens a compute pass. Unlike a render pass there are no
// attachments to prepare; binding happens entirely through SetPipeline and
// the per-stage bind calls below.
func (cb *CommandBuffer) BeginComputePass() (*ComputePassEncoder, error) {
	if cb.pass != passNone {
		return nil, ErrPassNesting
	}
	cb.pass = passCompute
	return &ComputePassEncoder{cb: cb}, nil
}

// SetPipeline binds the compute pipeline-state object and root signature
// and flags every compute binding group dirty.
func (p *ComputePassEncoder) SetPipeline(pipeline NativeHandle, rs *rootSignature) {
	cb := p.cb
	cb.boundPipeline = pipeline
	cb.boundRootSig = rs
	cb.device.driver.SetPipelineState(cb.native, pipeline, rs.native, true)
	for _, g := range []bindGroupClass{
		groupComputeStorageTextureRead, groupComputeStorageBufferRead,
		groupComputeStorageTextureWrite, groupComputeStorageBufferWrite,
		groupUniform,
	} {
		cb.dirtyGroups[bindGroupKey{stage: stageCompute, group: g}] = true
	}
}

// BindStorageTextureRead prepares and stages a read-only storage texture,
// recording NonPixelShaderResource usage for it in this command buffer's
// scope. End does not return it to its default state.
func (p *ComputePassEncoder) BindStorageTextureRead(slot, layer, level uint32, c *TextureContainer) error {
	sub, err := p.cb.PrepareTextureSubresourceForWrite(c, layer, level, false, track.StateNonPixelShaderResource)
	if err != nil {
		return err
	}
	if sub.srv == nil {
		return ErrStagingExhausted
	}
	p.readTextures = append(p.readTextures, sub)
	p.cb.setDescriptorSlot(stageCompute, groupComputeStorageTextureRead, slot, *sub.srv)
	return nil
}

// BindStorageBufferRead is the buffer analogue of BindStorageTextureRead.
func (p *ComputePassEncoder) BindStorageBufferRead(slot uint32, c *BufferContainer) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateNonPixelShaderResource)
	if err != nil {
		return err
	}
	if active.srv == nil {
		return ErrStagingExhausted
	}
	p.readBuffers = append(p.readBuffers, active)
	p.cb.setDescriptorSlot(stageCompute, groupComputeStorageBufferRead, slot, *active.srv)
	return nil
}

// BindStorageTextureWrite prepares and stages a writable storage texture,
// cycling the container if it is currently in flight and the caller asked
// for it.
func (p *ComputePassEncoder) BindStorageTextureWrite(slot, layer, level uint32, c *TextureContainer, cycle bool) error {
	sub, err := p.cb.PrepareTextureSubresourceForWrite(c, layer, level, cycle, track.StateUnorderedAccess)
	if err != nil {
		return err
	}
	if sub.uav == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stageCompute, groupComputeStorageTextureWrite, slot, *sub.uav)
	return nil
}

// BindStorageBufferWrite is the buffer analogue of BindStorageTextureWrite.
func (p *ComputePassEncoder) BindStorageBufferWrite(slot uint32, c *BufferContainer, cycle bool) error {
	active, err := p.cb.PrepareBufferForWrite(c, cycle, track.StateUnorderedAccess)
	if err != nil {
		return err
	}
	if active.uav == nil {
		return ErrStagingExhausted
	}
	p.cb.setDescriptorSlot(stageCompute, groupComputeStorageBufferWrite, slot, *active.uav)
	return nil
}

func (p *ComputePassEncoder) flushBindings() {
	cb := p.cb
	for key, dirty := range cb.dirtyGroups {
		if !dirty || key.stage != stageCompute {
			continue
		}
		if key.group == groupUniform {
			if addr, ok := cb.rootCBVAddress(key.stage, 0); ok {
				cb.device.driver.SetComputeRootConstantBufferView(cb.native, 0, addr)
			}
			cb.dirtyGroups[key] = false
			continue
		}
		cb.flushDescriptorTable(key, true)
		cb.dirtyGroups[key] = false
	}
}

func (p *ComputePassEncoder) Dispatch(x, y, z uint32) {
	p.flushBindings()
	p.cb.device.driver.Dispatch(p.cb.native, x, y, z)
}

func (p *ComputePassEncoder) DispatchIndirect(c *BufferContainer, offset uint64) error {
	active, err := p.cb.PrepareBufferForWrite(c, false, track.StateIndirectArgument)
	if err != nil {
		return err
	}
	p.flushBindings()
	p.cb.device.driver.DispatchIndirect(p.cb.native, active.native, offset)
	return nil
}

// End clears the bound pipeline state and closes the pass. It records no
// transition back to any container's default state: read-only storage
// resources bound during the pass keep the NonPixelShaderResource usage
// recorded in this command buffer's scope, which Finish merges into the
// device tracker.
func (p *ComputePassEncoder) End() error {
	cb := p.cb
	if cb.pass != passCompute {
		return ErrNoActivePass
	}
	// No restoring barrier is recorded here: the next
	// PrepareTextureSubresourceForWrite or PrepareBufferForWrite call
	// against these resources records the state its own caller passes.
	p.readTextures = nil
	p.readBuffers = nil
	cb.boundPipeline = nil
	cb.boundRootSig = nil
	cb.pass = passNone
	return nil
}
