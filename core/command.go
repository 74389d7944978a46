// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"sync"

	"github.com/gogpu/frameengine/core/track"
)

// passKind identifies which of the three pass kinds a command buffer is
// currently inside, or none (§4.7 "Recording model").
type passKind int

const (
	passNone passKind = iota
	passRender
	passCompute
	passCopy
)

// textureDownload is a queued download fixed up in the retire path
// (§4.7 "Uploads and downloads").
type textureDownload struct {
	tempBuffer   *ConcreteBuffer
	dest         []byte
	rowPitch     uint32
	rowCount     uint32
	sliceCount   uint32
	srcRowPitch  uint32
}

// CommandBuffer is one recording unit (§3 "Command buffer", §4.7). It is
// single-thread-only: every recording call must happen on the thread that
// acquired it, and it cannot be reused after Submit.
type CommandBuffer struct {
	device *Device
	native NativeCommandList

	pass           passKind
	submitted      bool
	autoReleaseFence bool

	// bufferScope and textureScope are kept separate because buffer and
	// texture sub-resource tracker indices are allocated from independent
	// namespaces (track.SharedTrackerIndexAllocator per kind) and would
	// alias if merged into one Scope.
	bufferScope  *track.Scope
	textureScope *track.Scope

	viewHeap    *GPUHeap
	samplerHeap *GPUHeap

	usedBuffers  []*ConcreteBuffer
	usedSubs     []*Subresource
	usedUniforms []*uniformWrapper
	presentList  []presentEntry
	downloads    []textureDownload
	queryResolves []queryResolve
	// tempBuffers holds one-shot upload/readback staging buffers created by
	// the copy pass for alignment re-layout; destroyed outright at retire
	// rather than returned to any pool, since they are sized per call.
	tempBuffers []*ConcreteBuffer

	fence *Fence

	// per-stage binding state, flushed before draw/dispatch (§4.7).
	boundPipeline   NativeHandle
	boundRootSig    *rootSignature
	dirtyGroups     map[bindGroupKey]bool
	uniformsByGroup map[bindGroupKey]*uniformWrapper
	// boundDescriptors holds the CPU staging-heap handles written by the
	// per-stage Bind* calls, indexed by table slot, for the descriptor-table
	// groups flushBindings copies into the command buffer's GPU heap.
	boundDescriptors map[bindGroupKey][]CPUDescriptor
}

type bindGroupKey struct {
	stage shaderStage
	group bindGroupClass
}

type shaderStage int

const (
	stageVertex shaderStage = iota
	stageFragment
	stageCompute
)

type bindGroupClass int

const (
	groupSampler bindGroupClass = iota
	groupSampledTexture
	groupStorageTexture
	groupStorageBuffer
	groupUniform
	// The compute root signature keeps read-only and read-write storage
	// tables in separate root parameters (C6), so compute binding needs
	// its own group per direction rather than reusing groupStorageTexture/
	// groupStorageBuffer, which address the graphics stages' single
	// combined storage table.
	groupComputeStorageTextureRead
	groupComputeStorageBufferRead
	groupComputeStorageTextureWrite
	groupComputeStorageBufferWrite
)

type presentEntry struct {
	window *Window
	index  uint32
}

// commandPool is the device-wide "available command buffers" pool
// described in §4.7's acquisition step.
type commandPool struct {
	device *Device
	mu     sync.Mutex // acquireCommandBufferLock
	free   []*CommandBuffer
}

func newCommandPool(d *Device) commandPool {
	return commandPool{device: d}
}

// AcquireCommandBuffer draws a buffer from the pool or allocates a new
// one, acquires fresh GPU heaps, and resets all per-buffer state
// (§4.7 "Acquisition").
func (d *Device) AcquireCommandBuffer() (*CommandBuffer, error) {
	d.commandPool.mu.Lock()
	var cb *CommandBuffer
	if n := len(d.commandPool.free); n > 0 {
		cb = d.commandPool.free[n-1]
		d.commandPool.free = d.commandPool.free[:n-1]
	}
	d.commandPool.mu.Unlock()

	if cb == nil {
		native, err := d.driver.AcquireCommandList()
		if err != nil {
			return nil, err
		}
		cb = &CommandBuffer{device: d, native: native, bufferScope: track.NewScope(), textureScope: track.NewScope()}
	} else {
		d.driver.ResetCommandList(cb.native)
		cb.bufferScope.Clear()
		cb.textureScope.Clear()
	}

	viewHeap, err := d.descriptors.GPUPool(HeapKindCBVSRVUAV).Acquire()
	if err != nil {
		return nil, err
	}
	samplerHeap, err := d.descriptors.GPUPool(HeapKindSampler).Acquire()
	if err != nil {
		d.descriptors.GPUPool(HeapKindCBVSRVUAV).Return(viewHeap)
		return nil, err
	}

	cb.viewHeap = viewHeap
	cb.samplerHeap = samplerHeap
	cb.pass = passNone
	cb.submitted = false
	cb.autoReleaseFence = true
	cb.usedBuffers = nil
	cb.usedSubs = nil
	cb.usedUniforms = nil
	cb.presentList = nil
	cb.downloads = nil
	cb.queryResolves = nil
	cb.tempBuffers = nil
	cb.boundPipeline = nil
	cb.boundRootSig = nil
	cb.dirtyGroups = make(map[bindGroupKey]bool)
	cb.uniformsByGroup = make(map[bindGroupKey]*uniformWrapper)
	cb.boundDescriptors = make(map[bindGroupKey][]CPUDescriptor)
	cb.fence = nil

	return cb, nil
}

// PrepareBufferForWrite implements the buffer half of §4.3's
// PrepareTextureSubresourceForWrite: cycle if requested and in flight,
// then record the destination state in this command buffer's scope.
func (cb *CommandBuffer) PrepareBufferForWrite(c *BufferContainer, cycle bool, dest track.ResourceState) (*ConcreteBuffer, error) {
	active := c.Active()
	if cycle && active.inUse() {
		if err := c.CycleActiveBuffer(); err != nil {
			return nil, err
		}
		active = c.Active()
	}
	if err := cb.bufferScope.SetUsage(active.trackerIndex, dest); err != nil {
		return nil, err
	}
	active.Retain()
	cb.usedBuffers = append(cb.usedBuffers, active)
	return active, nil
}

// PrepareTextureSubresourceForWrite implements §4.3 verbatim.
func (cb *CommandBuffer) PrepareTextureSubresourceForWrite(c *TextureContainer, layer, level uint32, cycle bool, dest track.ResourceState) (*Subresource, error) {
	active := c.Active()
	sub := active.Subresource(layer, level)
	if cycle && sub.inUse() {
		if err := c.CycleActiveTexture(); err != nil {
			return nil, err
		}
		active = c.Active()
		sub = active.Subresource(layer, level)
	}
	if err := cb.textureScope.SetUsage(sub.trackerIndex, dest); err != nil {
		return nil, err
	}
	sub.Retain()
	cb.usedSubs = append(cb.usedSubs, sub)
	return sub, nil
}

// Finish merges this command buffer's recorded usage into the device-wide
// trackers, emits the resulting transition barriers at the head of the
// native list, and closes it (§4.3's Merge, §4.7's "End of recording").
// After Finish the encoder layer above core must not record into this
// buffer again; Submit is the only legal next call.
func (cb *CommandBuffer) Finish() error {
	if cb.submitted {
		return ErrAlreadySubmitted
	}
	if cb.pass != passNone {
		return ErrPassNesting
	}

	d := cb.device
	for _, t := range d.bufferTracker.Merge(cb.bufferScope) {
		if !t.Usage.NeedsBarrier() {
			continue
		}
		if native, ok := cb.bufferHandle(t.Index); ok {
			d.driver.ResourceBarrier(cb.native, native, 0, uint32(t.Usage.From), uint32(t.Usage.To))
		}
	}
	for _, t := range d.textureTracker.Merge(cb.textureScope) {
		if !t.Usage.NeedsBarrier() {
			continue
		}
		if native, sub, ok := cb.textureHandle(t.Index); ok {
			d.driver.ResourceBarrier(cb.native, native, sub.texture.Index(sub), uint32(t.Usage.From), uint32(t.Usage.To))
		}
	}

	return cb.device.driver.CloseCommandList(cb.native)
}

// bufferHandle resolves a tracker index to the native buffer this command
// buffer actually used with that index this recording, for barrier
// emission in Finish.
func (cb *CommandBuffer) bufferHandle(index track.TrackerIndex) (NativeHandle, bool) {
	for _, b := range cb.usedBuffers {
		if b.trackerIndex == index {
			return b.native, true
		}
	}
	return nil, false
}

// textureHandle is bufferHandle's sub-resource counterpart; it also
// returns the owning concrete texture's native handle, since ResourceBarrier
// addresses the resource plus a sub-resource index.
func (cb *CommandBuffer) textureHandle(index track.TrackerIndex) (NativeHandle, *Subresource, bool) {
	for _, s := range cb.usedSubs {
		if s.trackerIndex == index {
			return s.texture.native, s, true
		}
	}
	return nil, nil, false
}

// Native exposes the opaque native command list, for Driver-facing
// recording helpers in encoder/pass layers above core.
func (cb *CommandBuffer) Native() NativeCommandList { return cb.native }

// setDescriptorSlot stages a CPU descriptor at index within (stage, group)'s
// table and marks the group dirty, for the per-stage Bind* calls on the
// render/compute pass encoders.
func (cb *CommandBuffer) setDescriptorSlot(stage shaderStage, group bindGroupClass, index uint32, d CPUDescriptor) {
	key := bindGroupKey{stage: stage, group: group}
	slots := cb.boundDescriptors[key]
	for uint32(len(slots)) <= index {
		slots = append(slots, CPUDescriptor{})
	}
	slots[index] = d
	cb.boundDescriptors[key] = slots
	cb.dirtyGroups[key] = true
}

// flushDescriptorTable reserves a contiguous range in the command buffer's
// GPU-visible heap for a dirty descriptor-table group, copies the staged
// CPU descriptors into it, and sets the resolved root parameter
// (§4.6 "Flush bindings"). A group with no staged slots, or whose root
// signature never declared a table for it, is a no-op — the pipeline's
// shader simply doesn't read that group.
func (cb *CommandBuffer) flushDescriptorTable(key bindGroupKey, isCompute bool) {
	slots := cb.boundDescriptors[key]
	if len(slots) == 0 || cb.boundRootSig == nil {
		return
	}
	param, kind := cb.boundRootSig.paramFor(key.stage, key.group)
	if param < 0 {
		return
	}

	heap := cb.viewHeap
	if kind == HeapKindSampler {
		heap = cb.samplerHeap
	}
	start, ok := heap.Reserve(uint32(len(slots)))
	if !ok {
		return
	}

	stagingNative := cb.device.descriptors.Staging(kind).Native()
	for i, d := range slots {
		cb.device.driver.CopyDescriptor(heap.Native(), start+uint32(i), stagingNative, d.Slot, kind)
	}

	if isCompute {
		cb.device.driver.SetComputeRootDescriptorTable(cb.native, uint32(param), heap.Native(), start)
	} else {
		cb.device.driver.SetGraphicsRootDescriptorTable(cb.native, uint32(param), heap.Native(), start)
	}
}
