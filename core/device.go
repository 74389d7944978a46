// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"sync"

	"github.com/gogpu/frameengine/core/track"
)

// Device is the frame-resource engine's device object: the owner of every
// pool, tracker, and lock named in §5. Exactly one Device exists per
// frameengine.Device; the public package is a thin façade over this type.
type Device struct {
	driver Driver

	descriptors *descriptorAllocator

	bufferIndices  *track.SharedTrackerIndexAllocator
	textureIndices *track.SharedTrackerIndexAllocator

	bufferTracker  *track.Tracker
	textureTracker *track.Tracker

	uniforms *uniformAllocator
	rootsigs *rootSignatureCache
	blit     *blitHelper
	queries  *queryPool

	commandPool commandPool
	fencePool   fencePool

	windows   map[uintptr]*Window
	windowMu  sync.Mutex // windowLock

	submitted []*CommandBuffer
	submitMu  sync.Mutex // submitLock

	disposeMu        sync.Mutex // disposeLock
	pendingBuffers    []*ConcreteBuffer
	pendingTextures   []*ConcreteTexture

	disposed bool
}

// NewDevice constructs the engine device over driver. The caller (the
// public frameengine package) is responsible for creating driver first via
// the native backend's device-open call.
func NewDevice(driver Driver) (*Device, error) {
	descriptors, err := newDescriptorAllocator(driver)
	if err != nil {
		return nil, err
	}

	d := &Device{
		driver:         driver,
		descriptors:    descriptors,
		bufferIndices:  track.NewSharedTrackerIndexAllocator(),
		textureIndices: track.NewSharedTrackerIndexAllocator(),
		bufferTracker:  track.NewTracker(),
		textureTracker: track.NewTracker(),
		windows:        make(map[uintptr]*Window),
	}
	d.uniforms = newUniformAllocator(d)
	d.rootsigs = newRootSignatureCache(d)
	d.queries = newQueryPool(d)
	d.commandPool = newCommandPool(d)
	d.fencePool = newFencePool(d)

	blit, err := newBlitHelper(d)
	if err != nil {
		return nil, err
	}
	d.blit = blit

	return d, nil
}

func (d *Device) bufferAllocIndex() track.TrackerIndex        { return d.bufferIndices.Alloc() }
func (d *Device) textureSubAllocIndex() track.TrackerIndex    { return d.textureIndices.Alloc() }

// CreateBuffer implements §4.2's CreateBuffer: it builds a container and
// its first concrete buffer.
func (d *Device) CreateBuffer(usage BufferUsage, size uint64, kind NativeHeapKind) (*BufferContainer, error) {
	c := &BufferContainer{device: d, usage: usage, size: size, kind: kind}
	cb, err := c.newConcreteBuffer()
	if err != nil {
		return nil, err
	}
	c.concrete = []*ConcreteBuffer{cb}
	c.active = cb
	return c, nil
}

// CreateTexture implements §4.2's CreateTexture.
func (d *Device) CreateTexture(usage TextureUsage, dim TextureDimensionality, desc TextureAllocDesc) (*TextureContainer, error) {
	c := &TextureContainer{device: d, desc: desc, usage: usage, dim: dim, canBeCycled: true}
	ct, err := c.newConcreteTexture()
	if err != nil {
		return nil, err
	}
	c.concrete = []*ConcreteTexture{ct}
	c.active = ct
	return c, nil
}

// deferDestroyBuffer queues cb for release at the next submit-time sweep
// (§5 "Shared resources", §4.8 step 8).
func (d *Device) deferDestroyBuffer(cb *ConcreteBuffer) {
	d.disposeMu.Lock()
	defer d.disposeMu.Unlock()
	d.pendingBuffers = append(d.pendingBuffers, cb)
}

func (d *Device) deferDestroyTexture(ct *ConcreteTexture) {
	d.disposeMu.Lock()
	defer d.disposeMu.Unlock()
	d.pendingTextures = append(d.pendingTextures, ct)
}

// sweepDisposed releases every pending resource whose reference count has
// reached zero, called under submitMu right after the fence sweep
// (§4.8 step 8: "Call the deferred-destruction sweep").
func (d *Device) sweepDisposed() {
	d.disposeMu.Lock()
	defer d.disposeMu.Unlock()

	kept := d.pendingBuffers[:0]
	for _, cb := range d.pendingBuffers {
		if cb.inUse() {
			kept = append(kept, cb)
			continue
		}
		d.bufferTracker.Remove(cb.trackerIndex)
		d.bufferIndices.Free(cb.trackerIndex)
		d.releaseBufferViews(cb)
		d.driver.DestroyBuffer(cb.native)
	}
	d.pendingBuffers = kept

	keptT := d.pendingTextures[:0]
	for _, ct := range d.pendingTextures {
		if ct.inUse() {
			keptT = append(keptT, ct)
			continue
		}
		for _, s := range ct.subresources {
			d.textureTracker.Remove(s.trackerIndex)
			d.textureIndices.Free(s.trackerIndex)
			d.releaseSubresourceViews(s)
		}
		d.driver.DestroyTexture(ct.native)
	}
	d.pendingTextures = keptT
}

func (d *Device) releaseBufferViews(cb *ConcreteBuffer) {
	if cb.srv != nil {
		_ = d.descriptors.Staging(HeapKindCBVSRVUAV).Release(cb.srv)
	}
	if cb.uav != nil {
		_ = d.descriptors.Staging(HeapKindCBVSRVUAV).Release(cb.uav)
	}
}

func (d *Device) releaseSubresourceViews(s *Subresource) {
	if s.rtv != nil {
		_ = d.descriptors.Staging(HeapKindRTV).Release(s.rtv)
	}
	if s.dsv != nil {
		_ = d.descriptors.Staging(HeapKindDSV).Release(s.dsv)
	}
	if s.srv != nil {
		_ = d.descriptors.Staging(HeapKindCBVSRVUAV).Release(s.srv)
	}
	if s.uav != nil {
		_ = d.descriptors.Staging(HeapKindCBVSRVUAV).Release(s.uav)
	}
}

// WaitIdle performs a full device-wait: signal a fresh fence, block on it,
// retire every submitted command buffer, and run the destruction sweep
// (§4.8 "Wait"). The package has no device-destroy call; nothing in it
// calls WaitIdle.
func (d *Device) WaitIdle() error {
	return d.Wait()
}

// Driver exposes the underlying native backend for the public package's
// GetDriver query.
func (d *Device) Driver() Driver { return d.driver }
