// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/frameengine/core/track"
)

// ConcreteBuffer is one physical GPU allocation backing a BufferContainer.
// A container can hold several; the cycling engine (C5) rotates which one
// is active so the caller never has to hazard-track writes by hand.
type ConcreteBuffer struct {
	native       NativeHandle
	gpuAddress   uint64
	mapPointer   uintptr // non-zero for upload/readback kinds, mapped for life
	trackerIndex track.TrackerIndex
	refCount     atomic.Int32

	// srv/uav are staged only for buffers created with a storage-read or
	// storage-write usage flag; root-CBV-bound uniform/vertex/index buffers
	// never need a descriptor-table slot, so these stay nil for them.
	srv *CPUDescriptor
	uav *CPUDescriptor
}

// Native returns the opaque driver handle for Driver calls.
func (b *ConcreteBuffer) Native() NativeHandle { return b.native }

// GPUAddress returns the buffer's GPU virtual address, used by the root
// CBV binder (§4.4) and indirect-argument calls.
func (b *ConcreteBuffer) GPUAddress() uint64 { return b.gpuAddress }

// MapPointer returns the persistently-mapped CPU pointer, or 0 for
// GPU-local buffers which are never mapped.
func (b *ConcreteBuffer) MapPointer() uintptr { return b.mapPointer }

// TrackerIndex returns this concrete buffer's slot in the device buffer
// state tracker.
func (b *ConcreteBuffer) TrackerIndex() track.TrackerIndex { return b.trackerIndex }

// Retain/Release track in-flight references recorded by command buffers;
// CycleActiveBuffer treats refCount == 0 as "safe to reuse".
func (b *ConcreteBuffer) Retain()  { b.refCount.Add(1) }
func (b *ConcreteBuffer) Release() { b.refCount.Add(-1) }
func (b *ConcreteBuffer) inUse() bool { return b.refCount.Load() > 0 }

// BufferContainer is the client-visible handle returned by CreateBuffer
// (§3 "Buffer container"). It owns one or more ConcreteBuffers and always
// exposes exactly one as Active.
type BufferContainer struct {
	mu       sync.Mutex
	device   *Device
	usage    BufferUsage
	size     uint64
	kind     NativeHeapKind
	name     string
	concrete []*ConcreteBuffer
	active   *ConcreteBuffer
}

// Usage returns the usage flags the container was created with.
func (c *BufferContainer) Usage() BufferUsage { return c.usage }

// Size returns the container's logical size in bytes.
func (c *BufferContainer) Size() uint64 { return c.size }

// Active returns the concrete buffer currently designated for reads/writes.
func (c *BufferContainer) Active() *ConcreteBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// newConcreteBuffer allocates a fresh physical buffer matching the
// container's usage/size/kind (§4.2 "CreateBuffer").
func (c *BufferContainer) newConcreteBuffer() (*ConcreteBuffer, error) {
	native, gpuAddr, err := c.device.driver.CreateBuffer(c.size, c.kind)
	if err != nil {
		return nil, err
	}
	cb := &ConcreteBuffer{native: native, gpuAddress: gpuAddr}
	if c.kind == HeapUpload || c.kind == HeapReadback {
		ptr, err := c.device.driver.MapBuffer(native)
		if err != nil {
			c.device.driver.DestroyBuffer(native)
			return nil, err
		}
		cb.mapPointer = ptr
	}
	cb.trackerIndex = c.device.bufferAllocIndex()
	c.device.bufferTracker.InsertSingle(cb.trackerIndex, DefaultBufferState(c.usage))

	if c.usage.Has(BufferUsageGraphicsStorageRead) || c.usage.Has(BufferUsageComputeStorageRead) {
		if d, ok := c.device.descriptors.Staging(HeapKindCBVSRVUAV).Allocate(); ok {
			c.device.driver.WriteBufferView(c.device.descriptors.Staging(HeapKindCBVSRVUAV).Native(), d.Slot, HeapKindCBVSRVUAV, native, 0, c.size)
			cb.srv = &d
		}
	}
	if c.usage.Has(BufferUsageGraphicsStorageWrite) || c.usage.Has(BufferUsageComputeStorageWrite) {
		if d, ok := c.device.descriptors.Staging(HeapKindCBVSRVUAV).Allocate(); ok {
			c.device.driver.WriteBufferView(c.device.descriptors.Staging(HeapKindCBVSRVUAV).Native(), d.Slot, HeapKindCBVSRVUAV, native, 0, c.size)
			cb.uav = &d
		}
	}
	return cb, nil
}

// CycleActiveBuffer implements C5 for buffers: it scans for an idle
// concrete buffer and makes it active, or allocates a new one. Called only
// by PrepareBufferForWrite when the caller requested cycling and the
// active buffer is currently in flight.
func (c *BufferContainer) CycleActiveBuffer() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cb := range c.concrete {
		if !cb.inUse() {
			c.active = cb
			return nil
		}
	}

	cb, err := c.newConcreteBuffer()
	if err != nil {
		return err
	}
	c.concrete = append(c.concrete, cb)
	c.active = cb
	return nil
}

// release pushes every concrete buffer onto the device's deferred
// destruction queue; the container's own bookkeeping is freed immediately
// since it is a cheap client-side handle (§4.2 "Release paths").
func (c *BufferContainer) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cb := range c.concrete {
		c.device.deferDestroyBuffer(cb)
	}
	c.concrete = nil
	c.active = nil
}

// Subresource is one (mip level, array slice) plane of a concrete texture,
// tracked independently by the state tracker (§3 "Sub-resource").
type Subresource struct {
	MipLevel     uint32
	ArraySlice   uint32
	trackerIndex track.TrackerIndex
	refCount     atomic.Int32

	// texture back-references the concrete texture this plane belongs to,
	// so barrier emission can resolve a tracker index back to a native
	// resource handle (see CommandBuffer.textureHandle).
	texture *ConcreteTexture

	rtv *CPUDescriptor
	dsv *CPUDescriptor
	srv *CPUDescriptor
	uav *CPUDescriptor
}

func (s *Subresource) TrackerIndex() track.TrackerIndex { return s.trackerIndex }
func (s *Subresource) Retain()                          { s.refCount.Add(1) }
func (s *Subresource) Release()                         { s.refCount.Add(-1) }
func (s *Subresource) inUse() bool                       { return s.refCount.Load() > 0 }

// ConcreteTexture is one physical GPU allocation backing a TextureContainer,
// decomposed into its addressable sub-resources.
type ConcreteTexture struct {
	native       NativeHandle
	mipLevels    uint32
	subresources []*Subresource
	// swapchainBackBuffer is true for the transient resource the swapchain
	// manager stamps into a container's active slot each frame; it is
	// released by the Driver's swapchain, not by deferred destruction.
	swapchainBackBuffer bool
}

func (t *ConcreteTexture) Native() NativeHandle { return t.native }

// Index computes the flattened D3D12-style sub-resource index for s.
func (t *ConcreteTexture) Index(s *Subresource) uint32 {
	return s.MipLevel + s.ArraySlice*t.mipLevels
}

// Subresource returns the (layer, level) plane, or nil if out of range.
func (t *ConcreteTexture) Subresource(layer, level uint32) *Subresource {
	for _, s := range t.subresources {
		if s.ArraySlice == layer && s.MipLevel == level {
			return s
		}
	}
	return nil
}

func (t *ConcreteTexture) inUse() bool {
	for _, s := range t.subresources {
		if s.inUse() {
			return true
		}
	}
	return false
}

// TextureContainer is the client-visible handle returned by CreateTexture
// (§3 "Texture container").
type TextureContainer struct {
	mu          sync.Mutex
	device      *Device
	desc        TextureAllocDesc
	usage       TextureUsage
	dim         TextureDimensionality
	name        string
	concrete    []*ConcreteTexture
	active      *ConcreteTexture
	canBeCycled bool // false for swapchain back-buffer containers (§4.5)
}

func (c *TextureContainer) Usage() TextureUsage            { return c.usage }
func (c *TextureContainer) Format() gputypes.TextureFormat  { return c.desc.Format }
func (c *TextureContainer) Dimensionality() TextureDimensionality { return c.dim }

// Active returns the concrete texture currently designated for reads/writes.
func (c *TextureContainer) Active() *ConcreteTexture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *TextureContainer) mipCount() uint32 {
	if c.desc.MipLevels == 0 {
		return 1
	}
	return c.desc.MipLevels
}

func (c *TextureContainer) arrayCount() uint32 {
	if c.dim == TextureDim3D {
		return 1
	}
	if c.desc.DepthOrArray == 0 {
		return 1
	}
	return c.desc.DepthOrArray
}

// newConcreteTexture commits a fresh physical texture and builds its
// sub-resource list, creating only the view kinds the container's usage
// flags call for (§4.2 "CreateTexture").
func (c *TextureContainer) newConcreteTexture() (*ConcreteTexture, error) {
	native, err := c.device.driver.CreateTexture(c.desc)
	if err != nil {
		return nil, err
	}
	ct := &ConcreteTexture{native: native, mipLevels: c.mipCount()}

	defaultState := DefaultTextureState(c.usage)
	for level := uint32(0); level < c.mipCount(); level++ {
		for slice := uint32(0); slice < c.arrayCount(); slice++ {
			sub := &Subresource{MipLevel: level, ArraySlice: slice, texture: ct}
			sub.trackerIndex = c.device.textureSubAllocIndex()
			c.device.textureTracker.InsertSingle(sub.trackerIndex, defaultState)

			allocDesc := SubresourceAllocDesc{MipLevel: level, ArraySlice: slice}
			if c.usage.Has(TextureUsageColorTarget) {
				if d, ok := c.device.descriptors.Staging(HeapKindRTV).Allocate(); ok {
					c.device.driver.WriteTextureView(c.device.descriptors.Staging(HeapKindRTV).Native(), d.Slot, HeapKindRTV, native, allocDesc)
					sub.rtv = &d
				}
			}
			if c.usage.Has(TextureUsageDepthStencilTarget) {
				if d, ok := c.device.descriptors.Staging(HeapKindDSV).Allocate(); ok {
					c.device.driver.WriteTextureView(c.device.descriptors.Staging(HeapKindDSV).Native(), d.Slot, HeapKindDSV, native, allocDesc)
					sub.dsv = &d
				}
			}
			if c.usage.Has(TextureUsageSampler) || c.usage.Has(TextureUsageGraphicsStorageRead) || c.usage.Has(TextureUsageComputeStorageRead) {
				if d, ok := c.device.descriptors.Staging(HeapKindCBVSRVUAV).Allocate(); ok {
					c.device.driver.WriteTextureView(c.device.descriptors.Staging(HeapKindCBVSRVUAV).Native(), d.Slot, HeapKindCBVSRVUAV, native, allocDesc)
					sub.srv = &d
				}
			}
			if c.usage.Has(TextureUsageGraphicsStorageWrite) || c.usage.Has(TextureUsageComputeStorageWrite) {
				if d, ok := c.device.descriptors.Staging(HeapKindCBVSRVUAV).Allocate(); ok {
					c.device.driver.WriteTextureView(c.device.descriptors.Staging(HeapKindCBVSRVUAV).Native(), d.Slot, HeapKindCBVSRVUAV, native, allocDesc)
					sub.uav = &d
				}
			}

			ct.subresources = append(ct.subresources, sub)
		}
	}
	return ct, nil
}

// CycleActiveTexture implements C5 for textures: "reference count zero"
// means the sum over all sub-resources of a concrete texture is zero.
func (c *TextureContainer) CycleActiveTexture() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.canBeCycled {
		return nil
	}

	for _, ct := range c.concrete {
		if !ct.inUse() {
			c.active = ct
			return nil
		}
	}

	ct, err := c.newConcreteTexture()
	if err != nil {
		return err
	}
	c.concrete = append(c.concrete, ct)
	c.active = ct
	return nil
}

// Sampler is the client-visible handle returned by CreateSampler (§4.2). It
// is immutable and has no cycling concept, so it needs neither a container
// nor a tracker index — only a native handle and a staged CPU descriptor
// for the table-binding calls on the render pass encoder.
type Sampler struct {
	device *Device
	native NativeHandle
	cpu    *CPUDescriptor
}

func (s *Sampler) Native() NativeHandle { return s.native }

// CreateSampler implements §4.2's CreateSampler: create the native sampler
// object and stage its view into the CPU sampler heap.
func (d *Device) CreateSampler(desc SamplerDesc) (*Sampler, error) {
	native, err := d.driver.CreateSampler(desc)
	if err != nil {
		return nil, err
	}
	s := &Sampler{device: d, native: native}
	if cpu, ok := d.descriptors.Staging(HeapKindSampler).Allocate(); ok {
		d.driver.WriteSamplerView(d.descriptors.Staging(HeapKindSampler).Native(), cpu.Slot, native)
		s.cpu = &cpu
	}
	return s, nil
}

// DestroySampler releases the sampler's staged descriptor and native object
// immediately; samplers are never referenced by an in-flight tracker, so
// unlike buffers/textures there is nothing to defer.
func (d *Device) DestroySampler(s *Sampler) {
	if s.cpu != nil {
		_ = d.descriptors.Staging(HeapKindSampler).Release(s.cpu)
	}
	d.driver.DestroySampler(s.native)
}

func (c *TextureContainer) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ct := range c.concrete {
		if ct.swapchainBackBuffer {
			continue
		}
		c.device.deferDestroyTexture(ct)
	}
	c.concrete = nil
	c.active = nil
}
