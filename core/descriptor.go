// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"sync"

	"github.com/gogpu/frameengine/core/track"
)

// stagingCapacity is the fixed slot count of every CPU staging heap, one
// per DescriptorHeapKind. Exhausting it is caller-visible (Allocate
// reports ok=false, and binding a resource left without a view returns
// ErrStagingExhausted), not a silent grow.
const stagingCapacity = 4096

// gpuPoolCapacity is the descriptor count baked into every GPU
// shader-visible heap acquired from a per-kind pool.
const gpuPoolCapacity = 1024

// CPUDescriptor is a single allocated slot in a staging heap. The zero
// value is not valid; only values returned by StagingHeap.Allocate may be
// used, and each must be released at most once (§3 "CPU descriptor").
type CPUDescriptor struct {
	Kind     DescriptorHeapKind
	Slot     uint32
	released bool
}

// StagingHeap is a CPU-only descriptor heap (C1). Allocation prefers the
// LIFO free list for locality, falls back to the bump cursor, and fails
// loudly — returning ok=false — when both are exhausted.
type StagingHeap struct {
	kind     DescriptorHeapKind
	native   NativeHeap
	alloc    *track.CappedIndexAllocator
	mu       sync.Mutex // stagingDescriptorHeapLock, one per kind
}

func newStagingHeap(driver Driver, kind DescriptorHeapKind) (*StagingHeap, error) {
	native, err := driver.CreateDescriptorHeap(kind, stagingCapacity, false)
	if err != nil {
		return nil, err
	}
	return &StagingHeap{
		kind:   kind,
		native: native,
		alloc:  track.NewCappedIndexAllocator(track.TrackerIndex(stagingCapacity)),
	}, nil
}

// Allocate returns a fresh CPU descriptor slot, or ok=false if the heap is
// exhausted (the caller must check; the descriptor is otherwise unusable).
func (h *StagingHeap) Allocate() (CPUDescriptor, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx, ok := h.alloc.Alloc()
	if !ok {
		return CPUDescriptor{}, false
	}
	return CPUDescriptor{Kind: h.kind, Slot: uint32(idx)}, true
}

// Release returns a previously allocated descriptor to the free list.
// Releasing an already-released descriptor is a programming error
// (ErrDoubleRelease) rather than a silent no-op, since a second release
// would let two live resources alias the same slot.
func (h *StagingHeap) Release(d *CPUDescriptor) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if d.released {
		return ErrDoubleRelease // package-local sentinel, see error.go
	}
	d.released = true
	h.alloc.Free(track.TrackerIndex(d.Slot))
	return nil
}

// Native returns the backing native heap handle, for use by Driver calls
// that write or copy descriptors.
func (h *StagingHeap) Native() NativeHeap { return h.native }

// GPUHeap is a shader-visible descriptor heap acquired from a per-kind
// pool for the lifetime of one command buffer. It has no free list: its
// cursor only ever advances, and it is reset to zero when the pool hands
// the heap out again (gpuHeapPool.Acquire, §4.1, §4.8).
type GPUHeap struct {
	kind    DescriptorHeapKind
	native  NativeHeap
	cursor  uint32
	capacity uint32
}

// Reserve bumps the cursor by count slots and returns the first reserved
// slot index, or ok=false if the heap cannot satisfy the request (a
// command buffer that binds more descriptors than gpuPoolCapacity allows
// is a programming error surfaced by the caller).
func (h *GPUHeap) Reserve(count uint32) (uint32, bool) {
	if h.cursor+count > h.capacity {
		return 0, false
	}
	start := h.cursor
	h.cursor += count
	return start, true
}

// Native returns the backing native heap handle.
func (h *GPUHeap) Native() NativeHeap { return h.native }

// gpuHeapPool is the per-device, per-kind pool of GPU-visible heaps
// acquired by command buffers and returned on retire.
type gpuHeapPool struct {
	kind   DescriptorHeapKind
	mu     sync.Mutex
	driver Driver
	free   []*GPUHeap
}

func newGPUHeapPool(driver Driver, kind DescriptorHeapKind) *gpuHeapPool {
	return &gpuHeapPool{kind: kind, driver: driver}
}

// Acquire returns the last heap in the pool (creating one if the pool is
// empty) with its cursor reset to zero.
func (p *gpuHeapPool) Acquire() (*GPUHeap, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		h.cursor = 0
		return h, nil
	}

	native, err := p.driver.CreateDescriptorHeap(p.kind, gpuPoolCapacity, true)
	if err != nil {
		return nil, err
	}
	return &GPUHeap{kind: p.kind, native: native, capacity: gpuPoolCapacity}, nil
}

// Return appends h back to the pool. Safe because any command buffer that
// wrote into it has already retired by the time Return is called.
func (p *gpuHeapPool) Return(h *GPUHeap) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, h)
}

// descriptorAllocator owns every staging heap and GPU heap pool for a
// device: one of each per DescriptorHeapKind.
type descriptorAllocator struct {
	staging [4]*StagingHeap
	gpuPool [4]*gpuHeapPool
}

func newDescriptorAllocator(driver Driver) (*descriptorAllocator, error) {
	a := &descriptorAllocator{}
	kinds := []DescriptorHeapKind{HeapKindCBVSRVUAV, HeapKindSampler, HeapKindRTV, HeapKindDSV}
	for _, k := range kinds {
		sh, err := newStagingHeap(driver, k)
		if err != nil {
			return nil, err
		}
		a.staging[k] = sh
		a.gpuPool[k] = newGPUHeapPool(driver, k)
	}
	return a, nil
}

func (a *descriptorAllocator) Staging(kind DescriptorHeapKind) *StagingHeap { return a.staging[kind] }
func (a *descriptorAllocator) GPUPool(kind DescriptorHeapKind) *gpuHeapPool { return a.gpuPool[kind] }
