// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"encoding/binary"
	"sync"
)

// occlusionQueryCapacity is the fixed slot count of the device's one
// occlusion query heap (§9/§12 "supplemented feature": occlusion queries
// as an optional subsystem, since the reference core's design notes left
// them as an open question).
const occlusionQueryCapacity = 256

// queryPool is the device-wide occlusion query index allocator plus the
// native query heap.
type queryPool struct {
	device *Device
	mu     sync.Mutex
	heap   NativeHeap
	free   []uint32
	next   uint32
}

func newQueryPool(d *Device) *queryPool {
	heap, err := d.driver.CreateQueryHeap(occlusionQueryCapacity)
	if err != nil {
		// Occlusion queries are optional: a device whose driver cannot
		// allocate the heap still functions for every other operation.
		return &queryPool{device: d}
	}
	return &queryPool{device: d, heap: heap}
}

func (p *queryPool) alloc() (uint32, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		return idx, true
	}
	if p.next >= occlusionQueryCapacity {
		return 0, false
	}
	idx := p.next
	p.next++
	return idx, true
}

func (p *queryPool) release(idx uint32) {
	p.mu.Lock()
	p.free = append(p.free, idx)
	p.mu.Unlock()
}

// OcclusionQuery is a single allocated slot in the device's query heap.
type OcclusionQuery struct {
	index uint32
}

// BeginOcclusionQuery allocates a query slot and records a native
// query-begin against this command buffer's list, or ok=false if the pool
// is exhausted or the driver does not support queries.
func (cb *CommandBuffer) BeginOcclusionQuery() (OcclusionQuery, bool) {
	p := cb.device.queries
	if p.heap == nil {
		return OcclusionQuery{}, false
	}
	idx, ok := p.alloc()
	if !ok {
		return OcclusionQuery{}, false
	}
	cb.device.driver.BeginQuery(cb.native, p.heap, idx)
	return OcclusionQuery{index: idx}, true
}

// EndOcclusionQuery records the matching query-end. The slot is not
// returned to the pool here: ResolveOcclusionQueryResults releases it once
// the result has actually been queued for copy-out, so a query index can't
// be handed to a new BeginOcclusionQuery before its own result is read.
func (cb *CommandBuffer) EndOcclusionQuery(q OcclusionQuery) {
	cb.device.driver.EndQuery(cb.native, cb.device.queries.heap, q.index)
}

// queryResolve is a queued query-result readback, fixed up at retire the
// same way a textureDownload is.
type queryResolve struct {
	tempBuffer *ConcreteBuffer
	dest       []uint64
	indices    []uint32
}

// ResolveOcclusionQueryResults copies each query's 64-bit sample count into
// a readback buffer and queues it for CPU copy-out once this command
// buffer's submission retires, mirroring §4.7's upload/download staging
// pattern applied to queries instead of buffers or textures. dest must have
// at least len(queries) elements; it is written in-place once the owning
// fence signals.
func (cb *CommandBuffer) ResolveOcclusionQueryResults(queries []OcclusionQuery, dest []uint64) error {
	if len(queries) == 0 {
		return nil
	}
	if len(dest) < len(queries) {
		return ErrQueryResultBuffer
	}
	heap := cb.device.queries.heap
	if heap == nil {
		return nil
	}

	staging, err := cb.newTempReadbackBuffer(uint64(len(queries)) * 8)
	if err != nil {
		return err
	}

	indices := make([]uint32, len(queries))
	for i, q := range queries {
		indices[i] = q.index
		cb.device.driver.ResolveQueryData(cb.native, heap, q.index, 1, staging.native, uint64(i)*8)
	}

	cb.queryResolves = append(cb.queryResolves, queryResolve{
		tempBuffer: staging,
		dest:       dest[:len(queries)],
		indices:    indices,
	})
	return nil
}

// fixupQueryResolve maps qr's staging buffer and decodes each 8-byte
// little-endian result into its destination slot, then releases the query
// indices back to the pool now that they've actually been read.
func (d *Device) fixupQueryResolve(qr queryResolve) {
	defer func() {
		for _, idx := range qr.indices {
			d.queries.release(idx)
		}
	}()
	if qr.tempBuffer == nil || qr.tempBuffer.mapPointer == 0 {
		return
	}
	raw := make([]byte, len(qr.dest)*8)
	copyMemory(raw, qr.tempBuffer.mapPointer, len(raw))
	for i := range qr.dest {
		qr.dest[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
	}
}
