// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "sync"

// uniformAlignment is the root-CBV alignment the backend requires (§4.4).
const uniformAlignment = 256

// poolElementSize is the fixed size of every persistently-mapped upload
// buffer backing a uniform wrapper.
const poolElementSize = 64 * 1024

// uniformWrapper is one pooled, persistently-mapped upload buffer handed
// out by the uniform-buffer sub-allocator (§3 "Uniform buffer", §4.4).
type uniformWrapper struct {
	buffer      *ConcreteBuffer
	writeOffset uint64
	drawOffset  uint64
}

// uniformAllocator is the device-wide free pool of uniform-buffer
// wrappers (§4.4).
type uniformAllocator struct {
	device *Device
	mu     sync.Mutex // acquireUniformBufferLock
	free   []*uniformWrapper
}

func newUniformAllocator(d *Device) *uniformAllocator {
	return &uniformAllocator{device: d}
}

// acquire returns a wrapper with writeOffset = drawOffset = 0. A pooled
// wrapper's backing buffer is not re-mapped: it stays mapped from creation.
func (a *uniformAllocator) acquire() (*uniformWrapper, error) {
	a.mu.Lock()
	if n := len(a.free); n > 0 {
		w := a.free[n-1]
		a.free = a.free[:n-1]
		a.mu.Unlock()
		w.writeOffset = 0
		w.drawOffset = 0
		return w, nil
	}
	a.mu.Unlock()

	native, gpuAddr, err := a.device.driver.CreateBuffer(poolElementSize, HeapUpload)
	if err != nil {
		return nil, err
	}
	ptr, err := a.device.driver.MapBuffer(native)
	if err != nil {
		a.device.driver.DestroyBuffer(native)
		return nil, err
	}
	buf := &ConcreteBuffer{native: native, gpuAddress: gpuAddr, mapPointer: ptr}
	return &uniformWrapper{buffer: buf}, nil
}

// releaseToPool returns w to the pool; called from the retire path once
// the owning command buffer's fence has signalled.
func (a *uniformAllocator) releaseToPool(w *uniformWrapper) {
	a.mu.Lock()
	a.free = append(a.free, w)
	a.mu.Unlock()
}

// unmap is a no-op placeholder for the "unmap every uniform buffer used by
// cb" submit step (§4.8 step 1): wrappers here stay persistently mapped
// for their pool lifetime, so there is nothing to actually unmap — the
// step exists to mirror the native backend's map/unmap bookkeeping call
// for drivers that require it.
func (a *uniformAllocator) unmap(w *uniformWrapper) {}

func alignUp(v, align uint64) uint64 {
	return (v + align - 1) &^ (align - 1)
}

// PushUniformData implements §4.4's PushUniformData verbatim: acquire a
// wrapper for (stage, slot) if none exists, round the write up to the
// 256-byte root-CBV alignment, roll over to a fresh wrapper if the pool
// element would overflow, copy the data, and mark the slot dirty.
func (cb *CommandBuffer) PushUniformData(stage shaderStage, slot uint32, data []byte) error {
	key := bindGroupKey{stage: stage, group: groupUniform}
	w, ok := cb.uniformsByGroup[key]
	if !ok {
		var err error
		w, err = cb.device.uniforms.acquire()
		if err != nil {
			return err
		}
		cb.uniformsByGroup[key] = w
		cb.usedUniforms = append(cb.usedUniforms, w)
	}

	block := alignUp(uint64(len(data)), uniformAlignment)
	if w.writeOffset+block > poolElementSize {
		cb.device.uniforms.unmap(w)
		// w stays referenced by usedUniforms (already in flight) but is no
		// longer the active wrapper for this slot.
		var err error
		w, err = cb.device.uniforms.acquire()
		if err != nil {
			return err
		}
		cb.uniformsByGroup[key] = w
		cb.usedUniforms = append(cb.usedUniforms, w)
	}

	w.drawOffset = w.writeOffset
	writeMemory(w.buffer.mapPointer+uintptr(w.writeOffset), data)
	w.writeOffset += block

	if cb.dirtyGroups == nil {
		cb.dirtyGroups = make(map[bindGroupKey]bool)
	}
	cb.dirtyGroups[key] = true
	return nil
}

// rootCBVAddress returns the GPU virtual address the binder stamps into
// SetGraphicsRootConstantBufferView for (stage, slot) at the next
// draw/dispatch (§4.6).
func (cb *CommandBuffer) rootCBVAddress(stage shaderStage, slot uint32) (uint64, bool) {
	w, ok := cb.uniformsByGroup[bindGroupKey{stage: stage, group: groupUniform}]
	if !ok {
		return 0, false
	}
	return w.buffer.gpuAddress + w.drawOffset, true
}
