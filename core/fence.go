// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultWaitTimeout bounds every fence-event wait; the native backend
// returns (false, nil) rather than blocking forever on a lost signal.
const defaultWaitTimeout = 30 * time.Second

// Fence is the only cross-thread synchronization primitive the engine
// exposes (§3 "Fence", §5). It carries a signal value, incremented by each
// submit or device-wait that signals it and reset to zero when the fence
// returns to the pool, and an atomic reference count so present-list
// bookkeeping and explicit SubmitAndAcquireFence callers can share one
// fence safely.
type Fence struct {
	native   NativeFence
	value    atomic.Uint64
	refCount atomic.Int32
}

func (f *Fence) Retain()  { f.refCount.Add(1) }
func (f *Fence) Release() { f.refCount.Add(-1) }

// fencePool is the device's available-fence pool (§4.8 "AcquireFence").
type fencePool struct {
	device *Device
	mu     sync.Mutex // fenceLock
	free   []*Fence
}

func newFencePool(d *Device) fencePool { return fencePool{device: d} }

// AcquireFence pops the pool or creates a fresh unsignalled fence.
func (d *Device) AcquireFence() (*Fence, error) {
	d.fencePool.mu.Lock()
	if n := len(d.fencePool.free); n > 0 {
		f := d.fencePool.free[n-1]
		d.fencePool.free = d.fencePool.free[:n-1]
		d.fencePool.mu.Unlock()
		return f, nil
	}
	d.fencePool.mu.Unlock()

	native, err := d.driver.CreateFenceObject()
	if err != nil {
		return nil, err
	}
	return &Fence{native: native}, nil
}

func (d *Device) releaseFenceToPool(f *Fence) {
	f.value.Store(0)
	d.fencePool.mu.Lock()
	d.fencePool.free = append(d.fencePool.free, f)
	d.fencePool.mu.Unlock()
}

// QueryFence reports whether the fence's recorded signal value has been
// reached by the GPU timeline yet.
func (d *Device) QueryFence(f *Fence) bool {
	return d.driver.GetFenceCompletedValue(f.native) >= f.value.Load()
}

// Submit implements §4.8's Submit(cb) under the device submit-lock.
func (d *Device) Submit(cb *CommandBuffer) error {
	d.submitMu.Lock()
	defer d.submitMu.Unlock()

	for _, w := range cb.usedUniforms {
		d.uniforms.unmap(w)
	}

	for _, entry := range cb.presentList {
		sub := entry.window.activeBackBufferSubresource()
		if sub != nil {
			_ = cb.textureScope.SetUsage(sub.trackerIndex, presentState)
			// Finish's barrier resolution walks usedSubs to map a tracker
			// index back to a native handle; the swapchain's present
			// transition is recorded here rather than through
			// PrepareTextureSubresourceForWrite, so it must be added
			// explicitly.
			cb.usedSubs = append(cb.usedSubs, sub)
		}
	}

	if err := cb.Finish(); err != nil {
		return err
	}

	fence, err := d.AcquireFence()
	if err != nil {
		return err
	}
	fence.Retain()
	nextValue := fence.value.Add(1)

	if err := d.driver.ExecuteCommandLists([]NativeCommandList{cb.native}, fence.native, nextValue); err != nil {
		fence.Release()
		return err
	}
	cb.fence = fence
	cb.submitted = true
	d.submitted = append(d.submitted, cb)

	for _, entry := range cb.presentList {
		syncInterval := entry.window.syncInterval()
		tearing := entry.window.presentMode == PresentModeImmediate && d.driver.SupportsTearing()
		if err := d.driver.Present(entry.window.swapchain, syncInterval, tearing); err != nil {
			return err
		}
		fence.Retain()
		entry.window.inFlightFences[entry.window.frameCounter] = fence
		entry.window.frameCounter = (entry.window.frameCounter + 1) % MaxFramesInFlight
	}

	d.sweepRetire()
	d.sweepDisposed()
	return nil
}

// SubmitAndAcquireFence implements §4.8: the caller owns the returned
// fence's extra reference and must call ReleaseFence.
func (d *Device) SubmitAndAcquireFence(cb *CommandBuffer) (*Fence, error) {
	cb.autoReleaseFence = false
	if err := d.Submit(cb); err != nil {
		return nil, err
	}
	return cb.fence, nil
}

// ReleaseFence drops the caller's reference and returns the fence to the
// pool once nothing else references it.
func (d *Device) ReleaseFence(f *Fence) {
	f.Release()
	if f.refCount.Load() <= 0 {
		d.releaseFenceToPool(f)
	}
}

// retire implements §4.8's Retire(cb).
func (d *Device) retire(cb *CommandBuffer) {
	for _, dl := range cb.downloads {
		d.fixupDownload(dl)
	}
	for _, qr := range cb.queryResolves {
		d.fixupQueryResolve(qr)
	}
	for _, b := range cb.tempBuffers {
		if b.mapPointer != 0 {
			d.driver.UnmapBuffer(b.native)
		}
		d.driver.DestroyBuffer(b.native)
	}
	cb.tempBuffers = nil
	d.driver.ResetCommandList(cb.native)

	d.descriptors.GPUPool(HeapKindCBVSRVUAV).Return(cb.viewHeap)
	d.descriptors.GPUPool(HeapKindSampler).Return(cb.samplerHeap)

	for _, w := range cb.usedUniforms {
		d.uniforms.releaseToPool(w)
	}
	for _, b := range cb.usedBuffers {
		b.Release()
	}
	for _, s := range cb.usedSubs {
		s.Release()
	}
	cb.presentList = nil

	if cb.autoReleaseFence && cb.fence != nil {
		d.ReleaseFence(cb.fence)
	}
	cb.fence = nil

	d.commandPool.mu.Lock()
	d.commandPool.free = append(d.commandPool.free, cb)
	d.commandPool.mu.Unlock()
}

// sweepRetire retires every submitted command buffer whose fence has
// signalled (§4.8 step 7). Must be called with submitMu held.
func (d *Device) sweepRetire() {
	kept := d.submitted[:0]
	for _, cb := range d.submitted {
		if cb.fence != nil && d.QueryFence(cb.fence) {
			d.retire(cb)
			continue
		}
		kept = append(kept, cb)
	}
	d.submitted = kept
}

// fixupDownload maps the temporary buffer and copies into the caller's
// destination slice row by row (§4.7's "Uploads and downloads").
func (d *Device) fixupDownload(dl textureDownload) {
	if dl.tempBuffer == nil || dl.tempBuffer.mapPointer == 0 {
		return
	}
	rowBytes := dl.rowPitch
	if dl.srcRowPitch < rowBytes {
		rowBytes = dl.srcRowPitch
	}
	srcBase := dl.tempBuffer.mapPointer
	for slice := uint32(0); slice < dl.sliceCount; slice++ {
		for row := uint32(0); row < dl.rowCount; row++ {
			srcOff := uint64(slice)*uint64(dl.rowCount)*uint64(dl.srcRowPitch) + uint64(row)*uint64(dl.srcRowPitch)
			dstOff := uint64(slice)*uint64(dl.rowCount)*uint64(rowBytes) + uint64(row)*uint64(rowBytes)
			if int(dstOff)+int(rowBytes) > len(dl.dest) {
				continue
			}
			copyMemory(dl.dest[dstOff:dstOff+uint64(rowBytes)], srcBase+uintptr(srcOff), int(rowBytes))
		}
	}
}

// Wait implements §4.8's device-wide Wait: signal a fresh fence to the
// queue's tail, block on its event, retire everything, sweep.
func (d *Device) Wait() error {
	f, err := d.AcquireFence()
	if err != nil {
		return err
	}
	val := f.value.Add(1)
	if err := d.driver.SignalFence(f.native, val); err != nil {
		return err
	}
	if _, err := d.driver.WaitFenceEvent(f.native, val, uint32(defaultWaitTimeout.Milliseconds())); err != nil {
		return err
	}

	d.submitMu.Lock()
	d.sweepRetire()
	d.sweepDisposed()
	d.submitMu.Unlock()

	d.releaseFenceToPool(f)
	return nil
}

// WaitForFences blocks on the supplied fences' events — concurrently, via
// errgroup, since each is an independent OS wait — then sweeps.
// waitAll selects between requiring every fence to signal versus any one.
func (d *Device) WaitForFences(waitAll bool, fences []*Fence) error {
	if len(fences) == 0 {
		return nil
	}

	if waitAll {
		var g errgroup.Group
		for _, f := range fences {
			f := f
			g.Go(func() error {
				_, err := d.driver.WaitFenceEvent(f.native, f.value.Load(), uint32(defaultWaitTimeout.Milliseconds()))
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		done := make(chan error, len(fences))
		for _, f := range fences {
			f := f
			go func() {
				_, err := d.driver.WaitFenceEvent(f.native, f.value.Load(), uint32(defaultWaitTimeout.Milliseconds()))
				done <- err
			}()
		}
		if err := <-done; err != nil {
			return err
		}
	}

	d.submitMu.Lock()
	d.sweepRetire()
	d.sweepDisposed()
	d.submitMu.Unlock()
	return nil
}
