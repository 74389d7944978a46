// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"github.com/gogpu/gputypes"
)

// PresentMode controls the sync interval and acquisition policy (§6).
type PresentMode int

const (
	PresentModeImmediate PresentMode = iota
	PresentModeVsync
	PresentModeMailbox
)

// SwapchainComposition selects the backbuffer format/colorspace pairing
// (§6).
type SwapchainComposition int

const (
	CompositionSDR SwapchainComposition = iota
	CompositionSDRSRGB
	CompositionHDR
	CompositionHDRAdvanced
)

// MaxFramesInFlight is the fixed swapchain back-buffer/in-flight depth.
const MaxFramesInFlight = 3

func compositionFormat(c SwapchainComposition) gputypes.TextureFormat {
	switch c {
	case CompositionSDR:
		return gputypes.TextureFormatBGRA8Unorm
	case CompositionSDRSRGB:
		return gputypes.TextureFormatBGRA8UnormSrgb
	case CompositionHDR:
		return gputypes.TextureFormatRGBA8Unorm // placeholder: true HDR10/scRGB formats are out of gputypes' vocabulary
	case CompositionHDRAdvanced:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatBGRA8Unorm
	}
}

// Window is the per-window swapchain state stamped onto the window's
// property bag by ClaimWindow (§3 "Window/swapchain data", §4.9).
type Window struct {
	device      *Device
	handle      uintptr
	swapchain   NativeSwapchain
	composition SwapchainComposition
	presentMode PresentMode
	width, height uint32

	backBuffers    *TextureContainer
	inFlightFences [MaxFramesInFlight]*Fence
	frameCounter   uint32
}

func (w *Window) syncInterval() uint32 {
	if w.presentMode == PresentModeVsync {
		return 1
	}
	return 0
}

func (w *Window) activeBackBufferSubresource() *Subresource {
	active := w.backBuffers.Active()
	if active == nil || len(active.subresources) == 0 {
		return nil
	}
	return active.subresources[0]
}

// ClaimWindow implements §4.9's ClaimWindow: create the native swapchain
// with MaxFramesInFlight back buffers at the requested composition,
// disable native alt-enter handling (delegated to the Driver's swapchain
// creation call), and build one texture container with canBeCycled =
// false and a single sub-resource with one SRV and one RTV. The back
// buffers do not get a container each: AcquireSwapchainTexture re-stamps
// the current back buffer into that one sub-resource.
func (d *Device) ClaimWindow(handle uintptr, width, height uint32, composition SwapchainComposition, presentMode PresentMode) (*Window, error) {
	d.windowMu.Lock()
	defer d.windowMu.Unlock()

	tearing := presentMode == PresentModeImmediate && d.driver.SupportsTearing()
	format := compositionFormat(composition)
	sc, err := d.driver.CreateSwapchain(handle, width, height, format, MaxFramesInFlight, tearing)
	if err != nil {
		return nil, err
	}

	w := &Window{
		device: d, handle: handle, swapchain: sc,
		composition: composition, presentMode: presentMode,
		width: width, height: height,
	}

	container := &TextureContainer{
		device: d,
		usage:  TextureUsageColorTarget | TextureUsageSampler,
		dim:    TextureDim2D,
		desc:   TextureAllocDesc{Format: format, Width: width, Height: height, DepthOrArray: 1, MipLevels: 1, SampleCount: 1},
	}
	ct := &ConcreteTexture{swapchainBackBuffer: true, mipLevels: 1}
	sub := &Subresource{texture: ct}
	sub.trackerIndex = d.textureSubAllocIndex()
	d.textureTracker.InsertSingle(sub.trackerIndex, presentState)
	if rtv, ok := d.descriptors.Staging(HeapKindRTV).Allocate(); ok {
		sub.rtv = &rtv
	}
	if srv, ok := d.descriptors.Staging(HeapKindCBVSRVUAV).Allocate(); ok {
		sub.srv = &srv
	}
	ct.subresources = []*Subresource{sub}
	container.concrete = []*ConcreteTexture{ct}
	container.active = ct
	w.backBuffers = container

	d.windows[handle] = w
	return w, nil
}

// UnclaimWindow waits the device, releases the swapchain and its views.
func (d *Device) UnclaimWindow(w *Window) error {
	if err := d.Wait(); err != nil {
		return err
	}
	d.windowMu.Lock()
	defer d.windowMu.Unlock()
	delete(d.windows, w.handle)
	d.driver.DestroySwapchain(w.swapchain)
	return nil
}

// rebuildBackBuffers re-stamps the native back-buffer handle and RTV/SRV
// descriptors into the container on every acquisition (after a resize
// included), without reallocating the container's tracker index.
func (w *Window) rebuildBackBuffers(index uint32) {
	sub := w.activeBackBufferSubresource()
	native := w.device.driver.BackBufferTexture(w.swapchain, index)
	w.backBuffers.active.native = native
	if sub.rtv != nil {
		w.device.driver.WriteTextureView(w.device.descriptors.Staging(HeapKindRTV).Native(), sub.rtv.Slot, HeapKindRTV, native, SubresourceAllocDesc{})
	}
	if sub.srv != nil {
		w.device.driver.WriteTextureView(w.device.descriptors.Staging(HeapKindCBVSRVUAV).Native(), sub.srv.Slot, HeapKindCBVSRVUAV, native, SubresourceAllocDesc{})
	}
}

// AcquireSwapchainTexture implements §4.9's acquisition algorithm.
func (cb *CommandBuffer) AcquireSwapchainTexture(w *Window, width, height uint32) (*TextureContainer, uint32, uint32, error) {
	d := cb.device

	if width != w.width || height != w.height {
		if err := d.Wait(); err != nil {
			return nil, 0, 0, err
		}
		if err := d.driver.ResizeSwapchain(w.swapchain, width, height); err != nil {
			return nil, 0, 0, err
		}
		w.width, w.height = width, height
	}

	slot := w.frameCounter
	if f := w.inFlightFences[slot]; f != nil {
		if w.presentMode == PresentModeVsync {
			if _, err := d.driver.WaitFenceEvent(f.native, f.value.Load(), uint32(defaultWaitTimeout.Milliseconds())); err != nil {
				return nil, 0, 0, err
			}
			d.ReleaseFence(f)
			w.inFlightFences[slot] = nil
		} else {
			if !d.QueryFence(f) {
				return nil, 0, 0, nil
			}
			d.ReleaseFence(f)
			w.inFlightFences[slot] = nil
		}
	}

	index := d.driver.CurrentBackBufferIndex(w.swapchain)
	w.rebuildBackBuffers(index)

	cb.presentList = append(cb.presentList, presentEntry{window: w, index: index})
	return w.backBuffers, w.width, w.height, nil
}

// SetSwapchainParameters implements §4.9: wait, destroy, recreate.
func (d *Device) SetSwapchainParameters(w *Window, composition SwapchainComposition, presentMode PresentMode) error {
	if err := d.Wait(); err != nil {
		return err
	}
	d.driver.DestroySwapchain(w.swapchain)

	tearing := presentMode == PresentModeImmediate && d.driver.SupportsTearing()
	format := compositionFormat(composition)
	sc, err := d.driver.CreateSwapchain(w.handle, w.width, w.height, format, MaxFramesInFlight, tearing)
	if err != nil {
		return err
	}
	w.swapchain = sc
	w.composition = composition
	w.presentMode = presentMode
	return nil
}

// GetSwapchainTextureFormat returns the backbuffer format for w.
func (w *Window) GetSwapchainTextureFormat() gputypes.TextureFormat {
	return compositionFormat(w.composition)
}
