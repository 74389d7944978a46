// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/frameengine/core"
	"github.com/gogpu/frameengine/internal/dx12/d3d12"
	"github.com/gogpu/frameengine/internal/dx12/dxgi"
	"github.com/gogpu/gputypes"
)

// nativeSwapchain wraps the flip-model IDXGISwapChain4 the engine's Window
// acquires and presents against, plus the back-buffer resources GetBuffer
// hands back so BackBufferTexture never re-queries DXGI on the hot path.
type nativeSwapchain struct {
	swap        *dxgi.IDXGISwapChain4
	format      d3d12.DXGI_FORMAT
	bufferCount uint32
	backBuffers []*nativeResource
}

func (d *Device) CreateSwapchain(windowHandle uintptr, width, height uint32, composition gputypes.TextureFormat, bufferCount uint32, tearing bool) (core.NativeSwapchain, error) {
	format := textureFormatToDXGI(composition)

	flags := dxgi.DXGI_SWAP_CHAIN_FLAG(0)
	if tearing {
		flags |= dxgi.DXGI_SWAP_CHAIN_FLAG_ALLOW_TEARING
	}

	desc := &dxgi.DXGI_SWAP_CHAIN_DESC1{
		Width:       width,
		Height:      height,
		Format:      format,
		SampleDesc:  dxgi.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		BufferUsage: dxgi.DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount: bufferCount,
		Scaling:     dxgi.DXGI_SCALING_STRETCH,
		SwapEffect:  dxgi.DXGI_SWAP_EFFECT_FLIP_DISCARD,
		AlphaMode:   dxgi.DXGI_ALPHA_MODE_IGNORE,
		Flags:       uint32(flags),
	}

	swap1, err := d.factory.CreateSwapChainForHwnd(
		unsafe.Pointer(d.queue), windowHandle, desc, nil, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("dx12: create swap chain: %w", err)
	}
	defer swap1.Release()

	// MakeWindowAssociation(DXGI_MWA_NO_ALT_ENTER) mirrors the teacher's
	// convention of leaving fullscreen-toggle handling to the engine's own
	// present loop rather than DXGI's alt-enter default.
	_ = d.factory.MakeWindowAssociation(windowHandle, dxgi.DXGI_MWA_NO_ALT_ENTER)

	swap4, err := swap1.QueryInterface()
	if err != nil {
		return nil, fmt.Errorf("dx12: query swap chain interface: %w", err)
	}

	sc := &nativeSwapchain{swap: swap4, format: format, bufferCount: bufferCount}
	if err := sc.acquireBackBuffers(); err != nil {
		swap4.Release()
		return nil, err
	}
	return sc, nil
}

// acquireBackBuffers calls GetBuffer for every back buffer in the chain and
// wraps each as a nativeResource so the rest of the backend (descriptor
// writes, barriers, copies) treats swapchain images identically to any
// other texture.
func (sc *nativeSwapchain) acquireBackBuffers() error {
	sc.backBuffers = make([]*nativeResource, sc.bufferCount)
	for i := uint32(0); i < sc.bufferCount; i++ {
		raw, err := sc.swap.GetBuffer(i, &d3d12.IID_ID3D12Resource)
		if err != nil {
			return fmt.Errorf("dx12: get swap chain buffer %d: %w", i, err)
		}
		res := (*d3d12.ID3D12Resource)(raw)
		sc.backBuffers[i] = &nativeResource{resource: res, format: sc.format}
	}
	return nil
}

func (sc *nativeSwapchain) releaseBackBuffers() {
	for _, b := range sc.backBuffers {
		if b != nil && b.resource != nil {
			b.resource.Release()
		}
	}
	sc.backBuffers = nil
}

func (d *Device) ResizeSwapchain(s core.NativeSwapchain, width, height uint32) error {
	sc := s.(*nativeSwapchain)
	sc.releaseBackBuffers()
	if err := sc.swap.ResizeBuffers(sc.bufferCount, width, height, sc.format, 0); err != nil {
		return fmt.Errorf("dx12: resize swap chain: %w", err)
	}
	return sc.acquireBackBuffers()
}

func (d *Device) DestroySwapchain(s core.NativeSwapchain) {
	sc := s.(*nativeSwapchain)
	sc.releaseBackBuffers()
	sc.swap.Release()
}

func (d *Device) CurrentBackBufferIndex(s core.NativeSwapchain) uint32 {
	return s.(*nativeSwapchain).swap.GetCurrentBackBufferIndex()
}

func (d *Device) BackBufferTexture(s core.NativeSwapchain, index uint32) core.NativeHandle {
	return s.(*nativeSwapchain).backBuffers[index]
}

func (d *Device) Present(s core.NativeSwapchain, syncInterval uint32, tearing bool) error {
	flags := uint32(0)
	if tearing && syncInterval == 0 {
		flags = uint32(dxgi.DXGI_PRESENT_ALLOW_TEARING)
	}
	if err := s.(*nativeSwapchain).swap.Present(syncInterval, flags); err != nil {
		return fmt.Errorf("dx12: present: %w", err)
	}
	return nil
}
