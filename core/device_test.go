// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"
)

var _ Driver = (*fakeDriver)(nil)

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	d, err := NewDevice(newFakeDriver())
	require.NoError(t, err)
	return d
}

func TestNewDeviceBuildsTheBlitHelperAndPools(t *testing.T) {
	d := newTestDevice(t)
	require.NotNil(t, d.descriptors)
	require.NotNil(t, d.blit)
	require.NotNil(t, d.rootsigs)
	require.NotNil(t, d.queries)
}

func TestCreateBufferStartsWithOneConcreteAndTheGivenSize(t *testing.T) {
	d := newTestDevice(t)

	buf, err := d.CreateBuffer(BufferUsageVertex, 4096, HeapGPULocal)
	require.NoError(t, err)
	require.Len(t, buf.concrete, 1)
	require.Equal(t, buf.active, buf.concrete[0])
	require.Equal(t, uint64(4096), buf.size)
}

func TestCreateTextureStartsWithOneConcrete(t *testing.T) {
	d := newTestDevice(t)

	tex, err := d.CreateTexture(TextureUsageColorTarget, TextureDim2D, TextureAllocDesc{
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  256,
		Height: 256,
	})
	require.NoError(t, err)
	require.Len(t, tex.concrete, 1)
	require.Equal(t, tex.active, tex.concrete[0])
}

func TestSubmitSignalsAFenceTheCallerCanWaitOn(t *testing.T) {
	d := newTestDevice(t)

	cb, err := d.AcquireCommandBuffer()
	require.NoError(t, err)

	require.NoError(t, d.Submit(cb))
	require.True(t, cb.submitted)

	require.NoError(t, d.Wait())
}

func TestSubmitTwiceOnTheSameCommandBufferFails(t *testing.T) {
	d := newTestDevice(t)

	cb, err := d.AcquireCommandBuffer()
	require.NoError(t, err)
	require.NoError(t, d.Submit(cb))

	err = d.Submit(cb)
	require.Error(t, err)
}

func TestClaimWindowAcquiresABackBufferTexture(t *testing.T) {
	d := newTestDevice(t)

	w, err := d.ClaimWindow(0xdeadbeef, 800, 600, CompositionSDR, PresentModeImmediate)
	require.NoError(t, err)
	require.NotNil(t, w.backBuffers)

	cb, err := d.AcquireCommandBuffer()
	require.NoError(t, err)

	tex, width, height, err := cb.AcquireSwapchainTexture(w, 800, 600)
	require.NoError(t, err)
	require.NotNil(t, tex)
	require.Equal(t, uint32(800), width)
	require.Equal(t, uint32(600), height)

	require.NoError(t, d.UnclaimWindow(w))
}
