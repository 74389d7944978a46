// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "github.com/gogpu/gputypes"

// Plain-struct mock types satisfying Driver without returning nil, nil,
// so the shared-reference/pool bookkeeping in Device has something real
// to juggle. Mirrors the mock-by-plain-struct convention already used to
// test this engine's own predecessor against a fake hal.Device.
type (
	fakeBuffer    struct{ size uint64 }
	fakeTexture   struct{ desc TextureAllocDesc }
	fakeSampler   struct{}
	fakeHeap      struct {
		kind     DescriptorHeapKind
		capacity uint32
	}
	fakeCmdList  struct{ closed bool }
	fakeFence    struct{ value uint64 }
	fakePipeline struct{}
	fakeRootSig  struct{}
	fakeSwapchain struct {
		width, height uint32
		format        gputypes.TextureFormat
		buffers       []*fakeTexture
		current       uint32
		presented     int
	}
)

// fakeDriver implements Driver entirely in memory; every method that
// would touch a native API on a real backend is a no-op here.
type fakeDriver struct {
	nextAddr uint64
	tearing  bool
}

func newFakeDriver() *fakeDriver { return &fakeDriver{} }

func (f *fakeDriver) CreateBuffer(size uint64, kind NativeHeapKind) (NativeHandle, uint64, error) {
	f.nextAddr += size
	return &fakeBuffer{size: size}, f.nextAddr, nil
}
func (f *fakeDriver) DestroyBuffer(NativeHandle)          {}
func (f *fakeDriver) MapBuffer(NativeHandle) (uintptr, error) { return 0, nil }
func (f *fakeDriver) UnmapBuffer(NativeHandle)            {}

func (f *fakeDriver) CreateTexture(desc TextureAllocDesc) (NativeHandle, error) {
	return &fakeTexture{desc: desc}, nil
}
func (f *fakeDriver) DestroyTexture(NativeHandle) {}

func (f *fakeDriver) CreateSampler(SamplerDesc) (NativeHandle, error) { return &fakeSampler{}, nil }
func (f *fakeDriver) DestroySampler(NativeHandle)                    {}

func (f *fakeDriver) CreateDescriptorHeap(kind DescriptorHeapKind, capacity uint32, shaderVisible bool) (NativeHeap, error) {
	return &fakeHeap{kind: kind, capacity: capacity}, nil
}
func (f *fakeDriver) DestroyDescriptorHeap(NativeHeap) {}
func (f *fakeDriver) WriteBufferView(NativeHeap, uint32, DescriptorHeapKind, NativeHandle, uint64, uint64) {
}
func (f *fakeDriver) WriteTextureView(NativeHeap, uint32, DescriptorHeapKind, NativeHandle, SubresourceAllocDesc) {
}
func (f *fakeDriver) WriteSamplerView(NativeHeap, uint32, NativeHandle) {}
func (f *fakeDriver) CopyDescriptor(NativeHeap, uint32, NativeHeap, uint32, DescriptorHeapKind) {}

func (f *fakeDriver) CreateRootSignature(RootSignatureDesc) (NativeHandle, error) {
	return &fakeRootSig{}, nil
}
func (f *fakeDriver) DestroyRootSignature(NativeHandle) {}
func (f *fakeDriver) CreateGraphicsPipeline(GraphicsPipelineDesc) (NativeHandle, error) {
	return &fakePipeline{}, nil
}
func (f *fakeDriver) CreateComputePipeline(ComputePipelineDesc) (NativeHandle, error) {
	return &fakePipeline{}, nil
}
func (f *fakeDriver) DestroyPipeline(NativeHandle) {}

func (f *fakeDriver) AcquireCommandList() (NativeCommandList, error) { return &fakeCmdList{}, nil }
func (f *fakeDriver) ResetCommandList(h NativeCommandList)           { h.(*fakeCmdList).closed = false }
func (f *fakeDriver) CloseCommandList(h NativeCommandList) error {
	h.(*fakeCmdList).closed = true
	return nil
}

func (f *fakeDriver) CreateFenceObject() (NativeFence, error) { return &fakeFence{}, nil }
func (f *fakeDriver) DestroyFenceObject(NativeFence)          {}
func (f *fakeDriver) SignalFence(h NativeFence, value uint64) error {
	h.(*fakeFence).value = value
	return nil
}
func (f *fakeDriver) GetFenceCompletedValue(h NativeFence) uint64 { return h.(*fakeFence).value }
func (f *fakeDriver) WaitFenceEvent(h NativeFence, value uint64, timeoutMS uint32) (bool, error) {
	return h.(*fakeFence).value >= value, nil
}

func (f *fakeDriver) ExecuteCommandLists(lists []NativeCommandList, signalFence NativeFence, signalValue uint64) error {
	if signalFence != nil {
		signalFence.(*fakeFence).value = signalValue
	}
	return nil
}

func (f *fakeDriver) CreateSwapchain(windowHandle uintptr, width, height uint32, composition gputypes.TextureFormat, bufferCount uint32, tearing bool) (NativeSwapchain, error) {
	bufs := make([]*fakeTexture, bufferCount)
	for i := range bufs {
		bufs[i] = &fakeTexture{}
	}
	return &fakeSwapchain{width: width, height: height, format: composition, buffers: bufs}, nil
}
func (f *fakeDriver) ResizeSwapchain(s NativeSwapchain, width, height uint32) error {
	sc := s.(*fakeSwapchain)
	sc.width, sc.height = width, height
	return nil
}
func (f *fakeDriver) DestroySwapchain(NativeSwapchain)                 {}
func (f *fakeDriver) CurrentBackBufferIndex(s NativeSwapchain) uint32 { return s.(*fakeSwapchain).current }
func (f *fakeDriver) BackBufferTexture(s NativeSwapchain, index uint32) NativeHandle {
	return s.(*fakeSwapchain).buffers[index]
}
func (f *fakeDriver) Present(s NativeSwapchain, syncInterval uint32, tearing bool) error {
	sc := s.(*fakeSwapchain)
	sc.presented++
	sc.current = (sc.current + 1) % uint32(len(sc.buffers))
	return nil
}
func (f *fakeDriver) SupportsTearing() bool { return f.tearing }

func (f *fakeDriver) CreateQueryHeap(count uint32) (NativeHeap, error) {
	return &fakeHeap{capacity: count}, nil
}
func (f *fakeDriver) DestroyQueryHeap(NativeHeap)                              {}
func (f *fakeDriver) BeginQuery(NativeCommandList, NativeHeap, uint32)         {}
func (f *fakeDriver) EndQuery(NativeCommandList, NativeHeap, uint32)           {}
func (f *fakeDriver) ResolveQueryData(NativeCommandList, NativeHeap, uint32, uint32, NativeHandle, uint64) {
}

func (f *fakeDriver) ResourceBarrier(NativeCommandList, NativeHandle, uint32, uint32, uint32) {}
func (f *fakeDriver) SetDescriptorHeaps(NativeCommandList, NativeHeap, NativeHeap)            {}
func (f *fakeDriver) OMSetRenderTargets(NativeCommandList, []CPUDescriptor, *CPUDescriptor)   {}
func (f *fakeDriver) ClearRenderTargetView(NativeCommandList, CPUDescriptor, [4]float32)      {}
func (f *fakeDriver) ClearDepthStencilView(NativeCommandList, CPUDescriptor, float32, uint8, bool, bool) {
}
func (f *fakeDriver) SetViewportScissor(NativeCommandList, float32, float32, float32, float32, float32, float32) {
}
func (f *fakeDriver) SetPipelineState(NativeCommandList, NativeHandle, NativeHandle, bool) {}
func (f *fakeDriver) SetPrimitiveTopology(NativeCommandList, PrimitiveTopology)            {}
func (f *fakeDriver) SetBlendConstant(NativeCommandList, [4]float32)                       {}
func (f *fakeDriver) SetStencilReference(NativeCommandList, uint32)                        {}
func (f *fakeDriver) SetVertexBuffer(NativeCommandList, uint32, NativeHandle, uint64, uint64, uint64) {
}
func (f *fakeDriver) SetIndexBuffer(NativeCommandList, NativeHandle, uint64, uint64, uint32) {}
func (f *fakeDriver) SetGraphicsRootDescriptorTable(NativeCommandList, uint32, NativeHeap, uint32) {
}
func (f *fakeDriver) SetComputeRootDescriptorTable(NativeCommandList, uint32, NativeHeap, uint32) {
}
func (f *fakeDriver) SetGraphicsRootConstantBufferView(NativeCommandList, uint32, uint64) {}
func (f *fakeDriver) SetComputeRootConstantBufferView(NativeCommandList, uint32, uint64)  {}
func (f *fakeDriver) Draw(NativeCommandList, uint32, uint32, uint32, uint32)              {}
func (f *fakeDriver) DrawIndexed(NativeCommandList, uint32, uint32, uint32, int32, uint32) {}
func (f *fakeDriver) DrawIndirect(NativeCommandList, NativeHandle, uint64)                {}
func (f *fakeDriver) DrawIndexedIndirect(NativeCommandList, NativeHandle, uint64)         {}
func (f *fakeDriver) Dispatch(NativeCommandList, uint32, uint32, uint32)                  {}
func (f *fakeDriver) DispatchIndirect(NativeCommandList, NativeHandle, uint64)            {}
func (f *fakeDriver) CopyBufferToBuffer(NativeCommandList, NativeHandle, uint64, NativeHandle, uint64, uint64) {
}
func (f *fakeDriver) CopyBufferToTexture(NativeCommandList, NativeHandle, uint64, uint32, NativeHandle, SubresourceAllocDesc) {
}
func (f *fakeDriver) CopyTextureToBuffer(NativeCommandList, NativeHandle, SubresourceAllocDesc, NativeHandle, uint64, uint32) {
}
func (f *fakeDriver) CopyTextureToTexture(NativeCommandList, NativeHandle, SubresourceAllocDesc, NativeHandle, SubresourceAllocDesc) {
}
func (f *fakeDriver) GenerateMipmaps(NativeCommandList, NativeHandle, uint32) {}
