// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "sync"

// StageCounts is the four per-stage declarations the caller supplies for a
// compiled shader (§4.6): how many samplers, storage textures, storage
// buffers, and uniform buffers it binds. A zero count skips that group
// entirely when the root signature is laid out.
type StageCounts struct {
	Samplers       uint32
	SampledTextures uint32
	StorageTextures uint32
	StorageBuffers  uint32
	UniformBuffers  uint32
}

// rootSignature is C6's builder output: the native handle plus, for every
// logical bind point, the resolved root-parameter index (or -1 if that
// stage/group combination was skipped because its count was zero).
type rootSignature struct {
	native NativeHandle

	vertexSamplerParam        int
	vertexSampledTextureParam int
	vertexStorageTextureParam int
	vertexStorageBufferParam  int
	vertexUniformParams       []int // one root CBV per declared uniform buffer

	fragmentSamplerParam        int
	fragmentSampledTextureParam int
	fragmentStorageTextureParam int
	fragmentStorageBufferParam  int
	fragmentUniformParams       []int

	computeReadStorageTextureParam int
	computeReadStorageBufferParam  int
	computeWriteStorageTextureParam int
	computeWriteStorageBufferParam  int
	computeUniformParams            []int
}

// rootSigKey distinguishes cached graphics vs. compute layouts built from
// the same counts.
type rootSigKey struct {
	vertex, fragment, compute StageCounts
	isCompute                 bool
}

// rootSignatureCache avoids rebuilding an identical root signature for
// every pipeline that declares the same counts; the empty-signature case
// (every count zero) is the common fast path shared by most pipelines.
type rootSignatureCache struct {
	device *Device
	mu     sync.Mutex
	cache  map[rootSigKey]*rootSignature
}

func newRootSignatureCache(d *Device) *rootSignatureCache {
	return &rootSignatureCache{device: d, cache: make(map[rootSigKey]*rootSignature)}
}

// BuildGraphics lays out a graphics root signature per §4.6: for vertex
// then fragment, sampler-table | sampled-SRV-table | storage-SRV-table |
// storage-buffer-SRV-table | one root CBV per uniform buffer, each stage
// in a disjoint register space.
func (c *rootSignatureCache) BuildGraphics(vertex, fragment StageCounts) (*rootSignature, error) {
	key := rootSigKey{vertex: vertex, fragment: fragment}
	c.mu.Lock()
	if rs, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return rs, nil
	}
	c.mu.Unlock()

	var params []RootParameter
	rs := &rootSignature{
		vertexSamplerParam: -1, vertexSampledTextureParam: -1,
		vertexStorageTextureParam: -1, vertexStorageBufferParam: -1,
		fragmentSamplerParam: -1, fragmentSampledTextureParam: -1,
		fragmentStorageTextureParam: -1, fragmentStorageBufferParam: -1,
	}

	appendStage := func(counts StageCounts, samplerP, sampledP, storageTexP, storageBufP *int, uniformPs *[]int) {
		if counts.Samplers > 0 {
			*samplerP = len(params)
			params = append(params, RootParameter{TableKind: HeapKindSampler, TableCount: counts.Samplers})
		}
		if counts.SampledTextures > 0 {
			*sampledP = len(params)
			params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: counts.SampledTextures})
		}
		if counts.StorageTextures > 0 {
			*storageTexP = len(params)
			params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: counts.StorageTextures})
		}
		if counts.StorageBuffers > 0 {
			*storageBufP = len(params)
			params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: counts.StorageBuffers})
		}
		for i := uint32(0); i < counts.UniformBuffers; i++ {
			*uniformPs = append(*uniformPs, len(params))
			params = append(params, RootParameter{IsRootCBV: true, ShaderRegister: i})
		}
	}

	appendStage(vertex, &rs.vertexSamplerParam, &rs.vertexSampledTextureParam, &rs.vertexStorageTextureParam, &rs.vertexStorageBufferParam, &rs.vertexUniformParams)
	appendStage(fragment, &rs.fragmentSamplerParam, &rs.fragmentSampledTextureParam, &rs.fragmentStorageTextureParam, &rs.fragmentStorageBufferParam, &rs.fragmentUniformParams)

	native, err := c.device.driver.CreateRootSignature(RootSignatureDesc{Parameters: params})
	if err != nil {
		return nil, err
	}
	rs.native = native

	c.mu.Lock()
	c.cache[key] = rs
	c.mu.Unlock()
	return rs, nil
}

// BuildCompute lays out a compute root signature per §4.6: read-only
// storage-texture table | read-only storage-buffer table | read-write
// storage-texture table | read-write storage-buffer table | one root CBV
// per uniform buffer.
func (c *rootSignatureCache) BuildCompute(readTex, readBuf, writeTex, writeBuf, uniforms uint32) (*rootSignature, error) {
	// The read-write counts ride in the vertex slot, which compute layouts
	// otherwise leave empty, so layouts differing only in them stay apart.
	key := rootSigKey{isCompute: true, compute: StageCounts{
		StorageTextures: readTex, StorageBuffers: readBuf, UniformBuffers: uniforms,
	}, vertex: StageCounts{StorageTextures: writeTex, StorageBuffers: writeBuf}}
	c.mu.Lock()
	if rs, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return rs, nil
	}
	c.mu.Unlock()

	var params []RootParameter
	rs := &rootSignature{
		computeReadStorageTextureParam: -1, computeReadStorageBufferParam: -1,
		computeWriteStorageTextureParam: -1, computeWriteStorageBufferParam: -1,
	}

	if readTex > 0 {
		rs.computeReadStorageTextureParam = len(params)
		params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: readTex})
	}
	if readBuf > 0 {
		rs.computeReadStorageBufferParam = len(params)
		params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: readBuf})
	}
	if writeTex > 0 {
		rs.computeWriteStorageTextureParam = len(params)
		params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: writeTex})
	}
	if writeBuf > 0 {
		rs.computeWriteStorageBufferParam = len(params)
		params = append(params, RootParameter{TableKind: HeapKindCBVSRVUAV, TableCount: writeBuf})
	}
	for i := uint32(0); i < uniforms; i++ {
		rs.computeUniformParams = append(rs.computeUniformParams, len(params))
		params = append(params, RootParameter{IsRootCBV: true, ShaderRegister: i})
	}

	native, err := c.device.driver.CreateRootSignature(RootSignatureDesc{Parameters: params})
	if err != nil {
		return nil, err
	}
	rs.native = native

	c.mu.Lock()
	c.cache[key] = rs
	c.mu.Unlock()
	return rs, nil
}

// Empty returns the shared zero-binding root signature lazily created on
// first use, for pipelines whose shaders declare no resources at all.
func (c *rootSignatureCache) Empty() (*rootSignature, error) {
	return c.BuildGraphics(StageCounts{}, StageCounts{})
}

// paramFor resolves a (stage, group) binding key to its root-parameter
// index and the descriptor-heap kind that table was built from, or -1 if
// this root signature never declared that table (the caller's shader
// simply doesn't bind that group). Used by flushDescriptorTable.
func (rs *rootSignature) paramFor(stage shaderStage, group bindGroupClass) (int, DescriptorHeapKind) {
	switch stage {
	case stageVertex:
		switch group {
		case groupSampler:
			return rs.vertexSamplerParam, HeapKindSampler
		case groupSampledTexture:
			return rs.vertexSampledTextureParam, HeapKindCBVSRVUAV
		case groupStorageTexture:
			return rs.vertexStorageTextureParam, HeapKindCBVSRVUAV
		case groupStorageBuffer:
			return rs.vertexStorageBufferParam, HeapKindCBVSRVUAV
		}
	case stageFragment:
		switch group {
		case groupSampler:
			return rs.fragmentSamplerParam, HeapKindSampler
		case groupSampledTexture:
			return rs.fragmentSampledTextureParam, HeapKindCBVSRVUAV
		case groupStorageTexture:
			return rs.fragmentStorageTextureParam, HeapKindCBVSRVUAV
		case groupStorageBuffer:
			return rs.fragmentStorageBufferParam, HeapKindCBVSRVUAV
		}
	case stageCompute:
		switch group {
		case groupComputeStorageTextureRead:
			return rs.computeReadStorageTextureParam, HeapKindCBVSRVUAV
		case groupComputeStorageBufferRead:
			return rs.computeReadStorageBufferParam, HeapKindCBVSRVUAV
		case groupComputeStorageTextureWrite:
			return rs.computeWriteStorageTextureParam, HeapKindCBVSRVUAV
		case groupComputeStorageBufferWrite:
			return rs.computeWriteStorageBufferParam, HeapKindCBVSRVUAV
		}
	}
	return -1, HeapKindCBVSRVUAV
}
