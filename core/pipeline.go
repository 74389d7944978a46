// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

// GraphicsPipeline is the client-visible handle returned by
// CreateGraphicsPipeline: the native pipeline-state object plus the root
// signature the pipeline builder resolved for its declared stage counts
// (§4.6 "Pipeline builder"). The blit helper's internal pipelines are built
// from the same two calls this type wraps.
type GraphicsPipeline struct {
	native   NativeHandle
	rootSig  *rootSignature
	topology PrimitiveTopology
}

// ComputePipeline is GraphicsPipeline's compute-only counterpart.
type ComputePipeline struct {
	native  NativeHandle
	rootSig *rootSignature
}

// CreateGraphicsPipeline resolves (or reuses, via the root-signature cache)
// a root signature matching vertex/fragment's declared counts, then asks
// the driver to build the pipeline-state object against it (§4.6).
func (d *Device) CreateGraphicsPipeline(vertex, fragment StageCounts, desc GraphicsPipelineDesc) (*GraphicsPipeline, error) {
	rs, err := d.rootsigs.BuildGraphics(vertex, fragment)
	if err != nil {
		return nil, err
	}
	desc.RootSignature = rs.native
	native, err := d.driver.CreateGraphicsPipeline(desc)
	if err != nil {
		return nil, err
	}
	return &GraphicsPipeline{native: native, rootSig: rs, topology: desc.Topology}, nil
}

// CreateComputePipeline is CreateGraphicsPipeline's compute-only
// counterpart: readTex/readBuf/writeTex/writeBuf/uniforms lay out the
// compute root signature per §4.6's "Bind compute pipeline" table order.
func (d *Device) CreateComputePipeline(readTex, readBuf, writeTex, writeBuf, uniforms uint32, desc ComputePipelineDesc) (*ComputePipeline, error) {
	rs, err := d.rootsigs.BuildCompute(readTex, readBuf, writeTex, writeBuf, uniforms)
	if err != nil {
		return nil, err
	}
	desc.RootSignature = rs.native
	native, err := d.driver.CreateComputePipeline(desc)
	if err != nil {
		return nil, err
	}
	return &ComputePipeline{native: native, rootSig: rs}, nil
}

// DestroyGraphicsPipeline releases the pipeline-state object. The root
// signature it referenced stays alive in the cache for reuse by other
// pipelines declaring the same stage counts.
func (d *Device) DestroyGraphicsPipeline(p *GraphicsPipeline) { d.driver.DestroyPipeline(p.native) }

// DestroyComputePipeline is DestroyGraphicsPipeline's compute counterpart.
func (d *Device) DestroyComputePipeline(p *ComputePipeline) { d.driver.DestroyPipeline(p.native) }

// SetGraphicsPipeline binds p and its baked topology (§4.7 "Bind graphics
// pipeline"). Thin convenience wrapper over SetPipeline so callers outside
// this package never need to name the unexported rootSignature type.
func (p *RenderPassEncoder) SetGraphicsPipeline(gp *GraphicsPipeline) {
	p.SetPipeline(gp.native, gp.rootSig, gp.topology)
}

// SetComputePipeline is SetGraphicsPipeline's compute-pass counterpart.
func (p *ComputePassEncoder) SetComputePipeline(cp *ComputePipeline) {
	p.SetPipeline(cp.native, cp.rootSig)
}
