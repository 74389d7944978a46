// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	_ "embed"
	"math"
)

// The blit helper's fixed-function shaders are precompiled offline (this
// module never compiles shader source — that step is explicitly out of
// scope, see DESIGN.md) and embedded as opaque bytecode blobs, the same
// format CreateShader accepts from application callers.
//
//go:embed shaders/blit_vs.cso
var blitVertexShader []byte

//go:embed shaders/blit_ps_2d.cso
var blitPixelShader2D []byte

//go:embed shaders/blit_ps_2d_array.cso
var blitPixelShader2DArray []byte

//go:embed shaders/blit_ps_3d.cso
var blitPixelShader3D []byte

//go:embed shaders/blit_ps_cube.cso
var blitPixelShaderCube []byte

// blitRegion is a normalized (left, top, width, height) rectangle, pushed
// to the blit fragment shader as a small uniform struct (§4.10).
type blitRegion struct {
	Left, Top, Width, Height float32
}

// blitHelper owns the four dimensionality-specific blit pipelines and the
// two fixed samplers, built once at device init (§4.10).
type blitHelper struct {
	device *Device

	rootSig *rootSignature

	pipeline2D      NativeHandle
	pipeline2DArray NativeHandle
	pipeline3D      NativeHandle
	pipelineCube    NativeHandle

	nearestSampler *Sampler
	linearSampler  *Sampler
}

func newBlitHelper(d *Device) (*blitHelper, error) {
	rootSig, err := d.rootsigs.BuildGraphics(
		StageCounts{},
		StageCounts{Samplers: 1, SampledTextures: 1, UniformBuffers: 1},
	)
	if err != nil {
		return nil, err
	}

	b := &blitHelper{device: d, rootSig: rootSig}

	nearest, err := d.CreateSampler(SamplerDesc{MinFilter: FilterNearest, MagFilter: FilterNearest, MipFilter: FilterNearest})
	if err != nil {
		return nil, err
	}
	linear, err := d.CreateSampler(SamplerDesc{MinFilter: FilterLinear, MagFilter: FilterLinear, MipFilter: FilterLinear})
	if err != nil {
		return nil, err
	}
	b.nearestSampler = nearest
	b.linearSampler = linear

	buildPipeline := func(ps []byte) (NativeHandle, error) {
		return d.driver.CreateGraphicsPipeline(GraphicsPipelineDesc{
			RootSignature: rootSig.native,
			VertexShader:  blitVertexShader,
			PixelShader:   ps,
			Topology:      TopologyTriangleList,
			SampleCount:   1,
		})
	}

	var err2D, err2DArray, err3D, errCube error
	if b.pipeline2D, err2D = buildPipeline(blitPixelShader2D); err2D != nil {
		return nil, err2D
	}
	if b.pipeline2DArray, err2DArray = buildPipeline(blitPixelShader2DArray); err2DArray != nil {
		return nil, err2DArray
	}
	if b.pipeline3D, err3D = buildPipeline(blitPixelShader3D); err3D != nil {
		return nil, err3D
	}
	if b.pipelineCube, errCube = buildPipeline(blitPixelShaderCube); errCube != nil {
		return nil, errCube
	}

	return b, nil
}

func (b *blitHelper) pipelineFor(dim TextureDimensionality) NativeHandle {
	switch dim {
	case TextureDim2DArray:
		return b.pipeline2DArray
	case TextureDim3D:
		return b.pipeline3D
	case TextureDimCube:
		return b.pipelineCube
	default:
		return b.pipeline2D
	}
}

// BlitRect is a pixel-space source or destination rectangle for Blit.
type BlitRect struct {
	X, Y, Width, Height uint32
}

// Blit implements §4.10's Blit: begin a render pass against dstRegion
// (clear if it covers the whole destination texture, else load), bind the
// dimensionality-matched pipeline and requested sampler, push the
// normalized source rectangle as a fragment uniform, draw three vertices,
// end the pass.
//
// The source must have sampler usage and the destination color-target
// usage. Only the destination's dimensionality is restricted: a 3D or
// array destination is rejected rather than silently mis-rendered, since
// the single-RTV pass this helper records cannot address more than one
// slice per call.
func (cb *CommandBuffer) Blit(src *TextureContainer, srcRegion BlitRect, dst *TextureContainer, dstRegion BlitRect, filter Filter, cycle bool) error {
	if !src.usage.Has(TextureUsageSampler) {
		return ErrBlitSourceUsage
	}
	if !dst.usage.Has(TextureUsageColorTarget) {
		return ErrBlitDestUsage
	}
	if dst.dim == TextureDim3D || dst.dim == TextureDim2DArray {
		return ErrBlitDestUsage
	}

	fullCoverage := dstRegion.X == 0 && dstRegion.Y == 0 &&
		dstRegion.Width == dst.desc.Width && dstRegion.Height == dst.desc.Height
	loadOp := LoadOpLoad
	if fullCoverage {
		loadOp = LoadOpClear
	}

	d := cb.device
	b := d.blit

	p, err := cb.BeginRenderPass(RenderPassDescriptor{
		Label: "blit",
		ColorAttachments: []RenderPassColorAttachment{{
			Texture: dst,
			LoadOp:  loadOp,
			StoreOp: StoreOpStore,
			Cycle:   cycle,
		}},
	})
	if err != nil {
		return err
	}

	p.SetPipeline(b.pipelineFor(src.dim), b.rootSig, TopologyTriangleList)
	p.SetViewport(float32(dstRegion.X), float32(dstRegion.Y), float32(dstRegion.Width), float32(dstRegion.Height), 0, 1)

	sampler := b.linearSampler
	if filter == FilterNearest {
		sampler = b.nearestSampler
	}
	if err := p.BindSampler(stageFragment, 0, sampler); err != nil {
		_ = p.End()
		return err
	}
	if err := p.BindSampledTexture(stageFragment, 0, 0, 0, src); err != nil {
		_ = p.End()
		return err
	}

	region := blitRegion{
		Left:   float32(srcRegion.X) / float32(src.desc.Width),
		Top:    float32(srcRegion.Y) / float32(src.desc.Height),
		Width:  float32(srcRegion.Width) / float32(src.desc.Width),
		Height: float32(srcRegion.Height) / float32(src.desc.Height),
	}
	data := blitRegionBytes(&region)[:]
	if err := cb.PushUniformData(stageFragment, 0, data); err != nil {
		_ = p.End()
		return err
	}

	p.Draw(3, 1, 0, 0)
	return p.End()
}

func blitRegionBytes(r *blitRegion) *[16]byte {
	var buf [16]byte
	putFloat32(buf[0:4], r.Left)
	putFloat32(buf[4:8], r.Top)
	putFloat32(buf[8:12], r.Width)
	putFloat32(buf[12:16], r.Height)
	return &buf
}

func putFloat32(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}
