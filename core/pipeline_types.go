// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

// LoadOp selects how an attachment's prior contents are treated at the
// start of a render pass (§4.7 "Begin render pass").
type LoadOp int

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDontCare
)

// StoreOp selects whether an attachment's written contents are kept after
// a render pass ends.
type StoreOp int

const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// Color is an RGBA clear value in [0, 1] per channel.
type Color struct {
	R, G, B, A float64
}

// Filter selects the sampling filter used by the blit helper (C10) and by
// sampler creation.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// TextureDimensionality classifies a texture container for view-dimension
// and blit-pipeline selection purposes (§4.2, §4.10).
type TextureDimensionality int

const (
	TextureDim2D TextureDimensionality = iota
	TextureDim2DArray
	TextureDim3D
	TextureDimCube
)

// PrimitiveTopology selects how vertices assemble into primitives.
// Grounded on the teacher's types/render.go PrimitiveTopology, trimmed to
// the values the blit helper and pipeline builder actually bake (§4.6,
// §4.10).
type PrimitiveTopology int

const (
	TopologyTriangleList PrimitiveTopology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// BlendFactor selects one operand of a blend equation.
type BlendFactor int

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOperation selects the combining operator.
type BlendOperation int

const (
	BlendOpAdd BlendOperation = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// BlendComponent is one RGB or alpha blend equation.
type BlendComponent struct {
	SrcFactor BlendFactor
	DstFactor BlendFactor
	Operation BlendOperation
}

// BlendState bundles the baked color and alpha blend equations a render
// pipeline carries (§4.7 "Bind graphics pipeline": "blend constants... from
// the pipeline's baked values").
type BlendState struct {
	Enabled bool
	Color   BlendComponent
	Alpha   BlendComponent
}

// DefaultBlendState disables blending (straight overwrite).
func DefaultBlendState() BlendState {
	return BlendState{
		Color: BlendComponent{SrcFactor: BlendFactorOne, DstFactor: BlendFactorZero, Operation: BlendOpAdd},
		Alpha: BlendComponent{SrcFactor: BlendFactorOne, DstFactor: BlendFactorZero, Operation: BlendOpAdd},
	}
}
