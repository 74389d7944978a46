// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

// DXGI_FORMAT mirrors the subset of the DXGI format enumeration the D3D12
// resource/view descriptors reference. It is declared here, scoped to this
// package, rather than imported from the sibling dxgi package, so that
// D3D12_RESOURCE_DESC and friends stay import-free of the swapchain-facing
// dxgi package.
type DXGI_FORMAT uint32

const (
	DXGI_FORMAT_UNKNOWN                 DXGI_FORMAT = 0
	DXGI_FORMAT_R32G32B32A32_FLOAT      DXGI_FORMAT = 2
	DXGI_FORMAT_R32G32B32A32_UINT       DXGI_FORMAT = 3
	DXGI_FORMAT_R32G32B32A32_SINT       DXGI_FORMAT = 4
	DXGI_FORMAT_R32G32B32_FLOAT         DXGI_FORMAT = 6
	DXGI_FORMAT_R32G32B32_UINT          DXGI_FORMAT = 7
	DXGI_FORMAT_R32G32B32_SINT          DXGI_FORMAT = 8
	DXGI_FORMAT_R16G16B16A16_FLOAT      DXGI_FORMAT = 10
	DXGI_FORMAT_R16G16B16A16_UNORM      DXGI_FORMAT = 11
	DXGI_FORMAT_R16G16B16A16_UINT       DXGI_FORMAT = 12
	DXGI_FORMAT_R16G16B16A16_SNORM      DXGI_FORMAT = 13
	DXGI_FORMAT_R16G16B16A16_SINT       DXGI_FORMAT = 14
	DXGI_FORMAT_R32G32_FLOAT            DXGI_FORMAT = 16
	DXGI_FORMAT_R32G32_UINT             DXGI_FORMAT = 17
	DXGI_FORMAT_R32G32_SINT             DXGI_FORMAT = 18
	DXGI_FORMAT_R32G8X24_TYPELESS       DXGI_FORMAT = 19
	DXGI_FORMAT_D32_FLOAT_S8X24_UINT    DXGI_FORMAT = 20
	DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS DXGI_FORMAT = 21
	DXGI_FORMAT_R10G10B10A2_UNORM       DXGI_FORMAT = 24
	DXGI_FORMAT_R10G10B10A2_UINT        DXGI_FORMAT = 25
	DXGI_FORMAT_R11G11B10_FLOAT         DXGI_FORMAT = 26
	DXGI_FORMAT_R8G8B8A8_UNORM          DXGI_FORMAT = 28
	DXGI_FORMAT_R8G8B8A8_UNORM_SRGB     DXGI_FORMAT = 29
	DXGI_FORMAT_R8G8B8A8_UINT           DXGI_FORMAT = 30
	DXGI_FORMAT_R8G8B8A8_SNORM          DXGI_FORMAT = 31
	DXGI_FORMAT_R8G8B8A8_SINT           DXGI_FORMAT = 32
	DXGI_FORMAT_R16G16_FLOAT            DXGI_FORMAT = 34
	DXGI_FORMAT_R16G16_UNORM            DXGI_FORMAT = 35
	DXGI_FORMAT_R16G16_UINT             DXGI_FORMAT = 36
	DXGI_FORMAT_R16G16_SNORM            DXGI_FORMAT = 37
	DXGI_FORMAT_R16G16_SINT             DXGI_FORMAT = 38
	DXGI_FORMAT_R32_TYPELESS            DXGI_FORMAT = 39
	DXGI_FORMAT_D32_FLOAT               DXGI_FORMAT = 40
	DXGI_FORMAT_R32_FLOAT               DXGI_FORMAT = 41
	DXGI_FORMAT_R32_UINT                DXGI_FORMAT = 42
	DXGI_FORMAT_R32_SINT                DXGI_FORMAT = 43
	DXGI_FORMAT_R24G8_TYPELESS          DXGI_FORMAT = 44
	DXGI_FORMAT_D24_UNORM_S8_UINT       DXGI_FORMAT = 45
	DXGI_FORMAT_R24_UNORM_X8_TYPELESS   DXGI_FORMAT = 46
	DXGI_FORMAT_R8G8_UNORM              DXGI_FORMAT = 49
	DXGI_FORMAT_R8G8_UINT               DXGI_FORMAT = 50
	DXGI_FORMAT_R8G8_SNORM              DXGI_FORMAT = 51
	DXGI_FORMAT_R8G8_SINT               DXGI_FORMAT = 52
	DXGI_FORMAT_R16_TYPELESS            DXGI_FORMAT = 53
	DXGI_FORMAT_R16_FLOAT               DXGI_FORMAT = 54
	DXGI_FORMAT_D16_UNORM               DXGI_FORMAT = 55
	DXGI_FORMAT_R16_UNORM               DXGI_FORMAT = 56
	DXGI_FORMAT_R16_UINT                DXGI_FORMAT = 57
	DXGI_FORMAT_R16_SNORM               DXGI_FORMAT = 58
	DXGI_FORMAT_R16_SINT                DXGI_FORMAT = 59
	DXGI_FORMAT_R8_UNORM                DXGI_FORMAT = 61
	DXGI_FORMAT_R8_UINT                 DXGI_FORMAT = 62
	DXGI_FORMAT_R8_SNORM                DXGI_FORMAT = 63
	DXGI_FORMAT_R8_SINT                 DXGI_FORMAT = 64
	DXGI_FORMAT_BC1_UNORM               DXGI_FORMAT = 71
	DXGI_FORMAT_BC1_UNORM_SRGB          DXGI_FORMAT = 72
	DXGI_FORMAT_BC2_UNORM               DXGI_FORMAT = 74
	DXGI_FORMAT_BC2_UNORM_SRGB          DXGI_FORMAT = 75
	DXGI_FORMAT_BC3_UNORM               DXGI_FORMAT = 77
	DXGI_FORMAT_BC3_UNORM_SRGB          DXGI_FORMAT = 78
	DXGI_FORMAT_BC4_UNORM               DXGI_FORMAT = 80
	DXGI_FORMAT_BC4_SNORM               DXGI_FORMAT = 81
	DXGI_FORMAT_BC5_UNORM               DXGI_FORMAT = 83
	DXGI_FORMAT_BC5_SNORM               DXGI_FORMAT = 84
	DXGI_FORMAT_B8G8R8A8_UNORM          DXGI_FORMAT = 87
	DXGI_FORMAT_B8G8R8A8_UNORM_SRGB     DXGI_FORMAT = 91
	DXGI_FORMAT_BC6H_UF16               DXGI_FORMAT = 95
	DXGI_FORMAT_BC6H_SF16               DXGI_FORMAT = 96
	DXGI_FORMAT_BC7_UNORM               DXGI_FORMAT = 98
	DXGI_FORMAT_BC7_UNORM_SRGB          DXGI_FORMAT = 99
)

type D3D12_COMMAND_LIST_TYPE uint32

const (
	D3D12_COMMAND_LIST_TYPE_DIRECT  D3D12_COMMAND_LIST_TYPE = 0
	D3D12_COMMAND_LIST_TYPE_BUNDLE  D3D12_COMMAND_LIST_TYPE = 1
	D3D12_COMMAND_LIST_TYPE_COMPUTE D3D12_COMMAND_LIST_TYPE = 2
	D3D12_COMMAND_LIST_TYPE_COPY    D3D12_COMMAND_LIST_TYPE = 3
)

type D3D12_COMMAND_QUEUE_FLAGS uint32

const (
	D3D12_COMMAND_QUEUE_FLAG_NONE     D3D12_COMMAND_QUEUE_FLAGS = 0
	D3D12_COMMAND_QUEUE_FLAG_DISABLE_GPU_TIMEOUT D3D12_COMMAND_QUEUE_FLAGS = 1
)

type D3D12_HEAP_TYPE uint32

const (
	D3D12_HEAP_TYPE_DEFAULT  D3D12_HEAP_TYPE = 1
	D3D12_HEAP_TYPE_UPLOAD   D3D12_HEAP_TYPE = 2
	D3D12_HEAP_TYPE_READBACK D3D12_HEAP_TYPE = 3
	D3D12_HEAP_TYPE_CUSTOM   D3D12_HEAP_TYPE = 4
)

type D3D12_CPU_PAGE_PROPERTY uint32

const D3D12_CPU_PAGE_PROPERTY_UNKNOWN D3D12_CPU_PAGE_PROPERTY = 0

type D3D12_MEMORY_POOL uint32

const D3D12_MEMORY_POOL_UNKNOWN D3D12_MEMORY_POOL = 0

type D3D12_HEAP_FLAGS uint32

const D3D12_HEAP_FLAG_NONE D3D12_HEAP_FLAGS = 0

type D3D12_RESOURCE_DIMENSION uint32

const (
	D3D12_RESOURCE_DIMENSION_UNKNOWN   D3D12_RESOURCE_DIMENSION = 0
	D3D12_RESOURCE_DIMENSION_BUFFER    D3D12_RESOURCE_DIMENSION = 1
	D3D12_RESOURCE_DIMENSION_TEXTURE1D D3D12_RESOURCE_DIMENSION = 2
	D3D12_RESOURCE_DIMENSION_TEXTURE2D D3D12_RESOURCE_DIMENSION = 3
	D3D12_RESOURCE_DIMENSION_TEXTURE3D D3D12_RESOURCE_DIMENSION = 4
)

type D3D12_TEXTURE_LAYOUT uint32

const (
	D3D12_TEXTURE_LAYOUT_UNKNOWN   D3D12_TEXTURE_LAYOUT = 0
	D3D12_TEXTURE_LAYOUT_ROW_MAJOR D3D12_TEXTURE_LAYOUT = 1
)

type D3D12_RESOURCE_FLAGS uint32

const (
	D3D12_RESOURCE_FLAG_NONE                     D3D12_RESOURCE_FLAGS = 0
	D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET      D3D12_RESOURCE_FLAGS = 0x1
	D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL      D3D12_RESOURCE_FLAGS = 0x2
	D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS   D3D12_RESOURCE_FLAGS = 0x4
	D3D12_RESOURCE_FLAG_DENY_SHADER_RESOURCE     D3D12_RESOURCE_FLAGS = 0x8
)

type D3D12_RESOURCE_STATES uint32

const (
	D3D12_RESOURCE_STATE_COMMON                     D3D12_RESOURCE_STATES = 0
	D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER  D3D12_RESOURCE_STATES = 0x1
	D3D12_RESOURCE_STATE_INDEX_BUFFER                D3D12_RESOURCE_STATES = 0x2
	D3D12_RESOURCE_STATE_RENDER_TARGET                D3D12_RESOURCE_STATES = 0x4
	D3D12_RESOURCE_STATE_UNORDERED_ACCESS             D3D12_RESOURCE_STATES = 0x8
	D3D12_RESOURCE_STATE_DEPTH_WRITE                  D3D12_RESOURCE_STATES = 0x10
	D3D12_RESOURCE_STATE_DEPTH_READ                   D3D12_RESOURCE_STATES = 0x20
	D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE    D3D12_RESOURCE_STATES = 0x40
	D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE        D3D12_RESOURCE_STATES = 0x80
	D3D12_RESOURCE_STATE_INDIRECT_ARGUMENT            D3D12_RESOURCE_STATES = 0x200
	D3D12_RESOURCE_STATE_COPY_DEST                    D3D12_RESOURCE_STATES = 0x400
	D3D12_RESOURCE_STATE_COPY_SOURCE                  D3D12_RESOURCE_STATES = 0x800
	D3D12_RESOURCE_STATE_RESOLVE_DEST                 D3D12_RESOURCE_STATES = 0x1000
	D3D12_RESOURCE_STATE_RESOLVE_SOURCE               D3D12_RESOURCE_STATES = 0x2000
	D3D12_RESOURCE_STATE_GENERIC_READ                 D3D12_RESOURCE_STATES = 0x1 | 0x2 | 0x40 | 0x80 | 0x200 | 0x800
	D3D12_RESOURCE_STATE_PRESENT                      D3D12_RESOURCE_STATES = 0
)

type D3D12_RESOURCE_BARRIER_TYPE uint32

const (
	D3D12_RESOURCE_BARRIER_TYPE_TRANSITION D3D12_RESOURCE_BARRIER_TYPE = 0
	D3D12_RESOURCE_BARRIER_TYPE_ALIASING   D3D12_RESOURCE_BARRIER_TYPE = 1
	D3D12_RESOURCE_BARRIER_TYPE_UAV        D3D12_RESOURCE_BARRIER_TYPE = 2
)

type D3D12_RESOURCE_BARRIER_FLAGS uint32

const D3D12_RESOURCE_BARRIER_FLAG_NONE D3D12_RESOURCE_BARRIER_FLAGS = 0

const D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES uint32 = 0xffffffff

type D3D12_DESCRIPTOR_HEAP_TYPE uint32

const (
	D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV D3D12_DESCRIPTOR_HEAP_TYPE = 0
	D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER     D3D12_DESCRIPTOR_HEAP_TYPE = 1
	D3D12_DESCRIPTOR_HEAP_TYPE_RTV         D3D12_DESCRIPTOR_HEAP_TYPE = 2
	D3D12_DESCRIPTOR_HEAP_TYPE_DSV         D3D12_DESCRIPTOR_HEAP_TYPE = 3
)

type D3D12_DESCRIPTOR_HEAP_FLAGS uint32

const (
	D3D12_DESCRIPTOR_HEAP_FLAG_NONE           D3D12_DESCRIPTOR_HEAP_FLAGS = 0
	D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE D3D12_DESCRIPTOR_HEAP_FLAGS = 0x1
)

type D3D12_FENCE_FLAGS uint32

const D3D12_FENCE_FLAG_NONE D3D12_FENCE_FLAGS = 0

type D3D_FEATURE_LEVEL uint32

const (
	D3D_FEATURE_LEVEL_11_0 D3D_FEATURE_LEVEL = 0xb000
	D3D_FEATURE_LEVEL_11_1 D3D_FEATURE_LEVEL = 0xb100
	D3D_FEATURE_LEVEL_12_0 D3D_FEATURE_LEVEL = 0xc000
	D3D_FEATURE_LEVEL_12_1 D3D_FEATURE_LEVEL = 0xc100
	D3D_FEATURE_LEVEL_12_2 D3D_FEATURE_LEVEL = 0xc200
)

type D3D_SHADER_MODEL uint32

const (
	D3D_SHADER_MODEL_5_1 D3D_SHADER_MODEL = 0x51
	D3D_SHADER_MODEL_6_0 D3D_SHADER_MODEL = 0x60
	D3D_SHADER_MODEL_6_1 D3D_SHADER_MODEL = 0x61
	D3D_SHADER_MODEL_6_2 D3D_SHADER_MODEL = 0x62
	D3D_SHADER_MODEL_6_3 D3D_SHADER_MODEL = 0x63
	D3D_SHADER_MODEL_6_4 D3D_SHADER_MODEL = 0x64
	D3D_SHADER_MODEL_6_5 D3D_SHADER_MODEL = 0x65
	D3D_SHADER_MODEL_6_6 D3D_SHADER_MODEL = 0x66
	D3D_SHADER_MODEL_6_7 D3D_SHADER_MODEL = 0x67
)

type D3D12_FEATURE uint32

const (
	D3D12_FEATURE_D3D12_OPTIONS D3D12_FEATURE = 0
	D3D12_FEATURE_SHADER_MODEL  D3D12_FEATURE = 7
)

type D3D_PRIMITIVE_TOPOLOGY uint32

const (
	D3D_PRIMITIVE_TOPOLOGY_POINTLIST     D3D_PRIMITIVE_TOPOLOGY = 1
	D3D_PRIMITIVE_TOPOLOGY_LINELIST      D3D_PRIMITIVE_TOPOLOGY = 2
	D3D_PRIMITIVE_TOPOLOGY_LINESTRIP     D3D_PRIMITIVE_TOPOLOGY = 3
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST  D3D_PRIMITIVE_TOPOLOGY = 4
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP D3D_PRIMITIVE_TOPOLOGY = 5
)

type D3D12_PRIMITIVE_TOPOLOGY_TYPE uint32

const (
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT    D3D12_PRIMITIVE_TOPOLOGY_TYPE = 1
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE     D3D12_PRIMITIVE_TOPOLOGY_TYPE = 2
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE D3D12_PRIMITIVE_TOPOLOGY_TYPE = 3
)

type D3D12_QUERY_HEAP_TYPE uint32

const (
	D3D12_QUERY_HEAP_TYPE_OCCLUSION D3D12_QUERY_HEAP_TYPE = 0
)

type D3D12_QUERY_TYPE uint32

const (
	D3D12_QUERY_TYPE_OCCLUSION D3D12_QUERY_TYPE = 0
)

type D3D12_CLEAR_FLAGS uint32

const (
	D3D12_CLEAR_FLAG_DEPTH   D3D12_CLEAR_FLAGS = 0x1
	D3D12_CLEAR_FLAG_STENCIL D3D12_CLEAR_FLAGS = 0x2
)

type D3D12_FILTER uint32

const (
	D3D12_FILTER_MIN_MAG_MIP_POINT        D3D12_FILTER = 0x0
	D3D12_FILTER_MIN_MAG_POINT_MIP_LINEAR D3D12_FILTER = 0x1
	D3D12_FILTER_MIN_MAG_MIP_LINEAR       D3D12_FILTER = 0x15
	D3D12_FILTER_ANISOTROPIC              D3D12_FILTER = 0x55
	D3D12_FILTER_COMPARISON_MIN_MAG_MIP_LINEAR D3D12_FILTER = 0xd5
)

type D3D12_TEXTURE_ADDRESS_MODE uint32

const (
	D3D12_TEXTURE_ADDRESS_MODE_WRAP   D3D12_TEXTURE_ADDRESS_MODE = 1
	D3D12_TEXTURE_ADDRESS_MODE_MIRROR D3D12_TEXTURE_ADDRESS_MODE = 2
	D3D12_TEXTURE_ADDRESS_MODE_CLAMP  D3D12_TEXTURE_ADDRESS_MODE = 3
)

type D3D12_COMPARISON_FUNC uint32

const (
	D3D12_COMPARISON_FUNC_NEVER         D3D12_COMPARISON_FUNC = 1
	D3D12_COMPARISON_FUNC_LESS          D3D12_COMPARISON_FUNC = 2
	D3D12_COMPARISON_FUNC_EQUAL         D3D12_COMPARISON_FUNC = 3
	D3D12_COMPARISON_FUNC_LESS_EQUAL    D3D12_COMPARISON_FUNC = 4
	D3D12_COMPARISON_FUNC_GREATER       D3D12_COMPARISON_FUNC = 5
	D3D12_COMPARISON_FUNC_NOT_EQUAL     D3D12_COMPARISON_FUNC = 6
	D3D12_COMPARISON_FUNC_GREATER_EQUAL D3D12_COMPARISON_FUNC = 7
	D3D12_COMPARISON_FUNC_ALWAYS        D3D12_COMPARISON_FUNC = 8
)

type D3D12_STATIC_BORDER_COLOR uint32

const D3D12_STATIC_BORDER_COLOR_TRANSPARENT_BLACK D3D12_STATIC_BORDER_COLOR = 0

type D3D12_ROOT_SIGNATURE_FLAGS uint32

const (
	D3D12_ROOT_SIGNATURE_FLAG_NONE                               D3D12_ROOT_SIGNATURE_FLAGS = 0
	D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT D3D12_ROOT_SIGNATURE_FLAGS = 0x1
)

type D3D12_DESCRIPTOR_RANGE_TYPE uint32

const (
	D3D12_DESCRIPTOR_RANGE_TYPE_SRV     D3D12_DESCRIPTOR_RANGE_TYPE = 0
	D3D12_DESCRIPTOR_RANGE_TYPE_UAV     D3D12_DESCRIPTOR_RANGE_TYPE = 1
	D3D12_DESCRIPTOR_RANGE_TYPE_CBV     D3D12_DESCRIPTOR_RANGE_TYPE = 2
	D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER D3D12_DESCRIPTOR_RANGE_TYPE = 3
)

type D3D12_ROOT_PARAMETER_TYPE uint32

const (
	D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE D3D12_ROOT_PARAMETER_TYPE = 0
	D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  D3D12_ROOT_PARAMETER_TYPE = 1
	D3D12_ROOT_PARAMETER_TYPE_CBV              D3D12_ROOT_PARAMETER_TYPE = 2
	D3D12_ROOT_PARAMETER_TYPE_SRV              D3D12_ROOT_PARAMETER_TYPE = 3
	D3D12_ROOT_PARAMETER_TYPE_UAV              D3D12_ROOT_PARAMETER_TYPE = 4
)

type D3D12_SHADER_VISIBILITY uint32

const (
	D3D12_SHADER_VISIBILITY_ALL    D3D12_SHADER_VISIBILITY = 0
	D3D12_SHADER_VISIBILITY_VERTEX D3D12_SHADER_VISIBILITY = 1
	D3D12_SHADER_VISIBILITY_PIXEL  D3D12_SHADER_VISIBILITY = 5
)

type D3D_ROOT_SIGNATURE_VERSION uint32

const (
	D3D_ROOT_SIGNATURE_VERSION_1_0 D3D_ROOT_SIGNATURE_VERSION = 0x1
	D3D_ROOT_SIGNATURE_VERSION_1_1 D3D_ROOT_SIGNATURE_VERSION = 0x2
)

type D3D12_INDEX_BUFFER_STRIP_CUT_VALUE uint32

const D3D12_INDEX_BUFFER_STRIP_CUT_VALUE_0 D3D12_INDEX_BUFFER_STRIP_CUT_VALUE = 0

type D3D12_PIPELINE_STATE_FLAGS uint32

const D3D12_PIPELINE_STATE_FLAG_NONE D3D12_PIPELINE_STATE_FLAGS = 0

type D3D12_SRV_DIMENSION uint32

const (
	D3D12_SRV_DIMENSION_TEXTURE1D      D3D12_SRV_DIMENSION = 2
	D3D12_SRV_DIMENSION_TEXTURE2D      D3D12_SRV_DIMENSION = 3
	D3D12_SRV_DIMENSION_TEXTURE2DARRAY D3D12_SRV_DIMENSION = 5
	D3D12_SRV_DIMENSION_TEXTURECUBE    D3D12_SRV_DIMENSION = 9
	D3D12_SRV_DIMENSION_TEXTURECUBEARRAY D3D12_SRV_DIMENSION = 10
	D3D12_SRV_DIMENSION_TEXTURE3D      D3D12_SRV_DIMENSION = 8
	D3D12_SRV_DIMENSION_BUFFER         D3D12_SRV_DIMENSION = 1
)

type D3D12_UAV_DIMENSION uint32

const (
	D3D12_UAV_DIMENSION_BUFFER         D3D12_UAV_DIMENSION = 1
	D3D12_UAV_DIMENSION_TEXTURE1D      D3D12_UAV_DIMENSION = 2
	D3D12_UAV_DIMENSION_TEXTURE2D      D3D12_UAV_DIMENSION = 3
	D3D12_UAV_DIMENSION_TEXTURE2DARRAY D3D12_UAV_DIMENSION = 4
	D3D12_UAV_DIMENSION_TEXTURE3D      D3D12_UAV_DIMENSION = 8
)

type D3D12_RTV_DIMENSION uint32

const (
	D3D12_RTV_DIMENSION_TEXTURE1D      D3D12_RTV_DIMENSION = 2
	D3D12_RTV_DIMENSION_TEXTURE2D      D3D12_RTV_DIMENSION = 3
	D3D12_RTV_DIMENSION_TEXTURE2DARRAY D3D12_RTV_DIMENSION = 5
	D3D12_RTV_DIMENSION_TEXTURE3D      D3D12_RTV_DIMENSION = 8
)

type D3D12_DSV_DIMENSION uint32

const (
	D3D12_DSV_DIMENSION_TEXTURE1D      D3D12_DSV_DIMENSION = 1
	D3D12_DSV_DIMENSION_TEXTURE2D      D3D12_DSV_DIMENSION = 3
	D3D12_DSV_DIMENSION_TEXTURE2DARRAY D3D12_DSV_DIMENSION = 4
)

type D3D12_DSV_FLAGS uint32

const D3D12_DSV_FLAG_NONE D3D12_DSV_FLAGS = 0

type D3D12_FILL_MODE uint32

const D3D12_FILL_MODE_SOLID D3D12_FILL_MODE = 3

type D3D12_CULL_MODE uint32

const (
	D3D12_CULL_MODE_NONE  D3D12_CULL_MODE = 1
	D3D12_CULL_MODE_FRONT D3D12_CULL_MODE = 2
	D3D12_CULL_MODE_BACK  D3D12_CULL_MODE = 3
)

type D3D12_CONSERVATIVE_RASTERIZATION_MODE uint32

const D3D12_CONSERVATIVE_RASTERIZATION_MODE_OFF D3D12_CONSERVATIVE_RASTERIZATION_MODE = 0

type D3D12_BLEND uint32

const (
	D3D12_BLEND_ZERO             D3D12_BLEND = 1
	D3D12_BLEND_ONE              D3D12_BLEND = 2
	D3D12_BLEND_SRC_COLOR        D3D12_BLEND = 3
	D3D12_BLEND_INV_SRC_COLOR    D3D12_BLEND = 4
	D3D12_BLEND_SRC_ALPHA        D3D12_BLEND = 5
	D3D12_BLEND_INV_SRC_ALPHA    D3D12_BLEND = 6
	D3D12_BLEND_DEST_ALPHA       D3D12_BLEND = 7
	D3D12_BLEND_INV_DEST_ALPHA   D3D12_BLEND = 8
	D3D12_BLEND_DEST_COLOR       D3D12_BLEND = 9
	D3D12_BLEND_INV_DEST_COLOR   D3D12_BLEND = 10
	D3D12_BLEND_SRC_ALPHA_SAT    D3D12_BLEND = 11
	D3D12_BLEND_BLEND_FACTOR     D3D12_BLEND = 14
	D3D12_BLEND_INV_BLEND_FACTOR D3D12_BLEND = 15
)

type D3D12_BLEND_OP uint32

const (
	D3D12_BLEND_OP_ADD          D3D12_BLEND_OP = 1
	D3D12_BLEND_OP_SUBTRACT     D3D12_BLEND_OP = 2
	D3D12_BLEND_OP_REV_SUBTRACT D3D12_BLEND_OP = 3
	D3D12_BLEND_OP_MIN          D3D12_BLEND_OP = 4
	D3D12_BLEND_OP_MAX          D3D12_BLEND_OP = 5
)

type D3D12_LOGIC_OP uint32

const D3D12_LOGIC_OP_NOOP D3D12_LOGIC_OP = 1

const (
	D3D12_COLOR_WRITE_ENABLE_RED   uint8 = 0x1
	D3D12_COLOR_WRITE_ENABLE_GREEN uint8 = 0x2
	D3D12_COLOR_WRITE_ENABLE_BLUE  uint8 = 0x4
	D3D12_COLOR_WRITE_ENABLE_ALPHA uint8 = 0x8
	D3D12_COLOR_WRITE_ENABLE_ALL   uint8 = 0xf
)

type D3D12_STENCIL_OP uint32

const (
	D3D12_STENCIL_OP_KEEP     D3D12_STENCIL_OP = 1
	D3D12_STENCIL_OP_ZERO     D3D12_STENCIL_OP = 2
	D3D12_STENCIL_OP_REPLACE  D3D12_STENCIL_OP = 3
	D3D12_STENCIL_OP_INCR_SAT D3D12_STENCIL_OP = 4
	D3D12_STENCIL_OP_DECR_SAT D3D12_STENCIL_OP = 5
	D3D12_STENCIL_OP_INVERT   D3D12_STENCIL_OP = 6
	D3D12_STENCIL_OP_INCR     D3D12_STENCIL_OP = 7
	D3D12_STENCIL_OP_DECR     D3D12_STENCIL_OP = 8
)

type D3D12_DEPTH_WRITE_MASK uint32

const (
	D3D12_DEPTH_WRITE_MASK_ZERO D3D12_DEPTH_WRITE_MASK = 0
	D3D12_DEPTH_WRITE_MASK_ALL  D3D12_DEPTH_WRITE_MASK = 1
)

type D3D12_INPUT_CLASSIFICATION uint32

const (
	D3D12_INPUT_CLASSIFICATION_PER_VERTEX_DATA   D3D12_INPUT_CLASSIFICATION = 0
	D3D12_INPUT_CLASSIFICATION_PER_INSTANCE_DATA D3D12_INPUT_CLASSIFICATION = 1
)

type D3D12_INDIRECT_ARGUMENT_TYPE uint32

const (
	D3D12_INDIRECT_ARGUMENT_TYPE_DRAW         D3D12_INDIRECT_ARGUMENT_TYPE = 0
	D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED D3D12_INDIRECT_ARGUMENT_TYPE = 1
	D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH     D3D12_INDIRECT_ARGUMENT_TYPE = 2
)

type D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE uint32

const D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE_PRESERVE D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE = 1

type D3D12_RENDER_PASS_ENDING_ACCESS_TYPE uint32

const D3D12_RENDER_PASS_ENDING_ACCESS_TYPE_PRESERVE D3D12_RENDER_PASS_ENDING_ACCESS_TYPE = 1
