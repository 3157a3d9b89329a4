package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwgpu/gfx"
)

const depthFormat = wgpu.TextureFormatDepth32Float

func toFilterMode(filter gfx.Filter) wgpu.FilterMode {
	if filter == gfx.FilterNearest {
		return wgpu.FilterModeNearest
	}

	return wgpu.FilterModeLinear
}

func toAddressMode(wrap gfx.Wrap) wgpu.AddressMode {
	switch wrap {
	case gfx.WrapRepeat:
		return wgpu.AddressModeRepeat
	case gfx.WrapMirroredRepeat:
		return wgpu.AddressModeMirrorRepeat
	default:
		return wgpu.AddressModeClampToEdge
	}
}

func toSamplerDescriptor(desc gfx.ImageDesc) wgpu.SamplerDescriptor {
	filter := toFilterMode(desc.Filter)
	address := toAddressMode(desc.Wrap)

	return wgpu.SamplerDescriptor{
		AddressModeU:  address,
		AddressModeV:  address,
		AddressModeW:  address,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}

func toVertexFormat(format gfx.VertexFormat) wgpu.VertexFormat {
	switch format {
	case gfx.VertexFormatFloat2:
		return wgpu.VertexFormatFloat32x2
	case gfx.VertexFormatFloat3:
		return wgpu.VertexFormatFloat32x3
	case gfx.VertexFormatFloat4:
		return wgpu.VertexFormatFloat32x4
	case gfx.VertexFormatUByte4N:
		return wgpu.VertexFormatUnorm8x4
	default:
		return wgpu.VertexFormatUndefined
	}
}

func toIndexFormat(indexType gfx.IndexType) wgpu.IndexFormat {
	switch indexType {
	case gfx.IndexUint16:
		return wgpu.IndexFormatUint16
	case gfx.IndexUint32:
		return wgpu.IndexFormatUint32
	default:
		return wgpu.IndexFormatUndefined
	}
}

func toCullMode(cull gfx.CullMode) wgpu.CullMode {
	switch cull {
	case gfx.CullFront:
		return wgpu.CullModeFront
	case gfx.CullBack:
		return wgpu.CullModeBack
	default:
		return wgpu.CullModeNone
	}
}

func toCompareFunction(compare gfx.CompareFunc) wgpu.CompareFunction {
	switch compare {
	case gfx.CompareLess:
		return wgpu.CompareFunctionLess
	case gfx.CompareLessEqual:
		return wgpu.CompareFunctionLessEqual
	default:
		return wgpu.CompareFunctionAlways
	}
}

func toBlendState(mode gfx.BlendMode) *wgpu.BlendState {
	if mode != gfx.BlendAlpha {
		return nil
	}

	return &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}
}

// toTextureFormat resolves format, using fallback for PixelFormatDefault.
func toTextureFormat(format gfx.PixelFormat, fallback wgpu.TextureFormat) wgpu.TextureFormat {
	switch format {
	case gfx.PixelFormatRGBA8:
		return wgpu.TextureFormatRGBA8Unorm
	case gfx.PixelFormatBGRA8:
		return wgpu.TextureFormatBGRA8Unorm
	case gfx.PixelFormatDepth:
		return depthFormat
	default:
		return fallback
	}
}

func toShaderStage(stage gfx.ShaderStage) wgpu.ShaderStage {
	if stage == gfx.StageFragment {
		return wgpu.ShaderStageFragment
	}

	return wgpu.ShaderStageVertex
}

func toClearColor(color gfx.Color) wgpu.Color {
	r, g, b, a := color.Components()

	return wgpu.Color{
		R: float64(r),
		G: float64(g),
		B: float64(b),
		A: float64(a),
	}
}

// padTo4 returns data extended with zeros to a multiple of four bytes,
// as required for buffer writes.
func padTo4(data []byte) []byte {
	size := alignTo(len(data), 4)
	if size == len(data) {
		return data
	}

	padded := make([]byte, size)
	copy(padded, data)

	return padded
}

func alignTo(size, alignment int) int {
	return (size + alignment - 1) / alignment * alignment
}
