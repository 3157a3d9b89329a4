package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/stretchr/testify/assert"
)

func TestPadTo4(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	assert.Same(t, &data[0], &padTo4(data)[0])

	assert.Equal(t, []byte{1, 2, 3, 0}, padTo4([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 0, 0, 0}, padTo4([]byte{1, 2, 3, 4, 5}))
	assert.Empty(t, padTo4(nil))
}

func TestAlignTo(t *testing.T) {
	assert.Equal(t, 16, alignTo(1, 16))
	assert.Equal(t, 64, alignTo(64, 16))
	assert.Equal(t, 80, alignTo(65, 16))
	assert.Equal(t, 0, alignTo(0, 4))
}

func TestSamplerDescriptor(t *testing.T) {
	desc := toSamplerDescriptor(gfx.ImageDesc{})
	assert.Equal(t, wgpu.FilterModeLinear, desc.MagFilter)
	assert.Equal(t, wgpu.AddressModeClampToEdge, desc.AddressModeU)

	desc = toSamplerDescriptor(gfx.ImageDesc{Filter: gfx.FilterNearest, Wrap: gfx.WrapRepeat})
	assert.Equal(t, wgpu.FilterModeNearest, desc.MinFilter)
	assert.Equal(t, wgpu.FilterModeNearest, desc.MagFilter)
	assert.Equal(t, wgpu.AddressModeRepeat, desc.AddressModeV)

	desc = toSamplerDescriptor(gfx.ImageDesc{Wrap: gfx.WrapMirroredRepeat})
	assert.Equal(t, wgpu.AddressModeMirrorRepeat, desc.AddressModeW)
}

func TestVertexFormats(t *testing.T) {
	assert.Equal(t, wgpu.VertexFormatFloat32x3, toVertexFormat(gfx.VertexFormatFloat3))
	assert.Equal(t, wgpu.VertexFormatUnorm8x4, toVertexFormat(gfx.VertexFormatUByte4N))
	assert.Equal(t, wgpu.VertexFormatUndefined, toVertexFormat(gfx.VertexFormatInvalid))
}

func TestIndexFormats(t *testing.T) {
	assert.Equal(t, wgpu.IndexFormatUndefined, toIndexFormat(gfx.IndexNone))
	assert.Equal(t, wgpu.IndexFormatUint16, toIndexFormat(gfx.IndexUint16))
	assert.Equal(t, wgpu.IndexFormatUint32, toIndexFormat(gfx.IndexUint32))
}

func TestTextureFormatFallback(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, toTextureFormat(gfx.PixelFormatDefault, wgpu.TextureFormatBGRA8UnormSrgb))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, toTextureFormat(gfx.PixelFormatRGBA8, wgpu.TextureFormatBGRA8Unorm))
	assert.Equal(t, depthFormat, toTextureFormat(gfx.PixelFormatDepth, wgpu.TextureFormatBGRA8Unorm))
}

func TestBlendState(t *testing.T) {
	assert.Nil(t, toBlendState(gfx.BlendNone))

	blend := toBlendState(gfx.BlendAlpha)
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, blend.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, blend.Color.DstFactor)
	assert.Equal(t, wgpu.BlendFactorOne, blend.Alpha.SrcFactor)
}

func TestClearColor(t *testing.T) {
	color := toClearColor(gfx.ColorBlack)
	assert.Equal(t, wgpu.Color{R: 0, G: 0, B: 0, A: 1}, color)

	color = toClearColor(gfx.ColorLinearRGBA(1, 1, 1, 0.5))
	assert.InDelta(t, 0.5, color.A, 1e-6)

	color = toClearColor(gfx.Color{})
	assert.Equal(t, wgpu.Color{R: 1, G: 1, B: 1, A: 1}, color)
}

func TestDepthDefaults(t *testing.T) {
	assert.Equal(t, wgpu.CompareFunctionAlways, toCompareFunction(gfx.CompareAlways))
	assert.Equal(t, wgpu.CompareFunctionLess, toCompareFunction(gfx.CompareLess))
	assert.Equal(t, wgpu.CullModeNone, toCullMode(gfx.CullNone))
	assert.Equal(t, wgpu.CullModeBack, toCullMode(gfx.CullBack))
}

func TestWgpuLogLevels(t *testing.T) {
	assert.Len(t, wgpuLogLevels, 6)
	assert.Equal(t, wgpu.LogLevelTrace, wgpuLogLevels["TRACE"])
	assert.Equal(t, wgpu.LogLevelOff, wgpuLogLevels["OFF"])
}
