package gfx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeVS = `
struct Uniforms {
    mvp: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> vs_params: Uniforms;

@vertex
fn vs_main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vs_params.mvp * vec4<f32>(pos, 1.0);
}
`

const textureFS = `
@group(2) @binding(0) var tex: texture_2d<f32>;
@group(2) @binding(1) var tex_smp: sampler;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(tex, tex_smp, uv);
}
`

func cubeShaderDesc() gfx.ShaderDesc {
	return gfx.ShaderDesc{
		Label: "cube",
		Vertex: gfx.ShaderStageDesc{
			Source:        cubeVS,
			UniformBlocks: []gfx.UniformBlockDesc{{Name: "vs_params", Size: 64}},
		},
		Fragment: gfx.ShaderStageDesc{
			Source: textureFS,
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
	}
}

func TestNewShader(t *testing.T) {
	dev := gfxtest.New()

	shd, err := gfx.NewShader(dev, cubeShaderDesc(), gfx.PipelineDesc{
		Layout:    gfx.VertexLayout{Attrs: []gfx.VertexFormat{gfx.VertexFormatFloat3}},
		IndexType: gfx.IndexUint16,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, dev.Live(gfxtest.KindShader))
	assert.Equal(t, 1, dev.Live(gfxtest.KindPipeline))
	assert.Equal(t, "cube", dev.Pipelines[shd.Pipeline()].Label)

	shd.Release()
	shd.Release()

	assert.Equal(t, 1, dev.Destroyed(gfxtest.KindShader))
	assert.Equal(t, 1, dev.Destroyed(gfxtest.KindPipeline))
	assert.Zero(t, dev.DoubleDestroys)
	assert.Zero(t, dev.Leaks())
}

func TestNewShaderUndeclaredUniform(t *testing.T) {
	dev := gfxtest.New()

	desc := cubeShaderDesc()
	desc.Vertex.UniformBlocks = nil

	shd, err := gfx.NewShader(dev, desc, gfx.PipelineDesc{})
	assert.Nil(t, shd)
	assert.ErrorIs(t, err, gfx.ErrUndeclaredUniform)

	var shaderErr *gfx.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, "vs_params", shaderErr.Name)
	assert.Equal(t, gfx.StageVertex, shaderErr.Stage)

	// nothing must be created for an invalid description
	assert.Zero(t, dev.Made(gfxtest.KindShader))
}

func TestNewShaderPipelineFailureReleasesShader(t *testing.T) {
	dev := gfxtest.New()
	dev.Fail[gfxtest.KindPipeline] = errors.New("rejected")

	_, err := gfx.NewShader(dev, cubeShaderDesc(), gfx.PipelineDesc{})
	assert.ErrorContains(t, err, "rejected")

	assert.Equal(t, 1, dev.Made(gfxtest.KindShader))
	assert.Equal(t, 1, dev.Destroyed(gfxtest.KindShader))
	assert.Zero(t, dev.Leaks())
}

func TestCheckShaderBindingsInvalidSource(t *testing.T) {
	desc := cubeShaderDesc()
	desc.Vertex.Source = "@group(0) @binding(0) var<uniform> vs_params"

	err := gfx.CheckShaderBindings(desc)

	var shaderErr *gfx.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, gfx.StageVertex, shaderErr.Stage)
	assert.ErrorContains(t, err, "parse wgsl")
}

func TestShaderApply(t *testing.T) {
	dev := gfxtest.New()

	shd, err := gfx.NewShader(dev, cubeShaderDesc(), gfx.PipelineDesc{})
	require.NoError(t, err)
	defer shd.Release()

	dev.BeginDefaultPass(gfx.PassAction{}, 640, 480)
	shd.Apply()
	dev.Draw(0, 3, 1)
	dev.EndPass()
	require.NoError(t, dev.Commit())

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, shd.Pipeline(), dev.Draws[0].Pipeline)
}

func TestCheckShaderBindings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(desc *gfx.ShaderDesc)
		err    error
	}{
		{
			name:   "valid",
			modify: func(desc *gfx.ShaderDesc) {},
		},
		{
			name: "uniform name differs",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.UniformBlocks[0].Name = "params"
			},
			err: gfx.ErrUndeclaredUniform,
		},
		{
			name: "uniform order differs",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.UniformBlocks = []gfx.UniformBlockDesc{{Name: "other"}, {Name: "vs_params"}}
			},
			err: gfx.ErrBindingMismatch,
		},
		{
			name: "uniform not in source",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Fragment.UniformBlocks = []gfx.UniformBlockDesc{{Name: "fs_params"}}
			},
			err: gfx.ErrMissingDeclaration,
		},
		{
			name: "image not described",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Fragment.Images = nil
			},
			err: gfx.ErrUndeclaredImage,
		},
		{
			name: "sampler missing",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Fragment.Source = `@group(2) @binding(0) var tex: texture_2d<f32>;`
			},
			err: gfx.ErrMissingDeclaration,
		},
		{
			name: "commented declaration is ignored",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.Source += "\n// @group(0) @binding(1) var<uniform> old_params: Uniforms;\n"
			},
		},
		{
			name: "block commented declaration is ignored",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.Source += "\n/*\n@group(0) @binding(1) var<uniform> old_params: Uniforms;\n*/\n"
			},
		},
		{
			name: "binding before group",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.Source = strings.Replace(cubeVS,
					"@group(0) @binding(0)", "@binding(0) @group(0)", 1)
			},
		},
		{
			name: "binding before group undeclared",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Vertex.Source = strings.Replace(cubeVS,
					"@group(0) @binding(0)", "@binding(0) @group(0)", 1)
				desc.Vertex.UniformBlocks = nil
			},
			err: gfx.ErrUndeclaredUniform,
		},
		{
			name: "sampler attributes on separate lines",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Fragment.Source = strings.Replace(textureFS,
					"@group(2) @binding(1) var tex_smp", "@binding(1)\n@group(2)\nvar tex_smp", 1)
			},
		},
		{
			name: "uniform in wrong stage binding",
			modify: func(desc *gfx.ShaderDesc) {
				desc.Fragment.Source += "\n@group(0) @binding(0) var<uniform> fs_params: vec4<f32>;\n"
				desc.Fragment.UniformBlocks = []gfx.UniformBlockDesc{{Name: "fs_params", Size: 16}}
			},
			err: gfx.ErrBindingMismatch,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			desc := cubeShaderDesc()
			test.modify(&desc)

			err := gfx.CheckShaderBindings(desc)
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}
