// Package shaders contains the WGSL programs of the apps together with the
// vertex types and pipeline settings they are used with.
package shaders

import (
	"fmt"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/glm"
)

func build(dev gfx.Device, loader Loader, name string, desc gfx.ShaderDesc, pip gfx.PipelineDesc) (*gfx.Shader, error) {
	vs, fs, err := loader.Load(name)
	if err != nil {
		return nil, err
	}

	desc.Label = name
	desc.Vertex.Source = vs
	desc.Fragment.Source = fs

	shd, err := gfx.NewShader(dev, desc, pip)
	if err != nil {
		return nil, fmt.Errorf("create shader %q: %w", name, err)
	}

	return shd, nil
}

// Triangle draws vertex colored triangles to the window.
func Triangle(dev gfx.Device, loader Loader) (*gfx.Shader, error) {
	return TriangleTarget(dev, loader, gfx.PixelFormatDefault)
}

// TriangleTarget draws vertex colored triangles into a color target of the given format.
func TriangleTarget(dev gfx.Device, loader Loader, format gfx.PixelFormat) (*gfx.Shader, error) {
	return build(dev, loader, "triangle", gfx.ShaderDesc{}, gfx.PipelineDesc{
		Layout:      TriangleVertex{}.Layout(),
		IndexType:   gfx.IndexUint16,
		CullMode:    gfx.CullNone,
		ColorFormat: format,
	})
}

// Texture draws textured triangles. The texture is bound to fragment image slot 0.
func Texture(dev gfx.Device, loader Loader) (*gfx.Shader, error) {
	desc := gfx.ShaderDesc{
		Fragment: gfx.ShaderStageDesc{
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
	}

	return build(dev, loader, "texture", desc, gfx.PipelineDesc{
		Layout:    TextureVertex{}.Layout(),
		IndexType: gfx.IndexUint16,
		CullMode:  gfx.CullNone,
		Blend:     gfx.BlendAlpha,
	})
}

// CubeParams is the vertex uniform block of the cube shader.
type CubeParams struct {
	ViewProjection glm.Mat4f
}

// Cube draws textured triangles transformed by the matrix in CubeParams,
// with depth testing.
func Cube(dev gfx.Device, loader Loader) (*gfx.Shader, error) {
	desc := gfx.ShaderDesc{
		Vertex: gfx.ShaderStageDesc{
			UniformBlocks: []gfx.UniformBlockDesc{{Name: "vs_params", Size: 64}},
		},
		Fragment: gfx.ShaderStageDesc{
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
	}

	return build(dev, loader, "cube", desc, gfx.PipelineDesc{
		Layout:    CubeVertex{}.Layout(),
		IndexType: gfx.IndexUint16,
		CullMode:  gfx.CullNone,
		Depth: gfx.DepthState{
			Compare:      gfx.CompareLessEqual,
			WriteEnabled: true,
		},
	})
}
