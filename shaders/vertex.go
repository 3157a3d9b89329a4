package shaders

import "github.com/oliverbestmann/learnwgpu/gfx"

// TriangleVertex is a position with a color.
type TriangleVertex struct {
	Pos   [3]float32
	Color [4]float32
}

func (TriangleVertex) Layout() gfx.VertexLayout {
	return gfx.VertexLayout{
		Attrs: []gfx.VertexFormat{
			gfx.VertexFormatFloat3,
			gfx.VertexFormatFloat4,
		},
	}
}

// TextureVertex is a position with a color and a texture coordinate.
// The color is multiplied with the sampled texel.
type TextureVertex struct {
	Pos   [3]float32
	Color [4]uint8
	UV    [2]float32
}

func (TextureVertex) Layout() gfx.VertexLayout {
	return gfx.VertexLayout{
		Attrs: []gfx.VertexFormat{
			gfx.VertexFormatFloat3,
			gfx.VertexFormatUByte4N,
			gfx.VertexFormatFloat2,
		},
	}
}

type CubeVertex = TextureVertex
