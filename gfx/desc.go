package gfx

const (
	// MaxStageUniformBlocks is the number of uniform slots per shader stage.
	MaxStageUniformBlocks = 4

	// MaxStageImages is the number of image slots per shader stage.
	MaxStageImages = 4
)

type BufferDesc struct {
	Label string
	Type  BufferType
	Usage Usage

	// Size in bytes. Defaults to len(Data) for immutable buffers.
	Size int

	// Initial content, required for immutable buffers.
	Data []byte
}

type ImageDesc struct {
	Label  string
	Width  uint32
	Height uint32
	Format PixelFormat
	Filter Filter
	Wrap   Wrap

	// RenderTarget images can be attached to a pass and are not
	// initialized from Data.
	RenderTarget bool

	// tightly packed pixel rows, top row first
	Data []byte
}

// UniformBlockDesc names a uniform buffer of a shader stage. The slot of a
// block is its index in ShaderStageDesc.UniformBlocks.
type UniformBlockDesc struct {
	Name string
	Size int
}

// ShaderImageDesc names a texture of a shader stage. The shader must also
// declare a sampler called "<Name>_smp".
type ShaderImageDesc struct {
	Name string
}

type ShaderStageDesc struct {
	// WGSL source code of this stage
	Source string

	// name of the entry point function. Defaults to vs_main or fs_main.
	EntryPoint string

	UniformBlocks []UniformBlockDesc
	Images        []ShaderImageDesc
}

// ShaderDesc describes a shader program. Names of uniform blocks and images
// must match the declarations in the WGSL sources exactly, the index of a
// name in its slice defines its binding. See CheckShaderBindings.
type ShaderDesc struct {
	Label    string
	Vertex   ShaderStageDesc
	Fragment ShaderStageDesc
}

func (desc *ShaderDesc) Stage(stage ShaderStage) *ShaderStageDesc {
	if stage == StageFragment {
		return &desc.Fragment
	}

	return &desc.Vertex
}

// VertexLayout lists the attributes of a single interleaved vertex buffer.
// Attribute i is bound to shader location i.
type VertexLayout struct {
	Attrs []VertexFormat
}

// Stride returns the size of one vertex in bytes.
func (l VertexLayout) Stride() int {
	var stride int
	for _, attr := range l.Attrs {
		stride += attr.Size()
	}

	return stride
}

type DepthState struct {
	Compare      CompareFunc
	WriteEnabled bool
}

type PipelineDesc struct {
	Label     string
	Shader    ShaderID
	Layout    VertexLayout
	IndexType IndexType
	CullMode  CullMode
	Depth     DepthState
	Blend     BlendMode

	// format of the color target this pipeline renders to
	ColorFormat PixelFormat
}

// PassDesc describes an offscreen pass rendering into Color and Depth.
type PassDesc struct {
	Label string
	Color ImageID
	Depth ImageID
}

type PassAction struct {
	Load  LoadAction
	Color Color
}

// PassActionClear returns a PassAction that clears the color target to the given color.
func PassActionClear(color Color) PassAction {
	return PassAction{Load: LoadClear, Color: color}
}

type Bindings struct {
	VertexBuffer BufferID
	IndexBuffer  BufferID

	VertexImages   [MaxStageImages]ImageID
	FragmentImages [MaxStageImages]ImageID
}
