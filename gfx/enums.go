package gfx

//go:generate stringer -type=Filter,Wrap,VertexFormat,IndexType,ShaderStage -output=enums_string.go

// Filter selects how an image is sampled. The zero value is FilterLinear.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap selects how texture coordinates outside of [0, 1] are resolved.
// The zero value is WrapClampToEdge.
type Wrap int

const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
	WrapMirroredRepeat
)

type VertexFormat int

const (
	VertexFormatInvalid VertexFormat = iota
	VertexFormatFloat2
	VertexFormatFloat3
	VertexFormatFloat4
	// four unsigned bytes, normalized to [0, 1] in the shader
	VertexFormatUByte4N
)

// Size returns the number of bytes one attribute of this format occupies.
func (f VertexFormat) Size() int {
	switch f {
	case VertexFormatFloat2:
		return 8
	case VertexFormatFloat3:
		return 12
	case VertexFormatFloat4:
		return 16
	case VertexFormatUByte4N:
		return 4
	default:
		return 0
	}
}

type IndexType int

const (
	IndexNone IndexType = iota
	IndexUint16
	IndexUint32
)

func (t IndexType) Size() int {
	switch t {
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	default:
		return 0
	}
}

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

type CompareFunc int

const (
	CompareAlways CompareFunc = iota
	CompareLess
	CompareLessEqual
)

type BlendMode int

const (
	BlendNone BlendMode = iota

	// BlendAlpha mixes source and destination by the source alpha:
	// src * srcAlpha + dst * (1 - srcAlpha)
	BlendAlpha
)

// PixelFormat of an image or render target. For images PixelFormatDefault
// means PixelFormatRGBA8, for a pipeline's color target it means the format
// of the default framebuffer.
type PixelFormat int

const (
	PixelFormatDefault PixelFormat = iota
	PixelFormatRGBA8
	PixelFormatBGRA8
	PixelFormatDepth
)

type BufferType int

const (
	BufferVertex BufferType = iota
	BufferIndex
)

// Usage describes whether the content of a resource may change after creation.
type Usage int

const (
	UsageImmutable Usage = iota
	UsageStream
)

// LoadAction decides what happens to the color attachment at the start of a pass.
type LoadAction int

const (
	LoadClear LoadAction = iota
	LoadKeep
)
