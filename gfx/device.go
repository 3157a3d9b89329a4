package gfx

// Device is the low level graphics api the wrapper types in this package
// build on. Resources are addressed by handles. Every handle returned by
// a Make call must be passed to the matching Destroy call exactly once.
//
// Calls between BeginPass and EndPass record drawing commands for the
// current frame. Errors during recording are kept by the Device and
// returned by Commit.
type Device interface {
	MakeBuffer(desc BufferDesc) (BufferID, error)
	UpdateBuffer(buf BufferID, data []byte) error
	DestroyBuffer(buf BufferID)

	MakeImage(desc ImageDesc) (ImageID, error)
	DestroyImage(img ImageID)

	MakeShader(desc ShaderDesc) (ShaderID, error)
	DestroyShader(shd ShaderID)

	MakePipeline(desc PipelineDesc) (PipelineID, error)
	DestroyPipeline(pip PipelineID)

	MakePass(desc PassDesc) (PassID, error)
	DestroyPass(pass PassID)

	// BeginDefaultPass starts a pass rendering to the window.
	BeginDefaultPass(action PassAction, width, height uint32)

	// BeginPass starts a pass rendering to an offscreen target.
	BeginPass(pass PassID, action PassAction)

	ApplyPipeline(pip PipelineID)
	ApplyBindings(bindings Bindings)

	// ApplyUniforms uploads data to the uniform block in slot of the
	// given stage of the current pipeline. The last upload within a
	// pass wins.
	ApplyUniforms(stage ShaderStage, slot int, data []byte)

	// Draw issues a draw call for count elements, starting at base.
	// If an index buffer is bound, elements are indices.
	Draw(base, count, instances uint32)

	EndPass()

	// Commit finishes the frame and presents it. It returns the first
	// error recorded since the previous Commit.
	Commit() error
}
