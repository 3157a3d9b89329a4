package gfx

// Handles identify resources owned by a Device. The zero value of
// every handle type is invalid and never returned by a successful Make call.
type (
	BufferID   uint32
	ImageID    uint32
	ShaderID   uint32
	PipelineID uint32
	PassID     uint32
)

func (id BufferID) Valid() bool   { return id != 0 }
func (id ImageID) Valid() bool    { return id != 0 }
func (id ShaderID) Valid() bool   { return id != 0 }
func (id PipelineID) Valid() bool { return id != 0 }
func (id PassID) Valid() bool     { return id != 0 }
