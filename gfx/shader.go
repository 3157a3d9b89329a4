package gfx

import (
	"fmt"
	"log/slog"
)

// Shader owns a shader program and the pipeline built from it.
type Shader struct {
	dev      Device
	label    string
	shader   ShaderID
	pipeline PipelineID
}

// NewShader creates the shader program described by desc and a pipeline
// using it. The Shader field of pip is set by NewShader.
//
// Uniform block and image names in desc must match the names in the
// WGSL sources exactly, and their order must match the bindings used in
// the sources. Violations are reported as a *ShaderError before
// anything is created on the device.
func NewShader(dev Device, desc ShaderDesc, pip PipelineDesc) (*Shader, error) {
	if err := CheckShaderBindings(desc); err != nil {
		return nil, err
	}

	shader, err := dev.MakeShader(desc)
	if err != nil {
		return nil, fmt.Errorf("make shader %q: %w", desc.Label, err)
	}

	pip.Shader = shader

	if pip.Label == "" {
		pip.Label = desc.Label
	}

	pipeline, err := dev.MakePipeline(pip)
	if err != nil {
		dev.DestroyShader(shader)
		return nil, fmt.Errorf("make pipeline %q: %w", pip.Label, err)
	}

	slog.Debug("Created shader", slog.String("label", desc.Label))

	s := &Shader{
		dev:      dev,
		label:    desc.Label,
		shader:   shader,
		pipeline: pipeline,
	}

	return watchRelease(s), nil
}

// Apply binds the pipeline for the following draw calls.
func (s *Shader) Apply() {
	s.dev.ApplyPipeline(s.pipeline)
}

func (s *Shader) Label() string {
	return s.label
}

func (s *Shader) Pipeline() PipelineID {
	return s.pipeline
}

// Release destroys the pipeline and the shader program. Calling Release
// more than once has no effect.
func (s *Shader) Release() {
	if s.pipeline.Valid() {
		s.dev.DestroyPipeline(s.pipeline)
		s.pipeline = 0
	}

	if s.shader.Valid() {
		s.dev.DestroyShader(s.shader)
		s.shader = 0
	}

	unwatchRelease(s)
}

func (s *Shader) released() bool {
	return !s.shader.Valid()
}
