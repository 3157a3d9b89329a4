package gfx

import (
	"errors"
	"fmt"
)

var ErrUndeclaredUniform = errors.New("uniform not declared in shader description")
var ErrUndeclaredImage = errors.New("image not declared in shader description")
var ErrBindingMismatch = errors.New("binding does not match slot")
var ErrMissingDeclaration = errors.New("declaration missing in shader source")

var ErrPixelSize = errors.New("pixel buffer does not match image size")

// ShaderError reports a mismatch between a shader description and the
// declarations found in the shader source.
type ShaderError struct {
	Label string
	Stage ShaderStage
	Name  string
	Err   error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("shader %q, stage %s, name %q: %s", e.Label, e.Stage, e.Name, e.Err)
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when an image could not be read or decoded.
type DecodeError struct {
	// Path of the image, empty if decoded from memory.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %s", e.Err)
	}

	return fmt.Sprintf("decode image %q: %s", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
