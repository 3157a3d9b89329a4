package gfx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Resources of a shader are bound by a fixed convention:
//
//	@group(0) @binding(stage * MaxStageUniformBlocks + slot)  uniform blocks
//	@group(1 + stage) @binding(2 * slot)                      texture of image slot
//	@group(1 + stage) @binding(2 * slot + 1)                  sampler "<name>_smp" of image slot
const UniformGroup = 0

func UniformBinding(stage ShaderStage, slot int) uint32 {
	return uint32(int(stage)*MaxStageUniformBlocks + slot)
}

func ImageGroup(stage ShaderStage) uint32 {
	return 1 + uint32(stage)
}

func TextureBinding(slot int) uint32 {
	return uint32(2 * slot)
}

func SamplerBinding(slot int) uint32 {
	return uint32(2*slot + 1)
}

// SamplerName returns the name the sampler for the given image must have.
func SamplerName(image string) string {
	return image + "_smp"
}

type bindingKind int

const (
	bindingOther bindingKind = iota
	bindingUniform
	bindingTexture
	bindingSampler
)

type bindingDecl struct {
	group   uint32
	binding uint32
	kind    bindingKind
	name    string
}

// parseBindings lowers source to naga's IR and returns its global resource
// variables in declaration order.
func parseBindings(source string) ([]bindingDecl, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	ast, err := naga.Parse(source)
	if err != nil {
		return nil, err
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, err
	}

	var decls []bindingDecl
	for _, global := range module.GlobalVariables {
		if global.Binding == nil {
			continue
		}

		decls = append(decls, bindingDecl{
			group:   global.Binding.Group,
			binding: global.Binding.Binding,
			kind:    kindOf(module, global),
			name:    global.Name,
		})
	}

	return decls, nil
}

func kindOf(module *ir.Module, global ir.GlobalVariable) bindingKind {
	if global.Space == ir.SpaceUniform {
		return bindingUniform
	}

	if int(global.Type) >= len(module.Types) {
		return bindingOther
	}

	switch module.Types[global.Type].Inner.(type) {
	case ir.ImageType:
		return bindingTexture
	case ir.SamplerType:
		return bindingSampler
	default:
		return bindingOther
	}
}

// CheckShaderBindings verifies that the resource declarations in the WGSL
// sources of desc match the uniform blocks and images of desc: every
// declared uniform or texture must be named in desc, at the binding its
// slot dictates, and every name in desc must be declared in the source.
// A mismatch is reported as a *ShaderError.
func CheckShaderBindings(desc ShaderDesc) error {
	for _, stage := range []ShaderStage{StageVertex, StageFragment} {
		if err := checkStageBindings(desc.Label, stage, desc.Stage(stage)); err != nil {
			return err
		}
	}

	return nil
}

func checkStageBindings(label string, stage ShaderStage, sd *ShaderStageDesc) error {
	fail := func(name string, err error) error {
		return &ShaderError{Label: label, Stage: stage, Name: name, Err: err}
	}

	if len(sd.UniformBlocks) > MaxStageUniformBlocks {
		return fail("", fmt.Errorf("%w: too many uniform blocks (%d)", ErrBindingMismatch, len(sd.UniformBlocks)))
	}

	if len(sd.Images) > MaxStageImages {
		return fail("", fmt.Errorf("%w: too many images (%d)", ErrBindingMismatch, len(sd.Images)))
	}

	seenUniforms := make([]bool, len(sd.UniformBlocks))
	seenTextures := make([]bool, len(sd.Images))
	seenSamplers := make([]bool, len(sd.Images))

	imageSlot := func(name string) int {
		return slices.IndexFunc(sd.Images, func(img ShaderImageDesc) bool { return img.Name == name })
	}

	decls, err := parseBindings(sd.Source)
	if err != nil {
		return fail("", fmt.Errorf("parse wgsl: %w", err))
	}

	for _, decl := range decls {
		switch decl.kind {
		case bindingUniform:
			slot := slices.IndexFunc(sd.UniformBlocks, func(ub UniformBlockDesc) bool { return ub.Name == decl.name })
			if slot < 0 {
				return fail(decl.name, ErrUndeclaredUniform)
			}

			if decl.group != UniformGroup || decl.binding != UniformBinding(stage, slot) {
				return fail(decl.name, fmt.Errorf("%w: declared at @group(%d) @binding(%d), slot %d expects @group(%d) @binding(%d)",
					ErrBindingMismatch, decl.group, decl.binding, slot, UniformGroup, UniformBinding(stage, slot)))
			}

			seenUniforms[slot] = true

		case bindingTexture:
			slot := imageSlot(decl.name)
			if slot < 0 {
				return fail(decl.name, ErrUndeclaredImage)
			}

			if decl.group != ImageGroup(stage) || decl.binding != TextureBinding(slot) {
				return fail(decl.name, fmt.Errorf("%w: declared at @group(%d) @binding(%d), slot %d expects @group(%d) @binding(%d)",
					ErrBindingMismatch, decl.group, decl.binding, slot, ImageGroup(stage), TextureBinding(slot)))
			}

			seenTextures[slot] = true

		case bindingSampler:
			slot := imageSlot(strings.TrimSuffix(decl.name, "_smp"))
			if slot < 0 || !strings.HasSuffix(decl.name, "_smp") {
				return fail(decl.name, ErrUndeclaredImage)
			}

			if decl.group != ImageGroup(stage) || decl.binding != SamplerBinding(slot) {
				return fail(decl.name, fmt.Errorf("%w: declared at @group(%d) @binding(%d), slot %d expects @group(%d) @binding(%d)",
					ErrBindingMismatch, decl.group, decl.binding, slot, ImageGroup(stage), SamplerBinding(slot)))
			}

			seenSamplers[slot] = true
		}
	}

	for slot, seen := range seenUniforms {
		if !seen {
			return fail(sd.UniformBlocks[slot].Name, ErrMissingDeclaration)
		}
	}

	for slot, img := range sd.Images {
		if !seenTextures[slot] {
			return fail(img.Name, ErrMissingDeclaration)
		}

		if !seenSamplers[slot] {
			return fail(SamplerName(img.Name), ErrMissingDeclaration)
		}
	}

	return nil
}
