package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/learnwgpu/gfx"
)

type gpuBuffer struct {
	buf   *wgpu.Buffer
	size  int
	usage gfx.Usage
}

type gpuImage struct {
	texture *Texture
	desc    gfx.ImageDesc
	sampler wgpu.SamplerDescriptor
}

type gpuShader struct {
	vertex   *wgpu.ShaderModule
	fragment *wgpu.ShaderModule
	desc     gfx.ShaderDesc
}

func (s *gpuShader) Release() {
	if s.vertex != nil {
		s.vertex.Release()
		s.vertex = nil
	}

	if s.fragment != nil {
		s.fragment.Release()
		s.fragment = nil
	}
}

type gpuPass struct {
	label string
	color gfx.ImageID
	depth gfx.ImageID
}

// Device implements gfx.Device on top of webgpu. All rendering happens on
// the surface of the View or on offscreen passes. Every pass is recorded
// into its own command buffer and submitted when the pass ends, uniform
// uploads are therefore visible to the pass they were applied in.
type Device struct {
	ctx  *Context
	view *View

	buffers   pool[*gpuBuffer]
	images    pool[*gpuImage]
	shaders   pool[*gpuShader]
	pipelines pool[*cachedPipeline]
	passes    pool[*gpuPass]

	samplers   *samplerCache
	bindGroups *bindGroupCache

	// acquired surface of the current frame
	surface     *wgpu.Texture
	surfaceView *wgpu.TextureView

	// state of the current pass
	encoder    *wgpu.CommandEncoder
	renderPass *wgpu.RenderPassEncoder
	pipelineID gfx.PipelineID
	pipeline   *cachedPipeline
	indexed    bool

	// first error since the last Commit
	err error
}

var _ gfx.Device = (*Device)(nil)

func NewDevice(view *View) *Device {
	return &Device{
		ctx:        view.Context,
		view:       view,
		buffers:    newPool[*gpuBuffer]("buffer"),
		images:     newPool[*gpuImage]("image"),
		shaders:    newPool[*gpuShader]("shader"),
		pipelines:  newPool[*cachedPipeline]("pipeline"),
		passes:     newPool[*gpuPass]("pass"),
		samplers:   newSamplerCache(view.Device),
		bindGroups: newBindGroupCache(),
	}
}

func (d *Device) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Device) MakeBuffer(desc gfx.BufferDesc) (gfx.BufferID, error) {
	usage := wgpu.BufferUsageVertex
	if desc.Type == gfx.BufferIndex {
		usage = wgpu.BufferUsageIndex
	}

	usage |= wgpu.BufferUsageCopyDst

	var buf *wgpu.Buffer
	var err error

	size := desc.Size

	switch desc.Usage {
	case gfx.UsageImmutable:
		if len(desc.Data) == 0 {
			return 0, errors.New("immutable buffer requires data")
		}

		size = len(desc.Data)

		buf, err = d.ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    desc.Label,
			Contents: padTo4(desc.Data),
			Usage:    usage,
		})

	default:
		if size <= 0 {
			return 0, fmt.Errorf("stream buffer of size %d", size)
		}

		buf, err = d.ctx.CreateBuffer(&wgpu.BufferDescriptor{
			Label: desc.Label,
			Size:  uint64(alignTo(size, 4)),
			Usage: usage,
		})
	}

	if err != nil {
		return 0, fmt.Errorf("create buffer %q: %w", desc.Label, err)
	}

	id := d.buffers.add(&gpuBuffer{buf: buf, size: size, usage: desc.Usage})

	return gfx.BufferID(id), nil
}

func (d *Device) UpdateBuffer(id gfx.BufferID, data []byte) error {
	b, ok := d.buffers.get(uint32(id))
	if !ok {
		return fmt.Errorf("update unknown buffer %d", id)
	}

	if b.usage != gfx.UsageStream {
		return fmt.Errorf("update immutable buffer %d", id)
	}

	if len(data) > b.size {
		return fmt.Errorf("update of %d bytes overflows buffer of %d bytes", len(data), b.size)
	}

	if err := d.ctx.Queue.WriteBuffer(b.buf, 0, padTo4(data)); err != nil {
		return fmt.Errorf("write buffer: %w", err)
	}

	return nil
}

func (d *Device) DestroyBuffer(id gfx.BufferID) {
	if b, ok := d.buffers.remove(uint32(id)); ok {
		b.buf.Release()
	}
}

func (d *Device) MakeImage(desc gfx.ImageDesc) (gfx.ImageID, error) {
	format := toTextureFormat(desc.Format, wgpu.TextureFormatRGBA8Unorm)

	usage := wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst
	if desc.RenderTarget {
		usage |= wgpu.TextureUsageRenderAttachment
	}

	if format == depthFormat {
		usage = wgpu.TextureUsageRenderAttachment
	}

	texture, err := NewTextureFromDesc(d.ctx, &wgpu.TextureDescriptor{
		Label:     desc.Label,
		Usage:     usage,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        format,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return 0, fmt.Errorf("create texture %q: %w", desc.Label, err)
	}

	if !desc.RenderTarget {
		if err := texture.WritePixels(d.ctx, desc.Data); err != nil {
			texture.Release()
			return 0, fmt.Errorf("upload texture %q: %w", desc.Label, err)
		}
	}

	// pixels are on the gpu now
	desc.Data = nil

	id := d.images.add(&gpuImage{
		texture: texture,
		desc:    desc,
		sampler: toSamplerDescriptor(desc),
	})

	slog.Debug("Created image",
		slog.String("label", desc.Label),
		slog.Int("width", int(desc.Width)),
		slog.Int("height", int(desc.Height)),
		slog.String("filter", desc.Filter.String()),
		slog.String("wrap", desc.Wrap.String()),
	)

	return gfx.ImageID(id), nil
}

func (d *Device) DestroyImage(id gfx.ImageID) {
	img, ok := d.images.remove(uint32(id))
	if !ok {
		return
	}

	d.bindGroups.RemoveIf(func(key bindGroupKey) bool { return key.usesImage(id) })

	img.texture.Release()
}

func (d *Device) MakeShader(desc gfx.ShaderDesc) (gfx.ShaderID, error) {
	shd := &gpuShader{desc: desc}

	guard := NewReleaseGuard(shd)
	defer guard.Release()

	var err error

	shd.vertex, err = d.createShaderModule(desc.Label+".vs", desc.Vertex.Source)
	if err != nil {
		return 0, err
	}

	shd.fragment, err = d.createShaderModule(desc.Label+".fs", desc.Fragment.Source)
	if err != nil {
		return 0, err
	}

	guard.Keep()

	return gfx.ShaderID(d.shaders.add(shd)), nil
}

func (d *Device) createShaderModule(label, source string) (*wgpu.ShaderModule, error) {
	module, err := d.ctx.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})

	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", label, err)
	}

	return module, nil
}

func (d *Device) DestroyShader(id gfx.ShaderID) {
	if shd, ok := d.shaders.remove(uint32(id)); ok {
		shd.Release()
	}
}

func (d *Device) MakePipeline(desc gfx.PipelineDesc) (id gfx.PipelineID, err error) {
	shd, ok := d.shaders.get(uint32(desc.Shader))
	if !ok {
		return 0, fmt.Errorf("unknown shader %d", desc.Shader)
	}

	slog.Info(
		"Create RenderPipeline",
		slog.String("label", desc.Label),
		slog.String("indexType", desc.IndexType.String()),
	)

	pc := &cachedPipeline{
		indexFormat: toIndexFormat(desc.IndexType),
	}

	defer func() {
		if err != nil {
			pc.Release()
		}
	}()

	if err := d.createBindGroupLayouts(pc, desc.Label, &shd.desc); err != nil {
		return 0, err
	}

	if err := d.createUniformBindings(pc, desc.Label, &shd.desc); err != nil {
		return 0, err
	}

	pipelineLayout, err := d.ctx.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            desc.Label,
		BindGroupLayouts: pc.layouts[:],
	})
	if err != nil {
		return 0, fmt.Errorf("create pipeline layout: %w", err)
	}

	defer pipelineLayout.Release()

	var attributes []wgpu.VertexAttribute
	var offset uint64

	for location, format := range desc.Layout.Attrs {
		attributes = append(attributes, wgpu.VertexAttribute{
			Format:         toVertexFormat(format),
			Offset:         offset,
			ShaderLocation: uint32(location),
		})

		offset += uint64(format.Size())
	}

	var vertexBuffers []wgpu.VertexBufferLayout
	if len(attributes) > 0 {
		vertexBuffers = append(vertexBuffers, wgpu.VertexBufferLayout{
			ArrayStride: uint64(desc.Layout.Stride()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes:  attributes,
		})
	}

	pc.Pipeline, err = d.ctx.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shd.vertex,
			EntryPoint: entryPoint(shd.desc.Vertex, "vs_main"),
			Buffers:    vertexBuffers,
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  toCullMode(desc.CullMode),
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: desc.Depth.WriteEnabled,
			DepthCompare:      toCompareFunction(desc.Depth.Compare),
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shd.fragment,
			EntryPoint: entryPoint(shd.desc.Fragment, "fs_main"),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    toTextureFormat(desc.ColorFormat, d.view.Format()),
					Blend:     toBlendState(desc.Blend),
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
	})

	if err != nil {
		return 0, fmt.Errorf("create render pipeline %q: %w", desc.Label, err)
	}

	return gfx.PipelineID(d.pipelines.add(pc)), nil
}

func entryPoint(stage gfx.ShaderStageDesc, fallback string) string {
	if stage.EntryPoint == "" {
		return fallback
	}

	return stage.EntryPoint
}

func (d *Device) createBindGroupLayouts(pc *cachedPipeline, label string, desc *gfx.ShaderDesc) error {
	var uniformEntries []wgpu.BindGroupLayoutEntry

	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		for slot, block := range desc.Stage(stage).UniformBlocks {
			uniformEntries = append(uniformEntries, wgpu.BindGroupLayoutEntry{
				Binding:    gfx.UniformBinding(stage, slot),
				Visibility: toShaderStage(stage),
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(block.Size),
				},
			})
		}
	}

	layout, err := d.ctx.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label + ".Uniforms",
		Entries: uniformEntries,
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}

	pc.layouts[gfx.UniformGroup] = layout

	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		images := desc.Stage(stage).Images

		var entries []wgpu.BindGroupLayoutEntry
		for slot := range images {
			entries = append(entries,
				wgpu.BindGroupLayoutEntry{
					Binding:    gfx.TextureBinding(slot),
					Visibility: toShaderStage(stage),
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeFloat,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
				wgpu.BindGroupLayoutEntry{
					Binding:    gfx.SamplerBinding(slot),
					Visibility: toShaderStage(stage),
					Sampler: wgpu.SamplerBindingLayout{
						Type: wgpu.SamplerBindingTypeFiltering,
					},
				},
			)
		}

		layout, err := d.ctx.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s.Images.%s", label, stage),
			Entries: entries,
		})
		if err != nil {
			return fmt.Errorf("create image bind group layout: %w", err)
		}

		pc.layouts[gfx.ImageGroup(stage)] = layout
		pc.imageCounts[stage] = len(images)
	}

	return nil
}

func (d *Device) createUniformBindings(pc *cachedPipeline, label string, desc *gfx.ShaderDesc) error {
	var entries []wgpu.BindGroupEntry

	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		for slot, block := range desc.Stage(stage).UniformBlocks {
			buf, err := d.ctx.CreateBuffer(&wgpu.BufferDescriptor{
				Label: fmt.Sprintf("%s.%s", label, block.Name),
				Size:  uint64(alignTo(max(block.Size, 16), 16)),
				Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			})
			if err != nil {
				return fmt.Errorf("create uniform buffer %q: %w", block.Name, err)
			}

			pc.uniforms[stage] = append(pc.uniforms[stage], buf)

			entries = append(entries, wgpu.BindGroupEntry{
				Binding: gfx.UniformBinding(stage, slot),
				Buffer:  buf,
				Size:    wgpu.WholeSize,
			})
		}
	}

	var err error

	pc.uniformGroup, err = d.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label + ".Uniforms",
		Layout:  pc.layouts[gfx.UniformGroup],
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group: %w", err)
	}

	// stages without images still need a bind group for their group index
	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		if pc.imageCounts[stage] > 0 {
			continue
		}

		pc.emptyGroups[stage], err = d.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("%s.Images.%s", label, stage),
			Layout: pc.layouts[gfx.ImageGroup(stage)],
		})
		if err != nil {
			return fmt.Errorf("create empty bind group: %w", err)
		}
	}

	return nil
}

func (d *Device) DestroyPipeline(id gfx.PipelineID) {
	pc, ok := d.pipelines.remove(uint32(id))
	if !ok {
		return
	}

	d.bindGroups.RemoveIf(func(key bindGroupKey) bool { return key.pipeline == id })

	pc.Release()
}

func (d *Device) MakePass(desc gfx.PassDesc) (gfx.PassID, error) {
	color, ok := d.images.get(uint32(desc.Color))
	if !ok || !color.desc.RenderTarget {
		return 0, fmt.Errorf("pass %q: color image %d is not a render target", desc.Label, desc.Color)
	}

	if desc.Depth.Valid() {
		depth, ok := d.images.get(uint32(desc.Depth))
		if !ok || depth.texture.Format() != depthFormat {
			return 0, fmt.Errorf("pass %q: image %d is not a depth target", desc.Label, desc.Depth)
		}

		if depth.desc.Width != color.desc.Width || depth.desc.Height != color.desc.Height {
			return 0, fmt.Errorf("pass %q: depth and color size differ", desc.Label)
		}
	}

	id := d.passes.add(&gpuPass{
		label: desc.Label,
		color: desc.Color,
		depth: desc.Depth,
	})

	return gfx.PassID(id), nil
}

func (d *Device) DestroyPass(id gfx.PassID) {
	d.passes.remove(uint32(id))
}

func (d *Device) BeginDefaultPass(action gfx.PassAction, width, height uint32) {
	if d.surface == nil {
		surface, err := d.view.Surface.GetCurrentTexture()
		if err != nil {
			d.fail(fmt.Errorf("get current texture: %w", err))
			return
		}

		surfaceView, err := surface.CreateView(nil)
		if err != nil {
			surface.Release()
			d.fail(fmt.Errorf("create surface view: %w", err))
			return
		}

		d.surface = surface
		d.surfaceView = surfaceView
	}

	surfaceWidth, surfaceHeight := d.view.Size()

	target := RenderTarget{
		View:   d.surfaceView,
		Depth:  d.view.DepthView(),
		Format: d.view.Format(),
		Width:  min(width, surfaceWidth),
		Height: min(height, surfaceHeight),
	}

	d.beginPass("DefaultPass", target, action)
}

func (d *Device) BeginPass(id gfx.PassID, action gfx.PassAction) {
	pass, ok := d.passes.get(uint32(id))
	if !ok {
		d.fail(fmt.Errorf("begin unknown pass %d", id))
		return
	}

	color, ok := d.images.get(uint32(pass.color))
	if !ok {
		d.fail(fmt.Errorf("pass %q: color image was destroyed", pass.label))
		return
	}

	target := RenderTarget{
		View:   color.texture.View(),
		Format: color.texture.Format(),
		Width:  color.desc.Width,
		Height: color.desc.Height,
	}

	if pass.depth.Valid() {
		depth, ok := d.images.get(uint32(pass.depth))
		if !ok {
			d.fail(fmt.Errorf("pass %q: depth image was destroyed", pass.label))
			return
		}

		target.Depth = depth.texture.View()
	}

	d.beginPass(pass.label, target, action)
}

func (d *Device) beginPass(label string, target RenderTarget, action gfx.PassAction) {
	if d.renderPass != nil {
		d.fail(errors.New("begin pass inside of pass"))
		return
	}

	encoder, err := d.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		d.fail(fmt.Errorf("create command encoder: %w", err))
		return
	}

	var clear *wgpu.Color
	if action.Load == gfx.LoadClear {
		color := toClearColor(action.Color)
		clear = &color
	}

	d.encoder = encoder
	d.renderPass = encoder.BeginRenderPass(target.passDescriptor(label, clear))
	d.renderPass.SetViewport(0, 0, float32(target.Width), float32(target.Height), 0, 1)

	d.pipelineID = 0
	d.pipeline = nil
	d.indexed = false
}

func (d *Device) ApplyPipeline(id gfx.PipelineID) {
	if d.renderPass == nil {
		d.fail(errors.New("apply pipeline outside of pass"))
		return
	}

	pc, ok := d.pipelines.get(uint32(id))
	if !ok {
		d.fail(fmt.Errorf("apply unknown pipeline %d", id))
		return
	}

	d.pipelineID = id
	d.pipeline = pc

	d.renderPass.SetPipeline(pc.Pipeline)
	d.renderPass.SetBindGroup(gfx.UniformGroup, pc.uniformGroup, nil)

	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		if group := pc.emptyGroups[stage]; group != nil {
			d.renderPass.SetBindGroup(gfx.ImageGroup(stage), group, nil)
		}
	}
}

func (d *Device) ApplyBindings(bindings gfx.Bindings) {
	if d.pipeline == nil {
		d.fail(errors.New("apply bindings without pipeline"))
		return
	}

	if buf, ok := d.buffers.get(uint32(bindings.VertexBuffer)); ok {
		d.renderPass.SetVertexBuffer(0, buf.buf, 0, wgpu.WholeSize)
	}

	d.indexed = false

	if buf, ok := d.buffers.get(uint32(bindings.IndexBuffer)); ok {
		if d.pipeline.indexFormat == wgpu.IndexFormatUndefined {
			d.fail(errors.New("index buffer bound to pipeline without index type"))
			return
		}

		d.renderPass.SetIndexBuffer(buf.buf, d.pipeline.indexFormat, 0, wgpu.WholeSize)
		d.indexed = true
	}

	stageImages := [stageCount][gfx.MaxStageImages]gfx.ImageID{
		bindings.VertexImages,
		bindings.FragmentImages,
	}

	for _, stage := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		count := d.pipeline.imageCounts[stage]
		if count == 0 {
			continue
		}

		// only the slots the shader declares take part in the bind group
		var images [gfx.MaxStageImages]gfx.ImageID
		copy(images[:count], stageImages[stage][:count])

		key := bindGroupKey{pipeline: d.pipelineID, stage: stage, images: images}

		group, err := d.bindGroups.Get(key, func() (*wgpu.BindGroup, error) {
			return d.createImageBindGroup(d.pipeline, stage, images[:count])
		})

		if err != nil {
			d.fail(err)
			return
		}

		d.renderPass.SetBindGroup(gfx.ImageGroup(stage), group, nil)
	}
}

func (d *Device) createImageBindGroup(pc *cachedPipeline, stage gfx.ShaderStage, images []gfx.ImageID) (*wgpu.BindGroup, error) {
	var entries []wgpu.BindGroupEntry

	for slot, id := range images {
		img, ok := d.images.get(uint32(id))
		if !ok {
			return nil, fmt.Errorf("no image bound to %s slot %d", stage, slot)
		}

		sampler, err := d.samplers.Get(img.sampler)
		if err != nil {
			return nil, err
		}

		entries = append(entries,
			wgpu.BindGroupEntry{
				Binding:     gfx.TextureBinding(slot),
				TextureView: img.texture.View(),
			},
			wgpu.BindGroupEntry{
				Binding: gfx.SamplerBinding(slot),
				Sampler: sampler,
			},
		)
	}

	return d.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  pc.GetBindGroupLayout(gfx.ImageGroup(stage)),
		Entries: entries,
	})
}

func (d *Device) ApplyUniforms(stage gfx.ShaderStage, slot int, data []byte) {
	if d.pipeline == nil {
		d.fail(errors.New("apply uniforms without pipeline"))
		return
	}

	buffers := d.pipeline.uniforms[stage]
	if slot < 0 || slot >= len(buffers) {
		d.fail(fmt.Errorf("no uniform block in %s slot %d", stage, slot))
		return
	}

	if err := d.ctx.Queue.WriteBuffer(buffers[slot], 0, padTo4(data)); err != nil {
		d.fail(fmt.Errorf("write uniforms: %w", err))
	}
}

func (d *Device) Draw(base, count, instances uint32) {
	if d.pipeline == nil {
		d.fail(errors.New("draw without pipeline"))
		return
	}

	if d.indexed {
		d.renderPass.DrawIndexed(count, instances, base, 0, 0)
	} else {
		d.renderPass.Draw(count, instances, base, 0)
	}
}

func (d *Device) EndPass() {
	if d.renderPass == nil {
		d.fail(errors.New("end pass outside of pass"))
		return
	}

	defer d.releasePass()

	if err := d.renderPass.End(); err != nil {
		d.fail(fmt.Errorf("end pass: %w", err))
		return
	}

	// must release pass before finishing the encoder
	d.renderPass.Release()
	d.renderPass = nil

	cmdBuffer, err := d.encoder.Finish(nil)
	if err != nil {
		d.fail(fmt.Errorf("finish command encoder: %w", err))
		return
	}

	defer cmdBuffer.Release()

	d.ctx.Queue.Submit(cmdBuffer)
}

func (d *Device) releasePass() {
	if d.renderPass != nil {
		d.renderPass.Release()
		d.renderPass = nil
	}

	if d.encoder != nil {
		d.encoder.Release()
		d.encoder = nil
	}

	d.pipeline = nil
	d.pipelineID = 0
}

func (d *Device) Commit() error {
	if d.renderPass != nil {
		d.fail(errors.New("commit inside of pass"))
		d.releasePass()
	}

	if d.surface != nil {
		d.view.Surface.Present()

		// we do not need to release the surface texture if present was successful
		d.surfaceView.Release()
		d.surfaceView = nil
		d.surface = nil
	}

	err := d.err
	d.err = nil

	return err
}

// Release destroys all resources that are still alive. Live resources
// at this point were leaked by their owners and are logged.
func (d *Device) Release() {
	d.releasePass()

	if d.surfaceView != nil {
		d.surfaceView.Release()
		d.surfaceView = nil
	}

	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}

	d.bindGroups.Purge()
	d.samplers.Purge()

	leaked := len(d.passes.drain())

	for _, pc := range d.pipelines.drain() {
		pc.Release()
		leaked++
	}

	for _, shd := range d.shaders.drain() {
		shd.Release()
		leaked++
	}

	for _, img := range d.images.drain() {
		img.texture.Release()
		leaked++
	}

	for _, buf := range d.buffers.drain() {
		buf.buf.Release()
		leaked++
	}

	if leaked > 0 {
		slog.Warn("Released leaked gpu resources", slog.Int("count", leaked))
	}
}
