// Package gfxtest provides a fake gfx.Device that tracks resource lifetimes
// and records drawing commands.
package gfxtest

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/learnwgpu/gfx"
)

type Kind int

const (
	KindBuffer Kind = iota
	KindImage
	KindShader
	KindPipeline
	KindPass
)

var kindNames = [...]string{"buffer", "image", "shader", "pipeline", "pass"}

func (k Kind) String() string {
	return kindNames[k]
}

type DrawCall struct {
	Pipeline  gfx.PipelineID
	Bindings  gfx.Bindings
	Base      uint32
	Count     uint32
	Instances uint32
}

type UniformUpload struct {
	Pipeline gfx.PipelineID
	Stage    gfx.ShaderStage
	Slot     int
	Data     []byte
}

type PassRecord struct {
	// zero for the default pass
	Pass   gfx.PassID
	Action gfx.PassAction
	Width  uint32
	Height uint32
}

// Device is a fake gfx.Device. Handles are allocated from a single counter,
// so handles of different kinds never collide.
type Device struct {
	// Fail makes the next Make call of a kind return the given error.
	Fail map[Kind]error

	made      map[Kind]int
	destroyed map[Kind]int
	live      map[Kind]map[uint32]bool

	// number of Destroy calls for handles that were not live
	DoubleDestroys int

	Buffers   map[gfx.BufferID][]byte
	Images    map[gfx.ImageID]gfx.ImageDesc
	Shaders   map[gfx.ShaderID]gfx.ShaderDesc
	Pipelines map[gfx.PipelineID]gfx.PipelineDesc

	Passes   []PassRecord
	Draws    []DrawCall
	Uniforms []UniformUpload
	Commits  int

	nextID   uint32
	inPass   bool
	pipeline gfx.PipelineID
	bindings gfx.Bindings
	err      error
}

var _ gfx.Device = (*Device)(nil)

func New() *Device {
	d := &Device{
		Fail:      map[Kind]error{},
		made:      map[Kind]int{},
		destroyed: map[Kind]int{},
		live:      map[Kind]map[uint32]bool{},
		Buffers:   map[gfx.BufferID][]byte{},
		Images:    map[gfx.ImageID]gfx.ImageDesc{},
		Shaders:   map[gfx.ShaderID]gfx.ShaderDesc{},
		Pipelines: map[gfx.PipelineID]gfx.PipelineDesc{},
	}

	for kind := range kindNames {
		d.live[Kind(kind)] = map[uint32]bool{}
	}

	return d
}

// Made returns the number of successful Make calls for kind.
func (d *Device) Made(kind Kind) int {
	return d.made[kind]
}

// Destroyed returns the number of Destroy calls for live handles of kind.
func (d *Device) Destroyed(kind Kind) int {
	return d.destroyed[kind]
}

// Live returns the number of handles of kind that were made but not destroyed.
func (d *Device) Live(kind Kind) int {
	return len(d.live[kind])
}

// Leaks returns the total number of live handles of all kinds.
func (d *Device) Leaks() int {
	var total int
	for _, handles := range d.live {
		total += len(handles)
	}

	return total
}

func (d *Device) IsLive(kind Kind, id uint32) bool {
	return d.live[kind][id]
}

func (d *Device) make(kind Kind) (uint32, error) {
	if err := d.Fail[kind]; err != nil {
		delete(d.Fail, kind)
		return 0, err
	}

	d.nextID += 1
	d.made[kind] += 1
	d.live[kind][d.nextID] = true

	return d.nextID, nil
}

func (d *Device) destroy(kind Kind, id uint32) bool {
	if !d.live[kind][id] {
		d.DoubleDestroys += 1
		return false
	}

	delete(d.live[kind], id)
	d.destroyed[kind] += 1

	return true
}

func (d *Device) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Device) MakeBuffer(desc gfx.BufferDesc) (gfx.BufferID, error) {
	size := desc.Size
	if desc.Usage == gfx.UsageImmutable {
		if len(desc.Data) == 0 {
			return 0, errors.New("immutable buffer without data")
		}

		size = max(size, len(desc.Data))
	}

	if size == 0 {
		return 0, errors.New("buffer of size zero")
	}

	id, err := d.make(KindBuffer)
	if err != nil {
		return 0, err
	}

	content := make([]byte, size)
	copy(content, desc.Data)

	d.Buffers[gfx.BufferID(id)] = content

	return gfx.BufferID(id), nil
}

func (d *Device) UpdateBuffer(buf gfx.BufferID, data []byte) error {
	content, ok := d.Buffers[buf]
	if !ok || !d.live[KindBuffer][uint32(buf)] {
		return fmt.Errorf("update unknown buffer %d", buf)
	}

	if len(data) > len(content) {
		return fmt.Errorf("update of %d bytes overflows buffer of %d bytes", len(data), len(content))
	}

	copy(content, data)

	return nil
}

func (d *Device) DestroyBuffer(buf gfx.BufferID) {
	if d.destroy(KindBuffer, uint32(buf)) {
		delete(d.Buffers, buf)
	}
}

func (d *Device) MakeImage(desc gfx.ImageDesc) (gfx.ImageID, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return 0, fmt.Errorf("image of size %dx%d", desc.Width, desc.Height)
	}

	if !desc.RenderTarget && len(desc.Data) != int(desc.Width*desc.Height*4) {
		return 0, fmt.Errorf("image data of %d bytes for %dx%d pixels", len(desc.Data), desc.Width, desc.Height)
	}

	id, err := d.make(KindImage)
	if err != nil {
		return 0, err
	}

	d.Images[gfx.ImageID(id)] = desc

	return gfx.ImageID(id), nil
}

func (d *Device) DestroyImage(img gfx.ImageID) {
	if d.destroy(KindImage, uint32(img)) {
		delete(d.Images, img)
	}
}

func (d *Device) MakeShader(desc gfx.ShaderDesc) (gfx.ShaderID, error) {
	id, err := d.make(KindShader)
	if err != nil {
		return 0, err
	}

	d.Shaders[gfx.ShaderID(id)] = desc

	return gfx.ShaderID(id), nil
}

func (d *Device) DestroyShader(shd gfx.ShaderID) {
	if d.destroy(KindShader, uint32(shd)) {
		delete(d.Shaders, shd)
	}
}

func (d *Device) MakePipeline(desc gfx.PipelineDesc) (gfx.PipelineID, error) {
	if !d.live[KindShader][uint32(desc.Shader)] {
		return 0, fmt.Errorf("pipeline references unknown shader %d", desc.Shader)
	}

	id, err := d.make(KindPipeline)
	if err != nil {
		return 0, err
	}

	d.Pipelines[gfx.PipelineID(id)] = desc

	return gfx.PipelineID(id), nil
}

func (d *Device) DestroyPipeline(pip gfx.PipelineID) {
	if d.destroy(KindPipeline, uint32(pip)) {
		delete(d.Pipelines, pip)
	}
}

func (d *Device) MakePass(desc gfx.PassDesc) (gfx.PassID, error) {
	if !d.live[KindImage][uint32(desc.Color)] {
		return 0, fmt.Errorf("pass references unknown color image %d", desc.Color)
	}

	if desc.Depth.Valid() && !d.live[KindImage][uint32(desc.Depth)] {
		return 0, fmt.Errorf("pass references unknown depth image %d", desc.Depth)
	}

	id, err := d.make(KindPass)
	if err != nil {
		return 0, err
	}

	return gfx.PassID(id), nil
}

func (d *Device) DestroyPass(pass gfx.PassID) {
	d.destroy(KindPass, uint32(pass))
}

func (d *Device) BeginDefaultPass(action gfx.PassAction, width, height uint32) {
	d.begin(PassRecord{Action: action, Width: width, Height: height})
}

func (d *Device) BeginPass(pass gfx.PassID, action gfx.PassAction) {
	if !d.live[KindPass][uint32(pass)] {
		d.fail(fmt.Errorf("begin unknown pass %d", pass))
		return
	}

	d.begin(PassRecord{Pass: pass, Action: action})
}

func (d *Device) begin(rec PassRecord) {
	if d.inPass {
		d.fail(errors.New("begin pass inside of pass"))
		return
	}

	d.inPass = true
	d.pipeline = 0
	d.bindings = gfx.Bindings{}
	d.Passes = append(d.Passes, rec)
}

func (d *Device) ApplyPipeline(pip gfx.PipelineID) {
	if !d.live[KindPipeline][uint32(pip)] {
		d.fail(fmt.Errorf("apply unknown pipeline %d", pip))
		return
	}

	d.pipeline = pip
}

func (d *Device) ApplyBindings(bindings gfx.Bindings) {
	d.bindings = bindings
}

func (d *Device) ApplyUniforms(stage gfx.ShaderStage, slot int, data []byte) {
	if !d.pipeline.Valid() {
		d.fail(errors.New("apply uniforms without pipeline"))
		return
	}

	d.Uniforms = append(d.Uniforms, UniformUpload{
		Pipeline: d.pipeline,
		Stage:    stage,
		Slot:     slot,
		Data:     append([]byte(nil), data...),
	})
}

func (d *Device) Draw(base, count, instances uint32) {
	switch {
	case !d.inPass:
		d.fail(errors.New("draw outside of pass"))
		return

	case !d.pipeline.Valid():
		d.fail(errors.New("draw without pipeline"))
		return
	}

	d.Draws = append(d.Draws, DrawCall{
		Pipeline:  d.pipeline,
		Bindings:  d.bindings,
		Base:      base,
		Count:     count,
		Instances: instances,
	})
}

func (d *Device) EndPass() {
	if !d.inPass {
		d.fail(errors.New("end pass outside of pass"))
	}

	d.inPass = false
}

func (d *Device) Commit() error {
	d.Commits += 1

	if d.inPass {
		d.fail(errors.New("commit inside of pass"))
		d.inPass = false
	}

	err := d.err
	d.err = nil

	return err
}
