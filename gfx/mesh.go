package gfx

import (
	"fmt"
	"unsafe"
)

type mesh struct {
	dev        Device
	bindings   Bindings
	indexCount int
}

func newMesh(dev Device, label string, vertices BufferDesc, indices []byte, indexCount int) (*mesh, error) {
	vertices.Label = label + ".Vertices"
	vertices.Type = BufferVertex

	vbuf, err := dev.MakeBuffer(vertices)
	if err != nil {
		return nil, fmt.Errorf("make vertex buffer: %w", err)
	}

	ibuf, err := dev.MakeBuffer(BufferDesc{
		Label: label + ".Indices",
		Type:  BufferIndex,
		Usage: UsageImmutable,
		Data:  indices,
	})
	if err != nil {
		dev.DestroyBuffer(vbuf)
		return nil, fmt.Errorf("make index buffer: %w", err)
	}

	m := &mesh{
		dev:        dev,
		indexCount: indexCount,
		bindings: Bindings{
			VertexBuffer: vbuf,
			IndexBuffer:  ibuf,
		},
	}

	return m, nil
}

// BindImage binds img to the fragment shader image slot. slot must be in
// [0, MaxStageImages), BindImage panics otherwise.
func (m *mesh) BindImage(img ImageID, slot int) {
	checkImageSlot(slot)
	m.bindings.FragmentImages[slot] = img
}

// BindVertexImage binds img to the vertex shader image slot, with the same
// slot range as BindImage.
func (m *mesh) BindVertexImage(img ImageID, slot int) {
	checkImageSlot(slot)
	m.bindings.VertexImages[slot] = img
}

func checkImageSlot(slot int) {
	if slot < 0 || slot >= MaxStageImages {
		panic(fmt.Sprintf("image slot %d out of range [0, %d)", slot, MaxStageImages))
	}
}

func (m *mesh) IndexCount() int {
	return m.indexCount
}

func (m *mesh) Bindings() Bindings {
	return m.bindings
}

// DrawAll applies the bindings of this mesh and draws all of its indices.
func (m *mesh) DrawAll() {
	m.dev.ApplyBindings(m.bindings)
	m.dev.Draw(0, uint32(m.indexCount), 1)
}

// Release destroys the index and vertex buffers. Bound images are not
// owned by the mesh. Calling Release more than once has no effect.
func (m *mesh) Release() {
	if m.bindings.IndexBuffer.Valid() {
		m.dev.DestroyBuffer(m.bindings.IndexBuffer)
		m.bindings.IndexBuffer = 0
	}

	if m.bindings.VertexBuffer.Valid() {
		m.dev.DestroyBuffer(m.bindings.VertexBuffer)
		m.bindings.VertexBuffer = 0
	}
}

func (m *mesh) released() bool {
	return !m.bindings.VertexBuffer.Valid()
}

// StaticMesh owns an immutable vertex buffer and an index buffer.
// The memory layout of V must match the VertexLayout of the
// pipeline it is drawn with.
type StaticMesh[V any] struct {
	*mesh
}

func NewStaticMesh16[V any](dev Device, vertices []V, indices []uint16) (*StaticMesh[V], error) {
	return newStaticMesh(dev, vertices, SliceBytes(indices), len(indices))
}

func NewStaticMesh32[V any](dev Device, vertices []V, indices []uint32) (*StaticMesh[V], error) {
	return newStaticMesh(dev, vertices, SliceBytes(indices), len(indices))
}

func newStaticMesh[V any](dev Device, vertices []V, indices []byte, indexCount int) (*StaticMesh[V], error) {
	desc := BufferDesc{
		Usage: UsageImmutable,
		Data:  SliceBytes(vertices),
	}

	m, err := newMesh(dev, "StaticMesh", desc, indices, indexCount)
	if err != nil {
		return nil, err
	}

	return watchRelease(&StaticMesh[V]{mesh: m}), nil
}

func (m *StaticMesh[V]) Release() {
	m.mesh.Release()
	unwatchRelease(m)
}

// DynamicMesh owns a vertex buffer that can be rewritten every frame
// and an immutable index buffer.
type DynamicMesh[V any] struct {
	*mesh
	capacity int
}

// NewDynamicMesh16 creates a mesh with room for capacity vertices. The
// vertex buffer content is undefined until the first call to Update.
func NewDynamicMesh16[V any](dev Device, capacity int, indices []uint16) (*DynamicMesh[V], error) {
	var zeroV V

	desc := BufferDesc{
		Usage: UsageStream,
		Size:  capacity * int(unsafe.Sizeof(zeroV)),
	}

	m, err := newMesh(dev, "DynamicMesh", desc, SliceBytes(indices), len(indices))
	if err != nil {
		return nil, err
	}

	return watchRelease(&DynamicMesh[V]{mesh: m, capacity: capacity}), nil
}

// Update replaces the vertices of this mesh.
func (m *DynamicMesh[V]) Update(vertices []V) error {
	if len(vertices) > m.capacity {
		return fmt.Errorf("update %d vertices, capacity is %d", len(vertices), m.capacity)
	}

	if err := m.dev.UpdateBuffer(m.bindings.VertexBuffer, SliceBytes(vertices)); err != nil {
		return fmt.Errorf("update vertex buffer: %w", err)
	}

	return nil
}

func (m *DynamicMesh[V]) Release() {
	m.mesh.Release()
	unwatchRelease(m)
}
