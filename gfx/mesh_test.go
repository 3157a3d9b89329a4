package gfx_test

import (
	"testing"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertex struct {
	Pos   [3]float32
	Color [4]float32
}

var triangle = []vertex{
	{Pos: [3]float32{0, 0.5, 0.5}, Color: [4]float32{1, 0, 0, 1}},
	{Pos: [3]float32{0.5, -0.5, 0.5}, Color: [4]float32{0, 1, 0, 1}},
	{Pos: [3]float32{-0.5, -0.5, 0.5}, Color: [4]float32{0, 0, 1, 1}},
}

func drawFrame(t *testing.T, dev *gfxtest.Device, draw func()) {
	t.Helper()

	shd, err := gfx.NewShader(dev, gfx.ShaderDesc{Label: "plain"}, gfx.PipelineDesc{})
	require.NoError(t, err)
	defer shd.Release()

	dev.BeginDefaultPass(gfx.PassActionClear(gfx.ColorBlack), 800, 600)
	shd.Apply()
	draw()
	dev.EndPass()

	require.NoError(t, dev.Commit())
}

func TestStaticMeshDrawAll(t *testing.T) {
	dev := gfxtest.New()

	indices := []uint16{0, 1, 2, 0, 2, 1, 2, 1, 0}

	mesh, err := gfx.NewStaticMesh16(dev, triangle, indices)
	require.NoError(t, err)
	defer mesh.Release()

	assert.Equal(t, len(indices), mesh.IndexCount())

	drawFrame(t, dev, mesh.DrawAll)

	require.Len(t, dev.Draws, 1)
	assert.EqualValues(t, 0, dev.Draws[0].Base)
	assert.EqualValues(t, len(indices), dev.Draws[0].Count)
	assert.EqualValues(t, 1, dev.Draws[0].Instances)
	assert.Equal(t, mesh.Bindings(), dev.Draws[0].Bindings)

	// vertex data is uploaded verbatim
	assert.Equal(t, gfx.SliceBytes(triangle), dev.Buffers[mesh.Bindings().VertexBuffer])
	assert.Len(t, dev.Buffers[mesh.Bindings().IndexBuffer], 2*len(indices))
}

func TestStaticMesh32(t *testing.T) {
	dev := gfxtest.New()

	mesh, err := gfx.NewStaticMesh32(dev, triangle, []uint32{0, 1, 2})
	require.NoError(t, err)

	assert.Len(t, dev.Buffers[mesh.Bindings().IndexBuffer], 12)

	mesh.Release()
	assert.Zero(t, dev.Leaks())
}

func TestStaticMeshBindImage(t *testing.T) {
	dev := gfxtest.New()

	tex, err := gfx.TextureFromPixels(1, 1, []byte{255, 255, 255, 255})
	require.NoError(t, err)

	texture, err := tex.Build(dev)
	require.NoError(t, err)
	defer texture.Release()

	mesh, err := gfx.NewStaticMesh16(dev, triangle, []uint16{0, 1, 2})
	require.NoError(t, err)
	defer mesh.Release()

	mesh.BindImage(texture.Image(), 0)
	drawFrame(t, dev, mesh.DrawAll)

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, texture.Image(), dev.Draws[0].Bindings.FragmentImages[0])
}

func TestStaticMeshBindImageSlotRange(t *testing.T) {
	dev := gfxtest.New()

	mesh, err := gfx.NewStaticMesh16(dev, triangle, []uint16{0, 1, 2})
	require.NoError(t, err)
	defer mesh.Release()

	last := gfx.MaxStageImages - 1
	assert.NotPanics(t, func() { mesh.BindVertexImage(1, last) })
	assert.Equal(t, gfx.ImageID(1), mesh.Bindings().VertexImages[last])

	assert.PanicsWithValue(t, "image slot 4 out of range [0, 4)", func() { mesh.BindImage(1, gfx.MaxStageImages) })
	assert.Panics(t, func() { mesh.BindVertexImage(1, -1) })
}

func TestStaticMeshReleaseOnce(t *testing.T) {
	dev := gfxtest.New()

	mesh, err := gfx.NewStaticMesh16(dev, triangle, []uint16{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 2, dev.Live(gfxtest.KindBuffer))

	mesh.Release()
	mesh.Release()

	assert.Equal(t, 2, dev.Destroyed(gfxtest.KindBuffer))
	assert.Zero(t, dev.DoubleDestroys)
	assert.Zero(t, dev.Leaks())
}

func TestStaticMeshIndexBufferFailure(t *testing.T) {
	dev := gfxtest.New()

	// an empty index list can not be uploaded into an immutable buffer
	_, err := gfx.NewStaticMesh16(dev, triangle, nil)
	assert.ErrorContains(t, err, "make index buffer")

	assert.Equal(t, 1, dev.Made(gfxtest.KindBuffer))
	assert.Zero(t, dev.Leaks())
}

func TestDynamicMeshUpdate(t *testing.T) {
	dev := gfxtest.New()

	mesh, err := gfx.NewDynamicMesh16[vertex](dev, 4, []uint16{0, 1, 2})
	require.NoError(t, err)
	defer mesh.Release()

	require.NoError(t, mesh.Update(triangle))

	content := dev.Buffers[mesh.Bindings().VertexBuffer]
	assert.Equal(t, gfx.SliceBytes(triangle), content[:len(gfx.SliceBytes(triangle))])

	err = mesh.Update(make([]vertex, 5))
	assert.ErrorContains(t, err, "capacity is 4")
}
