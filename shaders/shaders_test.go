package shaders_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
	"unsafe"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/gfx/gfxtest"
	"github.com/oliverbestmann/learnwgpu/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayoutsMatchMemory(t *testing.T) {
	assert.Equal(t, int(unsafe.Sizeof(shaders.TriangleVertex{})), shaders.TriangleVertex{}.Layout().Stride())
	assert.Equal(t, int(unsafe.Sizeof(shaders.TextureVertex{})), shaders.TextureVertex{}.Layout().Stride())
	assert.Equal(t, 64, int(unsafe.Sizeof(shaders.CubeParams{})))
}

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{"triangle", "texture", "cube"} {
		vs, fs, err := shaders.Loader{}.Load(name)
		require.NoError(t, err, name)

		assert.Contains(t, vs, "fn vs_main")
		assert.Contains(t, fs, "fn fs_main")
	}
}

func TestLoadMissing(t *testing.T) {
	loader := shaders.Loader{FS: fstest.MapFS{
		"broken.vs.wgsl": {Data: []byte("")},
	}}

	_, _, err := loader.Load("broken")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, `read shader "broken.fs.wgsl"`)
}

func TestLoadValidates(t *testing.T) {
	loader := shaders.Loader{
		Validate: true,
		FS: fstest.MapFS{
			"broken.vs.wgsl": {Data: []byte("fn vs_main( {")},
			"broken.fs.wgsl": {Data: []byte("")},
		},
	}

	_, _, err := loader.Load("broken")
	assert.ErrorContains(t, err, `validate shader "broken.vs.wgsl"`)

	_, _, err = shaders.Loader{Validate: true}.Load("triangle")
	assert.NoError(t, err)
}

func TestShadersMatchTheirBindings(t *testing.T) {
	dev := gfxtest.New()

	constructors := map[string]func(gfx.Device, shaders.Loader) (*gfx.Shader, error){
		"triangle": shaders.Triangle,
		"texture":  shaders.Texture,
		"cube":     shaders.Cube,
	}

	for name, construct := range constructors {
		shd, err := construct(dev, shaders.Loader{})
		require.NoError(t, err, name)

		assert.Equal(t, name, shd.Label())
		shd.Release()
	}

	assert.Zero(t, dev.Leaks())
}

func TestCubePipeline(t *testing.T) {
	dev := gfxtest.New()

	shd, err := shaders.Cube(dev, shaders.Loader{})
	require.NoError(t, err)
	defer shd.Release()

	pip := dev.Pipelines[shd.Pipeline()]
	assert.Equal(t, gfx.IndexUint16, pip.IndexType)
	assert.True(t, pip.Depth.WriteEnabled)
	assert.Equal(t, gfx.CompareLessEqual, pip.Depth.Compare)

	desc := dev.Shaders[pip.Shader]
	assert.Equal(t, []gfx.UniformBlockDesc{{Name: "vs_params", Size: 64}}, desc.Vertex.UniformBlocks)
	assert.Equal(t, []gfx.ShaderImageDesc{{Name: "tex"}}, desc.Fragment.Images)
}

func TestTriangleTarget(t *testing.T) {
	dev := gfxtest.New()

	shd, err := shaders.TriangleTarget(dev, shaders.Loader{}, gfx.PixelFormatRGBA8)
	require.NoError(t, err)
	defer shd.Release()

	assert.Equal(t, gfx.PixelFormatRGBA8, dev.Pipelines[shd.Pipeline()].ColorFormat)
}

func TestShaderWithWrongUniformName(t *testing.T) {
	vs, fs, err := shaders.Loader{}.Load("cube")
	require.NoError(t, err)

	loader := shaders.Loader{FS: fstest.MapFS{
		"cube.vs.wgsl": {Data: []byte(vs)},
		"cube.fs.wgsl": {Data: []byte(fs)},
	}}

	// the embedded sources work with a loader reading from elsewhere
	dev := gfxtest.New()
	shd, err := shaders.Cube(dev, loader)
	require.NoError(t, err)
	shd.Release()

	loader.FS.(fstest.MapFS)["cube.vs.wgsl"].Data = []byte(`
struct VsParams { mvp: mat4x4<f32> }
@group(0) @binding(0) var<uniform> params: VsParams;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return params.mvp[0]; }
`)

	_, err = shaders.Cube(dev, loader)
	assert.ErrorIs(t, err, gfx.ErrUndeclaredUniform)
	assert.Zero(t, dev.Leaks())
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()

	watcher, err := shaders.NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	assert.False(t, watcher.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.fs.wgsl"), []byte("x"), 0o644))

	assert.Eventually(t, watcher.Changed, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := shaders.NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
