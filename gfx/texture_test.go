package gfx_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns an opaque image where each row has its own color.
func gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: uint8(y * 16), G: uint8(x * 16), B: 200, A: 255})
		}
	}

	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTextureFromPixelsSize(t *testing.T) {
	sizes := [][2]uint32{{1, 1}, {3, 7}, {64, 16}, {256, 256}}

	for _, size := range sizes {
		dev := gfxtest.New()

		w, h := size[0], size[1]
		builder, err := gfx.TextureFromPixels(w, h, make([]byte, w*h*4))
		require.NoError(t, err)

		tex, err := builder.Build(dev)
		require.NoError(t, err)

		assert.Equal(t, w, tex.Width())
		assert.Equal(t, h, tex.Height())
		assert.EqualValues(t, [2]uint32{w, h}, tex.Size())

		desc := dev.Images[tex.Image()]
		assert.Equal(t, w, desc.Width)
		assert.Equal(t, h, desc.Height)

		tex.Release()
		tex.Release()

		assert.Equal(t, 1, dev.Destroyed(gfxtest.KindImage))
		assert.Zero(t, dev.DoubleDestroys)
	}
}

func TestTextureFromPixelsWrongSize(t *testing.T) {
	_, err := gfx.TextureFromPixels(4, 4, make([]byte, 15))
	assert.ErrorIs(t, err, gfx.ErrPixelSize)
}

func TestTextureDefaults(t *testing.T) {
	dev := gfxtest.New()

	builder, err := gfx.TextureFromPixels(1, 1, make([]byte, 4))
	require.NoError(t, err)

	tex, err := builder.Build(dev)
	require.NoError(t, err)
	defer tex.Release()

	desc := dev.Images[tex.Image()]
	assert.Equal(t, gfx.FilterLinear, desc.Filter)
	assert.Equal(t, gfx.WrapClampToEdge, desc.Wrap)
	assert.False(t, desc.RenderTarget)

	builder.Filter(gfx.FilterNearest).Wrap(gfx.WrapMirroredRepeat)

	other, err := builder.Build(dev)
	require.NoError(t, err)
	defer other.Release()

	desc = dev.Images[other.Image()]
	assert.Equal(t, gfx.FilterNearest, desc.Filter)
	assert.Equal(t, gfx.WrapMirroredRepeat, desc.Wrap)
}

func TestTextureFlipRoundTrip(t *testing.T) {
	original := gradient(5, 9)

	builder, err := gfx.TextureFromEncodedBytes(encodePNG(t, original))
	require.NoError(t, err)

	assert.EqualValues(t, 5, builder.Width())
	assert.EqualValues(t, 9, builder.Height())

	// decoded pixels have the bottom row first
	flipped := builder.Image()
	for y := range 9 {
		assert.Equal(t, original.RGBAAt(0, y), flipped.RGBAAt(0, 8-y))
	}

	// flipping once more restores the original row order
	restored := gfx.FlipVertical(flipped)
	assert.Equal(t, original.Pix, restored.Pix)
}

func TestTextureFromPath(t *testing.T) {
	fsys := fstest.MapFS{
		"tex/gradient.png": {Data: encodePNG(t, gradient(4, 2))},
		"tex/broken.png":   {Data: []byte("not a png")},
	}

	builder, err := gfx.TextureFromPath(fsys, "tex/gradient.png")
	require.NoError(t, err)
	assert.EqualValues(t, 4, builder.Width())
	assert.EqualValues(t, 2, builder.Height())

	var decodeErr *gfx.DecodeError

	_, err = gfx.TextureFromPath(fsys, "tex/missing.png")
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "tex/missing.png", decodeErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = gfx.TextureFromPath(fsys, "tex/broken.png")
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestRenderTexture(t *testing.T) {
	dev := gfxtest.New()

	builder, err := gfx.TextureFromPixels(32, 16, make([]byte, 32*16*4))
	require.NoError(t, err)

	rt, err := builder.Label("offscreen").BuildRenderTexture(dev)
	require.NoError(t, err)

	assert.EqualValues(t, 32, rt.Texture().Width())
	assert.Equal(t, 2, dev.Live(gfxtest.KindImage))
	assert.Equal(t, 1, dev.Live(gfxtest.KindPass))
	assert.True(t, dev.Images[rt.Texture().Image()].RenderTarget)

	rt.Begin(gfx.PassActionClear(gfx.ColorWhite))
	dev.EndPass()
	require.NoError(t, dev.Commit())

	require.Len(t, dev.Passes, 1)
	assert.Equal(t, rt.Pass(), dev.Passes[0].Pass)

	rt.Release()
	rt.Release()

	assert.Equal(t, 1, dev.Destroyed(gfxtest.KindPass))
	assert.Equal(t, 2, dev.Destroyed(gfxtest.KindImage))
	assert.Zero(t, dev.DoubleDestroys)
	assert.Zero(t, dev.Leaks())
}

func TestRenderTexturePassFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.Fail[gfxtest.KindPass] = assert.AnError

	builder, err := gfx.TextureFromPixels(8, 8, make([]byte, 8*8*4))
	require.NoError(t, err)

	rt, err := builder.BuildRenderTexture(dev)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, 2, dev.Made(gfxtest.KindImage))
	assert.Zero(t, dev.Leaks())
}
