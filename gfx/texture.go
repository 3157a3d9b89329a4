package gfx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/anthonynsimon/bild/transform"
	"github.com/oliverbestmann/learnwgpu/glm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture2d owns an image on the device.
type Texture2d struct {
	dev    Device
	img    ImageID
	width  uint32
	height uint32
}

func (t *Texture2d) Image() ImageID {
	return t.img
}

func (t *Texture2d) Width() uint32 {
	return t.width
}

func (t *Texture2d) Height() uint32 {
	return t.height
}

func (t *Texture2d) Size() glm.Vec2u {
	return glm.Vec2u{t.width, t.height}
}

// Release destroys the image. Calling Release more than once has no effect.
func (t *Texture2d) Release() {
	if t.img.Valid() {
		t.dev.DestroyImage(t.img)
		t.img = 0
	}

	unwatchRelease(t)
}

func (t *Texture2d) released() bool {
	return !t.img.Valid()
}

// RenderTexture2d is an offscreen render target. It owns a color texture
// that can be sampled after rendering, a depth texture and the pass
// rendering into both.
type RenderTexture2d struct {
	dev   Device
	color *Texture2d
	depth *Texture2d
	pass  PassID
}

// Texture returns the color texture. It stays owned by the RenderTexture2d.
// Its first row is the top of the rendered image, so v=0 addresses the top
// edge, unlike textures built from decoded images.
func (rt *RenderTexture2d) Texture() *Texture2d {
	return rt.color
}

func (rt *RenderTexture2d) Pass() PassID {
	return rt.pass
}

// Begin starts the pass rendering into this target.
func (rt *RenderTexture2d) Begin(action PassAction) {
	rt.dev.BeginPass(rt.pass, action)
}

// Release destroys the pass first and then both textures.
func (rt *RenderTexture2d) Release() {
	if rt.pass.Valid() {
		rt.dev.DestroyPass(rt.pass)
		rt.pass = 0
	}

	if rt.depth != nil {
		rt.depth.Release()
		rt.depth = nil
	}

	if rt.color != nil {
		rt.color.Release()
		rt.color = nil
	}

	unwatchRelease(rt)
}

func (rt *RenderTexture2d) released() bool {
	return rt.color == nil
}

// TextureBuilder collects rgba pixels and sampling parameters for a texture.
// Filtering defaults to FilterLinear, wrapping to WrapClampToEdge.
type TextureBuilder struct {
	label  string
	width  uint32
	height uint32
	pixels []byte
	filter Filter
	wrap   Wrap
}

// TextureFromPath reads and decodes the image file at name.
func TextureFromPath(fsys fs.FS, name string) (*TextureBuilder, error) {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	builder := TextureFromImage(img)
	builder.label = name

	return builder, nil
}

// TextureFromEncodedBytes decodes an image file from memory. Supported
// formats are png, jpeg, gif, bmp, tiff and webp.
func TextureFromEncodedBytes(buf []byte) (*TextureBuilder, error) {
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return TextureFromImage(img), nil
}

// TextureFromImage converts img to rgba and flips it vertically, so
// that texture coordinate v=0 addresses the bottom row of the image.
func TextureFromImage(img image.Image) *TextureBuilder {
	rgba := FlipVertical(img)

	return &TextureBuilder{
		width:  uint32(rgba.Rect.Dx()),
		height: uint32(rgba.Rect.Dy()),
		pixels: rgba.Pix,
	}
}

// TextureFromPixels uses tightly packed rgba pixels as they are.
func TextureFromPixels(width, height uint32, pixels []byte) (*TextureBuilder, error) {
	expected := int(width) * int(height) * 4
	if len(pixels) != expected {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d for %dx%d",
			ErrPixelSize, len(pixels), expected, width, height)
	}

	builder := &TextureBuilder{
		width:  width,
		height: height,
		pixels: pixels,
	}

	return builder, nil
}

// TextureOfSize returns a builder without pixels, to be used with
// BuildRenderTexture.
func TextureOfSize(width, height uint32) *TextureBuilder {
	return &TextureBuilder{width: width, height: height}
}

// FlipVertical returns a copy of img as rgba with its rows in reverse order.
func FlipVertical(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}

func (b *TextureBuilder) Filter(filter Filter) *TextureBuilder {
	b.filter = filter
	return b
}

func (b *TextureBuilder) Wrap(wrap Wrap) *TextureBuilder {
	b.wrap = wrap
	return b
}

func (b *TextureBuilder) Label(label string) *TextureBuilder {
	b.label = label
	return b
}

func (b *TextureBuilder) Width() uint32 {
	return b.width
}

func (b *TextureBuilder) Height() uint32 {
	return b.height
}

// Image returns the pixels of this builder as an image, without copying.
func (b *TextureBuilder) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pixels,
		Stride: int(b.width) * 4,
		Rect:   image.Rect(0, 0, int(b.width), int(b.height)),
	}
}

// Build uploads the pixels into an immutable image.
func (b *TextureBuilder) Build(dev Device) (*Texture2d, error) {
	img, err := dev.MakeImage(ImageDesc{
		Label:  b.label,
		Width:  b.width,
		Height: b.height,
		Format: PixelFormatRGBA8,
		Filter: b.filter,
		Wrap:   b.wrap,
		Data:   b.pixels,
	})
	if err != nil {
		return nil, fmt.Errorf("make image %q: %w", b.label, err)
	}

	tex := &Texture2d{
		dev:    dev,
		img:    img,
		width:  b.width,
		height: b.height,
	}

	return watchRelease(tex), nil
}

// BuildRenderTexture creates a render target of the builders size. The
// pixels of the builder are not used.
func (b *TextureBuilder) BuildRenderTexture(dev Device) (rt *RenderTexture2d, err error) {
	rt = &RenderTexture2d{dev: dev}

	defer func() {
		if err != nil {
			rt.Release()
			rt = nil
		}
	}()

	rt.color, err = b.makeTarget(dev, ".Color", PixelFormatRGBA8)
	if err != nil {
		return rt, err
	}

	rt.depth, err = b.makeTarget(dev, ".Depth", PixelFormatDepth)
	if err != nil {
		return rt, err
	}

	rt.pass, err = dev.MakePass(PassDesc{
		Label: b.label,
		Color: rt.color.img,
		Depth: rt.depth.img,
	})
	if err != nil {
		return rt, fmt.Errorf("make pass %q: %w", b.label, err)
	}

	return watchRelease(rt), nil
}

func (b *TextureBuilder) makeTarget(dev Device, suffix string, format PixelFormat) (*Texture2d, error) {
	img, err := dev.MakeImage(ImageDesc{
		Label:        b.label + suffix,
		Width:        b.width,
		Height:       b.height,
		Format:       format,
		Filter:       b.filter,
		Wrap:         b.wrap,
		RenderTarget: true,
	})
	if err != nil {
		return nil, fmt.Errorf("make image %q: %w", b.label+suffix, err)
	}

	return &Texture2d{dev: dev, img: img, width: b.width, height: b.height}, nil
}
