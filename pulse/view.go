package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// View holds the configuration of the window surface and the depth
// texture used by the default pass.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// depth texture to render to, has the size of the surface
	depthTexture *Texture
}

func NewView(ctx *Context) *View {
	st := &View{Context: ctx}

	// Print the available render formats
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := caps.Formats[0]
	if slices.Contains(caps.Formats, wgpu.TextureFormatBGRA8Unorm) {
		format = wgpu.TextureFormatBGRA8Unorm
	}

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	return st
}

// Format returns the texture format of the surface.
func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Size() (width, height uint32) {
	return vs.surfaceConfig.Width, vs.surfaceConfig.Height
}

func (vs *View) DepthView() *wgpu.TextureView {
	if vs.depthTexture == nil {
		return nil
	}

	return vs.depthTexture.View()
}

// Configure sizes the surface and recreates the depth texture.
func (vs *View) Configure(width, height uint32) error {
	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)

	vs.releaseDepthTexture()

	depthTexture, err := createDepthTexture(vs.Context, width, height)
	if err != nil {
		return fmt.Errorf("create depth texture: %w", err)
	}

	vs.depthTexture = depthTexture

	return nil
}

func (vs *View) releaseDepthTexture() {
	if vs.depthTexture != nil {
		vs.depthTexture.Release()
		vs.depthTexture = nil
	}
}

func (vs *View) Release() {
	vs.releaseDepthTexture()
}

func createDepthTexture(ctx *Context, width, height uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:     "DepthTexture",
		Usage:     wgpu.TextureUsageRenderAttachment,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        depthFormat,
		MipLevelCount: 1,
		SampleCount:   1,
	})
}
