package pulse

import "github.com/cogentcore/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// This is either an offscreen pass or the screen.
type RenderTarget struct {
	View *wgpu.TextureView

	// Depth attachment, always of format depthFormat
	Depth *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32
}

func (rt *RenderTarget) passDescriptor(label string, clear *wgpu.Color) *wgpu.RenderPassDescriptor {
	loadOp := wgpu.LoadOpLoad
	clearValue := wgpu.Color{}

	if clear != nil {
		loadOp = wgpu.LoadOpClear
		clearValue = *clear
	}

	desc := &wgpu.RenderPassDescriptor{
		Label: label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       rt.View,
				LoadOp:     loadOp,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearValue,
			},
		},
	}

	if rt.Depth != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            rt.Depth,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		}
	}

	return desc
}
