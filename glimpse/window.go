package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is the native window a surface is created for. It drives the
// frame loop by calling the frame function once per display refresh.
type Window interface {
	// Width and Height return the size of the framebuffer in pixels.
	Width() uint32
	Height() uint32

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls frame until the window is closed or frame returns an error.
	Run(frame func() error) error

	Terminate()
}

type Options struct {
	Width  int
	Height int
	Title  string

	// Record a cpu profile into the working directory until Terminate
	Profile bool
}
