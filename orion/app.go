package orion

import (
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/glimpse"
)

// App renders one frame per call to Frame. Frame must commit the device
// at its end. Release is called once the window was closed.
type App interface {
	Frame() error
	Release()
}

// ShaderReloader is implemented by apps that can rebuild their shaders
// while running.
type ShaderReloader interface {
	ReloadShaders() error
}

// ChangeNotifier reports whether something changed since the previous call.
type ChangeNotifier interface {
	Changed() bool
}

// NewAppFunc constructs the app. It is called on the first frame, after
// the surface was configured to the size of the window.
type NewAppFunc func(dev gfx.Device, win glimpse.Window) (App, error)
