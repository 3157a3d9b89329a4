package orion

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/learnwgpu/glimpse"
	"github.com/oliverbestmann/learnwgpu/pulse"
)

type RunOptions struct {
	// app to run. This is the only field that is required
	NewApp NewAppFunc

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Request a software adapter
	ForceFallbackAdapter bool

	// Record a cpu profile while running
	Profile bool

	// Triggers a reload of the apps shaders if it implements ShaderReloader
	ShaderChanges ChangeNotifier
}

func (opts *RunOptions) withDefaults() {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1280
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 720
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "learnwgpu"
	}
}

func Run(opts RunOptions) error {
	if opts.NewApp == nil {
		return errors.New("NewApp must not be nil")
	}

	opts.withDefaults()

	// create a new window
	win, err := glimpse.NewWindow(glimpse.Options{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), pulse.ContextOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil {
		return fmt.Errorf("initialize wgpu: %w", err)
	}

	defer ctx.Release()

	// initialize the view
	view := pulse.NewView(ctx)
	defer view.Release()

	dev := pulse.NewDevice(view)
	defer dev.Release()

	loopState := &LoopState{
		Window:        win,
		Device:        dev,
		NewApp:        opts.NewApp,
		ShaderChanges: opts.ShaderChanges,
	}

	defer loopState.Release()

	return win.Run(func() error {
		return loopOnce(view, loopState)
	})
}
