package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/glimpse"
)

// Surface is resized to match the window before a frame is rendered.
type Surface interface {
	Configure(width, height uint32) error
}

type LoopState struct {
	Window glimpse.Window
	Device gfx.Device
	NewApp NewAppFunc

	ShaderChanges ChangeNotifier

	App           App
	SurfaceWidth  uint32
	SurfaceHeight uint32
	Initialized   bool

	Times FrameTimes
}

// Release releases the app, if it was created.
func (s *LoopState) Release() {
	if s.App != nil {
		s.App.Release()
		s.App = nil
	}
}

func loopOnce(surface Surface, loopState *LoopState) error {
	// get surface size for next frame
	surfaceWidth, surfaceHeight := loopState.Window.Width(), loopState.Window.Height()

	// a minimized window has no surface to render to
	if surfaceWidth == 0 || surfaceHeight == 0 {
		return nil
	}

	// reconfigure surface if needed
	if loopState.SurfaceWidth != surfaceWidth || loopState.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		if err := surface.Configure(surfaceWidth, surfaceHeight); err != nil {
			return fmt.Errorf("resize surface: %w", err)
		}

		loopState.SurfaceWidth = surfaceWidth
		loopState.SurfaceHeight = surfaceHeight
	}

	if !loopState.Initialized {
		app, err := loopState.NewApp(loopState.Device, loopState.Window)
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}

		loopState.App = app
		loopState.Initialized = true
	}

	reloadShaders(loopState)

	if err := loopState.App.Frame(); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	if loopState.Times.Tick() {
		slog.Debug("Frame statistics",
			slog.Uint64("frames", loopState.Times.FrameCount),
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)

		loopState.Times.MaxDuration = 0
	}

	return nil
}

// reloadShaders rebuilds the apps shaders after a change was reported.
// A failed reload keeps the previous shaders.
func reloadShaders(loopState *LoopState) {
	if loopState.ShaderChanges == nil || !loopState.ShaderChanges.Changed() {
		return
	}

	reloader, ok := loopState.App.(ShaderReloader)
	if !ok {
		return
	}

	slog.Info("Reload shaders")

	if err := reloader.ReloadShaders(); err != nil {
		slog.Error("Reload shaders failed, keeping previous shaders", slog.Any("err", err))
	}
}
