// Package pulse implements gfx.Device on top of WebGPU. It owns the GPU
// context, the surface view and the frame state. Resources are addressed
// through the opaque handles of package gfx.
package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var wgpuLogLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

func init() {
	// all wgpu and glfw calls must come from the main thread
	runtime.LockOSThread()

	if level, ok := wgpuLogLevels[strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL"))]; ok {
		wgpu.SetLogLevel(level)
	}
}

// Context holds the adapter and device rendering to a window surface.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type ContextOptions struct {
	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool
}

// New requests an adapter compatible with the surface described by sd and
// opens a device on it.
func New(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (ctx *Context, err error) {
	ctx = &Context{}

	defer func() {
		if err != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Surface = instance.CreateSurface(sd)

	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    ctx.Surface,
	})
	if err != nil {
		return ctx, fmt.Errorf("request adapter: %w", err)
	}

	info := ctx.Adapter.GetInfo()
	slog.Info("Using adapter",
		slog.String("name", info.Name),
		slog.String("backend", info.BackendType.String()),
		slog.String("type", info.AdapterType.String()),
		slog.Bool("fallback", opts.ForceFallbackAdapter),
	)

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return ctx, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	return ctx, nil
}

// Release frees the device before the adapter and the surface.
func (ctx *Context) Release() {
	if ctx.Queue != nil {
		ctx.Queue.Release()
		ctx.Queue = nil
	}

	if ctx.Device != nil {
		ctx.Device.Release()
		ctx.Device = nil
	}

	if ctx.Adapter != nil {
		ctx.Adapter.Release()
		ctx.Adapter = nil
	}

	if ctx.Surface != nil {
		ctx.Surface.Release()
		ctx.Surface = nil
	}
}
