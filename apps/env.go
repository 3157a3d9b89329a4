// Package apps contains small programs that each draw one scene per frame.
package apps

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/oliverbestmann/learnwgpu/assets"
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

// Size reports the size of the default framebuffer.
type Size interface {
	Width() uint32
	Height() uint32
}

// Env holds everything an app needs to create its resources.
type Env struct {
	Device gfx.Device
	Window Size

	Shaders shaders.Loader

	// Image files, defaults to assets.FS
	Assets fs.FS
}

func (env Env) assets() fs.FS {
	if env.Assets == nil {
		return assets.FS
	}

	return env.Assets
}

func (env Env) aspect() float32 {
	width, height := env.Window.Width(), env.Window.Height()
	if height == 0 {
		return 1
	}

	return float32(width) / float32(height)
}

// loadTexture decodes the image at path and uploads it.
func (env Env) loadTexture(path string) (*gfx.Texture2d, error) {
	builder, err := gfx.TextureFromPath(env.assets(), path)
	if err != nil {
		return nil, err
	}

	tex, err := builder.Build(env.Device)
	if err != nil {
		return nil, fmt.Errorf("build texture: %w", err)
	}

	return tex, nil
}

// beginDefaultPass starts a pass covering the full window.
func (env Env) beginDefaultPass(action gfx.PassAction) {
	env.Device.BeginDefaultPass(action, env.Window.Width(), env.Window.Height())
}

// Reload replaces *shd with the result of build. If build fails,
// *shd stays untouched.
func (env Env) Reload(shd **gfx.Shader, build func(gfx.Device, shaders.Loader) (*gfx.Shader, error)) error {
	next, err := build(env.Device, env.Shaders)
	if err != nil {
		return err
	}

	if *shd != nil {
		(*shd).Release()
	}

	*shd = next

	slog.Info("Replaced shader", slog.String("label", next.Label()))

	return nil
}
