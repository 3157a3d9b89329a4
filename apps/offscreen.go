package apps

import (
	"slices"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

const offscreenSize = 512

// OffscreenApp renders the triangle into a texture and shows that
// texture on a quad.
type OffscreenApp struct {
	env Env

	target     *gfx.RenderTexture2d
	targetPass gfx.PassAction
	triangle   *gfx.Shader
	triMesh    *gfx.StaticMesh[shaders.TriangleVertex]

	pass     gfx.PassAction
	quad     *gfx.Shader
	quadMesh *gfx.StaticMesh[shaders.TextureVertex]
}

func NewOffscreenApp(env Env) (app *OffscreenApp, err error) {
	app = &OffscreenApp{
		env:        env,
		targetPass: gfx.PassActionClear(gfx.ColorBlack),
		pass:       gfx.PassActionClear(gfx.ColorCornflowerBlue),
	}

	defer func() {
		if err != nil {
			app.Release()
			app = nil
		}
	}()

	app.target, err = gfx.TextureOfSize(offscreenSize, offscreenSize).
		Label("Offscreen").
		BuildRenderTexture(env.Device)
	if err != nil {
		return app, err
	}

	app.triangle, err = buildOffscreenTriangle(env.Device, env.Shaders)
	if err != nil {
		return app, err
	}

	app.triMesh, err = gfx.NewStaticMesh16(env.Device, triangleVertices, triangleIndices)
	if err != nil {
		return app, err
	}

	app.quad, err = shaders.Texture(env.Device, env.Shaders)
	if err != nil {
		return app, err
	}

	app.quadMesh, err = gfx.NewStaticMesh16(env.Device, flipV(quadVertices), quadIndices)
	if err != nil {
		return app, err
	}

	app.quadMesh.BindImage(app.target.Texture().Image(), 0)

	return app, nil
}

// flipV mirrors the texture coordinates vertically. Render targets store
// their top row first, textures built from images their bottom row.
func flipV(vertices []shaders.TextureVertex) []shaders.TextureVertex {
	flipped := slices.Clone(vertices)
	for idx := range flipped {
		flipped[idx].UV[1] = 1 - flipped[idx].UV[1]
	}

	return flipped
}

func buildOffscreenTriangle(dev gfx.Device, loader shaders.Loader) (*gfx.Shader, error) {
	return shaders.TriangleTarget(dev, loader, gfx.PixelFormatRGBA8)
}

func (app *OffscreenApp) Frame() error {
	dev := app.env.Device

	app.target.Begin(app.targetPass)
	app.triangle.Apply()
	app.triMesh.DrawAll()
	dev.EndPass()

	app.env.beginDefaultPass(app.pass)
	app.quad.Apply()
	app.quadMesh.DrawAll()
	dev.EndPass()

	return dev.Commit()
}

func (app *OffscreenApp) ReloadShaders() error {
	if err := app.env.Reload(&app.triangle, buildOffscreenTriangle); err != nil {
		return err
	}

	return app.env.Reload(&app.quad, shaders.Texture)
}

func (app *OffscreenApp) Release() {
	if app.quadMesh != nil {
		app.quadMesh.Release()
		app.quadMesh = nil
	}

	if app.quad != nil {
		app.quad.Release()
		app.quad = nil
	}

	if app.triMesh != nil {
		app.triMesh.Release()
		app.triMesh = nil
	}

	if app.triangle != nil {
		app.triangle.Release()
		app.triangle = nil
	}

	if app.target != nil {
		app.target.Release()
		app.target = nil
	}
}
