package apps

import (
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

var white = gfx.ColorWhite.RGBA8()

var quadVertices = []shaders.TextureVertex{
	{Pos: [3]float32{-0.5, -0.5, 0}, Color: white, UV: [2]float32{0, 0}},
	{Pos: [3]float32{0.5, -0.5, 0}, Color: white, UV: [2]float32{1, 0}},
	{Pos: [3]float32{0.5, 0.5, 0}, Color: white, UV: [2]float32{1, 1}},
	{Pos: [3]float32{-0.5, 0.5, 0}, Color: white, UV: [2]float32{0, 1}},
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// QuadApp draws a textured quad in the center of the window.
type QuadApp struct {
	env  Env
	pass gfx.PassAction
	shd  *gfx.Shader
	tex  *gfx.Texture2d
	mesh *gfx.StaticMesh[shaders.TextureVertex]
}

func NewQuadApp(env Env) (app *QuadApp, err error) {
	app = &QuadApp{
		env:  env,
		pass: gfx.PassActionClear(gfx.ColorCornflowerBlue),
	}

	defer func() {
		if err != nil {
			app.Release()
			app = nil
		}
	}()

	app.shd, err = shaders.Texture(env.Device, env.Shaders)
	if err != nil {
		return app, err
	}

	app.tex, err = env.loadTexture("tex/container.png")
	if err != nil {
		return app, err
	}

	app.mesh, err = gfx.NewStaticMesh16(env.Device, quadVertices, quadIndices)
	if err != nil {
		return app, err
	}

	app.mesh.BindImage(app.tex.Image(), 0)

	return app, nil
}

func (app *QuadApp) Frame() error {
	app.env.beginDefaultPass(app.pass)
	app.shd.Apply()
	app.mesh.DrawAll()
	app.env.Device.EndPass()

	return app.env.Device.Commit()
}

func (app *QuadApp) ReloadShaders() error {
	return app.env.Reload(&app.shd, shaders.Texture)
}

func (app *QuadApp) Release() {
	if app.mesh != nil {
		app.mesh.Release()
		app.mesh = nil
	}

	if app.tex != nil {
		app.tex.Release()
		app.tex = nil
	}

	if app.shd != nil {
		app.shd.Release()
		app.shd = nil
	}
}
