package apps

import (
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

var triangleVertices = []shaders.TriangleVertex{
	{Pos: [3]float32{0.0, 0.5, 0.5}, Color: [4]float32{1, 0, 0, 1}},   // top
	{Pos: [3]float32{0.5, -0.5, 0.5}, Color: [4]float32{0, 1, 0, 1}},  // bottom right
	{Pos: [3]float32{-0.5, -0.5, 0.5}, Color: [4]float32{0, 0, 1, 1}}, // bottom left
}

var triangleIndices = []uint16{0, 1, 2}

// TriangleApp draws a single triangle with interpolated vertex colors.
type TriangleApp struct {
	env  Env
	pass gfx.PassAction
	shd  *gfx.Shader
	mesh *gfx.StaticMesh[shaders.TriangleVertex]
}

func NewTriangleApp(env Env) (app *TriangleApp, err error) {
	app = &TriangleApp{
		env:  env,
		pass: gfx.PassActionClear(gfx.ColorCornflowerBlue),
	}

	defer func() {
		if err != nil {
			app.Release()
			app = nil
		}
	}()

	app.shd, err = shaders.Triangle(env.Device, env.Shaders)
	if err != nil {
		return app, err
	}

	app.mesh, err = gfx.NewStaticMesh16(env.Device, triangleVertices, triangleIndices)
	if err != nil {
		return app, err
	}

	return app, nil
}

func (app *TriangleApp) Frame() error {
	app.env.beginDefaultPass(app.pass)
	app.shd.Apply()
	app.mesh.DrawAll()
	app.env.Device.EndPass()

	return app.env.Device.Commit()
}

func (app *TriangleApp) ReloadShaders() error {
	return app.env.Reload(&app.shd, shaders.Triangle)
}

func (app *TriangleApp) Release() {
	if app.mesh != nil {
		app.mesh.Release()
		app.mesh = nil
	}

	if app.shd != nil {
		app.shd.Release()
		app.shd = nil
	}
}
