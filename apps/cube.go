package apps

import (
	"math"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/glm"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

func cubeVertex(x, y, z, u, v float32) shaders.CubeVertex {
	return shaders.CubeVertex{Pos: [3]float32{x, y, z}, Color: white, UV: [2]float32{u, v}}
}

// six faces with four corners each
var cubeVertices = []shaders.CubeVertex{
	cubeVertex(-1, -1, -1, 0, 0),
	cubeVertex(1, -1, -1, 1, 0),
	cubeVertex(1, 1, -1, 1, 1),
	cubeVertex(-1, 1, -1, 0, 1),

	cubeVertex(-1, -1, 1, 0, 0),
	cubeVertex(1, -1, 1, 1, 0),
	cubeVertex(1, 1, 1, 1, 1),
	cubeVertex(-1, 1, 1, 0, 1),

	cubeVertex(-1, -1, -1, 0, 0),
	cubeVertex(-1, 1, -1, 1, 0),
	cubeVertex(-1, 1, 1, 1, 1),
	cubeVertex(-1, -1, 1, 0, 1),

	cubeVertex(1, -1, -1, 0, 0),
	cubeVertex(1, 1, -1, 1, 0),
	cubeVertex(1, 1, 1, 1, 1),
	cubeVertex(1, -1, 1, 0, 1),

	cubeVertex(-1, -1, -1, 0, 0),
	cubeVertex(-1, -1, 1, 1, 0),
	cubeVertex(1, -1, 1, 1, 1),
	cubeVertex(1, -1, -1, 0, 1),

	cubeVertex(-1, 1, -1, 0, 0),
	cubeVertex(-1, 1, 1, 1, 0),
	cubeVertex(1, 1, 1, 1, 1),
	cubeVertex(1, 1, -1, 0, 1),
}

var cubeIndices = []uint16{
	0, 1, 2, 0, 2, 3,
	6, 5, 4, 7, 6, 4,
	8, 9, 10, 8, 10, 11,
	14, 13, 12, 15, 14, 12,
	16, 17, 18, 16, 18, 19,
	22, 21, 20, 23, 22, 20,
}

// CubeViewProjection returns the matrix of a camera at (2, 2, 4) looking at
// the origin, for a framebuffer with the given aspect ratio.
func CubeViewProjection(aspect float32) glm.Mat4f {
	view := glm.LookAt(
		glm.Vec3f{2, 2, 4},
		glm.Vec3f{0, 0, 0},
		glm.Vec3f{0, 1, 0},
	)

	proj := glm.PerspectiveZO[float32](math.Pi/3, aspect, 0.01, 100)

	return proj.Mul(view)
}

// CubeApp draws a textured cube seen from a fixed camera.
type CubeApp struct {
	env  Env
	pass gfx.PassAction
	shd  *gfx.Shader
	tex  *gfx.Texture2d
	mesh *gfx.StaticMesh[shaders.CubeVertex]
}

func NewCubeApp(env Env) (app *CubeApp, err error) {
	app = &CubeApp{
		env:  env,
		pass: gfx.PassActionClear(gfx.ColorCornflowerBlue),
	}

	defer func() {
		if err != nil {
			app.Release()
			app = nil
		}
	}()

	app.shd, err = shaders.Cube(env.Device, env.Shaders)
	if err != nil {
		return app, err
	}

	app.tex, err = env.loadTexture("tex/container.png")
	if err != nil {
		return app, err
	}

	app.mesh, err = gfx.NewStaticMesh16(env.Device, cubeVertices, cubeIndices)
	if err != nil {
		return app, err
	}

	app.mesh.BindImage(app.tex.Image(), 0)

	return app, nil
}

func (app *CubeApp) Frame() error {
	dev := app.env.Device

	app.env.beginDefaultPass(app.pass)
	app.shd.Apply()

	params := shaders.CubeParams{
		ViewProjection: CubeViewProjection(app.env.aspect()),
	}

	dev.ApplyUniforms(gfx.StageVertex, 0, gfx.AsBytes(&params))

	app.mesh.DrawAll()
	dev.EndPass()

	return dev.Commit()
}

func (app *CubeApp) ReloadShaders() error {
	return app.env.Reload(&app.shd, shaders.Cube)
}

func (app *CubeApp) Release() {
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
