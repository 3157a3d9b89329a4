package apps

import (
	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/oliverbestmann/learnwgpu/glm"
	"github.com/oliverbestmann/learnwgpu/shaders"
)

const noiseTextureSize = 256

// NoiseTexture renders fractal noise into a square gray scale image.
func NoiseTexture(size int) *gfx.TextureBuilder {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = 4.0
	noise.SetFractalOctaves(3)

	pixels := make([]byte, 0, size*size*4)

	for y := range size {
		for x := range size {
			u := fastnoiselite.FNLfloat(x) / fastnoiselite.FNLfloat(size)
			v := fastnoiselite.FNLfloat(y) / fastnoiselite.FNLfloat(size)

			// noise is in [-1, 1]
			value := (noise.GetNoise2D(u, v) + 1) / 2
			gray := uint8(min(max(value, 0), 1) * 255)

			pixels = append(pixels, gray, gray, gray, 255)
		}
	}

	// length always matches the size
	builder, _ := gfx.TextureFromPixels(uint32(size), uint32(size), pixels)

	return builder.
		Label("Noise").
		Filter(gfx.FilterNearest).
		Wrap(gfx.WrapRepeat)
}

// NoiseApp draws a rotating quad with a repeating noise texture.
type NoiseApp struct {
	env  Env
	pass gfx.PassAction
	shd  *gfx.Shader
	tex  *gfx.Texture2d
	mesh *gfx.DynamicMesh[shaders.TextureVertex]

	frame    int
	vertices []shaders.TextureVertex
}

func NewNoiseApp(env Env) (app *NoiseApp, err error) {
	app = &NoiseApp{
		env:      env,
		pass:     gfx.PassActionClear(gfx.ColorBlack),
		vertices: make([]shaders.TextureVertex, len(quadVertices)),
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

	app.tex, err = NoiseTexture(noiseTextureSize).Build(env.Device)
	if err != nil {
		return app, err
	}

	app.mesh, err = gfx.NewDynamicMesh16[shaders.TextureVertex](env.Device, len(quadVertices), quadIndices)
	if err != nil {
		return app, err
	}

	app.mesh.BindImage(app.tex.Image(), 0)

	return app, nil
}

// quadAt returns the quad vertices rotated for the given frame. Texture
// coordinates go beyond [0, 1] to show the repeat wrapping.
func quadAt(frame int, out []shaders.TextureVertex) {
	transform := glm.RotationMat3[float32](glm.Rad(float32(frame) * 0.01)).Scale(1.5, 1.5)

	for idx, vertex := range quadVertices {
		pos := transform.TransformPoint(glm.Vec2f{vertex.Pos[0], vertex.Pos[1]})

		vertex.Pos[0], vertex.Pos[1] = pos[0], pos[1]
		vertex.UV[0] *= 2
		vertex.UV[1] *= 2

		out[idx] = vertex
	}
}

func (app *NoiseApp) Frame() error {
	dev := app.env.Device

	quadAt(app.frame, app.vertices)
	app.frame++

	if err := app.mesh.Update(app.vertices); err != nil {
		return err
	}

	app.env.beginDefaultPass(app.pass)
	app.shd.Apply()
	app.mesh.DrawAll()
	dev.EndPass()

	return dev.Commit()
}

func (app *NoiseApp) ReloadShaders() error {
	return app.env.Reload(&app.shd, shaders.Texture)
}

func (app *NoiseApp) Release() {
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
