package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// apply multiplies m with the column vector v.
func apply(m Mat4f, v Vec4f) Vec4f {
	var result Vec4f
	for row := range 4 {
		for col := range 4 {
			result[row] += m[col*4+row] * v[col]
		}
	}

	return result
}

func TestLookAtPerspectiveZO(t *testing.T) {
	view := LookAt(Vec3f{2, 2, 4}, Vec3f{0, 0, 0}, Vec3f{0, 1, 0})
	proj := PerspectiveZO[float32](math.Pi/3, 16.0/9.0, 0.01, 100)

	vp := proj.Mul(view)

	// reference values computed in float64
	expected := Mat4f{
		0.8714213, -0.3162278, -0.4082891, -0.4082483,
		0.0000000, 1.5811388, -0.4082891, -0.4082483,
		-0.4357106, -0.6324555, -0.8165782, -0.8164966,
		0.0000000, 0.0000000, 4.8894684, 4.8989795,
	}

	for idx := range vp {
		assert.InDelta(t, expected[idx], vp[idx], 1e-5, "element %d", idx)
	}
}

func TestPerspectiveZODepthRange(t *testing.T) {
	proj := PerspectiveZO[float32](math.Pi/2, 1, 1, 10)

	near := apply(proj, Vec4f{0, 0, -1, 1})
	far := apply(proj, Vec4f{0, 0, -10, 1})

	assert.InDelta(t, 0.0, near[2]/near[3], 1e-6)
	assert.InDelta(t, 1.0, far[2]/far[3], 1e-6)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3f{2, 2, 4}
	view := LookAt(eye, Vec3f{}, Vec3f{0, 1, 0})

	origin := apply(view, Vec4f{eye[0], eye[1], eye[2], 1})
	assert.InDeltaSlice(t, []float32{0, 0, 0, 1}, origin[:], 1e-5)

	// the target lies straight ahead on the negative z axis
	target := apply(view, Vec4f{0, 0, 0, 1})
	assert.InDelta(t, 0, target[0], 1e-5)
	assert.InDelta(t, 0, target[1], 1e-5)
	assert.InDelta(t, -eye.Length(), target[2], 1e-5)
}

func TestMat4OfIsColumnMajor(t *testing.T) {
	m := Mat4Of([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	assert.Equal(t, []float32{5, 6, 7, 8}, m[4:8])

	identity := Mat4Of([4][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	assert.Equal(t, m, identity.Mul(m))
	assert.Equal(t, m, m.Mul(identity))
}

func TestMat3TransformPoint(t *testing.T) {
	m := ScaleMat3[float32](2, 3)
	assert.Equal(t, Vec2f{2, 3}, m.TransformPoint(Vec2f{1, 1}))

	rotated := RotationMat3[float32](math.Pi / 2).TransformPoint(Vec2f{1, 0})
	assert.InDelta(t, 0, rotated[0], 1e-3)
	assert.InDelta(t, 1, rotated[1], 1e-3)
}
