package gfx

import (
	"math"

	"github.com/oliverbestmann/learnwgpu/glm"
)

var (
	ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
	ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

	// ColorCornflowerBlue is the clear color of the tutorial apps.
	ColorCornflowerBlue = ColorLinearRGBA(100.0/255.0, 149.0/255.0, 237.0/255.0, 1)
)

// Color is a straight rgba color in linear space. Components are stored
// relative to one, so that the zero Color is opaque white.
type Color struct {
	inverse glm.Vec4f
}

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{inverse: glm.Vec4f{1 - r, 1 - g, 1 - b, 1 - a}}
}

// Vec returns the components in r, g, b, a order.
func (c Color) Vec() glm.Vec4f {
	return glm.Vec4f{1 - c.inverse[0], 1 - c.inverse[1], 1 - c.inverse[2], 1 - c.inverse[3]}
}

func (c Color) Components() (r, g, b, a float32) {
	return c.Vec().XYZW()
}

// RGBA8 quantizes the color to bytes, as used for vertex colors.
func (c Color) RGBA8() [4]uint8 {
	var result [4]uint8
	for idx, value := range c.Vec() {
		result[idx] = uint8(math.Round(float64(min(max(value, 0), 1)) * 255))
	}

	return result
}
