package gfx_test

import (
	"testing"

	"github.com/oliverbestmann/learnwgpu/gfx"
	"github.com/stretchr/testify/assert"
)

func TestColorRGBA8(t *testing.T) {
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, gfx.ColorWhite.RGBA8())
	assert.Equal(t, [4]uint8{100, 149, 237, 255}, gfx.ColorCornflowerBlue.RGBA8())

	// out of range values are clamped
	assert.Equal(t, [4]uint8{255, 0, 128, 255}, gfx.ColorLinearRGBA(2, -1, 0.5, 1).RGBA8())
}

func TestColorZeroIsWhite(t *testing.T) {
	assert.Equal(t, gfx.ColorWhite, gfx.Color{})

	r, g, b, a := gfx.Color{}.Components()
	assert.Equal(t, []float32{1, 1, 1, 1}, []float32{r, g, b, a})
}
