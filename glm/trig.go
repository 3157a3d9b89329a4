package glm

import "golang.org/x/mobile/exp/f32"

// Sincos returns sine and cosine of the angle, computed in float32.
func (r Rad) Sincos() (sin, cos float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}
