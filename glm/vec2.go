package glm

type Vec2[T Numeric] [2]T

// Extend returns a Vec3 with the given z component.
func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}
