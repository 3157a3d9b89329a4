package glm

type Vec4[T Numeric] [4]T

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	return lhs[0], lhs[1], lhs[2], lhs[3]
}
