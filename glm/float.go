package glm

import "golang.org/x/exp/constraints"

// Rad is an angle in radians.
type Rad float32

type float interface {
	~float32 | ~float64
}

// Numeric is the set of element types vectors and matrices can be built from.
type Numeric interface {
	constraints.Float | constraints.Integer
}
