package raycaster

import "math"

// Builders return a 4×4 identity with a few cells overridden.

func Translation(x, y, z float64) Matrix {
	M := Identity()
	M.Set(0, 3, x)
	M.Set(1, 3, y)
	M.Set(2, 3, z)
	return M
}

func Scaling(x, y, z float64) Matrix {
	M := Identity()
	M.Set(0, 0, x)
	M.Set(1, 1, y)
	M.Set(2, 2, z)
	return M
}

func RotationX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.Set(1, 1, c)
	M.Set(1, 2, -s)
	M.Set(2, 1, s)
	M.Set(2, 2, c)
	return M
}

func RotationY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.Set(0, 0, c)
	M.Set(0, 2, s)
	M.Set(2, 0, -s)
	M.Set(2, 2, c)
	return M
}

func RotationZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.Set(0, 0, c)
	M.Set(0, 1, -s)
	M.Set(1, 0, s)
	M.Set(1, 1, c)
	return M
}

// Shearing moves each axis in proportion to another: xy is x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	M := Identity()
	M.Set(0, 1, xy)
	M.Set(0, 2, xz)
	M.Set(1, 0, yx)
	M.Set(1, 2, yz)
	M.Set(2, 0, zx)
	M.Set(2, 1, zy)
	return M
}

// Chain composes transforms in the order they are applied:
// Chain(A, B, C) == C*B*A.
func Chain(ts ...Matrix) Matrix {
	R := Identity()
	for _, T := range ts {
		R = T.Mul(R)
	}
	return R
}
