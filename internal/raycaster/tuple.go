package raycaster

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous coordinate: a point when W == 1, a vector when W == 0.
type Tuple struct {
	X, Y, Z, W float64
}

func NewTuple(x, y, z, w float64) Tuple { return Tuple{x, y, z, w} }

// Point returns a tuple with W == 1.
func Point(x, y, z float64) Tuple { return Tuple{x, y, z, 1} }

// Vector returns a tuple with W == 0.
func Vector(x, y, z float64) Tuple { return Tuple{x, y, z, 0} }

func (a Tuple) IsPoint() bool  { return a.W == 1 }
func (a Tuple) IsVector() bool { return a.W == 0 }

// Tuple functions; all four components take part, W included.
func (a Tuple) Add(b Tuple) Tuple     { return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Tuple) Sub(b Tuple) Tuple     { return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (a Tuple) Scale(s float64) Tuple { return Tuple{a.X * s, a.Y * s, a.Z * s, a.W * s} }
func (a Tuple) Div(s float64) Tuple   { return Tuple{a.X / s, a.Y / s, a.Z / s, a.W / s} }
func (a Tuple) Negate() Tuple         { return Tuple{-a.X, -a.Y, -a.Z, -a.W} }

// Dot returns the dot product over all four components.
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Magnitude returns the 3D length of a vector.
func (a Tuple) Magnitude() float64 {
	mustBeVector("magnitude", a)
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize divides every component by the 3D magnitude, so W stays 0.
func (a Tuple) Normalize() Tuple {
	return a.Div(a.Magnitude())
}

// Cross returns the 3D cross product of two vectors.
func (a Tuple) Cross(b Tuple) Tuple {
	mustBeVector("cross", a)
	mustBeVector("cross", b)
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// At returns component i (0..3 for X, Y, Z, W).
func (a Tuple) At(i int) (float64, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	case 2:
		return a.Z, nil
	case 3:
		return a.W, nil
	}
	return 0, fmt.Errorf("tuple component %d: %w", i, ErrOutOfRange)
}

// IsClose compares X, Y, Z within absTol and requires the same point/vector classification.
func (a Tuple) IsClose(b Tuple, absTol float64) bool {
	return isClose(a.X, b.X, absTol) &&
		isClose(a.Y, b.Y, absTol) &&
		isClose(a.Z, b.Z, absTol) &&
		a.IsPoint() == b.IsPoint()
}

func (a Tuple) Equal(b Tuple) bool { return a.IsClose(b, EqualTol) }

func (a Tuple) String() string {
	name := "vector"
	if a.IsPoint() {
		name = "point"
	}
	return fmt.Sprintf("%s(x=%.2f, y=%.2f, z=%.2f)", name, a.X, a.Y, a.Z)
}

func mustBeVector(op string, a Tuple) {
	if a.IsPoint() {
		panic(fmt.Errorf("%s of %v: %w", op, a, ErrNotVector))
	}
}
