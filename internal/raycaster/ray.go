package raycaster

import "math"

// Ray starts at Origin (a point) and runs along Direction (a vector).
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

func NewRay(origin, direction Tuple) Ray { return Ray{Origin: origin, Direction: direction} }

// Position returns origin + direction*t.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform premultiplies origin and direction by M.
func (r Ray) Transform(M Matrix) Ray {
	return Ray{Origin: M.MulTuple(r.Origin), Direction: M.MulTuple(r.Direction)}
}

// Intersect takes a world-space ray, moves it into the sphere's object space
// and solves there. The t values are valid on r itself.
func (r Ray) Intersect(s *Sphere) Intersections {
	return r.Transform(s.worldToObject()).IntersectLocal(s)
}

// IntersectLocal treats r as already being in the sphere's object space and
// intersects it with the unit sphere at the origin.
// A tangent ray yields two equal roots, a miss yields none.
func (r Ray) IntersectLocal(s *Sphere) Intersections {
	sphereToRay := r.Origin.Sub(Point(0, 0, 0))
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return NewIntersections()
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return NewIntersections(
		Intersection{T: t1, Object: s},
		Intersection{T: t2, Object: s},
	)
}
