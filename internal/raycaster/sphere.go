package raycaster

import "fmt"

// Sphere is the unit sphere at the object-space origin, placed in the world
// by Transform (object -> world). The zero value has the identity transform.
type Sphere struct {
	transform Matrix
	inverse   Matrix // world -> object
	inverseT  Matrix // inverse transpose, for normals
}

func NewSphere() *Sphere {
	s := &Sphere{}
	_ = s.SetTransform(Identity())
	return s
}

// cached returns m, or the identity while the sphere is still a zero value.
func cached(m Matrix) Matrix {
	if m.size == 0 {
		return Identity()
	}
	return m
}

func (s *Sphere) Transform() Matrix { return cached(s.transform).Clone() }

// Inverse returns the world -> object transform.
func (s *Sphere) Inverse() Matrix { return cached(s.inverse).Clone() }

func (s *Sphere) worldToObject() Matrix { return cached(s.inverse) }

// SetTransform stores a copy of t and caches its inverse. A singular or
// non-4×4 transform is rejected and the previous one kept.
func (s *Sphere) SetTransform(t Matrix) error {
	if t.Size() != 4 {
		return fmt.Errorf("sphere transform %d×%d: %w", t.Size(), t.Size(), ErrSizeMismatch)
	}
	inv, err := t.Inverse()
	if err != nil {
		return fmt.Errorf("sphere transform: %w", err)
	}
	s.transform = t.Clone()
	s.inverse = inv
	s.inverseT = inv.Transpose()
	DebugLog("Sphere transform set: %v", s.transform)
	return nil
}

// NormalAt returns the unit world-space surface normal at a world-space point.
func (s *Sphere) NormalAt(worldPoint Tuple) Tuple {
	objectPoint := s.worldToObject().MulTuple(worldPoint)
	objectNormal := objectPoint.Sub(Point(0, 0, 0))
	worldNormal := cached(s.inverseT).MulTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
