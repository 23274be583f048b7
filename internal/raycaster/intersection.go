package raycaster

import "sort"

// Intersection is one crossing of a ray with Object at parameter T.
type Intersection struct {
	T      float64
	Object *Sphere
}

// Intersections is kept sorted by ascending T.
type Intersections struct {
	xs []Intersection
}

func NewIntersections(xs ...Intersection) Intersections {
	sorted := make([]Intersection, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return Intersections{xs: sorted}
}

func (is Intersections) Count() int { return len(is.xs) }

func (is Intersections) At(i int) Intersection { return is.xs[i] }

// All returns a copy of the sorted intersections.
func (is Intersections) All() []Intersection {
	out := make([]Intersection, len(is.xs))
	copy(out, is.xs)
	return out
}

// Merge returns the union of both sets, re-sorted.
func (is Intersections) Merge(other Intersections) Intersections {
	all := make([]Intersection, 0, len(is.xs)+len(other.xs))
	all = append(all, is.xs...)
	all = append(all, other.xs...)
	return NewIntersections(all...)
}

// Hit returns the intersection with the lowest strictly positive T.
// Intersections at or behind the ray origin never count.
func (is Intersections) Hit() (Intersection, bool) {
	for _, x := range is.xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
