package math

import "fmt"

// Ray is a half-line starting at Origin. Direction is unit length unless the ray
// was built from a zero direction.
type Ray struct {
	Origin    Cartesian3
	Direction Cartesian3
}

// NewRay normalizes direction unless it is the zero vector.
func NewRay(origin, direction Cartesian3) Ray {
	if !direction.Equals(Cartesian3Zero) {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// GetPoint returns the point along the ray at distance t from the origin.
func (r Ray) GetPoint(t float64) Cartesian3 {
	return r.Origin.Add(r.Direction.MultiplyByScalar(t))
}

func (r Ray) Equals(other Ray) bool {
	return r == other
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%s, %s)", r.Origin, r.Direction)
}
