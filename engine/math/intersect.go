package math

// Intersect is the result of classifying a volume against a plane or another volume.
type Intersect int8

const (
	// Entirely in the negative half-space, or disjoint.
	IntersectOutside      Intersect = -1
	IntersectIntersecting Intersect = 0
	// Entirely in the positive half-space the plane normal points into.
	IntersectInside Intersect = 1
)

func (i Intersect) String() string {
	switch i {
	case IntersectOutside:
		return "outside"
	case IntersectIntersecting:
		return "intersecting"
	case IntersectInside:
		return "inside"
	}
	return "unknown"
}
