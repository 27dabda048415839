package math

import (
	"fmt"
	m "math"
)

// AxisAlignedBoundingBox is a box whose faces are parallel to the coordinate axes.
type AxisAlignedBoundingBox struct {
	Minimum Cartesian3
	Maximum Cartesian3
	// Center is (Minimum+Maximum)/2 unless it was supplied explicitly.
	Center Cartesian3
}

func NewAxisAlignedBoundingBox(minimum, maximum Cartesian3) AxisAlignedBoundingBox {
	return AxisAlignedBoundingBox{
		Minimum: minimum,
		Maximum: maximum,
		Center:  minimum.Add(maximum).MultiplyByScalar(0.5),
	}
}

// NewAxisAlignedBoundingBoxWithCenter overrides the derived center.
func NewAxisAlignedBoundingBoxWithCenter(minimum, maximum, center Cartesian3) AxisAlignedBoundingBox {
	return AxisAlignedBoundingBox{
		Minimum: minimum,
		Maximum: maximum,
		Center:  center,
	}
}

// AxisAlignedBoundingBoxFromCorners is an alias of NewAxisAlignedBoundingBox that
// reads better at call sites building a box from two corners.
func AxisAlignedBoundingBoxFromCorners(minimum, maximum Cartesian3) AxisAlignedBoundingBox {
	return NewAxisAlignedBoundingBox(minimum, maximum)
}

/**
 * @brief Computes the smallest box enclosing all positions in a single pass.
 * An empty list yields a zero sized box at the origin.
 */
func AxisAlignedBoundingBoxFromPoints(positions []Cartesian3) AxisAlignedBoundingBox {
	if len(positions) == 0 {
		return AxisAlignedBoundingBox{}
	}

	minimum := positions[0]
	maximum := positions[0]
	for _, p := range positions[1:] {
		minimum = minimum.MinimumByComponent(p)
		maximum = maximum.MaximumByComponent(p)
	}
	return NewAxisAlignedBoundingBox(minimum, maximum)
}

/**
 * @brief Classifies the box against plane, whose normal must be unit length.
 * @returns IntersectInside if the box lies entirely in the half-space the normal
 * points into, IntersectOutside if it lies entirely in the other one, and
 * IntersectIntersecting otherwise.
 */
func (b AxisAlignedBoundingBox) IntersectPlane(plane Plane) Intersect {
	h := b.Maximum.Subtract(b.Minimum).MultiplyByScalar(0.5)
	normal := plane.Normal
	// Projection of the half diagonal onto the normal.
	e := h.X*m.Abs(normal.X) + h.Y*m.Abs(normal.Y) + h.Z*m.Abs(normal.Z)
	s := b.Center.Dot(normal) + plane.Distance

	if s-e > 0 {
		return IntersectInside
	}
	if s+e < 0 {
		return IntersectOutside
	}
	return IntersectIntersecting
}

// Intersects reports whether b and other overlap, touching faces included.
func (b AxisAlignedBoundingBox) Intersects(other AxisAlignedBoundingBox) bool {
	return b.Minimum.X <= other.Maximum.X && b.Maximum.X >= other.Minimum.X &&
		b.Minimum.Y <= other.Maximum.Y && b.Maximum.Y >= other.Minimum.Y &&
		b.Minimum.Z <= other.Maximum.Z && b.Maximum.Z >= other.Minimum.Z
}

// Contains reports whether point lies inside the box or on its boundary.
func (b AxisAlignedBoundingBox) Contains(point Cartesian3) bool {
	return point.X >= b.Minimum.X && point.X <= b.Maximum.X &&
		point.Y >= b.Minimum.Y && point.Y <= b.Maximum.Y &&
		point.Z >= b.Minimum.Z && point.Z <= b.Maximum.Z
}

func (b AxisAlignedBoundingBox) Equals(other AxisAlignedBoundingBox) bool {
	return b == other
}

func (b AxisAlignedBoundingBox) String() string {
	return fmt.Sprintf("AABB(min %s, max %s, center %s)", b.Minimum, b.Maximum, b.Center)
}
