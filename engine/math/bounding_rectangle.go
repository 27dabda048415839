package math

import (
	"fmt"

	"github.com/spaghettifunk/orbis/engine/core"
)

// BoundingRectangle is a 2D axis aligned rectangle given by its lower left corner
// and its size. Degenerate (negative) sizes are not rejected.
type BoundingRectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

const BoundingRectanglePackedLength = 4

func NewBoundingRectangle(x, y, width, height float64) BoundingRectangle {
	return BoundingRectangle{x, y, width, height}
}

// BoundingRectangleFromPoints computes the smallest rectangle enclosing positions.
// An empty list yields a zero rectangle.
func BoundingRectangleFromPoints(positions []Cartesian2) BoundingRectangle {
	if len(positions) == 0 {
		return BoundingRectangle{}
	}

	minimumX := positions[0].X
	minimumY := positions[0].Y
	maximumX := positions[0].X
	maximumY := positions[0].Y

	for _, p := range positions[1:] {
		minimumX = min(minimumX, p.X)
		maximumX = max(maximumX, p.X)
		minimumY = min(minimumY, p.Y)
		maximumY = max(maximumY, p.Y)
	}

	return BoundingRectangle{
		X:      minimumX,
		Y:      minimumY,
		Width:  maximumX - minimumX,
		Height: maximumY - minimumY,
	}
}

/**
 * @brief Projects the southwest and northeast corners of a geographic rectangle
 * and returns the rectangle they span in map coordinates.
 * @param projection The projection to use; nil selects a geographic projection on WGS84.
 */
func BoundingRectangleFromRectangle(rectangle Rectangle, projection MapProjection) BoundingRectangle {
	if projection == nil {
		projection = NewGeographicProjection(EllipsoidWGS84)
	}

	lowerLeft := projection.Project(rectangle.Southwest())
	upperRight := projection.Project(rectangle.Northeast())
	size := upperRight.Subtract(lowerLeft)

	return BoundingRectangle{
		X:      lowerLeft.X,
		Y:      lowerLeft.Y,
		Width:  size.X,
		Height: size.Y,
	}
}

// Union returns the smallest rectangle enclosing both r and other.
func (r BoundingRectangle) Union(other BoundingRectangle) BoundingRectangle {
	lowerLeftX := min(r.X, other.X)
	lowerLeftY := min(r.Y, other.Y)
	upperRightX := max(r.X+r.Width, other.X+other.Width)
	upperRightY := max(r.Y+r.Height, other.Y+other.Height)

	return BoundingRectangle{
		X:      lowerLeftX,
		Y:      lowerLeftY,
		Width:  upperRightX - lowerLeftX,
		Height: upperRightY - lowerLeftY,
	}
}

// Expand grows r so that it contains point, moving the lower left corner when the
// point lies below or to the left of it.
func (r BoundingRectangle) Expand(point Cartesian2) BoundingRectangle {
	width := point.X - r.X
	height := point.Y - r.Y

	if width > r.Width {
		r.Width = width
	} else if width < 0 {
		r.Width -= width
		r.X = point.X
	}

	if height > r.Height {
		r.Height = height
	} else if height < 0 {
		r.Height -= height
		r.Y = point.Y
	}
	return r
}

// Intersect returns IntersectIntersecting when the rectangles overlap (edges
// included) and IntersectOutside otherwise. Rectangles have no inside.
func (r BoundingRectangle) Intersect(other BoundingRectangle) Intersect {
	if !(r.X > other.X+other.Width ||
		r.X+r.Width < other.X ||
		r.Y+r.Height < other.Y ||
		r.Y > other.Y+other.Height) {
		return IntersectIntersecting
	}
	return IntersectOutside
}

// Contains reports whether point lies in r, edges included.
func (r BoundingRectangle) Contains(point Cartesian2) bool {
	return point.X >= r.X && point.X <= r.X+r.Width &&
		point.Y >= r.Y && point.Y <= r.Y+r.Height
}

func (r BoundingRectangle) PackedLength() int {
	return BoundingRectanglePackedLength
}

func (r BoundingRectangle) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+BoundingRectanglePackedLength)
	array[startingIndex] = r.X
	array[startingIndex+1] = r.Y
	array[startingIndex+2] = r.Width
	array[startingIndex+3] = r.Height
	return array
}

func UnpackBoundingRectangle(array []float64, startingIndex int) BoundingRectangle {
	checkUnpack(array, startingIndex, BoundingRectanglePackedLength)
	return BoundingRectangle{array[startingIndex], array[startingIndex+1], array[startingIndex+2], array[startingIndex+3]}
}

func (r BoundingRectangle) Equals(other BoundingRectangle) bool {
	return r == other
}

func (r BoundingRectangle) String() string {
	return fmt.Sprintf("BoundingRectangle(%v, %v, %v, %v)", r.X, r.Y, r.Width, r.Height)
}
