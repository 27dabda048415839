package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/orbis/engine/core"
)

func TestPlane(t *testing.T) {
	p := PlaneFromPointNormal(Cartesian3{0, 0, 5}, Cartesian3UnitZ)
	assert.Equal(t, Plane{Cartesian3UnitZ, -5}, p)
	assert.Equal(t, 2.0, p.GetPointDistance(Cartesian3{1, 1, 7}))
	assert.Equal(t, -5.0, p.GetPointDistance(Cartesian3Zero))
	assert.Equal(t, Cartesian3{3, 4, 5}, p.ProjectPointOntoPlane(Cartesian3{3, 4, -10}))

	assert.Equal(t, 0.0, PlaneOriginXYPlane.GetPointDistance(Cartesian3{1, 2, 0}))
	assert.Equal(t, 3.0, PlaneOriginYZPlane.GetPointDistance(Cartesian3{3, 2, 1}))
	assert.Equal(t, 2.0, PlaneOriginZXPlane.GetPointDistance(Cartesian3{3, 2, 1}))

	packed := p.Pack(nil, 1)
	assert.Equal(t, []float64{0, 0, 0, 1, -5}, packed)
	assert.Equal(t, p, UnpackPlane(packed, 1))
	assert.True(t, p.EqualsEpsilon(NewPlane(Cartesian3{0, 0, 1 + Epsilon12}, -5), Epsilon10))
	assert.False(t, p.Equals(NewPlane(Cartesian3UnitZ, 5)))
}

func TestPlaneNonFiniteDistance(t *testing.T) {
	if !core.ChecksEnabled {
		t.Skip("contract checks are compiled out")
	}
	assert.Panics(t, func() { NewPlane(Cartesian3UnitX, m.Inf(1)) })
}

func TestAxisAlignedBoundingBoxFromPoints(t *testing.T) {
	assert.Equal(t, AxisAlignedBoundingBox{}, AxisAlignedBoundingBoxFromPoints(nil))

	box := AxisAlignedBoundingBoxFromPoints([]Cartesian3{{1, 2, 3}, {-1, 5, 0}, {4, -2, 1}})
	assert.Equal(t, Cartesian3{-1, -2, 0}, box.Minimum)
	assert.Equal(t, Cartesian3{4, 5, 3}, box.Maximum)
	assert.Equal(t, Cartesian3{1.5, 1.5, 1.5}, box.Center)

	rng := rand.New(rand.NewSource(13))
	points := make([]Cartesian3, 200)
	for i := range points {
		points[i] = Cartesian3{rng.Float64()*10 - 5, rng.Float64()*10 - 5, rng.Float64()*10 - 5}
	}
	box = AxisAlignedBoundingBoxFromPoints(points)
	for _, p := range points {
		assert.True(t, box.Contains(p))
	}
	assert.False(t, box.Contains(Cartesian3{6, 0, 0}))
}

func TestAxisAlignedBoundingBoxIntersectPlane(t *testing.T) {
	box := NewAxisAlignedBoundingBox(Cartesian3{-1, -1, -1}, Cartesian3{1, 1, 1})
	tests := []struct {
		name  string
		plane Plane
		want  Intersect
	}{
		{"through center", PlaneOriginXYPlane, IntersectIntersecting},
		{"box above", NewPlane(Cartesian3UnitZ, 2), IntersectInside},
		{"box below", NewPlane(Cartesian3UnitZ, -2), IntersectOutside},
		{"box behind flipped normal", NewPlane(Cartesian3UnitZ.Negate(), -2), IntersectOutside},
		{"touching face", NewPlane(Cartesian3UnitX, -1), IntersectIntersecting},
		{"diagonal clear", NewPlane(Cartesian3{1, 1, 1}.Normalize(), 2), IntersectInside},
		{"diagonal cutting", NewPlane(Cartesian3{1, 1, 1}.Normalize(), 1.5), IntersectIntersecting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.IntersectPlane(tt.plane), tt.want.String())
		})
	}

	shifted := NewAxisAlignedBoundingBoxWithCenter(Cartesian3{-1, -1, -1}, Cartesian3{1, 1, 1}, Cartesian3{0, 0, 10})
	assert.Equal(t, IntersectInside, shifted.IntersectPlane(PlaneOriginXYPlane))
}

func TestAxisAlignedBoundingBoxIntersects(t *testing.T) {
	a := AxisAlignedBoundingBoxFromCorners(Cartesian3Zero, Cartesian3One)
	assert.True(t, a.Intersects(NewAxisAlignedBoundingBox(Cartesian3{0.5, 0.5, 0.5}, Cartesian3{2, 2, 2})))
	assert.True(t, a.Intersects(NewAxisAlignedBoundingBox(Cartesian3{1, 0, 0}, Cartesian3{2, 1, 1})))
	assert.False(t, a.Intersects(NewAxisAlignedBoundingBox(Cartesian3{1.1, 0, 0}, Cartesian3{2, 1, 1})))
	assert.False(t, a.Intersects(NewAxisAlignedBoundingBox(Cartesian3{0, 0, -3}, Cartesian3{1, 1, -2})))
	assert.True(t, a.Equals(NewAxisAlignedBoundingBox(Cartesian3Zero, Cartesian3One)))
}

func TestBoundingRectangle(t *testing.T) {
	assert.Equal(t, BoundingRectangle{}, BoundingRectangleFromPoints(nil))

	r := BoundingRectangleFromPoints([]Cartesian2{{1, 2}, {-3, 4}, {5, -1}})
	assert.Equal(t, NewBoundingRectangle(-3, -1, 8, 5), r)
	assert.True(t, r.Contains(Cartesian2{0, 0}))
	assert.True(t, r.Contains(Cartesian2{5, 4}))
	assert.False(t, r.Contains(Cartesian2{5.1, 4}))

	a := NewBoundingRectangle(0, 0, 2, 2)
	b := NewBoundingRectangle(1, -1, 3, 1)
	assert.Equal(t, NewBoundingRectangle(0, -1, 4, 3), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))

	assert.Equal(t, NewBoundingRectangle(0, 0, 5, 2), a.Expand(Cartesian2{5, 1}))
	assert.Equal(t, NewBoundingRectangle(-1, -2, 3, 4), a.Expand(Cartesian2{-1, -2}))
	assert.Equal(t, a, a.Expand(Cartesian2{1, 1}))

	assert.Equal(t, IntersectIntersecting, a.Intersect(b))
	assert.Equal(t, IntersectIntersecting, a.Intersect(NewBoundingRectangle(2, 2, 1, 1)))
	assert.Equal(t, IntersectOutside, a.Intersect(NewBoundingRectangle(2.5, 0, 1, 1)))
	assert.Equal(t, IntersectOutside, a.Intersect(NewBoundingRectangle(0, -3, 1, 1)))

	assert.Equal(t, a, UnpackBoundingRectangle(a.Pack(nil, 0), 0))
	assert.True(t, a.Equals(NewBoundingRectangle(0, 0, 2, 2)))
}

func TestBoundingRectangleUnionContainsCorners(t *testing.T) {
	// Quarter steps keep every sum exact, so edges compare without tolerance.
	rng := rand.New(rand.NewSource(29))
	random := func() BoundingRectangle {
		return NewBoundingRectangle(
			float64(rng.Intn(800)-400)/4,
			float64(rng.Intn(800)-400)/4,
			float64(rng.Intn(400))/4,
			float64(rng.Intn(400))/4,
		)
	}
	corners := func(r BoundingRectangle) []Cartesian2 {
		return []Cartesian2{
			{r.X, r.Y},
			{r.X + r.Width, r.Y},
			{r.X, r.Y + r.Height},
			{r.X + r.Width, r.Y + r.Height},
		}
	}

	for i := 0; i < 500; i++ {
		a, b := random(), random()
		union := a.Union(b)
		for _, c := range append(corners(a), corners(b)...) {
			require.True(t, union.Contains(c), "%s u %s = %s misses %s", a, b, union, c)
		}
		assert.Equal(t, union, b.Union(a))
	}
}

func TestBoundingRectangleFromRectangle(t *testing.T) {
	rect := NewRectangle(-0.5, -0.25, 0.5, 0.25)

	geographic := BoundingRectangleFromRectangle(rect, nil)
	radius := EllipsoidWGS84.MaximumRadius()
	assert.InDelta(t, -0.5*radius, geographic.X, Epsilon6)
	assert.InDelta(t, -0.25*radius, geographic.Y, Epsilon6)
	assert.InDelta(t, radius, geographic.Width, Epsilon6)
	assert.InDelta(t, 0.5*radius, geographic.Height, Epsilon6)
	assert.Equal(t, geographic, BoundingRectangleFromRectangle(rect, NewGeographicProjection(EllipsoidWGS84)))

	mercator := BoundingRectangleFromRectangle(rect, NewWebMercatorProjection(EllipsoidWGS84))
	assert.InDelta(t, radius, mercator.Width, Epsilon6)
	// Mercator stretches latitudes away from the equator.
	assert.Greater(t, mercator.Height, geographic.Height)
}

func TestRay(t *testing.T) {
	r := NewRay(Cartesian3{1, 2, 3}, Cartesian3{0, 0, 10})
	assert.Equal(t, Cartesian3UnitZ, r.Direction)
	assert.Equal(t, Cartesian3{1, 2, 8}, r.GetPoint(5))
	assert.Equal(t, Cartesian3{1, 2, 3}, r.GetPoint(0))

	zero := NewRay(Cartesian3One, Cartesian3Zero)
	assert.Equal(t, Cartesian3Zero, zero.Direction)
	assert.Equal(t, Cartesian3One, zero.GetPoint(100))

	assert.True(t, r.Equals(NewRay(Cartesian3{1, 2, 3}, Cartesian3{0, 0, 1})))
	assert.Equal(t, "Ray((1, 2, 3), (0, 0, 1))", r.String())
}

func TestDistanceDisplayCondition(t *testing.T) {
	d := NewDistanceDisplayCondition(10, 100)
	assert.True(t, d.Contains(10))
	assert.True(t, d.Contains(100))
	assert.False(t, d.Contains(9.99))
	assert.True(t, DefaultDistanceDisplayCondition.Contains(1e300))

	assert.True(t, d.Equals(NewDistanceDisplayCondition(10, 100)))
	assert.False(t, d.Equals(NewDistanceDisplayCondition(10, 101)))
	assert.True(t, d.EqualsEpsilon(NewDistanceDisplayCondition(10.05, 99.95), Epsilon1))
	assert.False(t, d.EqualsEpsilon(NewDistanceDisplayCondition(10.5, 100), Epsilon1))

	assert.Equal(t, d, UnpackDistanceDisplayCondition(d.Pack(nil, 2), 2))
	assert.Equal(t, "DistanceDisplayCondition(10, 100)", d.String())
}

func TestIntersectString(t *testing.T) {
	assert.Equal(t, "outside", IntersectOutside.String())
	assert.Equal(t, "intersecting", IntersectIntersecting.String())
	assert.Equal(t, "inside", IntersectInside.String())
}
