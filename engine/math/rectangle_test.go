package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestRectangleDimensions(t *testing.T) {
	r := RectangleFromDegrees(-10, -20, 30, 40)
	assert.InDelta(t, ToRadians(40), r.Width(), Epsilon15)
	assert.InDelta(t, ToRadians(60), r.Height(), Epsilon15)
	assert.Equal(t, Cartographic{Longitude: r.West, Latitude: r.South}, r.Southwest())
	assert.Equal(t, Cartographic{Longitude: r.West, Latitude: r.North}, r.Northwest())
	assert.Equal(t, Cartographic{Longitude: r.East, Latitude: r.North}, r.Northeast())
	assert.Equal(t, Cartographic{Longitude: r.East, Latitude: r.South}, r.Southeast())

	center := r.Center()
	assert.InDelta(t, ToRadians(10), center.Longitude, Epsilon15)
	assert.InDelta(t, ToRadians(10), center.Latitude, Epsilon15)

	assert.InDelta(t, TwoPi, RectangleMaxValue.Width(), Epsilon15)
	assert.InDelta(t, Pi, RectangleMaxValue.Height(), Epsilon15)
}

func TestRectangleAcrossAntimeridian(t *testing.T) {
	r := RectangleFromDegrees(170, -10, -170, 10)
	assert.InDelta(t, ToRadians(20), r.Width(), Epsilon14)
	assert.InDelta(t, Pi, m.Abs(r.Center().Longitude), Epsilon14)

	assert.True(t, r.Contains(CartographicFromDegrees(175, 0, 0)))
	assert.True(t, r.Contains(CartographicFromDegrees(-175, 5, 0)))
	assert.True(t, r.Contains(CartographicFromDegrees(170, -10, 0)))
	assert.False(t, r.Contains(CartographicFromDegrees(0, 0, 0)))
	assert.False(t, r.Contains(CartographicFromDegrees(175, 11, 0)))
}

func TestRectangleContainsZeroEdge(t *testing.T) {
	east := NewRectangle(0, -0.5, 1, 0.5)
	assert.True(t, east.Contains(CartographicFromRadians(-5e-15, 0, 0)))
	assert.True(t, east.Contains(CartographicFromRadians(0, 0.5, 0)))
	assert.False(t, east.Contains(CartographicFromRadians(-1e-13, 0, 0)))

	west := NewRectangle(-1, -0.5, 0, 0.5)
	assert.True(t, west.Contains(CartographicFromRadians(5e-15, 0, 0)))
	assert.False(t, west.Contains(CartographicFromRadians(1e-13, 0, 0)))
}

func TestRectangleFromCartographicArray(t *testing.T) {
	r := RectangleFromCartographicArray([]Cartographic{
		CartographicFromDegrees(10, 5, 0),
		CartographicFromDegrees(-20, 15, 100),
		CartographicFromDegrees(0, -5, 0),
	})
	assert.True(t, r.EqualsEpsilon(RectangleFromDegrees(-20, -5, 10, 15), Epsilon15))

	// Points on both sides of the anti-meridian produce the narrow rectangle.
	r = RectangleFromCartographicArray([]Cartographic{
		CartographicFromDegrees(175, 0, 0),
		CartographicFromDegrees(-175, 1, 0),
	})
	assert.True(t, r.EqualsEpsilon(RectangleFromDegrees(175, 0, -175, 1), Epsilon14), "%s", r)
	assert.InDelta(t, ToRadians(10), r.Width(), Epsilon14)

	rng := rand.New(rand.NewSource(5))
	points := make([]Cartographic, 50)
	for i := range points {
		points[i] = CartographicFromDegrees(rng.Float64()*100-50, rng.Float64()*100-50, 0)
	}
	r = RectangleFromCartographicArray(points)
	for _, p := range points {
		assert.True(t, r.Contains(p))
	}
}

func TestRectanglePackEquals(t *testing.T) {
	r := NewRectangle(-1, -0.5, 1, 0.5)
	assert.Equal(t, r, UnpackRectangle(r.Pack(nil, 3), 3))
	assert.True(t, r.Equals(NewRectangle(-1, -0.5, 1, 0.5)))
	assert.True(t, r.EqualsEpsilon(NewRectangle(-1, -0.5, 1, 0.5+Epsilon10), Epsilon9))
	assert.False(t, r.EqualsEpsilon(NewRectangle(-1, -0.5, 1, 0.6), Epsilon9))
}

func TestGeographicProjection(t *testing.T) {
	p := NewGeographicProjection(EllipsoidWGS84)
	assert.True(t, p.Ellipsoid().Equals(EllipsoidWGS84))

	c := CartographicFromRadians(1, 0.5, 42)
	projected := p.Project(c)
	assert.Equal(t, Cartesian3{6378137, 0.5 * 6378137, 42}, projected)
	assert.True(t, p.Unproject(projected).EqualsEpsilon(c, Epsilon15))
}

func TestWebMercatorProjection(t *testing.T) {
	var p MapProjection = NewWebMercatorProjection(EllipsoidWGS84)

	assert.InDelta(t, ToRadians(85.05112877980659), WebMercatorMaximumLatitude, Epsilon12)
	assert.InDelta(t, Pi, GeodeticLatitudeToMercatorAngle(WebMercatorMaximumLatitude), Epsilon12)
	// Latitudes beyond the maximum are clamped.
	assert.Equal(t, GeodeticLatitudeToMercatorAngle(WebMercatorMaximumLatitude), GeodeticLatitudeToMercatorAngle(PiOverTwo))
	assert.Equal(t, GeodeticLatitudeToMercatorAngle(-WebMercatorMaximumLatitude), GeodeticLatitudeToMercatorAngle(-PiOverTwo))

	projected := p.Project(CartographicFromDegrees(180, 0, 7))
	assert.InDelta(t, Pi*6378137, projected.X, Epsilon6)
	assert.InDelta(t, 0, projected.Y, Epsilon6)
	assert.Equal(t, 7.0, projected.Z)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		c := CartographicFromDegrees(rng.Float64()*360-180, rng.Float64()*170-85, rng.Float64()*1000)
		got := p.Unproject(p.Project(c))
		assert.True(t, got.EqualsEpsilon(c, Epsilon12), "%s != %s", got, c)
	}
}
