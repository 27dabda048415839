package math

import m "math"

// MapProjection converts between geodetic coordinates and a 2D map plane.
// Project returns the map coordinates in X and Y and the height in Z.
type MapProjection interface {
	Ellipsoid() Ellipsoid
	Project(c Cartographic) Cartesian3
	Unproject(p Cartesian3) Cartographic
}

// GeographicProjection maps longitude and latitude linearly to X and Y by scaling
// them with the ellipsoid's maximum radius (equirectangular / plate carrée).
type GeographicProjection struct {
	ellipsoid            Ellipsoid
	semimajorAxis        float64
	oneOverSemimajorAxis float64
}

func NewGeographicProjection(ellipsoid Ellipsoid) *GeographicProjection {
	return &GeographicProjection{
		ellipsoid:            ellipsoid,
		semimajorAxis:        ellipsoid.MaximumRadius(),
		oneOverSemimajorAxis: 1.0 / ellipsoid.MaximumRadius(),
	}
}

func (p *GeographicProjection) Ellipsoid() Ellipsoid {
	return p.ellipsoid
}

func (p *GeographicProjection) Project(c Cartographic) Cartesian3 {
	return Cartesian3{
		c.Longitude * p.semimajorAxis,
		c.Latitude * p.semimajorAxis,
		c.Height,
	}
}

func (p *GeographicProjection) Unproject(v Cartesian3) Cartographic {
	return Cartographic{
		Longitude: v.X * p.oneOverSemimajorAxis,
		Latitude:  v.Y * p.oneOverSemimajorAxis,
		Height:    v.Z,
	}
}

// WebMercatorMaximumLatitude is the latitude at which the Mercator Y coordinate
// equals PI times the semimajor axis, making the projected world square.
var WebMercatorMaximumLatitude = MercatorAngleToGeodeticLatitude(Pi)

// WebMercatorProjection is the projection used by Google Maps, Bing Maps and most
// ArcGIS Online tiles (EPSG:3857).
type WebMercatorProjection struct {
	ellipsoid            Ellipsoid
	semimajorAxis        float64
	oneOverSemimajorAxis float64
}

func NewWebMercatorProjection(ellipsoid Ellipsoid) *WebMercatorProjection {
	return &WebMercatorProjection{
		ellipsoid:            ellipsoid,
		semimajorAxis:        ellipsoid.MaximumRadius(),
		oneOverSemimajorAxis: 1.0 / ellipsoid.MaximumRadius(),
	}
}

func (p *WebMercatorProjection) Ellipsoid() Ellipsoid {
	return p.ellipsoid
}

// MercatorAngleToGeodeticLatitude converts a Mercator angle in [-PI, PI] to a latitude.
func MercatorAngleToGeodeticLatitude(mercatorAngle float64) float64 {
	return PiOverTwo - 2.0*m.Atan(m.Exp(-mercatorAngle))
}

// GeodeticLatitudeToMercatorAngle converts a latitude to a Mercator angle, clamping
// the latitude to ±WebMercatorMaximumLatitude first.
func GeodeticLatitudeToMercatorAngle(latitude float64) float64 {
	if latitude > WebMercatorMaximumLatitude {
		latitude = WebMercatorMaximumLatitude
	} else if latitude < -WebMercatorMaximumLatitude {
		latitude = -WebMercatorMaximumLatitude
	}
	sinLatitude := m.Sin(latitude)
	return 0.5 * m.Log((1.0+sinLatitude)/(1.0-sinLatitude))
}

func (p *WebMercatorProjection) Project(c Cartographic) Cartesian3 {
	return Cartesian3{
		c.Longitude * p.semimajorAxis,
		GeodeticLatitudeToMercatorAngle(c.Latitude) * p.semimajorAxis,
		c.Height,
	}
}

func (p *WebMercatorProjection) Unproject(v Cartesian3) Cartographic {
	return Cartographic{
		Longitude: v.X * p.oneOverSemimajorAxis,
		Latitude:  MercatorAngleToGeodeticLatitude(v.Y * p.oneOverSemimajorAxis),
		Height:    v.Z,
	}
}
