/*
Copyright © 2026 the pyinterp-go authors.
This file is part of pyinterp-go.

pyinterp-go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

pyinterp-go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with pyinterp-go.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package geodetic provides reference ellipsoid parameters and the
// closed-form transform between Earth-Centered-Earth-Fixed Cartesian
// coordinates and geographic longitude, latitude and altitude.
package geodetic

import "math"

// Spheroid is a reference ellipsoid of revolution, defined by its
// semi-major axis in meters and its flattening. The zero value is not
// meaningful; use WGS84 or NewSpheroid.
type Spheroid struct {
	SemiMajorAxis float64
	Flattening    float64
}

// WGS84 returns the World Geodetic System 1984 reference ellipsoid.
func WGS84() Spheroid {
	return Spheroid{SemiMajorAxis: 6378137, Flattening: 1 / 298.257223563}
}

// NewSpheroid returns the ellipsoid with the given semi-major axis (m)
// and flattening.
func NewSpheroid(semiMajorAxis, flattening float64) Spheroid {
	return Spheroid{SemiMajorAxis: semiMajorAxis, Flattening: flattening}
}

// SemiMinorAxis returns the polar radius b = a(1-f) in meters.
func (s Spheroid) SemiMinorAxis() float64 {
	return s.SemiMajorAxis * (1 - s.Flattening)
}

// FirstEccentricitySquared returns e² = f(2-f).
func (s Spheroid) FirstEccentricitySquared() float64 {
	return s.Flattening * (2 - s.Flattening)
}

// SecondEccentricitySquared returns e'² = e²/(1-e²).
func (s Spheroid) SecondEccentricitySquared() float64 {
	e2 := s.FirstEccentricitySquared()
	return e2 / (1 - e2)
}

// AxisRatio returns b/a.
func (s Spheroid) AxisRatio() float64 {
	return s.SemiMinorAxis() / s.SemiMajorAxis
}

// LinearEccentricity returns sqrt(a²-b²) in meters.
func (s Spheroid) LinearEccentricity() float64 {
	a := s.SemiMajorAxis
	b := s.SemiMinorAxis()
	return math.Sqrt(a*a - b*b)
}

// MeanRadius returns the IUGG mean radius (2a+b)/3 in meters.
func (s Spheroid) MeanRadius() float64 {
	return (2*s.SemiMajorAxis + s.SemiMinorAxis()) / 3
}

// AuthalicRadius returns the radius of the sphere with the same
// surface area as the ellipsoid, in meters.
func (s Spheroid) AuthalicRadius() float64 {
	a := s.SemiMajorAxis
	b := s.SemiMinorAxis()
	e := math.Sqrt(s.FirstEccentricitySquared())
	if e == 0 {
		return a
	}
	return math.Sqrt((a*a + b*b*math.Atanh(e)/e) / 2)
}

// VolumetricRadius returns the radius of the sphere with the same
// volume as the ellipsoid, in meters.
func (s Spheroid) VolumetricRadius() float64 {
	return math.Cbrt(s.SemiMajorAxis * s.SemiMajorAxis * s.SemiMinorAxis())
}

// EquatorialCircumference returns the circumference of the equator if
// semiMajor is true, otherwise the circumference of a polar circle of
// radius b, in meters.
func (s Spheroid) EquatorialCircumference(semiMajor bool) float64 {
	if semiMajor {
		return 2 * math.Pi * s.SemiMajorAxis
	}
	return 2 * math.Pi * s.SemiMinorAxis()
}

// PolarRadiusOfCurvature returns a²/b in meters.
func (s Spheroid) PolarRadiusOfCurvature() float64 {
	return s.SemiMajorAxis * s.SemiMajorAxis / s.SemiMinorAxis()
}

// EquatorialRadiusOfCurvature returns the meridional radius of
// curvature at the equator, b²/a, in meters.
func (s Spheroid) EquatorialRadiusOfCurvature() float64 {
	b := s.SemiMinorAxis()
	return b * b / s.SemiMajorAxis
}

// RectangleArea returns the surface area in m² of the spheroidal
// rectangle bounded by the meridians lon0, lon1 and the parallels
// lat0, lat1, all in degrees. Longitudes may exceed the [-180, 180]
// range; only their difference matters. The result is always
// non-negative.
func (s Spheroid) RectangleArea(lon0, lat0, lon1, lat1 float64) float64 {
	dlon := math.Abs(lon1-lon0) * math.Pi / 180
	e2 := s.FirstEccentricitySquared()
	a := s.SemiMajorAxis
	q := math.Abs(s.areaIntegrand(lat1) - s.areaIntegrand(lat0))
	return dlon * a * a * (1 - e2) / 2 * q
}

// areaIntegrand evaluates sin(lat)/(1-e²sin²(lat)) + atanh(e·sin(lat))/e,
// the antiderivative giving the area between a parallel and the
// equator.
func (s Spheroid) areaIntegrand(lat float64) float64 {
	sinLat := math.Sin(lat * math.Pi / 180)
	e2 := s.FirstEccentricitySquared()
	if e2 == 0 {
		return 2 * sinLat
	}
	e := math.Sqrt(e2)
	return sinLat/(1-e2*sinLat*sinLat) + math.Atanh(e*sinLat)/e
}
