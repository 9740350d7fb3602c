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

package geodetic

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Coordinates converts between ECEF Cartesian coordinates and
// geographic coordinates on a given reference ellipsoid. The ECEF to
// geographic direction uses a closed-form inversion (no iteration),
// valid for all finite points except the exact coordinate origin,
// including points near the poles and below the ellipsoid surface.
//
// A Coordinates value is immutable and safe for concurrent use.
type Coordinates struct {
	spheroid Spheroid
	// Constants precomputed from the first eccentricity squared for
	// the closed-form inversion.
	a, e2, a1, a2, a3, a4, a5, a6 float64
}

// NewCoordinates returns a converter for the given spheroid, or for
// WGS84 if spheroid is nil.
func NewCoordinates(spheroid *Spheroid) *Coordinates {
	s := WGS84()
	if spheroid != nil {
		s = *spheroid
	}
	e2 := s.FirstEccentricitySquared()
	a1 := s.SemiMajorAxis * e2
	return &Coordinates{
		spheroid: s,
		a:        s.SemiMajorAxis,
		e2:       e2,
		a1:       a1,
		a2:       a1 * a1,
		a3:       a1 * (e2 * 0.5),
		a4:       2.5 * (a1 * a1),
		a5:       a1 + a1*(e2*0.5),
		a6:       1 - e2,
	}
}

// Spheroid returns the reference ellipsoid used by the converter.
func (c *Coordinates) Spheroid() Spheroid { return c.spheroid }

// ECEFToLLA converts ECEF Cartesian coordinates in meters to
// geographic longitude and latitude in degrees and altitude in meters.
// The point must not be the coordinate origin.
func (c *Coordinates) ECEFToLLA(x, y, z float64) (lon, lat, alt float64) {
	zp := math.Abs(z)
	w2 := x*x + y*y
	w := math.Sqrt(w2)
	invR2 := 1 / (w2 + z*z)
	invR := math.Sqrt(invR2)
	s2 := z * z * invR2
	c2 := w2 * invR2

	u := c.a2 * invR
	v := c.a3 - c.a4*invR
	var s, cs, ss, latR float64

	if c2 > 0.3 {
		s = (zp * invR) * (1 + c2*(c.a1+u+s2*v)*invR)
		latR = math.Asin(s)
		ss = s * s
		cs = math.Sqrt(1 - ss)
	} else {
		cs = (w * invR) * (1 - s2*(c.a5-u-c2*v)*invR)
		latR = math.Acos(cs)
		ss = 1 - cs*cs
		s = math.Sqrt(ss)
	}

	g := 1 - c.e2*ss
	rg := c.a / math.Sqrt(g)
	rf := c.a6 * rg
	u = w - rg*cs
	v = zp - rf*s
	f := cs*u + s*v
	m := cs*v - s*u
	p := m / (rf/g + f)
	latR += p
	if z < 0 {
		latR = -latR
	}
	return math.Atan2(y, x) * rad2deg, latR * rad2deg, f + m*p*0.5
}

// LLAToECEF converts geographic longitude and latitude in degrees and
// altitude in meters to ECEF Cartesian coordinates in meters.
func (c *Coordinates) LLAToECEF(lon, lat, alt float64) (x, y, z float64) {
	sinX, cosX := math.Sincos(lon * deg2rad)
	sinY, cosY := math.Sincos(lat * deg2rad)
	n := c.a / math.Sqrt(1-c.e2*sinY*sinY)
	return (n + alt) * cosY * cosX,
		(n + alt) * cosY * sinX,
		(n*(1-c.e2) + alt) * sinY
}

// Transform converts a geographic coordinate on the ellipsoid of c to
// the equivalent geographic coordinate on the ellipsoid of target,
// going through the shared ECEF frame.
func (c *Coordinates) Transform(target *Coordinates, lon, lat, alt float64) (float64, float64, float64) {
	return target.ECEFToLLA(c.LLAToECEF(lon, lat, alt))
}
