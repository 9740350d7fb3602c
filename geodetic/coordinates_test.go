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

import (
	"math"
	"testing"
)

func TestLLAToECEFKnownPoint(t *testing.T) {
	c := NewCoordinates(nil)
	x, y, z := c.LLAToECEF(78.042068, 27.173891, 168.0)
	if math.Abs(x-1176498.769459714) > 1e-6 ||
		math.Abs(y-5555043.905503586) > 1e-6 ||
		math.Abs(z-2895446.8901510699) > 1e-6 {
		t.Errorf("LLAToECEF = (%.9f, %.9f, %.9f), want (1176498.769459714, 5555043.905503586, 2895446.890151070)",
			x, y, z)
	}
}

func TestECEFToLLAKnownPoint(t *testing.T) {
	c := NewCoordinates(nil)
	lon, lat, alt := c.ECEFToLLA(1176498.769459714, 5555043.905503586, 2895446.8901510699)
	if math.Abs(lon-78.042068) > 1e-8 ||
		math.Abs(lat-27.173891) > 1e-8 ||
		math.Abs(alt-168.0) > 1e-6 {
		t.Errorf("ECEFToLLA = (%.9f, %.9f, %.6f), want (78.042068, 27.173891, 168.0)",
			lon, lat, alt)
	}
}

func TestRoundTrip(t *testing.T) {
	c := NewCoordinates(nil)
	for lat := -89.0; lat <= 89.0; lat += 7.3 {
		for lon := -179.0; lon <= 179.0; lon += 23.7 {
			for _, alt := range []float64{-1000, 0, 42.5, 12000, 100000} {
				lon2, lat2, alt2 := c.ECEFToLLA(c.LLAToECEF(lon, lat, alt))
				if math.Abs(lon2-lon) > 1e-8 || math.Abs(lat2-lat) > 1e-8 {
					t.Fatalf("round trip of (%g, %g, %g) moved to (%.10f, %.10f)",
						lon, lat, alt, lon2, lat2)
				}
				if math.Abs(alt2-alt) > 1e-6 {
					t.Fatalf("round trip of (%g, %g, %g) changed altitude to %.9f",
						lon, lat, alt, alt2)
				}
			}
		}
	}
}

func TestRoundTripNearPoles(t *testing.T) {
	// The inversion switches formulas when the point leaves the
	// low-latitude branch; both sides of the switch must round trip.
	c := NewCoordinates(nil)
	for _, lat := range []float64{-89, -66.5, -33, 33, 66.5, 89} {
		lon2, lat2, alt2 := c.ECEFToLLA(c.LLAToECEF(45, lat, 500))
		if math.Abs(lon2-45) > 1e-8 || math.Abs(lat2-lat) > 1e-8 || math.Abs(alt2-500) > 1e-6 {
			t.Errorf("round trip at latitude %g = (%.10f, %.10f, %.9f)", lat, lon2, lat2, alt2)
		}
	}
}

func TestECEFToLLAEquatorAndPole(t *testing.T) {
	c := NewCoordinates(nil)
	a := c.Spheroid().SemiMajorAxis
	b := c.Spheroid().SemiMinorAxis()

	lon, lat, alt := c.ECEFToLLA(a, 0, 0)
	if math.Abs(lon) > 1e-10 || math.Abs(lat) > 1e-10 || math.Abs(alt) > 1e-8 {
		t.Errorf("equator point = (%g, %g, %g), want (0, 0, 0)", lon, lat, alt)
	}
	_, lat, alt = c.ECEFToLLA(0, 0, b)
	if math.Abs(lat-90) > 1e-10 || math.Abs(alt) > 1e-8 {
		t.Errorf("north pole = (lat %g, alt %g), want (90, 0)", lat, alt)
	}
	_, lat, alt = c.ECEFToLLA(0, 0, -b)
	if math.Abs(lat+90) > 1e-10 || math.Abs(alt) > 1e-8 {
		t.Errorf("south pole = (lat %g, alt %g), want (-90, 0)", lat, alt)
	}
}

func TestTransformBetweenSpheroids(t *testing.T) {
	wgs84 := NewCoordinates(nil)

	// To itself, the transform is the identity.
	lon, lat, alt := wgs84.Transform(wgs84, 12.5, -33.25, 1234)
	if math.Abs(lon-12.5) > 1e-8 || math.Abs(lat+33.25) > 1e-8 || math.Abs(alt-1234) > 1e-6 {
		t.Errorf("identity transform moved the point to (%g, %g, %g)", lon, lat, alt)
	}

	// To a sphere of the mean radius, the equator stays put
	// horizontally but the altitude absorbs the radius difference.
	sphere := NewSpheroid(6371008.7714, 0)
	sc := NewCoordinates(&sphere)
	lon, lat, alt = wgs84.Transform(sc, 50, 0, 0)
	if math.Abs(lon-50) > 1e-8 || math.Abs(lat) > 1e-8 {
		t.Errorf("equator point moved horizontally to (%g, %g)", lon, lat)
	}
	wantAlt := wgs84.Spheroid().SemiMajorAxis - sphere.SemiMajorAxis
	if math.Abs(alt-wantAlt) > 1e-6 {
		t.Errorf("altitude on the sphere = %g, want %g", alt, wantAlt)
	}
}
