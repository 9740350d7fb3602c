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

package pyinterp

import (
	"github.com/ctessum/geom"

	"github.com/mcleantom/pangeo-pyinterp/geodetic"
)

// areaStrategy computes the bilinear weights of a sample inside the
// quadrilateral spanned by the bin corners (x0, y0) and (x1, y1). The
// weight of each corner is the partial area of the sub-quadrilateral
// opposite to it, normalized so the four weights sum to 1. Weights are
// non-negative for any sample inside the quadrilateral.
type areaStrategy interface {
	cornerWeights(xs, ys, x0, y0, x1, y1 float64) (w00, w01, w10, w11 float64)
}

// planarArea measures areas on the Cartesian plane.
type planarArea struct{}

func (planarArea) cornerWeights(xs, ys, x0, y0, x1, y1 float64) (w00, w01, w10, w11 float64) {
	a00 := quadArea(xs, ys, x1, y1)
	a01 := quadArea(xs, y0, x1, ys)
	a10 := quadArea(x0, ys, xs, y1)
	a11 := quadArea(x0, y0, xs, ys)
	return normalizeWeights(a00, a01, a10, a11)
}

// quadArea returns the area of the axis-aligned rectangle with
// opposite corners (xa, ya) and (xb, yb).
func quadArea(xa, ya, xb, yb float64) float64 {
	return geom.Polygon{{
		{X: xa, Y: ya}, {X: xb, Y: ya}, {X: xb, Y: yb}, {X: xa, Y: yb},
	}}.Area()
}

// geodeticArea measures areas on a reference ellipsoid; coordinates
// are longitudes and latitudes in degrees.
type geodeticArea struct {
	spheroid geodetic.Spheroid
}

func (g geodeticArea) cornerWeights(xs, ys, x0, y0, x1, y1 float64) (w00, w01, w10, w11 float64) {
	a00 := g.spheroid.RectangleArea(xs, ys, x1, y1)
	a01 := g.spheroid.RectangleArea(xs, y0, x1, ys)
	a10 := g.spheroid.RectangleArea(x0, ys, xs, y1)
	a11 := g.spheroid.RectangleArea(x0, y0, xs, ys)
	return normalizeWeights(a00, a01, a10, a11)
}

func normalizeWeights(a00, a01, a10, a11 float64) (w00, w01, w10, w11 float64) {
	total := a00 + a01 + a10 + a11
	if total == 0 {
		// Degenerate quadrilateral: the sample coincides with every
		// corner. Assign it to the lower corner.
		return 1, 0, 0, 0
	}
	return a00 / total, a01 / total, a10 / total, a11 / total
}
