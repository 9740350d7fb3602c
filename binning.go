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
	"fmt"
	"math"

	"github.com/ctessum/sparse"

	"github.com/mcleantom/pangeo-pyinterp/geodetic"
	"github.com/mcleantom/pangeo-pyinterp/stat"
)

// Binning2D groups scattered (x, y, z) samples into the bins of a
// regular 2D grid, accumulating per-bin statistics of the z values.
//
// The grid shares its axes with the caller and never mutates them; the
// accumulator matrix, shaped (x.Len(), y.Len()), is owned by the grid.
// If a spheroid is supplied at construction, x and y are longitudes
// and latitudes in degrees and the bilinear weights of Linear pushes
// are computed from spheroidal bin areas; otherwise the grid is
// Cartesian and the weights come from planar areas. The choice is
// fixed for the lifetime of the grid.
//
// Push is the only mutating operation and requires exclusive access to
// the grid. Statistics queries may run concurrently with each other as
// long as no Push is in flight.
type Binning2D struct {
	x, y     Axis
	nx, ny   int
	spheroid *geodetic.Spheroid
	area     areaStrategy
	acc      []stat.Accumulator
}

// NewBinning2D creates a grid over the given axes. A nil spheroid
// selects the planar weighting strategy, a non-nil one the spheroidal
// strategy. The axes must outlive the grid.
func NewBinning2D(x, y Axis, spheroid *geodetic.Spheroid) *Binning2D {
	b := &Binning2D{
		x:        x,
		y:        y,
		nx:       x.Len(),
		ny:       y.Len(),
		spheroid: spheroid,
	}
	if spheroid != nil {
		b.area = geodeticArea{spheroid: *spheroid}
	} else {
		b.area = planarArea{}
	}
	b.acc = make([]stat.Accumulator, b.nx*b.ny)
	return b
}

// X returns the shared X axis.
func (b *Binning2D) X() Axis { return b.x }

// Y returns the shared Y axis.
func (b *Binning2D) Y() Axis { return b.y }

// Push distributes samples into the grid. The three slices must have
// the same length. Samples with NaN z values are skipped, and samples
// falling outside either axis are silently dropped.
//
// In Nearest mode each sample value is observed once, by the bin
// nearest to the sample. In Linear mode the sample value is spread
// over the four bracketing bins: each bin with a nonzero bilinear area
// weight w observes z·w, counting as one observation for that bin.
func (b *Binning2D) Push(x, y, z []float64, mode Mode) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("pyinterp: x, y and z must have the same length: %d, %d, %d",
			len(x), len(y), len(z))
	}
	switch mode {
	case Nearest:
		b.pushNearest(x, y, z)
	case Linear:
		b.pushLinear(x, y, z)
	default:
		return fmt.Errorf("pyinterp: unknown push mode: %d", int(mode))
	}
	return nil
}

func (b *Binning2D) pushNearest(x, y, z []float64) {
	for i, v := range z {
		if math.IsNaN(v) {
			continue
		}
		ix := b.x.FindIndex(x[i], true)
		iy := b.y.FindIndex(y[i], true)
		if ix != -1 && iy != -1 {
			b.acc[ix*b.ny+iy].Observe(v)
		}
	}
}

func (b *Binning2D) pushLinear(x, y, z []float64) {
	for i, v := range z {
		if math.IsNaN(v) {
			continue
		}
		ix0, ix1, okx := b.x.FindIndexes(x[i])
		iy0, iy1, oky := b.y.FindIndexes(y[i])
		if !okx || !oky {
			continue
		}

		x0 := b.x.Value(ix0)
		x1 := b.x.Value(ix1)
		xs := x[i]
		if b.x.IsAngle() {
			// Unwrap the upper corner and the sample relative to the
			// lower bracket edge so a seam-crossing bracket (e.g.
			// 358°/2°) does not produce a 356° wide cell.
			x1 = x0 + wrapDelta(x1-x0)
			xs = x0 + math.Mod(wrapDelta(xs-x0), 360)
		}
		y0 := b.y.Value(iy0)
		y1 := b.y.Value(iy1)

		w00, w01, w10, w11 := b.area.cornerWeights(xs, y[i], x0, y0, x1, y1)
		if w00 != 0 {
			b.acc[ix0*b.ny+iy0].Observe(v * w00)
		}
		if w01 != 0 {
			b.acc[ix0*b.ny+iy1].Observe(v * w01)
		}
		if w10 != 0 {
			b.acc[ix1*b.ny+iy0].Observe(v * w10)
		}
		if w11 != 0 {
			b.acc[ix1*b.ny+iy1].Observe(v * w11)
		}
	}
}

// wrapDelta maps an angular difference into (0, 360].
func wrapDelta(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= 0 {
		d += 360
	}
	return d
}

// Clear resets every bin to its initial empty state. The grid shape
// and weighting strategy are unchanged.
func (b *Binning2D) Clear() {
	for i := range b.acc {
		b.acc[i].Clear()
	}
}

// Merge combines the statistics of other into b, as if every sample
// pushed into other had been pushed into b. The two grids must have
// been built over equal axes and the same weighting strategy. The
// per-bin median estimates of the merged grid are approximate.
func (b *Binning2D) Merge(other *Binning2D) error {
	if !axisEqual(b.x, other.x) || !axisEqual(b.y, other.y) {
		return fmt.Errorf("pyinterp: unable to combine grids with different axes")
	}
	if (b.spheroid == nil) != (other.spheroid == nil) {
		return fmt.Errorf("pyinterp: unable to combine grids with different weighting strategies")
	}
	for i := range b.acc {
		b.acc[i].Merge(&other.acc[i])
	}
	return nil
}

// axisEqual reports whether two axes hold the same values and
// angularity.
func axisEqual(a, b Axis) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() || a.IsAngle() != b.IsAngle() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Value(i) != b.Value(i) {
			return false
		}
	}
	return true
}

// statistics evaluates f on every bin and returns the results as a
// dense grid shaped (x.Len(), y.Len()).
func (b *Binning2D) statistics(f func(*stat.Accumulator) float64) *sparse.DenseArray {
	out := sparse.ZerosDense(b.nx, b.ny)
	for ix := 0; ix < b.nx; ix++ {
		for iy := 0; iy < b.ny; iy++ {
			out.Set(f(&b.acc[ix*b.ny+iy]), ix, iy)
		}
	}
	return out
}

// Count returns the number of observations per bin. Empty bins hold 0.
func (b *Binning2D) Count() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Count)
}

// Sum returns the sum of the observed values per bin. Empty bins
// hold 0.
func (b *Binning2D) Sum() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Sum)
}

// Min returns the minimum observed value per bin. Empty bins hold NaN.
func (b *Binning2D) Min() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Min)
}

// Max returns the maximum observed value per bin. Empty bins hold NaN.
func (b *Binning2D) Max() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Max)
}

// Mean returns the mean of the observed values per bin. Empty bins
// hold NaN.
func (b *Binning2D) Mean() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Mean)
}

// Median returns the streaming median estimate per bin. Empty bins
// hold NaN.
func (b *Binning2D) Median() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Median)
}

// Variance returns the population variance per bin. Empty bins hold
// NaN.
func (b *Binning2D) Variance() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Variance)
}

// Skewness returns the population skewness per bin. Empty or
// zero-variance bins hold NaN.
func (b *Binning2D) Skewness() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Skewness)
}

// Kurtosis returns the excess kurtosis per bin. Empty or zero-variance
// bins hold NaN.
func (b *Binning2D) Kurtosis() *sparse.DenseArray {
	return b.statistics((*stat.Accumulator).Kurtosis)
}
