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

	"github.com/mcleantom/pangeo-pyinterp/stat"
)

// Histogram2D groups scattered (x, y, z) samples into the bins of a
// regular 2D grid, keeping a bounded streaming histogram of the z
// values in each bin. Unlike Binning2D it supports arbitrary quantile
// queries, at the price of approximate results once the per-bin
// histograms saturate.
//
// Samples are always assigned to the nearest bin. The concurrency
// rules are the same as for Binning2D: Push requires exclusive access,
// queries may run concurrently with each other.
type Histogram2D struct {
	x, y   Axis
	nx, ny int
	hist   []stat.StreamingHistogram
}

// NewHistogram2D creates a histogram grid over the given axes. Each
// bin keeps at most binCount histogram centroids; binCount < 1 selects
// stat.DefaultBinCount.
func NewHistogram2D(x, y Axis, binCount int) *Histogram2D {
	h := &Histogram2D{x: x, y: y, nx: x.Len(), ny: y.Len()}
	h.hist = make([]stat.StreamingHistogram, h.nx*h.ny)
	for i := range h.hist {
		h.hist[i] = stat.NewStreamingHistogram(binCount)
	}
	return h
}

// X returns the shared X axis.
func (h *Histogram2D) X() Axis { return h.x }

// Y returns the shared Y axis.
func (h *Histogram2D) Y() Axis { return h.y }

// Push distributes samples into the grid. The three slices must have
// the same length. Samples with NaN z values are skipped, and samples
// falling outside either axis are silently dropped.
func (h *Histogram2D) Push(x, y, z []float64) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("pyinterp: x, y and z must have the same length: %d, %d, %d",
			len(x), len(y), len(z))
	}
	for i, v := range z {
		if math.IsNaN(v) {
			continue
		}
		ix := h.x.FindIndex(x[i], true)
		iy := h.y.FindIndex(y[i], true)
		if ix != -1 && iy != -1 {
			h.hist[ix*h.ny+iy].Push(v)
		}
	}
	return nil
}

// Clear resets every bin to its initial empty state.
func (h *Histogram2D) Clear() {
	for i := range h.hist {
		h.hist[i].Clear()
	}
}

// Merge combines the histograms of other into h. The two grids must
// have been built over equal axes.
func (h *Histogram2D) Merge(other *Histogram2D) error {
	if !axisEqual(h.x, other.x) || !axisEqual(h.y, other.y) {
		return fmt.Errorf("pyinterp: unable to combine grids with different axes")
	}
	for i := range h.hist {
		h.hist[i].Merge(&other.hist[i])
	}
	return nil
}

func (h *Histogram2D) statistics(f func(*stat.StreamingHistogram) float64) *sparse.DenseArray {
	out := sparse.ZerosDense(h.nx, h.ny)
	for ix := 0; ix < h.nx; ix++ {
		for iy := 0; iy < h.ny; iy++ {
			out.Set(f(&h.hist[ix*h.ny+iy]), ix, iy)
		}
	}
	return out
}

// Count returns the number of observations per bin. Empty bins hold 0.
func (h *Histogram2D) Count() *sparse.DenseArray {
	return h.statistics((*stat.StreamingHistogram).Count)
}

// Min returns the minimum observed value per bin. Empty bins hold NaN.
func (h *Histogram2D) Min() *sparse.DenseArray {
	return h.statistics((*stat.StreamingHistogram).Min)
}

// Max returns the maximum observed value per bin. Empty bins hold NaN.
func (h *Histogram2D) Max() *sparse.DenseArray {
	return h.statistics((*stat.StreamingHistogram).Max)
}

// Mean returns the mean of the observed values per bin. Empty bins
// hold NaN.
func (h *Histogram2D) Mean() *sparse.DenseArray {
	return h.statistics((*stat.StreamingHistogram).Mean)
}

// Variance returns the population variance per bin. Empty bins hold
// NaN.
func (h *Histogram2D) Variance() *sparse.DenseArray {
	return h.statistics((*stat.StreamingHistogram).Variance)
}

// Quantile returns the q-th quantile estimate per bin. Empty bins hold
// NaN. q must lie in [0, 1].
func (h *Histogram2D) Quantile(q float64) (*sparse.DenseArray, error) {
	if q < 0 || q > 1 {
		return nil, fmt.Errorf("pyinterp: quantile must be in [0, 1], got %g", q)
	}
	return h.statistics(func(s *stat.StreamingHistogram) float64 {
		return s.Quantile(q)
	}), nil
}
