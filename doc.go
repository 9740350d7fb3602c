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

// Package pyinterp computes statistical aggregates of scattered
// geophysical samples on regular 2D grids. Samples are distributed to
// grid bins either by nearest-bin assignment or by area-weighted
// bilinear spreading over the four surrounding bins, with the bin
// areas measured on a plane or on a reference ellipsoid. Per-bin
// statistics are accumulated in a single pass and read back as dense
// grids.
//
// The supporting subpackages provide the coordinate axes (package
// axis), the geodetic coordinate transform (package geodetic), the
// radial taper kernels (package window) and the online statistical
// accumulators (package stat).
package pyinterp

// Axis is the bin-lookup capability the grids need from a coordinate
// axis: an ordered sequence of bin coordinates supporting nearest and
// bracketing searches. The axis package provides the standard
// implementation.
//
// Grids share, and never mutate, the axes they are given; an Axis
// implementation must therefore be safe for concurrent readers.
type Axis interface {
	// Len returns the number of values on the axis.
	Len() int
	// Value returns the i-th axis value.
	Value(i int) float64
	// IsAngle reports whether the axis wraps at 360°.
	IsAngle() bool
	// FindIndex returns the index of the axis value nearest to v, or
	// -1 if bounded is true and v lies outside the axis span.
	FindIndex(v float64, bounded bool) int
	// FindIndexes returns the consecutive indexes bracketing v, with
	// ok false if v lies outside the axis span.
	FindIndexes(v float64) (i0, i1 int, ok bool)
}

// Mode selects how Binning2D.Push distributes each sample.
type Mode int

const (
	// Nearest assigns the whole sample value to the single nearest
	// bin.
	Nearest Mode = iota
	// Linear spreads the sample value over the four bracketing bins
	// with bilinear area weights.
	Linear
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return "unknown"
}
