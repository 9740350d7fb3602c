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

// Package axis implements the coordinate axes consumed by the binning
// grids: ordered sequences of bin coordinates, regularly or
// irregularly spaced, optionally angular (wrapping at 360°).
package axis

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
	"sort"
)

const circle = 360.0

// Axis is a strictly ascending sequence of bin coordinates. An axis
// marked angular treats its values as degrees on a circle: lookups
// normalize the searched value modulo 360° relative to the first axis
// value, and bracketing lookups wrap across the seam between the last
// and the first value.
//
// An Axis is immutable after construction and safe for concurrent
// read access.
type Axis struct {
	values   []float64
	step     float64 // spacing if the axis is regular, otherwise 0
	isCircle bool
}

// New builds an axis from a strictly ascending sequence of at least
// two values. epsilon is the tolerance used to decide whether the axis
// is regularly spaced (enabling constant-time lookup); isCircle marks
// the axis as angular. The values slice is copied.
func New(values []float64, epsilon float64, isCircle bool) (*Axis, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("axis: at least two values are required, got %d", len(values))
	}
	v := make([]float64, len(values))
	copy(v, values)
	for i := 1; i < len(v); i++ {
		if !(v[i] > v[i-1]) {
			return nil, fmt.Errorf("axis: values must be strictly ascending: "+
				"values[%d]=%g >= values[%d]=%g", i-1, v[i-1], i, v[i])
		}
	}
	if isCircle && v[len(v)-1]-v[0] >= circle {
		return nil, fmt.Errorf("axis: an angular axis must span less than %g degrees", circle)
	}
	a := &Axis{values: v, isCircle: isCircle}
	a.step = regularStep(v, epsilon)
	return a, nil
}

// regularStep returns the common spacing of v if the spacing never
// deviates from the mean by more than epsilon, otherwise 0.
func regularStep(v []float64, epsilon float64) float64 {
	step := (v[len(v)-1] - v[0]) / float64(len(v)-1)
	for i := 1; i < len(v); i++ {
		if math.Abs(v[i]-v[i-1]-step) > epsilon {
			return 0
		}
	}
	return step
}

// Len returns the number of values on the axis.
func (a *Axis) Len() int { return len(a.values) }

// Value returns the i-th axis value.
func (a *Axis) Value(i int) float64 { return a.values[i] }

// MinValue returns the first axis value.
func (a *Axis) MinValue() float64 { return a.values[0] }

// MaxValue returns the last axis value.
func (a *Axis) MaxValue() float64 { return a.values[len(a.values)-1] }

// IsAngle reports whether the axis wraps at 360°.
func (a *Axis) IsAngle() bool { return a.isCircle }

// IsRegular reports whether the axis values are evenly spaced.
func (a *Axis) IsRegular() bool { return a.step != 0 }

// normalize maps v into [values[0], values[0]+360) for angular axes
// and returns it unchanged otherwise.
func (a *Axis) normalize(v float64) float64 {
	if !a.isCircle {
		return v
	}
	d := math.Mod(v-a.values[0], circle)
	if d < 0 {
		d += circle
	}
	return a.values[0] + d
}

// FindIndex returns the index of the axis value nearest to v. If
// bounded is true, a value outside the axis span yields -1; otherwise
// it is clamped to the nearest end of the axis. Angular axes wrap, so
// every value is in range.
func (a *Axis) FindIndex(v float64, bounded bool) int {
	v = a.normalize(v)
	n := len(a.values)
	last := a.values[n-1]

	if a.isCircle && v > last {
		// Between the last value and the first value plus one turn:
		// nearest end, measured around the circle.
		if v-last < a.values[0]+circle-v {
			return n - 1
		}
		return 0
	}
	if v < a.values[0] || v > last {
		if bounded {
			return -1
		}
		if v < a.values[0] {
			return 0
		}
		return n - 1
	}
	if a.step != 0 {
		i := int(math.Round((v - a.values[0]) / a.step))
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return i
	}
	i := sort.SearchFloat64s(a.values, v)
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if v-a.values[i-1] <= a.values[i]-v {
		return i - 1
	}
	return i
}

// FindIndexes returns the pair of consecutive indexes whose values
// bracket v, with ok reporting success. Values outside the axis span
// yield ok == false, except on angular axes where a value between the
// last and (wrapped) first value brackets the seam: (Len()-1, 0).
func (a *Axis) FindIndexes(v float64) (i0, i1 int, ok bool) {
	v = a.normalize(v)
	n := len(a.values)
	last := a.values[n-1]

	if a.isCircle && v > last {
		return n - 1, 0, true
	}
	if v < a.values[0] || v > last {
		return 0, 0, false
	}
	if v == last {
		return n - 2, n - 1, true
	}
	if a.step != 0 {
		i := int((v - a.values[0]) / a.step)
		if i > n-2 {
			i = n - 2
		}
		return i, i + 1, true
	}
	// Largest index whose value is <= v.
	i := sort.SearchFloat64s(a.values, v)
	if i < n && a.values[i] == v {
		if i == n-1 {
			return n - 2, n - 1, true
		}
		return i, i + 1, true
	}
	return i - 1, i, true
}

// axisState mirrors Axis for gob encoding.
type axisState struct {
	Values   []float64
	Step     float64
	IsCircle bool
}

// GobEncode implements gob.GobEncoder.
func (a *Axis) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	state := axisState{Values: a.values, Step: a.step, IsCircle: a.isCircle}
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Axis) GobDecode(data []byte) error {
	var state axisState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return fmt.Errorf("axis: decoding axis: %v", err)
	}
	a.values = state.Values
	a.step = state.Step
	a.isCircle = state.IsCircle
	return nil
}
