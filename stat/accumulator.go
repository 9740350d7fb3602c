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

// Package stat provides single-pass (online) statistical accumulators
// for gridded binning: a multi-moment accumulator with an approximate
// streaming median, and a fixed-size streaming histogram.
package stat

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
)

// Accumulator collects online statistics of a stream of observations:
// count, sum, minimum, maximum and the first four central moments,
// plus an approximate median (P² algorithm).
//
// The zero value is an empty accumulator ready for use. For an empty
// accumulator Count and Sum are zero and every other statistic is NaN.
type Accumulator struct {
	n    uint64
	sum  float64
	min  float64
	max  float64
	mean float64
	m2   float64
	m3   float64
	m4   float64
	med  p2Quantile
}

// Observe adds a value to the accumulator.
func (a *Accumulator) Observe(v float64) {
	if a.n == 0 {
		a.min = v
		a.max = v
	} else {
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}
	// Moment updates follow Pébay (2008), "Formulas for Robust,
	// One-Pass Parallel Computation of Covariances and Arbitrary-Order
	// Statistical Moments".
	n1 := float64(a.n)
	a.n++
	n := float64(a.n)
	delta := v - a.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1
	a.mean += deltaN
	a.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
	a.m3 += term1*deltaN*(n-2) - 3*deltaN*a.m2
	a.m2 += term1
	a.sum += v
	a.med.add(v)
}

// Clear resets the accumulator to its initial empty state.
func (a *Accumulator) Clear() { *a = Accumulator{} }

// Count returns the number of observed values.
func (a *Accumulator) Count() float64 { return float64(a.n) }

// Sum returns the sum of the observed values, or 0 if none have been
// observed.
func (a *Accumulator) Sum() float64 { return a.sum }

// Min returns the smallest observed value, or NaN if none have been
// observed.
func (a *Accumulator) Min() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.min
}

// Max returns the largest observed value, or NaN if none have been
// observed.
func (a *Accumulator) Max() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.max
}

// Mean returns the arithmetic mean of the observed values, or NaN if
// none have been observed.
func (a *Accumulator) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.mean
}

// Variance returns the population variance of the observed values, or
// NaN if none have been observed.
func (a *Accumulator) Variance() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.m2 / float64(a.n)
}

// Skewness returns the population skewness of the observed values, or
// NaN if none have been observed or if the variance is zero.
func (a *Accumulator) Skewness() float64 {
	if a.n == 0 || a.m2 == 0 {
		return math.NaN()
	}
	n := float64(a.n)
	return math.Sqrt(n) * a.m3 / math.Pow(a.m2, 1.5)
}

// Kurtosis returns the excess kurtosis of the observed values, or NaN
// if none have been observed or if the variance is zero.
func (a *Accumulator) Kurtosis() float64 {
	if a.n == 0 || a.m2 == 0 {
		return math.NaN()
	}
	n := float64(a.n)
	return n*a.m4/(a.m2*a.m2) - 3
}

// Median returns an estimate of the median of the observed values, or
// NaN if none have been observed. The estimate is exact for fewer than
// six observations and follows the P² streaming approximation
// otherwise.
func (a *Accumulator) Median() float64 { return a.med.value() }

// Merge combines the statistics of other into a, as if every value
// observed by other had also been observed by a. The median estimate
// of the merged accumulator is approximate: the two P² marker sets are
// combined by count-weighted averaging.
func (a *Accumulator) Merge(other *Accumulator) {
	if other.n == 0 {
		return
	}
	if a.n == 0 {
		*a = *other
		return
	}
	if other.min < a.min {
		a.min = other.min
	}
	if other.max > a.max {
		a.max = other.max
	}
	// Pairwise moment combination (Chan et al. / Pébay).
	na := float64(a.n)
	nb := float64(other.n)
	n := na + nb
	delta := other.mean - a.mean
	delta2 := delta * delta
	delta3 := delta2 * delta
	delta4 := delta2 * delta2

	m2 := a.m2 + other.m2 + delta2*na*nb/n
	m3 := a.m3 + other.m3 +
		delta3*na*nb*(na-nb)/(n*n) +
		3*delta*(na*other.m2-nb*a.m2)/n
	m4 := a.m4 + other.m4 +
		delta4*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*delta2*(na*na*other.m2+nb*nb*a.m2)/(n*n) +
		4*delta*(na*other.m3-nb*a.m3)/n

	a.mean += delta * nb / n
	a.m2, a.m3, a.m4 = m2, m3, m4
	a.sum += other.sum
	a.n += other.n
	a.med.merge(&other.med)
}

// accumulatorState mirrors Accumulator for gob encoding.
type accumulatorState struct {
	N                          uint64
	Sum, Min, Max              float64
	Mean, M2, M3, M4           float64
	MedN                       int
	MedHeights, MedPos, MedDes [5]float64
}

// GobEncode implements gob.GobEncoder.
func (a *Accumulator) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	state := accumulatorState{
		N: a.n, Sum: a.sum, Min: a.min, Max: a.max,
		Mean: a.mean, M2: a.m2, M3: a.m3, M4: a.m4,
		MedN: a.med.n, MedHeights: a.med.heights,
		MedPos: a.med.pos, MedDes: a.med.des,
	}
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Accumulator) GobDecode(data []byte) error {
	var state accumulatorState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return fmt.Errorf("stat: decoding accumulator: %v", err)
	}
	a.n = state.N
	a.sum, a.min, a.max = state.Sum, state.Min, state.Max
	a.mean, a.m2, a.m3, a.m4 = state.Mean, state.M2, state.M3, state.M4
	a.med = p2Quantile{}
	a.med.n = state.MedN
	a.med.heights = state.MedHeights
	a.med.pos = state.MedPos
	a.med.des = state.MedDes
	return nil
}
