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

package stat

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
	"sort"
)

// DefaultBinCount is the number of bins a StreamingHistogram keeps
// when no explicit bin count is requested.
const DefaultBinCount = 40

// Bin is one centroid of a streaming histogram: a representative value
// and the total weight of the observations merged into it.
type Bin struct {
	Value  float64
	Weight float64
}

// StreamingHistogram summarizes a stream of values with a bounded
// number of weighted centroids, following Ben-Haim & Tom-Tov (2010).
// Statistics derived from it are exact while the number of distinct
// observed values stays within the bin limit and approximate after
// centroids start merging.
//
// The zero value is an empty histogram with DefaultBinCount bins.
type StreamingHistogram struct {
	bins  []Bin
	limit int
}

// NewStreamingHistogram returns an empty histogram keeping at most
// binCount bins. A binCount < 1 selects DefaultBinCount.
func NewStreamingHistogram(binCount int) StreamingHistogram {
	if binCount < 1 {
		binCount = DefaultBinCount
	}
	return StreamingHistogram{limit: binCount}
}

// BinCount returns the maximum number of bins kept by the histogram.
func (h *StreamingHistogram) BinCount() int {
	if h.limit < 1 {
		return DefaultBinCount
	}
	return h.limit
}

// Push adds a value with unit weight.
func (h *StreamingHistogram) Push(v float64) { h.pushWeighted(v, 1) }

func (h *StreamingHistogram) pushWeighted(v, w float64) {
	i := sort.Search(len(h.bins), func(i int) bool { return h.bins[i].Value >= v })
	if i < len(h.bins) && h.bins[i].Value == v {
		h.bins[i].Weight += w
		return
	}
	h.bins = append(h.bins, Bin{})
	copy(h.bins[i+1:], h.bins[i:])
	h.bins[i] = Bin{Value: v, Weight: w}
	h.compress()
}

// compress merges the two closest adjacent centroids until the bin
// limit is respected.
func (h *StreamingHistogram) compress() {
	for len(h.bins) > h.BinCount() {
		k := 0
		gap := math.Inf(1)
		for i := 0; i < len(h.bins)-1; i++ {
			if d := h.bins[i+1].Value - h.bins[i].Value; d < gap {
				gap = d
				k = i
			}
		}
		a, b := h.bins[k], h.bins[k+1]
		w := a.Weight + b.Weight
		h.bins[k] = Bin{Value: (a.Value*a.Weight + b.Value*b.Weight) / w, Weight: w}
		h.bins = append(h.bins[:k+1], h.bins[k+2:]...)
	}
}

// Clear resets the histogram, keeping its bin limit.
func (h *StreamingHistogram) Clear() { h.bins = h.bins[:0] }

// Size returns the number of centroids currently held.
func (h *StreamingHistogram) Size() int { return len(h.bins) }

// Bins returns a copy of the current centroids in ascending value
// order.
func (h *StreamingHistogram) Bins() []Bin {
	out := make([]Bin, len(h.bins))
	copy(out, h.bins)
	return out
}

// Count returns the total weight of the observed values.
func (h *StreamingHistogram) Count() float64 {
	var sum float64
	for _, b := range h.bins {
		sum += b.Weight
	}
	return sum
}

// Min returns the smallest centroid value, or NaN if the histogram is
// empty. It is the true minimum while no centroids have merged.
func (h *StreamingHistogram) Min() float64 {
	if len(h.bins) == 0 {
		return math.NaN()
	}
	return h.bins[0].Value
}

// Max returns the largest centroid value, or NaN if the histogram is
// empty.
func (h *StreamingHistogram) Max() float64 {
	if len(h.bins) == 0 {
		return math.NaN()
	}
	return h.bins[len(h.bins)-1].Value
}

// Mean returns the weighted mean of the centroids, or NaN if the
// histogram is empty.
func (h *StreamingHistogram) Mean() float64 {
	if len(h.bins) == 0 {
		return math.NaN()
	}
	var sv, sw float64
	for _, b := range h.bins {
		sv += b.Value * b.Weight
		sw += b.Weight
	}
	return sv / sw
}

// Variance returns the weighted population variance of the centroids,
// or NaN if the histogram is empty.
func (h *StreamingHistogram) Variance() float64 {
	if len(h.bins) == 0 {
		return math.NaN()
	}
	mean := h.Mean()
	var sv, sw float64
	for _, b := range h.bins {
		d := b.Value - mean
		sv += d * d * b.Weight
		sw += b.Weight
	}
	return sv / sw
}

// Quantile returns the value below which the fraction q of the
// observed weight falls, interpolating linearly between centroids.
// It returns NaN if the histogram is empty or q is outside [0, 1].
func (h *StreamingHistogram) Quantile(q float64) float64 {
	if len(h.bins) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	t := q * h.Count()
	// Cumulative weight up to the center of each bin.
	cum := 0.0
	prevCum := 0.0
	prevVal := h.bins[0].Value
	for i, b := range h.bins {
		c := cum + b.Weight/2
		if t <= c {
			if i == 0 {
				return b.Value
			}
			return prevVal + (b.Value-prevVal)*(t-prevCum)/(c-prevCum)
		}
		cum += b.Weight
		prevCum = c
		prevVal = b.Value
	}
	return h.bins[len(h.bins)-1].Value
}

// Merge folds the centroids of other into h.
func (h *StreamingHistogram) Merge(other *StreamingHistogram) {
	for _, b := range other.bins {
		h.pushWeighted(b.Value, b.Weight)
	}
}

// histogramState mirrors StreamingHistogram for gob encoding.
type histogramState struct {
	Limit int
	Bins  []Bin
}

// GobEncode implements gob.GobEncoder.
func (h *StreamingHistogram) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(histogramState{Limit: h.limit, Bins: h.bins}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (h *StreamingHistogram) GobDecode(data []byte) error {
	var state histogramState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return fmt.Errorf("stat: decoding histogram: %v", err)
	}
	h.limit = state.Limit
	h.bins = state.Bins
	return nil
}
