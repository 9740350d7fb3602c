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
	"math"
	"sort"
)

// p2Quantile estimates the median of a stream without storing it,
// using the P² algorithm of Jain & Chlamtac (1985) with five markers.
// The zero value is ready for use. The first five observations are
// kept verbatim, so the estimate is exact until the sixth value
// arrives.
type p2Quantile struct {
	n       int
	heights [5]float64
	pos     [5]float64
	des     [5]float64
}

// p2Increments are the per-observation increments of the desired
// marker positions for the 0.5 quantile.
var p2Increments = [5]float64{0, 0.25, 0.5, 0.75, 1}

func (q *p2Quantile) add(v float64) {
	if q.n < 5 {
		q.heights[q.n] = v
		q.n++
		if q.n == 5 {
			sort.Float64s(q.heights[:])
			q.pos = [5]float64{1, 2, 3, 4, 5}
			q.des = [5]float64{1, 2, 3, 4, 5}
		}
		return
	}

	var k int
	switch {
	case v < q.heights[0]:
		q.heights[0] = v
		k = 0
	case v >= q.heights[4]:
		q.heights[4] = v
		k = 3
	default:
		for i := 1; i < 5; i++ {
			if v < q.heights[i] {
				k = i - 1
				break
			}
		}
	}
	q.n++
	for i := k + 1; i < 5; i++ {
		q.pos[i]++
	}
	for i := 0; i < 5; i++ {
		q.des[i] += p2Increments[i]
	}

	for i := 1; i <= 3; i++ {
		d := q.des[i] - q.pos[i]
		if (d >= 1 && q.pos[i+1]-q.pos[i] > 1) ||
			(d <= -1 && q.pos[i-1]-q.pos[i] < -1) {
			s := 1.0
			if d < 0 {
				s = -1.0
			}
			h := q.parabolic(i, s)
			if q.heights[i-1] < h && h < q.heights[i+1] {
				q.heights[i] = h
			} else {
				q.heights[i] = q.linear(i, s)
			}
			q.pos[i] += s
		}
	}
}

// parabolic is the piecewise-parabolic marker height adjustment.
func (q *p2Quantile) parabolic(i int, s float64) float64 {
	return q.heights[i] + s/(q.pos[i+1]-q.pos[i-1])*
		((q.pos[i]-q.pos[i-1]+s)*(q.heights[i+1]-q.heights[i])/(q.pos[i+1]-q.pos[i])+
			(q.pos[i+1]-q.pos[i]-s)*(q.heights[i]-q.heights[i-1])/(q.pos[i]-q.pos[i-1]))
}

func (q *p2Quantile) linear(i int, s float64) float64 {
	is := i + int(s)
	return q.heights[i] + s*(q.heights[is]-q.heights[i])/(q.pos[is]-q.pos[i])
}

func (q *p2Quantile) value() float64 {
	switch {
	case q.n == 0:
		return math.NaN()
	case q.n < 5:
		h := make([]float64, q.n)
		copy(h, q.heights[:q.n])
		sort.Float64s(h)
		if q.n%2 == 1 {
			return h[q.n/2]
		}
		return 0.5 * (h[q.n/2-1] + h[q.n/2])
	}
	return q.heights[2]
}

// merge folds other into q. When either side still holds its verbatim
// first observations they are replayed exactly; otherwise the marker
// heights are combined by count-weighted averaging, which keeps the
// estimate approximate but bounded by the true extrema.
func (q *p2Quantile) merge(other *p2Quantile) {
	switch {
	case other.n == 0:
	case q.n == 0:
		*q = *other
	case other.n < 5:
		for i := 0; i < other.n; i++ {
			q.add(other.heights[i])
		}
	case q.n < 5:
		merged := *other
		for i := 0; i < q.n; i++ {
			merged.add(q.heights[i])
		}
		*q = merged
	default:
		wq := float64(q.n)
		wo := float64(other.n)
		q.heights[0] = math.Min(q.heights[0], other.heights[0])
		q.heights[4] = math.Max(q.heights[4], other.heights[4])
		for i := 1; i <= 3; i++ {
			q.heights[i] = (q.heights[i]*wq + other.heights[i]*wo) / (wq + wo)
		}
		sort.Float64s(q.heights[:])
		q.n += other.n
		n := float64(q.n)
		q.pos[0] = 1
		q.pos[4] = n
		q.des[0] = 1
		q.des[4] = n
		for i := 1; i <= 3; i++ {
			q.des[i] = 1 + (n-1)*p2Increments[i]
			p := q.pos[i] + other.pos[i]
			if p <= q.pos[i-1] {
				p = q.pos[i-1] + 1
			}
			q.pos[i] = p
		}
		for i := 3; i >= 1; i-- {
			if q.pos[i] >= q.pos[i+1] {
				q.pos[i] = q.pos[i+1] - 1
			}
		}
	}
}
