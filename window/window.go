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

// Package window provides the radial taper kernels used for distance
// weighting. A kernel maps a distance d >= 0 and a window radius r > 0
// to a weight, zero outside the radius for every kernel except the
// Parzen family, which tapers with a two-piece polynomial instead of a
// hard cutoff.
package window

import (
	"fmt"
	"math"
)

// Kind selects a window function.
type Kind int

// Known window functions.
const (
	Hamming Kind = iota
	Blackman
	BlackmanHarris
	FlatTop
	Nuttall
	Lanczos
	Parzen
	ParzenSWOT
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Hamming:
		return "hamming"
	case Blackman:
		return "blackman"
	case BlackmanHarris:
		return "blackman-harris"
	case FlatTop:
		return "flat-top"
	case Nuttall:
		return "nuttall"
	case Lanczos:
		return "lanczos"
	case Parzen:
		return "parzen"
	case ParzenSWOT:
		return "parzen-swot"
	}
	return fmt.Sprintf("window.Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s, using the same names
// String produces.
func ParseKind(s string) (Kind, error) {
	for k := Hamming; k <= ParzenSWOT; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("window: unknown window function %q", s)
}

// Func is a window function. Callers must not invoke it with r <= 0.
type Func func(d, r float64) float64

// New returns the window function selected by kind, or an error if
// kind is not one of the known window functions.
func New(kind Kind) (Func, error) {
	switch kind {
	case Hamming:
		return hamming, nil
	case Blackman:
		return blackman, nil
	case BlackmanHarris:
		return blackmanHarris, nil
	case FlatTop:
		return flatTop, nil
	case Nuttall:
		return nuttall, nil
	case Lanczos:
		return lanczos, nil
	case Parzen:
		return parzen, nil
	case ParzenSWOT:
		return parzenSWOT, nil
	}
	return nil, fmt.Errorf("window: unknown window function: %d", int(kind))
}

func hamming(d, r float64) float64 {
	if d <= r {
		return 0.53836 - 0.46164*math.Cos(math.Pi*(d+r)/r)
	}
	return 0
}

func blackman(d, r float64) float64 {
	if d <= r {
		ratio := (d + r) / r
		return 7938.0/18608.0 -
			9240.0/18608.0*math.Cos(math.Pi*ratio) +
			1430.0/18608.0*math.Cos(2*math.Pi*ratio)
	}
	return 0
}

func blackmanHarris(d, r float64) float64 {
	if d <= r {
		ratio := (d + r) / r
		return 0.35875 - 0.48829*math.Cos(math.Pi*ratio) +
			0.14128*math.Cos(2*math.Pi*ratio) -
			0.01168*math.Cos(3*math.Pi*ratio)
	}
	return 0
}

func flatTop(d, r float64) float64 {
	if d <= r {
		ratio := (d + r) / r
		return 0.21557895 - 0.41663158*math.Cos(math.Pi*ratio) +
			0.277263158*math.Cos(2*math.Pi*ratio) -
			0.083578947*math.Cos(3*math.Pi*ratio) +
			0.006947368*math.Cos(4*math.Pi*ratio)
	}
	return 0
}

func nuttall(d, r float64) float64 {
	if d <= r {
		ratio := (d + r) / r
		return 0.3635819 - 0.4891775*math.Cos(math.Pi*ratio) +
			0.1365995*math.Cos(2*math.Pi*ratio)
	}
	return 0
}

func lanczos(d, r float64) float64 {
	if d <= r {
		return sinc(2*(d+r)/(2*r) - 1)
	}
	return 0
}

// parzen is the classical Parzen window: an inner parabolic-like
// segment for d <= r/2 and a cubic taper beyond.
func parzen(d, r float64) float64 {
	ratio := d / r
	if d <= r/2 {
		return 1 - 6*ratio*ratio*(1-ratio)
	}
	return 2 * math.Pow(1-ratio, 3)
}

// parzenSWOT is the Parzen variant used for SWOT products.
func parzenSWOT(d, r float64) float64 {
	ratio := d / r
	if d <= r/2 {
		return 1 - 6*ratio*ratio + 6*ratio*ratio*ratio
	}
	return 2 * math.Pow(1-ratio, 3)
}

// sinc is the normalized cardinal sine.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}
