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

package window

import (
	"math"
	"testing"
)

var allKinds = []Kind{
	Hamming, Blackman, BlackmanHarris, FlatTop, Nuttall, Lanczos,
	Parzen, ParzenSWOT,
}

func TestNew(t *testing.T) {
	for _, k := range allKinds {
		f, err := New(k)
		if err != nil {
			t.Fatalf("New(%s): %v", k, err)
		}
		if f == nil {
			t.Fatalf("New(%s) returned a nil function", k)
		}
	}
	if _, err := New(Kind(99)); err == nil {
		t.Error("New with an unknown kind must fail")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("boxcar"); err == nil {
		t.Error("ParseKind with an unknown name must fail")
	}
}

func TestPeakValues(t *testing.T) {
	// Every kernel but Nuttall reaches one at the window center.
	peaks := map[Kind]float64{
		Hamming:        1,
		Blackman:       1,
		BlackmanHarris: 1,
		FlatTop:        1,
		Nuttall:        0.9893589,
		Lanczos:        1,
		Parzen:         1,
		ParzenSWOT:     1,
	}
	for k, want := range peaks {
		f, err := New(k)
		if err != nil {
			t.Fatal(err)
		}
		if got := f(0, 10); math.Abs(got-want) > 1e-7 {
			t.Errorf("%s(0, 10) = %.9f, want %.9f", k, got, want)
		}
	}
}

func TestCutoff(t *testing.T) {
	// Outside the radius the cosine-sum and Lanczos kernels vanish.
	for _, k := range []Kind{Hamming, Blackman, BlackmanHarris, FlatTop, Nuttall, Lanczos} {
		f, err := New(k)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range []float64{10.001, 15, 1e6} {
			if got := f(d, 10); got != 0 {
				t.Errorf("%s(%g, 10) = %g, want 0", k, d, got)
			}
		}
	}
}

func TestMonotoneDecayInsideRadius(t *testing.T) {
	// These tapers never grow with distance over [0, r]. The
	// Blackman-Harris, flat-top and Nuttall kernels are excluded: their
	// side lobes ripple (the flat-top even dips below zero) near the
	// edge of the window.
	for _, k := range []Kind{Hamming, Blackman, Lanczos, Parzen, ParzenSWOT} {
		f, err := New(k)
		if err != nil {
			t.Fatal(err)
		}
		const r = 7.5
		prev := f(0, r)
		for i := 1; i <= 100; i++ {
			d := r * float64(i) / 100
			w := f(d, r)
			if w > prev+1e-12 {
				t.Errorf("%s grows at d = %g: %g > %g", k, d, w, prev)
			}
			if w < -1e-12 {
				t.Errorf("%s(%g, %g) = %g, want >= 0", k, d, r, w)
			}
			prev = w
		}
	}
}

func TestParzenFamily(t *testing.T) {
	for _, k := range []Kind{Parzen, ParzenSWOT} {
		f, err := New(k)
		if err != nil {
			t.Fatal(err)
		}
		const r = 4.0
		// The two polynomial pieces meet at d = r/2 with value 1/4.
		if got := f(r/2, r); math.Abs(got-0.25) > 1e-12 {
			t.Errorf("%s(r/2, r) = %.15f, want 0.25", k, got)
		}
		eps := 1e-9
		below, above := f(r/2-eps, r), f(r/2+eps, r)
		if math.Abs(below-above) > 1e-7 {
			t.Errorf("%s is discontinuous at r/2: %g vs %g", k, below, above)
		}
		// The taper reaches zero at the radius, without a cutoff branch.
		if got := f(r, r); math.Abs(got) > 1e-12 {
			t.Errorf("%s(r, r) = %g, want 0", k, got)
		}
	}
}

func TestParzenVariantsAgree(t *testing.T) {
	// Both Parzen forms evaluate the same polynomial on the inner
	// segment, written differently.
	p, _ := New(Parzen)
	q, _ := New(ParzenSWOT)
	const r = 3.0
	for i := 0; i <= 50; i++ {
		d := r / 2 * float64(i) / 50
		if math.Abs(p(d, r)-q(d, r)) > 1e-12 {
			t.Fatalf("parzen and parzen-swot differ at d = %g: %g vs %g",
				d, p(d, r), q(d, r))
		}
	}
}

func TestLanczosValues(t *testing.T) {
	f, _ := New(Lanczos)
	if got := f(10, 10); math.Abs(got) > 1e-15 {
		t.Errorf("lanczos(r, r) = %g, want 0", got)
	}
	// Halfway out, the kernel equals sinc(1/2) = 2/pi.
	if got := f(5, 10); math.Abs(got-2/math.Pi) > 1e-12 {
		t.Errorf("lanczos(r/2, r) = %.12f, want %.12f", got, 2/math.Pi)
	}
}

func TestHammingEdge(t *testing.T) {
	f, _ := New(Hamming)
	// At the radius the window drops to its side-lobe floor.
	if got := f(10, 10); math.Abs(got-0.07672) > 1e-9 {
		t.Errorf("hamming(r, r) = %.9f, want 0.07672", got)
	}
}
