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
	"bytes"
	"math"
	"testing"

	"github.com/mcleantom/pangeo-pyinterp/geodetic"
)

func TestBinning2DSaveLoad(t *testing.T) {
	x := mustAxis(t, []float64{0, 10, 20}, false)
	y := mustAxis(t, []float64{0, 10, 20}, false)
	b := NewBinning2D(x, y, nil)
	for i := 0; i < 150; i++ {
		err := b.Push(
			[]float64{20 * float64(i%13) / 13},
			[]float64{20 * float64(i%17) / 17},
			[]float64{math.Sin(float64(i)) * 3},
			Nearest)
		if err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadBinning2D(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !axisEqual(loaded.X(), b.X()) || !axisEqual(loaded.Y(), b.Y()) {
		t.Error("axes changed across the save/load round trip")
	}
	checkGrid(t, "count", loaded.Count(), b.Count().Elements, 0)
	checkGrid(t, "sum", loaded.Sum(), b.Sum().Elements, 0)
	checkGrid(t, "min", loaded.Min(), b.Min().Elements, 0)
	checkGrid(t, "max", loaded.Max(), b.Max().Elements, 0)
	checkGrid(t, "mean", loaded.Mean(), b.Mean().Elements, 0)
	checkGrid(t, "median", loaded.Median(), b.Median().Elements, 0)
	checkGrid(t, "variance", loaded.Variance(), b.Variance().Elements, 0)
	checkGrid(t, "skewness", loaded.Skewness(), b.Skewness().Elements, 0)
	checkGrid(t, "kurtosis", loaded.Kurtosis(), b.Kurtosis().Elements, 0)

	// The loaded grid keeps accepting samples.
	before := loaded.Count().Sum()
	if err := loaded.Push([]float64{4}, []float64{4}, []float64{1}, Nearest); err != nil {
		t.Fatal(err)
	}
	if got := loaded.Count().Sum(); got != before+1 {
		t.Error("loaded grid does not accept new samples")
	}
}

func TestBinning2DSaveLoadGeodetic(t *testing.T) {
	wgs84 := geodetic.WGS84()
	x := mustAxis(t, []float64{0, 10}, false)
	y := mustAxis(t, []float64{-5, 5}, false)
	b := NewBinning2D(x, y, &wgs84)
	if err := b.Push([]float64{5}, []float64{0}, []float64{1}, Linear); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadBinning2D(&buf)
	if err != nil {
		t.Fatal(err)
	}
	checkGrid(t, "sum", loaded.Sum(), []float64{0.25, 0.25, 0.25, 0.25}, 1e-12)

	// The weighting strategy survives the round trip: the loaded grid
	// still merges with spheroidal grids only.
	if err := loaded.Merge(NewBinning2D(x, y, nil)); err == nil {
		t.Error("loaded grid lost its weighting strategy")
	}
	if err := loaded.Merge(NewBinning2D(x, y, &wgs84)); err != nil {
		t.Errorf("loaded grid rejects a matching grid: %v", err)
	}
}

func TestBinning2DSaveLoadAngular(t *testing.T) {
	x := mustAxis(t, []float64{0, 90, 180, 270}, true)
	y := mustAxis(t, []float64{0, 10}, false)
	b := NewBinning2D(x, y, nil)

	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadBinning2D(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.X().IsAngle() {
		t.Error("X axis lost its angularity across the round trip")
	}
	// Seam lookups still work on the loaded grid.
	if err := loaded.Push([]float64{315}, []float64{5}, []float64{8}, Linear); err != nil {
		t.Fatal(err)
	}
	if got := loaded.Sum().Sum(); different(got, 8, 1e-12) {
		t.Errorf("seam push on the loaded grid totals %g, want 8", got)
	}
}

func TestHistogram2DSaveLoad(t *testing.T) {
	x := mustAxis(t, []float64{0, 10, 20}, false)
	y := mustAxis(t, []float64{0, 10, 20}, false)
	h := NewHistogram2D(x, y, 12)
	for i := 0; i < 200; i++ {
		err := h.Push(
			[]float64{20 * float64(i%7) / 7},
			[]float64{20 * float64(i%5) / 5},
			[]float64{math.Cos(float64(i)) * 2})
		if err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := h.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadHistogram2D(&buf)
	if err != nil {
		t.Fatal(err)
	}
	checkGrid(t, "count", loaded.Count(), h.Count().Elements, 0)
	checkGrid(t, "min", loaded.Min(), h.Min().Elements, 0)
	checkGrid(t, "max", loaded.Max(), h.Max().Elements, 0)
	checkGrid(t, "mean", loaded.Mean(), h.Mean().Elements, 0)
	want, err := h.Quantile(0.75)
	if err != nil {
		t.Fatal(err)
	}
	got, err := loaded.Quantile(0.75)
	if err != nil {
		t.Fatal(err)
	}
	checkGrid(t, "quantile", got, want.Elements, 0)
}

func TestLoadBinning2DBadStream(t *testing.T) {
	if _, err := LoadBinning2D(bytes.NewReader([]byte("not a gob stream"))); err == nil {
		t.Error("loading garbage must fail")
	}
}
