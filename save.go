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
	"encoding/gob"
	"fmt"
	"io"

	"github.com/mcleantom/pangeo-pyinterp/axis"
	"github.com/mcleantom/pangeo-pyinterp/geodetic"
	"github.com/mcleantom/pangeo-pyinterp/stat"
)

func init() {
	gob.Register(&axis.Axis{})
}

// binningState is the persisted form of a Binning2D: the axis states,
// the spheroid or its absence, and the accumulator matrix. Together
// they reconstruct identical statistics for every bin.
type binningState struct {
	X, Y     Axis
	Spheroid *geodetic.Spheroid
	Acc      []stat.Accumulator
}

// Save writes the full state of the grid to w as a gob stream (format
// description at https://golang.org/pkg/encoding/gob/).
func (b *Binning2D) Save(w io.Writer) error {
	e := gob.NewEncoder(w)
	state := binningState{X: b.x, Y: b.y, Spheroid: b.spheroid, Acc: b.acc}
	if err := e.Encode(state); err != nil {
		return fmt.Errorf("pyinterp: saving Binning2D: %v", err)
	}
	return nil
}

// LoadBinning2D reads a grid previously written with Save. Axis
// implementations other than the axis package's must be registered
// with encoding/gob before loading.
func LoadBinning2D(r io.Reader) (*Binning2D, error) {
	dec := gob.NewDecoder(r)
	var state binningState
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("pyinterp: loading Binning2D: %v", err)
	}
	b := NewBinning2D(state.X, state.Y, state.Spheroid)
	if len(state.Acc) != len(b.acc) {
		return nil, fmt.Errorf("pyinterp: loading Binning2D: accumulator matrix has %d bins, want %d",
			len(state.Acc), len(b.acc))
	}
	b.acc = state.Acc
	return b, nil
}

// histogram2DState is the persisted form of a Histogram2D.
type histogram2DState struct {
	X, Y Axis
	Hist []stat.StreamingHistogram
}

// Save writes the full state of the histogram grid to w as a gob
// stream.
func (h *Histogram2D) Save(w io.Writer) error {
	e := gob.NewEncoder(w)
	state := histogram2DState{X: h.x, Y: h.y, Hist: h.hist}
	if err := e.Encode(state); err != nil {
		return fmt.Errorf("pyinterp: saving Histogram2D: %v", err)
	}
	return nil
}

// LoadHistogram2D reads a histogram grid previously written with Save.
func LoadHistogram2D(r io.Reader) (*Histogram2D, error) {
	dec := gob.NewDecoder(r)
	var state histogram2DState
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("pyinterp: loading Histogram2D: %v", err)
	}
	h := NewHistogram2D(state.X, state.Y, 0)
	if len(state.Hist) != len(h.hist) {
		return nil, fmt.Errorf("pyinterp: loading Histogram2D: histogram matrix has %d bins, want %d",
			len(state.Hist), len(h.hist))
	}
	h.hist = state.Hist
	return h, nil
}
