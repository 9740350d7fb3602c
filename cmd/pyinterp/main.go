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

// Command pyinterp bins scattered samples onto a regular 2D grid and
// writes the per-bin statistics to a NetCDF file.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	pyinterp "github.com/mcleantom/pangeo-pyinterp"
	"github.com/mcleantom/pangeo-pyinterp/axis"
	"github.com/mcleantom/pangeo-pyinterp/geodetic"
)

var (
	logger *logrus.Logger

	// Cfg holds the configuration options.
	Cfg *viper.Viper
)

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	Cfg = viper.New()

	root.PersistentFlags().String("config", "", "path to a TOML configuration file")

	flags := binCmd.Flags()
	flags.String("input", "", "CSV file holding one x,y,z sample per record")
	flags.String("output", "binning.nc", "NetCDF file to write the statistics to")
	flags.String("x_edges", "", "comma-separated X axis values")
	flags.String("y_edges", "", "comma-separated Y axis values")
	flags.String("mode", "nearest", "sample distribution mode: nearest or linear")
	flags.Bool("geodetic", false, "treat x,y as longitude,latitude on the WGS84 ellipsoid")
	flags.Bool("angular_x", false, "treat the X axis as angular (wrapping at 360 degrees)")
	for _, option := range []string{"input", "output", "x_edges", "y_edges", "mode", "geodetic", "angular_x"} {
		Cfg.BindPFlag(option, flags.Lookup(option))
	}

	root.AddCommand(binCmd)
}

var root = &cobra.Command{
	Use:   "pyinterp",
	Short: "pyinterp computes statistics of scattered geophysical data on regular grids",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil || configFile == "" {
			return err
		}
		Cfg.SetConfigFile(configFile)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration file %s: %v", configFile, err)
		}
		return nil
	},
}

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Bin scattered x,y,z samples onto a 2D grid",
	Long: `bin reads one x,y,z sample per CSV record from the input file,
distributes the samples onto the grid defined by the x_edges and
y_edges axis values, and writes every per-bin statistic (count, sum,
minimum, maximum, mean, median, variance, skewness, kurtosis) as a
2D variable of the output NetCDF file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	xAxis, err := parseAxis(cast.ToString(Cfg.Get("x_edges")), cast.ToBool(Cfg.Get("angular_x")))
	if err != nil {
		return fmt.Errorf("x_edges: %v", err)
	}
	yAxis, err := parseAxis(cast.ToString(Cfg.Get("y_edges")), false)
	if err != nil {
		return fmt.Errorf("y_edges: %v", err)
	}
	mode, err := parseMode(cast.ToString(Cfg.Get("mode")))
	if err != nil {
		return err
	}
	var spheroid *geodetic.Spheroid
	if cast.ToBool(Cfg.Get("geodetic")) {
		wgs84 := geodetic.WGS84()
		spheroid = &wgs84
	}

	x, y, z, err := readSamples(cast.ToString(Cfg.Get("input")))
	if err != nil {
		return err
	}
	logger.Infof("binning %d samples onto a %d x %d grid (%s mode)",
		len(z), xAxis.Len(), yAxis.Len(), mode)

	grid := pyinterp.NewBinning2D(xAxis, yAxis, spheroid)
	if err := grid.Push(x, y, z, mode); err != nil {
		return err
	}
	pushed := grid.Count().Sum()
	logger.Infof("%g observations recorded, %g samples dropped or skipped",
		pushed, float64(len(z))-pushed)

	output := cast.ToString(Cfg.Get("output"))
	if err := writeNetCDF(output, xAxis, yAxis, grid); err != nil {
		return err
	}
	logger.Infof("wrote %s", output)
	return nil
}

// parseAxis builds an axis from a comma-separated list of values.
func parseAxis(s string, angular bool) (*axis.Axis, error) {
	if s == "" {
		return nil, fmt.Errorf("no axis values given")
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing axis value %q: %v", f, err)
		}
		values[i] = v
	}
	return axis.New(values, 1e-6, angular)
}

func parseMode(s string) (pyinterp.Mode, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return pyinterp.Nearest, nil
	case "linear":
		return pyinterp.Linear, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want nearest or linear)", s)
}

// readSamples reads one x,y,z sample per CSV record. A single leading
// non-numeric record is treated as a header and skipped.
func readSamples(path string) (x, y, z []float64, err error) {
	if path == "" {
		return nil, nil, nil, fmt.Errorf("no input file given")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening input file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("reading %s: %v", path, err)
		}
		line++
		xv, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		yv, errY := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		zv, errZ := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if errX != nil || errY != nil || errZ != nil {
			if line == 1 {
				continue // header
			}
			return nil, nil, nil, fmt.Errorf("%s: record %d is not numeric", path, line)
		}
		x = append(x, xv)
		y = append(y, yv)
		z = append(z, zv)
	}
	return x, y, z, nil
}

// writeNetCDF writes the axis values and every per-bin statistic of
// the grid to a NetCDF file.
func writeNetCDF(path string, xAxis, yAxis *axis.Axis, grid *pyinterp.Binning2D) error {
	nx, ny := xAxis.Len(), yAxis.Len()

	statistics := []struct {
		name, description string
		data              *sparse.DenseArray
	}{
		{"count", "number of observations within each bin", grid.Count()},
		{"sum", "sum of observations within each bin", grid.Sum()},
		{"min", "minimum observation within each bin", grid.Min()},
		{"max", "maximum observation within each bin", grid.Max()},
		{"mean", "mean of observations within each bin", grid.Mean()},
		{"median", "median estimate of observations within each bin", grid.Median()},
		{"variance", "population variance of observations within each bin", grid.Variance()},
		{"skewness", "population skewness of observations within each bin", grid.Skewness()},
		{"kurtosis", "excess kurtosis of observations within each bin", grid.Kurtosis()},
	}

	h := cdf.NewHeader([]string{"x", "y"}, []int{nx, ny})
	h.AddVariable("x", []string{"x"}, []float64{0})
	h.AddAttribute("x", "description", "X axis values")
	h.AddVariable("y", []string{"y"}, []float64{0})
	h.AddAttribute("y", "description", "Y axis values")
	for _, s := range statistics {
		h.AddVariable(s.name, []string{"x", "y"}, []float64{0})
		h.AddAttribute(s.name, "description", s.description)
	}
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("creating netcdf header: %v", err)
	}

	ff, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf("creating netcdf file %s: %v", path, err)
	}

	xv := make([]float64, nx)
	for i := range xv {
		xv[i] = xAxis.Value(i)
	}
	yv := make([]float64, ny)
	for i := range yv {
		yv[i] = yAxis.Value(i)
	}
	w := f.Writer("x", []int{0}, []int{nx})
	if _, err := w.Write(xv); err != nil {
		return fmt.Errorf("writing x axis: %v", err)
	}
	w = f.Writer("y", []int{0}, []int{ny})
	if _, err := w.Write(yv); err != nil {
		return fmt.Errorf("writing y axis: %v", err)
	}
	for _, s := range statistics {
		w := f.Writer(s.name, []int{0, 0}, []int{nx, ny})
		if _, err := w.Write(s.data.Elements); err != nil {
			return fmt.Errorf("writing variable %s: %v", s.name, err)
		}
	}
	return nil
}

func main() {
	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}
