/*
 * xvg.go, part of xvgplot
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package xvg

// DefaultWindow is the running average window used when none is given.
const DefaultWindow = 10

// AveragedSuffix is appended to the label of a series to name its
// running average.
const AveragedSuffix = " (Av)"

// MissingLabel is the label given to series for which the file has
// no legend.
const MissingLabel = "Missing"

// Labels holds the axis labels and one legend per dependent series.
type Labels struct {
	XAxis  string   `yaml:"xaxis"`
	YAxis  string   `yaml:"yaxis"`
	Series []string `yaml:"series"`
}

// Metadata contains the information of the '@' directives of an XVG file.
type Metadata struct {
	Fields map[string]string `yaml:"fields"` //generic 2-token directives, like title
	Labels Labels            `yaml:"labels"`
}

// NewMetadata returns an empty, ready to use, Metadata.
func NewMetadata() *Metadata {
	M := new(Metadata)
	M.Fields = make(map[string]string)
	M.Labels.Series = make([]string, 0, 4)
	return M
}

// Get returns the value of the directive key, or an empty string
// if the file did not set it.
func (M *Metadata) Get(key string) string {
	if M == nil || M.Fields == nil {
		return ""
	}
	return M.Fields[key]
}

// Title returns the chart title, or an empty string.
func (M *Metadata) Title() string {
	return M.Get("title")
}

// SeriesLabel returns the label for the ith dependent series,
// or an empty string if there is none.
func (M *Metadata) SeriesLabel(i int) string {
	if M == nil || i < 0 || i >= len(M.Labels.Series) {
		return ""
	}
	return M.Labels.Series[i]
}

// Series is one column of data. Skip is the number of leading
// x-axis values for which the series has no sample, so
// the series is aligned with X()[Skip:].
type Series struct {
	Values []float64
	Skip   int
}

// Len returns the number of samples in the series.
func (S *Series) Len() int {
	return len(S.Values)
}

// Data is the numeric content of an XVG file, one Series per column.
// The first column is the x-axis.
type Data struct {
	cols []*Series
}

// NewData returns a Data object with the given columns. The first
// one is taken to be the x-axis. The slices are not copied.
func NewData(columns ...[]float64) *Data {
	D := new(Data)
	D.cols = make([]*Series, 0, len(columns))
	for _, v := range columns {
		D.cols = append(D.cols, &Series{Values: v})
	}
	return D
}

// X returns the x-axis values. The slice is not a copy.
func (D *Data) X() []float64 {
	if D == nil || len(D.cols) == 0 {
		return nil
	}
	return D.cols[0].Values
}

// NSeries returns the number of dependent series.
func (D *Data) NSeries() int {
	if D == nil || len(D.cols) == 0 {
		return 0
	}
	return len(D.cols) - 1
}

// Series returns the ith dependent series (0-based, so
// Series(0) is the second column of the file).
// It panics if i is out of range.
func (D *Data) Series(i int) *Series {
	if i < 0 || i >= D.NSeries() {
		panic("xvg: series index out of range")
	}
	return D.cols[i+1]
}

// Append adds a dependent series to the data.
func (D *Data) Append(s *Series) {
	if len(D.cols) == 0 {
		panic("xvg: can't append a series to data without x-axis")
	}
	D.cols = append(D.cols, s)
}

// XFor returns the x-axis values that correspond to the ith
// dependent series.
func (D *Data) XFor(i int) []float64 {
	s := D.Series(i)
	x := D.X()
	if s.Skip >= len(x) {
		return x[len(x):]
	}
	x = x[s.Skip:]
	if len(x) > len(s.Values) {
		x = x[:len(s.Values)]
	}
	return x
}

// Elements returns the total number of samples in all
// dependent series.
func (D *Data) Elements() int {
	var n int
	for i := 0; i < D.NSeries(); i++ {
		n += D.Series(i).Len()
	}
	return n
}
