/*
 * average.go, part of xvgplot
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

import (
	"log"

	"gonum.org/v1/gonum/floats"
)

// RunningAverage smooths every dependent series in D with a running
// average over window points, and appends the results to D. Only
// full windows are used, so each new series has window-1 points less
// than the original, and is aligned with the x-axis values from
// window-1 on (see Data.XFor). For each new series, the label
// of the original plus AveragedSuffix is appended to M.
func RunningAverage(D *Data, M *Metadata, window int) error {
	if window < 1 {
		return newError(ErrWindow, "", "RunningAverage", "window size must be a positive integer, not %d", window)
	}
	n := D.NSeries()
	//labels must stay index-aligned with the series we are about to append.
	for len(M.Labels.Series) < n {
		M.Labels.Series = append(M.Labels.Series, MissingLabel)
	}
	M.Labels.Series = M.Labels.Series[:n]

	weights := make([]float64, window)
	for i := range weights {
		weights[i] = 1.0 / float64(window)
	}
	for i := 0; i < n; i++ {
		s := D.Series(i)
		av := convolveValid(s.Values, weights)
		if len(av) == 0 {
			log.Printf("[!] Series %d has %d points, less than the window size (%d). Its average will be empty", i, s.Len(), window)
		}
		M.Labels.Series = append(M.Labels.Series, M.Labels.Series[i]+AveragedSuffix)
		D.Append(&Series{Values: av, Skip: s.Skip + window - 1})
	}
	return nil
}

// convolveValid returns the convolution of data and the symmetric kernel
// w, only where they overlap completely.
// The result has len(data)-len(w)+1 elements, or none, if w is longer than data.
func convolveValid(data, w []float64) []float64 {
	l := len(data) - len(w) + 1
	if l <= 0 {
		return []float64{}
	}
	ret := make([]float64, l)
	for i := range ret {
		ret[i] = floats.Dot(data[i:i+len(w)], w)
	}
	return ret
}
