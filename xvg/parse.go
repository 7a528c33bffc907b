/*
 * parse.go, part of xvgplot
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
	"bufio"
	"errors"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Parse reads the XVG file filename and returns its metadata and data.
// The error wraps ErrFileNotFound if filename is not a readable regular
// file, and ErrUnsupportedType if the file declares a chart type other
// than "xy".
func Parse(filename string) (*Metadata, *Data, error) {
	r, path, err := openXVG(filename)
	if err != nil {
		return nil, nil, errDecorate(err, "Parse")
	}
	defer r.Close()
	M, D, err := ParseReader(r, path)
	if err != nil {
		return nil, nil, errDecorate(err, "Parse")
	}
	return M, D, nil
}

// ParseReader reads XVG data from r. name is only used in
// error and log messages.
func ParseReader(r io.Reader, name string) (*Metadata, *Data, error) {
	M := NewMetadata()
	rows := make([][]float64, 0, 1000)
	reader := bufio.NewReader(r)
	var lineno int
	for {
		s, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, newError(ErrFormat, name, "ParseReader", "Error reading line %d: %v", lineno+1, err)
		}
		lineno++
		line := strings.TrimSpace(s)
		if line != "" {
			if perr := parseLine(line, lineno, name, M, &rows); perr != nil {
				return nil, nil, perr
			}
		}
		if err != nil {
			break //EOF
		}
	}
	D := columns(rows, name)
	n := D.NSeries()
	if len(M.Labels.Series) != n {
		log.Printf("[!] Some series are not labelled. DO NOT TRUST THE PLOT LABELS")
		for i := len(M.Labels.Series); i < n; i++ {
			M.Labels.Series = append(M.Labels.Series, MissingLabel)
		}
	}
	return M, D, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseLine processes one trimmed, non-empty line, adding its
// information to M or to rows.
func parseLine(line string, lineno int, name string, M *Metadata, rows *[][]float64) error {
	if strings.HasPrefix(line, "@") {
		d := ParseDirective(line)
		switch d.Kind {
		case Ignored:
		case TypeDecl:
			if d.Value == "" {
				return newError(ErrFormat, name, "parseLine", "TYPE directive without a value at line %d", lineno)
			}
			if d.Value != SupportedType {
				return newError(ErrUnsupportedType, name, "parseLine", "Chart type unsupported: '%s'. Must be '%s'", d.Value, SupportedType)
			}
		case SeriesLegend:
			M.Labels.Series = append(M.Labels.Series, d.Value)
		case AxisLabel:
			if d.Name == "xaxis" {
				M.Labels.XAxis = d.Value
			} else {
				M.Labels.YAxis = d.Value
			}
		case KeyValue:
			M.Fields[d.Name] = d.Value
		default:
			log.Printf("Unsupported entry: %s - ignoring", d.Name)
		}
		return nil
	}
	if !isDigit(line[0]) {
		return nil //comments, set separators and the like.
	}
	fields := strings.Fields(line)
	row := make([]float64, len(fields))
	for i, v := range fields {
		f, err := parseNumber(v)
		if err != nil {
			return newError(ErrFormat, name, "parseLine", "Can't read number '%s' at line %d", v, lineno)
		}
		row[i] = f
	}
	*rows = append(*rows, row)
	return nil
}

// parseNumber reads one value of a data row. C printf writes NaNs
// as "nan" or "-nan", and both are read as NaN.
func parseNumber(v string) (float64, error) {
	if strings.EqualFold(strings.TrimLeft(v, "+-"), "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(v, 64)
}

// columns turns the rows read from the file into columns. If the rows don't
// all have the same length, only as many columns as the shortest row has are kept.
func columns(rows [][]float64, name string) *Data {
	if len(rows) == 0 {
		return NewData()
	}
	ncols := len(rows[0])
	ragged := false
	for _, v := range rows {
		if len(v) != ncols {
			ragged = true
		}
		if len(v) < ncols {
			ncols = len(v)
		}
	}
	if ragged {
		log.Printf("[!] Rows in %s have different number of columns. Only the first %d will be used", name, ncols)
	}
	flat := make([]float64, 0, len(rows)*ncols)
	for _, v := range rows {
		flat = append(flat, v[:ncols]...)
	}
	m := mat.NewDense(len(rows), ncols, flat)
	cols := make([][]float64, ncols)
	for j := range cols {
		cols[j] = mat.Col(nil, j, m)
	}
	return NewData(cols...)
}
