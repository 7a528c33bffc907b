/*
 * plot.go, part of xvgplot
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

package xvgplot

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/rmera/xvgplot/xvg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options control the appearance and the output of a plot.
type Options struct {
	Palette     string    //name of the color palette for the series, see Colors
	Background  string    //name of the color for the plot area, see Background
	Width       vg.Length //size of the saved or shown figure
	Height      vg.Length
	LineWidth   vg.Length
	Output      string //file to save the plot to, the format is taken from the extension
	Interactive bool   //show the plot in a viewer
	Viewer      string //command used to show the plot. If empty, the system's default
}

// DefaultOptions returns the options used for fields that are not set.
func DefaultOptions() Options {
	return Options{
		Palette:    DefaultPalette,
		Background: DefaultBackground,
		Width:      6.4 * vg.Inch,
		Height:     4.8 * vg.Inch,
		LineWidth:  vg.Points(1.5),
	}
}

func (O *Options) fill() {
	def := DefaultOptions()
	if O.Palette == "" {
		O.Palette = def.Palette
	}
	if O.Background == "" {
		O.Background = def.Background
	}
	if O.Width <= 0 {
		O.Width = def.Width
	}
	if O.Height <= 0 {
		O.Height = def.Height
	}
	if O.LineWidth <= 0 {
		O.LineWidth = def.LineWidth
	}
}

// Context owns one plot and the options used to build it.
// Different contexts are completely independent.
type Context struct {
	Plot  *plot.Plot
	bg    color.Color
	opts  Options
	lines []*plotter.Line
}

// New returns a new Context with an empty plot. Zero fields
// in opts are taken from DefaultOptions.
func New(opts Options) (*Context, error) {
	opts.fill()
	bg, err := Background(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("xvgplot.New: %w", err)
	}
	//we fail early on a wrong palette, even though we don't need the colors yet.
	if _, err := Colors(opts.Palette, 1); err != nil {
		return nil, fmt.Errorf("xvgplot.New: %w", err)
	}
	C := &Context{Plot: plot.New(), bg: bg, opts: opts}
	return C, nil
}

// Options returns the options of the context, with the defaults filled in.
func (C *Context) Options() Options {
	return C.opts
}

// Lines returns the lines added to the plot by Draw, in order.
func (C *Context) Lines() []*plotter.Line {
	return C.lines
}

// Draw adds the dependent series in D to the plot. Labels, axis labels
// and title are taken from M. Series with no corresponding label get an empty
// label, and are left out of the legend. Empty series are skipped.
// Points where x or y is not finite (NaN, Inf) are left as gaps, so a series
// can be drawn as several lines, all with the same color and one legend entry.
func (C *Context) Draw(D *xvg.Data, M *xvg.Metadata) error {
	n := D.NSeries()
	colors, err := Colors(C.opts.Palette, n)
	if err != nil {
		return fmt.Errorf("xvgplot.Draw: %w", err)
	}
	p := C.Plot
	p.Title.Text = M.Title()
	p.X.Label.Text = M.Labels.XAxis
	p.Y.Label.Text = M.Labels.YAxis
	p.Title.Padding = 3 * vg.Millimeter
	p.Legend.Top = true
	p.Add(areaFill{C.bg}, plotter.NewGrid())
	for i := 0; i < n; i++ {
		label := M.SeriesLabel(i)
		s := D.Series(i)
		x := D.XFor(i)
		runs, gaps := finiteRuns(x, s.Values)
		if len(runs) == 0 {
			log.Printf("[!] Series %d (%s) has no points, it will not be plotted", i, label)
			continue
		}
		if gaps > 0 {
			log.Printf("[!] Series %d (%s) has %d points that are not finite numbers, they will be left as gaps", i, label, gaps)
		}
		for j, pts := range runs {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("xvgplot.Draw: series %d (%s): %w", i, label, err)
			}
			line.Color = colors[i]
			line.Width = C.opts.LineWidth
			p.Add(line)
			C.lines = append(C.lines, line)
			if j == 0 && label != "" {
				p.Legend.Add(label, line)
			}
		}
	}
	return nil
}

// finiteRuns splits the points (x[i], y[i]) into runs of consecutive points
// with finite coordinates. It also returns the number of points left out.
func finiteRuns(x, y []float64) ([]plotter.XYs, int) {
	var runs []plotter.XYs
	var cur plotter.XYs
	gaps := 0
	for j := 0; j < min(len(x), len(y)); j++ {
		if !finite(x[j]) || !finite(y[j]) {
			gaps++
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[j], Y: y[j]})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs, gaps
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Save writes the plot to filename. The format is taken from the extension
// (png, svg, pdf, eps, jpg, tif or tex).
func (C *Context) Save(filename string) error {
	if err := C.Plot.Save(C.opts.Width, C.opts.Height, filename); err != nil {
		return fmt.Errorf("xvgplot.Save: %w", err)
	}
	return nil
}

// Render draws D and M on a new Context built with opts, saves the
// result if opts.Output is set and shows it if opts.Interactive is true.
// At least one of the two must be requested.
func Render(D *xvg.Data, M *xvg.Metadata, opts Options) error {
	if opts.Output == "" && !opts.Interactive {
		return fmt.Errorf("xvgplot.Render: no output file given and interactive mode not requested")
	}
	C, err := New(opts)
	if err != nil {
		return err
	}
	if err := C.Draw(D, M); err != nil {
		return err
	}
	if opts.Output != "" {
		if err := C.Save(opts.Output); err != nil {
			return err
		}
	}
	if opts.Interactive {
		return C.Show()
	}
	return nil
}

//areaFill paints the data area of the plot. It must be
//added before anything else so it stays in the background.
type areaFill struct {
	color color.Color
}

func (a areaFill) Plot(c draw.Canvas, _ *plot.Plot) {
	c.SetColor(a.color)
	c.Fill(c.Rectangle.Path())
}
