/*
 * doc.go, part of xvgplot
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

/*
Package xvgplot draws the series read by the xvg package as a line chart,
using gonum/plot.

Each plot is owned by a Context, so several charts can be built
in the same program:

	C, err := xvgplot.New(xvgplot.DefaultOptions())
	if err != nil {
		return err
	}
	if err := C.Draw(D, M); err != nil {
		return err
	}
	err = C.Save("energy.png")

Series produced by xvg.RunningAverage are plotted against the part of the
x-axis they cover.
*/
package xvgplot
