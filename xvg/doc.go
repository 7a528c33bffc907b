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
Package xvg reads the XVG line-chart files written by the Gromacs analysis
tools (gmx energy, gmx rms, gmx gyrate and friends).

An XVG file mixes Grace directives, lines starting with '@', with rows of
whitespace-separated numbers. The first column is the x-axis and every other
column is one series. Only the "xy" chart type is supported.

	M, D, err := xvg.Parse("energy.xvg")
	if err != nil {
		log.Fatal(err)
	}
	err = xvg.RunningAverage(D, M, xvg.DefaultWindow)

Files ending in .gz or .zst are decompressed on the fly.
*/
package xvg
