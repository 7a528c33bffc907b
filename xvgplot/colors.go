/*
 * colors.go, part of xvgplot
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
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultPalette is the palette used when none is given.
const DefaultPalette = "Set1"

// DefaultBackground is the background used when none is given.
const DefaultBackground = "lightgray"

//number of colors used to sample the continuous palettes that
//are only available as a list.
const listedSize = 256

//continuous color maps, by lowercase name.
var colorMaps = map[string]func() palette.ColorMap{
	"smoothbluered":     func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann":         func() palette.ColorMap { return moreland.Kindlmann() },
	"extendedkindlmann": func() palette.ColorMap { return moreland.ExtendedKindlmann() },
	"blackbody":         func() palette.ColorMap { return moreland.BlackBody() },
	"extendedblackbody": func() palette.ColorMap { return moreland.ExtendedBlackBody() },
}

//palettes given as long lists of colors, by lowercase name.
var listedPalettes = map[string]func() []color.Color{
	"heat":    func() []color.Color { return palette.Heat(listedSize, 1).Colors() },
	"rainbow": func() []color.Color { return palette.Rainbow(listedSize, 0, 0.8, 1, 1, 1).Colors() },
	"hsv":     hueSweep,
}

// Colors returns n colors, evenly spaced along the palette name.
// The name can be any of the ColorBrewer palettes (Set1, Dark2, YlGnBu...),
// or one of SmoothBlueRed, Kindlmann, ExtendedKindlmann, BlackBody,
// ExtendedBlackBody, Heat, Rainbow and HSV.
func Colors(name string, n int) ([]color.Color, error) {
	if n <= 0 {
		return nil, nil
	}
	lname := strings.ToLower(name)
	if f, ok := colorMaps[lname]; ok {
		return sampleMap(f(), n)
	}
	if f, ok := listedPalettes[lname]; ok {
		return sampleList(f(), n), nil
	}
	list, err := brewerColors(name)
	if err != nil {
		return nil, err
	}
	return sampleList(list, n), nil
}

//brewerColors returns the largest version of the ColorBrewer palette name.
func brewerColors(name string) ([]color.Color, error) {
	var err error
	var p palette.Palette
	//no ColorBrewer palette has more than 12 colors.
	for size := 12; size > 0; size-- {
		p, err = brewer.GetPalette(brewer.TypeAny, name, size)
		if err == nil {
			return p.Colors(), nil
		}
	}
	return nil, fmt.Errorf("Unknown color palette '%s'", name)
}

//the position, between 0 and 1, of the ith of n evenly spaced samples.
func position(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

//sampleList takes n evenly spaced colors from list, the
//same way a listed color map is sampled.
func sampleList(list []color.Color, n int) []color.Color {
	ret := make([]color.Color, n)
	K := len(list)
	for i := range ret {
		idx := int(position(i, n) * float64(K))
		if idx > K-1 {
			idx = K - 1
		}
		ret[i] = list[idx]
	}
	return ret
}

func sampleMap(cm palette.ColorMap, n int) ([]color.Color, error) {
	cm.SetMax(1)
	cm.SetMin(0)
	ret := make([]color.Color, n)
	for i := range ret {
		c, err := cm.At(position(i, n))
		if err != nil {
			return nil, err
		}
		ret[i] = c
	}
	return ret, nil
}

// Background returns the color with the given name. Names are those
// of the SVG 1.1 specification ("lightgray", "white", "ivory"...) or
// hexadecimal RGB values in the form "#rrggbb".
func Background(name string) (color.Color, error) {
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("Unknown color '%s'", name)
	}
	return c, nil
}

//hueSweep returns colors going around the hue circle,
//with full value and saturation, skipping the hues around
//yellow, which are hard to see on light backgrounds.
func hueSweep() []color.Color {
	ret := make([]color.Color, listedSize)
	norm := 260.0 / float64(listedSize)
	for key := range ret {
		hp := float64(key)*norm + 20.0
		var h float64
		if hp < 55 {
			h = hp - 20.0
		} else {
			h = hp + 20.0
		}
		r, g, b := iHVS2RGB(h, 1, 1)
		ret[key] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return ret
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
