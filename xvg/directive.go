/*
 * directive.go, part of xvgplot
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
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// DirectiveKind classifies an '@' line of an XVG file.
type DirectiveKind int

const (
	Unrecognized DirectiveKind = iota
	Ignored
	TypeDecl
	SeriesLegend
	AxisLabel
	KeyValue
)

func (k DirectiveKind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case TypeDecl:
		return "type declaration"
	case SeriesLegend:
		return "series legend"
	case AxisLabel:
		return "axis label"
	case KeyValue:
		return "key/value"
	default:
		return "unrecognized"
	}
}

// SupportedType is the only chart type this package reads.
const SupportedType = "xy"

var (
	ignoredDirectives = map[string]bool{"legend": true, "view": true}
	seriesRe          = regexp.MustCompile(`^s[0-9]+$`)
)

// Directive is a classified '@' line. For AxisLabel, Name is
// either "xaxis" or "yaxis".
type Directive struct {
	Kind  DirectiveKind
	Name  string
	Value string
}

// ParseDirective tokenizes the text of a directive line (with or
// without the leading '@') and classifies it. Quoting errors give
// an Unrecognized directive, named after the first word of the line.
func ParseDirective(line string) Directive {
	line = strings.TrimPrefix(strings.TrimSpace(line), "@")
	tokens, err := shlex.Split(line)
	if err != nil {
		d := Directive{Kind: Unrecognized, Value: line}
		if f := strings.Fields(line); len(f) > 0 {
			d.Name = f[0]
		}
		return d
	}
	return classify(tokens)
}

func classify(tokens []string) Directive {
	if len(tokens) == 0 {
		return Directive{Kind: Unrecognized}
	}
	name := tokens[0]
	last := tokens[len(tokens)-1]
	lname := strings.ToLower(name)
	switch {
	case ignoredDirectives[name]:
		return Directive{Kind: Ignored, Name: name}
	case name == "TYPE":
		d := Directive{Kind: TypeDecl, Name: name}
		if len(tokens) > 1 {
			d.Value = tokens[1]
		}
		return d
	case seriesRe.MatchString(name):
		return Directive{Kind: SeriesLegend, Name: name, Value: last}
	case strings.HasSuffix(lname, "xaxis"):
		return Directive{Kind: AxisLabel, Name: "xaxis", Value: last}
	case strings.HasSuffix(lname, "yaxis"):
		return Directive{Kind: AxisLabel, Name: "yaxis", Value: last}
	case len(tokens) == 2:
		return Directive{Kind: KeyValue, Name: name, Value: tokens[1]}
	}
	return Directive{Kind: Unrecognized, Name: name}
}
