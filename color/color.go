// seehuhn.de/go/vectors - vector field layers for image viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package color resolves the color values accepted by vector layers.
//
// A color can be given in one of the following forms:
//   - an SVG 1.1 color name, e.g. "red" or "CornflowerBlue"
//   - a single-letter code: "r", "g", "b", "c", "m", "y", "k", "w"
//   - a hex string: "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"
//   - a CSS function: "rgb(255, 0, 0)" or "rgba(255, 0, 0, 0.5)"
//   - the keyword "transparent"
//
// Names are matched case-insensitively.  All colors are returned as
// non-premultiplied sRGB values.
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseError is returned when a color string cannot be resolved.
type ParseError struct {
	Input  string
	Reason string
}

func (err *ParseError) Error() string {
	if err.Reason == "" {
		return fmt.Sprintf("unknown color %q", err.Input)
	}
	return fmt.Sprintf("invalid color %q: %s", err.Input, err.Reason)
}

var letterColors = map[string]stdcolor.NRGBA{
	"r": {0xff, 0x00, 0x00, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"b": {0x00, 0x00, 0xff, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// Parse resolves a color string.
func Parse(s string) (stdcolor.NRGBA, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return stdcolor.NRGBA{}, &ParseError{Input: s, Reason: "empty string"}
	}

	key := cases.Fold().String(in)
	if c, ok := letterColors[key]; ok {
		return c, nil
	}
	if key == "transparent" {
		return stdcolor.NRGBA{}, nil
	}
	if c, ok := colornames.Map[key]; ok {
		// colornames only contains opaque colors, so RGBA == NRGBA here
		return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	switch {
	case strings.HasPrefix(in, "#"):
		return parseHex(s, in[1:])
	case strings.HasPrefix(key, "rgba(") && strings.HasSuffix(key, ")"):
		return parseFunc(s, key[5:len(key)-1], true)
	case strings.HasPrefix(key, "rgb(") && strings.HasSuffix(key, ")"):
		return parseFunc(s, key[4:len(key)-1], false)
	}

	return stdcolor.NRGBA{}, &ParseError{Input: s}
}

func parseHex(orig, hex string) (stdcolor.NRGBA, error) {
	var digits []uint8
	for _, r := range hex {
		v, ok := hexValue(r)
		if !ok {
			return stdcolor.NRGBA{}, &ParseError{Input: orig, Reason: "invalid hex digit"}
		}
		digits = append(digits, v)
	}

	res := stdcolor.NRGBA{A: 0xff}
	switch len(digits) {
	case 3, 4:
		res.R = digits[0] * 0x11
		res.G = digits[1] * 0x11
		res.B = digits[2] * 0x11
		if len(digits) == 4 {
			res.A = digits[3] * 0x11
		}
	case 6, 8:
		res.R = digits[0]<<4 | digits[1]
		res.G = digits[2]<<4 | digits[3]
		res.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			res.A = digits[6]<<4 | digits[7]
		}
	default:
		return stdcolor.NRGBA{}, &ParseError{Input: orig, Reason: "wrong number of hex digits"}
	}
	return res, nil
}

func hexValue(r rune) (uint8, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint8(r - '0'), true
	case 'a' <= r && r <= 'f':
		return uint8(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return uint8(r-'A') + 10, true
	}
	return 0, false
}

func parseFunc(orig, args string, hasAlpha bool) (stdcolor.NRGBA, error) {
	fields := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(fields) != want {
		return stdcolor.NRGBA{}, &ParseError{
			Input:  orig,
			Reason: fmt.Sprintf("expected %d components, got %d", want, len(fields)),
		}
	}

	var channel [3]uint8
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil || !(v >= 0 && v <= 255) {
			return stdcolor.NRGBA{}, &ParseError{Input: orig, Reason: "channel out of range"}
		}
		channel[i] = uint8(math.Round(v))
	}
	alpha := uint8(0xff)
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || !(a >= 0 && a <= 1) {
			return stdcolor.NRGBA{}, &ParseError{Input: orig, Reason: "alpha out of range"}
		}
		alpha = toUint8(a)
	}
	return stdcolor.NRGBA{R: channel[0], G: channel[1], B: channel[2], A: alpha}, nil
}

// FromFloats converts three (RGB) or four (RGBA) values in the range [0, 1]
// to a color.  Values outside the range are clamped.
func FromFloats(x []float64) (stdcolor.NRGBA, error) {
	if len(x) != 3 && len(x) != 4 {
		return stdcolor.NRGBA{}, fmt.Errorf("expected 3 or 4 color values, got %d", len(x))
	}
	for _, v := range x {
		if math.IsNaN(v) {
			return stdcolor.NRGBA{}, errors.New("color value is NaN")
		}
	}
	res := stdcolor.NRGBA{
		R: toUint8(x[0]),
		G: toUint8(x[1]),
		B: toUint8(x[2]),
		A: 0xff,
	}
	if len(x) == 4 {
		res.A = toUint8(x[3])
	}
	return res, nil
}

// SVG formats the RGB channels of c as an SVG color value.
// The alpha channel is dropped; SVG output carries it as a separate
// opacity attribute.
func SVG(c stdcolor.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Floats returns the channels of c as values in the range [0, 1].
func Floats(c stdcolor.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// WithAlpha returns c with its alpha channel multiplied by alpha.
func WithAlpha(c stdcolor.NRGBA, alpha float64) stdcolor.NRGBA {
	c.A = toUint8(float64(c.A) / 255 * alpha)
	return c
}

// Names returns all recognized color names in alphabetical order.
func Names() []string {
	names := maps.Keys(colornames.Map)
	names = append(names, "transparent")
	slices.Sort(names)
	return names
}

// clamp01 maps v into [0, 1].  NaN is mapped to 0.
func clamp01(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toUint8(v float64) uint8 {
	return uint8(clamp01(v)*0xff + 0.5)
}
