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

package color

import (
	"errors"
	stdcolor "image/color"
	"math"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want stdcolor.NRGBA
	}{
		{"red", stdcolor.NRGBA{255, 0, 0, 255}},
		{"Blue", stdcolor.NRGBA{0, 0, 255, 255}},
		{"  green ", stdcolor.NRGBA{0, 128, 0, 255}},
		{"CornflowerBlue", stdcolor.NRGBA{100, 149, 237, 255}},
		{"r", stdcolor.NRGBA{255, 0, 0, 255}},
		{"k", stdcolor.NRGBA{0, 0, 0, 255}},
		{"R", stdcolor.NRGBA{255, 0, 0, 255}},
		{" W", stdcolor.NRGBA{255, 255, 255, 255}},
		{"transparent", stdcolor.NRGBA{}},
		{"#f00", stdcolor.NRGBA{255, 0, 0, 255}},
		{"#f008", stdcolor.NRGBA{255, 0, 0, 0x88}},
		{"#00FF00", stdcolor.NRGBA{0, 255, 0, 255}},
		{"#0000ff80", stdcolor.NRGBA{0, 0, 255, 0x80}},
		{"rgb(1, 2, 3)", stdcolor.NRGBA{1, 2, 3, 255}},
		{"RGBA(10,20,30,0.5)", stdcolor.NRGBA{10, 20, 30, 128}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"not-a-color",
		"#12",
		"#12345",
		"#gg0000",
		"rgb(1,2)",
		"rgb(1,2,300)",
		"rgba(1,2,3,2)",
		"rgb(a,b,c)",
		"rgb(NaN,0,0)",
		"rgba(0,0,0,nan)",
	}
	for _, in := range bad {
		_, err := Parse(in)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q): expected *ParseError, got %v", in, err)
		}
	}
}

func TestFromFloats(t *testing.T) {
	c, err := FromFloats([]float64{1, 0, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if want := (stdcolor.NRGBA{255, 0, 128, 255}); c != want {
		t.Errorf("got %v, want %v", c, want)
	}

	c, err = FromFloats([]float64{2, -1, 0, 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if want := (stdcolor.NRGBA{255, 0, 0, 64}); c != want {
		t.Errorf("clamping: got %v, want %v", c, want)
	}

	if _, err := FromFloats([]float64{1, 2}); err == nil {
		t.Error("wrong length not detected")
	}
	if _, err := FromFloats([]float64{math.NaN(), 0, 0}); err == nil {
		t.Error("NaN channel accepted")
	}
	if _, err := FromFloats([]float64{1, 1, 1, math.NaN()}); err == nil {
		t.Error("NaN alpha accepted")
	}
}

func TestSVG(t *testing.T) {
	if got := SVG(stdcolor.NRGBA{255, 128, 0, 10}); got != "rgb(255,128,0)" {
		t.Errorf("got %q", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(stdcolor.NRGBA{1, 2, 3, 255}, 0.5)
	if c.A != 128 || c.R != 1 {
		t.Errorf("got %v", c)
	}

	c = WithAlpha(stdcolor.NRGBA{1, 2, 3, 255}, math.NaN())
	if c.A != 0 {
		t.Errorf("NaN alpha: got %v", c)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}
	for _, name := range []string{"red", "transparent", "yellowgreen"} {
		if !slices.Contains(names, name) {
			t.Errorf("%q missing", name)
		}
		if _, err := Parse(name); err != nil {
			t.Errorf("listed name %q does not parse: %v", name, err)
		}
	}
}
