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

package vectors

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/vectors/ndarray"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		shape []int
		form  Form
		d     int
	}{
		{[]int{10, 2, 2}, FormCoordinates, 2},
		{[]int{10, 2, 3}, FormCoordinates, 3},
		{[]int{0, 2, 2}, FormCoordinates, 2},
		{[]int{2, 2, 2}, FormCoordinates, 2},
		{[]int{20, 10, 2}, FormImage, 2},
		{[]int{5, 3, 2}, FormImage, 2},
		{[]int{12, 20, 10, 3}, FormImage, 3},
		{[]int{4, 2, 5, 3}, FormImage, 3},
		{[]int{10, 2, 4}, 0, 0},
		{[]int{10, 2}, 0, 0},
		{[]int{3}, 0, 0},
		{[]int{4, 4, 4, 2}, 0, 0},
		{[]int{4, 4, 3}, 0, 0},
		{[]int{1, 1, 1, 1, 3}, 0, 0},
	}
	for _, c := range cases {
		form, d, err := Classify(ndarray.Zeros(c.shape...))
		if c.form == 0 {
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Errorf("%v: expected *InputError, got %v", c.shape, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", c.shape, err)
			continue
		}
		if form != c.form || d != c.d {
			t.Errorf("%v: got %s/%d, want %s/%d", c.shape, form, d, c.form, c.d)
		}
	}
}

func TestClassifyInconsistent(t *testing.T) {
	cases := []*ndarray.Array{
		{Shape: []int{4, 3, 2}, Data: make([]float64, 5)},
		{Shape: []int{4, 2, 2}, Data: make([]float64, 5)},
		{Shape: []int{4, 2, 2}, Data: make([]float64, 17)},
		{Shape: []int{-1, 2, 2}, Data: nil},
	}
	for _, a := range cases {
		_, _, err := Classify(a)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Errorf("%v with %d values: expected *InputError, got %v",
				a.Shape, len(a.Data), err)
		}
		if _, err := New(a, nil); err == nil {
			t.Errorf("%v with %d values: New succeeded", a.Shape, len(a.Data))
		}
	}
}

func TestImageToCoordinates(t *testing.T) {
	// a 2x3 grid of 2D vectors, where the vector at (i, j) is (10i, j)
	field := ndarray.Zeros(2, 3, 2)
	for i := range 2 {
		for j := range 3 {
			field.Set(float64(10*i), i, j, 0)
			field.Set(float64(j), i, j, 1)
		}
	}

	got, err := Normalize(field)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		0, 0, 0, 0,
		0, 1, 0, 1,
		0, 2, 0, 2,
		1, 0, 10, 0,
		1, 1, 10, 1,
		1, 2, 10, 2,
	}
	if d := cmp.Diff([]int{6, 2, 2}, got.Shape); d != "" {
		t.Errorf("wrong shape (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, got.Data); d != "" {
		t.Errorf("wrong data (-want +got):\n%s", d)
	}
}

func TestImageToCoordinates3D(t *testing.T) {
	field := ndarray.Zeros(2, 2, 2, 3)
	for i := range field.Data {
		field.Data[i] = float64(i)
	}
	got, err := Normalize(field)
	if err != nil {
		t.Fatal(err)
	}
	if got.Shape[0] != 8 {
		t.Fatalf("got shape %v", got.Shape)
	}
	// cell (1, 0, 1) is the sixth cell in row-major order
	origin := []float64{got.At(5, 0, 0), got.At(5, 0, 1), got.At(5, 0, 2)}
	dir := []float64{got.At(5, 1, 0), got.At(5, 1, 1), got.At(5, 1, 2)}
	if d := cmp.Diff([]float64{1, 0, 1}, origin); d != "" {
		t.Errorf("origin (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{15, 16, 17}, dir); d != "" {
		t.Errorf("direction (-want +got):\n%s", d)
	}
}

func TestNormalizeCopies(t *testing.T) {
	in := ndarray.Zeros(3, 2, 2)
	out, err := Normalize(in)
	if err != nil {
		t.Fatal(err)
	}
	out.Data[0] = 1
	if in.Data[0] != 0 {
		t.Error("Normalize returned an alias of its input")
	}
}
