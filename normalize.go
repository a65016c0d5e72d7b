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
	"fmt"

	"seehuhn.de/go/vectors/ndarray"
)

// Form describes how an input array encodes vectors.
type Form int

// These are the recognized input forms.
const (
	// FormCoordinates is an array of shape (N, 2, D), listing origin and
	// direction of each vector explicitly.
	FormCoordinates Form = iota + 1

	// FormImage is an array of shape (n_1, ..., n_D, D), holding one
	// direction vector per grid cell.  The origin of each vector is the
	// index of its cell.
	FormImage
)

func (f Form) String() string {
	switch f {
	case FormCoordinates:
		return "coordinates"
	case FormImage:
		return "image"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Classify determines the form of an input array and the number D of
// coordinates per point.
//
// The array must hold exactly prod(Shape) values.  The rule is applied in
// order:
//  1. The last axis must have length 2 or 3; this length is D.
//  2. An array of rank 3 whose middle axis has length 2 is in coordinate
//     form.  In particular, a (N, 2, 2) array is never read as a grid.
//  3. An array of rank D+1 is in image form.
//  4. Everything else is rejected.
func Classify(a *ndarray.Array) (Form, int, error) {
	if a == nil {
		return 0, 0, &InputError{Reason: "no data"}
	}
	rank := a.Rank()
	if rank < 2 {
		return 0, 0, &InputError{Shape: a.Shape, Reason: "need at least two axes"}
	}
	n := 1
	for _, k := range a.Shape {
		if k < 0 {
			return 0, 0, &InputError{Shape: a.Shape, Reason: "negative extent"}
		}
		n *= k
	}
	if len(a.Data) != n {
		return 0, 0, &InputError{
			Shape:  a.Shape,
			Reason: fmt.Sprintf("%d values do not fit shape", len(a.Data)),
		}
	}
	d := a.Shape[rank-1]
	if d != 2 && d != 3 {
		return 0, 0, &InputError{
			Shape:  a.Shape,
			Reason: fmt.Sprintf("points must have 2 or 3 coordinates, not %d", d),
		}
	}

	switch {
	case rank == 3 && a.Shape[1] == 2:
		return FormCoordinates, d, nil
	case rank == d+1:
		return FormImage, d, nil
	}
	return 0, 0, &InputError{
		Shape:  a.Shape,
		Reason: fmt.Sprintf("expected shape (N, 2, %d) or a %d-dimensional grid of vectors", d, d),
	}
}

// Normalize converts an input array into the canonical shape (N, 2, D).
// The result never shares storage with the input.
func Normalize(a *ndarray.Array) (*ndarray.Array, error) {
	form, d, err := Classify(a)
	if err != nil {
		return nil, err
	}
	switch form {
	case FormCoordinates:
		return a.Clone(), nil
	default:
		return imageToCoordinates(a, d), nil
	}
}

// imageToCoordinates turns a grid of direction vectors into one (origin,
// direction) pair per grid cell, in row-major order of the grid.
func imageToCoordinates(a *ndarray.Array, d int) *ndarray.Array {
	grid := &ndarray.Array{Shape: a.Shape[:d]}
	n := 1
	for _, k := range grid.Shape {
		n *= k
	}

	res := ndarray.Zeros(n, 2, d)
	idx := make([]int, d)
	for i := range n {
		grid.Unravel(i, idx)
		base := i * 2 * d
		for j, k := range idx {
			res.Data[base+j] = float64(k)
		}
		copy(res.Data[base+d:base+2*d], a.Data[i*d:(i+1)*d])
	}
	return res
}
