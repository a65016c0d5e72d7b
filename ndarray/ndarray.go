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

// Package ndarray implements dense, row-major arrays of float64 values with
// an arbitrary number of axes.
//
// The package only provides what is needed to pass image-like and
// coordinate-like data around: construction, indexing and comparison.
// There is no broadcasting and no arithmetic.
package ndarray

import (
	"errors"
	"fmt"
	"slices"
)

// Array is a dense N-dimensional array of float64 values, stored in
// row-major order.
//
// The zero value is an array of rank 0 with no elements.  Arrays returned by
// the functions in this package always satisfy len(Data) == prod(Shape).
type Array struct {
	Shape []int
	Data  []float64
}

// New returns an array with the given shape, backed by data.
// The array takes ownership of both slices.
func New(shape []int, data []float64) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("ndarray: %d values do not fit shape %v", len(data), shape)
	}
	return &Array{Shape: shape, Data: data}, nil
}

// Zeros returns a new array of the given shape with all elements set to 0.
// It panics if one of the extents is negative.
func Zeros(shape ...int) *Array {
	n, err := size(shape)
	if err != nil {
		panic(err)
	}
	return &Array{
		Shape: slices.Clone(shape),
		Data:  make([]float64, n),
	}
}

func size(shape []int) (int, error) {
	n := 1
	for _, k := range shape {
		if k < 0 {
			return 0, fmt.Errorf("ndarray: negative extent in shape %v", shape)
		}
		n *= k
	}
	return n, nil
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.Shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.Data)
}

// Index returns the offset of the given element in a.Data.
// It panics if the index has the wrong length or is out of range.
func (a *Array) Index(idx ...int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("ndarray: %d indices for array of rank %d", len(idx), len(a.Shape)))
	}
	pos := 0
	for i, k := range idx {
		if k < 0 || k >= a.Shape[i] {
			panic(fmt.Sprintf("ndarray: index %v out of range for shape %v", idx, a.Shape))
		}
		pos = pos*a.Shape[i] + k
	}
	return pos
}

// Unravel converts an offset into a.Data into the corresponding index.
// The result is written to idx, which must have length a.Rank().
func (a *Array) Unravel(pos int, idx []int) {
	for i := len(a.Shape) - 1; i >= 0; i-- {
		k := a.Shape[i]
		idx[i] = pos % k
		pos /= k
	}
}

// At returns the element at the given index.
func (a *Array) At(idx ...int) float64 {
	return a.Data[a.Index(idx...)]
}

// Set changes the element at the given index.
func (a *Array) Set(v float64, idx ...int) {
	a.Data[a.Index(idx...)] = v
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	return &Array{
		Shape: slices.Clone(a.Shape),
		Data:  slices.Clone(a.Data),
	}
}

// Equal reports whether a and b have the same shape and the same elements.
// NaN values compare unequal, as for the == operator.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Shape, b.Shape) && slices.Equal(a.Data, b.Data)
}

// String returns a short description of the array, for debugging.
func (a *Array) String() string {
	return fmt.Sprintf("ndarray%v", a.Shape)
}

// ErrRagged is returned by FromNested if the sub-lists at one level have
// different lengths.
var ErrRagged = errors.New("ndarray: ragged nested list")

// FromNested converts nested lists into an array.
//
// The leaves must be numbers (float64 or int) and all lists at the same
// depth must have the same length.  The accepted list types are []any,
// []float64 and [][]float64, which covers the output of encoding/json.
// An empty list at depth k gives an array with extent 0 along axis k and no
// further axes.
func FromNested(v any) (*Array, error) {
	var shape []int
	probe := v
	for {
		l, ok := asList(probe)
		if !ok {
			break
		}
		shape = append(shape, len(l))
		if len(l) == 0 {
			break
		}
		probe = l[0]
	}

	n, _ := size(shape)
	data := make([]float64, 0, n)
	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		if depth == len(shape) {
			x, ok := asNumber(v)
			if !ok {
				return fmt.Errorf("ndarray: unexpected %T at depth %d", v, depth)
			}
			data = append(data, x)
			return nil
		}
		l, ok := asList(v)
		if !ok || len(l) != shape[depth] {
			return ErrRagged
		}
		for _, elem := range l {
			if err := walk(elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(v, 0); err != nil {
		return nil, err
	}
	return &Array{Shape: shape, Data: data}, nil
}

func asList(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case []float64:
		res := make([]any, len(v))
		for i, x := range v {
			res[i] = x
		}
		return res, true
	case [][]float64:
		res := make([]any, len(v))
		for i, x := range v {
			res[i] = x
		}
		return res, true
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
