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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Dims selects the part of the data which is shown on screen.
//
// Displayed names the two data axes mapped to the screen: Displayed[0]
// runs down (rows), Displayed[1] runs across (columns).  For 3-dimensional
// data, Point gives the current slice position along the remaining axis;
// a nil Point means the slice at 0.
type Dims struct {
	Displayed [2]int
	Point     []float64
}

// DefaultDims returns the selection showing the last two axes of
// ndim-dimensional data, with the slice at the origin.
func DefaultDims(ndim int) Dims {
	return Dims{Displayed: [2]int{ndim - 2, ndim - 1}}
}

func (d Dims) check(ndim int) error {
	a, b := d.Displayed[0], d.Displayed[1]
	if a < 0 || a >= ndim || b < 0 || b >= ndim {
		return fmt.Errorf("%w: axes %v for %d-dimensional data", ErrDims, d.Displayed, ndim)
	}
	if a == b {
		return fmt.Errorf("%w: axis %d displayed twice", ErrDims, a)
	}
	if d.Point != nil && len(d.Point) != ndim {
		return fmt.Errorf("%w: slice position has %d coordinates, want %d",
			ErrDims, len(d.Point), ndim)
	}
	return nil
}

// Project returns the screen coordinates of a data point: X is the
// coordinate along Displayed[1], Y the coordinate along Displayed[0].
func (d Dims) Project(p []float64) vec.Vec2 {
	return vec.Vec2{X: p[d.Displayed[1]], Y: p[d.Displayed[0]]}
}

// inSlice reports whether the point lies in the current slice, i.e. whether
// it agrees with d.Point on all axes which are not displayed.
func (d Dims) inSlice(p []float64) bool {
	for i, x := range p {
		if i == d.Displayed[0] || i == d.Displayed[1] {
			continue
		}
		var pos float64
		if d.Point != nil {
			pos = d.Point[i]
		}
		if math.Round(x) != math.Round(pos) {
			return false
		}
	}
	return true
}
