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
	"fmt"
)

// ErrDims is returned (wrapped) when a displayed-dimension selection does
// not fit the data.
var ErrDims = errors.New("invalid displayed dimensions")

// InputError indicates that an array could not be interpreted as vector
// data.  The layer is left unchanged when this error is returned.
type InputError struct {
	Shape  []int
	Reason string
}

func (err *InputError) Error() string {
	return fmt.Sprintf("invalid vector data of shape %v: %s", err.Shape, err.Reason)
}

// PropertyError indicates an invalid value for one of the layer properties.
type PropertyError struct {
	Property string
	Value    any
	Err      error
}

func (err *PropertyError) Error() string {
	msg := fmt.Sprintf("invalid %s %v", err.Property, err.Value)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *PropertyError) Unwrap() error {
	return err.Err
}

var (
	errNotPositive = errors.New("must be positive and finite")
	errOutOfRange  = errors.New("must be between 0 and 1")
)
