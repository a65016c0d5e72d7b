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

package ndarray

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type jsonArray struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// Arrays are written as an object with "shape" and "data" members.
func (a *Array) MarshalJSON() ([]byte, error) {
	shape := a.Shape
	if shape == nil {
		shape = []int{}
	}
	data := a.Data
	if data == nil {
		data = []float64{}
	}
	return json.Marshal(jsonArray{Shape: shape, Data: data})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both the object form written by MarshalJSON and plain nested lists
// are accepted.
func (a *Array) UnmarshalJSON(buf []byte) error {
	buf = bytes.TrimSpace(buf)
	if len(buf) > 0 && buf[0] == '{' {
		var obj jsonArray
		if err := json.Unmarshal(buf, &obj); err != nil {
			return err
		}
		res, err := New(obj.Shape, obj.Data)
		if err != nil {
			return err
		}
		*a = *res
		return nil
	}

	var nested any
	if err := json.Unmarshal(buf, &nested); err != nil {
		return err
	}
	if _, isList := nested.([]any); !isList {
		return fmt.Errorf("ndarray: expected list or object, got %T", nested)
	}
	res, err := FromNested(nested)
	if err != nil {
		return err
	}
	*a = *res
	return nil
}
