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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/vectors/ndarray"
)

func TestChangeString(t *testing.T) {
	cases := []struct {
		c    Change
		want string
	}{
		{0, "none"},
		{ChangeData, "data"},
		{ChangeStyle | ChangeThumbnail, "style|thumbnail"},
		{ChangeData.implied(), "data|thumbnail|view"},
		{ChangeName.implied(), "name"},
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("%d: got %q, want %q", uint(c.c), got, c.want)
		}
	}
}

func TestSubscribe(t *testing.T) {
	layer, err := New(ndarray.Zeros(2, 2, 2), nil)
	if err != nil {
		t.Fatal(err)
	}

	var seen []Change
	unsubscribe := layer.Subscribe(func(l *Layer, c Change) {
		if l != layer {
			t.Error("wrong layer passed to listener")
		}
		seen = append(seen, c)
	})
	other := 0
	layer.Subscribe(func(*Layer, Change) { other++ })

	layer.SetName("a")
	layer.SetName("a") // no change, no event
	if err := layer.SetEdgeWidth(3); err != nil {
		t.Fatal(err)
	}
	if err := layer.SetData(ndarray.Zeros(1, 2, 2)); err != nil {
		t.Fatal(err)
	}
	want := []Change{
		ChangeName,
		ChangeStyle | ChangeThumbnail,
		ChangeData | ChangeThumbnail | ChangeView,
	}
	if d := cmp.Diff(want, seen); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}

	unsubscribe()
	layer.SetName("b")
	if len(seen) != 3 {
		t.Error("listener called after unsubscribing")
	}
	if other != 4 {
		t.Errorf("second listener called %d times, want 4", other)
	}
}

func TestDirtyConsume(t *testing.T) {
	layer, err := New(ndarray.Zeros(2, 2, 3), nil)
	if err != nil {
		t.Fatal(err)
	}
	if c := layer.Dirty(); c != 0 {
		t.Errorf("new layer is dirty: %s", c)
	}

	if err := layer.SetOpacity(0.5); err != nil {
		t.Fatal(err)
	}
	err = layer.SetDims(Dims{Displayed: [2]int{0, 1}, Point: []float64{0, 0, 4}})
	if err != nil {
		t.Fatal(err)
	}
	want := ChangeStyle | ChangeThumbnail | ChangeView
	if c := layer.Dirty(); c != want {
		t.Errorf("got %s, want %s", c, want)
	}
	if c := layer.Consume(); c != want {
		t.Errorf("Consume returned %s, want %s", c, want)
	}
	if c := layer.Dirty(); c != 0 {
		t.Errorf("still dirty after Consume: %s", c)
	}

	// failed updates leave the layer clean
	if err := layer.SetLength(-1); err == nil {
		t.Error("negative length accepted")
	}
	if c := layer.Dirty(); c != 0 {
		t.Errorf("failed update marked the layer dirty: %s", c)
	}
}
