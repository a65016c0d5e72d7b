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
	"image"
	stdcolor "image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vectors/color"
	"seehuhn.de/go/vectors/ndarray"
)

// DefaultName is the name of a layer when no other name is given.
const DefaultName = "Vectors"

// Default values for the display properties.
const (
	DefaultEdgeWidth = 1.0
	DefaultEdgeColor = "red"
	DefaultLength    = 1.0
	DefaultOpacity   = 1.0
)

// Options can be used to set the display properties of a new layer.
// Fields with the zero value are replaced by the corresponding default.
type Options struct {
	// Name is the label shown in layer lists.
	Name string

	// EdgeWidth is the stroke width of the vector glyphs.
	EdgeWidth float64

	// EdgeColor is the color of the vector glyphs, in any form accepted by
	// [color.Parse].
	EdgeColor string

	// Length is multiplied with the direction of each vector before
	// drawing.
	Length float64

	// Opacity is the layer opacity, in the range (0, 1].
	Opacity float64
}

// Layer holds a list of vectors together with the properties used to
// display them.
//
// Each vector consists of an origin and a direction, both with NDim()
// coordinates.  A Layer must not be used from several goroutines at once.
type Layer struct {
	data *ndarray.Array
	ndim int

	name      string
	edgeWidth float64
	edgeColor string
	rgba      stdcolor.NRGBA
	length    float64
	opacity   float64

	dims Dims

	dirty     Change
	listeners []listener
	nextID    int

	thumb *image.RGBA
}

// New creates a new layer from coordinate-form or image-form data.
// See [Classify] for the accepted array shapes.  If opt is nil, the
// default properties are used.
func New(data *ndarray.Array, opt *Options) (*Layer, error) {
	canonical, err := Normalize(data)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &Options{}
	}

	l := &Layer{
		data:      canonical,
		ndim:      canonical.Shape[2],
		name:      DefaultName,
		edgeWidth: DefaultEdgeWidth,
		edgeColor: DefaultEdgeColor,
		length:    DefaultLength,
		opacity:   DefaultOpacity,
	}
	l.dims = DefaultDims(l.ndim)
	l.rgba, _ = color.Parse(DefaultEdgeColor)

	if opt.Name != "" {
		l.name = opt.Name
	}
	if opt.EdgeWidth != 0 {
		if err := checkPositive("edge width", opt.EdgeWidth); err != nil {
			return nil, err
		}
		l.edgeWidth = opt.EdgeWidth
	}
	if opt.EdgeColor != "" {
		rgba, err := resolveColor(opt.EdgeColor)
		if err != nil {
			return nil, err
		}
		l.edgeColor = opt.EdgeColor
		l.rgba = rgba
	}
	if opt.Length != 0 {
		if err := checkPositive("length", opt.Length); err != nil {
			return nil, err
		}
		l.length = opt.Length
	}
	if opt.Opacity != 0 {
		if err := checkUnit("opacity", opt.Opacity); err != nil {
			return nil, err
		}
		l.opacity = opt.Opacity
	}

	return l, nil
}

// Data returns a copy of the vectors, as an array of shape (N, 2, D).
// Element [i, 0, :] is the origin of vector i, element [i, 1, :] its
// direction.
func (l *Layer) Data() *ndarray.Array {
	return l.data.Clone()
}

// Len returns the number of vectors.
func (l *Layer) Len() int {
	return l.data.Shape[0]
}

// Endpoints returns start and end point of vector i, projected onto the
// displayed axes.  The direction is scaled by Length().
func (l *Layer) Endpoints(i int) (start, end vec.Vec2) {
	d := l.ndim
	origin := l.data.Data[i*2*d : i*2*d+d]
	dir := l.data.Data[i*2*d+d : (i+1)*2*d]
	start = l.dims.Project(origin)
	end = start.Add(l.dims.Project(dir).Mul(l.length))
	return start, end
}

// SetData replaces all vectors of the layer.
//
// The new data may use a different number of dimensions than before.  In
// this case, the displayed dimensions are reset to the default.  If the
// data is invalid, an error is returned and the layer is not modified.
func (l *Layer) SetData(data *ndarray.Array) error {
	canonical, err := Normalize(data)
	if err != nil {
		return err
	}

	l.data = canonical
	if l.ndim != canonical.Shape[2] {
		l.ndim = canonical.Shape[2]
		l.dims = DefaultDims(l.ndim)
	}
	l.invalidate(ChangeData)
	return nil
}

// NDim returns the number of coordinates per point, 2 or 3.
func (l *Layer) NDim() int {
	return l.ndim
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// SetName changes the layer name.
func (l *Layer) SetName(name string) {
	if name == l.name {
		return
	}
	l.name = name
	l.invalidate(ChangeName)
}

// EdgeWidth returns the stroke width of the vector glyphs.
func (l *Layer) EdgeWidth() float64 {
	return l.edgeWidth
}

// SetEdgeWidth changes the stroke width.  The width must be positive.
func (l *Layer) SetEdgeWidth(width float64) error {
	if err := checkPositive("edge width", width); err != nil {
		return err
	}
	if width == l.edgeWidth {
		return nil
	}
	l.edgeWidth = width
	l.invalidate(ChangeStyle)
	return nil
}

// EdgeColor returns the color of the vector glyphs, as it was set.
func (l *Layer) EdgeColor() string {
	return l.edgeColor
}

// EdgeRGBA returns the resolved edge color.
func (l *Layer) EdgeRGBA() stdcolor.NRGBA {
	return l.rgba
}

// SetEdgeColor changes the color of the vector glyphs.
func (l *Layer) SetEdgeColor(c string) error {
	rgba, err := resolveColor(c)
	if err != nil {
		return err
	}
	if c == l.edgeColor {
		return nil
	}
	l.edgeColor = c
	l.rgba = rgba
	l.invalidate(ChangeStyle)
	return nil
}

// Length returns the factor applied to the vector directions.
func (l *Layer) Length() float64 {
	return l.length
}

// SetLength changes the factor applied to the vector directions.
// The factor must be positive.
func (l *Layer) SetLength(length float64) error {
	if err := checkPositive("length", length); err != nil {
		return err
	}
	if length == l.length {
		return nil
	}
	l.length = length
	l.invalidate(ChangeStyle)
	return nil
}

// Opacity returns the layer opacity.
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity changes the layer opacity.  The value must be in [0, 1].
func (l *Layer) SetOpacity(opacity float64) error {
	if err := checkUnit("opacity", opacity); err != nil {
		return err
	}
	if opacity == l.opacity {
		return nil
	}
	l.opacity = opacity
	l.invalidate(ChangeStyle)
	return nil
}

// Dims returns the current displayed-dimension selection.
func (l *Layer) Dims() Dims {
	return l.dims
}

// SetDims changes which axes are displayed and, for 3-dimensional data,
// which slice is shown.
func (l *Layer) SetDims(d Dims) error {
	if err := d.check(l.ndim); err != nil {
		return err
	}
	if d.Point != nil {
		d.Point = append([]float64(nil), d.Point...)
	}
	l.dims = d
	l.invalidate(ChangeView | ChangeThumbnail)
	return nil
}

// DataView returns the vectors of the current slice, restricted to the
// displayed axes.  The result has shape (K, 2, 2).
func (l *Layer) DataView() *ndarray.Array {
	n, d := l.Len(), l.ndim
	ax := l.dims.Displayed

	var view []float64
	for i := range n {
		origin := l.data.Data[i*2*d : i*2*d+d]
		dir := l.data.Data[i*2*d+d : (i+1)*2*d]
		if !l.dims.inSlice(origin) {
			continue
		}
		view = append(view, origin[ax[0]], origin[ax[1]], dir[ax[0]], dir[ax[1]])
	}
	if view == nil {
		view = []float64{}
	}
	return &ndarray.Array{
		Shape: []int{len(view) / 4, 2, 2},
		Data:  view,
	}
}

func resolveColor(c string) (stdcolor.NRGBA, error) {
	rgba, err := color.Parse(c)
	if err != nil {
		return stdcolor.NRGBA{}, &PropertyError{Property: "edge color", Value: c, Err: err}
	}
	return rgba, nil
}

func checkPositive(property string, x float64) error {
	if !(x > 0) || math.IsInf(x, 1) {
		return &PropertyError{Property: property, Value: x, Err: errNotPositive}
	}
	return nil
}

func checkUnit(property string, x float64) error {
	if !(x >= 0 && x <= 1) {
		return &PropertyError{Property: property, Value: x, Err: errOutOfRange}
	}
	return nil
}
