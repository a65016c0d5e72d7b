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
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vectors/color"
)

// ThumbnailSize is the width and height of layer thumbnails, in pixels.
const ThumbnailSize = 32

// MaxThumbnailVectors is the maximum number of vectors drawn into a
// thumbnail.  Larger layers are thinned out with a fixed stride.
const MaxThumbnailVectors = 10000

// Thumbnail returns a small RGBA preview of the layer.
//
// The image always has size ThumbnailSize×ThumbnailSize.  The result is
// cached until the layer changes, and must not be modified by the caller.
func (l *Layer) Thumbnail() *image.RGBA {
	if l.thumb == nil {
		l.UpdateThumbnail()
	}
	return l.thumb
}

// UpdateThumbnail recomputes the thumbnail from the current data and
// properties.
func (l *Layer) UpdateThumbnail() {
	img := image.NewRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	l.thumb = img

	segments := l.segments()
	if len(segments) == 0 {
		return
	}

	step := 1
	if len(segments) > MaxThumbnailVectors {
		step = (len(segments) + MaxThumbnailVectors - 1) / MaxThumbnailVectors
	}

	// Map the bounding box of all end points, padded by half a pixel on each
	// side, to the thumbnail area.  The scale is uniform, so that the
	// aspect ratio of the data is preserved.
	bbox := segmentBBox(segments)
	dx := bbox.URx - bbox.LLx + 1
	dy := bbox.URy - bbox.LLy + 1
	zoom := ThumbnailSize / max(dx, dy)
	M := matrix.Translate(-bbox.LLx+0.5, -bbox.LLy+0.5).Mul(matrix.Scale(zoom, zoom))
	aff := f64.Aff3{M[0], M[2], M[4], M[1], M[3], M[5]}

	r := vector.NewRasterizer(ThumbnailSize, ThumbnailSize)
	for i := 0; i < len(segments); i += step {
		p0 := transform(segments[i][0], aff)
		p1 := transform(segments[i][1], aff)
		drawSegment(r, p0, p1, 0.5)
	}

	col := color.WithAlpha(l.rgba, l.opacity)
	r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// segments returns start and end point of every vector, projected onto the
// displayed axes.  The direction is scaled by the layer length.
func (l *Layer) segments() [][2]vec.Vec2 {
	res := make([][2]vec.Vec2, l.Len())
	for i := range res {
		res[i][0], res[i][1] = l.Endpoints(i)
	}
	return res
}

func segmentBBox(segments [][2]vec.Vec2) rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, s := range segments {
		for _, p := range s {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}

func transform(p vec.Vec2, m f64.Aff3) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// drawSegment adds a line segment of width 2*hw to the rasterizer path.
// Degenerate segments are drawn as a square dot.
func drawSegment(r *vector.Rasterizer, p0, p1 vec.Vec2, hw float64) {
	d := p1.Sub(p0)
	if d.Length() < 1e-6 {
		r.MoveTo(float32(p0.X-hw), float32(p0.Y-hw))
		r.LineTo(float32(p0.X+hw), float32(p0.Y-hw))
		r.LineTo(float32(p0.X+hw), float32(p0.Y+hw))
		r.LineTo(float32(p0.X-hw), float32(p0.Y+hw))
		r.ClosePath()
		return
	}

	n := d.Normalize().Rot90().Mul(hw)
	a := p0.Add(n)
	b := p1.Add(n)
	c := p1.Sub(n)
	e := p0.Sub(n)
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(e.X), float32(e.Y))
	r.ClosePath()
}
