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

// Package pdfexport draws vector layers onto PDF pages.
package pdfexport

import (
	"errors"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/graphics/extgstate"
	"seehuhn.de/go/vectors"
	vcolor "seehuhn.de/go/vectors/color"
)

// Options controls the PDF output.
type Options struct {
	// Margin is added around the bounding box of the vectors, in PDF
	// units.  If zero, the edge width of the layer is used.
	Margin float64

	// Version is the PDF version of the output file.
	// If zero, PDF 1.7 is used.
	Version pdf.Version
}

// ErrNoLayer is returned when Write is called with a nil layer.
var ErrNoLayer = errors.New("pdfexport: no layer")

// Write writes a single-page PDF file showing the layer.
//
// One layer unit corresponds to one PDF unit.  The page is sized to the
// bounding box of the vectors plus the margin, and the first row of the
// data is shown at the top of the page.
func Write(w io.Writer, l *vectors.Layer, opt *Options) error {
	if l == nil {
		return ErrNoLayer
	}
	if opt == nil {
		opt = &Options{}
	}
	margin := opt.Margin
	if margin == 0 {
		margin = l.EdgeWidth()
	}
	v := opt.Version
	if v == 0 {
		v = pdf.V1_7
	}

	bbox := Bounds(l, margin)
	paper := &pdf.Rectangle{
		URx: bbox.URx - bbox.LLx,
		URy: bbox.URy - bbox.LLy,
	}
	page, err := document.WriteSinglePage(w, paper, v, nil)
	if err != nil {
		return err
	}

	// flip the y axis, so that rows run downwards
	page.Transform(matrix.Matrix{1, 0, 0, -1, -bbox.LLx, bbox.URy})
	Draw(page.Builder, l)

	return page.Close()
}

// Draw adds stroke operations for all vectors of l to the content stream
// of b, in layer coordinates.
func Draw(b *builder.Builder, l *vectors.Layer) {
	n := l.Len()
	if n == 0 {
		return
	}

	rgba := l.EdgeRGBA()
	alpha := l.Opacity() * float64(rgba.A) / 255

	b.PushGraphicsState()
	if alpha < 1 {
		b.SetExtGState(&extgstate.ExtGState{
			Set:         graphics.StateStrokeAlpha,
			StrokeAlpha: alpha,
			SingleUse:   true,
		})
	}
	r, g, bl, _ := vcolor.Floats(rgba)
	b.SetStrokeColor(color.DeviceRGB{r, g, bl})
	b.SetLineWidth(l.EdgeWidth())
	b.SetLineCap(graphics.LineCapRound)
	for i := range n {
		start, end := l.Endpoints(i)
		b.MoveTo(start.X, start.Y)
		b.LineTo(end.X, end.Y)
	}
	b.Stroke()
	b.PopGraphicsState()
}

// Bounds returns the region of the layer plane covered by the vectors,
// enlarged by margin on all sides.  The result is at least one unit wide
// and high.  An empty layer gives the unit square at the origin.
func Bounds(l *vectors.Layer, margin float64) pdf.Rectangle {
	n := l.Len()
	if n == 0 {
		return pdf.Rectangle{URx: 1, URy: 1}
	}

	start, end := l.Endpoints(0)
	r := pdf.Rectangle{
		LLx: min(start.X, end.X),
		LLy: min(start.Y, end.Y),
		URx: max(start.X, end.X),
		URy: max(start.Y, end.Y),
	}
	for i := 1; i < n; i++ {
		start, end := l.Endpoints(i)
		r.LLx = min(r.LLx, start.X, end.X)
		r.LLy = min(r.LLy, start.Y, end.Y)
		r.URx = max(r.URx, start.X, end.X)
		r.URy = max(r.URy, start.Y, end.Y)
	}

	r.LLx -= margin
	r.LLy -= margin
	r.URx = max(r.URx+margin, r.LLx+1)
	r.URy = max(r.URy+margin, r.LLy+1)
	return r
}
