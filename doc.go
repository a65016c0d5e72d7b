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

// Package vectors implements vector layers for N-dimensional image viewers.
//
// A vector layer holds a list of arrows.  Each arrow has an origin and a
// direction, both given as points with D = 2 or 3 coordinates.  Internally
// the arrows are stored as an [ndarray.Array] of shape (N, 2, D), where
// element [i, 0, :] is the origin and element [i, 1, :] is the direction of
// arrow i.
//
// Data can be given in two forms, see [Classify]:
//
//	layer, err := vectors.New(coords, nil)  // shape (N, 2, D)
//	layer, err := vectors.New(field, nil)   // shape (n_1, ..., n_D, D)
//
// In the second form every grid cell holds one direction vector, anchored at
// the index of the cell.
//
// The display properties (name, edge width, edge color, length scale and
// opacity) can be set using [Options] when the layer is created, or later
// using the setter methods.  Every modification is reported to the
// functions registered with [Layer.Subscribe] and recorded in
// [Layer.Dirty], so that a renderer can redraw what has changed.
//
// A layer can be previewed using [Layer.Thumbnail] and exported as SVG using
// [Layer.XMLList] and [Layer.WriteSVG].  The subpackage pdfexport draws a
// layer onto a PDF page.
package vectors
