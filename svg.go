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
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/vectors/color"
	"seehuhn.de/go/xmp"
)

// Element is an SVG element with a flat list of attributes.
type Element struct {
	XMLName xml.Name
	Attr    []xml.Attr `xml:",any,attr"`
}

// Get returns the value of the named attribute, or "" if the attribute is
// not present.
func (e *Element) Get(name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// XMLList returns one SVG "line" element per vector, in the order of Data().
//
// Each line runs from the origin to origin + Length()*direction.  Points are
// projected onto the displayed axes: x is the coordinate along
// Dims().Displayed[1], y the coordinate along Dims().Displayed[0].
func (l *Layer) XMLList() []*Element {
	width := formatNumber(l.edgeWidth)
	stroke := color.SVG(l.rgba)
	opacity := formatNumber(l.opacity * float64(l.rgba.A) / 255)

	segments := l.segments()
	res := make([]*Element, len(segments))
	for i, s := range segments {
		res[i] = &Element{
			XMLName: xml.Name{Local: "line"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x1"}, Value: formatNumber(s[0].X)},
				{Name: xml.Name{Local: "y1"}, Value: formatNumber(s[0].Y)},
				{Name: xml.Name{Local: "x2"}, Value: formatNumber(s[1].X)},
				{Name: xml.Name{Local: "y2"}, Value: formatNumber(s[1].Y)},
				{Name: xml.Name{Local: "stroke"}, Value: stroke},
				{Name: xml.Name{Local: "stroke-width"}, Value: width},
				{Name: xml.Name{Local: "opacity"}, Value: opacity},
			},
		}
	}
	return res
}

// SVGOptions controls the output of [Layer.WriteSVG].
type SVGOptions struct {
	// Margin is added around the bounding box of the vectors.
	// If zero, the edge width is used.
	Margin float64

	// Date, if non-zero, is recorded as creation date in the embedded
	// metadata.
	Date time.Time

	// OmitMetadata suppresses the XMP metadata block.
	OmitMetadata bool
}

// WriteSVG writes the layer as a standalone SVG document.
//
// The document contains an XMP metadata packet with the layer name as its
// title, followed by a group holding the elements returned by XMLList.
func (l *Layer) WriteSVG(w io.Writer, opt *SVGOptions) error {
	if opt == nil {
		opt = &SVGOptions{}
	}
	margin := opt.Margin
	if margin == 0 {
		margin = l.edgeWidth
	}

	x, y, width, height := 0.0, 0.0, 1.0, 1.0
	if segments := l.segments(); len(segments) > 0 {
		bbox := segmentBBox(segments)
		x = bbox.LLx - margin
		y = bbox.LLy - margin
		width = max(bbox.URx-bbox.LLx+2*margin, 1)
		height = max(bbox.URy-bbox.LLy+2*margin, 1)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	fmt.Fprintf(bw, "<svg xmlns=%q width=%q height=%q viewBox=\"%s %s %s %s\">\n",
		"http://www.w3.org/2000/svg",
		formatNumber(width), formatNumber(height),
		formatNumber(x), formatNumber(y), formatNumber(width), formatNumber(height))

	if !opt.OmitMetadata {
		packet, err := l.metadata(opt.Date)
		if err != nil {
			return err
		}
		bw.WriteString("<metadata>\n")
		err = packet.Write(bw, &xmp.PacketOptions{Pretty: true})
		if err != nil {
			return err
		}
		bw.WriteString("\n</metadata>\n")
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	group := xml.StartElement{Name: xml.Name{Local: "g"}}
	if err := enc.EncodeToken(group); err != nil {
		return err
	}
	title := struct {
		XMLName xml.Name `xml:"title"`
		Text    string   `xml:",chardata"`
	}{Text: l.name}
	if err := enc.Encode(title); err != nil {
		return err
	}
	for _, el := range l.XMLList() {
		if err := enc.Encode(el); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(group.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	bw.WriteString("\n</svg>\n")
	return bw.Flush()
}

func (l *Layer) metadata(date time.Time) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.Und, l.name)
	dc.Description.Set(language.Und, fmt.Sprintf("%d vectors in %d dimensions", l.Len(), l.ndim))

	packet := xmp.NewPacket()
	err := packet.Set(dc)
	if err != nil {
		return nil, err
	}
	if !date.IsZero() {
		basic := &xmp.Basic{}
		basic.CreateDate = xmp.NewDate(date)
		err = packet.Set(basic)
		if err != nil {
			return nil, err
		}
	}
	return packet, nil
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
