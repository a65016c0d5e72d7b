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

// Package style reads and writes the display settings of a vector layer
// from YAML files.
package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/vectors"
)

// Style holds the display settings which can be stored in a style file.
// Zero values mean that the corresponding layer default is used.
type Style struct {
	Name      string  `yaml:"name,omitempty"`
	EdgeWidth float64 `yaml:"edge_width,omitempty"`
	EdgeColor string  `yaml:"edge_color,omitempty"`
	Length    float64 `yaml:"length,omitempty"`
	Opacity   float64 `yaml:"opacity,omitempty"`

	// Displayed, if set, selects the two data axes shown.
	Displayed []int `yaml:"displayed,omitempty,flow"`
}

// Default returns the style corresponding to the layer defaults.
func Default() *Style {
	return &Style{
		Name:      vectors.DefaultName,
		EdgeWidth: vectors.DefaultEdgeWidth,
		EdgeColor: vectors.DefaultEdgeColor,
		Length:    vectors.DefaultLength,
		Opacity:   vectors.DefaultOpacity,
	}
}

// Load reads a style file.  Unknown keys are reported as errors.
func Load(fname string) (*Style, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Parse(body)
}

// Parse decodes a style from YAML.  An empty document gives the zero style.
func Parse(body []byte) (*Style, error) {
	s := &Style{}
	dec := yaml.NewDecoder(bytes.NewReader(body))
	dec.KnownFields(true)
	err := dec.Decode(s)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("style: %w", err)
	}
	if s.Displayed != nil && len(s.Displayed) != 2 {
		return nil, fmt.Errorf("style: displayed must list 2 axes, not %d", len(s.Displayed))
	}
	return s, nil
}

// Save writes the style to a file.
func (s *Style) Save(fname string) error {
	body, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, body, 0o644)
}

// Merge returns a copy of s where all fields set in other replace the
// values of s.
func (s *Style) Merge(other *Style) *Style {
	res := *s
	if other == nil {
		return &res
	}
	if other.Name != "" {
		res.Name = other.Name
	}
	if other.EdgeWidth != 0 {
		res.EdgeWidth = other.EdgeWidth
	}
	if other.EdgeColor != "" {
		res.EdgeColor = other.EdgeColor
	}
	if other.Length != 0 {
		res.Length = other.Length
	}
	if other.Opacity != 0 {
		res.Opacity = other.Opacity
	}
	if other.Displayed != nil {
		res.Displayed = append([]int(nil), other.Displayed...)
	}
	return &res
}

// Options converts the style into layer options.
func (s *Style) Options() *vectors.Options {
	return &vectors.Options{
		Name:      s.Name,
		EdgeWidth: s.EdgeWidth,
		EdgeColor: s.EdgeColor,
		Length:    s.Length,
		Opacity:   s.Opacity,
	}
}

// Apply sets the displayed axes of l, if the style selects any.
func (s *Style) Apply(l *vectors.Layer) error {
	if s.Displayed == nil {
		return nil
	}
	d := l.Dims()
	d.Displayed = [2]int{s.Displayed[0], s.Displayed[1]}
	return l.SetDims(d)
}
