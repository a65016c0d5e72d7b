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

// Vectors converts vector data stored as JSON into images.
//
// The input is a JSON file holding either a nested list of numbers or an
// object of the form {"shape": [...], "data": [...]}.  The array must be in
// one of the forms accepted by vectors.New.  The output can be written as
// SVG, as a PNG thumbnail, or as a single-page PDF file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/draw"
	"golang.org/x/term"
	"seehuhn.de/go/vectors"
	"seehuhn.de/go/vectors/internal/style"
	"seehuhn.de/go/vectors/ndarray"
	"seehuhn.de/go/vectors/pdfexport"
)

var errTerminal = errors.New("refusing to write binary data to a terminal")

type app struct {
	logger    *zap.Logger
	newLogger func(verbose bool) (*zap.Logger, error)

	stdin      io.Reader
	stdout     io.Writer
	isTerminal func() bool

	verbose    bool
	svgOut     string
	pngOut     string
	pdfOut     string
	thumbScale int
	styleFile  string
	saveStyle  string

	flagStyle style.Style
	displayed []int
}

func newApp() *app {
	return &app{
		logger:    zap.NewNop(),
		newLogger: productionLogger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors [flags] input.json",
		Short: "Render vector layers as SVG, PNG or PDF",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		RunE: a.run,
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.svgOut, "svg", "", "write SVG output to `file` (\"-\" for stdout)")
	flags.StringVar(&a.pngOut, "png", "", "write the thumbnail as PNG to `file`")
	flags.IntVar(&a.thumbScale, "thumb-scale", 1, "enlarge the PNG thumbnail by this factor")
	flags.StringVar(&a.pdfOut, "pdf", "", "write PDF output to `file`")
	flags.StringVar(&a.styleFile, "style", "", "read display settings from a YAML `file`")
	flags.StringVar(&a.saveStyle, "save-style", "", "write the effective display settings to a YAML `file`")

	flags.StringVar(&a.flagStyle.Name, "name", "", "layer name")
	flags.Float64Var(&a.flagStyle.EdgeWidth, "edge-width", 0, "stroke width")
	flags.StringVar(&a.flagStyle.EdgeColor, "edge-color", "", "stroke color")
	flags.Float64Var(&a.flagStyle.Length, "length", 0, "length scale for the directions")
	flags.Float64Var(&a.flagStyle.Opacity, "opacity", 0, "layer opacity")
	flags.IntSliceVar(&a.displayed, "displayed", nil, "the two data axes to show")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if a.thumbScale < 1 {
		return fmt.Errorf("invalid thumbnail scale %d", a.thumbScale)
	}

	st := style.Default()
	if a.styleFile != "" {
		fileStyle, err := style.Load(a.styleFile)
		if err != nil {
			return err
		}
		st = st.Merge(fileStyle)
		a.logger.Debug("style loaded", zap.String("file", a.styleFile))
	}
	fs := a.flagStyle
	if len(a.displayed) > 0 {
		fs.Displayed = a.displayed
	}
	st = st.Merge(&fs)

	data, err := a.readInput(args[0])
	if err != nil {
		return err
	}
	layer, err := vectors.New(data, st.Options())
	if err != nil {
		return err
	}
	if err := st.Apply(layer); err != nil {
		return err
	}
	a.logger.Info("layer loaded",
		zap.String("name", layer.Name()),
		zap.Int("vectors", layer.Len()),
		zap.Int("ndim", layer.NDim()))

	if a.saveStyle != "" {
		if err := st.Save(a.saveStyle); err != nil {
			return err
		}
	}
	if a.svgOut != "" {
		err := a.writeOutput(a.svgOut, false, func(w io.Writer) error {
			return layer.WriteSVG(w, nil)
		})
		if err != nil {
			return err
		}
	}
	if a.pngOut != "" {
		err := a.writeOutput(a.pngOut, true, func(w io.Writer) error {
			return png.Encode(w, scaleThumbnail(layer.Thumbnail(), a.thumbScale))
		})
		if err != nil {
			return err
		}
	}
	if a.pdfOut != "" {
		err := a.writeOutput(a.pdfOut, true, func(w io.Writer) error {
			return pdfexport.Write(w, layer, nil)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) readInput(fname string) (*ndarray.Array, error) {
	var body []byte
	var err error
	if fname == "-" {
		body, err = io.ReadAll(a.stdin)
	} else {
		body, err = os.ReadFile(fname)
	}
	if err != nil {
		return nil, err
	}

	data := &ndarray.Array{}
	err = json.Unmarshal(body, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	a.logger.Debug("input read", zap.String("file", fname), zap.Ints("shape", data.Shape))
	return data, nil
}

func (a *app) writeOutput(fname string, binary bool, write func(io.Writer) error) error {
	if fname == "-" {
		if binary && a.isTerminal() {
			return errTerminal
		}
		return write(a.stdout)
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	a.logger.Info("output written", zap.String("file", fname))
	return nil
}

func scaleThumbnail(img *image.RGBA, scale int) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// execute runs the command line tool.  The logger is flushed on all
// paths, including errors.
func (a *app) execute(args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	defer func() {
		_ = a.logger.Sync()
	}()
	return cmd.Execute()
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	a := newApp()
	if err := a.execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
