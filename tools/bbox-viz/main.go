// seehuhn.de/go/bbox - rectangle algebra for graphics layers
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

// Bbox-viz draws rectangles, their union and their transformed extents
// into a PNG file, and lists the overlaps between the rectangles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bbox"
	"seehuhn.de/go/bbox/raster"
	"seehuhn.de/go/bbox/tools/internal/buildinfo"
	"seehuhn.de/go/bbox/tools/internal/profile"
)

type config struct {
	out           string
	force         bool
	width, height int
	rotate        float64
	scale         float64
}

var (
	colInput     = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0x60}
	colImage     = color.NRGBA{R: 0x20, G: 0x40, B: 0xC0, A: 0x80}
	colExtent    = color.NRGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF}
	colUnion     = color.NRGBA{R: 0x20, G: 0x90, B: 0x20, A: 0xFF}
	colRectFrame = color.NRGBA{A: 0xFF}
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	var cfg config
	flag.StringVar(&cfg.out, "o", "out.png", "output file name")
	flag.BoolVar(&cfg.force, "f", false, "overwrite output file if it exists")
	flag.IntVar(&cfg.width, "W", 400, "image width in pixels")
	flag.IntVar(&cfg.height, "H", 300, "image height in pixels")
	flag.Float64Var(&cfg.rotate, "rotate", 30, "rotation about the image center, in degrees")
	flag.Float64Var(&cfg.scale, "scale", 1, "scale factor about the image center")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bbox-viz \u2014 draw rectangles and their extents\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bbox-viz"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bbox-viz [options] x,y,w,h...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  bbox-viz -rotate 45 -o boxes.png 50,50,100,60 120,80,80,80\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, flag.Args(), os.Stdout, *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, args []string, stdout io.Writer, cpuprofile, memprofile string) error {
	stop, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer stop()

	rects := make([]bbox.Rect, len(args))
	for i, arg := range args {
		rects[i], err = parseRect(arg)
		if err != nil {
			return err
		}
	}

	if !cfg.force {
		if _, err := os.Stat(cfg.out); !os.IsNotExist(err) {
			return fmt.Errorf("file %s already exists (use -f to overwrite)", cfg.out)
		}
	}

	c := raster.NewCanvas(cfg.width, cfg.height)
	draw(c, rects, centerTransform(cfg))

	out, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	err = png.Encode(out, c.Image)
	if err != nil {
		out.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	err = out.Close()
	if err != nil {
		return err
	}

	return listOverlaps(stdout, rects)
}

// centerTransform returns the rotation and scaling about the image center
// given on the command line.
func centerTransform(cfg config) matrix.Matrix {
	cx := float64(cfg.width) / 2
	cy := float64(cfg.height) / 2
	return matrix.Translate(-cx, -cy).
		Mul(matrix.RotateDeg(cfg.rotate)).
		Mul(matrix.Scale(cfg.scale, cfg.scale)).
		Mul(matrix.Translate(cx, cy))
}

func draw(c *raster.Canvas, rects []bbox.Rect, M matrix.Matrix) {
	if len(rects) == 0 {
		return
	}

	boxes := make([]bbox.Box, len(rects))
	for i, r := range rects {
		c.Fill(r, colInput)
		c.Stroke(r, 1, colRectFrame)

		c.FillTransformed(r, M, colImage)
		ext := r.Clone()
		ext.ApplyTransform(M)
		c.Stroke(ext, 1, colExtent)

		boxes[i] = r
	}

	union := bbox.UnionAll(boxes...)
	c.Stroke(union, 2, colUnion)
}

// listOverlaps prints the overlap status of all pairs of rectangles,
// together with the vector which moves the second rectangle out of
// (or up to) the first.
func listOverlaps(w io.Writer, rects []bbox.Rect) error {
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			overlap, mtv := rects[i].IntersectMTV(rects[j])
			status := "separate"
			if overlap {
				status = "overlap"
			}
			_, err := fmt.Fprintf(w, "%v %v %s mtv=(%g, %g)\n",
				rects[i], rects[j], status, mtv.X, mtv.Y)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// parseRect parses a rectangle given as "x,y,w,h".
// Negative extents are normalized.
func parseRect(s string) (bbox.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return bbox.Rect{}, fmt.Errorf("%q: %w", s, errMalformedRect)
	}
	var val [4]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return bbox.Rect{}, fmt.Errorf("%q: %w", s, errMalformedRect)
		}
		val[i] = x
	}
	return bbox.New(val[0], val[1], val[2], val[3]), nil
}

var errMalformedRect = errors.New("expected rectangle as x,y,w,h")
