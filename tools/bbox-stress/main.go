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

// Bbox-stress runs the rectangle operations used in layout and
// hit-testing passes over a large set of random rectangles.
// Use the -cpuprofile and -memprofile flags to inspect the hot paths.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bbox"
	"seehuhn.de/go/bbox/tools/internal/buildinfo"
	"seehuhn.de/go/bbox/tools/internal/profile"
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	n := flag.Int("n", 2000, "number of rectangles")
	seed := flag.Uint64("seed", 1, "random seed")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bbox-stress \u2014 exercise the rectangle hot paths\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bbox-stress"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bbox-stress [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "error: -n must be positive")
		os.Exit(1)
	}

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer stop()

	rects := randomRects(*n, *seed)
	res := stress(rects)
	res.print(os.Stdout)
}

// stats summarizes one run of [stress].
type stats struct {
	rects    int
	overlaps int
	hits     int
	union    bbox.Rect
	scaled   bbox.Rect
	rotated  bbox.Rect
	elapsed  time.Duration
}

func randomRects(n int, seed uint64) []bbox.Rect {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rects := make([]bbox.Rect, n)
	for i := range rects {
		// negative extents are allowed, they are normalized by New
		rects[i] = bbox.New(
			rng.Float64()*1000,
			rng.Float64()*1000,
			rng.Float64()*100-20,
			rng.Float64()*100-20,
		)
	}
	return rects
}

// stress runs all pairwise intersection tests, point hit-tests on the
// rectangle centers, and accumulates transformed extents.
func stress(rects []bbox.Rect) *stats {
	start := time.Now()
	res := &stats{rects: len(rects)}

	scale := matrix.Scale(0.5, 2).Mul(matrix.Translate(10, -10))
	rotate := matrix.RotateDeg(30)

	res.union = rects[0]
	var scaled, rotated bbox.Rect
	for i, a := range rects {
		res.union.Union(&rects[i])

		bbox.Transform(&scaled, a, scale)
		bbox.Transform(&rotated, a, rotate)
		if i == 0 {
			res.scaled, res.rotated = scaled, rotated
		} else {
			res.scaled.Union(&scaled)
			res.rotated.Union(&rotated)
		}

		cx := a.X + a.Width/2
		cy := a.Y + a.Height/2
		for j := i + 1; j < len(rects); j++ {
			if overlap, _ := a.IntersectMTV(&rects[j]); overlap {
				res.overlaps++
			}
			if rects[j].Contains(cx, cy) {
				res.hits++
			}
		}
	}

	res.elapsed = time.Since(start)
	return res
}

func (s *stats) print(w io.Writer) {
	pairs := s.rects * (s.rects - 1) / 2
	fmt.Fprintf(w, "rectangles:     %d\n", s.rects)
	fmt.Fprintf(w, "pairs:          %d\n", pairs)
	fmt.Fprintf(w, "overlaps:       %d\n", s.overlaps)
	fmt.Fprintf(w, "center hits:    %d\n", s.hits)
	fmt.Fprintf(w, "union:          %v\n", s.union)
	fmt.Fprintf(w, "scaled extent:  %v\n", s.scaled)
	fmt.Fprintf(w, "rotated extent: %v\n", s.rotated)
	fmt.Fprintf(w, "time:           %v\n", s.elapsed)
}
