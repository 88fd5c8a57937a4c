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

package bbox

import (
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// This file converts between Rect and the corner based rectangle types
// used elsewhere in the graphics stack.

// FromGeom converts a rectangle given by its lower-left and upper-right
// corners.  The corners may be given in any order.
func FromGeom(r rect.Rect) Rect {
	return New(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
}

// Geom returns r in corner form.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{
		LLx: r.X,
		LLy: r.Y,
		URx: r.X + r.Width,
		URy: r.Y + r.Height,
	}
}

// FromPDF converts a PDF rectangle.  If r is nil, the zero rectangle
// is returned.
func FromPDF(r *pdf.Rectangle) Rect {
	if r == nil {
		return Rect{}
	}
	return New(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
}

// PDF returns r as a PDF rectangle.
func (r Rect) PDF() *pdf.Rectangle {
	return &pdf.Rectangle{
		LLx: r.X,
		LLy: r.Y,
		URx: r.X + r.Width,
		URy: r.Y + r.Height,
	}
}

// ImageRect returns the smallest integer rectangle which covers r.
// This is the region of pixels touched when r is drawn in device space.
// If r is not finite, or if the result does not fit into the range of int,
// the empty rectangle is returned.
func (r Rect) ImageRect() image.Rectangle {
	if !r.IsFinite() {
		return image.Rectangle{}
	}
	x0 := math.Floor(r.X)
	y0 := math.Floor(r.Y)
	x1 := math.Ceil(r.X + r.Width)
	y1 := math.Ceil(r.Y + r.Height)
	if !fitsInt(x0) || !fitsInt(y0) || !fitsInt(x1) || !fitsInt(y1) {
		return image.Rectangle{}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// fitsInt reports whether the integral value x can be converted to int.
func fitsInt(x float64) bool {
	return x >= math.MinInt && x < math.MaxInt
}
