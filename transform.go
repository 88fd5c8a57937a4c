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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// shearEps is the largest magnitude of the off-diagonal matrix entries
// for which a transformation is treated as a pure scale and translation.
const shearEps = 1e-5

// CalculateTransform returns the matrix which maps r onto b.
//
// The matrix first moves the origin of r to (0, 0), then scales by
// the ratio of the extents, and finally moves the result to the origin
// of b.  If r has zero width or height, the result contains infinite
// or NaN entries.  If b is nil, the zero matrix is returned.
func (r Rect) CalculateTransform(b Box) matrix.Matrix {
	if isNil(b) {
		return matrix.Zero
	}
	bx, by, bw, bh := b.Box()
	sx := bw / r.Width
	sy := bh / r.Height

	return matrix.Translate(-r.X, -r.Y).
		Mul(matrix.Scale(sx, sy)).
		Mul(matrix.Translate(bx, by))
}

// ApplyTransform replaces r with the bounding box of the image of r under m.
// If m is the zero matrix, r is left unchanged.
func (r *Rect) ApplyTransform(m matrix.Matrix) {
	Transform(r, *r, m)
}

// Transform sets target to the smallest axis-aligned rectangle which
// contains the image of source under m.  The target may be the same
// rectangle as the source.
//
// The zero matrix stands for "no transformation": in this case the fields
// of source are copied to target unchanged.  If source is nil, target is
// left unchanged.
func Transform(target *Rect, source Box, m matrix.Matrix) {
	if isNil(source) {
		return
	}
	x, y, w, h := source.Box()

	if m == matrix.Zero {
		target.X, target.Y, target.Width, target.Height = x, y, w, h
		return
	}

	if math.Abs(m[1]) < shearEps && math.Abs(m[2]) < shearEps {
		*target = New(x*m[0]+m[4], y*m[3]+m[5], w*m[0], h*m[3])
		return
	}

	x1 := x + w
	y1 := y + h
	ltx, lty := apply(m, x, y)
	rtx, rty := apply(m, x1, y)
	rbx, rby := apply(m, x1, y1)
	lbx, lby := apply(m, x, y1)

	minX := min(ltx, rtx, rbx, lbx)
	minY := min(lty, rty, rby, lby)
	maxX := max(ltx, rtx, rbx, lbx)
	maxY := max(lty, rty, rby, lby)

	target.X = minX
	target.Y = minY
	target.Width = maxX - minX
	target.Height = maxY - minY
}

// apply maps the point (x, y) through m.
func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
