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

import "math"

// Union enlarges r to the smallest rectangle which covers both r and other.
// Boxes which are not of type Rect are normalized first.  If other is nil,
// r is left unchanged.
//
// A rectangle whose X coordinate is +Inf or NaN covers nothing
// horizontally: if this is the case for r, the horizontal position and
// extent of other are used unchanged, and if it is the case for other,
// those of r are kept.  The vertical direction is treated in the same way.
// This allows to start an accumulation with Rect{X: math.Inf(1), Y: math.Inf(1)}.
// Infinite extents, for example half-planes, are preserved.
func (r *Rect) Union(other Box) {
	if isNil(other) {
		return
	}
	ox, oy, ow, oh := asRect(other).Box()

	// both spans are computed from the old values, before r is modified
	x, w := unionSpan(r.X, r.Width, ox, ow)
	y, h := unionSpan(r.Y, r.Height, oy, oh)

	r.X = x
	r.Y = y
	r.Width = w
	r.Height = h
}

// unionSpan returns the smallest interval covering [a, a+aw] and [b, b+bw].
func unionSpan(a, aw, b, bw float64) (float64, float64) {
	if isEmptyOrigin(a) {
		return b, bw
	}
	if isEmptyOrigin(b) {
		return a, aw
	}
	lo := math.Min(a, b)
	hi := math.Max(farEdge(a, aw), farEdge(b, bw))
	return lo, hi - lo
}

func isEmptyOrigin(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 1)
}

// farEdge returns x+w, where an infinite extent reaches +Inf even
// from an origin at -Inf.
func farEdge(x, w float64) float64 {
	if math.IsInf(w, 1) {
		return w
	}
	return x + w
}

// UnionAll returns the smallest rectangle which covers all the given boxes.
// Nil boxes are ignored.  If no boxes are left, the zero rectangle is returned.
func UnionAll(boxes ...Box) Rect {
	if len(boxes) == 0 {
		return Rect{}
	}
	res := Rect{X: math.Inf(1), Y: math.Inf(1)}
	for _, b := range boxes {
		res.Union(b)
	}
	if isEmptyOrigin(res.X) || isEmptyOrigin(res.Y) {
		return Rect{}
	}
	return res
}
