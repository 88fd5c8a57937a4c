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

	"seehuhn.de/go/geom/vec"
)

// Intersect reports whether r and b overlap.
// Rectangles which only touch along an edge or at a corner overlap.
// If b is nil, the result is false.
func (r Rect) Intersect(b Box) bool {
	if isNil(b) {
		return false
	}
	bb := asRect(b)
	return overlaps(r, bb)
}

// IntersectMTV reports whether r and b overlap, and returns a
// displacement vector for b.
//
// If the rectangles overlap, mtv is the minimum translation vector:
// moving b by mtv removes the overlap along the axis of least penetration,
// leaving the two rectangles touching.  If the rectangles are separate,
// mtv describes the gap along the axis with the larger separation:
// moving b by mtv brings the rectangles into contact along that axis.
// For ties, the x-axis is used.
//
// If b is nil, the result is false and the zero vector.
func (r Rect) IntersectMTV(b Box) (overlap bool, mtv vec.Vec2) {
	if isNil(b) {
		return false, vec.Vec2{}
	}
	bb := asRect(b)

	ax0, ax1 := r.X, farEdge(r.X, r.Width)
	ay0, ay1 := r.Y, farEdge(r.Y, r.Height)
	bx0, bx1 := bb.X, farEdge(bb.X, bb.Width)
	by0, by1 := bb.Y, farEdge(bb.Y, bb.Height)

	sepX := ax1 < bx0 || bx1 < ax0
	sepY := ay1 < by0 || by1 < ay0
	overlap = !(sepX || sepY)

	d0 := math.Abs(ax1 - bx0) // b to the right of a
	d1 := math.Abs(bx1 - ax0) // b to the left of a
	d2 := math.Abs(ay1 - by0) // b below a
	d3 := math.Abs(by1 - ay0) // b above a
	dx := math.Min(d0, d1)
	dy := math.Min(d2, d3)

	// minTV collects the overlap case, maxTV the separated case
	var minTV, maxTV vec.Vec2
	dMin := math.Inf(1)
	dMax := 0.0

	if sepX {
		if dx > dMax {
			dMax = dx
			if d0 < d1 {
				maxTV = vec.Vec2{X: -d0}
			} else {
				maxTV = vec.Vec2{X: d1}
			}
		}
	} else if dx < dMin {
		dMin = dx
		if d0 < d1 {
			minTV = vec.Vec2{X: d0}
		} else {
			minTV = vec.Vec2{X: -d1}
		}
	}

	if sepY {
		if dy > dMax {
			if d2 < d3 {
				maxTV = vec.Vec2{Y: -d2}
			} else {
				maxTV = vec.Vec2{Y: d3}
			}
		}
	} else if dy < dMin {
		if d2 < d3 {
			minTV = vec.Vec2{Y: d2}
		} else {
			minTV = vec.Vec2{Y: -d3}
		}
	}

	if overlap {
		return true, minTV
	}
	return false, maxTV
}

// asRect returns b as a normalized Rect.  Values which already are
// rectangles are used as they are.
func asRect(b Box) Rect {
	switch b := b.(type) {
	case Rect:
		return b
	case *Rect:
		return *b
	default:
		return Create(b)
	}
}

func isNil(b Box) bool {
	if b == nil {
		return true
	}
	p, isPtr := b.(*Rect)
	return isPtr && p == nil
}

func overlaps(a, b Rect) bool {
	ax1 := farEdge(a.X, a.Width)
	ay1 := farEdge(a.Y, a.Height)
	bx1 := farEdge(b.X, b.Width)
	by1 := farEdge(b.Y, b.Height)
	return !(ax1 < b.X || bx1 < a.X || ay1 < b.Y || by1 < a.Y)
}
