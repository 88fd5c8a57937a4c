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

// Package bbox implements axis-aligned bounding rectangles for the
// extents of drawable elements.
//
// A [Rect] stores an origin and a non-negative width and height.
// Rectangles can be combined using [Rect.Union], mapped through affine
// transformations using [Transform] and [Rect.ApplyTransform], and
// compared using [Rect.Intersect], [Rect.IntersectMTV] and
// [Rect.Contains].  Transformations use the
// [seehuhn.de/go/geom/matrix.Matrix] type, points use
// [seehuhn.de/go/geom/vec.Vec2].
//
// The methods are used in hit-testing and layout passes.  No method keeps
// state between calls, so different rectangles can be used from different
// goroutines.  Methods with a pointer receiver modify the rectangle in
// place; the caller must own the rectangle exclusively while doing so.
//
// Other rectangle-shaped values can be used wherever a [Box] is expected.
// A rectangle with infinite origin is a neutral start for a union:
//
//	extent := bbox.Rect{X: math.Inf(1), Y: math.Inf(1)}
//	for _, child := range children {
//	    extent.Union(child.Bounds)
//	}
//	bbox.Transform(&extent, extent, ctm)
//	if extent.Contains(x, y) {
//	    ...
//	}
package bbox

var (
	_ Box = Rect{}
	_ Box = (*Rect)(nil)
	_ Box = Plain{}
)
