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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// A Box is anything which describes an axis-aligned rectangle by its
// origin and extent.  The values are not required to be normalized.
type Box interface {
	Box() (x, y, width, height float64)
}

// Rect is an axis-aligned rectangle.
//
// The rectangle covers the points (x, y) with X <= x <= X+Width and
// Y <= y <= Y+Height.  All constructors and all methods which modify
// a Rect keep Width and Height non-negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// New returns the rectangle with origin (x, y) and the given extent.
// A negative width or height is normalized by moving the origin,
// so that the result covers the same region.
func New(x, y, width, height float64) Rect {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Create converts any Box into a normalized Rect.
func Create(b Box) Rect {
	return New(b.Box())
}

// Box implements the [Box] interface.
func (r Rect) Box() (x, y, width, height float64) {
	return r.X, r.Y, r.Width, r.Height
}

// Clone returns a copy of r.
func (r Rect) Clone() Rect {
	return r
}

// Copy overwrites r with the fields of other.
// No normalization is applied.  If other is nil, r is left unchanged.
func (r *Rect) Copy(other Box) {
	if isNil(other) {
		return
	}
	r.X, r.Y, r.Width, r.Height = other.Box()
}

// Contains reports whether the point (x, y) lies inside r.
// Points on the boundary are inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= farEdge(r.X, r.Width) &&
		y >= r.Y && y <= farEdge(r.Y, r.Height)
}

// ContainsVec reports whether the point p lies inside r.
func (r Rect) ContainsVec(p vec.Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// IsFinite reports whether all fields of r are finite.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) &&
		isFinite(r.Width) && isFinite(r.Height)
}

// IsZero reports whether r has zero width or zero height.
func (r Rect) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// Corners returns the four corners of r, in the order
// top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]vec.Vec2 {
	x1 := r.X + r.Width
	y1 := r.Y + r.Height
	return [4]vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: x1, Y: r.Y},
		{X: x1, Y: y1},
		{X: r.X, Y: y1},
	}
}

// NearlyEqual reports whether the fields of r and other differ by less
// than eps.
func (r Rect) NearlyEqual(other Box, eps float64) bool {
	x, y, w, h := other.Box()
	return math.Abs(r.X-x) < eps &&
		math.Abs(r.Y-y) < eps &&
		math.Abs(r.Width-w) < eps &&
		math.Abs(r.Height-h) < eps
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.Width, r.Height)
}

// Plain is a snapshot of a rectangle, without any methods which modify it.
// This is the form used for storing and transmitting rectangles.
type Plain struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Plain returns a snapshot of r.  Changes to the snapshot do not
// affect r.
func (r Rect) Plain() Plain {
	return Plain{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Box implements the [Box] interface.
func (p Plain) Box() (x, y, width, height float64) {
	return p.X, p.Y, p.Width, p.Height
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
