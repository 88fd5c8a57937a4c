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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", New(0, 0, 10, 10), New(5, 5, 10, 10), true},
		{"separate horizontal", New(0, 0, 10, 10), New(20, 0, 10, 10), false},
		{"separate vertical", New(0, 0, 10, 10), New(0, 15, 10, 10), false},
		{"touching edge", New(0, 0, 10, 10), New(10, 0, 10, 10), true},
		{"touching corner", New(0, 0, 10, 10), New(10, 10, 10, 10), true},
		{"contained", New(0, 0, 20, 20), New(5, 5, 5, 5), true},
		{"diagonal apart", New(0, 0, 1, 1), New(2, 2, 1, 1), false},
		{"empty inside", New(0, 0, 10, 10), New(3, 3, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.expected {
				t.Errorf("Intersect() = %v, want %v", got, tc.expected)
			}
			if got := tc.b.Intersect(tc.a); got != tc.expected {
				t.Errorf("Intersect() (reversed) = %v, want %v", got, tc.expected)
			}
			if got, _ := tc.a.IntersectMTV(tc.b); got != tc.expected {
				t.Errorf("IntersectMTV() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectNil(t *testing.T) {
	a := New(0, 0, 10, 10)
	if a.Intersect(nil) {
		t.Error("Intersect(nil) = true")
	}
	var p *Rect
	if a.Intersect(p) {
		t.Error("Intersect((*Rect)(nil)) = true")
	}
	overlap, mtv := a.IntersectMTV(nil)
	if overlap || mtv != (vec.Vec2{}) {
		t.Errorf("IntersectMTV(nil) = %v, %v", overlap, mtv)
	}
}

func TestIntersectNormalizes(t *testing.T) {
	a := New(0, 0, 10, 10)

	// covers [12, 20] x [0, 10] once normalized
	b := Plain{X: 20, Y: 10, Width: -8, Height: -10}
	if a.Intersect(b) {
		t.Error("unnormalized box reported as overlapping")
	}
	c := Plain{X: 15, Y: 10, Width: -8, Height: -10}
	if !a.Intersect(c) {
		t.Error("unnormalized box reported as separate")
	}
}

func TestIntersectMTV(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Rect
		overlap bool
		mtv     vec.Vec2
	}{
		{"gap right", New(0, 0, 10, 10), New(20, 0, 10, 10), false, vec.Vec2{X: -10}},
		{"gap left", New(20, 0, 10, 10), New(0, 0, 10, 10), false, vec.Vec2{X: 10}},
		{"gap below", New(0, 0, 10, 10), New(0, 13, 10, 10), false, vec.Vec2{Y: -3}},
		{"gap above", New(0, 13, 10, 10), New(0, 0, 10, 10), false, vec.Vec2{Y: 3}},
		{"larger gap wins", New(0, 0, 10, 10), New(12, 20, 10, 10), false, vec.Vec2{Y: -10}},
		{"push right", New(0, 0, 10, 10), New(5, 0, 10, 10), true, vec.Vec2{X: 5}},
		{"push left", New(5, 0, 10, 10), New(0, 0, 10, 10), true, vec.Vec2{X: -5}},
		{"push down", New(0, 0, 10, 10), New(1, 8, 8, 10), true, vec.Vec2{Y: 2}},
		{"push up", New(0, 8, 10, 10), New(1, 0, 8, 10), true, vec.Vec2{Y: -2}},
		{"smaller penetration wins", New(0, 0, 10, 10), New(7, 1, 10, 10), true, vec.Vec2{X: 3}},
		{"touching", New(0, 0, 10, 10), New(10, 0, 10, 10), true, vec.Vec2{}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			overlap, mtv := test.a.IntersectMTV(test.b)
			if overlap != test.overlap {
				t.Errorf("overlap = %v, want %v", overlap, test.overlap)
			}
			if d := cmp.Diff(test.mtv, mtv); d != "" {
				t.Errorf("mtv: %s", d)
			}
		})
	}
}

// Moving b by the minimum translation vector must leave the rectangles
// touching, but no longer overlapping with positive area.
func TestMTVSeparates(t *testing.T) {
	pairs := []struct{ a, b Rect }{
		{New(0, 0, 10, 10), New(5, 5, 10, 10)},
		{New(0, 0, 10, 10), New(-3, 2, 4, 4)},
		{New(0, 0, 10, 10), New(2, 2, 3, 3)},
		{New(-5, -5, 1, 20), New(-6, 0, 3, 1)},
	}
	for _, p := range pairs {
		overlap, mtv := p.a.IntersectMTV(p.b)
		if !overlap {
			t.Fatalf("%v and %v should overlap", p.a, p.b)
		}
		moved := p.b
		moved.X += mtv.X
		moved.Y += mtv.Y
		if !p.a.Intersect(moved) {
			t.Errorf("%v moved by %v: not touching %v", p.b, mtv, p.a)
		}
		inner := New(moved.X+1e-9, moved.Y+1e-9, moved.Width-2e-9, moved.Height-2e-9)
		if p.a.Intersect(inner) {
			t.Errorf("%v moved by %v still overlaps %v", p.b, mtv, p.a)
		}
	}
}
