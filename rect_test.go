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
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestNew(t *testing.T) {
	type testCase struct {
		name       string
		x, y, w, h float64
		want       Rect
	}
	cases := []testCase{
		{"positive", 1, 2, 3, 4, Rect{1, 2, 3, 4}},
		{"negative both", 10, 10, -5, -5, Rect{5, 5, 5, 5}},
		{"negative width", 1, 2, -3, 4, Rect{-2, 2, 3, 4}},
		{"negative height", 1, 2, 3, -4, Rect{1, -2, 3, 4}},
		{"empty", 7, 8, 0, 0, Rect{7, 8, 0, 0}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got := New(test.x, test.y, test.w, test.h)
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("New(%g, %g, %g, %g): %s", test.x, test.y, test.w, test.h, d)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("negative extent in %v", got)
			}
		})
	}
}

func TestNewNaN(t *testing.T) {
	r := New(math.NaN(), 0, 1, math.Inf(1))
	if !math.IsNaN(r.X) {
		t.Errorf("X = %g, want NaN", r.X)
	}
	if !math.IsInf(r.Height, 1) {
		t.Errorf("Height = %g, want +Inf", r.Height)
	}
	if r.IsFinite() {
		t.Error("IsFinite() = true, want false")
	}
}

func TestCreate(t *testing.T) {
	p := Plain{X: 3, Y: 4, Width: -1, Height: -2}
	got := Create(p)
	want := Rect{X: 2, Y: 2, Width: 1, Height: 2}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	// the input is not modified
	if p.Width != -1 || p.Height != -2 {
		t.Errorf("input modified: %v", p)
	}
}

func TestContains(t *testing.T) {
	r := New(0, 0, 10, 10)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 10, 10, true},
		{"right edge", 10, 5, true},
		{"just outside right", 10.0001, 5, false},
		{"just outside left", -0.0001, 5, false},
		{"below", 5, 11, false},
		{"above", 5, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
			if got := r.ContainsVec(vec.Vec2{X: tt.x, Y: tt.y}); got != tt.expected {
				t.Errorf("ContainsVec(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestCloneCopy(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := a.Clone()
	b.X = 100
	if a.X != 1 {
		t.Errorf("Clone shares state: a = %v", a)
	}

	var c Rect
	c.Copy(&a)
	if c != a {
		t.Errorf("Copy: got %v, want %v", c, a)
	}

	// Copy does not normalize
	c.Copy(Plain{X: 1, Y: 1, Width: -1, Height: -1})
	want := Rect{X: 1, Y: 1, Width: -1, Height: -1}
	if c != want {
		t.Errorf("Copy: got %v, want %v", c, want)
	}
}

func TestPlain(t *testing.T) {
	r := New(1, 2, 3, 4)
	p := r.Plain()
	p.X = 99
	p.Width = -7
	if r != (Rect{1, 2, 3, 4}) {
		t.Errorf("snapshot is not decoupled: %v", r)
	}

	data, err := json.Marshal(r.Plain())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"x":1,"y":2,"width":3,"height":4}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var q Plain
	err = json.Unmarshal(data, &q)
	if err != nil {
		t.Fatal(err)
	}
	if Create(q) != r {
		t.Errorf("got %v, want %v", Create(q), r)
	}
}

func TestCorners(t *testing.T) {
	r := New(1, 2, 3, 4)
	want := [4]vec.Vec2{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}}
	if d := cmp.Diff(want, r.Corners()); d != "" {
		t.Error(d)
	}
}

func TestPredicates(t *testing.T) {
	if !New(1, 1, 0, 5).IsZero() {
		t.Error("zero width not detected")
	}
	if New(1, 1, 1, 5).IsZero() {
		t.Error("non-empty rectangle reported as zero")
	}
	if !New(1, 2, 3, 4).IsFinite() {
		t.Error("finite rectangle reported as infinite")
	}
	if (Rect{X: math.Inf(-1)}).IsFinite() {
		t.Error("infinite rectangle reported as finite")
	}
	if s := New(1, 2, 3, 4.5).String(); s != "[1 2 3 4.5]" {
		t.Errorf("String() = %q", s)
	}
	if !New(1, 2, 3, 4).NearlyEqual(Plain{1, 2, 3, 4 + 1e-9}, 1e-6) {
		t.Error("NearlyEqual failed")
	}
	if New(1, 2, 3, 4).NearlyEqual(Plain{1, 2, 3, 4.1}, 1e-6) {
		t.Error("NearlyEqual matched different rectangles")
	}
}

func TestCopyNil(t *testing.T) {
	a := New(1, 2, 3, 4)
	a.Copy(nil)
	a.Copy((*Rect)(nil))
	if a != New(1, 2, 3, 4) {
		t.Errorf("Copy(nil) changed the rectangle: %v", a)
	}
}

func TestContainsUnbounded(t *testing.T) {
	inf := math.Inf(1)
	line := Rect{X: -inf, Y: 0, Width: inf, Height: 1}
	for _, x := range []float64{-1e300, 0, 5, 1e300} {
		if !line.Contains(x, 0.5) {
			t.Errorf("%v does not contain (%g, 0.5)", line, x)
		}
	}
	if line.Contains(0, 2) {
		t.Errorf("%v contains (0, 2)", line)
	}
}
