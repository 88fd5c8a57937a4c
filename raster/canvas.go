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

// Package raster draws rectangles into images.
//
// This is used to visualize extents, unions and transformed rectangles
// when debugging layout code.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bbox"
)

// Canvas is an RGBA image together with a rasterizer for filling
// rectangles and their images under affine transformations.
type Canvas struct {
	Image  *image.RGBA
	Raster *vector.Rasterizer

	// Device maps rectangle coordinates to pixel coordinates.
	// It is applied after all other transformations.
	Device matrix.Matrix

	width, height int
}

// NewCanvas allocates a new canvas with a white background.
// The device transformation is the identity, so that rectangle coordinates
// are pixel coordinates with the origin in the top-left corner.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		Image:  img,
		Raster: vector.NewRasterizer(width, height),
		Device: matrix.Identity,
		width:  width,
		height: height,
	}
}

// Bounds returns the pixel area of the canvas.
func (c *Canvas) Bounds() bbox.Rect {
	return bbox.New(0, 0, float64(c.width), float64(c.height))
}

// Fill paints the rectangle r.
func (c *Canvas) Fill(r bbox.Rect, col color.Color) {
	c.FillTransformed(r, matrix.Identity, col)
}

// FillTransformed paints the image of r under m.  Rotations and shears
// are drawn exactly, not as the bounding box of the image.
func (c *Canvas) FillTransformed(r bbox.Rect, m matrix.Matrix, col color.Color) {
	M := m.Mul(c.Device)

	var ext bbox.Rect
	bbox.Transform(&ext, r, M)
	if !ext.Intersect(c.Bounds()) {
		return
	}

	c.Raster.Reset(c.width, c.height)
	for i, p := range r.Corners() {
		x, y := transform(M, p.X, p.Y)
		if i == 0 {
			c.Raster.MoveTo(x, y)
		} else {
			c.Raster.LineTo(x, y)
		}
	}
	c.Raster.ClosePath()
	c.paint(col)
}

// Stroke paints the outline of the device space extent of r.
// The outline lies inside the extent and is lineWidth pixels wide.
func (c *Canvas) Stroke(r bbox.Rect, lineWidth float64, col color.Color) {
	var ext bbox.Rect
	bbox.Transform(&ext, r, c.Device)
	if !ext.Intersect(c.Bounds()) {
		return
	}

	c.Raster.Reset(c.width, c.height)
	c.rectPath(ext, false)
	if 2*lineWidth < ext.Width && 2*lineWidth < ext.Height {
		inner := bbox.New(ext.X+lineWidth, ext.Y+lineWidth,
			ext.Width-2*lineWidth, ext.Height-2*lineWidth)
		c.rectPath(inner, true)
	}
	c.paint(col)
}

// DrawImage scales src to cover the rectangle r.
func (c *Canvas) DrawImage(src image.Image, r bbox.Rect) {
	b := src.Bounds()
	srcRect := bbox.New(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
	if srcRect.IsZero() {
		return
	}
	M := srcRect.CalculateTransform(r).Mul(c.Device)
	xdraw.BiLinear.Transform(c.Image, Aff3(M), src, b, xdraw.Over, nil)
}

// rectPath adds the outline of r in device coordinates to the rasterizer.
// Reversed outlines cut holes into outlines with the opposite orientation.
func (c *Canvas) rectPath(r bbox.Rect, reverse bool) {
	cc := r.Corners()
	if reverse {
		cc[1], cc[3] = cc[3], cc[1]
	}
	c.Raster.MoveTo(float32(cc[0].X), float32(cc[0].Y))
	for _, p := range cc[1:] {
		c.Raster.LineTo(float32(p.X), float32(p.Y))
	}
	c.Raster.ClosePath()
}

func (c *Canvas) paint(col color.Color) {
	c.Raster.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{})
	c.Raster.Reset(c.width, c.height)
}

// Aff3 converts m to the matrix layout used by golang.org/x/image/draw.
func Aff3(m matrix.Matrix) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}

func transform(m matrix.Matrix, x, y float64) (float32, float32) {
	return float32(m[0]*x + m[2]*y + m[4]), float32(m[1]*x + m[3]*y + m[5])
}
