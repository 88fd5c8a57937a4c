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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
)

// FromFUnits converts a glyph bounding box from font design units
// to text space units, where the font size is 1.
func FromFUnits(b funit.Rect16, unitsPerEm uint16) Rect {
	q := 1 / float64(unitsPerEm)
	return New(
		float64(b.LLx)*q,
		float64(b.LLy)*q,
		(float64(b.URx)-float64(b.LLx))*q,
		(float64(b.URy)-float64(b.LLy))*q,
	)
}

// GlyphExtents returns the bounding boxes of all glyphs in the font,
// indexed by glyph ID.  The boxes are transformed by M, which maps
// text space (font size 1) to the target coordinate system.
// Glyphs without outlines map to the zero rectangle.
func GlyphExtents(info *sfnt.Font, M matrix.Matrix) []Rect {
	boxes := info.GlyphBBoxes()
	res := make([]Rect, len(boxes))
	for gid, b := range boxes {
		if b == (funit.Rect16{}) {
			continue
		}
		Transform(&res[gid], FromFUnits(b, info.UnitsPerEm), M)
	}
	return res
}
