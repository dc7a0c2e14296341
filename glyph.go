// seehuhn.de/go/grays - an anti-aliased scan converter
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


package grays

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphOutline replaces the contents of dst by the glyph outline segs, as
// returned by [sfnt.Font.LoadGlyph], moved so that the glyph origin is at
// origin. The sfnt package uses a y axis which points down, as does
// Render, so no flip is needed.
func GlyphOutline(dst *Outline, segs sfnt.Segments, origin fixed.Point26_6) {
	dst.Reset()
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			dst.MoveTo(a[0].Add(origin))
		case sfnt.SegmentOpLineTo:
			dst.LineTo(a[0].Add(origin))
		case sfnt.SegmentOpQuadTo:
			dst.QuadTo(a[0].Add(origin), a[1].Add(origin))
		case sfnt.SegmentOpCubeTo:
			dst.CubeTo(a[0].Add(origin), a[1].Add(origin), a[2].Add(origin))
		}
	}
	dst.Close()
}
