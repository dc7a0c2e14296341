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


package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_4x",
		Path:   polygon(&path.Data{}, pt(2, 12), pt(8, 2), pt(14, 12)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(4, 4),
	},
	{
		Name:   "rotate_30deg",
		Path:   rectangle(&path.Data{}, -16, -8, 16, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(&path.Data{}, 0, 0, 10, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(3, 1.5).Translate(32, 32),
	},
	{
		Name:   "shear",
		Path:   rectangle(&path.Data{}, 8, 8, 40, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0},
	},
	{
		Name:   "flip_y",
		Path:   polygon(&path.Data{}, pt(10, 10), pt(54, 10), pt(32, 54)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
	{
		Name:   "stroke_rotated_round",
		Path:   (&path.Data{}).MoveTo(pt(-20, 6)).LineTo(pt(0, -6)).LineTo(pt(20, 6)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		CTM: matrix.RotateDeg(20).Translate(32, 32),
	},
}
