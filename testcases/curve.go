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

import "seehuhn.de/go/geom/path"

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			QuadTo(pt(32, -8), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "quadratic_chain",
		Path: (&path.Data{}).
			MoveTo(pt(4, 32)).
			QuadTo(pt(12, 4), pt(20, 32)).
			QuadTo(pt(28, 60), pt(36, 32)).
			QuadTo(pt(44, 4), pt(52, 32)).
			LineTo(pt(52, 60)).
			LineTo(pt(4, 60)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			CubeTo(pt(8, 0), pt(56, 0), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic_loop",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).
			CubeTo(pt(70, 0), pt(-6, 0), pt(54, 50)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name: "cubic_cusp",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			CubeTo(pt(56, 8), pt(8, 8), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle",
		Path:   circle(&path.Data{}, 32, 32, 24, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle_small",
		Path:   circle(&path.Data{}, 8, 8, 2.5, false),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle_huge",
		Path:   circle(&path.Data{}, 128, 128, 120, false),
		Width:  256,
		Height: 256,
		Op:     Fill{Rule: NonZero},
	},
}
